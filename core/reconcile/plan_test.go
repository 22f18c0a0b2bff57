package reconcile

import (
	"testing"

	"aa-greeting/core/webex"

	"github.com/stretchr/testify/assert"
)

func TestBuildPlan(t *testing.T) {
	tests := []struct {
		name     string
		menu     webex.Menu
		desired  Desired
		reupload bool
		want     Plan
	}{
		{
			name:    "DefaultAlreadyDefault",
			menu:    webex.Menu{Greeting: webex.GreetingDefault},
			desired: DesiredDefault(),
			want:    Plan{Action: ActionNone},
		},
		{
			name: "DefaultFromCustom",
			menu: webex.Menu{
				Greeting:  webex.GreetingCustom,
				AudioFile: &webex.AudioFile{Name: "old.wav", MediaType: webex.MediaTypeWAV},
			},
			desired: DesiredDefault(),
			want:    Plan{Action: ActionSetDefault},
		},
		{
			name: "CustomAlreadySet",
			menu: webex.Menu{
				Greeting:  webex.GreetingCustom,
				AudioFile: &webex.AudioFile{Name: "holiday.wav", MediaType: webex.MediaTypeWAV},
			},
			desired: DesiredCustom("/tmp/holiday.wav"),
			want:    Plan{Action: ActionNone},
		},
		{
			name: "CustomUploadedButModeDefault",
			menu: webex.Menu{
				Greeting:  webex.GreetingDefault,
				AudioFile: &webex.AudioFile{Name: "holiday.wav", MediaType: webex.MediaTypeWAV},
			},
			desired: DesiredCustom("/tmp/holiday.wav"),
			want:    Plan{Action: ActionSetCustom, Upload: false, Basename: "holiday.wav"},
		},
		{
			name: "CustomDifferentAsset",
			menu: webex.Menu{
				Greeting:  webex.GreetingCustom,
				AudioFile: &webex.AudioFile{Name: "old.wav", MediaType: webex.MediaTypeWAV},
			},
			desired: DesiredCustom("/tmp/holiday.wav"),
			want:    Plan{Action: ActionSetCustom, Upload: true, Basename: "holiday.wav"},
		},
		{
			name:    "CustomNeverUploaded",
			menu:    webex.Menu{Greeting: webex.GreetingDefault},
			desired: DesiredCustom("/tmp/holiday.wav"),
			want:    Plan{Action: ActionSetCustom, Upload: true, Basename: "holiday.wav"},
		},
		{
			name: "ReuploadForcesUpload",
			menu: webex.Menu{
				Greeting:  webex.GreetingCustom,
				AudioFile: &webex.AudioFile{Name: "holiday.wav", MediaType: webex.MediaTypeWAV},
			},
			desired:  DesiredCustom("/tmp/holiday.wav"),
			reupload: true,
			want:     Plan{Action: ActionSetCustom, Upload: true, Basename: "holiday.wav"},
		},
		{
			name:     "ReuploadDoesNotAffectDefault",
			menu:     webex.Menu{Greeting: webex.GreetingDefault},
			desired:  DesiredDefault(),
			reupload: true,
			want:     Plan{Action: ActionNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPlan(&tt.menu, tt.desired, tt.reupload)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlanNoOp(t *testing.T) {
	assert.True(t, Plan{Action: ActionNone}.NoOp())
	assert.False(t, Plan{Action: ActionSetDefault}.NoOp())
	assert.False(t, Plan{Action: ActionSetCustom}.NoOp())
}

func TestParseMenuKind(t *testing.T) {
	menu, err := ParseMenuKind("business")
	assert.NoError(t, err)
	assert.Equal(t, MenuBusiness, menu)

	menu, err = ParseMenuKind("after_hours")
	assert.NoError(t, err)
	assert.Equal(t, MenuAfterHours, menu)

	_, err = ParseMenuKind("lunch")
	assert.Error(t, err)
}
