package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		spec         string
		wantLocation string
		wantInvalid  bool
	}{
		{
			name: "PatternOnly",
			spec: "Reception.*",
		},
		{
			name:         "LocationScoped",
			spec:         "Berlin:Reception.*",
			wantLocation: "Berlin",
		},
		{
			name:        "TwoSeparators",
			spec:        "a:b:c",
			wantInvalid: true,
		},
		{
			name:        "ManySeparators",
			spec:        "a:b:c:d:e",
			wantInvalid: true,
		},
		{
			name:        "BadPattern",
			spec:        "Berlin:Recep(tion",
			wantInvalid: true,
		},
		{
			name: "EmptyPattern",
			spec: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := Parse(tt.spec)
			if tt.wantInvalid {
				var invErr *InvalidError
				require.ErrorAs(t, err, &invErr)
				assert.Equal(t, tt.spec, invErr.Spec)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLocation, sel.Location)
			assert.Equal(t, tt.spec, sel.Spec)
		})
	}
}

func TestParse_PatternIsAnchored(t *testing.T) {
	sel, err := Parse("aa1")
	require.NoError(t, err)

	assert.True(t, sel.Pattern.MatchString("aa1"))
	assert.False(t, sel.Pattern.MatchString("aa10"), "anchored pattern must not match a longer name")
	assert.False(t, sel.Pattern.MatchString("xaa1"))
}

func TestParse_AlternationStaysAnchored(t *testing.T) {
	// Without the non-capturing group an alternation would escape the
	// anchors: "^a|b$" matches "ax".
	sel, err := Parse("a|b")
	require.NoError(t, err)

	assert.True(t, sel.Pattern.MatchString("a"))
	assert.True(t, sel.Pattern.MatchString("b"))
	assert.False(t, sel.Pattern.MatchString("ax"))
	assert.False(t, sel.Pattern.MatchString("xb"))
}
