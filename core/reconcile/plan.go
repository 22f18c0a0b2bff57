package reconcile

import (
	"aa-greeting/core/webex"
)

// ActionType represents the kind of state transition a menu needs.
type ActionType string

const (
	// ActionNone means the menu already matches the desired state.
	ActionNone ActionType = "none"
	// ActionSetDefault clears the custom greeting.
	ActionSetDefault ActionType = "set_default"
	// ActionSetCustom points the menu at an uploaded asset.
	ActionSetCustom ActionType = "set_custom"
)

// Plan is the minimal state transition needed to reach the desired greeting
// configuration for one menu.
type Plan struct {
	// Action is the transition to perform.
	Action ActionType
	// Upload indicates the asset must be uploaded before the update.
	// Only meaningful for ActionSetCustom.
	Upload bool
	// Basename is the asset file name referenced by the updated menu.
	// Only meaningful for ActionSetCustom.
	Basename string
}

// NoOp reports whether the plan requires no remote mutating calls.
func (p Plan) NoOp() bool {
	return p.Action == ActionNone
}

// BuildPlan diffs the current menu state against the desired greeting and
// returns the minimal transition. It is a pure function of its inputs.
//
// An asset already uploaded under the desired name is not re-uploaded unless
// reupload forces it; a menu already in the desired state yields ActionNone
// so callers can skip the update call entirely.
func BuildPlan(menu *webex.Menu, desired Desired, reupload bool) Plan {
	if desired.Mode == webex.GreetingDefault {
		if menu.Greeting == webex.GreetingDefault {
			return Plan{Action: ActionNone}
		}
		return Plan{Action: ActionSetDefault}
	}

	basename := desired.Basename()
	uploaded := menu.AudioFile != nil && menu.AudioFile.Name == basename

	if menu.Greeting == webex.GreetingCustom && uploaded && !reupload {
		return Plan{Action: ActionNone}
	}

	return Plan{
		Action:   ActionSetCustom,
		Upload:   !uploaded || reupload,
		Basename: basename,
	}
}
