package reconcile

import (
	"fmt"
	"path/filepath"

	"aa-greeting/core/webex"
)

// MenuKind selects which time profile of an auto-attendant is targeted.
type MenuKind string

const (
	// MenuBusiness targets the business hours menu.
	MenuBusiness MenuKind = "business"
	// MenuAfterHours targets the after hours menu.
	MenuAfterHours MenuKind = "after_hours"
)

// ParseMenuKind validates a menu argument.
func ParseMenuKind(s string) (MenuKind, error) {
	switch MenuKind(s) {
	case MenuBusiness:
		return MenuBusiness, nil
	case MenuAfterHours:
		return MenuAfterHours, nil
	default:
		return "", fmt.Errorf("unknown menu %q: must be %q or %q", s, MenuBusiness, MenuAfterHours)
	}
}

// Desired is the target greeting state for one menu.
type Desired struct {
	// Mode is the target greeting mode.
	Mode webex.Greeting
	// Path is the local WAV file path; set only when Mode is custom.
	Path string
}

// DesiredDefault targets the provider-supplied greeting.
func DesiredDefault() Desired {
	return Desired{Mode: webex.GreetingDefault}
}

// DesiredCustom targets a custom greeting backed by the given file.
func DesiredCustom(path string) Desired {
	return Desired{Mode: webex.GreetingCustom, Path: path}
}

// Basename returns the file name component of the desired asset.
func (d Desired) Basename() string {
	if d.Path == "" {
		return ""
	}
	return filepath.Base(d.Path)
}

// Outcome is the per-auto-attendant result of a batch reconciliation.
type Outcome struct {
	// AutoAttendant identifies the reconciled entity.
	AutoAttendant webex.AutoAttendant
	// Err is the captured failure, nil on success.
	Err error
}

// OK reports whether the reconciliation succeeded.
func (o Outcome) OK() bool {
	return o.Err == nil
}
