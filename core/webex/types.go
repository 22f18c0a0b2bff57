package webex

// Greeting is the greeting mode of an auto-attendant menu.
type Greeting string

const (
	// GreetingDefault plays the provider-supplied greeting.
	GreetingDefault Greeting = "DEFAULT"
	// GreetingCustom plays an uploaded audio file.
	GreetingCustom Greeting = "CUSTOM"
)

// MediaTypeWAV is the media type of uploaded greeting files.
const MediaTypeWAV = "WAV"

// Person represents the authenticated Webex user.
type Person struct {
	// ID is the unique person identifier.
	ID string `json:"id"`
	// OrgID is the identifier of the organization the person belongs to.
	OrgID string `json:"orgId"`
	// DisplayName is the person's display name.
	DisplayName string `json:"displayName,omitempty"`
}

// Location represents a Webex Calling location.
type Location struct {
	// ID is the unique location identifier.
	ID string `json:"id"`
	// Name is the human-readable location name.
	Name string `json:"name"`
}

// AutoAttendant is the summary form of an auto-attendant as returned by the
// list endpoint.
type AutoAttendant struct {
	// ID is the unique auto-attendant identifier.
	ID string `json:"id"`
	// Name is the auto-attendant name, unique within its location.
	Name string `json:"name"`
	// LocationID is the identifier of the owning location.
	LocationID string `json:"locationId"`
	// LocationName is the name of the owning location.
	LocationName string `json:"locationName"`
	// PhoneNumber is the directory number assigned to the auto-attendant.
	PhoneNumber string `json:"phoneNumber,omitempty"`
	// Extension is the extension assigned to the auto-attendant.
	Extension string `json:"extension,omitempty"`
}

// String renders the auto-attendant as "(location:name)" for reports.
func (aa AutoAttendant) String() string {
	return "(" + aa.LocationName + ":" + aa.Name + ")"
}

// AudioFile references an uploaded greeting asset.
type AudioFile struct {
	// Name is the file name of the uploaded asset.
	Name string `json:"name"`
	// MediaType is the media type of the asset, e.g. "WAV".
	MediaType string `json:"mediaType"`
}

// KeyConfiguration maps a dialpad key to a menu action.
type KeyConfiguration struct {
	// Key is the dialpad key, "0" through "9", "*" or "#".
	Key string `json:"key"`
	// Action is the action performed when the key is pressed.
	Action string `json:"action"`
	// Value is the action argument, e.g. a transfer destination.
	Value string `json:"value,omitempty"`
}

// Menu is the greeting and key configuration of one time profile
// (business hours or after hours).
type Menu struct {
	// Greeting is the greeting mode, DEFAULT or CUSTOM.
	Greeting Greeting `json:"greeting"`
	// ExtensionEnabled allows callers to dial extensions directly.
	ExtensionEnabled bool `json:"extensionEnabled"`
	// AudioFile references the uploaded asset; nil unless a custom greeting
	// has been configured at some point.
	AudioFile *AudioFile `json:"audioFile,omitempty"`
	// KeyConfigurations lists the configured dialpad keys.
	KeyConfigurations []KeyConfiguration `json:"keyConfigurations,omitempty"`
}

// AutoAttendantDetails is the full auto-attendant configuration as returned
// by the details endpoint and accepted by the update endpoint.
type AutoAttendantDetails struct {
	// ID is the unique auto-attendant identifier.
	ID string `json:"id,omitempty"`
	// Name is the auto-attendant name.
	Name string `json:"name"`
	// Enabled indicates whether the auto-attendant is active.
	Enabled bool `json:"enabled"`
	// PhoneNumber is the assigned directory number.
	PhoneNumber string `json:"phoneNumber,omitempty"`
	// Extension is the assigned extension.
	Extension string `json:"extension,omitempty"`
	// FirstName is the caller ID first name.
	FirstName string `json:"firstName,omitempty"`
	// LastName is the caller ID last name.
	LastName string `json:"lastName,omitempty"`
	// LanguageCode is the announcement language.
	LanguageCode string `json:"languageCode,omitempty"`
	// TimeZone is the location time zone applied to the schedules.
	TimeZone string `json:"timeZone,omitempty"`
	// BusinessSchedule names the schedule separating the two menus.
	BusinessSchedule string `json:"businessSchedule,omitempty"`
	// BusinessHoursMenu is the menu played during business hours.
	BusinessHoursMenu *Menu `json:"businessHoursMenu,omitempty"`
	// AfterHoursMenu is the menu played outside business hours.
	AfterHoursMenu *Menu `json:"afterHoursMenu,omitempty"`
}

// Clone returns a deep copy of the details so the fetched snapshot can be
// kept pristine while the copy is mutated for an update.
func (d *AutoAttendantDetails) Clone() *AutoAttendantDetails {
	if d == nil {
		return nil
	}
	c := *d
	c.BusinessHoursMenu = d.BusinessHoursMenu.clone()
	c.AfterHoursMenu = d.AfterHoursMenu.clone()
	return &c
}

func (m *Menu) clone() *Menu {
	if m == nil {
		return nil
	}
	c := *m
	if m.AudioFile != nil {
		af := *m.AudioFile
		c.AudioFile = &af
	}
	if m.KeyConfigurations != nil {
		c.KeyConfigurations = make([]KeyConfiguration, len(m.KeyConfigurations))
		copy(c.KeyConfigurations, m.KeyConfigurations)
	}
	return &c
}
