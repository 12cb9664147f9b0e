package constant

// ErrorReason identifies why entered reminder data was rejected.
type ErrorReason string

const (
	// ReasonMissingTitle is reported when the title is unset or empty.
	ReasonMissingTitle ErrorReason = "MISSING_TITLE"
	// ReasonMissingLocation is reported when the location label is unset or empty.
	ReasonMissingLocation ErrorReason = "MISSING_LOCATION"
)

// Message returns the user facing text for the reason.
func (r ErrorReason) Message() string {
	switch r {
	case ReasonMissingTitle:
		return "Please enter title"
	case ReasonMissingLocation:
		return "Please select location"
	default:
		return string(r)
	}
}

// NavigationCommand tells the presentation layer where to go next.
type NavigationCommand int

const (
	// NavigateBack returns to the previous screen.
	NavigateBack NavigationCommand = iota + 1
)

// ReminderSavedMessage is the confirmation shown once a reminder is stored.
const ReminderSavedMessage = "Reminder Saved !"
