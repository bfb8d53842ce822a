package model

// SubmitState represents the state of the print control
type SubmitState string

const (
	// SubmitStateIdle means no print request is in flight
	SubmitStateIdle SubmitState = "Idle"

	// SubmitStateSubmitting means a print request is in flight
	SubmitStateSubmitting SubmitState = "Submitting"
)

// String returns the string representation of SubmitState
func (s SubmitState) String() string {
	return string(s)
}

// IsBusy returns true while a print request is in flight
func (s SubmitState) IsBusy() bool {
	return s == SubmitStateSubmitting
}

// NotifyKind classifies a user-facing print notification
type NotifyKind int

const (
	NotifySuccess NotifyKind = iota
	NotifyFailure
)

// String returns a human-friendly name for the notification kind
func (k NotifyKind) String() string {
	switch k {
	case NotifySuccess:
		return "Success"
	case NotifyFailure:
		return "Failure"
	default:
		return "Unknown"
	}
}
