package quotation

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid quotation status")
	ErrInvalidActionType = errors.New("invalid action type")
)

type Status string

const (
	StatusUploaded Status = "UPLOADED"
	StatusSent     Status = "SENT"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUploaded, StatusSent, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type ActionType string

const (
	ActionAccept ActionType = "ACCEPT"
	ActionReject ActionType = "REJECT"
)

func (a ActionType) String() string {
	return string(a)
}

func (a ActionType) IsValid() bool {
	switch a {
	case ActionAccept, ActionReject:
		return true
	default:
		return false
	}
}

// TargetStatus is the terminal status this action drives a quotation to.
func (a ActionType) TargetStatus() Status {
	if a == ActionAccept {
		return StatusAccepted
	}
	return StatusRejected
}

// PastTense is used in user-facing confirmation messages.
func (a ActionType) PastTense() string {
	if a == ActionAccept {
		return "accepted"
	}
	return "rejected"
}

func NewActionType(s string) (ActionType, error) {
	action := ActionType(s)
	if !action.IsValid() {
		return "", ErrInvalidActionType
	}
	return action, nil
}
