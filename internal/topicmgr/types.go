// Package topicmgr keeps the catalogue of event topics the modules publish,
// so start-up can reject clashing or malformed names.
package topicmgr

import "time"

// Topic is anything with a name and a description, such as pubsub.Event[T].
type Topic interface {
	Name() string
	Description() string
}

// Entry is a registered topic and the module that owns it.
type Entry struct {
	Name         string    `json:"name"`
	Module       string    `json:"module"`
	Description  string    `json:"description"`
	RegisteredAt time.Time `json:"registered_at"`
}

// ErrorType classifies registry failures.
type ErrorType string

const (
	ErrorDuplicateRegistration ErrorType = "duplicate_registration"
	ErrorValidationFailed      ErrorType = "validation_failed"
)

// TopicError is returned by Register.
type TopicError struct {
	Type    ErrorType `json:"type"`
	Topic   string    `json:"topic"`
	Module  string    `json:"module"`
	Message string    `json:"message"`
	Cause   error     `json:"cause,omitempty"`
}

func (e *TopicError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *TopicError) Unwrap() error {
	return e.Cause
}
