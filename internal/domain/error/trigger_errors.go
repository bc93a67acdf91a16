package error

import "errors"

// Trigger queue domain errors.
var (
	// ErrTriggerEventNotFound is returned when a trigger event does not exist.
	ErrTriggerEventNotFound = errors.New("trigger event not found")

	// ErrTriggerDispatchFailed is returned when a handler fails while
	// processing a trigger event.
	ErrTriggerDispatchFailed = errors.New("trigger dispatch failed")
)
