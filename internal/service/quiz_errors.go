package service

import "fmt"

// SessionState tracks where a quiz session is in its lifecycle.
type SessionState int

const (
	StateSelecting SessionState = iota
	StateActive
	StateCompleted
)

func (s SessionState) String() string {
	switch s {
	case StateSelecting:
		return "selecting"
	case StateActive:
		return "active"
	case StateCompleted:
		return "completed"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

// ConfigurationError reports a module that cannot be quizzed, e.g. one with no
// questions. The caller has to pick another module or add questions first.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// InvalidStateError reports an operation invoked outside its valid session
// state. It indicates a caller bug, not a data problem, and must never be
// swallowed.
type InvalidStateError struct {
	Op       string
	Expected SessionState
	Actual   SessionState
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: session must be %s, is %s", e.Op, e.Expected, e.Actual)
}
