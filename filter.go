package coi

import (
	"errors"
	"fmt"
)

// MessageFilter specifies how a COI server filters incoming chat messages.
type MessageFilter int

const (
	// MessageFilterNone leaves chat messages in INBOX.
	MessageFilterNone MessageFilter = iota
	// MessageFilterActive moves chat messages to the chat mailbox as soon
	// as they arrive.
	MessageFilterActive
	// MessageFilterSeen moves chat messages to the chat mailbox once they
	// have been marked as seen.
	MessageFilterSeen
)

// ErrUnknownMessageFilter is returned when a string or integer doesn't name
// a message filter. It is unrelated to any server error: it indicates bad
// local data, not a failed command.
var ErrUnknownMessageFilter = errors.New("coi: unknown message filter")

// String returns the canonical wire value of the filter, one of "none",
// "active" or "seen".
func (filter MessageFilter) String() string {
	switch filter {
	case MessageFilterNone:
		return "none"
	case MessageFilterActive:
		return "active"
	case MessageFilterSeen:
		return "seen"
	default:
		panic(fmt.Errorf("coi: unknown message filter %d", int(filter)))
	}
}

// ParseMessageFilter parses the canonical wire value of a message filter.
// Only the exact strings "none", "active" and "seen" are accepted.
func ParseMessageFilter(s string) (MessageFilter, error) {
	switch s {
	case "none":
		return MessageFilterNone, nil
	case "active":
		return MessageFilterActive, nil
	case "seen":
		return MessageFilterSeen, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMessageFilter, s)
	}
}

// MessageFilterFromInt converts the stable integer form used in settings
// storage (0 = none, 1 = active, 2 = seen) back to a MessageFilter.
func MessageFilterFromInt(v int) (MessageFilter, error) {
	switch v {
	case 0, 1, 2:
		return MessageFilter(v), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownMessageFilter, v)
	}
}
