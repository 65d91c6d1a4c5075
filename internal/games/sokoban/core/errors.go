package core

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLevel is matched by every level parse failure.
	ErrMalformedLevel = errors.New("malformed level")

	// ErrNoPlayer is returned when a level has no player cell.
	ErrNoPlayer = errors.New("no player on map")

	// ErrOutOfBounds is returned by strict lookups outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// Level error codes.
const (
	CodeEmpty           = "EMPTY"
	CodeTooWide         = "TOO_WIDE"
	CodeTooTall         = "TOO_TALL"
	CodeNoPlayer        = "NO_PLAYER"
	CodeMultiplePlayers = "MULTIPLE_PLAYERS"
)

// LevelError contains details about a level that cannot be played.
type LevelError struct {
	Code    string
	Message string
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is makes every LevelError match ErrMalformedLevel, and NO_PLAYER match ErrNoPlayer.
func (e *LevelError) Is(target error) bool {
	switch target {
	case ErrMalformedLevel:
		return true
	case ErrNoPlayer:
		return e.Code == CodeNoPlayer
	}
	return false
}

func levelErrorf(code, format string, args ...any) *LevelError {
	return &LevelError{Code: code, Message: fmt.Sprintf(format, args...)}
}
