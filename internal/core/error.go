// FILE: internal/core/error.go
package core

import "fmt"

// Error codes
const (
	ErrInvalidMove    = "INVALID_MOVE"
	ErrNoPiece        = "NO_PIECE"
	ErrInvalidRequest = "INVALID_REQUEST"
	ErrInvalidFEN     = "INVALID_FEN"
)

// CodedError pairs an error message with one of the codes above
type CodedError struct {
	Code    string
	Message string
	Details string
}

func (e *CodedError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Details)
	}
	return e.Message
}

func NewError(code, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}
