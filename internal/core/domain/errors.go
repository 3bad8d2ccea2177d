package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token expired")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrBadRequest    = errors.New("bad request")
)

// Error pairs a sentinel with a caller-facing message. Handlers match the
// sentinel with errors.Is and serialize the message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Message: msg} }

func AlreadyExists(msg string) error { return &Error{Kind: ErrAlreadyExists, Message: msg} }

func InvalidToken(msg string) error { return &Error{Kind: ErrInvalidToken, Message: msg} }

func Unauthorized(msg string) error { return &Error{Kind: ErrUnauthorized, Message: msg} }

func BadRequest(msg string) error { return &Error{Kind: ErrBadRequest, Message: msg} }
