package pkg

import (
	"errors"
	"fmt"
)

// error

type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s", e.msg)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Code() error {
	return e.code
}

// Is lets errors.Is match the sentinel code as well as the wrapped cause.
func (e *Error) Is(target error) bool {
	return errors.Is(e.code, target)
}

// ErrorCode returns the sentinel code carried by err, or nil when err is not
// a wrapped *Error.
func ErrorCode(err error) error {
	var wrapped *Error
	if errors.As(err, &wrapped) {
		return wrapped.Code()
	}
	return nil
}

var (
	ErrInternalServerError = errors.New("internal Server Error")
	ErrNotFound            = errors.New("your requested Item is not found")
	ErrBadParamInput       = errors.New("given Param is not valid")

	ErrInvalidCoordinate = errors.New("coordinate is not a finite number")
	ErrEmptyInput        = errors.New("centroid of zero points is undefined")
	ErrDegeneratePolygon = errors.New("polygon needs at least 3 vertices")
)

var MessageInternalServerError string = "internal server error"
