// Package errors creates formatted errors that keep track of a wrapped cause.
package errors

import (
	"fmt"
)

type err struct {
	msg  string
	args []interface{}
}

func (err *err) Error() string {
	return fmt.Sprintf(err.msg, err.args...)
}

// Unwrap returns the first argument that is itself an error, if any.
func (err *err) Unwrap() error {
	for _, arg := range err.args {
		if wrapped, ok := arg.(error); ok {
			return wrapped
		}
	}
	return nil
}

// New formats msg with args, as in fmt.Sprintf. Errors are compared by identity,
// so package-level values work as sentinels.
func New(msg string, args ...interface{}) error {
	return &err{msg, args}
}
