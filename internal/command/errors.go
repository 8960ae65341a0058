package command

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by Parse when the token list is empty.
var ErrEmptyInput = errors.New("empty input")

// UnknownCommandError reports a command name that is not in the catalog.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

// ArityError reports an argument count that does not match the
// command's declared arity.
type ArityError struct {
	Command string
	Want    int
	Got     int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s takes %d argument(s), got %d", e.Command, e.Want, e.Got)
}

// UnknownArgumentError reports an argument that is not a key of the
// command's value mapping.
type UnknownArgumentError struct {
	Command string
	Value   string
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("unknown %s argument %q", e.Command, e.Value)
}
