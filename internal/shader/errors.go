package shader

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArgument matches errors for shader names that cannot be used.
	ErrInvalidArgument = errors.New("invalid shader argument")
	// ErrNotFound matches errors for shaders with no file on disk.
	ErrNotFound = errors.New("shader not found")
)

// InvalidArgumentError is returned when constructing a shader from a bare
// name that is empty or contains a '.'.
type InvalidArgumentError struct {
	Arg    string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("shader name '%s' %s", e.Arg, e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NotFoundError is returned when a shader cannot be resolved to a file.
// Path is set for explicit paths, Dirs for searches by name.
type NotFoundError struct {
	Name string
	Path string
	Dirs []string
}

func (e *NotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("no file found at '%s'", e.Path)
	}
	return fmt.Sprintf("shader '%s' could not be found in any of the following directories:\n\t%s",
		e.Name, strings.Join(e.Dirs, "\n\t"))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
