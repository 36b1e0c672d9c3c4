package gomap

import (
	"errors"
	"fmt"
)

var ErrBuild = errors.New("build error")

// BuildError reports a failure inside the builder itself, as opposed to a
// failing accessor, which becomes part of the tree.
type BuildError struct {
	FieldPath string // e.g. "Boss.Reports[2]"
	Panic     any
}

func (e *BuildError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("build error at %s: %v", e.FieldPath, e.Panic)
	}
	return fmt.Sprintf("build error: %v", e.Panic)
}

func (e *BuildError) Unwrap() error {
	if err, ok := e.Panic.(error); ok {
		return err
	}
	return nil
}

func (e *BuildError) Is(target error) bool {
	return target == ErrBuild
}

// PanicError is the error recorded for an accessor that panicked.
type PanicError struct {
	Accessor string
	Value    any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Accessor, e.Value)
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
