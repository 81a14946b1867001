// Brace format templates with indexed placeholders – nothing more!
// Copyright (C) 2017 Marcus Perlick
package bracefmt

import (
	"errors"
	"fmt"
)

// EmptyViewError is returned when an operation that needs at least
// one character is called on an empty View.
type EmptyViewError struct {
	Op string
}

func (e *EmptyViewError) Error() string {
	return fmt.Sprintf("bracefmt: %s on empty view", e.Op)
}

// OutOfRangeError reports an index or offset beyond the bounds of a
// View or its buffer.
type OutOfRangeError struct {
	Op     string
	Index  int
	Size   int
	Reason string
}

func (e *OutOfRangeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("bracefmt: %s: %s at %d (size %d)",
			e.Op,
			e.Reason,
			e.Index,
			e.Size)
	}
	return fmt.Sprintf("bracefmt: %s: index %d out of range [0,%d)",
		e.Op,
		e.Index,
		e.Size)
}

const reasonBufferExhausted = "buffer exhausted"

// BufferExhaustedError is returned when a View is extended beyond the
// end of its buffer. It unwraps to its OutOfRangeError.
type BufferExhaustedError struct {
	OutOfRangeError
}

func (e *BufferExhaustedError) Unwrap() error { return &e.OutOfRangeError }

// BufferExhausted tells if err is a BufferExhaustedError.
func BufferExhausted(err error) bool {
	var bee *BufferExhaustedError
	return errors.As(err, &bee)
}

func inTemplate(name string) string {
	if name == "" {
		return ""
	}
	return fmt.Sprintf(" in template '%s'", name)
}

// UnbalancedBraceError is a template syntax error. Either a
// placeholder's '{' is not closed before the end of the template
// (Stray is false) or there is a single '}' that neither closes a
// placeholder nor is part of an escape "}}" (Stray is true).
type UnbalancedBraceError struct {
	Template string
	Pos      Position
	Depth    int
	Stray    bool
}

func (e *UnbalancedBraceError) Error() string {
	if e.Stray {
		return fmt.Sprintf("unexpected '}' at %s%s",
			e.Pos,
			inTemplate(e.Template))
	}
	return fmt.Sprintf("unclosed '{' at %s%s: %d brace(s) open at end of template",
		e.Pos,
		inTemplate(e.Template),
		e.Depth)
}

// MalformedPlaceholderError is a template syntax error for a
// placeholder whose body does not start with an argument index.
type MalformedPlaceholderError struct {
	Template string
	Pos      Position
	Body     string
}

func (e *MalformedPlaceholderError) Error() string {
	return fmt.Sprintf("placeholder '{%s}' at %s%s: expected argument index",
		e.Body,
		e.Pos,
		inTemplate(e.Template))
}

// ArgumentIndexOutOfRangeError is a usage error: a placeholder refers
// to an argument that was not supplied.
type ArgumentIndexOutOfRangeError struct {
	Template string
	Pos      Position
	Index    int
	Count    int
}

func (e *ArgumentIndexOutOfRangeError) Error() string {
	return fmt.Sprintf("placeholder at %s%s: argument index %d, have %d argument(s)",
		e.Pos,
		inTemplate(e.Template),
		e.Index,
		e.Count)
}

// IsSyntaxError tells if err is caused by a malformed template.
func IsSyntaxError(err error) bool {
	var ube *UnbalancedBraceError
	var mpe *MalformedPlaceholderError
	return errors.As(err, &ube) || errors.As(err, &mpe)
}

// IsUsageError tells if err is caused by a mismatch between a template
// and its arguments.
func IsUsageError(err error) bool {
	var aie *ArgumentIndexOutOfRangeError
	return errors.As(err, &aie)
}

func setTemplateName(err error, name string) error {
	switch e := err.(type) {
	case *UnbalancedBraceError:
		e.Template = name
	case *MalformedPlaceholderError:
		e.Template = name
	case *ArgumentIndexOutOfRangeError:
		e.Template = name
	}
	return err
}
