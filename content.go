// Brace format templates with indexed placeholders – nothing more!
// Copyright (C) 2017 Marcus Perlick
package bracefmt

import (
	"bytes"
	"fmt"
	"io"
)

// Content provides the interface Emit that will write the content to
// an io.Writer.
//
// Different than the standard write methods, Emit only returns the
// number of bytes written. If an error occurs Emit should panic with
// an EmitError. Applications are advised to use CatchEmit to switch
// back to standard (n int, err error) I/O results.
type Content interface {
	Emit(wr io.Writer) (wrbyte int)
}

type EmitError struct {
	Count int
	Err   error
}

func (ee EmitError) Error() string {
	return ee.Err.Error()
}

func (ee EmitError) Unwrap() error { return ee.Err }

// CatchEmit emits c to wr and turns an EmitError panic into an error
// result. Other panics are passed on.
func CatchEmit(c Content, wr io.Writer) (n int, err error) {
	defer func() {
		if rek := recover(); rek != nil {
			if ee, ok := rek.(EmitError); ok {
				n = ee.Count
				err = ee.Err
			} else {
				panic(rek)
			}
		}
	}()
	n = c.Emit(wr)
	return n, nil
}

type empty int

func (e empty) Emit(wr io.Writer) int {
	return 0
}

// Constant Empty can be use as empty Content, i.e. nothing will be
// emitted as output.
const Empty empty = 0

type Generator func(wr io.Writer) int

func (f Generator) Emit(wr io.Writer) int {
	return f(wr)
}

type fmtCnt struct {
	fmt string
	val []interface{}
}

// Printf returns Content that is formatted with fmt.Fprintf.
func Printf(fmt string, vs ...interface{}) Content {
	return fmtCnt{fmt, vs}
}

func (fc fmtCnt) Emit(wr io.Writer) int {
	if n, err := fmt.Fprintf(wr, fc.fmt, fc.val...); err != nil {
		panic(EmitError{n, err})
	} else {
		return n
	}
}

type Print struct {
	V interface{}
}

func (c Print) Emit(wr io.Writer) int {
	if n, err := fmt.Fprint(wr, c.V); err != nil {
		panic(EmitError{n, err})
	} else {
		return n
	}
}

type Data []byte

func (d Data) Emit(wr io.Writer) int {
	n, err := wr.Write(d)
	if err != nil {
		panic(EmitError{n, err})
	} else {
		return n
	}
}

// Sprint renders a single argument value. Content is emitted, strings
// are used as they are and anything else is printed with fmt.Sprint.
func Sprint(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case Content:
		buf := bytes.NewBuffer(nil)
		x.Emit(buf)
		return buf.String()
	default:
		return fmt.Sprint(x)
	}
}

// Args is the list of arguments a template is rendered with.
// RenderAt(i) is called once for each placeholder that refers to
// argument i. It must not have side effects.
type Args interface {
	Len() int
	RenderAt(i int) string
}

// Values are arguments of arbitrary type that are rendered with
// Sprint.
type Values []interface{}

func (vs Values) Len() int { return len(vs) }

func (vs Values) RenderAt(i int) string { return Sprint(vs[i]) }

type Strings []string

func (ss Strings) Len() int { return len(ss) }

func (ss Strings) RenderAt(i int) string { return ss[i] }
