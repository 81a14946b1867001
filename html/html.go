// Brace format templates with indexed placeholders – nothing more!
// Copyright (C) 2017-2018 Marcus Perlick
package html

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/fractalqb/bracefmt"
)

var (
	errInvalidUTF8    = errors.New("utf8 rune decoding error")
	errIncompleteRune = errors.New("incomplete utf8 rune at end of content")
)

var entities = map[rune]string{
	'\000': "\uFFFD",
	'<':    "&lt;",
	'>':    "&gt;",
	'&':    "&amp;",
	'"':    "&quot;",
	'\'':   "&apos;",
}

// EscWriter HTML-escapes everything written to it and passes the
// result on to Escape. Multi-byte runes may be split across calls to
// Write.
type EscWriter struct {
	Escape io.Writer
	buf    [utf8.UTFMax]byte
	wp     int
}

func (hew *EscWriter) Write(p []byte) (n int, err error) {
	for _, b := range p {
		hew.buf[hew.wp] = b
		hew.wp++
		buf := hew.buf[:hew.wp]
		if !utf8.FullRune(buf) {
			continue
		}
		hew.wp = 0
		r, size := utf8.DecodeRune(buf)
		if r == utf8.RuneError && size == 1 {
			return n, errInvalidUTF8
		}
		var i int
		if ent, ok := entities[r]; ok {
			i, err = io.WriteString(hew.Escape, ent)
		} else {
			i, err = hew.Escape.Write(buf)
		}
		n += i
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Esc HTML-escapes str. Invalid UTF-8 makes it panic with a
// bracefmt.EmitError, i.e. during rendering it becomes an error result.
func Esc(str string) string {
	buf := bytes.NewBuffer(nil)
	Escaper{bracefmt.Data(str)}.Emit(buf)
	return buf.String()
}

// Escaper is Content that HTML-escapes the wrapped content.
type Escaper struct {
	Cnt bracefmt.Content
}

func (hc Escaper) Emit(wr io.Writer) int {
	esc := EscWriter{Escape: wr}
	n := hc.Cnt.Emit(&esc)
	if esc.wp != 0 {
		panic(bracefmt.EmitError{Count: n, Err: errIncompleteRune})
	}
	return n
}

// Escaped wraps an argument value such that it is rendered
// HTML-escaped.
func Escaped(v interface{}) bracefmt.Content {
	if c, ok := v.(bracefmt.Content); ok {
		return Escaper{c}
	}
	return Escaper{bracefmt.Print{V: v}}
}

// Args HTML-escapes every argument of the wrapped Args.
type Args struct {
	bracefmt.Args
}

func (a Args) RenderAt(i int) string {
	return Esc(a.Args.RenderAt(i))
}

// Render is like bracefmt.Render but HTML-escapes all arguments. The
// template's static text is used as it is.
func Render(tmpl string, args ...interface{}) (string, error) {
	return bracefmt.RenderArgs(tmpl, Args{bracefmt.Values(args)})
}

// Span wraps content into a HTML <span></span> element
type Span struct {
	id      string
	class   string
	Wrapped bracefmt.Content
}

func NewSpan(around bracefmt.Content, spanId string, spanClass string) *Span {
	res := Span{id: Esc(spanId), class: Esc(spanClass), Wrapped: around}
	return &res
}

func (s *Span) Emit(wr io.Writer) (n int) {
	var err error
	switch {
	case len(s.id) > 0 && len(s.class) > 0:
		n, err = fmt.Fprintf(wr, "<span id=\"%s\" class=\"%s\">", s.id, s.class)
	case len(s.id) > 0:
		n, err = fmt.Fprintf(wr, "<span id=\"%s\">", s.id)
	case len(s.class) > 0:
		n, err = fmt.Fprintf(wr, "<span class=\"%s\">", s.class)
	default:
		n, err = io.WriteString(wr, "<span>")
	}
	if err != nil {
		panic(bracefmt.EmitError{Count: n, Err: err})
	}
	n += s.Wrapped.Emit(wr)
	if c, err := io.WriteString(wr, "</span>"); err != nil {
		panic(bracefmt.EmitError{Count: n + c, Err: err})
	} else {
		n += c
	}
	return n
}
