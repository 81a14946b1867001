// Brace format templates with indexed placeholders – nothing more!
// Copyright (C) 2017 Marcus Perlick

// Package textmessage renders template arguments with a
// golang.org/x/text/message Printer, i.e. numbers are formatted
// according to the printer's language.
package textmessage

import (
	"io"

	"github.com/fractalqb/bracefmt"
	"golang.org/x/text/message"
)

type Content struct {
	Printer *message.Printer
	Format  string
	Values  []interface{}
}

func (c Content) Emit(wr io.Writer) (n int) {
	n, err := c.Printer.Fprintf(wr, c.Format, c.Values...)
	if err != nil {
		panic(bracefmt.EmitError{Count: n, Err: err})
	}
	return n
}

func Msg(pr *message.Printer, fmt string, values ...interface{}) Content {
	return Content{pr, fmt, values}
}

// Args renders each value with Printer as if formatted with "%v".
// Content values are emitted as they are.
type Args struct {
	Printer *message.Printer
	Values  []interface{}
}

func (a Args) Len() int { return len(a.Values) }

func (a Args) RenderAt(i int) string {
	switch v := a.Values[i].(type) {
	case string:
		return v
	case bracefmt.Content:
		return bracefmt.Sprint(v)
	default:
		return a.Printer.Sprintf("%v", v)
	}
}

// Render renders tmpl with values formatted by pr.
func Render(pr *message.Printer, tmpl string, values ...interface{}) (string, error) {
	return bracefmt.RenderArgs(tmpl, Args{pr, values})
}
