// Brace format templates with indexed placeholders – nothing more!
// Copyright (C) 2017 Marcus Perlick
package bracefmt

import (
	"fmt"
	"io"
	"strings"
)

// off is the byte offset in the template source, -1 if built by PhSpec.
type placeholder struct {
	spec PlaceholderSpec
	off  int
}

// Template holds a sequence of fixed content fragments that have to be
// emitted verbatim. These fragments are intermixed with placeholders
// that refer to arguments by index. The same argument can appear
// several times in different positions within a template.
//
// Fragment i is emitted before placeholder i, the last fragment after
// the last placeholder. Fragments may be empty. A Template is not
// modified by rendering and can be used concurrently.
type Template struct {
	Name string
	src  string
	fix  []string
	phs  []placeholder
}

func NewTemplate(name string) *Template {
	return &Template{Name: name, fix: []string{""}}
}

// AddStr adds str as static content to the end of the template. Note
// that static content is merged to preceding static content as long as
// no placeholder was added in between.
func (t *Template) AddStr(str string) *Template {
	t.fix[len(t.fix)-1] += str
	return t
}

// Ph adds a placeholder for argument idx to the end of the template.
func (t *Template) Ph(idx int) *Template {
	return t.PhSpec(PlaceholderSpec{Index: idx})
}

// PhSpec adds a placeholder to the end of the template.
func (t *Template) PhSpec(spec PlaceholderSpec) *Template {
	t.addPh(spec, -1)
	return t
}

func (t *Template) addPh(spec PlaceholderSpec, off int) {
	t.phs = append(t.phs, placeholder{spec, off})
	t.fix = append(t.fix, "")
}

// FixCount returns the number of pieces of static content in the
// template, including empty ones.
func (t *Template) FixCount() int {
	return len(t.fix)
}

// FixAt returns the piece of static content with the index idx
// (indices are zero-based).
func (t *Template) FixAt(idx int) string {
	if idx < 0 || idx >= len(t.fix) {
		return ""
	}
	return t.fix[idx]
}

// PhCount returns the number of placeholders in the template. Each
// occurrence counts.
func (t *Template) PhCount() int {
	return len(t.phs)
}

// PhAt returns the placeholder that will be emitted between static
// content idx and idx+1.
func (t *Template) PhAt(idx int) (spec PlaceholderSpec, ok bool) {
	if idx < 0 || idx >= len(t.phs) {
		return PlaceholderSpec{}, false
	}
	return t.phs[idx].spec, true
}

// Indices returns the distinct argument indices used by the template
// in the order of their first occurrence.
func (t *Template) Indices() []int {
	seen := make(map[int]bool)
	res := make([]int, 0, len(t.phs))
	for _, ph := range t.phs {
		if !seen[ph.spec.Index] {
			seen[ph.spec.Index] = true
			res = append(res, ph.spec.Index)
		}
	}
	return res
}

// ArgCount returns the minimal number of arguments the template needs.
func (t *Template) ArgCount() (n int) {
	for _, ph := range t.phs {
		if ph.spec.Index >= n {
			n = ph.spec.Index + 1
		}
	}
	return n
}

// Static returns the template's text if it has no placeholders.
func (t *Template) Static() (string, bool) {
	if len(t.phs) == 0 {
		return t.fix[0], true
	}
	return "", false
}

// String returns the template source in canonical form, i.e. with
// braces in static content escaped.
func (t *Template) String() string {
	var sb strings.Builder
	esc := strings.NewReplacer("{", "{{", "}", "}}")
	for i, ph := range t.phs {
		esc.WriteString(&sb, t.fix[i])
		sb.WriteString(ph.spec.String())
	}
	esc.WriteString(&sb, t.fix[len(t.phs)])
	return sb.String()
}

// Check verifies that args has an argument for every placeholder.
func (t *Template) Check(args Args) error {
	n := 0
	if args != nil {
		n = args.Len()
	}
	for _, ph := range t.phs {
		if ph.spec.Index >= n {
			var pos Position
			if ph.off >= 0 {
				pos = PositionOf(t.src, ph.off)
			}
			return &ArgumentIndexOutOfRangeError{
				Template: t.Name,
				Pos:      pos,
				Index:    ph.spec.Index,
				Count:    n}
		}
	}
	return nil
}

// BounT is a Template bound to its arguments. Use Template.Bind to
// create one. A bound template itself is Content – be aware of
// infinite recursion!
type BounT struct {
	tmpl *Template
	args Args
}

// Bind binds args to t after checking that every placeholder has its
// argument.
func (t *Template) Bind(args Args) (*BounT, error) {
	if err := t.Check(args); err != nil {
		return nil, err
	}
	return &BounT{tmpl: t, args: args}, nil
}

// MustBind is like Bind but panics on error.
func (t *Template) MustBind(args Args) *BounT {
	bt, err := t.Bind(args)
	if err != nil {
		panic(err)
	}
	return bt
}

func (bt *BounT) Template() *Template {
	return bt.tmpl
}

// Method Emit panics with an EmitError when an error occurs during
// emitting. Use CatchEmit() to easily get back to an io.Writer like
// error return.
func (bt *BounT) Emit(out io.Writer) (n int) {
	write := func(s string) {
		if c, err := io.WriteString(out, s); err != nil {
			panic(EmitError{n + c, err})
		} else {
			n += c
		}
	}
	for i, ph := range bt.tmpl.phs {
		write(bt.tmpl.fix[i])
		write(bt.args.RenderAt(ph.spec.Index))
	}
	write(bt.tmpl.fix[len(bt.tmpl.phs)])
	return n
}

// Render substitutes args into the template. On error no partial
// result is returned.
func (t *Template) Render(args Args) (string, error) {
	bt, err := t.Bind(args)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if _, err = CatchEmit(bt, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Fprint renders the template with args to wr. Nothing is written if
// rendering fails.
func (t *Template) Fprint(wr io.Writer, args Args) (int, error) {
	res, err := t.Render(args)
	if err != nil {
		return 0, err
	}
	return io.WriteString(wr, res)
}

// Compile parses tmpl into a Template with the given name.
func Compile(name, tmpl string) (*Template, error) {
	res := NewTemplate(name)
	res.src = tmpl
	var lit strings.Builder
	tz := NewTokenizer(tmpl)
	for tz.Scan() {
		tok := tz.Token()
		switch tok.Kind {
		case Literal:
			lit.WriteString(tok.Text())
		case Placeholder:
			spec, err := tok.Spec()
			if err != nil {
				return nil, setTemplateName(err, name)
			}
			res.AddStr(lit.String())
			lit.Reset()
			res.addPh(spec, tok.Offset())
		}
	}
	if err := tz.Err(); err != nil {
		return nil, setTemplateName(err, name)
	}
	res.AddStr(lit.String())
	return res, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(name, tmpl string) *Template {
	res, err := Compile(name, tmpl)
	if err != nil {
		panic(fmt.Errorf("bracefmt: %w", err))
	}
	return res
}

// RenderArgs compiles tmpl and renders it with args.
func RenderArgs(tmpl string, args Args) (string, error) {
	t, err := Compile("", tmpl)
	if err != nil {
		return "", err
	}
	return t.Render(args)
}

// Render compiles tmpl and renders it with the argument values args.
func Render(tmpl string, args ...interface{}) (string, error) {
	return RenderArgs(tmpl, Values(args))
}
