// Brace format templates with indexed placeholders – nothing more!
// Copyright (C) 2017 Marcus Perlick
package bracefmt

// Kind tells literal tokens from placeholder tokens.
type Kind int

const (
	Literal Kind = iota
	Placeholder
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Placeholder:
		return "Placeholder"
	default:
		return "Kind(?)"
	}
}

// Token is one piece of a template: either literal text or a
// placeholder. View covers the token's raw text in the template.
type Token struct {
	Kind Kind
	View View
}

func newToken(raw View) Token {
	if c, err := raw.Peek(0); err == nil && c == '{' && !raw.Equals("{{") {
		return Token{Kind: Placeholder, View: raw}
	}
	return Token{Kind: Literal, View: raw}
}

// Raw returns the token's text as it appears in the template.
func (t Token) Raw() string { return t.View.String() }

// Text returns the token's meaning: for a literal the text with an
// escaped brace resolved, for a placeholder the raw text.
func (t Token) Text() string {
	if t.Kind == Literal && (t.View.Equals("{{") || t.View.Equals("}}")) {
		return t.Raw()[:1]
	}
	return t.Raw()
}

// Offset is the byte offset of the token in its template.
func (t Token) Offset() int { return t.View.Start() }

// Pos is the position of the token in its template.
func (t Token) Pos() Position { return PositionOf(t.View.buf, t.View.Start()) }

// Spec parses the placeholder body of a Placeholder token.
func (t Token) Spec() (PlaceholderSpec, error) {
	raw := t.Raw()
	if t.Kind != Placeholder || len(raw) < 2 {
		return PlaceholderSpec{}, &MalformedPlaceholderError{
			Pos:  t.Pos(),
			Body: raw}
	}
	spec, err := ParseSpec(raw[1 : len(raw)-1])
	if err != nil {
		err.(*MalformedPlaceholderError).Pos = t.Pos()
	}
	return spec, err
}

// step moves one byte from the front of right to the end of left.
// Both views must be adjacent in the same buffer.
func step(left, right *View) error {
	popped, err := right.PopFront()
	if err != nil {
		return err
	}
	snuck, err := left.ExtendRight()
	if err != nil {
		return err
	}
	if popped != snuck {
		return &OutOfRangeError{
			Op:     "split",
			Index:  left.end,
			Size:   len(left.buf),
			Reason: "left and right view out of step"}
	}
	return nil
}

// SplitOne splits the raw text of the next token off v. The returned
// left view covers exactly one token, right is the remainder of v.
// Left is one of:
//
//   - an escaped brace "{{" or "}}"
//   - a placeholder from '{' up to the matching '}'
//   - the longest run of text without braces
func SplitOne(v View) (left, right View, err error) {
	if v.Empty() {
		return v, v, &EmptyViewError{Op: "split"}
	}
	left, right = v.head(), v
	c0, _ := right.Peek(0)
	c1, _ := right.Peek(1)
	switch {
	case (c0 == '{' || c0 == '}') && right.Size() >= 2 && c1 == c0:
		for i := 0; i < 2; i++ {
			if err = step(&left, &right); err != nil {
				return v, v, err
			}
		}
	case c0 == '{':
		depth := 0
		for {
			c, perr := right.Peek(0)
			if perr != nil {
				return v, v, &UnbalancedBraceError{
					Pos:   PositionOf(v.buf, v.start),
					Depth: depth}
			}
			switch c {
			case '{':
				depth++
			case '}':
				depth--
			}
			if err = step(&left, &right); err != nil {
				return v, v, err
			}
			if depth == 0 {
				break
			}
		}
	case c0 == '}':
		return v, v, &UnbalancedBraceError{
			Pos:   PositionOf(v.buf, v.start),
			Stray: true}
	default:
		for !right.Empty() {
			if c, _ := right.Peek(0); c == '{' || c == '}' {
				break
			}
			if err = step(&left, &right); err != nil {
				return v, v, err
			}
		}
	}
	if left.start != v.start || left.end != right.start || right.end != v.end {
		return v, v, &OutOfRangeError{
			Op:     "split",
			Index:  left.end,
			Size:   v.Size(),
			Reason: "left and right view do not cover input"}
	}
	return left, right, nil
}

// Tokenizer splits a template into tokens one at a time. Use it like
// a bufio.Scanner:
//
//	tz := NewTokenizer(tmpl)
//	for tz.Scan() {
//		tok := tz.Token()
//		…
//	}
//	if err := tz.Err(); err != nil {
//		…
//	}
type Tokenizer struct {
	tmpl string
	rest View
	tok  Token
	err  error
}

func NewTokenizer(tmpl string) *Tokenizer {
	return &Tokenizer{tmpl: tmpl, rest: NewView(tmpl)}
}

// Reset restarts tokenization from the beginning of the template.
func (tz *Tokenizer) Reset() {
	tz.rest = NewView(tz.tmpl)
	tz.tok = Token{}
	tz.err = nil
}

// Scan advances to the next token. It returns false at the end of the
// template or on the first error.
func (tz *Tokenizer) Scan() bool {
	if tz.err != nil || tz.rest.Empty() {
		return false
	}
	left, right, err := SplitOne(tz.rest)
	if err != nil {
		tz.err = err
		return false
	}
	tz.tok = newToken(left)
	tz.rest = right
	return true
}

// Token returns the token found by the last successful Scan.
func (tz *Tokenizer) Token() Token { return tz.tok }

// Err returns the error that stopped Scan, if any.
func (tz *Tokenizer) Err() error { return tz.err }

// Tokenize splits the complete template into tokens.
func Tokenize(tmpl string) ([]Token, error) {
	var res []Token
	tz := NewTokenizer(tmpl)
	for tz.Scan() {
		res = append(res, tz.Token())
	}
	if err := tz.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
