// Brace format templates with indexed placeholders – nothing more!
// Copyright (C) 2017 Marcus Perlick
package bracefmt

import "strconv"

// PlaceholderSpec is the parsed body of a placeholder. Rest is the
// trailer after the argument index, e.g. ",5:x" for "{0,5:x}". It is
// kept verbatim for format directives and not interpreted here.
type PlaceholderSpec struct {
	Index int
	Rest  string
}

// ParseSpec parses the body of a placeholder, i.e. the text between
// the outer braces. The body must start with a decimal argument index.
func ParseSpec(body string) (PlaceholderSpec, error) {
	n := 0
	for n < len(body) && body[n] >= '0' && body[n] <= '9' {
		n++
	}
	if n == 0 {
		return PlaceholderSpec{}, &MalformedPlaceholderError{Body: body}
	}
	idx, err := strconv.Atoi(body[:n])
	if err != nil {
		return PlaceholderSpec{}, &MalformedPlaceholderError{Body: body}
	}
	return PlaceholderSpec{Index: idx, Rest: body[n:]}, nil
}

func (s PlaceholderSpec) String() string {
	return "{" + strconv.Itoa(s.Index) + s.Rest + "}"
}
