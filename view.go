// Brace format templates with indexed placeholders – nothing more!
// Copyright (C) 2017 Marcus Perlick
package bracefmt

// View is a read-only window [start, end) into a string. Many views
// may share one buffer. Methods with pointer receivers only move the
// view's own offsets – they never affect other views of the same
// buffer.
type View struct {
	buf        string
	start, end int
}

// NewView returns a View of the whole string s.
func NewView(s string) View {
	return View{buf: s, end: len(s)}
}

func (v View) Start() int { return v.start }

func (v View) End() int { return v.end }

func (v View) Size() int { return v.end - v.start }

func (v View) Empty() bool { return v.start == v.end }

func (v View) valid() bool {
	return 0 <= v.start && v.start <= v.end && v.end <= len(v.buf)
}

// Text returns the part of the buffer that is visible through v.
func (v View) Text() (string, error) {
	if !v.valid() {
		return "", &OutOfRangeError{
			Op:     "text",
			Index:  v.end,
			Size:   len(v.buf),
			Reason: "invalid view bounds"}
	}
	return v.buf[v.start:v.end], nil
}

// String returns the text of v or "" if v is invalid.
func (v View) String() string {
	s, _ := v.Text()
	return s
}

// Peek returns the i-th byte of v without consuming it.
func (v View) Peek(i int) (byte, error) {
	if i < 0 || i >= v.Size() {
		return 0, &OutOfRangeError{Op: "peek", Index: i, Size: v.Size()}
	}
	return v.buf[v.start+i], nil
}

// PopFront consumes and returns the first byte of v.
func (v *View) PopFront() (byte, error) {
	if v.Empty() {
		return 0, &EmptyViewError{Op: "pop front"}
	}
	c := v.buf[v.start]
	v.start++
	return c, nil
}

// ExtendRight moves the end of v one byte further into its buffer and
// returns the byte that became visible.
func (v *View) ExtendRight() (byte, error) {
	if v.end >= len(v.buf) {
		return 0, &BufferExhaustedError{OutOfRangeError{
			Op:     "extend right",
			Index:  v.end,
			Size:   len(v.buf),
			Reason: reasonBufferExhausted}}
	}
	c := v.buf[v.end]
	v.end++
	return c, nil
}

// Equals compares the text of v to lit. The buffer of v does not
// matter.
func (v View) Equals(lit string) bool {
	if !v.valid() || v.Size() != len(lit) {
		return false
	}
	return v.buf[v.start:v.end] == lit
}

// head returns the empty view at the start of v.
func (v View) head() View {
	return View{buf: v.buf, start: v.start, end: v.start}
}
