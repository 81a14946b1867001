// Brace format templates with indexed placeholders – nothing more!
// Copyright (C) 2017 Marcus Perlick
package bracefmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stvp/assert"
)

func mustRender(t *testing.T, tmpl string, args ...interface{}) string {
	res, err := Render(tmpl, args...)
	if err != nil {
		t.Fatalf("render '%s': %s", tmpl, err)
	}
	return res
}

func TestEmptyTemplate(t *testing.T) {
	tmpl := NewTemplate(t.Name())
	assert.Equal(t, 1, tmpl.FixCount())
	assert.Equal(t, 0, tmpl.PhCount())
	assert.Equal(t, 0, tmpl.ArgCount())
	s, ok := tmpl.Static()
	assert.Equal(t, true, ok)
	assert.Equal(t, "", s)
}

func TestMergeFix(t *testing.T) {
	tmpl := NewTemplate(t.Name())
	tmpl.AddStr("<thisisfix1>")
	tmpl.AddStr("<thisisfix2>")
	assert.Equal(t, 1, tmpl.FixCount())
	assert.Equal(t, "<thisisfix1><thisisfix2>", tmpl.FixAt(0))
}

func TestLeadingPlaceholder(t *testing.T) {
	tmpl := NewTemplate(t.Name()).Ph(0).AddStr("bar")
	assert.Equal(t, 2, tmpl.FixCount())
	assert.Equal(t, "", tmpl.FixAt(0))
	assert.Equal(t, "bar", tmpl.FixAt(1))
	spec, ok := tmpl.PhAt(0)
	assert.Equal(t, true, ok)
	assert.Equal(t, 0, spec.Index)
	_, ok = tmpl.PhAt(1)
	assert.Equal(t, false, ok)
}

func TestTwoPlaceholders(t *testing.T) {
	tmpl := NewTemplate(t.Name()).Ph(1).Ph(0)
	assert.Equal(t, 3, tmpl.FixCount(), "fixed fragments")
	assert.Equal(t, 2, tmpl.PhCount())
	_, ok := tmpl.Static()
	assert.Equal(t, false, ok)
	res, err := tmpl.Render(Strings{"a", "b"})
	assert.Nil(t, err)
	assert.Equal(t, "ba", res)
}

func TestCompile(t *testing.T) {
	tmpl, err := Compile(t.Name(), "x={0}, {{y}}={1,5:x}{0}")
	assert.Nil(t, err)
	assert.Equal(t, t.Name(), tmpl.Name)
	assert.Equal(t, 4, tmpl.FixCount())
	assert.Equal(t, "x=", tmpl.FixAt(0))
	assert.Equal(t, ", {y}=", tmpl.FixAt(1))
	assert.Equal(t, "", tmpl.FixAt(2))
	assert.Equal(t, "", tmpl.FixAt(3))
	spec, _ := tmpl.PhAt(1)
	assert.Equal(t, PlaceholderSpec{Index: 1, Rest: ",5:x"}, spec)
	if diff := cmp.Diff([]int{0, 1}, tmpl.Indices()); diff != "" {
		t.Errorf("indices (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, tmpl.ArgCount())
	assert.Equal(t, "x={0}, {{y}}={1,5:x}{0}", tmpl.String())
}

func TestCompile_static(t *testing.T) {
	tmpl, err := Compile(t.Name(), "a{{b}}")
	assert.Nil(t, err)
	s, ok := tmpl.Static()
	assert.Equal(t, true, ok)
	assert.Equal(t, "a{b}", s)
	res, err := tmpl.Render(nil)
	assert.Nil(t, err)
	assert.Equal(t, "a{b}", res)
}

func TestCompile_errorNamesTemplate(t *testing.T) {
	_, err := Compile("greet", "hi {x}")
	assert.NotNil(t, err)
	assert.Equal(t,
		"placeholder '{x}' at 1:4 in template 'greet': expected argument index",
		err.Error())
	_, err = Compile("greet", "hi {0")
	assert.Equal(t,
		"unclosed '{' at 1:4 in template 'greet': 1 brace(s) open at end of template",
		err.Error())
}

func TestRender_escapes(t *testing.T) {
	assert.Equal(t, "{", mustRender(t, "{{"))
	assert.Equal(t, "}", mustRender(t, "}}"))
	assert.Equal(t, "{}", mustRender(t, "{{}}"))
	assert.Equal(t, "{x}", mustRender(t, "{{{0}}}", "x"))
	assert.Equal(t, "", mustRender(t, ""))
}

func TestRender_substitution(t *testing.T) {
	assert.Equal(t, "x", mustRender(t, "{0}", "x"))
	assert.Equal(t, "a-b", mustRender(t, "{0}-{1}", "a", "b"))
	assert.Equal(t, "b-a", mustRender(t, "{1}-{0}", "a", "b"))
	assert.Equal(t, "zz", mustRender(t, "{0}{0}", "z"))
	assert.Equal(t, "x=42!", mustRender(t, "x={0}!", 42))
	assert.Equal(t, "[a]", mustRender(t, "[{0,5:{x}}]", "a"))
	assert.Equal(t, "unused args", mustRender(t, "unused args", 1, 2))
}

func TestRender_errors(t *testing.T) {
	_, err := Render("{0")
	var ube *UnbalancedBraceError
	assert.Equal(t, true, errors.As(err, &ube), "expected unbalanced brace, got", err)
	assert.Equal(t, true, IsSyntaxError(err))

	res, err := Render("{0}")
	assert.Equal(t, "", res)
	var aie *ArgumentIndexOutOfRangeError
	assert.Equal(t, true, errors.As(err, &aie), "expected index out of range, got", err)
	assert.Equal(t, 0, aie.Index)
	assert.Equal(t, 0, aie.Count)
	assert.Equal(t, true, IsUsageError(err))
	assert.Equal(t, false, IsSyntaxError(err))

	_, err = Render("{x}")
	var mpe *MalformedPlaceholderError
	assert.Equal(t, true, errors.As(err, &mpe), "expected malformed placeholder, got", err)
	assert.Equal(t, false, IsUsageError(err))

	_, err = Render("a\n{0} {2}", "x", "y")
	assert.Equal(t, true, errors.As(err, &aie))
	assert.Equal(t, 2, aie.Index)
	assert.Equal(t, 2, aie.Count)
	assert.Equal(t, Position{Offset: 6, Line: 2, Column: 5}, aie.Pos)
}

func TestCompile_linear(t *testing.T) {
	src := strings.Repeat("ab\n{0}", 100000)
	start := time.Now()
	tmpl, err := Compile(t.Name(), src)
	if d := time.Since(start); d > 2*time.Second {
		t.Fatalf("compiling %d bytes took %s", len(src), d)
	}
	assert.Nil(t, err)
	assert.Equal(t, 100000, tmpl.PhCount())
	err = tmpl.Check(Strings{})
	var aie *ArgumentIndexOutOfRangeError
	assert.Equal(t, true, errors.As(err, &aie))
	assert.Equal(t, Position{Offset: 3, Line: 2, Column: 1}, aie.Pos)
}

func TestCheck_builtTemplate(t *testing.T) {
	err := NewTemplate(t.Name()).AddStr("x").Ph(3).Check(Strings{"a"})
	var aie *ArgumentIndexOutOfRangeError
	assert.Equal(t, true, errors.As(err, &aie))
	assert.Equal(t, Position{}, aie.Pos)
	assert.Equal(t, 3, aie.Index)
}

func BenchmarkCompile(b *testing.B) {
	src := strings.Repeat("ab{0}", 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Compile("", src)
	}
}

func TestFprint_allOrNothing(t *testing.T) {
	tmpl := MustCompile(t.Name(), "begin {0} {1} end")
	buf := bytes.NewBuffer(nil)
	n, err := tmpl.Fprint(buf, Strings{"x"})
	assert.NotNil(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, buf.Len())
	n, err = tmpl.Fprint(buf, Strings{"x", "y"})
	assert.Nil(t, err)
	assert.Equal(t, 13, n)
	assert.Equal(t, "begin x y end", buf.String())
}

func TestCatchEmit(t *testing.T) {
	tmpl := MustCompile(t.Name(), "begin\n{0}end")
	fails := Generator(func(wr io.Writer) int {
		panic(EmitError{4711, errors.New("fails")})
	})
	res, err := tmpl.Render(Values{fails})
	assert.NotNil(t, err)
	assert.Equal(t, "", res)
	assert.Equal(t, "fails", err.Error())

	n, err := CatchEmit(fails, os.Stdout)
	assert.Equal(t, 4711, n)
	assert.Equal(t, "fails", err.Error())
}

func TestMustCompile_panics(t *testing.T) {
	defer func() {
		if p := recover(); p == nil {
			t.Error("expected panic")
		}
	}()
	MustCompile(t.Name(), "}")
}

func TestBounT_nested(t *testing.T) {
	inner := MustCompile("inner", "<{0}>").MustBind(Strings{"x"})
	assert.Equal(t, "inner", inner.Template().Name)
	assert.Equal(t, "[<x>|<x>]", mustRender(t, "[{0}|{0}]", inner))
}

func TestTemplate_concurrent(t *testing.T) {
	tmpl := MustCompile(t.Name(), "{0}+{1}={2}")
	var wg sync.WaitGroup
	res := make([]string, 8)
	for i := range res {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res[i], _ = tmpl.Render(Values{i, i, 2 * i})
		}(i)
	}
	wg.Wait()
	for i, r := range res {
		assert.Equal(t, fmt.Sprintf("%d+%d=%d", i, i, 2*i), r)
	}
}

type celsius float64

func (c celsius) String() string { return fmt.Sprintf("%.1f°C", float64(c)) }

func TestValues_kinds(t *testing.T) {
	vals := Values{
		"str",
		celsius(21.5),
		Printf("%03d", 7),
		Data("raw"),
		Print{V: 3.5},
		Empty,
		nil,
	}
	assert.Equal(t, 7, vals.Len())
	assert.Equal(t,
		"str|21.5°C|007|raw|3.5||<nil>",
		mustRender(t, "{0}|{1}|{2}|{3}|{4}|{5}|{6}", vals...))
}

func ExampleRender() {
	res, err := Render("{1}, {0}! {{{2}}}", "World", "Hello", 42)
	if err != nil {
		fmt.Println(err)
	}
	fmt.Println(res)
	// Output:
	// Hello, World! {42}
}

func ExampleTemplate() {
	tmpl := NewTemplate("").
		AddStr("It's now ").Ph(0).
		AddStr(" in ").Ph(1)
	bt := tmpl.MustBind(Values{"2017-11-11 19:18:49", "Berlin"})
	bt.Emit(os.Stdout)
	fmt.Println()
	fmt.Println(tmpl)
	// Output:
	// It's now 2017-11-11 19:18:49 in Berlin
	// It's now {0} in {1}
}
