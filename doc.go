// Brace format templates with indexed placeholders – nothing more!
// Copyright (C) 2017 Marcus Perlick
//
// Package bracefmt implements format templates in the style of C#'s
// composite formatting: literal text interspersed with placeholders
// that name an argument by its position.
//
//	x={0}, y={1}, x again={0}
//
// A doubled brace is an escape, i.e. "{{" stands for a literal '{' and
// "}}" for a literal '}'. A placeholder starts with '{' and extends to
// its matching '}'. Braces inside a placeholder must balance. The body
// of a placeholder starts with the decimal argument index. Whatever
// follows the index is kept as an opaque trailer – it is reserved for
// format directives and is not interpreted by this package.
//
// Templates are split into tokens by a Tokenizer that works on Views,
// i.e. windows into the template string. A Template is the compiled
// form of such a token sequence: static fragments that have to be
// emitted verbatim, intermixed with placeholders. One cannot generate
// output from a template only. The arguments have to be supplied
// through the Args interface and a Template bound to its Args is a
// BounT. A bound template itself is Content, so it can be used as an
// argument of another template.
//
// Rendering is all-or-nothing: either the complete output is produced
// or an error is returned and nothing is written.
package bracefmt
