// Package source holds the immutable program text a tokenizer and parser
// operate on, together with the positions diagnostics point back into it.
package source

import (
	"fmt"
	"os"
)

type originKind int

const (
	originConsole originKind = iota
	originEval
	originFile
)

// Origin names where a buffer's text came from. It only exists so
// diagnostics can display something meaningful before the line:column pair.
type Origin struct {
	kind originKind
	path string
}

func Console() Origin         { return Origin{kind: originConsole} }
func Eval() Origin            { return Origin{kind: originEval} }
func File(path string) Origin { return Origin{kind: originFile, path: path} }
func (o Origin) IsFile() bool { return o.kind == originFile }
func (o Origin) Path() string { return o.path }

func (o Origin) String() string {
	switch o.kind {
	case originConsole:
		return "console"
	case originEval:
		return "eval"
	default:
		return o.path
	}
}

// Buffer is an immutable, randomly indexable sequence of characters.
// Nothing mutates a Buffer after construction; any number of Locations may
// share it.
type Buffer struct {
	chars  []rune
	origin Origin
}

// FromString wraps already loaded program text.
func FromString(text string, origin Origin) *Buffer {
	return &Buffer{chars: []rune(text), origin: origin}
}

// FromConsole wraps one line of interactively entered text.
func FromConsole(text string) *Buffer {
	return FromString(text, Console())
}

// FromFile reads path and wraps its contents. Read failures come back as a
// *LoadError so callers can distinguish them from syntax problems.
func FromFile(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return FromString(string(data), File(path)), nil
}

func (b *Buffer) Len() int       { return len(b.chars) }
func (b *Buffer) At(i int) rune  { return b.chars[i] }
func (b *Buffer) Origin() Origin { return b.origin }
func (b *Buffer) String() string { return string(b.chars) }

// Slice returns the text in [from, to) as a string.
func (b *Buffer) Slice(from, to int) string {
	return string(b.chars[from:to])
}

// LoadError reports a failure to acquire source text, as opposed to a
// failure to understand it.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
