// Package latex defines the LaTeX rendering capability, the typesetting
// counterpart of fmt.Formatter, and helpers that turn any implementation
// into a string or write it to an io.Writer.
package latex

import (
	"fmt"
	"io"
)

// Formatter is implemented by values that can typeset themselves as LaTeX.
// FormatLaTeX writes into the same fmt.State buffer that plain-text
// formatting uses, so nested values can be rendered recursively.
type Formatter interface {
	FormatLaTeX(f fmt.State)
}

// bridge lets fmt drive a Formatter as if it were a fmt.Formatter.
type bridge struct{ v Formatter }

func (b bridge) Format(f fmt.State, _ rune) { b.v.FormatLaTeX(f) }

// Sprint returns the LaTeX form of v.
func Sprint(v Formatter) string { return fmt.Sprint(bridge{v}) }

// Fprint writes the LaTeX form of v to w.
func Fprint(w io.Writer, v Formatter) (int, error) { return fmt.Fprint(w, bridge{v}) }

// Inline returns the LaTeX form of v as inline math, $...$, the shape
// notebook front ends expect.
func Inline(v Formatter) string { return fmt.Sprintf("$%v$", bridge{v}) }
