package cas

import (
	"fmt"
	"io"

	"github.com/njchilds90/gocas/latex"
)

// Plain text goes through fmt.Formatter and LaTeX through latex.Formatter.
// Both walk the tree and write into the caller's fmt.State, so String and
// LaTeX need no buffering of their own.

func badVerb(f fmt.State, verb rune, t Term) bool {
	if verb == 'v' || verb == 's' {
		return false
	}
	fmt.Fprintf(f, "%%!%c(%T)", verb, t)
	return true
}

// writeSum writes left, the addends separated by " + ", then right.
func writeSum(f fmt.State, s *Sum, left, right string, each func(Term)) {
	io.WriteString(f, left)
	for i := 0; i < s.list().Len(); i++ {
		if i > 0 {
			io.WriteString(f, " + ")
		}
		each(s.list().At(i))
	}
	io.WriteString(f, right)
}

// ============================================================
// Plain text
// ============================================================

func (u *Undefined) Format(f fmt.State, verb rune) {
	if !badVerb(f, verb, u) {
		io.WriteString(f, "undefined")
	}
}

func (c *Constant) Format(f fmt.State, verb rune) {
	if !badVerb(f, verb, c) {
		io.WriteString(f, c.value.String())
	}
}

func (v *Variable) Format(f fmt.State, verb rune) {
	if !badVerb(f, verb, v) {
		io.WriteString(f, v.symbol.name)
	}
}

func (n *Neg) Format(f fmt.State, verb rune) {
	if badVerb(f, verb, n) {
		return
	}
	io.WriteString(f, "-(")
	n.arg.Format(f, verb)
	io.WriteString(f, ")")
}

func (s *Sum) Format(f fmt.State, verb rune) {
	if badVerb(f, verb, s) {
		return
	}
	writeSum(f, s, "(", ")", func(t Term) { t.Format(f, verb) })
}

func (u *Undefined) String() string { return fmt.Sprint(u) }
func (c *Constant) String() string  { return fmt.Sprint(c) }
func (v *Variable) String() string  { return fmt.Sprint(v) }
func (n *Neg) String() string       { return fmt.Sprint(n) }
func (s *Sum) String() string       { return fmt.Sprint(s) }

// ============================================================
// LaTeX
// ============================================================

func (u *Undefined) FormatLaTeX(f fmt.State) { io.WriteString(f, `\text{undefined}`) }
func (c *Constant) FormatLaTeX(f fmt.State)  { c.value.FormatLaTeX(f) }
func (v *Variable) FormatLaTeX(f fmt.State)  { io.WriteString(f, v.symbol.name) }

func (n *Neg) FormatLaTeX(f fmt.State) {
	io.WriteString(f, `-\left(`)
	n.arg.FormatLaTeX(f)
	io.WriteString(f, `\right)`)
}

func (s *Sum) FormatLaTeX(f fmt.State) {
	writeSum(f, s, `\left(`, `\right)`, func(t Term) { t.FormatLaTeX(f) })
}

func (u *Undefined) LaTeX() string { return latex.Sprint(u) }
func (c *Constant) LaTeX() string  { return latex.Sprint(c) }
func (v *Variable) LaTeX() string  { return latex.Sprint(v) }
func (n *Neg) LaTeX() string       { return latex.Sprint(n) }
func (s *Sum) LaTeX() string       { return latex.Sprint(s) }

// ============================================================
// Top-level convenience functions
// ============================================================

func String(t Term) string { return t.String() }
func LaTeX(t Term) string  { return t.LaTeX() }
