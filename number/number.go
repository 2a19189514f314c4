package number

import (
	"fmt"
	"io"
	"math/big"

	"golang.org/x/exp/constraints"

	"github.com/njchilds90/gocas/latex"
)

// Number is an exact value re + im·i with integer parts. The zero value is
// the canonical zero.
type Number struct {
	re, im Integer
}

var _ latex.Formatter = Number{}

// Zero returns the canonical zero.
func Zero() Number { return Number{} }

// Of returns the real number v.
func Of[T constraints.Integer](v T) Number { return Number{re: IntegerOf(v)} }

// FromBig returns the real number v. v is copied.
func FromBig(v *big.Int) Number { return Number{re: IntegerFromBig(v)} }

// FromInteger returns the real number v.
func FromInteger(v Integer) Number { return Number{re: v} }

// Complex returns re + im·i.
func Complex(re, im Integer) Number { return Number{re: re, im: im} }

func (n Number) Real() Integer { return n.re }
func (n Number) Imag() Integer { return n.im }

// IsZero reports whether both parts are zero.
func (n Number) IsZero() bool { return n.re.IsZero() && n.im.IsZero() }

// IsReal reports whether the imaginary part is zero.
func (n Number) IsReal() bool { return n.im.IsZero() }

func (n Number) Equal(o Number) bool { return n.re.Equal(o.re) && n.im.Equal(o.im) }

func (n Number) String() string {
	switch {
	case n.im.IsZero():
		return n.re.String()
	case n.re.IsZero():
		return n.im.String() + "i"
	default:
		return n.re.String() + " + " + n.im.String() + "i"
	}
}

// FormatLaTeX writes the same digits as String; integers need no markup.
func (n Number) FormatLaTeX(f fmt.State) {
	io.WriteString(f, n.String())
}
