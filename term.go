package cas

import (
	"fmt"
	"math/big"

	"github.com/gammazero/deque"
	"golang.org/x/exp/constraints"

	"github.com/njchilds90/gocas/latex"
	"github.com/njchilds90/gocas/number"
)

// ============================================================
// Core Interface
// ============================================================

// Term is a node of an expression tree. The set of implementations is
// closed: *Undefined, *Constant, *Variable, *Neg and *Sum.
//
// A tree owns its children. Add and the accumulating helpers reuse the Sum
// nodes handed to them, so a term passed to one of them must not be used
// again; Clone it first to keep a copy.
type Term interface {
	fmt.Formatter
	fmt.Stringer
	latex.Formatter
	LaTeX() string
	Equal(other Term) bool
	Clone() Term
	termType() string
	toJSON() map[string]interface{}
}

// Equal reports structural equality: same shape, same leaves, same order.
func Equal(a, b Term) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

// Zero returns a new constant 0.
func Zero() Term { return &Constant{value: number.Zero()} }

// ============================================================
// Undefined: result of an invalid operation
// ============================================================

// Undefined has no numeric value. Nothing produces it yet; it is reserved
// for operations such as division.
type Undefined struct{}

func NewUndefined() *Undefined { return &Undefined{} }

func (u *Undefined) Equal(other Term) bool { _, ok := other.(*Undefined); return ok }
func (u *Undefined) Clone() Term           { return &Undefined{} }
func (u *Undefined) termType() string      { return "undefined" }

// ============================================================
// Constant: numeric leaf
// ============================================================

type Constant struct{ value number.Number }

func Const(v number.Number) *Constant { return &Constant{value: v} }

// Int returns the constant v for any machine integer type.
func Int[T constraints.Integer](v T) *Constant { return &Constant{value: number.Of(v)} }

// BigInt returns the constant v. v is copied.
func BigInt(v *big.Int) *Constant { return &Constant{value: number.FromBig(v)} }

func (c *Constant) Value() number.Number { return c.value }
func (c *Constant) IsZero() bool         { return c.value.IsZero() }
func (c *Constant) Clone() Term          { return &Constant{value: c.value} }
func (c *Constant) termType() string     { return "const" }
func (c *Constant) Equal(other Term) bool {
	o, ok := other.(*Constant)
	return ok && c.value.Equal(o.value)
}

// ============================================================
// Variable: named leaf
// ============================================================

type Variable struct{ symbol Symbol }

// Var validates name and returns the variable it names.
func Var(name string) (*Variable, error) {
	s, err := NewSymbol(name)
	if err != nil {
		return nil, err
	}
	return &Variable{symbol: s}, nil
}

// MustVar is like Var but panics on an invalid name.
func MustVar(name string) *Variable {
	v, err := Var(name)
	if err != nil {
		panic("cas: " + err.Error())
	}
	return v
}

func VarOf(s Symbol) *Variable { return &Variable{symbol: s} }

func (v *Variable) Symbol() Symbol   { return v.symbol }
func (v *Variable) Clone() Term      { return &Variable{symbol: v.symbol} }
func (v *Variable) termType() string { return "var" }
func (v *Variable) Equal(other Term) bool {
	o, ok := other.(*Variable)
	return ok && v.symbol == o.symbol
}

// ============================================================
// Neg: additive inverse
// ============================================================

// Neg is the additive inverse of its operand. Build it with Negate or Sub;
// the zero Neg has no operand and cannot be rendered or compared.
type Neg struct{ arg Term }

func (n *Neg) Arg() Term        { return n.arg }
func (n *Neg) Clone() Term      { return &Neg{arg: n.arg.Clone()} }
func (n *Neg) termType() string { return "neg" }
func (n *Neg) Equal(other Term) bool {
	o, ok := other.(*Neg)
	return ok && n.arg.Equal(o.arg)
}

// ============================================================
// Sum: n-ary addition
// ============================================================

// Sum lists its addends in the order they were added. No addend is itself
// a *Sum. The zero Sum is an empty sum.
type Sum struct{ terms *deque.Deque[Term] }

func newSum(terms ...Term) *Sum {
	q := deque.New[Term](len(terms))
	for _, t := range terms {
		q.PushBack(t)
	}
	return &Sum{terms: q}
}

func (s *Sum) list() *deque.Deque[Term] {
	if s.terms == nil {
		s.terms = deque.New[Term]()
	}
	return s.terms
}

func (s *Sum) Len() int         { return s.list().Len() }
func (s *Sum) At(i int) Term    { return s.list().At(i) }
func (s *Sum) termType() string { return "sum" }

// Terms returns the addends. The slice is a copy; the terms are not.
func (s *Sum) Terms() []Term {
	out := make([]Term, s.list().Len())
	for i := range out {
		out[i] = s.list().At(i)
	}
	return out
}

func (s *Sum) Clone() Term {
	q := deque.New[Term](s.list().Len())
	for i := 0; i < s.list().Len(); i++ {
		q.PushBack(s.list().At(i).Clone())
	}
	return &Sum{terms: q}
}

func (s *Sum) Equal(other Term) bool {
	o, ok := other.(*Sum)
	if !ok || s.list().Len() != o.list().Len() {
		return false
	}
	for i := 0; i < s.list().Len(); i++ {
		if !s.list().At(i).Equal(o.list().At(i)) {
			return false
		}
	}
	return true
}
