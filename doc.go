// Package cas is the term layer of a small computer-algebra kernel.
//
// A Term is an expression tree built from constants, variables, negation
// and n-ary sums:
//
//	x := cas.MustVar("x")
//	y := cas.MustVar("y")
//	t := cas.Sub(cas.Add(x, cas.Int(2)), y)
//	t.String() // "(x + 2 + -(y))"
//	t.LaTeX()  // "\left(x + 2 + -\left(y\right)\right)"
//
// Combining terms only flattens nested sums. Nothing is simplified: zero
// addends and double negations stay in the tree, and equality is structural.
//
// Constants carry a number.Number, an exact integer with an optional
// imaginary part. Terms render as plain text through fmt and as LaTeX
// through the latex package. ToJSON, FromJSON and HandleToolCall expose the
// same operations to JSON clients such as cmd/mcp-server.
package cas
