package latex_test

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/gocas/latex"
)

type frac struct{ num, den latex.Formatter }

func (f frac) FormatLaTeX(s fmt.State) {
	io.WriteString(s, `\frac{`)
	f.num.FormatLaTeX(s)
	io.WriteString(s, `}{`)
	f.den.FormatLaTeX(s)
	io.WriteString(s, `}`)
}

type sym string

func (v sym) FormatLaTeX(s fmt.State) { io.WriteString(s, string(v)) }

func TestSprint(t *testing.T) {
	assert.Equal(t, `\alpha`, latex.Sprint(sym(`\alpha`)))
	assert.Equal(t, `\frac{a}{\frac{b}{c}}`, latex.Sprint(frac{sym("a"), frac{sym("b"), sym("c")}}))
}

func TestInline(t *testing.T) {
	assert.Equal(t, `$\frac{1}{2}$`, latex.Inline(frac{sym("1"), sym("2")}))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	n, err := latex.Fprint(&buf, frac{sym("x"), sym("y")})
	require.NoError(t, err)
	assert.Equal(t, `\frac{x}{y}`, buf.String())
	assert.Equal(t, buf.Len(), n)
}
