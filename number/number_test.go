package number_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/njchilds90/gocas/latex"
	"github.com/njchilds90/gocas/number"
)

func TestNumber_ZeroForms(t *testing.T) {
	zeros := []number.Number{
		number.Zero(),
		{},
		number.Of(0),
		number.Of(uint64(0)),
		number.FromBig(new(big.Int)),
		number.FromBig(nil),
		number.FromInteger(number.Integer{}),
		number.Complex(number.IntegerOf(0), number.IntegerOf(int8(0))),
	}
	for i, z := range zeros {
		assert.Truef(t, z.IsZero(), "zeros[%d]", i)
		assert.Truef(t, z.Equal(number.Zero()), "zeros[%d]", i)
		assert.Equal(t, "0", z.String())
	}
}

func TestNumber_Display(t *testing.T) {
	i := number.IntegerOf[int]
	tests := []struct {
		name string
		n    number.Number
		want string
	}{
		{"real", number.Of(-7), "-7"},
		{"pure imaginary", number.Complex(i(0), i(5)), "5i"},
		{"negative imaginary", number.Complex(i(0), i(-5)), "-5i"},
		{"both parts", number.Complex(i(3), i(4)), "3 + 4i"},
		{"negative imaginary part", number.Complex(i(3), i(-4)), "3 + -4i"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.n.String())
			assert.Equal(t, tt.want, latex.Sprint(tt.n))
		})
	}
}

func TestNumber_Parts(t *testing.T) {
	n := number.Complex(number.IntegerOf(3), number.IntegerOf(4))
	assert.Equal(t, "3", n.Real().String())
	assert.Equal(t, "4", n.Imag().String())
	assert.False(t, n.IsReal())
	assert.True(t, number.Of(3).IsReal())
	assert.False(t, n.Equal(number.Of(3)))
}

func TestNumber_FromBigCopies(t *testing.T) {
	b := big.NewInt(11)
	n := number.FromBig(b)
	b.SetInt64(12)
	assert.Equal(t, "11", n.String())
}
