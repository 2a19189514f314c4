package number_test

import (
	"errors"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/gocas/number"
)

// -2^1024 in base 10.
const minus2To1024 = "-179769313486231590772930519078902473361797697894230657273430081" +
	"157732675805500963132708477322407536021120113879871393357658789768814416622492847430639" +
	"474124377767893424865485276302219601246094119453082952085005768838150682342462881473913" +
	"110540827237163350510684586298239947245938479716304835356329624224137216"

func pow(base int64, exp uint) *big.Int {
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(int64(exp)), nil)
}

func largeValues() map[string]*big.Int {
	twoTo1024 := pow(2, 1024)
	mersenne := new(big.Int).Sub(pow(2, 2048), big.NewInt(1))
	return map[string]*big.Int{
		"2^1024":      twoTo1024,
		"-2^1024":     new(big.Int).Neg(twoTo1024),
		"2^2048-1":    mersenne,
		"-(2^2048-1)": new(big.Int).Neg(mersenne),
		"-3^900":      new(big.Int).Neg(pow(3, 900)),
		"7^500+1":     new(big.Int).Add(pow(7, 500), big.NewInt(1)),
	}
}

func TestIntegerOf_Zero(t *testing.T) {
	zeros := []number.Integer{
		number.IntegerOf(int8(0)), number.IntegerOf(int16(0)), number.IntegerOf(int32(0)),
		number.IntegerOf(int64(0)), number.IntegerOf(0), number.IntegerOf(uint8(0)),
		number.IntegerOf(uint16(0)), number.IntegerOf(uint32(0)), number.IntegerOf(uint64(0)),
		number.IntegerOf(uint(0)), number.IntegerOf(uintptr(0)),
		number.IntegerFromBig(new(big.Int)), number.IntegerFromBig(nil),
	}
	for i, z := range zeros {
		assert.Truef(t, z.IsZero(), "zeros[%d] is not zero", i)
		assert.Truef(t, z.Equal(number.Integer{}), "zeros[%d] != Integer{}", i)
		assert.Equal(t, "0", z.String())
	}
}

func TestIntegerOf_Extremes(t *testing.T) {
	assert.Equal(t, "18446744073709551615", number.IntegerOf(uint64(math.MaxUint64)).String())
	assert.Equal(t, "-9223372036854775808", number.IntegerOf(int64(math.MinInt64)).String())
	assert.Equal(t, "-128", number.IntegerOf(int8(math.MinInt8)).String())
	assert.Equal(t, "255", number.IntegerOf(uint8(math.MaxUint8)).String())
}

func TestIntegerFromBig_DoesNotAlias(t *testing.T) {
	b := big.NewInt(5)
	i := number.IntegerFromBig(b)
	b.SetInt64(7)
	assert.Equal(t, "5", i.String())

	out := i.Big()
	out.SetInt64(9)
	assert.Equal(t, "5", i.String())
}

func TestInteger_BigRoundTrip(t *testing.T) {
	for name, v := range largeValues() {
		t.Run(name, func(t *testing.T) {
			got := number.IntegerFromBig(v).Big()
			assert.Zero(t, got.Cmp(v), "got %s", got)
		})
	}
}

func TestInteger_Radix36RoundTrip(t *testing.T) {
	for name, v := range largeValues() {
		t.Run(name, func(t *testing.T) {
			i := number.IntegerFromBig(v)
			text := i.Radix36()
			assert.Equal(t, v.Text(36), text)

			back, err := number.ParseRadix36(text)
			require.NoError(t, err)
			assert.True(t, back.Equal(i))
			assert.Zero(t, back.Big().Cmp(v))
		})
	}
}

func TestParseInteger_Decimal(t *testing.T) {
	i, err := number.ParseInteger(minus2To1024, 10)
	require.NoError(t, err)
	want := new(big.Int).Neg(pow(2, 1024))
	assert.Zero(t, i.Big().Cmp(want))
	assert.Equal(t, -1, i.Sign())
	assert.Equal(t, minus2To1024, i.String())
}

func TestParseInteger_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		base   int
		reason string
	}{
		{"bad digit", "12z", 10, "malformed digits"},
		{"empty", "", 10, "malformed digits"},
		{"digit out of range", "102", 2, "malformed digits"},
		{"base too large", "1", 63, "unsupported base"},
		{"base one", "1", 1, "unsupported base"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := number.ParseInteger(tt.input, tt.base)
			var cerr *number.ConversionError
			require.True(t, errors.As(err, &cerr), "got %v", err)
			assert.Equal(t, tt.input, cerr.Input)
			assert.Equal(t, tt.base, cerr.Base)
			assert.Equal(t, tt.reason, cerr.Reason)
		})
	}
}

func TestConversionError_TruncatesInput(t *testing.T) {
	_, err := number.ParseInteger(strings.Repeat("9", 500)+"!", 10)
	require.Error(t, err)
	assert.Less(t, len(err.Error()), 120)
	assert.Contains(t, err.Error(), "...")
}

func TestInteger_Int64(t *testing.T) {
	v, ok := number.IntegerOf(int64(math.MinInt64)).Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(math.MinInt64), v)

	_, ok = number.IntegerOf(uint64(math.MaxUint64)).Int64()
	assert.False(t, ok)
}

func TestInteger_Arithmetic(t *testing.T) {
	a := number.IntegerFromBig(pow(2, 1024))
	assert.True(t, a.Add(a.Neg()).IsZero())
	assert.Equal(t, 1, a.Cmp(a.Neg()))

	minInt := number.IntegerOf(int64(math.MinInt64))
	sum := number.IntegerOf(uint64(math.MaxUint64)).Add(minInt).Add(minInt).Add(number.IntegerOf(2))
	assert.Equal(t, "1", sum.String())
}

func TestInteger_Text(t *testing.T) {
	var i number.Integer
	require.NoError(t, i.UnmarshalText([]byte("-255")))
	assert.Equal(t, "-ff", i.Text(16))

	b, err := i.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-255", string(b))

	assert.Error(t, i.UnmarshalText([]byte("0x10")))
	assert.Equal(t, "-255", i.String(), "failed unmarshal must not modify the receiver")
}
