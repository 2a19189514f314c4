package cas

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/njchilds90/gocas/number"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ============================================================
// JSON Serialization
// ============================================================

func (u *Undefined) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "undefined"}
}

func (c *Constant) toJSON() map[string]interface{} {
	m := map[string]interface{}{"type": "const", "value": c.value.Real().String()}
	if !c.value.IsReal() {
		m["imag"] = c.value.Imag().String()
	}
	return m
}

func (v *Variable) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "var", "name": v.symbol.name}
}

func (n *Neg) toJSON() map[string]interface{} {
	return map[string]interface{}{"type": "neg", "arg": n.arg.toJSON()}
}

func (s *Sum) toJSON() map[string]interface{} {
	ts := make([]interface{}, s.list().Len())
	for i := range ts {
		ts[i] = s.list().At(i).toJSON()
	}
	return map[string]interface{}{"type": "sum", "terms": ts}
}

func ToJSON(t Term) (string, error) {
	b, err := json.Marshal(t.toJSON())
	return string(b), err
}

// FromJSON rebuilds a term from its decoded JSON object. Sums are rebuilt
// with Add, so the result is flattened even if the input nests sums.
func FromJSON(data map[string]interface{}) (Term, error) {
	if data == nil {
		return nil, fmt.Errorf("term must be an object")
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, fmt.Errorf("missing 'type' field")
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("field 'type' must be a non-empty string")
	}

	subObj := func(field string) (map[string]interface{}, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an object", typ, field)
		}
		return m, nil
	}

	switch typ {
	case "undefined":
		return NewUndefined(), nil

	case "const":
		base, err := baseField(data)
		if err != nil {
			return nil, err
		}
		re, err := integerField(data, "value", base, true)
		if err != nil {
			return nil, err
		}
		im, err := integerField(data, "imag", base, false)
		if err != nil {
			return nil, err
		}
		return Const(number.Complex(re, im)), nil

	case "var":
		name, ok := data["name"].(string)
		if !ok {
			return nil, fmt.Errorf("var: \"name\" must be a string")
		}
		v, err := Var(name)
		if err != nil {
			return nil, fmt.Errorf("var: %w", err)
		}
		return v, nil

	case "neg":
		argM, err := subObj("arg")
		if err != nil {
			return nil, err
		}
		arg, err := FromJSON(argM)
		if err != nil {
			return nil, fmt.Errorf("neg: arg: %w", err)
		}
		return Negate(arg), nil

	case "sum":
		raw, ok := data["terms"].([]interface{})
		if !ok {
			return nil, fmt.Errorf("sum: \"terms\" must be an array")
		}
		if len(raw) < 2 {
			return nil, fmt.Errorf("sum: needs at least 2 terms, got %d", len(raw))
		}
		terms := make([]Term, len(raw))
		for i, it := range raw {
			m, ok := it.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("sum: terms[%d] must be an object", i)
			}
			t, err := FromJSON(m)
			if err != nil {
				return nil, fmt.Errorf("sum: terms[%d]: %w", i, err)
			}
			terms[i] = t
		}
		return AddOf(terms...), nil
	}
	return nil, fmt.Errorf("unknown term type: %s", typ)
}

// jsonNumber is the number literal type produced by decoders that use
// UseNumber, from encoding/json and jsoniter alike.
type jsonNumber interface {
	Int64() (int64, error)
	String() string
}

// baseField reads the optional radix of a const object.
func baseField(data map[string]interface{}) (int, error) {
	v, ok := data["base"]
	if !ok {
		return 10, nil
	}
	switch b := v.(type) {
	case float64:
		if b != float64(int(b)) {
			return 0, fmt.Errorf("const: 'base' must be an integer")
		}
		return int(b), nil
	case jsonNumber:
		n, err := b.Int64()
		if err != nil {
			return 0, fmt.Errorf("const: 'base' must be an integer")
		}
		return int(n), nil
	}
	return 0, fmt.Errorf("const: 'base' must be a number")
}

func integerField(data map[string]interface{}, field string, base int, required bool) (number.Integer, error) {
	v, ok := data[field]
	if !ok {
		if required {
			return number.Integer{}, fmt.Errorf("const: missing %q", field)
		}
		return number.Integer{}, nil
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return number.Integer{}, fmt.Errorf("const: %q must be a non-empty string", field)
	}
	i, err := number.ParseInteger(s, base)
	if err != nil {
		return number.Integer{}, fmt.Errorf("const: %s: %w", field, err)
	}
	return i, nil
}
