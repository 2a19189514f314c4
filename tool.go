package cas

import (
	"fmt"
	"math"

	"github.com/njchilds90/gocas/latex"
	"github.com/njchilds90/gocas/number"
)

// ============================================================
// MCP Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	LaTeX  string      `json:"latex,omitempty"`
	Inline string      `json:"inline,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

type toolSpec struct {
	name        string
	description string
	params      map[string]string
	required    []string
}

var toolSpecs = []toolSpec{
	{"variable", "Create a variable term from a non-empty name", map[string]string{"name": "string"}, []string{"name"}},
	{"constant", "Create an integer constant. value is an integer or a digit string; base defaults to 10", map[string]string{"value": "string", "base": "integer"}, []string{"value"}},
	{"zero", "Return the constant 0", map[string]string{}, []string{}},
	{"undefined", "Return the undefined term", map[string]string{}, []string{}},
	{"add", "a + b, flattening nested sums", map[string]string{"a": "object", "b": "object"}, []string{"a", "b"}},
	{"sum", "Left-to-right sum of a list of terms", map[string]string{"terms": "array"}, []string{"terms"}},
	{"neg", "Additive inverse -(expr)", map[string]string{"expr": "object"}, []string{"expr"}},
	{"sub", "a - b, i.e. a + -(b)", map[string]string{"a": "object", "b": "object"}, []string{"a", "b"}},
	{"to_string", "Render a term as plain text", map[string]string{"expr": "object"}, []string{"expr"}},
	{"to_latex", "Render a term as LaTeX", map[string]string{"expr": "object"}, []string{"expr"}},
	{"equal", "Structural equality of two terms", map[string]string{"a": "object", "b": "object"}, []string{"a", "b"}},
	{"mcp_spec", "Return this tool schema", map[string]string{}, []string{}},
}

// HandleToolCall runs one tool against freshly decoded terms. Failures are
// reported in ToolResponse.Error.
func HandleToolCall(req ToolRequest) ToolResponse {
	getTerm := func(key string) (Term, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		t, err := operand(v)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", key, err)
		}
		return t, nil
	}
	getString := func(key string) (string, error) {
		v, ok := req.Params[key]
		if !ok {
			return "", fmt.Errorf("missing param: %s", key)
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("param %s must be a string", key)
		}
		return s, nil
	}
	getPair := func() (Term, Term, error) {
		a, err := getTerm("a")
		if err != nil {
			return nil, nil, err
		}
		b, err := getTerm("b")
		if err != nil {
			return nil, nil, err
		}
		return a, b, nil
	}
	respond := func(t Term) ToolResponse {
		return ToolResponse{Result: t.toJSON(), LaTeX: t.LaTeX(), Inline: latex.Inline(t), String: t.String()}
	}
	fail := func(err error) ToolResponse { return ToolResponse{Error: err.Error()} }

	switch req.Tool {
	case "variable":
		name, err := getString("name")
		if err != nil {
			return fail(err)
		}
		v, err := Var(name)
		if err != nil {
			return fail(err)
		}
		return respond(v)

	case "constant":
		v, ok := req.Params["value"]
		if !ok {
			return fail(fmt.Errorf("missing param: value"))
		}
		base, err := baseField(req.Params)
		if err != nil {
			return fail(err)
		}
		c, err := constant(v, base)
		if err != nil {
			return fail(err)
		}
		return respond(c)

	case "zero":
		return respond(Zero())

	case "undefined":
		return respond(NewUndefined())

	case "add":
		a, b, err := getPair()
		if err != nil {
			return fail(err)
		}
		return respond(Add(a, b))

	case "sub":
		a, b, err := getPair()
		if err != nil {
			return fail(err)
		}
		return respond(Sub(a, b))

	case "sum":
		raw, ok := req.Params["terms"].([]interface{})
		if !ok {
			return fail(fmt.Errorf("param terms must be an array"))
		}
		terms := make([]Term, len(raw))
		for i, r := range raw {
			t, err := operand(r)
			if err != nil {
				return fail(fmt.Errorf("param terms[%d]: %w", i, err))
			}
			terms[i] = t
		}
		return respond(AddOf(terms...))

	case "neg":
		e, err := getTerm("expr")
		if err != nil {
			return fail(err)
		}
		return respond(Negate(e))

	case "to_string":
		e, err := getTerm("expr")
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: e.String(), String: e.String()}

	case "to_latex":
		e, err := getTerm("expr")
		if err != nil {
			return fail(err)
		}
		return ToolResponse{Result: e.LaTeX(), LaTeX: e.LaTeX(), Inline: latex.Inline(e)}

	case "equal":
		a, b, err := getPair()
		if err != nil {
			return fail(err)
		}
		eq := Equal(a, b)
		return ToolResponse{Result: eq, String: fmt.Sprint(eq)}

	case "mcp_spec":
		return ToolResponse{Result: MCPToolSpec(), String: "MCP tool specification"}
	}

	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// operand accepts a term object or a bare integer, the way callers mix
// terms and host-language numbers in one expression.
func operand(v interface{}) (Term, error) {
	if m, ok := v.(map[string]interface{}); ok {
		return FromJSON(m)
	}
	return constant(v, 10)
}

func constant(v interface{}, base int) (*Constant, error) {
	switch x := v.(type) {
	case float64:
		if x != math.Trunc(x) || math.Abs(x) > 1<<53 {
			return nil, fmt.Errorf("%v is not an exactly representable integer; pass it as a string", x)
		}
		return Int(int64(x)), nil
	case jsonNumber:
		i, err := number.ParseInteger(x.String(), 10)
		if err != nil {
			return nil, err
		}
		return Const(number.FromInteger(i)), nil
	case string:
		i, err := number.ParseInteger(x, base)
		if err != nil {
			return nil, err
		}
		return Const(number.FromInteger(i)), nil
	}
	return nil, fmt.Errorf("expected an integer, got %T", v)
}

// MCPToolSpec describes the tools HandleToolCall understands.
func MCPToolSpec() string {
	tools := make([]map[string]interface{}, len(toolSpecs))
	for i, s := range toolSpecs {
		tools[i] = ts(s.name, s.description, s.required, s.params)
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
