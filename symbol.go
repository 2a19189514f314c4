package cas

// ValidationError reports a name or value rejected at construction time.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Msg }

// Symbol is the validated name of a variable. The zero Symbol is not valid;
// obtain Symbols from NewSymbol.
type Symbol struct{ name string }

// NewSymbol validates name. The only rule today is that it is non-empty;
// the alphabet is not restricted until function symbols exist.
func NewSymbol(name string) (Symbol, error) {
	if name == "" {
		return Symbol{}, &ValidationError{Field: "symbol", Msg: "symbol cannot be empty"}
	}
	return Symbol{name: name}, nil
}

func (s Symbol) Name() string   { return s.name }
func (s Symbol) String() string { return s.name }
