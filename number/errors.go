package number

import "fmt"

// maxQuoted bounds how much of a rejected input ends up in an error message.
const maxQuoted = 40

// ConversionError reports text that could not be read as an Integer.
type ConversionError struct {
	Input  string
	Base   int
	Reason string
}

func (e *ConversionError) Error() string {
	in := e.Input
	if len(in) > maxQuoted {
		in = in[:maxQuoted] + "..."
	}
	return fmt.Sprintf("cannot convert %q to an integer in base %d: %s", in, e.Base, e.Reason)
}
