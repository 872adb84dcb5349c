package codec

import "fmt"

//The kinds of error this package produces. Each one is terminal for the
//decode or encode call that raised it: there is no partial result to
//salvage, and none of them is ever downgraded to a warning.
const (
	//TruncatedBuffer: fewer bytes remain than a declared read requires.
	TruncatedBuffer = "not enough bytes in buffer"
	//UnsupportedStrategy: the field declares a strategy id this package
	//does not know.
	UnsupportedStrategy = "unsupported encoding strategy"
	//LengthMismatch: the decoded array length differs from the element
	//count declared in the field header.
	LengthMismatch = "decoded length differs from declared element count"
	//EncodingOverflow: a value can not be represented under the requested
	//strategy (a scaled float outside the integer range, a string longer
	//than its cell, a non-finite coordinate).
	EncodingOverflow = "value can not be represented under the requested strategy"
	//BadParameter: the parameter carried with the field is outside the
	//strategy's domain (a zero or negative divisor or cell width).
	BadParameter = "invalid strategy parameter"
	//CorruptField: the payload itself is malformed (an odd run-length
	//pair list, a negative run count, a character outside the byte range).
	CorruptField = "malformed field payload"
	//KindMismatch: the array handed to Encode holds a different element
	//type than the strategy works on.
	KindMismatch = "array kind does not match the strategy"
)

//Error is the concrete error type for everything that can go wrong while
//decoding or encoding a field.
type Error struct {
	kind     string //one of the constants above
	message  string //details for this particular failure
	strategy int32  //the strategy involved, 0 if none in particular
	deco     []string
}

func (err *Error) Error() string {
	m := "mmtf codec: " + err.kind
	if err.strategy > 0 {
		m = fmt.Sprintf("%s (strategy %d)", m, err.strategy)
	}
	if err.message != "" {
		m = m + ": " + err.message
	}
	return m
}

//Kind returns the kind constant this error was built with, so callers can
//tell the failure modes apart without parsing the message.
func (err *Error) Kind() string { return err.kind }

//Decorate adds new information to the error and returns the accumulated
//trace.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Is reports whether err carries the given kind. It works on any error
//exposing a Kind method, so it also recognizes the kinds of packages
//built on top of this one.
func Is(err error, kind string) bool {
	e, ok := err.(interface{ Kind() string })
	return ok && e.Kind() == kind
}

//errDecorate adds the caller's name to an error on its way up, when the
//error supports it.
func errDecorate(err error, caller string) error {
	if e, ok := err.(interface{ Decorate(string) []string }); ok {
		e.Decorate(caller)
	}
	return err
}
