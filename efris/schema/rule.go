package schema

import "strconv"

type Direction int

const (
	Request Direction = iota
	Response
)

func (d Direction) String() string {
	if d == Response {
		return "response"
	}
	return "request"
}

type Kind int

const (
	String Kind = iota
	Number
	Date
	Object
	Array
)

type Sign int

const (
	AnySign Sign = iota
	Positive
	Negative
	NonNegative
	NonPositive
)

func (s Sign) String() string {
	switch s {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	case NonNegative:
		return "positive or 0"
	case NonPositive:
		return "negative or 0"
	}
	return "any"
}

// SignRule constrains a numeric field's sign, optionally only under a
// condition (e.g. total must be negative when discountFlag is 0).
type SignRule struct {
	When Condition // nil means always
	Want Sign
}

// ValueReject forbids specific values under a condition; used for the
// positional goods line rules (first line cannot carry discountFlag 0,
// last line cannot carry discountFlag 1).
type ValueReject struct {
	When    Condition
	Values  []string
	Message string
}

// FieldRule is one row of an interface field table.
type FieldRule struct {
	Name string
	Kind Kind

	Required     bool
	RequiredWhen Condition // field becomes required when this holds
	EmptyWhen    Condition // field must be empty when this holds

	// OmitInRequest marks response-populated fields documented as
	// "leave empty in the request" (invoiceNo, antifakeCode).
	OmitInRequest bool

	MinLen int
	MaxLen int

	// Digit caps are enforced on the decimal string form, independent of
	// any float representation.
	IntDigits int
	DecDigits int

	Enum []string
	// Dict names the T115 code table the value must belong to.
	Dict string

	// Layout is the date layout for Date fields.
	Layout string

	// DeemedSentinel admits the literal '-' or a single space in place of
	// a number (deemed/exempt tax rates).
	DeemedSentinel bool

	Signs  []SignRule
	Reject []ValueReject

	// EqualsCountOf names a sibling array whose element count this field
	// must equal (summary.itemCount vs goodsDetails).
	EqualsCountOf string
	// EqualsField names a sibling whose value this field must equal.
	EqualsField string

	// SameAsOriginal compares the value against the same field of the
	// original invoice line via the injected lookup.
	SameAsOriginal bool
	// MaxAbsOfOriginal caps |value| by the remaining value of the
	// corresponding original line; FailCode is the wire return code for
	// the overrun (1434 qty, 1460 total).
	MaxAbsOfOriginal bool
	FailCode         string

	// Fields describes an Object, Element the object held by an Array.
	Fields   []FieldRule
	Element  []FieldRule
	MinItems int
}

// Descriptor is the rule table of one (interfaceCode, direction) pair.
type Descriptor struct {
	InterfaceCode string
	Direction     Direction
	// TopLevelArray is set for batch shaped payloads (T129, T130) whose
	// document root is a JSON array of objects described by Fields.
	TopLevelArray bool
	Fields        []FieldRule
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
