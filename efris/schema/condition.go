package schema

import "strings"

// Scope is the evaluation context for conditions: the current object's
// fields, the chain of ancestors, and the element position when the
// object sits inside an array. Conditions never forward-reference fields
// outside this chain.
type Scope struct {
	Values map[string]any
	Parent *Scope
	// Index and Len are set when the scope is an array element,
	// otherwise Index is -1.
	Index int
	Len   int
}

func NewScope(values map[string]any) *Scope {
	return &Scope{Values: values, Index: -1}
}

func (s *Scope) Child(values map[string]any) *Scope {
	return &Scope{Values: values, Parent: s, Index: -1}
}

func (s *Scope) Element(values map[string]any, index, length int) *Scope {
	return &Scope{Values: values, Parent: s, Index: index, Len: length}
}

func (s *Scope) Root() *Scope {
	r := s
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// Lookup resolves a field by name against the current object first, then
// the ancestors. A dotted name ("basicInformation.invoiceIndustryCode")
// resolves from the document root through nested sections. Empty strings
// count as absent, the protocol does not distinguish "" from a missing key.
func (s *Scope) Lookup(field string) (string, bool) {
	if idx := strings.IndexByte(field, '.'); idx >= 0 {
		return s.Root().path(field)
	}
	for cur := s; cur != nil; cur = cur.Parent {
		if raw, ok := cur.Values[field]; ok {
			v := AsString(raw)
			if v == "" {
				return "", false
			}
			return v, true
		}
	}
	return "", false
}

func (s *Scope) path(field string) (string, bool) {
	var raw any = s.Values
	for _, seg := range strings.Split(field, ".") {
		obj, ok := raw.(map[string]any)
		if !ok {
			return "", false
		}
		raw, ok = obj[seg]
		if !ok {
			return "", false
		}
	}
	v := AsString(raw)
	if v == "" {
		return "", false
	}
	return v, true
}

// AsString normalizes a decoded JSON scalar to its wire string form.
func AsString(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case nil:
		return ""
	case bool:
		if v {
			return "1"
		}
		return "0"
	case float64:
		// wire values are strings; tolerate callers that passed bare numbers
		return trimFloat(v)
	default:
		return ""
	}
}

// Condition is one clause of the declarative requiredness language. The
// free text rules of the interface catalog are formalized as compositions
// of these variants and evaluated by a single interpreter.
type Condition interface {
	Holds(s *Scope) bool
}

// Equals holds when a field equals a literal value. Default substitutes
// for an absent field, covering rules like "if empty, the default is 0".
type Equals struct {
	Field   string
	Value   string
	Default string
}

func (c Equals) Holds(s *Scope) bool {
	v, ok := s.Lookup(c.Field)
	if !ok {
		v = c.Default
	}
	return v == c.Value
}

// In holds when a field's value is a member of a set.
type In struct {
	Field   string
	Values  []string
	Default string
}

func (c In) Holds(s *Scope) bool {
	v, ok := s.Lookup(c.Field)
	if !ok {
		v = c.Default
	}
	for _, want := range c.Values {
		if v == want {
			return true
		}
	}
	return false
}

// Present holds when a field carries a non-empty value.
type Present struct {
	Field string
}

func (c Present) Holds(s *Scope) bool {
	_, ok := s.Lookup(c.Field)
	return ok
}

// Absent holds when a field is missing or empty.
type Absent struct {
	Field string
}

func (c Absent) Holds(s *Scope) bool {
	_, ok := s.Lookup(c.Field)
	return !ok
}

type Not struct {
	C Condition
}

func (c Not) Holds(s *Scope) bool { return !c.C.Holds(s) }

type AllOf []Condition

func (c AllOf) Holds(s *Scope) bool {
	for _, sub := range c {
		if !sub.Holds(s) {
			return false
		}
	}
	return true
}

type AnyOf []Condition

func (c AnyOf) Holds(s *Scope) bool {
	for _, sub := range c {
		if sub.Holds(s) {
			return true
		}
	}
	return false
}

// Xor expresses mutually exclusive requiredness, the excise duty
// percentage-vs-per-unit split.
type Xor struct {
	A, B Condition
}

func (c Xor) Holds(s *Scope) bool { return c.A.Holds(s) != c.B.Holds(s) }

// IsFirst holds for the first element of the enclosing array.
type IsFirst struct{}

func (c IsFirst) Holds(s *Scope) bool { return s.Index == 0 }

// IsLast holds for the last element of the enclosing array.
type IsLast struct{}

func (c IsLast) Holds(s *Scope) bool { return s.Index >= 0 && s.Index == s.Len-1 }
