// Package serialize re-encodes a validated document into the exact nested
// JSON shape its interface expects: schema declaration order, documented
// absent-in-request fields omitted, and numbers formatted from their
// decimal string form so no float representation artifacts reach the wire.
package serialize

import (
	"fmt"

	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/alapierre/go-efris-client/efris/schema"
)

// Error reports a field value breaking its own bounds at serialize time,
// defense in depth against a caller bypassing the validator.
type Error struct {
	FieldPath string
	Reason    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("serialize %s: %s", e.FieldPath, e.Reason)
}

// Document encodes doc per the descriptor and returns the canonical JSON
// text.
func Document(doc any, d *schema.Descriptor) ([]byte, error) {
	w := &jx.Writer{}

	if d.TopLevelArray {
		arr, ok := doc.([]any)
		if !ok {
			return nil, &Error{FieldPath: "", Reason: "document must be a JSON array"}
		}
		w.ArrStart()
		for i, el := range arr {
			if i > 0 {
				w.Comma()
			}
			obj, ok := el.(map[string]any)
			if !ok {
				return nil, &Error{FieldPath: fmt.Sprintf("[%d]", i), Reason: "array element must be an object"}
			}
			if err := object(w, fmt.Sprintf("[%d]", i), obj, d.Fields); err != nil {
				return nil, err
			}
		}
		w.ArrEnd()
		return w.Buf, nil
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, &Error{FieldPath: "", Reason: "document must be a JSON object"}
	}
	if err := object(w, "", obj, d.Fields); err != nil {
		return nil, err
	}
	return w.Buf, nil
}

func object(w *jx.Writer, base string, obj map[string]any, rules []schema.FieldRule) error {
	w.ObjStart()
	first := true
	for _, rule := range rules {
		raw, ok := obj[rule.Name]
		if !ok || rule.OmitInRequest {
			continue
		}
		path := join(base, rule.Name)

		switch rule.Kind {
		case schema.Object:
			child, ok := raw.(map[string]any)
			if !ok || len(child) == 0 {
				continue
			}
			comma(w, &first)
			w.FieldStart(rule.Name)
			if err := object(w, path, child, rule.Fields); err != nil {
				return err
			}

		case schema.Array:
			arr, ok := raw.([]any)
			if !ok || len(arr) == 0 {
				continue
			}
			comma(w, &first)
			w.FieldStart(rule.Name)
			w.ArrStart()
			for i, el := range arr {
				if i > 0 {
					w.Comma()
				}
				child, ok := el.(map[string]any)
				if !ok {
					return &Error{FieldPath: fmt.Sprintf("%s[%d]", path, i), Reason: "array element must be an object"}
				}
				if err := object(w, fmt.Sprintf("%s[%d]", path, i), child, rule.Element); err != nil {
					return err
				}
			}
			w.ArrEnd()

		default:
			value := schema.AsString(raw)
			if value == "" && !rule.Required {
				continue
			}
			out, err := scalar(path, value, rule)
			if err != nil {
				return err
			}
			comma(w, &first)
			w.FieldStart(rule.Name)
			w.Str(out)
		}
	}
	w.ObjEnd()
	return nil
}

// scalar formats one wire value. Numbers are normalized through the
// decimal type and re-checked against the field's digit caps.
func scalar(path, value string, rule schema.FieldRule) (string, error) {
	if rule.Kind != schema.Number || value == "" {
		if rule.MaxLen > 0 && len(value) > rule.MaxLen {
			return "", &Error{FieldPath: path, Reason: fmt.Sprintf("length %d exceeds maximum %d", len(value), rule.MaxLen)}
		}
		return value, nil
	}

	if rule.DeemedSentinel && (value == "-" || value == " ") {
		// canonical form of the deemed sentinel is '-'
		return "-", nil
	}

	dec, err := decimal.NewFromString(value)
	if err != nil {
		return "", &Error{FieldPath: path, Reason: fmt.Sprintf("value %q is not a number", value)}
	}
	if rule.DecDigits > 0 && int(-dec.Exponent()) > rule.DecDigits {
		return "", &Error{FieldPath: path, Reason: fmt.Sprintf("decimal digits cannot exceed %d", rule.DecDigits)}
	}
	if rule.IntDigits > 0 {
		digits := len(dec.Abs().Truncate(0).String())
		if digits > rule.IntDigits {
			return "", &Error{FieldPath: path, Reason: fmt.Sprintf("integer digits cannot exceed %d", rule.IntDigits)}
		}
	}
	return dec.String(), nil
}

func comma(w *jx.Writer, first *bool) {
	if !*first {
		w.Comma()
	}
	*first = false
}

func join(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}
