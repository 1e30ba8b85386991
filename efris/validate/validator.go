// Package validate walks a decoded document against its interface rule
// table and produces the complete ordered list of violations. The engine
// is a single generic interpreter over the schema condition language, no
// per-field branching.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/alapierre/go-efris-client/efris/schema"
)

var logger = logrus.WithField("component", "efris.validate")

// Violation is one rule failure. Code carries the interface specific wire
// return code where the catalog defines one, otherwise it is empty and
// the boundary reports 99.
type Violation struct {
	FieldPath string
	Rule      string
	Message   string
	Code      string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.FieldPath, v.Message)
}

// Result accumulates every violation; an empty list signifies acceptance.
type Result struct {
	Violations []Violation
}

func (r Result) OK() bool { return len(r.Violations) == 0 }

// Message joins all violations into the single diagnostic string callers
// put into returnStateInfo.returnMessage.
func (r Result) Message() string {
	parts := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		parts = append(parts, v.String())
	}
	return strings.Join(parts, "; ")
}

// Dictionary is the T115 collaborator consulted for code table membership.
type Dictionary interface {
	IsValidCode(dictionary, code string) bool
}

// OriginalLookup resolves goods lines of a previously fiscalised invoice
// for the credit-note rules that reference prior state ("same as original
// invoice", "cannot exceed the remaining value").
type OriginalLookup interface {
	FetchOriginalLine(invoiceID, orderNumber string) (OriginalLine, error)
}

// OriginalLine is the original invoice line a credit note references:
// its field values plus the remaining (not yet credited) qty and amount.
type OriginalLine struct {
	Fields         map[string]string
	RemainingQty   decimal.Decimal
	RemainingTotal decimal.Decimal
}

// Options injects the external collaborators. Nil members downgrade the
// corresponding rules to skipped; validation itself stays pure.
type Options struct {
	Dict     Dictionary
	Original OriginalLookup
}

// Document validates doc against the descriptor. Fields are visited in
// declaration order and every violation is collected, the caller needs
// the complete list for a single diagnostic response.
func Document(doc any, d *schema.Descriptor, opts Options) Result {
	v := &visitor{opts: opts}

	if d.TopLevelArray {
		arr, ok := doc.([]any)
		if !ok {
			v.add("", "type", "document must be a JSON array", "")
			return v.result
		}
		for i, el := range arr {
			obj, ok := el.(map[string]any)
			if !ok {
				v.add(fmt.Sprintf("[%d]", i), "type", "array element must be an object", "")
				continue
			}
			scope := schema.NewScope(obj)
			scope.Index, scope.Len = i, len(arr)
			v.object(fmt.Sprintf("[%d]", i), obj, d.Fields, scope)
		}
		return v.result
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		v.add("", "type", "document must be a JSON object", "")
		return v.result
	}
	v.object("", obj, d.Fields, schema.NewScope(obj))
	return v.result
}

type visitor struct {
	opts   Options
	result Result
}

func (v *visitor) add(path, rule, msg, code string) {
	v.result.Violations = append(v.result.Violations, Violation{
		FieldPath: path, Rule: rule, Message: msg, Code: code,
	})
}

func (v *visitor) object(base string, obj map[string]any, rules []schema.FieldRule, scope *schema.Scope) {
	for _, rule := range rules {
		v.field(join(base, rule.Name), obj[rule.Name], rule, scope)
	}
}

func (v *visitor) field(path string, raw any, rule schema.FieldRule, scope *schema.Scope) {

	switch rule.Kind {
	case schema.Object:
		v.objectField(path, raw, rule, scope)
		return
	case schema.Array:
		v.arrayField(path, raw, rule, scope)
		return
	}

	value := schema.AsString(raw)
	present := value != ""

	required := rule.Required || (rule.RequiredWhen != nil && rule.RequiredWhen.Holds(scope))
	if required && !present {
		v.add(path, "required", "required field is missing", "")
		return
	}
	if rule.EmptyWhen != nil && rule.EmptyWhen.Holds(scope) && present {
		v.add(path, "forbidden", "must be empty under the current field values", "")
		return
	}
	if !present {
		return
	}

	for _, rej := range rule.Reject {
		if rej.When != nil && !rej.When.Holds(scope) {
			continue
		}
		for _, bad := range rej.Values {
			if value == bad {
				v.add(path, "value", rej.Message, "")
			}
		}
	}

	if rule.MaxLen > 0 && len(value) > rule.MaxLen {
		v.add(path, "length", fmt.Sprintf("length %d exceeds maximum %d", len(value), rule.MaxLen), "")
	}
	if rule.MinLen > 0 && len(value) < rule.MinLen {
		v.add(path, "length", fmt.Sprintf("length %d below minimum %d", len(value), rule.MinLen), "")
	}

	if len(rule.Enum) > 0 && !contains(rule.Enum, value) {
		v.add(path, "enum", fmt.Sprintf("value %q is not among the allowed values", value), "")
	}
	if rule.Dict != "" && v.opts.Dict != nil && !v.opts.Dict.IsValidCode(rule.Dict, value) {
		v.add(path, "dictionary", fmt.Sprintf("value %q is not a valid %s code", value, rule.Dict), "")
	}

	switch rule.Kind {
	case schema.Number:
		v.number(path, value, rule, scope)
	case schema.Date:
		if _, err := time.Parse(rule.Layout, value); err != nil {
			v.add(path, "format", fmt.Sprintf("value %q does not match date format %s", value, rule.Layout), "")
		}
	}

	if rule.EqualsCountOf != "" {
		v.countOf(path, value, rule.EqualsCountOf, scope)
	}
	if rule.EqualsField != "" {
		if other, ok := scope.Lookup(rule.EqualsField); ok && other != value {
			v.add(path, "cross-field", fmt.Sprintf("must equal %s (%q)", rule.EqualsField, other), "")
		}
	}
	if rule.SameAsOriginal {
		v.sameAsOriginal(path, value, rule, scope)
	}
}

// number enforces the decimal-string precision and sign rules. The deemed
// sentinel ('-' or a single space) is recognized before numeric parsing.
func (v *visitor) number(path, value string, rule schema.FieldRule, scope *schema.Scope) {
	if rule.DeemedSentinel && (value == "-" || value == " ") {
		return
	}

	dec, err := decimal.NewFromString(value)
	if err != nil {
		v.add(path, "format", fmt.Sprintf("value %q is not a number", value), "")
		return
	}

	intDigits, decDigits := digitCounts(value)
	if rule.IntDigits > 0 && intDigits > rule.IntDigits {
		v.add(path, "precision", fmt.Sprintf("integer digits cannot exceed %d", rule.IntDigits), "")
	}
	if rule.DecDigits > 0 && decDigits > rule.DecDigits {
		v.add(path, "precision", fmt.Sprintf("decimal digits cannot exceed %d", rule.DecDigits), "")
	}

	for _, sr := range rule.Signs {
		if sr.When != nil && !sr.When.Holds(scope) {
			continue
		}
		if !signOK(dec, sr.Want) {
			v.add(path, "sign", fmt.Sprintf("must be %s", sr.Want), "")
		}
	}

	if rule.MaxAbsOfOriginal {
		v.remainingValue(path, dec, rule, scope)
	}
}

func (v *visitor) countOf(path, value, arrayName string, scope *schema.Scope) {
	raw, ok := scope.Root().Values[arrayName]
	if !ok {
		return
	}
	arr, ok := raw.([]any)
	if !ok {
		return
	}
	want := fmt.Sprintf("%d", len(arr))
	if strings.TrimLeft(value, "0") != strings.TrimLeft(want, "0") && value != want {
		v.add(path, "cross-field", fmt.Sprintf("must equal the number of %s lines (%d)", arrayName, len(arr)), "")
	}
}

func (v *visitor) sameAsOriginal(path, value string, rule schema.FieldRule, scope *schema.Scope) {
	line, ok := v.originalLine(scope)
	if !ok {
		return
	}
	orig, ok := line.Fields[rule.Name]
	if !ok {
		return
	}
	if orig != value {
		v.add(path, "original", fmt.Sprintf("must be the same as the original invoice (%q)", orig), "")
	}
}

func (v *visitor) remainingValue(path string, dec decimal.Decimal, rule schema.FieldRule, scope *schema.Scope) {
	line, ok := v.originalLine(scope)
	if !ok {
		return
	}
	var remaining decimal.Decimal
	switch rule.Name {
	case "qty":
		remaining = line.RemainingQty
	default:
		remaining = line.RemainingTotal
	}
	if dec.Abs().GreaterThan(remaining) {
		v.add(path, "original",
			"cannot be greater than the remaining value of the corresponding commodity line on original invoice",
			rule.FailCode)
	}
}

// originalLine resolves the credit note's referenced line through the
// injected lookup: oriInvoiceId from the document head, orderNumber from
// the current goods line.
func (v *visitor) originalLine(scope *schema.Scope) (OriginalLine, bool) {
	if v.opts.Original == nil {
		return OriginalLine{}, false
	}
	invoiceID, ok := scope.Lookup("oriInvoiceId")
	if !ok {
		return OriginalLine{}, false
	}
	orderNumber, ok := scope.Lookup("orderNumber")
	if !ok {
		return OriginalLine{}, false
	}
	line, err := v.opts.Original.FetchOriginalLine(invoiceID, orderNumber)
	if err != nil {
		logger.WithError(err).Debugf("original line lookup failed for invoice %s line %s", invoiceID, orderNumber)
		return OriginalLine{}, false
	}
	return line, true
}

func (v *visitor) objectField(path string, raw any, rule schema.FieldRule, scope *schema.Scope) {
	obj, ok := raw.(map[string]any)
	if !ok || len(obj) == 0 {
		if rule.Required {
			v.add(path, "required", "required section is missing", "")
		}
		return
	}
	v.object(path, obj, rule.Fields, scope.Child(obj))
}

func (v *visitor) arrayField(path string, raw any, rule schema.FieldRule, scope *schema.Scope) {
	arr, ok := raw.([]any)
	if !ok || len(arr) == 0 {
		if rule.Required {
			v.add(path, "required", "required section is missing", "")
		}
		return
	}
	if rule.MinItems > 0 && len(arr) < rule.MinItems {
		v.add(path, "length", fmt.Sprintf("at least %d element(s) required", rule.MinItems), "")
	}
	for i, el := range arr {
		obj, ok := el.(map[string]any)
		if !ok {
			v.add(fmt.Sprintf("%s[%d]", path, i), "type", "array element must be an object", "")
			continue
		}
		v.object(fmt.Sprintf("%s[%d]", path, i), obj, rule.Element, scope.Element(obj, i, len(arr)))
	}
}

func join(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func signOK(d decimal.Decimal, want schema.Sign) bool {
	switch want {
	case schema.Positive:
		return d.IsPositive()
	case schema.Negative:
		return d.IsNegative()
	case schema.NonNegative:
		return !d.IsNegative()
	case schema.NonPositive:
		return !d.IsPositive()
	}
	return true
}

// digitCounts counts integer and fractional digits of the decimal string
// form. The check runs on the text, an IEEE float would already have lost
// the information.
func digitCounts(value string) (intDigits, decDigits int) {
	s := strings.TrimLeft(value, "+-")
	if i := strings.IndexByte(s, '.'); i >= 0 {
		decDigits = len(s) - i - 1
		s = s[:i]
	}
	s = strings.TrimLeft(s, "0")
	intDigits = len(s)
	if intDigits == 0 {
		intDigits = 1 // plain zero still occupies one integer digit
	}
	return intDigits, decDigits
}
