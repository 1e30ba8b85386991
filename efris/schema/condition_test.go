package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lineScope(invoiceIndustryCode string, line map[string]any, index, length int) *Scope {
	root := NewScope(map[string]any{
		"basicInformation": map[string]any{"invoiceIndustryCode": invoiceIndustryCode},
		"goodsDetails":     []any{},
	})
	return root.Element(line, index, length)
}

func TestEqualsWithNumericNormalization(t *testing.T) {

	scope := NewScope(map[string]any{"exciseFlag": "1", "count": 2.0})

	assert.True(t, Equals{Field: "exciseFlag", Value: "1"}.Holds(scope))
	assert.False(t, Equals{Field: "exciseFlag", Value: "2"}.Holds(scope))
	assert.True(t, Equals{Field: "count", Value: "2"}.Holds(scope), "JSON numbers compare by canonical string form")
}

func TestLookupWalksAncestors(t *testing.T) {

	scope := lineScope("102", map[string]any{"discountFlag": "2"}, 0, 1)

	v, ok := scope.Lookup("discountFlag")
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	v, ok = scope.Lookup("basicInformation.invoiceIndustryCode")
	assert.True(t, ok)
	assert.Equal(t, "102", v)

	_, ok = scope.Lookup("basicInformation.missing")
	assert.False(t, ok)
}

func TestXor(t *testing.T) {

	a := Equals{Field: "exciseRule", Value: "1"}
	b := Equals{Field: "exciseRule", Value: "2"}

	assert.True(t, Xor{A: a, B: b}.Holds(NewScope(map[string]any{"exciseRule": "1"})))
	assert.True(t, Xor{A: a, B: b}.Holds(NewScope(map[string]any{"exciseRule": "2"})))
	assert.False(t, Xor{A: a, B: b}.Holds(NewScope(map[string]any{"exciseRule": "3"})))
}

func TestPositionConditions(t *testing.T) {

	first := lineScope("101", map[string]any{}, 0, 3)
	middle := lineScope("101", map[string]any{}, 1, 3)
	last := lineScope("101", map[string]any{}, 2, 3)

	assert.True(t, IsFirst{}.Holds(first))
	assert.False(t, IsFirst{}.Holds(middle))
	assert.True(t, IsLast{}.Holds(last))
	assert.False(t, IsLast{}.Holds(middle))

	only := lineScope("101", map[string]any{}, 0, 1)
	assert.True(t, IsFirst{}.Holds(only))
	assert.True(t, IsLast{}.Holds(only), "a single line is both first and last")
}

func TestPresentAbsentAndNot(t *testing.T) {

	scope := NewScope(map[string]any{"pack": "1", "empty": ""})

	assert.True(t, Present{Field: "pack"}.Holds(scope))
	assert.False(t, Present{Field: "empty"}.Holds(scope), "empty string counts as absent")
	assert.True(t, Absent{Field: "stick"}.Holds(scope))
	assert.False(t, Not{Present{Field: "pack"}}.Holds(scope))
}

func TestAllOfAnyOf(t *testing.T) {

	scope := NewScope(map[string]any{"exciseFlag": "1", "exciseRule": "2"})

	assert.True(t, AllOf{
		Equals{Field: "exciseFlag", Value: "1"},
		Equals{Field: "exciseRule", Value: "2"},
	}.Holds(scope))

	assert.True(t, AnyOf{
		Equals{Field: "exciseRule", Value: "1"},
		Equals{Field: "exciseRule", Value: "2"},
	}.Holds(scope))

	assert.False(t, AllOf{
		Equals{Field: "exciseFlag", Value: "1"},
		Equals{Field: "exciseRule", Value: "1"},
	}.Holds(scope))
}
