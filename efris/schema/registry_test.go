package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryCoversInvoiceFamily(t *testing.T) {

	for _, tc := range []struct {
		code string
		dir  Direction
	}{
		{"T101", Response},
		{"T104", Response},
		{"T109", Request},
		{"T109", Response},
		{"T110", Request},
		{"T115", Response},
		{"T119", Request},
		{"T119", Response},
		{"T129", Request},
		{"T129", Response},
		{"T130", Request},
		{"T130", Response},
	} {
		d, err := Default().Lookup(tc.code, tc.dir)
		require.NoError(t, err, "%s %s", tc.code, tc.dir)
		assert.Equal(t, tc.code, d.InterfaceCode)
		assert.Equal(t, tc.dir, d.Direction)
	}
}

func TestUnknownInterface(t *testing.T) {

	_, err := Default().Lookup("T999", Request)
	var unknown *UnknownInterfaceError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "T999", unknown.InterfaceCode)
}

func TestBatchDescriptorsAreTopLevelArrays(t *testing.T) {

	for _, code := range []string{"T129", "T130"} {
		d, err := Default().Lookup(code, Request)
		require.NoError(t, err)
		assert.True(t, d.TopLevelArray, code)
	}
}
