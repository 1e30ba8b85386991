package efris

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentUnmarshalText(t *testing.T) {

	var e Environment
	require.NoError(t, e.UnmarshalText([]byte("Prod")))
	assert.Equal(t, Prod, e)
	assert.Equal(t, "https://efrisws.ura.go.ug/ws/taapp/getInformation", e.BaseURL())

	require.NoError(t, e.UnmarshalText([]byte(" test ")))
	assert.Equal(t, Test, e)
	assert.Equal(t, "test", e.Name())

	assert.Error(t, e.UnmarshalText([]byte("staging")))
}

func TestContextHelpers(t *testing.T) {

	ctx := ContextWithEnv(context.Background(), "1000023456", Sandbox)
	ctx = ContextWithDevice(ctx, "TCS5a2ce23146217466")

	tin, ok := TinFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "1000023456", tin)

	env, ok := EnvFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, Sandbox, env)

	device, ok := DeviceFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "TCS5a2ce23146217466", device)

	_, ok = TinFromContext(context.Background())
	assert.False(t, ok)
}

func TestReturnError(t *testing.T) {

	err := &ReturnError{Code: ReturnCodeCreditNoteConflict, Message: "Credit note already exists"}
	assert.Contains(t, err.Error(), "306")
	assert.Contains(t, err.Error(), "Credit note already exists")
}
