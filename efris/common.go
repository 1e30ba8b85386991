package efris

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "efris")

type tinKey struct{}
type deviceKey struct{}
type envKey struct{}

func Context(ctx context.Context, tin string) context.Context {
	return context.WithValue(ctx, tinKey{}, tin)
}

func ContextWithDevice(ctx context.Context, deviceNo string) context.Context {
	return context.WithValue(ctx, deviceKey{}, deviceNo)
}

func ContextWithEnv(ctx context.Context, tin string, e Environment) context.Context {
	c := context.WithValue(ctx, tinKey{}, tin)
	return context.WithValue(c, envKey{}, e)
}

func TinFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(tinKey{}).(string)
	return v, ok
}

func DeviceFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(deviceKey{}).(string)
	return v, ok
}

func EnvFromContext(ctx context.Context) (Environment, bool) {
	v, ok := ctx.Value(envKey{}).(Environment)
	return v, ok
}

var (
	ErrNoTin = errors.New("no TIN in context.Context")
	ErrNoEnv = errors.New("no EFRIS environment in context.Context")
	// ErrNoSessionKey means T104 was never called on this client
	ErrNoSessionKey = errors.New("no symmetric session key, call GetSymmetricKey first")
)

// ReturnError is a non-success returnStateInfo mapped to a Go error.
type ReturnError struct {
	Code    string
	Message string
}

func (e *ReturnError) Error() string {
	return fmt.Sprintf("EFRIS returns code %s: %s", e.Code, e.Message)
}

// ReturnCodeSuccess and friends are the wire values used by the server.
// Interface specific codes must be preserved verbatim.
const (
	ReturnCodeSuccess      = "00"
	ReturnCodeUnknownError = "99"

	// T130 per-item invalid field value
	ReturnCodeInvalidField = "601"
	// T109 credit note already issued against this invoice
	ReturnCodeCreditNoteConflict = "306"
	// T110 qty exceeds remaining value of the original line
	ReturnCodeQtyExceedsOriginal = "1434"
	// T110 total exceeds remaining amount of the original line
	ReturnCodeTotalExceedsOriginal = "1460"
)

type Environment int

const (
	Test Environment = iota
	Sandbox
	Prod
)

func (e Environment) BaseURL() string {
	switch e {
	case Prod:
		return "https://efrisws.ura.go.ug/ws/taapp/getInformation"
	case Sandbox:
		return "https://efrisws-sandbox.ura.go.ug/ws/taapp/getInformation"
	case Test:
		return "https://efristest.ura.go.ug/ws/taapp/getInformation"
	}
	panic("Invalid environment")
}

func (e Environment) Name() string {
	switch e {
	case Prod:
		return "prod"
	case Sandbox:
		return "sandbox"
	case Test:
		return "test"
	}
	panic("Invalid environment")
}

func (e *Environment) UnmarshalText(text []byte) error {
	val := strings.ToLower(strings.TrimSpace(string(text)))

	switch val {
	case "prod":
		*e = Prod
	case "sandbox":
		*e = Sandbox
	case "test":
		*e = Test
	default:
		return fmt.Errorf("invalid EFRIS_ENV: %q (allowed: prod, sandbox, test)", val)
	}
	return nil
}
