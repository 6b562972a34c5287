package hostmock

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedNamespace is returned when the namespace is not as expected.
	ErrUnexpectedNamespace = errors.New("unexpected namespace")

	// ErrUnexpectedCapability is returned when the capability is not as expected.
	ErrUnexpectedCapability = errors.New("unexpected capability")

	// ErrUnexpectedFunction is returned when the function is not as expected.
	ErrUnexpectedFunction = errors.New("unexpected function")
)

// Mock simulates a waPC host call with routing validation and configurable
// responses. Fields may be set directly; the zero value rejects every call
// because its expectations are empty.
type Mock struct {
	// ExpectedNamespace is the namespace each call must target.
	ExpectedNamespace string

	// ExpectedCapability is the capability each call must target.
	ExpectedCapability string

	// ExpectedFunction is the function name each call must target.
	ExpectedFunction string

	// PayloadValidator, when set, inspects the request payload and fails
	// the call by returning a non-nil error.
	PayloadValidator func([]byte) error

	// Response produces the bytes returned for a valid call. A nil
	// Response returns no payload.
	Response func() []byte

	// Err, when set, is returned for every call before any validation.
	Err error

	// Calls counts HostCall invocations, including failed ones.
	Calls int
}

// HostCall validates the call routing and payload, then returns the
// configured response or error. The signature matches wapc.HostCall so a
// Mock can be injected anywhere a host call is accepted.
func (m *Mock) HostCall(namespace, capability, function string, payload []byte) ([]byte, error) {
	m.Calls++

	if m.Err != nil {
		return nil, m.Err
	}

	if namespace != m.ExpectedNamespace {
		return nil, fmt.Errorf("%w: expected %q, got %q", ErrUnexpectedNamespace, m.ExpectedNamespace, namespace)
	}

	if capability != m.ExpectedCapability {
		return nil, fmt.Errorf("%w: expected %q, got %q", ErrUnexpectedCapability, m.ExpectedCapability, capability)
	}

	if function != m.ExpectedFunction {
		return nil, fmt.Errorf("%w: expected %q, got %q", ErrUnexpectedFunction, m.ExpectedFunction, function)
	}

	if m.PayloadValidator != nil {
		if err := m.PayloadValidator(payload); err != nil {
			return nil, err
		}
	}

	if m.Response != nil {
		return m.Response(), nil
	}

	return nil, nil
}
