package sdk

import "errors"

var (
	// ErrHostCall indicates that the waPC host invocation itself failed.
	ErrHostCall = errors.New("host call failed")

	// ErrHostResponseInvalid signals that the host returned a payload that
	// could not be decoded or did not carry a status envelope.
	ErrHostResponseInvalid = errors.New("host response is invalid or unexpected")

	// ErrHostError means the host completed the call but reported a failure
	// status for the requested operation.
	ErrHostError = errors.New("host returned an error status")
)
