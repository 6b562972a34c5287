/*
Package hostmock provides an expectation-based stand-in for the waPC host
call used by capability clients.

A Mock asserts that each call targets the expected namespace, capability,
and function, optionally validates the request payload, and returns either
a canned response or a configured error. Use it to unit test a capability
client without a host runtime:

	mock := &hostmock.Mock{
		ExpectedNamespace:  "edgekv",
		ExpectedCapability: "kvstore",
		ExpectedFunction:   "get",
		Response:           func() []byte { return canned },
	}

	client, err := kv.Open(kv.Config{Store: "example", HostCall: mock.HostCall})

Every call is counted in Calls, so tests can also assert that an operation
never reached the host.
*/
package hostmock
