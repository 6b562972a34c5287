/*
Package mock provides an in-memory fake of the kvstore host capability for
testing code that uses the kv client.

The fake serves the same wire protocol as a real host, so a client is
wired to it by injecting Host.HostCall:

	host := mock.New(mock.Config{Stores: []string{"example"}})
	store, err := kv.Open(kv.Config{Store: "example", HostCall: host.HostCall})

Stores can be pre-seeded and the clock can be overridden to make TTL expiry
deterministic:

	host := mock.New(mock.Config{
		Seed: map[string]map[string]string{"example": {"a": "1"}},
		Now:  func() time.Time { return fixed },
	})

Every function invocation is recorded in Host.Calls for assertions.
*/
package mock
