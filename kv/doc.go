/*
Package kv provides a typed client for the host runtime's key-value store
capability.

A Store binds to one named store instance and exposes get, put, list, and
delete operations. Each operation is a single host round trip; the store is
eventually consistent, so writes may take time to become visible to
subsequent reads.

	store, err := kv.Open(kv.Config{Store: "example"})
	if err != nil {
		// handle error
	}

	err = store.Put("example_key", "example_value").
		Metadata([]int{1, 2, 3, 4}).
		Execute()

	entry, err := store.GetWithMetadata("example_key")
	if entry != nil {
		var meta []int
		err = entry.Metadata(&meta)
	}

Listings are paginated. Callers follow the returned cursor until the
enumeration is complete:

	req := store.List().Prefix("example_").Limit(100)
	for {
		page, err := req.Execute()
		if err != nil {
			// handle error
		}
		// consume page.Keys
		if page.ListComplete {
			break
		}
		req = store.List().Prefix("example_").Limit(100).Cursor(page.Cursor)
	}

Failures are reported through four sentinel kinds matched with errors.Is:
ErrTransport, ErrSerialization, ErrInvalidStore, and ErrMissingMetadata.
Nothing is retried internally.
*/
package kv
