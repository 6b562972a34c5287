package sdk

import (
	"errors"
	"testing"
)

type testCase struct {
	name       string
	namespace  string
	entryPoint string
	handler    func(b []byte) ([]byte, error)
	wantErr    error
	wantNs     string
}

func TestNew(t *testing.T) {
	testCases := []testCase{
		{
			name:      "Valid Config",
			namespace: "valid",
			handler:   func(b []byte) ([]byte, error) { return b, nil },
			wantNs:    "valid",
		},
		{
			name:      "Empty Namespace",
			namespace: "",
			handler:   func(b []byte) ([]byte, error) { return b, nil },
			wantNs:    DefaultNamespace,
		},
		{
			name:       "Custom Entry Point",
			namespace:  "valid",
			entryPoint: "run",
			handler:    func(b []byte) ([]byte, error) { return b, nil },
			wantNs:     "valid",
		},
		{
			name:      "Nil Handler",
			namespace: "invalid",
			handler:   nil,
			wantErr:   ErrHandlerNil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(Config{Namespace: tc.namespace, EntryPoint: tc.entryPoint, Handler: tc.handler})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if err != nil {
				return
			}

			if s.Config().Namespace != tc.wantNs {
				t.Errorf("expected namespace %q, got %q", tc.wantNs, s.Config().Namespace)
			}
		})
	}
}

func TestConfigSnapshot(t *testing.T) {
	h := func(b []byte) ([]byte, error) { return b, nil }

	s1, err := New(Config{Namespace: "one", Handler: h})
	if err != nil {
		t.Fatalf("first New returned error: %v", err)
	}
	s2, err := New(Config{Namespace: "two", Handler: h})
	if err != nil {
		t.Fatalf("second New returned error: %v", err)
	}

	t.Run("Immutability", func(t *testing.T) {
		got := s1.Config()
		got.Namespace = "mutated"
		if s1.Config().Namespace != "one" {
			t.Fatalf("expected SDK namespace to remain 'one', got %q", s1.Config().Namespace)
		}
	})

	t.Run("Instance Isolation", func(t *testing.T) {
		if s1.Config().Namespace != "one" || s2.Config().Namespace != "two" {
			t.Fatalf("expected namespaces 'one' and 'two', got %q and %q",
				s1.Config().Namespace, s2.Config().Namespace)
		}
	})
}
