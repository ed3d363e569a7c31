package localstore

import (
	"testing"
)

func TestStore(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	t.Run("missing key -> not found, no error", func(t *testing.T) {
		_, ok, err := s.Get("auth_tokens")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatal("expected not found")
		}
	})

	t.Run("set then get roundtrips", func(t *testing.T) {
		if err := s.Set("auth_tokens", []byte(`{"access":"a","refresh":"r"}`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		raw, ok, err := s.Get("auth_tokens")
		if err != nil || !ok {
			t.Fatalf("Get = (%v, %v)", ok, err)
		}
		if string(raw) != `{"access":"a","refresh":"r"}` {
			t.Fatalf("got %q", raw)
		}
	})

	t.Run("overwrite replaces whole value", func(t *testing.T) {
		if err := s.Set("auth_user", []byte(`{"id":"1"}`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := s.Set("auth_user", []byte(`{"id":"2"}`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		raw, _, _ := s.Get("auth_user")
		if string(raw) != `{"id":"2"}` {
			t.Fatalf("got %q", raw)
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		if err := s.Delete("auth_user"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if err := s.Delete("auth_user"); err != nil {
			t.Fatalf("second Delete failed: %v", err)
		}
		if _, ok, _ := s.Get("auth_user"); ok {
			t.Fatal("key still present after delete")
		}
	})

	t.Run("path traversal key -> rejected", func(t *testing.T) {
		if err := s.Set("../escape", []byte("x")); err == nil {
			t.Fatal("expected invalid key error")
		}
	})
}
