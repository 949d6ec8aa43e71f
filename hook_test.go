package eventz

import (
	"testing"
)

func TestHookUnhook(t *testing.T) {
	registry := New()
	c := &counter{}

	hook, err := registry.AddListener(testKey, c.Increment)
	if err != nil {
		t.Fatalf("Failed to add listener: %v", err)
	}

	// Unhook immediately
	if err := hook.Unhook(); err != nil {
		t.Fatalf("Failed to unhook: %v", err)
	}

	// Double unhook should return error
	if err := hook.Unhook(); err != ErrAlreadyUnhooked {
		t.Errorf("Expected ErrAlreadyUnhooked, got %v", err)
	}

	if err := registry.Invoke(testKey); err != nil {
		t.Fatalf("Failed to invoke: %v", err)
	}
	if c.value != 0 {
		t.Errorf("Unhooked listener was called: counter=%d", c.value)
	}
}

func TestHookTargetsOneRegistration(t *testing.T) {
	registry := New()
	c := &counter{}

	first, err := AddListener1(registry, testKey, c.Add)
	if err != nil {
		t.Fatalf("Failed to add first listener: %v", err)
	}
	if _, err := AddListener1(registry, testKey, c.Add); err != nil {
		t.Fatalf("Failed to add second listener: %v", err)
	}

	if err := first.Unhook(); err != nil {
		t.Fatalf("Failed to unhook: %v", err)
	}
	if n := registry.ListenerCount(testKey); n != 1 {
		t.Errorf("Expected 1 listener after unhook, got %d", n)
	}

	if err := Invoke1(registry, testKey, 5); err != nil {
		t.Fatalf("Failed to invoke: %v", err)
	}
	if c.value != 5 {
		t.Errorf("Expected 5, got %d", c.value)
	}
}

func TestHookNotFound(t *testing.T) {
	t.Run("AfterRemoveListener", func(t *testing.T) {
		registry := New()
		c := &counter{}

		hook, err := registry.AddListener(testKey, c.Increment)
		if err != nil {
			t.Fatalf("Failed to add listener: %v", err)
		}
		if err := registry.RemoveListener(testKey, c.Increment); err != nil {
			t.Fatalf("Failed to remove listener: %v", err)
		}

		if err := hook.Unhook(); err != ErrHookNotFound {
			t.Errorf("Expected ErrHookNotFound, got %v", err)
		}
	})

	t.Run("AfterRemoveAllListeners", func(t *testing.T) {
		registry := New()
		c := &counter{}

		hook, err := AddListener2(registry, testKey, c.Add2)
		if err != nil {
			t.Fatalf("Failed to add listener: %v", err)
		}
		if err := RemoveAllListeners2[int, int](registry, testKey); err != nil {
			t.Fatalf("Failed to remove listeners: %v", err)
		}

		if err := hook.Unhook(); err != ErrHookNotFound {
			t.Errorf("Expected ErrHookNotFound, got %v", err)
		}
	})

	t.Run("AfterClear", func(t *testing.T) {
		registry := New()
		c := &counter{}

		hook, err := AddListener3(registry, testKey, c.Add3)
		if err != nil {
			t.Fatalf("Failed to add listener: %v", err)
		}
		registry.Clear()

		// A new registration under the same key is not the old one
		if _, err := AddListener3(registry, testKey, c.Add3); err != nil {
			t.Fatalf("Failed to re-add listener: %v", err)
		}

		if err := hook.Unhook(); err != ErrHookNotFound {
			t.Errorf("Expected ErrHookNotFound, got %v", err)
		}
		if n := registry.ListenerCount(testKey); n != 1 {
			t.Errorf("Expected new registration to survive, got %d listeners", n)
		}
	})

	t.Run("AfterSignatureChange", func(t *testing.T) {
		registry := New()
		c := &counter{}

		hook, err := AddListener1(registry, testKey, c.Add)
		if err != nil {
			t.Fatalf("Failed to add listener: %v", err)
		}
		registry.Clear()
		if _, err := registry.AddListener(testKey, c.Increment); err != nil {
			t.Fatalf("Failed to add listener under new signature: %v", err)
		}

		if err := hook.Unhook(); err != ErrHookNotFound {
			t.Errorf("Expected ErrHookNotFound, got %v", err)
		}
		if err := registry.Invoke(testKey); err != nil {
			t.Fatalf("Failed to invoke: %v", err)
		}
		if c.value != 1 {
			t.Errorf("Expected new listener to fire once, got %d", c.value)
		}
	})
}

func TestZeroHook(t *testing.T) {
	var hook Hook
	if err := hook.Unhook(); err != ErrAlreadyUnhooked {
		t.Errorf("Expected ErrAlreadyUnhooked for zero Hook, got %v", err)
	}
}
