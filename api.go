// Package eventz provides a keyed, type-checked event registry with
// synchronous dispatch.
//
// Listeners are registered against a Key and receive zero to three typed
// arguments when the key is invoked. The first operation against a key
// commits it to one listener signature; any later operation with a
// different signature fails with ErrTypeMismatch.
//
// Basic Usage:
//
//	var PlayerScored = eventz.NewKey("player.scored")
//
//	events := eventz.New()
//
//	// Register a listener taking two arguments
//	hook, err := eventz.AddListener2(events, PlayerScored, func(player string, points int) {
//		board.Add(player, points)
//	})
//	if err != nil {
//		return err
//	}
//
//	// Invoke runs every listener in registration order
//	if err := eventz.Invoke2(events, PlayerScored, "ada", 10); err != nil {
//		return err
//	}
//
//	// Unregister through the handle, or by value with RemoveListener2
//	_ = hook.Unhook()
//
// Arities:
//
// Go methods cannot carry type parameters, so the zero-argument operations
// are methods on Registry and the typed ones are package functions:
//
//	events.AddListener(key, fn)            // func()
//	eventz.AddListener1(events, key, fn)   // func(T1)
//	eventz.AddListener2(events, key, fn)   // func(T1, T2)
//	eventz.AddListener3(events, key, fn)   // func(T1, T2, T3)
//
// Dispatch:
//
// Invoke snapshots the listener list and calls each listener on the
// calling goroutine with no lock held. Listeners may add, remove, clear
// or invoke on the same registry; those changes apply from the next
// invocation. A panicking listener is not recovered: the panic reaches
// the caller of Invoke and the remaining listeners are skipped.
//
// Thread Safety:
//
// Registry is safe for concurrent use. All state is guarded by a single
// read-write mutex.
package eventz

import "sync"

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry, creating it on first use.
// Prefer passing a *Registry built with New where the caller controls
// lifetime; Default exists for code that wants a single shared instance.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}
