package eventz

// Zero arguments.

// AddListener registers fn on key. Adding the same function twice
// registers it twice.
func (r *Registry) AddListener(key Key, fn func()) (Hook, error) {
	return addListener(r, key, fn)
}

// RemoveListener removes the first registration of fn on key.
// Removing a function that was never added is a no-op. A method value
// such as board.Score matches only registrations bound to the same board.
func (r *Registry) RemoveListener(key Key, fn func()) error {
	return removeListener(r, key, fn)
}

// RemoveAllListeners removes every registration on key. The key stays
// committed to func().
func (r *Registry) RemoveAllListeners(key Key) error {
	return removeAllListeners[func()](r, key)
}

// Invoke calls every listener on key in registration order.
func (r *Registry) Invoke(key Key) error {
	fns, err := listeners[func()](r, key)
	if err != nil {
		return err
	}

	start := r.clock.Now()
	for _, fn := range fns {
		fn()
	}
	r.invoked(key, len(fns), start)
	return nil
}

// One argument.

// AddListener1 registers fn on key.
func AddListener1[T1 any](r *Registry, key Key, fn func(T1)) (Hook, error) {
	return addListener(r, key, fn)
}

// RemoveListener1 removes the first registration of fn on key.
func RemoveListener1[T1 any](r *Registry, key Key, fn func(T1)) error {
	return removeListener(r, key, fn)
}

// RemoveAllListeners1 removes every registration on key.
func RemoveAllListeners1[T1 any](r *Registry, key Key) error {
	return removeAllListeners[func(T1)](r, key)
}

// Invoke1 calls every listener on key with arg1.
func Invoke1[T1 any](r *Registry, key Key, arg1 T1) error {
	fns, err := listeners[func(T1)](r, key)
	if err != nil {
		return err
	}

	start := r.clock.Now()
	for _, fn := range fns {
		fn(arg1)
	}
	r.invoked(key, len(fns), start)
	return nil
}

// Two arguments.

// AddListener2 registers fn on key.
func AddListener2[T1, T2 any](r *Registry, key Key, fn func(T1, T2)) (Hook, error) {
	return addListener(r, key, fn)
}

// RemoveListener2 removes the first registration of fn on key.
func RemoveListener2[T1, T2 any](r *Registry, key Key, fn func(T1, T2)) error {
	return removeListener(r, key, fn)
}

// RemoveAllListeners2 removes every registration on key.
func RemoveAllListeners2[T1, T2 any](r *Registry, key Key) error {
	return removeAllListeners[func(T1, T2)](r, key)
}

// Invoke2 calls every listener on key with arg1 and arg2.
func Invoke2[T1, T2 any](r *Registry, key Key, arg1 T1, arg2 T2) error {
	fns, err := listeners[func(T1, T2)](r, key)
	if err != nil {
		return err
	}

	start := r.clock.Now()
	for _, fn := range fns {
		fn(arg1, arg2)
	}
	r.invoked(key, len(fns), start)
	return nil
}

// Three arguments.

// AddListener3 registers fn on key.
func AddListener3[T1, T2, T3 any](r *Registry, key Key, fn func(T1, T2, T3)) (Hook, error) {
	return addListener(r, key, fn)
}

// RemoveListener3 removes the first registration of fn on key.
func RemoveListener3[T1, T2, T3 any](r *Registry, key Key, fn func(T1, T2, T3)) error {
	return removeListener(r, key, fn)
}

// RemoveAllListeners3 removes every registration on key.
func RemoveAllListeners3[T1, T2, T3 any](r *Registry, key Key) error {
	return removeAllListeners[func(T1, T2, T3)](r, key)
}

// Invoke3 calls every listener on key with arg1, arg2 and arg3.
func Invoke3[T1, T2, T3 any](r *Registry, key Key, arg1 T1, arg2 T2, arg3 T3) error {
	fns, err := listeners[func(T1, T2, T3)](r, key)
	if err != nil {
		return err
	}

	start := r.clock.Now()
	for _, fn := range fns {
		fn(arg1, arg2, arg3)
	}
	r.invoked(key, len(fns), start)
	return nil
}
