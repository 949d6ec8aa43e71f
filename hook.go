package eventz

// Hook is the handle returned by AddListener, AddListener1, AddListener2
// and AddListener3. It names one registration by id rather than by the
// function that was added, so it can drop a single copy of a listener that
// was added several times, or a closure that RemoveListener cannot match.
//
// The zero Hook is valid and behaves like a spent handle. A Hook carries
// no reference to the listener's signature; Unhook works whatever the key
// is committed to, and never fails with ErrTypeMismatch.
//
//	hook, err := eventz.AddListener1(events, PlayerJoined, func(name string) {
//	    greet(name)
//	})
//	if err != nil {
//	    return err
//	}
//	defer hook.Unhook()
type Hook struct {
	unhook func() error
}

// Unhook removes the registration the handle was issued for. The handle
// is spent afterwards, whatever the outcome.
//
// It returns ErrAlreadyUnhooked for a spent or zero handle, and
// ErrHookNotFound when the registration is already gone: removed by
// RemoveListener or RemoveAllListeners, or dropped by Clear.
func (h *Hook) Unhook() error {
	if h.unhook == nil {
		return ErrAlreadyUnhooked
	}
	err := h.unhook()
	h.unhook = nil
	return err
}
