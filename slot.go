package eventz

import (
	"reflect"
	"runtime"
	"slices"
	"strings"
	"sync"
	"unsafe"
)

// slot is the value stored per key. It is implemented only by *event[F],
// so the set of variants is closed: one per listener signature F.
// Typed access goes through a type assertion to *event[F], which either
// matches the committed signature exactly or fails.
type slot interface {
	signature() string
	count() int
	removeID(id string) bool
}

// listener is one registration. ident is what RemoveListener compares against.
type listener[F any] struct {
	id    string
	fn    F
	ident identity
}

// event holds the registrations for one key in insertion order.
type event[F any] struct {
	listeners []listener[F]
}

// signatureOf describes F for diagnostics, e.g. "func(int, string)".
func signatureOf[F any]() string {
	return reflect.TypeFor[F]().String()
}

func (e *event[F]) signature() string {
	return signatureOf[F]()
}

func (e *event[F]) count() int {
	return len(e.listeners)
}

func (e *event[F]) add(id string, fn F) {
	e.listeners = append(e.listeners, listener[F]{
		id:    id,
		fn:    fn,
		ident: identityOf(fn),
	})
}

// remove drops the first registration of fn. Reports whether one was found.
func (e *event[F]) remove(fn F) bool {
	ident := identityOf(fn)
	for i, l := range e.listeners {
		if l.ident == ident {
			e.listeners = slices.Delete(e.listeners, i, i+1)
			return true
		}
	}
	return false
}

func (e *event[F]) removeID(id string) bool {
	for i, l := range e.listeners {
		if l.id == id {
			e.listeners = slices.Delete(e.listeners, i, i+1)
			return true
		}
	}
	return false
}

func (e *event[F]) removeAll() {
	e.listeners = nil
}

// snapshot copies the listener functions so dispatch can run unlocked
// while the registry is mutated underneath it.
func (e *event[F]) snapshot() []F {
	if len(e.listeners) == 0 {
		return nil
	}
	fns := make([]F, len(e.listeners))
	for i, l := range e.listeners {
		fns[i] = l.fn
	}
	return fns
}

// identity tells registrations apart for RemoveListener.
//
// A method value bound to a pointer receiver is identified by its method
// and receiver, so removing b.Increment never touches a.Increment even
// though both share the same wrapper code. Every other function is
// identified by the func value itself: top-level functions and closures
// that capture nothing are static and always match, while a capturing
// closure matches only the value that was added. Method values with a
// value receiver copy the receiver, so they match only the value that
// was added as well. Use the Hook handle to target one registration
// regardless of how it was built.
type identity struct {
	code uintptr
	data uintptr
}

// identityOf requires F to be a func type, which every event[F] is.
func identityOf[F any](fn F) identity {
	code := reflect.ValueOf(fn).Pointer()
	fv := *(*unsafe.Pointer)(unsafe.Pointer(&fn))
	if fv != nil && boundToPointer(code) {
		// Method value closures are laid out as {code, receiver}.
		recv := *(*uintptr)(unsafe.Add(fv, unsafe.Sizeof(uintptr(0))))
		return identity{code: code, data: recv}
	}
	return identity{code: code, data: uintptr(fv)}
}

// methodValues caches boundToPointer by code pointer.
var methodValues sync.Map

// boundToPointer reports whether code is the wrapper the compiler emits
// for a method value with a pointer receiver, named like "pkg.(*T).M-fm".
func boundToPointer(code uintptr) bool {
	if v, ok := methodValues.Load(code); ok {
		return v.(bool)
	}
	bound := false
	if f := runtime.FuncForPC(code); f != nil {
		bound = isPointerMethodValue(f.Name())
	}
	methodValues.Store(code, bound)
	return bound
}

func isPointerMethodValue(name string) bool {
	return strings.HasSuffix(name, "-fm") && strings.Contains(name, ".(*")
}

func isNilFunc[F any](fn F) bool {
	v := reflect.ValueOf(fn)
	return !v.IsValid() || v.IsNil()
}
