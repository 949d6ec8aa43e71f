package eventz

import "github.com/cespare/xxhash/v2"

// Key identifies an event channel.
//
// A Key pairs its text with a hash computed once at construction. Keys
// are plain values: copy them freely and compare them with Equal or ==.
// Define keys once as package variables and reuse them:
//
//	var (
//		UserCreated = eventz.NewKey("user.created")
//		UserDeleted = eventz.NewKey("user.deleted")
//	)
type Key struct {
	text string
	hash uint64
}

// NewKey returns the Key for text. Every string, including "", is valid.
func NewKey(text string) Key {
	return Key{
		text: text,
		hash: xxhash.Sum64String(text),
	}
}

// Text returns the string the key was built from.
func (k Key) Text() string {
	return k.text
}

// Hash returns the hash stored at construction.
func (k Key) Hash() uint64 {
	return k.hash
}

// Equal reports whether k and other name the same event.
// Equal hashes do not imply equal text, so the text is always compared.
func (k Key) Equal(other Key) bool {
	return k.hash == other.hash && k.text == other.text
}

// String formats the key as EventKey(<text>).
func (k Key) String() string {
	return "EventKey(" + k.text + ")"
}
