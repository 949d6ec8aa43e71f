package eventz

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
)

func TestKeyString(t *testing.T) {
	key := NewKey("Test")
	assert.Equal(t, "EventKey(Test)", key.String())
	assert.Equal(t, "EventKey()", NewKey("").String())
}

func TestKeyEqual(t *testing.T) {
	texts := []string{"", "Test", "user.created", "ünïcødé", "with space"}

	for _, text := range texts {
		a := NewKey(text)
		b := NewKey(text)

		if !a.Equal(b) {
			t.Errorf("NewKey(%q) should equal itself", text)
		}
		if a != b {
			t.Errorf("NewKey(%q) should compare equal with ==", text)
		}
		if a.Hash() != b.Hash() {
			t.Errorf("NewKey(%q) hashes differ: %d vs %d", text, a.Hash(), b.Hash())
		}
	}
}

func TestKeyNotEqual(t *testing.T) {
	texts := []string{"Test1", "Test2", "test1", "", "Test", "Test "}

	for i, s := range texts {
		for j, u := range texts {
			if i == j {
				continue
			}
			assert.False(t, NewKey(s).Equal(NewKey(u)), "%q should not equal %q", s, u)
		}
	}
}

func TestKeyEqualComparesText(t *testing.T) {
	// Forged collision: same hash, different text.
	a := Key{text: "a", hash: 42}
	b := Key{text: "b", hash: 42}

	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(Key{text: "a", hash: 42}))
}

func TestKeyHashStored(t *testing.T) {
	key := NewKey("player.scored")

	assert.Equal(t, xxhash.Sum64String("player.scored"), key.Hash())
	assert.Equal(t, "player.scored", key.Text())
}

func TestKeyAsMapKey(t *testing.T) {
	m := map[Key]int{}
	m[NewKey("Test")] = 1
	m[NewKey("Test")]++

	assert.Len(t, m, 1)
	assert.Equal(t, 2, m[NewKey("Test")])
}
