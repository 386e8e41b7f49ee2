package cards

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sort"
)

// NewDeck returns all 52 cards in canonical order (id 0..51: clubs through
// spades, ranks ascending within each suit).
func NewDeck() []Card {
	deck := make([]Card, 52)
	for i := 0; i < 52; i++ {
		deck[i], _ = Decode(i)
	}
	return deck
}

// SortDescending returns a new slice sorted by value, highest first. The sort
// is stable, so equal ranks keep their input order. The input is not mutated.
func SortDescending(in []Card) []Card {
	out := append([]Card(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value() > out[j].Value()
	})
	return out
}

// Deal splits off the first n cards of the deck. The input deck is left
// untouched. Asking for more cards than remain is a caller contract violation
// and returns an error.
func Deal(deck []Card, n int) (dealt, remaining []Card, err error) {
	if n < 0 || n > len(deck) {
		return nil, nil, fmt.Errorf("cannot deal %d cards from a deck of %d", n, len(deck))
	}
	dealt = append([]Card(nil), deck[:n]...)
	remaining = append([]Card(nil), deck[n:]...)
	return dealt, remaining, nil
}

// Shuffle returns a permutation of the deck under a fresh random seed. The
// input is not mutated.
//
// This shuffle is display/test-only. Real hole and community cards come from
// the external multi-party dealing layer; nothing in production play may be
// decided by this permutation.
func Shuffle(deck []Card) []Card {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		// crypto/rand failing means the platform is broken; fall back to the
		// canonical seedless stream rather than returning a partial deck.
		return ShuffleSeeded(deck, nil)
	}
	return ShuffleSeeded(deck, seed[:])
}

// ShuffleSeeded returns a deterministic permutation of the deck for the given
// seed. The input is not mutated.
func ShuffleSeeded(deck []Card, seed []byte) []Card {
	// Fisher-Yates driven by a sha256-based stream over seed||counter.
	out := append([]Card(nil), deck...)
	var counter uint64
	for i := len(out) - 1; i > 0; i-- {
		buf := make([]byte, len(seed)+8)
		copy(buf, seed)
		binary.LittleEndian.PutUint64(buf[len(seed):], counter)
		h := sha256.Sum256(buf)
		counter++
		j := int(binary.LittleEndian.Uint64(h[:8]) % uint64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}
