package cards

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, c := range NewDeck() {
		id := c.Encode()
		require.GreaterOrEqual(t, id, 0)
		require.LessOrEqual(t, id, 51)
		got, ok := Decode(id)
		require.True(t, ok)
		require.Equal(t, c, got)
	}
}

func TestDecodeOutOfRange(t *testing.T) {
	for _, id := range []int{-1, -100, 52, 53, 1000} {
		_, ok := Decode(id)
		require.False(t, ok, "id %d must decode to no card", id)
	}
}

func TestNewDeckComposition(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck, 52)

	seen := map[Card]bool{}
	perSuit := map[Suit]int{}
	perRank := map[Rank]int{}
	for _, c := range deck {
		require.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
		perSuit[c.Suit]++
		perRank[c.Rank]++
	}
	for suit, n := range perSuit {
		require.Equal(t, 13, n, "suit %d", suit)
	}
	for rank, n := range perRank {
		require.Equal(t, 4, n, "rank %d", rank)
	}
}

func TestCompare(t *testing.T) {
	two := Card{Suit: Clubs, Rank: Two}
	ace := Card{Suit: Spades, Rank: Ace}
	require.Equal(t, -1, Compare(two, ace))
	require.Equal(t, 1, Compare(ace, two))
	require.Equal(t, 0, Compare(two, Card{Suit: Hearts, Rank: Two}))
}

func TestSortDescending(t *testing.T) {
	in := []Card{
		{Suit: Clubs, Rank: Five},
		{Suit: Spades, Rank: Ace},
		{Suit: Hearts, Rank: Five},
		{Suit: Diamonds, Rank: King},
		{Suit: Clubs, Rank: Two},
	}
	out := SortDescending(in)
	require.Len(t, out, len(in))
	for i := 1; i < len(out); i++ {
		require.GreaterOrEqual(t, out[i-1].Value(), out[i].Value())
	}
	// Stable: the club five entered before the heart five.
	require.Equal(t, Card{Suit: Clubs, Rank: Five}, out[2])
	require.Equal(t, Card{Suit: Hearts, Rank: Five}, out[3])
	// Input untouched.
	require.Equal(t, Card{Suit: Clubs, Rank: Five}, in[0])
}

func TestFaceAndAce(t *testing.T) {
	require.True(t, Card{Rank: Jack}.IsFace())
	require.True(t, Card{Rank: Queen}.IsFace())
	require.True(t, Card{Rank: King}.IsFace())
	require.False(t, Card{Rank: Ace}.IsFace())
	require.False(t, Card{Rank: Ten}.IsFace())
	require.True(t, Card{Rank: Ace}.IsAce())
	require.False(t, Card{Rank: King}.IsAce())
}

func TestCardString(t *testing.T) {
	require.Equal(t, "As", Card{Suit: Spades, Rank: Ace}.String())
	require.Equal(t, "Td", Card{Suit: Diamonds, Rank: Ten}.String())
	require.Equal(t, "2c", Card{Suit: Clubs, Rank: Two}.String())
	require.Equal(t, "9h", Card{Suit: Hearts, Rank: Nine}.String())
}
