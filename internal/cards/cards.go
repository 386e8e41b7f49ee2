// Package cards holds the card and deck model shared by the rules engine and
// its callers.
//
// A card's encoded id is 0..51, where:
//   - rank = (id % 13) + 2  (2..14)
//   - suit = (id / 13)      (0..3)
//
// This matches the ledger program's on-chain representation, so decoded
// snapshots and engine decisions agree on card identity without translation.
package cards

type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// Value is the ordering value of the card: Two=2 .. Ace=14. Suit never
// participates in ordering.
func (c Card) Value() int {
	return int(c.Rank)
}

// Encode maps the card to its 0..51 id.
func (c Card) Encode() int {
	return int(c.Suit)*13 + int(c.Rank) - 2
}

// Decode returns the card for an id in [0,51]. Any other id, including
// negative values, is "no card" (ok=false); Decode never fails harder than
// that.
func Decode(id int) (Card, bool) {
	if id < 0 || id > 51 {
		return Card{}, false
	}
	return Card{Suit: Suit(id / 13), Rank: Rank(id%13) + 2}, true
}

// IsFace reports whether the card is a Jack, Queen or King. An Ace is not a
// face card.
func (c Card) IsFace() bool {
	return c.Rank == Jack || c.Rank == Queen || c.Rank == King
}

func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// Compare orders two cards by rank value only: -1 if a < b, 0 if equal rank,
// 1 if a > b. Ace compares high.
func Compare(a, b Card) int {
	switch {
	case a.Value() < b.Value():
		return -1
	case a.Value() > b.Value():
		return 1
	default:
		return 0
	}
}

func (c Card) String() string {
	var rch byte
	switch c.Rank {
	case Ace:
		rch = 'A'
	case King:
		rch = 'K'
	case Queen:
		rch = 'Q'
	case Jack:
		rch = 'J'
	case Ten:
		rch = 'T'
	default:
		rch = byte('0' + c.Rank)
	}
	var sch byte
	switch c.Suit {
	case Clubs:
		sch = 'c'
	case Diamonds:
		sch = 'd'
	case Hearts:
		sch = 'h'
	case Spades:
		sch = 's'
	default:
		sch = '?'
	}
	return string([]byte{rch, sch})
}
