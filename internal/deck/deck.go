package deck

import "math/rand"

// Rank is one of the 13 face values, independent of suit.
type Rank string

// Suit is one of the four card suits.
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

var Ranks = []Rank{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Card identifies one of the 52 rank×suit combinations. Cards compare by
// value; the rank is carried on the card itself, no lookup table.
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// New returns the full 52-card deck in canonical order.
func New() []Card {
	cards := make([]Card, 0, len(Ranks)*len(Suits))
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return cards
}

// Shuffled returns a fresh deck under a uniform Fisher-Yates permutation.
func Shuffled(rng *rand.Rand) []Card {
	cards := New()
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}

// ValidRank reports whether r is one of the 13 playable ranks.
func ValidRank(r Rank) bool {
	for _, known := range Ranks {
		if known == r {
			return true
		}
	}
	return false
}
