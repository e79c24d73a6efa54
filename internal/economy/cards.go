package economy

import (
	"fmt"
	"strings"
)

// DevelopmentCard is a card bought from the development deck.
type DevelopmentCard uint8

const (
	Knight DevelopmentCard = iota
	RoadBuilding
	YearOfPlenty
	Monopoly
	VictoryPoint
)

const numCards = int(VictoryPoint) + 1

// DevelopmentCards lists every kind.
var DevelopmentCards = [numCards]DevelopmentCard{Knight, RoadBuilding, YearOfPlenty, Monopoly, VictoryPoint}

var cardNames = [numCards]string{"knight", "road_building", "year_of_plenty", "monopoly", "victory_point"}

func (c DevelopmentCard) String() string {
	if int(c) >= numCards {
		return "unknown"
	}
	return cardNames[c]
}

// Usable reports whether the card can ever be played. Victory points count
// while held and are never played.
func (c DevelopmentCard) Usable() bool {
	return c < VictoryPoint
}

// ParseDevelopmentCard maps a card name to a DevelopmentCard.
func ParseDevelopmentCard(s string) (DevelopmentCard, error) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	for i, name := range cardNames {
		if name == s {
			return DevelopmentCard(i), nil
		}
	}
	return 0, fmt.Errorf("unknown development card %q", s)
}

// CardCounts is a fixed-size array holding a count per card kind.
type CardCounts [numCards]int

// Deck is the FIFO development card draw pile.
type Deck struct {
	cards []DevelopmentCard
}

// NewDeck creates a deck that deals cards in the given order.
func NewDeck(cards ...DevelopmentCard) *Deck {
	return &Deck{cards: append([]DevelopmentCard(nil), cards...)}
}

// StandardDeck returns the 25-card deck shuffled with intn, which must return
// an index in [0, n). A nil intn leaves the deck in kind order.
func StandardDeck(intn func(n int) int) *Deck {
	var cards []DevelopmentCard
	add := func(c DevelopmentCard, n int) {
		for i := 0; i < n; i++ {
			cards = append(cards, c)
		}
	}
	add(Knight, 14)
	add(RoadBuilding, 2)
	add(YearOfPlenty, 2)
	add(Monopoly, 2)
	add(VictoryPoint, 5)

	if intn != nil {
		for i := len(cards) - 1; i > 0; i-- {
			j := intn(i + 1)
			cards[i], cards[j] = cards[j], cards[i]
		}
	}
	return &Deck{cards: cards}
}

// Take removes and returns the next card. ok is false when the deck is empty.
func (d *Deck) Take() (DevelopmentCard, bool) {
	if d == nil || len(d.cards) == 0 {
		return 0, false
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.cards)
}
