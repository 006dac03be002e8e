// internal/app/deck.go
package app

import (
	"go-card-defense/internal/utils"
)

// Deck holds the draw pile and the discard pile, both ordered slices of
// card IDs. Cards are conserved: everything drawn either returns through
// Discard or is accounted for by the session's in-play list.
type Deck struct {
	draw    []string
	discard []string
	rng     *utils.PRNGService
}

func NewDeck(cards []string, rng *utils.PRNGService) *Deck {
	d := &Deck{
		draw: append([]string(nil), cards...),
		rng:  rng,
	}
	d.Shuffle()
	return d
}

// Shuffle permutes the draw pile in place.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.draw), func(i, j int) {
		d.draw[i], d.draw[j] = d.draw[j], d.draw[i]
	})
}

// Draw takes the top card, reshuffling the discard pile into the draw
// pile when it runs dry. Returns false only when both piles are empty.
func (d *Deck) Draw() (string, bool) {
	if len(d.draw) == 0 {
		if len(d.discard) == 0 {
			return "", false
		}
		d.draw = append(d.draw, d.discard...)
		d.discard = d.discard[:0]
		d.Shuffle()
	}
	card := d.draw[len(d.draw)-1]
	d.draw = d.draw[:len(d.draw)-1]
	return card, true
}

// Discard puts a card on the discard pile.
func (d *Deck) Discard(id string) {
	d.discard = append(d.discard, id)
}

// InsertRandom places a card at a uniformly random position in the draw
// pile. Reward cards enter the deck this way.
func (d *Deck) InsertRandom(id string) {
	i := d.rng.Intn(len(d.draw) + 1)
	d.draw = append(d.draw, "")
	copy(d.draw[i+1:], d.draw[i:])
	d.draw[i] = id
}

// DrawCount returns the draw pile size.
func (d *Deck) DrawCount() int { return len(d.draw) }

// DiscardCount returns the discard pile size.
func (d *Deck) DiscardCount() int { return len(d.discard) }
