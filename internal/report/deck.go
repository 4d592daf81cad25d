package report

import (
	"fmt"

	"github.com/kapu/pachinko-persona-lab/internal/constants"
)

// SlideTitles names the four views in order.
var SlideTitles = [...]string{
	"Target Persona Profile",
	"WHO IS THIS? / 01. Profile & Life",
	"WHAT DO THEY WANT? / 02. Specs & Flow",
	"DEVELOPMENT GUIDE / 03. Do's & Don'ts",
}

// Deck is the in-session slide cursor. The zero value points at slide 0.
// Next and Prev clamp; there is no wraparound.
type Deck struct {
	index int
}

func (d *Deck) Index() int { return d.index }

func (d *Deck) Count() int { return constants.SlideConfig.Count }

func (d *Deck) Next() int {
	if d.index < d.Count()-1 {
		d.index++
	}
	return d.index
}

func (d *Deck) Prev() int {
	if d.index > 0 {
		d.index--
	}
	return d.index
}

func (d *Deck) Reset() { d.index = 0 }

func (d *Deck) IsFirst() bool { return d.index == 0 }

func (d *Deck) IsLast() bool { return d.index == d.Count()-1 }

// Title returns the heading of the current slide.
func (d *Deck) Title() string { return SlideTitles[d.index] }

// Indicator renders "n / total" as shown in the presentation controls.
func (d *Deck) Indicator() string {
	return fmt.Sprintf("%d / %d", d.index+1, d.Count())
}
