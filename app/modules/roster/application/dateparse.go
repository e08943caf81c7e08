package rosterservice

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Clock abstracts time.Now for tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006",
}

// DateParser reads matchday dates written either as a calendar date or as a
// natural-language phrase such as "next saturday at 18:00".
type DateParser struct {
	clock Clock
	w     *when.Parser
}

// NewDateParser creates a parser anchored to clock. A nil clock uses the wall clock.
func NewDateParser(clock Clock) *DateParser {
	if clock == nil {
		clock = realClock{}
	}
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &DateParser{clock: clock, w: w}
}

// Parse returns the instant described by input, in UTC.
func (p *DateParser) Parse(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return t.UTC(), nil
		}
	}

	r, err := p.w.Parse(strings.ToLower(input), p.clock.Now())
	if err != nil {
		return time.Time{}, fmt.Errorf("could not parse date %q: %w", input, err)
	}
	if r == nil {
		return time.Time{}, fmt.Errorf("could not recognize date format: %s", input)
	}
	return r.Time.UTC(), nil
}
