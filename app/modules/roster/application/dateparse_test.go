package rosterservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateParser(t *testing.T) {
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
	p := NewDateParser(fixedClock{now})

	got, err := p.Parse("2026-11-07 18:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 11, 7, 18, 30, 0, 0, time.UTC), got)

	got, err = p.Parse("2026-11-07T18:30:00+01:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 11, 7, 17, 30, 0, 0, time.UTC), got)

	got, err = p.Parse("Tomorrow")
	require.NoError(t, err)
	y, m, d := got.Date()
	assert.Equal(t, []int{2026, 10, 15}, []int{y, int(m), d})

	_, err = p.Parse("   ")
	assert.Error(t, err)

	_, err = p.Parse("banana")
	assert.Error(t, err)
}
