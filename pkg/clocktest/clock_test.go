package clocktest

import (
	"testing"
	"time"
)

func TestFakeClock_StartsAtEpoch(t *testing.T) {
	c := NewFakeClock()
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !c.Now().Equal(want) {
		t.Errorf("expected epoch start %v, got %v", want, c.Now())
	}
}

func TestFakeClock_Advance(t *testing.T) {
	c := NewFakeClock()
	start := c.Now()
	c.Advance(90 * time.Second)
	if got := c.Now().Sub(start); got != 90*time.Second {
		t.Errorf("expected 90s advance, got %v", got)
	}

	c.Advance(-time.Minute)
	if got := c.Now().Sub(start); got != 30*time.Second {
		t.Errorf("expected negative advance to rewind, got %v", got)
	}
}

func TestFakeClock_Set(t *testing.T) {
	c := NewFakeClock()
	want := time.Date(2030, 12, 31, 23, 59, 59, 0, time.UTC)
	c.Set(want)
	if !c.Now().Equal(want) {
		t.Errorf("expected %v, got %v", want, c.Now())
	}
}
