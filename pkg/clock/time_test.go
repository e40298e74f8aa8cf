package clock

import (
	"errors"
	"testing"
	"time"
)

func TestDisplayTime_Accessors(t *testing.T) {
	d := DisplayTimeOf(time.Date(2024, 6, 1, 14, 35, 7, 123456789, time.UTC))
	if d.Hour() != 14 || d.Minute() != 35 || d.Second() != 7 || d.Nanosecond() != 123456789 {
		t.Errorf("unexpected fields: %d:%d:%d.%d", d.Hour(), d.Minute(), d.Second(), d.Nanosecond())
	}
	if d.Zone() != time.UTC {
		t.Errorf("expected UTC zone, got %v", d.Zone())
	}
}

func TestDisplayTime_InPreservesInstant(t *testing.T) {
	sydney := time.FixedZone("AEST", 10*3600)
	d := DisplayTimeOf(time.Date(2024, 6, 1, 14, 35, 7, 500_000_000, time.UTC))
	shifted := d.In(sydney)

	if !shifted.Time().Equal(d.Time()) {
		t.Fatalf("expected the same instant, got %v and %v", shifted.Time(), d.Time())
	}
	if shifted.Hour() != 0 { // 14:35 UTC is 00:35 next day at +10
		t.Errorf("expected hour 0 in AEST, got %d", shifted.Hour())
	}
	if shifted.Minute() != d.Minute() || shifted.Second() != d.Second() || shifted.Nanosecond() != d.Nanosecond() {
		t.Error("expected sub-hour fields unchanged by a whole-hour offset")
	}
}

func TestDisplayTime_InNilZoneIsNoop(t *testing.T) {
	d := DisplayTimeOf(time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC))
	if got := d.In(nil); got != d {
		t.Errorf("expected nil zone to be a no-op, got %v", got.Time())
	}
}

func TestDisplayTime_StartOfDay(t *testing.T) {
	zone := time.FixedZone("UTC-5", -5*3600)
	d := DisplayTimeOf(time.Date(2024, 6, 1, 14, 35, 7, 1, zone))
	start := d.StartOfDay()
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Errorf("expected midnight, got %v", start.Time())
	}
	if start.Zone() != zone {
		t.Errorf("expected zone preserved, got %v", start.Zone())
	}
}

func TestDisplayTime_AtSecondOfDay(t *testing.T) {
	d := DisplayTimeOf(time.Date(2024, 6, 1, 14, 35, 7, 1, time.UTC))
	got := d.AtSecondOfDay(3661)
	if got.Hour() != 1 || got.Minute() != 1 || got.Second() != 1 || got.Nanosecond() != 0 {
		t.Errorf("expected 01:01:01.0, got %v", got.Time())
	}
	if got.Zone() != time.UTC {
		t.Errorf("expected zone preserved, got %v", got.Zone())
	}
}

func TestLoadZone_Empty(t *testing.T) {
	zone, err := LoadZone("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zone != time.Local {
		t.Errorf("expected system local zone, got %v", zone)
	}
}

func TestLoadZone_UTC(t *testing.T) {
	zone, err := LoadZone("UTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zone != time.UTC {
		t.Errorf("expected UTC, got %v", zone)
	}
}

func TestLoadZone_Invalid(t *testing.T) {
	_, err := LoadZone("Mars/Olympus")
	if err == nil {
		t.Fatal("expected an error for an unknown zone")
	}
	var zoneErr *ZoneError
	if !errors.As(err, &zoneErr) {
		t.Fatalf("expected a *ZoneError, got %T", err)
	}
	if zoneErr.Name != "Mars/Olympus" {
		t.Errorf("expected the offending name in the error, got %q", zoneErr.Name)
	}
}
