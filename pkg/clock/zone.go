package clock

import (
	"fmt"
	"time"
)

// ZoneError reports a time-zone identifier that could not be resolved.
// It is returned by LoadZone; invalid zones are rejected here at the host
// boundary and never reach the renderer.
type ZoneError struct {
	// Name is the identifier that failed to resolve (e.g. "Mars/Olympus").
	Name string
	// Err is the underlying lookup error.
	Err error
}

func (e *ZoneError) Error() string {
	return fmt.Sprintf("invalid time zone %q: %v", e.Name, e.Err)
}

func (e *ZoneError) Unwrap() error {
	return e.Err
}

// LoadZone resolves an IANA time-zone identifier such as "Australia/Sydney".
// The empty string resolves to the system local zone.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	zone, err := time.LoadLocation(name)
	if err != nil {
		return nil, &ZoneError{Name: name, Err: err}
	}
	return zone, nil
}
