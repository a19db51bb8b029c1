// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

package solar

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownTimezone = errors.New("unknown timezone")

// LoadTimezone resolves an IANA zone name. Unlike time.LoadLocation an empty
// name is an error: callers that want UTC must ask for it.
func LoadTimezone(name string) (*time.Location, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownTimezone)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrUnknownTimezone, name, err)
	}
	return loc, nil
}
