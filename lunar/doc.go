// Copyright 2024 Alexander Getmansky <alex@getsky.tech>
// Licensed under the Apache License, Version 2.0

// Package lunar follows the Moon for an observer: its age and phase, rise
// and set within a local day, and the combined solunar status of the sky.
// The rising and setting of the galactic center are resolved the same way.
//
// Positions and horizon crossings come from an Oracle; SunCalc is the
// default. Day windows and enumeration are shared with package solar.
package lunar
