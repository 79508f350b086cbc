// Package expiry implements link expiration: the selectable duration
// options, wire mapping, and countdown math. A nil expiration timestamp is
// the permanent state and never enters the countdown path.
package expiry

import (
	"fmt"
	"time"
)

// Option is a selectable link lifetime.
type Option string

const (
	Opt6h        Option = "6h"
	Opt12h       Option = "12h"
	Opt24h       Option = "24h"
	Opt7d        Option = "7d"
	Opt30d       Option = "30d"
	OptPermanent Option = "permanent"
)

// Options lists the selectable lifetimes in display order.
// OptPermanent is offered to authenticated users only.
var Options = []Option{Opt6h, Opt12h, Opt24h, Opt7d, Opt30d, OptPermanent}

var optionMinutes = map[Option]int{
	Opt6h:  6 * 60,
	Opt12h: 12 * 60,
	Opt24h: 24 * 60,
	Opt7d:  7 * 24 * 60,
	Opt30d: 30 * 24 * 60,
}

// ParseOption normalizes a lifetime label. The old web UI used "1w" and "1m"
// for week and month; both are accepted as aliases.
func ParseOption(s string) (Option, error) {
	switch s {
	case "6h", "12h", "24h", "7d", "30d", "permanent":
		return Option(s), nil
	case "1w":
		return Opt7d, nil
	case "1m":
		return Opt30d, nil
	}
	return "", fmt.Errorf("unknown expiration option %q", s)
}

// Minutes returns the wire value for the option. ok is false for
// OptPermanent, which is encoded by omitting the field entirely.
func (o Option) Minutes() (minutes int, ok bool) {
	m, ok := optionMinutes[o]
	return m, ok
}

// Duration returns the option's lifetime. ok is false for OptPermanent.
func (o Option) Duration() (time.Duration, bool) {
	m, ok := optionMinutes[o]
	return time.Duration(m) * time.Minute, ok
}

// State classifies a link's position in its lifetime.
type State int

const (
	StatePermanent State = iota
	StateActive
	StateExpired
)

// Remaining computes the time left before expiresAt as of now.
// Permanent links (nil expiresAt) report StatePermanent and zero remaining;
// once now >= expiresAt the state is StateExpired and stays there.
func Remaining(expiresAt *time.Time, now time.Time) (time.Duration, State) {
	if expiresAt == nil {
		return 0, StatePermanent
	}
	d := expiresAt.Sub(now)
	if d <= 0 {
		return 0, StateExpired
	}
	return d, StateActive
}

// Countdown is a duration broken into display units.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Split breaks d into countdown units. Negative durations split as zero.
func Split(d time.Duration) Countdown {
	if d < 0 {
		d = 0
	}
	return Countdown{
		Days:    int(d / (24 * time.Hour)),
		Hours:   int(d % (24 * time.Hour) / time.Hour),
		Minutes: int(d % time.Hour / time.Minute),
		Seconds: int(d % time.Minute / time.Second),
	}
}

// Largest returns the biggest non-zero unit and its localized label picked
// from the given unit names, the way the countdown is rendered in lists:
// "3 days", then "5 hours", down to "42 seconds".
func (c Countdown) Largest(days, hours, minutes, seconds string) string {
	switch {
	case c.Days > 0:
		return fmt.Sprintf("%d %s", c.Days, days)
	case c.Hours > 0:
		return fmt.Sprintf("%d %s", c.Hours, hours)
	case c.Minutes > 0:
		return fmt.Sprintf("%d %s", c.Minutes, minutes)
	default:
		return fmt.Sprintf("%d %s", c.Seconds, seconds)
	}
}

// Clock renders the countdown as d:hh:mm:ss (days omitted when zero), used
// on the 1-second granularity link detail views.
func (c Countdown) Clock() string {
	if c.Days > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", c.Days, c.Hours, c.Minutes, c.Seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}
