// Package kinds provides ready-made range-constrained types for values
// that show up in configuration and wire formats: network ports,
// percentages, and calendar fields. Each kind is an alias of a
// ranged.Value instantiated with a package-private bound tag, so the
// interval is part of the type and cannot drift between call sites.
package kinds

import (
	"github.com/amp-labs/amp-ranged/ranged"
)

type portBound struct{}

func (portBound) Range() (uint16, uint16) { return 1, 65535 }

// Port is a TCP/UDP port number. Zero is excluded: a zero port means
// "unspecified" everywhere it appears, which a validated config value
// should never silently carry.
type Port = ranged.Value[uint16, portBound]

// NewPort validates v as a Port.
func NewPort(v uint16) (Port, error) {
	return ranged.New[uint16, portBound](v)
}

// MustPort is NewPort for literals known to be valid; it panics otherwise.
func MustPort(v uint16) Port {
	return ranged.MustNew[uint16, portBound](v)
}

type percentBound struct{}

func (percentBound) Range() (uint8, uint8) { return 0, 100 }

// Percent is a whole-number percentage in [0, 100].
type Percent = ranged.Value[uint8, percentBound]

// NewPercent validates v as a Percent.
func NewPercent(v uint8) (Percent, error) {
	return ranged.New[uint8, percentBound](v)
}

// MustPercent is NewPercent for literals known to be valid; it panics otherwise.
func MustPercent(v uint8) Percent {
	return ranged.MustNew[uint8, percentBound](v)
}

type monthBound struct{}

func (monthBound) Range() (uint8, uint8) { return 1, 12 }

// Month is a calendar month, January = 1.
type Month = ranged.Value[uint8, monthBound]

// NewMonth validates v as a Month.
func NewMonth(v uint8) (Month, error) {
	return ranged.New[uint8, monthBound](v)
}

// MustMonth is NewMonth for literals known to be valid; it panics otherwise.
func MustMonth(v uint8) Month {
	return ranged.MustNew[uint8, monthBound](v)
}

type dayBound struct{}

func (dayBound) Range() (uint8, uint8) { return 1, 31 }

// Day is a day of month. Month-specific lengths are the caller's
// concern; the type only rules out values no month has.
type Day = ranged.Value[uint8, dayBound]

// NewDay validates v as a Day.
func NewDay(v uint8) (Day, error) {
	return ranged.New[uint8, dayBound](v)
}

// MustDay is NewDay for literals known to be valid; it panics otherwise.
func MustDay(v uint8) Day {
	return ranged.MustNew[uint8, dayBound](v)
}

type hourBound struct{}

func (hourBound) Range() (uint8, uint8) { return 0, 23 }

// Hour is an hour of day on the 24-hour clock.
type Hour = ranged.Value[uint8, hourBound]

// NewHour validates v as an Hour.
func NewHour(v uint8) (Hour, error) {
	return ranged.New[uint8, hourBound](v)
}

// MustHour is NewHour for literals known to be valid; it panics otherwise.
func MustHour(v uint8) Hour {
	return ranged.MustNew[uint8, hourBound](v)
}

type minuteBound struct{}

func (minuteBound) Range() (uint8, uint8) { return 0, 59 }

// Minute is a minute of hour.
type Minute = ranged.Value[uint8, minuteBound]

// NewMinute validates v as a Minute.
func NewMinute(v uint8) (Minute, error) {
	return ranged.New[uint8, minuteBound](v)
}

// MustMinute is NewMinute for literals known to be valid; it panics otherwise.
func MustMinute(v uint8) Minute {
	return ranged.MustNew[uint8, minuteBound](v)
}

type weekdayBound struct{}

func (weekdayBound) Range() (uint8, uint8) { return 0, 6 }

// Weekday is a day of week, Sunday = 0, matching time.Weekday.
type Weekday = ranged.Value[uint8, weekdayBound]

// NewWeekday validates v as a Weekday.
func NewWeekday(v uint8) (Weekday, error) {
	return ranged.New[uint8, weekdayBound](v)
}

// MustWeekday is NewWeekday for literals known to be valid; it panics otherwise.
func MustWeekday(v uint8) Weekday {
	return ranged.MustNew[uint8, weekdayBound](v)
}
