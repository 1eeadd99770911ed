// Package flight is the flight booker demo: choose one-way or return,
// enter dates as DD.MM.YYYY and book.
package flight

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minYear = 2025
	maxYear = 9999
)

type Kind int

const (
	OneWay Kind = iota
	Return
)

func (k Kind) String() string {
	if k == Return {
		return "return"
	}
	return "one-way"
}

// ParseKind accepts the names produced by Kind.String.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "one-way":
		return OneWay, true
	case "return":
		return Return, true
	}
	return OneWay, false
}

// Date is a calendar day as typed by the user.
type Date struct {
	Day, Month, Year int
}

// ParseDate reads DD.MM.YYYY. Each part must be decimal digits; the year
// must lie in 2025..9999 and the day must exist in that month, February 29
// included in leap years.
func ParseDate(s string) (Date, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Date{}, false
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return Date{}, false
		}
		n[i] = int(v)
	}
	d := Date{Day: n[0], Month: n[1], Year: n[2]}
	if d.Year < minYear || d.Year > maxYear {
		return Date{}, false
	}
	if d.Month < 1 || d.Month > 12 {
		return Date{}, false
	}
	if d.Day < 1 || d.Day > daysIn(time.Month(d.Month), d.Year) {
		return Date{}, false
	}
	return d, true
}

func daysIn(m time.Month, year int) int {
	// day 0 of the following month is the last day of m
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Booking is the demo's domain state: the flight kind and the two date
// strings exactly as typed.
type Booking struct {
	Kind   Kind
	Start  string
	Return string
}

// StartOK reports whether the start input should be shown as acceptable.
// An empty input is acceptable until the user types something.
func (b Booking) StartOK() bool {
	return b.Start == "" || validDate(b.Start)
}

func (b Booking) ReturnOK() bool {
	return b.Return == "" || validDate(b.Return)
}

// CanBook reports whether the Book button is enabled: a start date is
// required, and a return flight also needs a valid return date.
func (b Booking) CanBook() bool {
	if b.Start == "" || !b.StartOK() {
		return false
	}
	return b.Kind != Return || validDate(b.Return)
}

// Message is the confirmation shown after booking.
func (b Booking) Message() string {
	if b.Kind == Return {
		return fmt.Sprintf("You have booked a return flight on %s, and will return on %s", b.Start, b.Return)
	}
	return fmt.Sprintf("You have booked a one-way flight on %s.", b.Start)
}

func validDate(s string) bool {
	_, ok := ParseDate(s)
	return ok
}
