// Package tempconv is the temperature converter demo: two linked inputs
// for Celsius and Fahrenheit where editing either one updates the other.
package tempconv

import (
	"math"
	"strconv"
)

type Scale int

const (
	Celsius Scale = iota
	Fahrenheit
)

func (s Scale) String() string {
	if s == Fahrenheit {
		return "fahrenheit"
	}
	return "celsius"
}

// CToF and FToC round every step to float32 so the results do not depend
// on whether the platform fuses multiply-add.
func CToF(c float32) float32 {
	return float32(c*1.8) + 32
}

func FToC(f float32) float32 {
	return float32(float32(f-32)*5) / 9
}

// Parse reads a temperature the way it was typed. Empty, malformed and
// non-finite input is rejected.
func Parse(text string) (float32, bool) {
	v, err := strconv.ParseFloat(text, 32)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return float32(v), true
}

// Format renders v with the fewest digits that read back as the same
// float32.
func Format(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// Change reports which scale was set; the other one was derived.
type Change struct {
	Source     Scale
	Celsius    float32
	Fahrenheit float32
}

// Model holds both temperatures and keeps them consistent.
type Model struct {
	c, f float32

	listeners map[int]func(Change)
	nextID    int
}

func NewModel() *Model {
	return &Model{c: 0, f: 32, listeners: make(map[int]func(Change))}
}

func (m *Model) Celsius() float32    { return m.c }
func (m *Model) Fahrenheit() float32 { return m.f }

func (m *Model) SetCelsius(c float32) {
	m.c, m.f = c, CToF(c)
	m.emit(Change{Source: Celsius, Celsius: m.c, Fahrenheit: m.f})
}

func (m *Model) SetFahrenheit(f float32) {
	m.c, m.f = FToC(f), f
	m.emit(Change{Source: Fahrenheit, Celsius: m.c, Fahrenheit: m.f})
}

// Subscribe registers fn and returns the function that removes it.
func (m *Model) Subscribe(fn func(Change)) func() {
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() {
		delete(m.listeners, id)
	}
}

func (m *Model) emit(ch Change) {
	for id := 0; id < m.nextID; id++ {
		if fn, ok := m.listeners[id]; ok {
			fn(ch)
		}
	}
}
