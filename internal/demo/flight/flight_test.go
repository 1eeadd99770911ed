package flight

import (
	"testing"

	"github.com/kobzarvs/sevenguis/internal/demo"
	"github.com/kobzarvs/sevenguis/internal/ui"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in string
		ok bool
	}{
		{"01.01.2025", true},
		{"31.12.9999", true},
		{"1.2.2030", true},
		{"29.02.2028", true},
		{"29.02.2027", false},
		{"29.02.2100", false},
		{"29.02.2400", true},
		{"31.04.2030", false},
		{"30.04.2030", true},
		{"00.01.2030", false},
		{"01.13.2030", false},
		{"01.00.2030", false},
		{"31.12.2024", false},
		{"01.01.10000", false},
		{"01.01.99999", false},
		{"01-01-2030", false},
		{"01.01.2030.", false},
		{"a.01.2030", false},
		{"-1.01.2030", false},
		{" 1.01.2030", false},
		{"", false},
	}
	for _, tt := range tests {
		if _, ok := ParseDate(tt.in); ok != tt.ok {
			t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
	}
	d, _ := ParseDate("07.08.2031")
	if d != (Date{Day: 7, Month: 8, Year: 2031}) {
		t.Fatalf("ParseDate = %+v", d)
	}
}

func TestBookingRules(t *testing.T) {
	tests := []struct {
		name                       string
		b                          Booking
		startOK, returnOK, canBook bool
	}{
		{"empty", Booking{}, true, true, false},
		{"one-way valid", Booking{Start: "01.01.2030"}, true, true, true},
		{"one-way ignores bad return", Booking{Start: "01.01.2030", Return: "x"}, true, false, true},
		{"bad start", Booking{Start: "32.01.2030"}, false, true, false},
		{"return without date", Booking{Kind: Return, Start: "01.01.2030"}, true, true, false},
		{"return bad date", Booking{Kind: Return, Start: "01.01.2030", Return: "1.1"}, true, false, false},
		{"return valid", Booking{Kind: Return, Start: "01.01.2030", Return: "02.01.2030"}, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.StartOK(); got != tt.startOK {
				t.Fatalf("StartOK = %v, want %v", got, tt.startOK)
			}
			if got := tt.b.ReturnOK(); got != tt.returnOK {
				t.Fatalf("ReturnOK = %v, want %v", got, tt.returnOK)
			}
			if got := tt.b.CanBook(); got != tt.canBook {
				t.Fatalf("CanBook = %v, want %v", got, tt.canBook)
			}
		})
	}
}

func TestMessages(t *testing.T) {
	one := Booking{Start: "01.01.2030"}
	if got, want := one.Message(), "You have booked a one-way flight on 01.01.2030."; got != want {
		t.Fatalf("Message = %q, want %q", got, want)
	}
	ret := Booking{Kind: Return, Start: "01.01.2030", Return: "05.01.2030"}
	if got, want := ret.Message(), "You have booked a return flight on 01.01.2030, and will return on 05.01.2030"; got != want {
		t.Fatalf("Message = %q, want %q", got, want)
	}
}

func TestViewDerive(t *testing.T) {
	v := New(demo.Env{})
	if v.ret.Enabled() {
		t.Fatalf("return input enabled for one-way")
	}
	if !v.book.Disabled() {
		t.Fatalf("book enabled without a start date")
	}
	if got := v.kindMenu.Trigger().Label(); got != "One way flight" {
		t.Fatalf("trigger label = %q", got)
	}

	v.start.SetContent("31.02.2030")
	v.Derive()
	if !v.start.Invalid() || !v.book.Disabled() {
		t.Fatalf("invalid start: invalid=%v book disabled=%v", v.start.Invalid(), v.book.Disabled())
	}

	v.start.SetContent("28.02.2030")
	v.Handle(ui.Command{Kind: ui.CommandSelect, ID: "kind", Index: 1})
	v.Derive()
	if !v.ret.Enabled() || v.kindMenu.Trigger().Label() != "Return flight" {
		t.Fatalf("return kind not applied")
	}
	if !v.book.Disabled() {
		t.Fatalf("book enabled for return flight without return date")
	}
	v.ret.SetContent("01.03.2030")
	v.Derive()
	if v.book.Disabled() || v.start.Invalid() || v.ret.Invalid() {
		t.Fatalf("valid return booking still blocked")
	}
}

func TestViewBookShowsDialog(t *testing.T) {
	v := New(demo.Env{})
	v.Handle(ui.Command{Kind: ui.CommandClick, ID: "book"})
	if v.prompt.Open() {
		t.Fatalf("dialog opened for an empty booking")
	}
	v.start.SetContent("01.01.2030")
	v.Derive()
	v.Handle(ui.Command{Kind: ui.CommandClick, ID: "book"})
	if !v.prompt.Open() {
		t.Fatalf("dialog not opened")
	}
	if got, want := v.prompt.Message(), "You have booked a one-way flight on 01.01.2030."; got != want {
		t.Fatalf("dialog message = %q, want %q", got, want)
	}
	v.Handle(ui.Command{Kind: ui.CommandSelect, ID: "booked", Index: 0})
}

func TestViewSnapshotRestore(t *testing.T) {
	v := New(demo.Env{})
	v.Restore(map[string]string{"kind": "return", "start": "01.01.2030", "return": "bad"})
	if v.Booking().Kind != Return || !v.ret.Invalid() || !v.book.Disabled() {
		t.Fatalf("restored booking = %+v", v.Booking())
	}
	snap := v.Snapshot()
	if snap["kind"] != "return" || snap["start"] != "01.01.2030" || snap["return"] != "bad" {
		t.Fatalf("snapshot = %v", snap)
	}
}

func TestViewLayoutStacksRows(t *testing.T) {
	v := New(demo.Env{})
	v.Layout(ui.Rect{W: 40, H: 11})
	prev := -1
	for _, w := range v.Widgets() {
		b := w.Bounds()
		if b.Y <= prev || b.W != formWidth || b.X != 5 {
			t.Fatalf("%s bounds = %+v", w.ID(), b)
		}
		prev = b.Y
	}
}
