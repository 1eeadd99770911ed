package compose

import "testing"

func TestDigraph(t *testing.T) {
	tests := []struct {
		a, b rune
		want rune
		ok   bool
	}{
		{'e', '\'', 'é', true},
		{'A', '"', 'Ä', true},
		{'c', ',', 'ç', true},
		{'n', '~', 'ñ', true},
		{'u', '`', 'ù', true},
		{'a', '*', 'å', true},
		{'s', 'v', 'š', true},
		{'o', 'o', '°', true},
		{'+', '-', '±', true},
		{'E', 'u', '€', true},
		{'x', '\'', 0, false},
		{'q', 'q', 0, false},
	}
	for _, tt := range tests {
		got, ok := Digraph(tt.a, tt.b)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("Digraph(%q, %q) = (%q, %v), want (%q, %v)", tt.a, tt.b, got, ok, tt.want, tt.ok)
		}
	}
}

func TestComposerCommitsDigraph(t *testing.T) {
	var c Composer
	c.Start()
	step := c.Feed('e')
	if step.Marked != "e" || step.Commit {
		t.Fatalf("first step = %+v", step)
	}
	step = c.Feed('\'')
	if step.Marked != "é" || !step.Commit {
		t.Fatalf("second step = %+v", step)
	}
	if c.Active() {
		t.Fatalf("composer still active after commit")
	}
}

func TestComposerUnknownPairCommitsLiterally(t *testing.T) {
	var c Composer
	c.Start()
	c.Feed('q')
	step := c.Feed('z')
	if step.Marked != "qz" || !step.Commit {
		t.Fatalf("step = %+v, want literal commit", step)
	}
}

func TestComposerBackspaceEnds(t *testing.T) {
	var c Composer
	c.Start()
	c.Feed('o')
	step := c.Backspace()
	if step.Marked != "" || c.Active() {
		t.Fatalf("after backspace step = %+v active=%v", step, c.Active())
	}
}

func TestComposerCancel(t *testing.T) {
	var c Composer
	c.Start()
	c.Feed('<')
	c.Cancel()
	if c.Active() {
		t.Fatalf("active after cancel")
	}
	if step := c.Feed('a'); step.Marked != "a" || !step.Commit {
		t.Fatalf("inactive Feed = %+v", step)
	}
}
