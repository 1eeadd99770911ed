// Package compose is a small digraph input method. Terminals deliver no
// composition events, so the host starts a composition on a compose key and
// feeds typed runes here; the running result is shown as marked text and
// committed once a digraph completes.
package compose

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Combining marks reachable by typing a letter followed by the key.
var accents = map[rune]rune{
	'\'': '\u0301', // acute
	'`':  '\u0300', // grave
	'^':  '\u0302', // circumflex
	'~':  '\u0303', // tilde
	'"':  '\u0308', // diaeresis
	':':  '\u0308',
	',':  '\u0327', // cedilla
	'*':  '\u030a', // ring
	'v':  '\u030c', // caron
}

var symbols = map[[2]rune]rune{
	{'o', 'o'}: '°',
	{'+', '-'}: '±',
	{'<', '<'}: '«',
	{'>', '>'}: '»',
	{'E', 'u'}: '€',
	{'1', '2'}: '½',
	{'1', '4'}: '¼',
	{'3', '4'}: '¾',
	{'x', 'x'}: '×',
	{'-', ':'}: '÷',
	{'s', 's'}: 'ß',
	{'a', 'e'}: 'æ',
	{'A', 'E'}: 'Æ',
	{'o', '/'}: 'ø',
	{'O', '/'}: 'Ø',
	{'L', '-'}: '£',
	{'Y', '='}: '¥',
	{'c', 'o'}: '©',
	{'!', '!'}: '¡',
	{'?', '?'}: '¿',
	{'-', '-'}: '–',
}

// Digraph returns the character produced by typing a then b.
func Digraph(a, b rune) (rune, bool) {
	if r, ok := symbols[[2]rune{a, b}]; ok {
		return r, true
	}
	mark, ok := accents[b]
	if !ok {
		return 0, false
	}
	composed := norm.NFC.String(string([]rune{a, mark}))
	r, size := utf8.DecodeRuneInString(composed)
	if size != len(composed) || r == a {
		return 0, false
	}
	return r, true
}

// Step is the outcome of one keystroke during a composition.
type Step struct {
	// Marked is the text to show as marked; empty ends the composition.
	Marked string
	// Commit tells the host to commit Marked as ordinary text.
	Commit bool
}

// Composer tracks one composition.
type Composer struct {
	buf    []rune
	active bool
}

// Start begins a composition; any previous buffer is discarded.
func (c *Composer) Start() {
	c.buf = c.buf[:0]
	c.active = true
}

func (c *Composer) Active() bool {
	return c.active
}

// Feed adds r. The second rune always ends the composition: a known digraph
// commits the composed character, anything else commits both runes as typed.
func (c *Composer) Feed(r rune) Step {
	if !c.active {
		return Step{Marked: string(r), Commit: true}
	}
	c.buf = append(c.buf, r)
	if len(c.buf) < 2 {
		return Step{Marked: string(c.buf)}
	}
	a, b := c.buf[0], c.buf[1]
	c.active = false
	c.buf = c.buf[:0]
	if out, ok := Digraph(a, b); ok {
		return Step{Marked: string(out), Commit: true}
	}
	return Step{Marked: string([]rune{a, b}), Commit: true}
}

// Backspace drops the last buffered rune. An empty buffer ends the
// composition.
func (c *Composer) Backspace() Step {
	if len(c.buf) > 0 {
		c.buf = c.buf[:len(c.buf)-1]
	}
	if len(c.buf) == 0 {
		c.active = false
		return Step{}
	}
	return Step{Marked: string(c.buf)}
}

// Cancel abandons the composition.
func (c *Composer) Cancel() {
	c.buf = c.buf[:0]
	c.active = false
}
