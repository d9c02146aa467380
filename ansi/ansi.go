// Package ansi wraps text in 256-colour terminal escape sequences. Colours
// arrive as 24-bit color.Triple values and are mapped onto the nearest entry
// of the xterm 256-colour palette, using the extended greyscale ramp for
// neutral tones.
package ansi

import (
	"math"
	"strconv"
	"strings"

	"pkt.systems/nslog/color"
)

// Reset clears all terminal styling. FgReset and BgReset restore only the
// foreground or background colour and are what Wrap closes with.
const (
	Reset   = "\x1b[0m"
	FgReset = "\x1b[39m"
	BgReset = "\x1b[49m"
)

// Index256 maps t onto the xterm 256-colour palette. Greys use the 24 step ramp
// at 232-255, except black (16) and white (231); everything else is quantised
// to the 6x6x6 cube starting at 16.
func Index256(t color.Triple) int {
	r, g, b := float64(t[0]), float64(t[1]), float64(t[2])
	if t[0] == t[1] && t[1] == t[2] {
		if t[0] < 8 {
			return 16
		}
		if t[0] > 248 {
			return 231
		}
		return int(round((r-8)/247*24)) + 232
	}
	return 16 +
		36*int(round(r/255*5)) +
		6*int(round(g/255*5)) +
		int(round(b/255*5))
}

func round(v float64) float64 { return math.Floor(v + 0.5) }

// Foreground returns the escape sequence selecting t as text colour.
func Foreground(t color.Triple) string { return sequence(38, t) }

// Background returns the escape sequence selecting t as background colour.
func Background(t color.Triple) string { return sequence(48, t) }

func sequence(base int, t color.Triple) string {
	return "\x1b[" + strconv.Itoa(base) + ";5;" + strconv.Itoa(Index256(t)) + "m"
}

// Wrap applies style to content. The foreground wraps content first and the
// background wraps the result, each closed by its own reset. A Style without
// colours returns content unchanged.
func Wrap(content string, style color.Style) string {
	out := content
	if style.Content != nil {
		out = Foreground(*style.Content) + out + FgReset
	}
	if style.Background != nil {
		out = Background(*style.Background) + out + BgReset
	}
	return out
}

// Strip removes CSI escape sequences terminated by 'm' from s.
func Strip(s string) string {
	if strings.IndexByte(s, '\x1b') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	sz := len(s)
	for i := 0; i < sz; i++ {
		if s[i] != '\x1b' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 >= sz || s[i+1] != '[' {
			b.WriteByte(s[i])
			continue
		}
		j := i + 2
		for j < sz && s[j] != 'm' {
			j++
		}
		if j >= sz {
			break
		}
		i = j
	}
	return b.String()
}
