// Package grapheme measures and fits cell text by grapheme cluster and
// terminal cell width.
package grapheme

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Ellipsis marks text cut by Truncate.
const Ellipsis = "…"

// SplitAt splits text around the grapheme cluster holding rune offset pos.
// at is empty when pos is at or past the end of text.
func SplitAt(text string, pos int) (before, at, after string) {
	if pos <= 0 {
		pos = 0
	}
	runes := 0
	offset := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		n := utf8.RuneCountInString(cluster)
		if pos < runes+n {
			return text[:offset], cluster, text[offset+len(cluster):]
		}
		runes += n
		offset += len(cluster)
	}
	return text, "", ""
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	if text == "" {
		return 0
	}
	w := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w += clusterWidth(g.Str())
	}
	return w
}

func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 1 {
		// Control and zero-width-only clusters still take a cell when shown.
		return 1
	}
	return w
}

// Truncate cuts text to at most width cells without splitting a grapheme
// cluster. Cut text ends with Ellipsis.
func Truncate(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	if Width(text) <= width {
		return text
	}

	budget := width - runewidth.StringWidth(Ellipsis)
	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cw := clusterWidth(g.Str())
		if used+cw > budget {
			break
		}
		sb.WriteString(g.Str())
		used += cw
	}
	if budget >= 0 {
		sb.WriteString(Ellipsis)
	}
	return sb.String()
}

// Pad right-pads text with spaces to width cells.
func Pad(text string, width int) string {
	w := Width(text)
	if w >= width {
		return text
	}
	return text + strings.Repeat(" ", width-w)
}

// Fit truncates and pads text to exactly width cells.
func Fit(text string, width int) string {
	return Pad(Truncate(text, width), width)
}

// Tail returns the trailing part of text that fits in width cells. It is
// used to keep the cursor end of an input visible.
func Tail(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	if Width(text) <= width {
		return text
	}
	var clusters []string
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	used := 0
	start := len(clusters)
	for start > 0 {
		cw := clusterWidth(clusters[start-1])
		if used+cw > width {
			break
		}
		used += cw
		start--
	}
	return strings.Join(clusters[start:], "")
}
