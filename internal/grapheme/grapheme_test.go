package grapheme

import "testing"

func TestCountAndWidth_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "日本" + "b"
	if got, want := Count(text), 5; got != want {
		t.Fatalf("count=%d, want %d", got, want)
	}
	if got, want := Width(text), 7; got != want {
		t.Fatalf("width=%d, want %d", got, want)
	}
	if got := Width(""); got != 0 {
		t.Fatalf("width of empty=%d, want 0", got)
	}
}

func TestTruncate_GraphemeSafe(t *testing.T) {
	cases := []struct {
		text  string
		width int
		want  string
	}{
		{text: "Lovelace", width: 8, want: "Lovelace"},
		{text: "Lovelace", width: 5, want: "Love…"},
		{text: "ééé", width: 2, want: "é…"},
		{text: "日本語", width: 4, want: "日…"},
		{text: "日本語", width: 1, want: "…"},
		{text: "abc", width: 0, want: ""},
	}
	for _, tc := range cases {
		if got := Truncate(tc.text, tc.width); got != tc.want {
			t.Fatalf("Truncate(%q, %d)=%q, want %q", tc.text, tc.width, got, tc.want)
		}
		if tc.width > 0 && Width(Truncate(tc.text, tc.width)) > tc.width {
			t.Fatalf("Truncate(%q, %d) overflows", tc.text, tc.width)
		}
	}
}

func TestFit_PadsToExactWidth(t *testing.T) {
	if got, want := Fit("Ada", 6), "Ada   "; got != want {
		t.Fatalf("fit=%q, want %q", got, want)
	}
	if got, want := Fit("日本", 5), "日本 "; got != want {
		t.Fatalf("fit=%q, want %q", got, want)
	}
	if got, want := Fit("Marigold", 4), "Mar…"; got != want {
		t.Fatalf("fit=%q, want %q", got, want)
	}
}

func TestTail_KeepsEnd(t *testing.T) {
	if got, want := Tail("Lovelace", 4), "lace"; got != want {
		t.Fatalf("tail=%q, want %q", got, want)
	}
	if got, want := Tail("a日本", 3), "本"; got != want {
		t.Fatalf("tail=%q, want %q", got, want)
	}
	if got, want := Tail("ab", 5), "ab"; got != want {
		t.Fatalf("tail=%q, want %q", got, want)
	}
}

func TestSplitAt_SnapsToClusters(t *testing.T) {
	// "e" + combining acute is two runes, one cluster.
	text := "ab" + "e\u0301" + "c"
	cases := []struct {
		pos               int
		before, at, after string
	}{
		{pos: 0, before: "", at: "a", after: "be\u0301c"},
		{pos: 2, before: "ab", at: "e\u0301", after: "c"},
		{pos: 3, before: "ab", at: "e\u0301", after: "c"},
		{pos: 4, before: "abe\u0301", at: "c", after: ""},
		{pos: 5, before: text, at: "", after: ""},
		{pos: -1, before: "", at: "a", after: "be\u0301c"},
	}
	for _, tc := range cases {
		before, at, after := SplitAt(text, tc.pos)
		if before != tc.before || at != tc.at || after != tc.after {
			t.Fatalf("SplitAt(%d): got (%q, %q, %q), want (%q, %q, %q)", tc.pos, before, at, after, tc.before, tc.at, tc.after)
		}
	}
}
