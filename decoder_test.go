package asciink

import (
	"image/color"
	"testing"
)

func TestDecodeRunsPlainText(t *testing.T) {
	runs := DecodeRuns("hello")

	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Text != "hello" {
		t.Errorf("expected 'hello', got %q", runs[0].Text)
	}
	if runs[0].Style != (Style{}) {
		t.Errorf("expected default style, got %+v", runs[0].Style)
	}
}

func TestDecodeRunsColorReset(t *testing.T) {
	runs := DecodeRuns("\x1b[31mred\x1b[0mplain")

	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}

	if runs[0].Text != "red" {
		t.Errorf("expected 'red', got %q", runs[0].Text)
	}
	fg, ok := runs[0].Style.Fg.(*IndexedColor)
	if !ok || fg.Index != 1 {
		t.Errorf("expected fg index 1 (red), got %v", runs[0].Style.Fg)
	}

	if runs[1].Text != "plain" {
		t.Errorf("expected 'plain', got %q", runs[1].Text)
	}
	if runs[1].Style.Fg != nil {
		t.Errorf("expected default fg after reset, got %v", runs[1].Style.Fg)
	}
}

func TestDecodeRunsSnapshotIsolation(t *testing.T) {
	// A later style change must not retroactively affect emitted runs.
	runs := DecodeRuns("\x1b[1mbold\x1b[22m\x1b[31mthin")

	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if !runs[0].Style.HasFlag(CellFlagBold) {
		t.Error("first run lost its bold flag")
	}
	if runs[1].Style.HasFlag(CellFlagBold) {
		t.Error("second run should not be bold")
	}
}

func TestDecodeRunsStyleParams(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, s Style)
	}{
		{
			name:  "bright foreground",
			input: "\x1b[92mx",
			check: func(t *testing.T, s Style) {
				fg, ok := s.Fg.(*IndexedColor)
				if !ok || fg.Index != 10 {
					t.Errorf("expected index 10, got %v", s.Fg)
				}
			},
		},
		{
			name:  "background",
			input: "\x1b[44mx",
			check: func(t *testing.T, s Style) {
				bg, ok := s.Bg.(*IndexedColor)
				if !ok || bg.Index != 4 {
					t.Errorf("expected index 4, got %v", s.Bg)
				}
			},
		},
		{
			name:  "256-color foreground",
			input: "\x1b[38;5;208mx",
			check: func(t *testing.T, s Style) {
				fg, ok := s.Fg.(*IndexedColor)
				if !ok || fg.Index != 208 {
					t.Errorf("expected index 208, got %v", s.Fg)
				}
			},
		},
		{
			name:  "truecolor background",
			input: "\x1b[48;2;10;20;30mx",
			check: func(t *testing.T, s Style) {
				bg, ok := s.Bg.(color.RGBA)
				if !ok || bg != (color.RGBA{10, 20, 30, 255}) {
					t.Errorf("expected rgb(10,20,30), got %v", s.Bg)
				}
			},
		},
		{
			name:  "colon separated truecolor",
			input: "\x1b[38:2:1:2:3mx",
			check: func(t *testing.T, s Style) {
				fg, ok := s.Fg.(color.RGBA)
				if !ok || fg != (color.RGBA{1, 2, 3, 255}) {
					t.Errorf("expected rgb(1,2,3), got %v", s.Fg)
				}
			},
		},
		{
			name:  "combined bold underline italic",
			input: "\x1b[1;3;4mx",
			check: func(t *testing.T, s Style) {
				want := CellFlagBold | CellFlagItalic | CellFlagUnderline
				if s.Flags != want {
					t.Errorf("expected flags %b, got %b", want, s.Flags)
				}
			},
		},
		{
			name:  "default color restore",
			input: "\x1b[31m\x1b[39mx",
			check: func(t *testing.T, s Style) {
				if s.Fg != nil {
					t.Errorf("expected default fg, got %v", s.Fg)
				}
			},
		},
		{
			name:  "empty param resets",
			input: "\x1b[1m\x1b[mx",
			check: func(t *testing.T, s Style) {
				if s != (Style{}) {
					t.Errorf("expected full reset, got %+v", s)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := DecodeRuns(tt.input)
			if len(runs) == 0 {
				t.Fatal("expected at least one run")
			}
			tt.check(t, runs[len(runs)-1].Style)
		})
	}
}

func TestDecodeRunsLenientSequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		text  string
	}{
		{"unknown CSI ignored", "a\x1b[2Jb", "ab"},
		{"cursor movement ignored", "a\x1b[10;10Hb", "ab"},
		{"osc with bel ignored", "a\x1b]0;title\x07b", "ab"},
		{"osc with st ignored", "a\x1b]0;title\x1b\\b", "ab"},
		{"charset designation ignored", "a\x1b(Bb", "ab"},
		{"truncated csi at eof", "ab\x1b[3", "ab"},
		{"lone escape at eof", "ab\x1b", "ab"},
		{"truncated osc at eof", "ab\x1b]0;tit", "ab"},
		{"private sgr param skipped", "\x1b[>31mab", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := DecodeRuns(tt.input)
			var got string
			for _, r := range runs {
				got += r.Text
			}
			if got != tt.text {
				t.Errorf("expected text %q, got %q", tt.text, got)
			}
			for _, r := range runs {
				if r.Style != (Style{}) {
					t.Errorf("ignored sequence altered the accumulator: %+v", r.Style)
				}
			}
		})
	}
}

func TestDecodeRunsInvalidExtendedColor(t *testing.T) {
	// 38 without a valid color spec drops the rest of the list but keeps
	// earlier parameters.
	runs := DecodeRuns("\x1b[1;38;9;31mx")

	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if !runs[0].Style.HasFlag(CellFlagBold) {
		t.Error("bold before the malformed color spec was lost")
	}
	if runs[0].Style.Fg != nil {
		t.Errorf("malformed color spec set a color: %v", runs[0].Style.Fg)
	}
}
