package classify

import (
	"strings"
	"testing"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		text   string
		want   float64
		wantOK bool
	}{
		{"bus fare 45.50 today", 45.5, true},
		{"spent 120 on lunch", 120, true},
		{"two numbers 10 and 20", 10, true},
		{"chai 12.5", 12.5, true},
		{"no digits here", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ExtractAmount(tt.text)
		if ok != tt.wantOK {
			t.Errorf("ExtractAmount(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ExtractAmount(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestBuildTitle(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"  had a long day at the office today", "Had a long day at"},
		{"chai", "Chai"},
		{"", ""},
		{"   ", ""},
		{"two  spaced   words", "Two spaced words"},
	}

	for _, tt := range tests {
		if got := BuildTitle(tt.text); got != tt.want {
			t.Errorf("BuildTitle(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestBuildTitleTruncation(t *testing.T) {
	// Six words joined, longer than 40 chars: cut to 37 plus ellipsis.
	in := "abcdefghij abcdefghij abcdefghij abcdefghij abcdefghij abcdefghij"
	got := BuildTitle(in)
	if len(got) != 40 {
		t.Fatalf("len(BuildTitle) = %d, want 40 (37 + ellipsis)", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("BuildTitle = %q, want ... suffix", got)
	}
	if got[0] != 'A' {
		t.Fatalf("BuildTitle = %q, first letter not capitalized", got)
	}
}
