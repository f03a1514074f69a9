package textclip

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		max     int
		want    string
		clipped bool
	}{
		{name: "fits", in: "launch", max: 10, want: "launch", clipped: false},
		{name: "exact", in: "launch", max: 6, want: "launch", clipped: false},
		{name: "ascii", in: "launch week", max: 6, want: "launch", clipped: true},
		{name: "multibyte boundary", in: "héllo", max: 2, want: "h", clipped: true},
		{name: "four byte rune", in: "ab😀cd", max: 5, want: "ab", clipped: true},
		{name: "invalid leading byte", in: "\xffaaaaaaaa", max: 5, want: "\xffaaaa", clipped: true},
		{name: "stray continuation bytes", in: "ab\x80\x80\x80\x80cd", max: 4, want: "ab\x80\x80", clipped: true},
		{name: "zero budget", in: "x", max: 0, want: "", clipped: true},
		{name: "empty", in: "", max: 0, want: "", clipped: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clipped := String(tt.in, tt.max)
			if clipped != tt.clipped {
				t.Fatalf("clipped mismatch: got %v, want %v", clipped, tt.clipped)
			}
			if got != tt.want {
				t.Fatalf("value mismatch: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunes(t *testing.T) {
	if got := Runes("Vector Search in Postgres", 10, "…"); got != "Vector Se…" {
		t.Fatalf("unexpected clip: %q", got)
	}
	if got := Runes("short", 10, "…"); got != "short" {
		t.Fatalf("unexpected clip: %q", got)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name      string
		in        []string
		max       int
		want      []string
		truncated bool
	}{
		{name: "fits", in: []string{"ab", "cd"}, max: 5, want: []string{"ab", "cd"}},
		{name: "clips next line", in: []string{"ab", "cdef"}, max: 5, want: []string{"ab", "cd"}, truncated: true},
		{name: "no room after separator", in: []string{"ab", "cd"}, max: 3, want: []string{"ab"}, truncated: true},
		{name: "zero budget", in: []string{"ab"}, max: 0, want: nil, truncated: true},
		{name: "empty", in: nil, max: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := Lines(tt.in, tt.max)
			if truncated != tt.truncated {
				t.Fatalf("truncated mismatch: got %v, want %v", truncated, tt.truncated)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("length mismatch: got %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("line %d mismatch: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
