package utils

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "short text unchanged",
			input:  "Dune",
			maxLen: 20,
			want:   "Dune",
		},
		{
			name:   "exact length unchanged",
			input:  "abcde",
			maxLen: 5,
			want:   "abcde",
		},
		{
			name:   "long text gets ellipsis",
			input:  "A sweeping epic of politics and prophecy",
			maxLen: 20,
			want:   "A sweeping epic o...",
		},
		{
			name:   "newlines collapse to spaces",
			input:  "line one\nline two",
			maxLen: 40,
			want:   "line one line two",
		},
		{
			name:   "multibyte runes are not split",
			input:  "Война и мир — роман Льва Толстого",
			maxLen: 10,
			want:   "Война и...",
		},
		{
			name:   "tiny limit has no room for ellipsis",
			input:  "abcdef",
			maxLen: 2,
			want:   "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}
