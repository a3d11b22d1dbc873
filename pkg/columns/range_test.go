package columns

import "testing"

func TestParseRange(t *testing.T) {
	tests := []struct {
		token string
		want  Range
	}{
		{"1", Range{Start: 1, End: 1}},
		{"0", Range{Start: 0, End: 0}},
		{"-2", Range{Start: -2, End: -2}},
		{"42", Range{Start: 42, End: 42}},
		{"1:7", Range{Start: 1, End: 7}},
		{"7:1", Range{Start: 7, End: 1}},
		{"-6:-2", Range{Start: -6, End: -2}},
		{"3:-2", Range{Start: 3, End: -2}},
		{"-1:5", Range{Start: -1, End: 5}},
		{"0:0", Range{Start: 0, End: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseRange(tt.token)
			if !ok {
				t.Fatalf("ParseRange(%q) not recognised, want %v", tt.token, tt.want)
			}
			if got != tt.want {
				t.Errorf("ParseRange(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseRangeRejects(t *testing.T) {
	tokens := []string{
		"",
		"a",
		"1.2",
		"1:a",
		"a:2",
		"1:2-",
		"-1:2-",
		":2",
		"1:",
		":",
		"1:2:3",
		"--2",
		"1 : 2",
		"filename.txt",
	}
	for _, token := range tokens {
		t.Run(token, func(t *testing.T) {
			if got, ok := ParseRange(token); ok {
				t.Errorf("ParseRange(%q) = %v, want rejection", token, got)
			}
		})
	}
}
