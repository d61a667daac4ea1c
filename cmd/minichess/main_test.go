package main

import (
	"strings"
	"testing"
)

func TestReadDepth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"3\n", 3},
		{" 2 \r\n", 2},
		{"4", 4},
		{"abc\n", 0},
		{"-1\n", 0},
		{"", 0},
		{"\n", 0},
		{"2.5\n", 0},
	}
	for _, tc := range cases {
		if got := readDepth(strings.NewReader(tc.in)); got != tc.want {
			t.Errorf("readDepth(%q): got=%d want=%d", tc.in, got, tc.want)
		}
	}
}
