package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		color    Color
		expected string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightCyan, "14"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
		{Color(200), ""},
	}
	for _, tc := range tests {
		if got := tc.color.ANSI(); got != tc.expected {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tc.color, got, tc.expected)
		}
	}
}
