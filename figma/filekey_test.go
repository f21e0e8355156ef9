package figma

import "testing"

func TestExtractFileKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://www.figma.com/design/AbC123xyz/Landing-Page?node-id=0-1", "AbC123xyz"},
		{"https://www.figma.com/file/Zz9/Old-Style", "Zz9"},
		{"figma.com/design/first/x figma.com/file/second/y", "first"},
		{"figma.com/file/second/y figma.com/design/first/x", "first"},
		{"  AbC123xyz \n", "AbC123xyz"},
		{"https://example.com/design/AbC", "https://example.com/design/AbC"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExtractFileKey(tt.input); got != tt.want {
			t.Errorf("ExtractFileKey(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
