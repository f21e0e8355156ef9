package figma

import (
	"errors"
	"testing"
)

func TestSelectFrame(t *testing.T) {
	frame := &Node{ID: "1:2", Name: "Frame"}

	tests := []struct {
		name string
		file *File
		want *Node
	}{
		{"nil file", nil, nil},
		{"no pages", &File{}, nil},
		{"nil page", &File{Document: Document{Children: []*Node{nil}}}, nil},
		{"empty page", &File{Document: Document{Children: []*Node{{Name: "Page 1"}}}}, nil},
		{
			name: "empty first page, second has frames",
			file: &File{Document: Document{Children: []*Node{{Name: "Page 1"}, {Name: "Page 2", Children: []*Node{frame}}}}},
		},
		{
			name: "first child of first page",
			file: &File{Document: Document{Children: []*Node{{Name: "Page 1", Children: []*Node{frame, {ID: "2:1"}}}}}},
			want: frame,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectFrame(tt.file)
			if tt.want == nil {
				if !errors.Is(err, ErrNoFrame) {
					t.Fatalf("expected ErrNoFrame, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got node %+v, want %+v", got, tt.want)
			}
		})
	}
}
