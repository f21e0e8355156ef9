package figma

import "errors"

// ErrNoFrame is returned when document does not have a page with at least one
// top level node.
var ErrNoFrame = errors.New("no frame found")

// SelectFrame returns first child of the first page - this is what gets
// converted.
func SelectFrame(f *File) (*Node, error) {
	if f == nil || len(f.Document.Children) == 0 {
		return nil, ErrNoFrame
	}
	page := f.Document.Children[0]
	if page == nil || len(page.Children) == 0 || page.Children[0] == nil {
		return nil, ErrNoFrame
	}
	return page.Children[0], nil
}
