package figma

// Type definitions mirroring the subset of the design tool REST API payload
// we consume. Every field is optional in the wire format, so anything which
// may be absent is a pointer or a slice. Nothing outside of this package and
// design.Import should look at these types.

// File is the response of GET /v1/files/:key.
type File struct {
	Name         string   `json:"name"`
	LastModified string   `json:"lastModified,omitempty"`
	Version      string   `json:"version,omitempty"`
	ThumbnailURL string   `json:"thumbnailUrl,omitempty"`
	Document     Document `json:"document"`
}

// Document is the root of the node tree, its children are pages.
type Document struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Children []*Node `json:"children,omitempty"`
}

// Node is any node of the design tree.
type Node struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`

	Children []*Node `json:"children,omitempty"`

	AbsoluteBoundingBox *Rectangle `json:"absoluteBoundingBox,omitempty"`

	Fills        []Paint  `json:"fills,omitempty"`
	Strokes      []Paint  `json:"strokes,omitempty"`
	StrokeWeight *float64 `json:"strokeWeight,omitempty"`
	StrokeAlign  string   `json:"strokeAlign,omitempty"`
	Effects      []Effect `json:"effects,omitempty"`

	CornerRadius         *float64  `json:"cornerRadius,omitempty"`
	RectangleCornerRadii []float64 `json:"rectangleCornerRadii,omitempty"`

	LayoutMode            string   `json:"layoutMode,omitempty"`
	PrimaryAxisSizingMode string   `json:"primaryAxisSizingMode,omitempty"`
	CounterAxisSizingMode string   `json:"counterAxisSizingMode,omitempty"`
	PrimaryAxisAlignItems string   `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems string   `json:"counterAxisAlignItems,omitempty"`
	PaddingLeft           *float64 `json:"paddingLeft,omitempty"`
	PaddingRight          *float64 `json:"paddingRight,omitempty"`
	PaddingTop            *float64 `json:"paddingTop,omitempty"`
	PaddingBottom         *float64 `json:"paddingBottom,omitempty"`
	ItemSpacing           *float64 `json:"itemSpacing,omitempty"`

	LayoutAlign string   `json:"layoutAlign,omitempty"`
	LayoutGrow  *float64 `json:"layoutGrow,omitempty"`

	Opacity      *float64 `json:"opacity,omitempty"`
	ClipsContent *bool    `json:"clipsContent,omitempty"`
	BlendMode    string   `json:"blendMode,omitempty"`

	Characters string     `json:"characters,omitempty"`
	Style      *TypeStyle `json:"style,omitempty"`
}

type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Color components are in [0, 1].
type Color struct {
	R float64  `json:"r"`
	G float64  `json:"g"`
	B float64  `json:"b"`
	A *float64 `json:"a,omitempty"`
}

type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ColorStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// Paint is a single fill or stroke layer.
type Paint struct {
	Type                    string      `json:"type"`
	Visible                 *bool       `json:"visible,omitempty"`
	Opacity                 *float64    `json:"opacity,omitempty"`
	Color                   *Color      `json:"color,omitempty"`
	GradientHandlePositions []Vector    `json:"gradientHandlePositions,omitempty"`
	GradientStops           []ColorStop `json:"gradientStops,omitempty"`
	ScaleMode               string      `json:"scaleMode,omitempty"`
	ImageRef                string      `json:"imageRef,omitempty"`
}

type Effect struct {
	Type      string   `json:"type"`
	Visible   *bool    `json:"visible,omitempty"`
	Radius    *float64 `json:"radius,omitempty"`
	Color     *Color   `json:"color,omitempty"`
	Offset    *Vector  `json:"offset,omitempty"`
	Spread    *float64 `json:"spread,omitempty"`
	BlendMode string   `json:"blendMode,omitempty"`
}

type TypeStyle struct {
	FontFamily          string   `json:"fontFamily,omitempty"`
	FontPostScriptName  string   `json:"fontPostScriptName,omitempty"`
	FontWeight          *float64 `json:"fontWeight,omitempty"`
	FontSize            *float64 `json:"fontSize,omitempty"`
	LetterSpacing       *float64 `json:"letterSpacing,omitempty"`
	LineHeightPx        *float64 `json:"lineHeightPx,omitempty"`
	LineHeightPercent   *float64 `json:"lineHeightPercent,omitempty"`
	LineHeightUnit      string   `json:"lineHeightUnit,omitempty"`
	TextAlignHorizontal string   `json:"textAlignHorizontal,omitempty"`
	TextAlignVertical   string   `json:"textAlignVertical,omitempty"`
	TextCase            string   `json:"textCase,omitempty"`
	TextDecoration      string   `json:"textDecoration,omitempty"`
}

// ImagesResponse is the response of GET /v1/images/:key.
type ImagesResponse struct {
	Err    *string           `json:"err,omitempty"`
	Images map[string]string `json:"images,omitempty"`
}
