package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"figc/config"
	"figc/figma"
)

func testValues() Values {
	return Values{
		FileKey:      "AbC123",
		FileName:     "Landing Page",
		FrameName:    "Hero Card",
		LastModified: "2026-09-30T12:04:11Z",
		Version:      "4287114561",
	}
}

func TestBuildValues(t *testing.T) {
	f := &figma.File{Name: "  Landing Page ", LastModified: "2026-09-30T12:04:11Z", Version: "42"}
	frame := &figma.Node{Name: "Hero Card"}

	v := buildValues(f, frame, "AbC123")
	assert.Equal(t, Values{
		FileKey:      "AbC123",
		FileName:     "Landing Page",
		FrameName:    "Hero Card",
		LastModified: "2026-09-30T12:04:11Z",
		Version:      "42",
	}, v)

	assert.Equal(t, Values{FileKey: "k"}, buildValues(nil, nil, "k"))
}

func TestExpandTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"plain text", "simple-text", "simple-text"},
		{"file and frame", "{{ .FileName }} / {{ .FrameName }}", "Landing Page / Hero Card"},
		{"context", "{{ .Context }}", string(config.TitleTemplateFieldName)},
		{"sprig functions", `{{ .FileName | lower | replace " " "_" }}`, "landing_page"},
		{"date slice", `{{ .FileKey }}-{{ substr 0 10 .LastModified }}`, "AbC123-2026-09-30"},
		{"conditional", `{{ if .Version }}v{{ .Version }}{{ end }}`, "v4287114561"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandTemplate(testValues(), config.TitleTemplateFieldName, tt.template)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandTemplate_Errors(t *testing.T) {
	_, err := expandTemplate(testValues(), config.OutputNameTemplateFieldName, "{{ .FileName ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), string(config.OutputNameTemplateFieldName))

	_, err = expandTemplate(testValues(), config.OutputNameTemplateFieldName, "{{ .NoSuchField }}")
	assert.Error(t, err)
}
