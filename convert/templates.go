package convert

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"figc/config"
	"figc/figma"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context      string
	FileKey      string
	FileName     string
	FrameName    string
	LastModified string
	Version      string
}

func buildValues(f *figma.File, frame *figma.Node, fileKey string) Values {
	v := Values{FileKey: fileKey}
	if f != nil {
		v.FileName = strings.TrimSpace(f.Name)
		v.LastModified = f.LastModified
		v.Version = f.Version
	}
	if frame != nil {
		v.FrameName = strings.TrimSpace(frame.Name)
	}
	return v
}

func expandTemplate(values Values, name config.TemplateFieldName, field string) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values.Context = string(name)

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
