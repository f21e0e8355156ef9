package convert

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"figc/config"
	"figc/convert/html"
	"figc/css"
	"figc/design"
	"figc/figma"
)

// Document is a converted design ready to be saved or sent.
type Document struct {
	Values Values
	Title  string
	HTML   string
	Rules  int
	Fonts  []string
}

// LoadStylesheet reads and parses user stylesheet. Empty path is not an
// error, nil is returned.
func LoadStylesheet(path string, log *zap.Logger) (*css.Stylesheet, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read stylesheet from %q: %w", path, err)
	}
	return css.NewParser(log).Parse(data, path), nil
}

// Convert selects frame to convert from retrieved file and produces complete
// HTML document for it.
func Convert(f *figma.File, fileKey string, cfg *config.DocumentConfig, extra *css.Stylesheet, log *zap.Logger) (*Document, error) {
	frame, err := figma.SelectFrame(f)
	if err != nil {
		return nil, err
	}

	root := design.Import(frame)
	log.Debug("Frame selected",
		zap.String("name", root.Name),
		zap.Stringer("layout", root.Layout.Mode),
		zap.Int("fills", len(root.Fills)),
		zap.Int("nodes", root.Count()))
	if ce := log.Check(zap.DebugLevel, "Frame outline"); ce != nil {
		ce.Write(zap.String("tree", design.Outline(root)))
	}

	values := buildValues(f, frame, fileKey)

	opts := html.Options{
		Title:       expandTitle(values, cfg, log),
		Fonts:       cfg.Fonts.Enable,
		FontsURL:    cfg.Fonts.URL,
		FontWeights: cfg.Fonts.Weights,
		Extra:       extra,
	}
	if opts.FontsURL == "" {
		opts.FontsURL = html.DefaultFontsURL
	}
	if len(opts.FontWeights) == 0 {
		opts.FontWeights = html.DefaultFontWeights
	}

	res, err := html.Generate(root, opts)
	if err != nil {
		return nil, fmt.Errorf("unable to generate document: %w", err)
	}
	return &Document{
		Values: values,
		Title:  opts.Title,
		HTML:   res.HTML,
		Rules:  res.Rules,
		Fonts:  res.Fonts,
	}, nil
}

func expandTitle(values Values, cfg *config.DocumentConfig, log *zap.Logger) string {
	if cfg.TitleTemplate == "" {
		return html.DefaultTitle
	}
	title, err := expandTemplate(values, config.TitleTemplateFieldName, cfg.TitleTemplate)
	if err != nil {
		log.Warn("Unable to prepare document title, using default", zap.Error(err))
		return html.DefaultTitle
	}
	if title = strings.TrimSpace(title); title == "" {
		return html.DefaultTitle
	}
	return title
}
