package convert

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"figc/config"
)

const (
	outputExt   = ".html"
	defaultName = "figma-design"
)

// OutputName returns output file name without extension, built either from
// user-defined template or from design file name. It may contain
// subdirectories when template produced them.
func OutputName(values Values, cfg *config.DocumentConfig, log *zap.Logger) string {
	if cfg.OutputNameTemplate != "" {
		expanded, err := expandTemplate(values, config.OutputNameTemplateFieldName, cfg.OutputNameTemplate)
		if err != nil {
			log.Warn("Unable to prepare output filename", zap.Error(err))
		} else if segments := splitAndCleanPath(filepath.FromSlash(expanded), cfg); len(segments) > 0 {
			return filepath.Join(segments...)
		}
		// fallback to default name if template expansion failed
	}
	return defaultFileName(values, cfg)
}

// DownloadName returns file name suitable for Content-Disposition header. It
// is built from the converted frame name, design file name is used when frame
// name has nothing usable.
func DownloadName(values Values) string {
	name := slug.Make(values.FrameName)
	if name == "" {
		name = slug.Make(values.FileName)
	}
	if name == "" {
		name = defaultName
	}
	return name + outputExt
}

func defaultFileName(values Values, cfg *config.DocumentConfig) string {
	name := values.FileName
	if name == "" {
		name = values.FileKey
	}
	if name != "" {
		name = cleanPathSegment(name, cfg)
	}
	if name == "" || name == "_bad_file_name_" {
		return defaultName
	}
	return name
}

// buildOutputPath returns full path for the produced document. Destination
// could be empty (current directory and default name), existing directory
// (default name inside) or a file path used as is.
func buildOutputPath(values Values, dst string, cfg *config.DocumentConfig, log *zap.Logger) (string, error) {
	if dst == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		dst = wd + string(os.PathSeparator)
	}
	if fi, err := os.Stat(dst); (err == nil && fi.IsDir()) || strings.HasSuffix(dst, string(os.PathSeparator)) {
		dst = filepath.Join(dst, OutputName(values, cfg, log)+outputExt)
	}
	return filepath.Abs(dst)
}

func splitAndCleanPath(path string, cfg *config.DocumentConfig) []string {
	path = strings.TrimSuffix(path, string(os.PathSeparator))
	segments := make([]string, 0, 8)

	for head, tail := filepath.Split(path); tail != ""; head, tail = filepath.Split(head) {
		if seg := cleanPathSegment(tail, cfg); seg != "" && seg != "_bad_file_name_" {
			segments = slices.Insert(segments, 0, seg)
		}
		head = strings.TrimSuffix(head, string(os.PathSeparator))
		if head == "" {
			break
		}
	}
	return segments
}

func cleanPathSegment(segment string, cfg *config.DocumentConfig) string {
	if cfg.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(strings.TrimSpace(segment))
}
