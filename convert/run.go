package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"figc/figma"
	"figc/state"
)

var (
	ErrNoAPIKey  = errors.New("figma API key is not configured, set FIGMA_API_KEY or figma.api_key")
	ErrNoFileKey = errors.New("figma file key is not configured, set FIGMA_FILE_KEY, figma.file_key or use --file")
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	dst := cmd.Args().Get(0)
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	env.Overwrite = cmd.Bool("overwrite")
	env.InputPath = cmd.String("input")
	env.FileKey = cmd.String("file")

	log.Info("Processing starting", zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, env, dst, log)
}

// process handles the core conversion logic independently of CLI framework.
func process(ctx context.Context, env *state.LocalEnv, dst string, log *zap.Logger) error {
	// configuration problems are reported before anything else is done
	extra, err := LoadStylesheet(env.Cfg.Document.StylesheetPath, log)
	if err != nil {
		return err
	}
	fileKey := env.DesignFileKey()
	if env.InputPath == "" {
		if len(env.Cfg.Figma.APIKey) == 0 {
			return ErrNoAPIKey
		}
		if fileKey == "" {
			return ErrNoFileKey
		}
	}

	data, err := loadDesign(ctx, env, fileKey, log)
	if err != nil {
		return err
	}
	if env.Rpt != nil {
		env.Rpt.StoreData("design.json", data)
	}

	f, err := figma.ParseFile(data)
	if err != nil {
		return err
	}
	log.Info("Design retrieved", zap.String("name", f.Name), zap.String("last_modified", f.LastModified))

	doc, err := Convert(f, fileKey, &env.Cfg.Document, extra, log)
	if err != nil {
		return fmt.Errorf("unable to convert design: %w", err)
	}
	log.Debug("Document generated", zap.Int("rules", doc.Rules), zap.Strings("fonts", doc.Fonts))

	if env.Rpt != nil {
		env.Rpt.StoreData("output.html", []byte(doc.HTML))
	}

	outputName, err := buildOutputPath(doc.Values, dst, &env.Cfg.Document, log)
	if err != nil {
		return fmt.Errorf("unable to build output path: %w", err)
	}
	if err := writeDocument(outputName, []byte(doc.HTML), env.Overwrite, log); err != nil {
		return err
	}

	log.Info("Document written",
		zap.String("to", outputName),
		zap.String("title", doc.Title),
		zap.String("size", fmt.Sprintf("%.2f KB", float64(len(doc.HTML))/1024)))
	return nil
}

// loadDesign returns raw design file either from local file or from the API.
func loadDesign(ctx context.Context, env *state.LocalEnv, fileKey string, log *zap.Logger) ([]byte, error) {
	if env.InputPath != "" {
		log.Info("Reading design from file", zap.String("file", env.InputPath))
		data, err := os.ReadFile(env.InputPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read design file: %w", err)
		}
		return data, nil
	}

	log.Info("Retrieving design", zap.String("file_key", fileKey))
	data, err := env.FigmaClient().GetFileData(ctx, fileKey)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve design: %w", err)
	}
	return data, nil
}

// writeDocument saves produced document, nothing is written unless document
// is complete.
func writeDocument(outputName string, data []byte, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(outputName); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, data, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}
