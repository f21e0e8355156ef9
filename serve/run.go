package serve

import (
	"context"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"figc/convert"
	"figc/state"
)

// Run starts web front end and blocks until interrupted.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log

	if listen := cmd.String("listen"); listen != "" {
		env.Cfg.Server.Listen = listen
	}

	extra, err := convert.LoadStylesheet(env.Cfg.Document.StylesheetPath, log)
	if err != nil {
		return err
	}

	log.Info("Web form starting", zap.String("listen", env.Cfg.Server.Listen))
	defer func() {
		log.Info("Web form stopped", zap.Duration("uptime", env.Uptime()))
	}()

	return New(env.Cfg, extra, log).Run(ctx)
}
