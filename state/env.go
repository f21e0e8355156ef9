// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"figc/config"
	"figc/figma"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Rpt *config.Report
	Log *zap.Logger

	// used by convert subcommand
	Overwrite bool
	InputPath string
	FileKey   string

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

// DesignFileKey returns file key requested on the command line, falling back
// to configured one. URLs are accepted in both places.
func (e *LocalEnv) DesignFileKey() string {
	if len(e.FileKey) > 0 {
		return figma.ExtractFileKey(e.FileKey)
	}
	if e.Cfg == nil {
		return ""
	}
	return figma.ExtractFileKey(e.Cfg.Figma.FileKey)
}

// FigmaClient creates API client according to the current configuration.
func (e *LocalEnv) FigmaClient() *figma.Client {
	options := []func(*figma.Client){}
	if e.Log != nil {
		options = append(options, figma.WithLogger(e.Log))
	}
	if e.Cfg == nil {
		return figma.NewClient("", options...)
	}
	options = append(options,
		figma.WithBaseURL(e.Cfg.Figma.BaseURL),
		figma.WithTimeout(e.Cfg.Figma.Timeout),
	)
	return figma.NewClient(string(e.Cfg.Figma.APIKey), options...)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
