package cmd

import (
	"io"
	"log"
	"os"

	"github.com/bk-rs/netscape-cookie/common"
	"github.com/bk-rs/netscape-cookie/pkg/logger"
	"github.com/urfave/cli"
)

const loggerKey = "logger"

var globalFlags = []cli.Flag{
	cli.BoolFlag{
		Name:   "debug, d",
		Usage:  "enable debug logging (cookie values are never logged)",
		EnvVar: common.DebugEnv,
	},
	cli.StringFlag{
		Name:   "log-level",
		Usage:  "minimum log level: debug, info, warning or error",
		Value:  "warning",
		EnvVar: common.LogLevelEnv,
	},
	cli.StringFlag{
		Name:   "log-file",
		Usage:  "also append logs to this file",
		EnvVar: common.LogFileEnv,
	},
}

// setupLogger builds the application logger from the global flags and
// stores it in the app metadata.
func setupLogger(ctx *cli.Context) error {
	level, err := logger.ParseLevel(ctx.GlobalString("log-level"))
	if err != nil {
		return err
	}
	if ctx.GlobalBool("debug") {
		level = logger.LevelDebug
	}

	var l logger.Logger = logger.NewStandardLogger(log.New(errWriter(ctx), "", log.LstdFlags), level)
	if path := ctx.GlobalString("log-file"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return err
		}
		l = logger.NewMultiLogger(l, logger.NewFileLogger(f, level))
	}

	if ctx.App.Metadata == nil {
		ctx.App.Metadata = map[string]interface{}{}
	}
	ctx.App.Metadata[loggerKey] = l
	return nil
}

func errWriter(ctx *cli.Context) io.Writer {
	if ctx.App.ErrWriter != nil {
		return ctx.App.ErrWriter
	}
	return os.Stderr
}

func closeLogger(ctx *cli.Context) error {
	if l, ok := ctx.App.Metadata[loggerKey].(logger.Logger); ok {
		return l.Close()
	}
	return nil
}

// getLogger returns the logger installed by setupLogger, or a no-op logger
// when the app was run without it.
func getLogger(ctx *cli.Context) logger.Logger {
	if l, ok := ctx.App.Metadata[loggerKey].(logger.Logger); ok {
		return l
	}
	return logger.NewNopLogger()
}
