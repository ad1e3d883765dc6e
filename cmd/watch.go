package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bk-rs/netscape-cookie/cmd/common"
	"github.com/bk-rs/netscape-cookie/internal/watch"
	"github.com/bk-rs/netscape-cookie/pkg/netscape"
	"github.com/urfave/cli"
)

var watchFlags = []cli.Flag{
	cli.DurationFlag{
		Name:  "debounce",
		Usage: "quiet period before re-reading the jar",
		Value: watch.DefaultConfig().Debounce,
	},
}

// watchContext is replaced in tests to stop the watcher without a signal.
var watchContext = func() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func watchJar(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	path, err := common.RequireArg(ctx, "FILE")
	if err != nil {
		return err
	}

	runCtx, stop := watchContext()
	defer stop()

	w := watch.New(appFs, path, watch.Config{Debounce: ctx.Duration("debounce")}, getLogger(ctx))
	return w.Run(runCtx, func(jar []netscape.Cookie) {
		session := 0
		for _, c := range jar {
			if c.Expires.IsSession() {
				session++
			}
		}
		fmt.Fprintf(ctx.App.Writer, "%s %s: %d cookies (%d session)\n",
			time.Now().Format(time.RFC3339), path, len(jar), session)
	})
}
