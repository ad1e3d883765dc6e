package cmd

import (
	"github.com/bk-rs/netscape-cookie/cmd/common"
	"github.com/bk-rs/netscape-cookie/internal/cookies"
	"github.com/bk-rs/netscape-cookie/pkg/netscape"
	"github.com/urfave/cli"
)

var importFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "browser, b",
		Usage: "read the default profile of a browser (firefox, chrome, ...) or \"auto\" instead of FILE",
	},
	cli.StringFlag{
		Name:  "domain",
		Usage: "only import cookies matching this domain",
	},
	cli.BoolFlag{
		Name:  "skip-expired, s",
		Usage: "drop cookies whose expiry has passed (default: false)",
	},
	formatFlag,
}

func importStore(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	l := getLogger(ctx)
	im := cookies.NewImporter(appFs, l)
	filter := cookies.Filter{
		Domain:      ctx.String("domain"),
		SkipExpired: ctx.Bool("skip-expired"),
	}

	var (
		imported []netscape.Cookie
		source   *cookies.CookieSource
		err      error
	)
	if browser := ctx.String("browser"); browser != "" {
		imported, source, err = im.ImportBrowser(browser, filter)
	} else {
		var path string
		if path, err = common.RequireArg(ctx, "FILE"); err != nil {
			return err
		}
		imported, source, err = im.Import(path, filter)
	}
	if err != nil {
		return err
	}
	l.Info("imported %d cookies from %s store %s", len(imported), source.Browser, source.Path)
	return writeCookies(ctx.App.Writer, ctx.String("format"), imported)
}
