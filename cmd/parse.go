package cmd

import (
	"fmt"

	"github.com/bk-rs/netscape-cookie/cmd/common"
	"github.com/bk-rs/netscape-cookie/pkg/netscape"
	"github.com/spf13/afero"
	"github.com/urfave/cli"
)

// appFs is the filesystem commands read from.
var appFs = afero.NewOsFs()

var parseFlags = []cli.Flag{formatFlag}

func parse(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	path, err := common.RequireArg(ctx, "FILE")
	if err != nil {
		return err
	}
	cookies, err := netscape.ParseFile(appFs, path)
	if err != nil {
		return err
	}
	getLogger(ctx).Debug("parsed %d cookies from %s", len(cookies), path)
	return writeCookies(ctx.App.Writer, ctx.String("format"), cookies)
}

func check(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	path, err := common.RequireArg(ctx, "FILE")
	if err != nil {
		return err
	}
	cookies, err := netscape.ParseFile(appFs, path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	session := 0
	for _, c := range cookies {
		if c.Expires.IsSession() {
			session++
		}
	}
	fmt.Fprintf(ctx.App.Writer, "%s: ok, %d cookies (%d session)\n", path, len(cookies), session)
	return nil
}
