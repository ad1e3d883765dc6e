package cmd

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/bk-rs/netscape-cookie/cmd/common"
	"github.com/bk-rs/netscape-cookie/internal/cookies"
	"github.com/bk-rs/netscape-cookie/pkg/netscape"
	"github.com/bk-rs/netscape-cookie/pkg/netscape/nethttp"
	"github.com/urfave/cli"
)

var headerFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "url, u",
		Usage: "select cookies a client would send to this URL",
	},
	cli.StringFlag{
		Name:  "domain",
		Usage: "select cookies matching this domain",
	},
	cli.BoolFlag{
		Name:  "all, a",
		Usage: "with --domain, keep expired cookies (default: false)",
	},
}

func header(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	path, err := common.RequireArg(ctx, "FILE")
	if err != nil {
		return err
	}
	rawURL, domain := ctx.String("url"), ctx.String("domain")
	if (rawURL == "") == (domain == "") {
		return errors.New("header: exactly one of --url or --domain is required")
	}

	parsed, err := netscape.ParseFile(appFs, path)
	if err != nil {
		return err
	}

	var value string
	if rawURL != "" {
		value, err = headerForURL(parsed, rawURL)
		if err != nil {
			return err
		}
	} else {
		selected := cookies.Filter{Domain: domain, SkipExpired: !ctx.Bool("all")}.Apply(parsed)
		value = cookies.BuildCookieHeader(selected)
	}
	getLogger(ctx).Debug("built Cookie header from %d records in %s", len(parsed), path)
	fmt.Fprintln(ctx.App.Writer, value)
	return nil
}

// headerForURL loads the records into a cookie jar and renders the
// cookies the jar would send to rawURL.
func headerForURL(parsed []netscape.Cookie, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("header: invalid url: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("header: url %q has no host", rawURL)
	}
	jar, err := nethttp.NewJar(parsed)
	if err != nil {
		return "", err
	}
	var selected []netscape.Cookie
	for _, c := range jar.Cookies(u) {
		selected = append(selected, netscape.Cookie{Name: c.Name, Value: c.Value})
	}
	return cookies.BuildCookieHeader(selected), nil
}
