package cmd

import (
	"fmt"
	"runtime"

	"github.com/bk-rs/netscape-cookie/cmd/common"
	"github.com/urfave/cli"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

func newApp(bArgs BuildArgs) *cli.App {
	app := cli.NewApp()
	app.Name = "cookiestxt"
	app.HelpName = "cookiestxt"
	app.Usage = "Netscape cookies.txt toolkit."
	app.Version = fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType)
	app.UsageText = "cookiestxt <command> [arguments...]"
	app.Description = DESCRIPTION
	app.CustomAppHelpTemplate = HELP_TEMPL
	app.OnUsageError = common.UsageErrorCallback
	app.Flags = globalFlags
	app.Before = setupLogger
	app.After = closeLogger
	app.HideHelp = true
	app.HideVersion = true
	app.Commands = []cli.Command{
		{
			Name:                   "parse",
			Aliases:                []string{"p"},
			Usage:                  "print the records of a cookies.txt file",
			UsageText:              "[--format table|json|yaml] FILE",
			Description:            ParseDescription,
			CustomHelpTemplate:     CMD_HELP_TEMPL,
			OnUsageError:           common.UsageErrorCallback,
			Action:                 parse,
			Flags:                  parseFlags,
			UseShortOptionHandling: true,
		},
		{
			Name:               "check",
			Aliases:            []string{"c"},
			Usage:              "validate a cookies.txt file",
			UsageText:          "FILE",
			Description:        CheckDescription,
			CustomHelpTemplate: CMD_HELP_TEMPL,
			OnUsageError:       common.UsageErrorCallback,
			Action:             check,
		},
		{
			Name:               "header",
			Usage:              "print the Cookie header for a URL or domain",
			UsageText:          "(--url URL | --domain DOMAIN) [--all] FILE",
			Description:        HeaderDescription,
			CustomHelpTemplate: CMD_HELP_TEMPL,
			OnUsageError:       common.UsageErrorCallback,
			Action:             header,
			Flags:              headerFlags,
		},
		{
			Name:               "import",
			Aliases:            []string{"i"},
			Usage:              "read cookies from a cookies.txt, Firefox or Chrome store",
			UsageText:          "[--domain DOMAIN] [--skip-expired] [--format table|json|yaml] (--browser NAME | FILE)",
			Description:        ImportDescription,
			CustomHelpTemplate: CMD_HELP_TEMPL,
			OnUsageError:       common.UsageErrorCallback,
			Action:             importStore,
			Flags:              importFlags,
		},
		{
			Name:               "watch",
			Aliases:            []string{"w"},
			Usage:              "follow a cookie jar as it is rewritten",
			UsageText:          "[--debounce DURATION] FILE",
			Description:        WatchDescription,
			CustomHelpTemplate: CMD_HELP_TEMPL,
			OnUsageError:       common.UsageErrorCallback,
			Action:             watchJar,
			Flags:              watchFlags,
		},
		{
			Name:    "help",
			Aliases: []string{"h"},
			Usage:   "prints the help message",
			Action:  common.Help,
		},
		{
			Name:               "version",
			Aliases:            []string{"v"},
			Usage:              "prints installed version of cookiestxt",
			UsageText:          " ",
			CustomHelpTemplate: CMD_HELP_TEMPL,
			Action:             common.GetVersion,
		},
	}
	common.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app
}

func Execute(args []string, bArgs BuildArgs) error {
	return newApp(bArgs).Run(args)
}
