package cmd

const DESCRIPTION = `
cookiestxt reads Netscape/Mozilla cookies.txt jars, the format written by
curl, wget and most browser export extensions, and turns them into records,
Cookie headers or cookie-jar contents.
`

const (
	ParseDescription = `The parse command reads a cookies.txt file and prints
every record in file order. Parsing is strict: the first malformed
line aborts with an error naming the line and the field.

Example:
        cookiestxt parse cookies.txt
        cookiestxt parse --format json cookies.txt

`
	CheckDescription = `The check command validates a cookies.txt file and
reports how many records it holds, or the first error found.

Example:
        cookiestxt check cookies.txt

`
	HeaderDescription = `The header command prints the value of the Cookie
request header a client would send. With --url the cookies are loaded
into a cookie jar and selected by domain, path, scheme and expiry;
with --domain they are matched by domain only.

Example:
        cookiestxt header --url https://github.com/ cookies.txt
        cookiestxt header --domain example.com cookies.txt

`
	ImportDescription = `The import command reads cookies from a cookies.txt file,
a Firefox cookies.sqlite or a Chrome Cookies database and prints them
as records. Encrypted Chrome cookies are skipped. With --browser the
default profile of Firefox, LibreWolf, Chrome, Chromium, Edge or Brave
is located automatically; "auto" takes the first one found.

Example:
        cookiestxt import --domain example.com ~/.mozilla/firefox/x.default/cookies.sqlite
        cookiestxt import --browser auto --domain example.com

`
	WatchDescription = `The watch command follows a cookie jar that another
program keeps rewriting and prints a line each time it changes.

Example:
        cookiestxt watch /tmp/curl_cookies.txt

`
)

const HELP_TEMPL = `Usage: {{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [command options]{{end}} {{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[arguments...]{{end}}{{end}}
{{.Description}}{{if .VisibleCommands}}
Commands:{{range .VisibleCategories}}{{if .Name}}

{{.Name}}:{{range .VisibleCommands}}
  {{join .Names ", "}}{{"\t"}}{{.Usage}}{{end}}{{else}}{{range .VisibleCommands}}
{{"\t"}}{{index .Names 0}}{{"\t:\t"}}{{.Usage}}{{end}}{{end}}{{end}}{{end}}{{if .VisibleFlags}}

Global Flags:{{range .VisibleFlags}}
  {{.}}{{end}}{{end}}

Use "{{.HelpName}} help <command>" for more information about any command.

`

const CMD_HELP_TEMPL = `{{if .Description}}{{.Description}}{{else}}{{.HelpName}} - {{.Usage}}

{{end}}Usage:
        {{.HelpName}} {{if .UsageText}}{{.UsageText}}{{else}}[arguments...]{{end}}{{if .VisibleFlags}}

Supported Flags:{{range .VisibleFlags}}
  {{.}}{{end}}{{end}}

`
