package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/bk-rs/netscape-cookie/common"
	"github.com/bk-rs/netscape-cookie/pkg/netscape"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"
)

var formatFlag = cli.StringFlag{
	Name:   "format, f",
	Usage:  "output format: table, json or yaml",
	Value:  "table",
	EnvVar: common.FormatEnv,
}

// record is the printable form of a netscape.Cookie.
type record struct {
	HttpOnly          bool   `json:"http_only" yaml:"http_only"`
	Domain            string `json:"domain" yaml:"domain"`
	IncludeSubdomains bool   `json:"include_subdomains" yaml:"include_subdomains"`
	Path              string `json:"path" yaml:"path"`
	Secure            bool   `json:"secure" yaml:"secure"`
	Expires           int64  `json:"expires" yaml:"expires"`
	ExpiresAt         string `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
	Name              string `json:"name" yaml:"name"`
	Value             string `json:"value" yaml:"value"`
}

func toRecords(cookies []netscape.Cookie) []record {
	out := make([]record, len(cookies))
	for i, c := range cookies {
		r := record{
			HttpOnly:          c.HttpOnly,
			Domain:            c.Domain,
			IncludeSubdomains: c.IncludeSubdomains,
			Path:              c.Path,
			Secure:            c.Secure,
			Expires:           c.Expires.Unix(),
			Name:              c.Name,
			Value:             c.Value,
		}
		if !c.Expires.IsSession() {
			r.ExpiresAt = c.Expires.String()
		}
		out[i] = r
	}
	return out
}

// writeCookies renders cookies to w in the named format.
func writeCookies(w io.Writer, format string, cookies []netscape.Cookie) error {
	records := toRecords(cookies)
	switch strings.ToLower(format) {
	case "", "table":
		return writeTable(w, records)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeTable(w io.Writer, records []record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DOMAIN\tSUBDOMAINS\tPATH\tSECURE\tHTTPONLY\tEXPIRES\tNAME\tVALUE")
	for _, r := range records {
		expires := "session"
		if r.ExpiresAt != "" {
			expires = r.ExpiresAt
		}
		fmt.Fprintf(tw, "%s\t%t\t%s\t%t\t%t\t%s\t%s\t%s\n",
			r.Domain, r.IncludeSubdomains, r.Path, r.Secure, r.HttpOnly, expires, r.Name, r.Value)
	}
	return tw.Flush()
}
