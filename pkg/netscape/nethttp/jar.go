package nethttp

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/bk-rs/netscape-cookie/pkg/netscape"
	"golang.org/x/net/publicsuffix"
)

// NewJar returns a cookie jar using the public suffix list, seeded with
// cookies.
func NewJar(cookies []netscape.Cookie) (*cookiejar.Jar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("error: cannot create cookie jar: %w", err)
	}
	LoadJar(jar, cookies)
	return jar, nil
}

// LoadJar stores each record in jar under the URL it was issued for.
//
// Records with IncludeSubdomains=false become host-only cookies, since a jar
// only treats a cookie as host-only when its Domain attribute is empty.
// The jar drops records whose expiry has already passed.
func LoadJar(jar http.CookieJar, cookies []netscape.Cookie) {
	for _, c := range cookies {
		hc := ToHTTPCookie(c)
		if !c.IncludeSubdomains {
			hc.Domain = ""
		}
		jar.SetCookies(originURL(c), []*http.Cookie{hc})
	}
}

// originURL is the URL a record applies to.
func originURL(c netscape.Cookie) *url.URL {
	scheme := "http"
	if c.Secure {
		scheme = "https"
	}
	path := c.Path
	if !strings.HasPrefix(path, "/") {
		path = "/"
	}
	return &url.URL{
		Scheme: scheme,
		Host:   strings.TrimPrefix(c.Domain, "."),
		Path:   path,
	}
}
