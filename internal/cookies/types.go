package cookies

import (
	"strings"
	"time"

	"github.com/bk-rs/netscape-cookie/pkg/netscape"
)

// CookieFormat identifies the format of a cookie store.
type CookieFormat int

const (
	// FormatUnknown means the cookie store format could not be detected.
	FormatUnknown CookieFormat = 0
	// FormatFirefox means the cookie store uses the Firefox moz_cookies SQLite schema.
	FormatFirefox CookieFormat = 1
	// FormatChrome means the cookie store uses the Chrome cookies SQLite schema.
	// Only unencrypted cookies (value != '') are usable.
	FormatChrome CookieFormat = 2
	// FormatNetscape means the cookie store uses the Netscape tab-separated text format.
	FormatNetscape CookieFormat = 3
)

func (f CookieFormat) String() string {
	switch f {
	case FormatFirefox:
		return "Firefox"
	case FormatChrome:
		return "Chrome"
	case FormatNetscape:
		return "Netscape"
	default:
		return "Unknown"
	}
}

// CookieSource describes where cookies were imported from.
type CookieSource struct {
	// Path is the filesystem path to the cookie store file.
	Path string
	// Format is the detected cookie store format.
	Format CookieFormat
	// Browser is the display name of the store ("Firefox", "Chrome", "Netscape").
	Browser string
}

// Filter selects cookies for a request. The zero Filter keeps everything.
type Filter struct {
	// Domain restricts cookies to those matching this host. Empty keeps all.
	Domain string
	// SkipExpired drops cookies whose absolute expiry has passed.
	SkipExpired bool
	// Now overrides the clock used by SkipExpired.
	Now func() time.Time
}

// Apply returns the cookies passing f, in their original order.
func (f Filter) Apply(cookies []netscape.Cookie) []netscape.Cookie {
	now := time.Now()
	if f.Now != nil {
		now = f.Now()
	}
	dotDomain := "." + f.Domain

	out := make([]netscape.Cookie, 0, len(cookies))
	for _, c := range cookies {
		if f.Domain != "" && !matchesDomain(c.Domain, f.Domain, dotDomain) {
			continue
		}
		if f.SkipExpired && c.Expires.Expired(now) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// matchesDomain checks if a cookie domain matches the target domain.
// Matches: exact match, dot-prefix, or subdomain wildcard.
func matchesDomain(cookieDomain, domain, dotDomain string) bool {
	if cookieDomain == domain || cookieDomain == dotDomain {
		return true
	}
	return strings.HasSuffix(cookieDomain, dotDomain)
}

// BuildCookieHeader builds an HTTP Cookie header value from a slice of cookies.
// Format: "name1=val1; name2=val2"
func BuildCookieHeader(cookies []netscape.Cookie) string {
	if len(cookies) == 0 {
		return ""
	}

	parts := make([]string, len(cookies))
	for i, c := range cookies {
		parts[i] = c.Name + "=" + c.Value
	}
	return strings.Join(parts, "; ")
}

// expiryFromUnix maps a store timestamp onto a record expiry. Non-positive
// timestamps mean a session cookie.
func expiryFromUnix(sec int64) netscape.Expiry {
	if sec <= 0 {
		return netscape.Session()
	}
	return netscape.AtUnix(sec)
}
