// Package nethttp converts parsed cookies.txt records into net/http cookies
// and seeds cookie jars with them.
package nethttp

import (
	"net/http"
	"time"

	"github.com/bk-rs/netscape-cookie/pkg/netscape"
)

// Setter is the set of cookie attributes a record can be copied into.
// Implement it to target a cookie model other than *http.Cookie.
type Setter interface {
	SetName(name string)
	SetValue(value string)
	SetDomain(domain string)
	SetPath(path string)
	SetSecure(secure bool)
	SetHttpOnly(httpOnly bool)
	// SetExpires receives the zero time for a session cookie.
	SetExpires(t time.Time)
}

// Apply copies c into dst. IncludeSubdomains has no counterpart in the
// target model and is not copied.
func Apply(c netscape.Cookie, dst Setter) {
	dst.SetName(c.Name)
	dst.SetValue(c.Value)
	dst.SetDomain(c.Domain)
	dst.SetPath(c.Path)
	dst.SetSecure(c.Secure)
	dst.SetHttpOnly(c.HttpOnly)
	t, _ := c.Expires.Time()
	dst.SetExpires(t)
}

// ToHTTPCookie maps a record onto an *http.Cookie. Session records leave
// Expires zero.
func ToHTTPCookie(c netscape.Cookie) *http.Cookie {
	hc := &http.Cookie{}
	Apply(c, (*httpCookie)(hc))
	return hc
}

// ToHTTPCookies maps every record, keeping order.
func ToHTTPCookies(cookies []netscape.Cookie) []*http.Cookie {
	out := make([]*http.Cookie, len(cookies))
	for i, c := range cookies {
		out[i] = ToHTTPCookie(c)
	}
	return out
}

// httpCookie adapts *http.Cookie to Setter.
type httpCookie http.Cookie

func (h *httpCookie) SetName(name string) { h.Name = name }
func (h *httpCookie) SetValue(value string) { h.Value = value }
func (h *httpCookie) SetDomain(domain string) { h.Domain = domain }
func (h *httpCookie) SetPath(path string) { h.Path = path }
func (h *httpCookie) SetSecure(secure bool) { h.Secure = secure }
func (h *httpCookie) SetHttpOnly(httpOnly bool) { h.HttpOnly = httpOnly }
func (h *httpCookie) SetExpires(t time.Time) { h.Expires = t }

var _ Setter = (*httpCookie)(nil)
