package netscape

import "time"

// Cookie is one record of a cookies.txt file. Fields appear in file order.
type Cookie struct {
	// HttpOnly is set when the line carried the "#HttpOnly_" marker.
	HttpOnly bool
	// Domain is the cookie domain, including any leading dot.
	Domain string
	// IncludeSubdomains is the second field of the line.
	IncludeSubdomains bool
	// Path is the cookie path scope.
	Path string
	// Secure indicates the cookie should only be sent over HTTPS.
	Secure bool
	// Expires is either a session lifetime or an absolute instant.
	Expires Expiry
	// Name is the cookie name.
	Name string
	// Value is the cookie value. It may be empty.
	Value string
}

// Expiry is the lifetime of a cookie: either Session or At an instant.
// The zero value is Session.
type Expiry struct {
	at  time.Time
	set bool
}

// Session returns the expiry of a cookie cleared at the end of the
// browsing session.
func Session() Expiry {
	return Expiry{}
}

// At returns an absolute expiry. The instant is kept in UTC at second
// precision.
func At(t time.Time) Expiry {
	return Expiry{at: t.UTC().Truncate(time.Second), set: true}
}

// AtUnix returns an absolute expiry from Unix seconds.
func AtUnix(sec int64) Expiry {
	return At(time.Unix(sec, 0))
}

// IsSession reports whether e is a session expiry.
func (e Expiry) IsSession() bool {
	return !e.set
}

// Time returns the absolute expiry instant and true, or the zero time and
// false for a session expiry.
func (e Expiry) Time() (time.Time, bool) {
	return e.at, e.set
}

// Unix returns the expiry as Unix seconds, 0 for a session expiry.
func (e Expiry) Unix() int64 {
	if !e.set {
		return 0
	}
	return e.at.Unix()
}

// Expired reports whether an absolute expiry lies before now.
// Session expiries never expire.
func (e Expiry) Expired(now time.Time) bool {
	return e.set && e.at.Before(now)
}

func (e Expiry) String() string {
	if !e.set {
		return "Session"
	}
	return e.at.Format(time.RFC3339)
}
