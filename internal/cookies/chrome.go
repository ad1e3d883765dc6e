package cookies

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/bk-rs/netscape-cookie/pkg/netscape"
	_ "modernc.org/sqlite"
)

// chromeEpochOffsetSeconds is the number of seconds between the Windows NT epoch
// (1601-01-01 00:00:00 UTC) and the Unix epoch (1970-01-01 00:00:00 UTC).
const chromeEpochOffsetSeconds int64 = 11_644_473_600

// chromeToUnix converts a Chrome timestamp (microseconds since 1601-01-01)
// to a Unix timestamp (seconds since 1970-01-01). Zero stays zero: Chrome
// stores session cookies with expires_utc = 0.
func chromeToUnix(chromeUSec int64) int64 {
	if chromeUSec == 0 {
		return 0
	}
	return (chromeUSec / 1_000_000) - chromeEpochOffsetSeconds
}

// ParseChrome reads cookies from a Chrome Cookies SQLite file.
// Only unencrypted cookies (where value != '') are returned.
// The dbPath should be a path to a copied (not in-use) SQLite database.
func ParseChrome(dbPath string) ([]netscape.Cookie, error) {
	dsn := fmt.Sprintf("file:%s?immutable=1", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("error: cannot open Chrome cookie database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
        SELECT name, value, host_key, path, expires_utc, is_secure, is_httponly
        FROM cookies
        WHERE value != ''
        ORDER BY host_key ASC, path DESC, name ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("error: failed to query Chrome cookies: %w", err)
	}
	defer rows.Close()

	var cookies []netscape.Cookie
	for rows.Next() {
		var (
			name, value, hostKey, path string
			expiresUTC                 int64
			isSecure, isHttpOnly       int
		)
		if err := rows.Scan(&name, &value, &hostKey, &path, &expiresUTC, &isSecure, &isHttpOnly); err != nil {
			return nil, fmt.Errorf("error: failed to scan Chrome cookie row: %w", err)
		}
		cookies = append(cookies, netscape.Cookie{
			HttpOnly:          isHttpOnly != 0,
			Domain:            hostKey,
			IncludeSubdomains: strings.HasPrefix(hostKey, "."),
			Path:              path,
			Secure:            isSecure != 0,
			Expires:           expiryFromUnix(chromeToUnix(expiresUTC)),
			Name:              name,
			Value:             value,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error: failed to iterate Chrome cookie rows: %w", err)
	}

	return cookies, nil
}
