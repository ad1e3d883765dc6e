package cookies

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/bk-rs/netscape-cookie/pkg/netscape"
	_ "modernc.org/sqlite"
)

// ParseFirefox reads cookies from a Firefox cookies.sqlite file.
// The dbPath should be a path to a copied (not in-use) SQLite database.
func ParseFirefox(dbPath string) ([]netscape.Cookie, error) {
	dsn := fmt.Sprintf("file:%s?immutable=1", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("error: cannot open Firefox cookie database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
        SELECT name, value, host, path, expiry, isSecure, isHttpOnly
        FROM moz_cookies
        ORDER BY host ASC, path DESC, name ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("error: failed to query Firefox cookies: %w", err)
	}
	defer rows.Close()

	var cookies []netscape.Cookie
	for rows.Next() {
		var (
			name, value, host, path string
			expiry                  int64
			isSecure, isHttpOnly    int
		)
		if err := rows.Scan(&name, &value, &host, &path, &expiry, &isSecure, &isHttpOnly); err != nil {
			return nil, fmt.Errorf("error: failed to scan Firefox cookie row: %w", err)
		}
		cookies = append(cookies, netscape.Cookie{
			HttpOnly:          isHttpOnly != 0,
			Domain:            host,
			IncludeSubdomains: strings.HasPrefix(host, "."),
			Path:              path,
			Secure:            isSecure != 0,
			Expires:           expiryFromUnix(expiry),
			Name:              name,
			Value:             value,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error: failed to iterate Firefox cookie rows: %w", err)
	}

	return cookies, nil
}
