package cookies

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"github.com/bk-rs/netscape-cookie/pkg/netscape"
	"github.com/spf13/afero"
	_ "modernc.org/sqlite"
)

// sqliteMagic is the first 16 bytes of any SQLite database file.
var sqliteMagic = []byte("SQLite format 3\x00")

// sniffSize is how much of a text file is inspected for a Netscape record.
const sniffSize = 4096

// DetectFormat determines the cookie store format of the file at the given path.
// It returns FormatFirefox, FormatChrome, or FormatNetscape, or an error if the
// format cannot be determined. SQLite stores must live on the OS filesystem.
func DetectFormat(fs afero.Fs, path string) (CookieFormat, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("error: cookie file not found: %s", path)
	}
	if info.IsDir() {
		return FormatUnknown, fmt.Errorf("error: %s is a directory, expected a cookie file path", path)
	}
	if info.Size() == 0 {
		return FormatUnknown, fmt.Errorf("error: cookie file at %s is empty or corrupted", path)
	}

	f, err := fs.Open(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("error: cannot open cookie file: %w", err)
	}
	defer f.Close()

	buf := make([]byte, sniffSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return FormatUnknown, fmt.Errorf("error: cannot read cookie file: %w", err)
	}
	buf = buf[:n]

	if bytes.HasPrefix(buf, sqliteMagic) {
		return detectSQLiteFormat(path)
	}
	if looksNetscape(buf) {
		return FormatNetscape, nil
	}

	return FormatUnknown, fmt.Errorf("error: unsupported cookie database schema at %s", path)
}

// looksNetscape accepts the usual header comment, or a first record line
// that parses.
func looksNetscape(buf []byte) bool {
	for _, line := range strings.SplitAfter(string(buf), "\n") {
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == "# Netscape HTTP Cookie File" || trimmed == "# HTTP Cookie File" {
			return true
		}
		if trimmed == "" || (strings.HasPrefix(trimmed, "#") && !strings.HasPrefix(trimmed, netscape.HttpOnlyPrefix)) {
			continue
		}
		if !strings.HasSuffix(line, "\n") {
			return false
		}
		_, err := netscape.Parse([]byte(line))
		return err == nil
	}
	return false
}

// detectSQLiteFormat opens the SQLite file and checks which cookie table exists.
func detectSQLiteFormat(path string) (CookieFormat, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return FormatUnknown, fmt.Errorf("error: cannot open SQLite database: %w", err)
	}
	defer db.Close()

	var tableName string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='moz_cookies'`).Scan(&tableName)
	if err == nil {
		return FormatFirefox, nil
	}

	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='cookies'`).Scan(&tableName)
	if err == nil {
		return FormatChrome, nil
	}

	return FormatUnknown, fmt.Errorf("error: unsupported cookie database schema at %s", path)
}
