package cookies

import (
	"fmt"

	"github.com/bk-rs/netscape-cookie/pkg/netscape"
	"github.com/spf13/afero"
)

// ParseNetscape reads every cookie from a Netscape-format cookie text file.
// Unlike the browser stores, a malformed line fails the whole import.
func ParseNetscape(fs afero.Fs, filePath string) ([]netscape.Cookie, error) {
	cookies, err := netscape.ParseFile(fs, filePath)
	if err != nil {
		return nil, fmt.Errorf("error: cannot parse Netscape cookie file %s: %w", filePath, err)
	}
	return cookies, nil
}
