package cookies

import (
	"fmt"
	"path/filepath"

	"github.com/bk-rs/netscape-cookie/pkg/logger"
	"github.com/bk-rs/netscape-cookie/pkg/netscape"
	"github.com/spf13/afero"
)

// Importer reads cookie stores from a filesystem.
type Importer struct {
	fs  afero.Fs
	log logger.Logger
}

// NewImporter returns an Importer over fs. A nil log discards messages.
func NewImporter(fs afero.Fs, log logger.Logger) *Importer {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Importer{fs: fs, log: log}
}

// Import detects the format of sourcePath, reads it, and returns the
// cookies passing filter together with source metadata. SQLite stores are
// copied before reading so a running browser keeps its lock.
func (im *Importer) Import(sourcePath string, filter Filter) ([]netscape.Cookie, *CookieSource, error) {
	format, err := DetectFormat(im.fs, sourcePath)
	if err != nil {
		return nil, nil, err
	}

	source := &CookieSource{
		Path:    sourcePath,
		Format:  format,
		Browser: format.String(),
	}

	var cookies []netscape.Cookie

	switch format {
	case FormatFirefox:
		cookies, err = im.importSQLite(sourcePath, ParseFirefox)
	case FormatChrome:
		cookies, err = im.importSQLite(sourcePath, ParseChrome)
	case FormatNetscape:
		cookies, err = ParseNetscape(im.fs, sourcePath)
	default:
		return nil, nil, fmt.Errorf("error: unsupported cookie database schema at %s", sourcePath)
	}
	if err != nil {
		return nil, nil, err
	}

	total := len(cookies)
	cookies = filter.Apply(cookies)
	im.log.Debug("imported %d of %d cookies from %s store %s", len(cookies), total, source.Browser, sourcePath)
	for _, c := range cookies {
		im.log.Debug("cookie %s for %s", c.Name, c.Domain)
	}

	return cookies, source, nil
}

// importSQLite copies a SQLite cookie file safely and parses it with the given parser.
func (im *Importer) importSQLite(sourcePath string, parser func(string) ([]netscape.Cookie, error)) ([]netscape.Cookie, error) {
	tempDir, cleanup, err := SafeCopy(im.fs, sourcePath)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	copiedPath := filepath.Join(tempDir, filepath.Base(sourcePath))
	return parser(copiedPath)
}

// ImportCookies imports cookies from a store on the OS filesystem.
func ImportCookies(sourcePath string, filter Filter) ([]netscape.Cookie, *CookieSource, error) {
	return NewImporter(afero.NewOsFs(), nil).Import(sourcePath, filter)
}
