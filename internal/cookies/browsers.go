package cookies

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bk-rs/netscape-cookie/pkg/netscape"
	"github.com/spf13/afero"
)

// AutoBrowser asks ImportBrowser for the first store found on the machine.
const AutoBrowser = "auto"

// browserStore lists where a browser keeps its cookie database.
type browserStore struct {
	Name string
	// Files are direct database candidates (Chromium family).
	Files []string
	// ProfilesIni are profiles.ini candidates (Firefox family); the database
	// is cookies.sqlite in the default profile.
	ProfilesIni []string
}

// chromiumDirs maps a Chromium-family browser to its user-data directory
// per GOOS, relative to the config root.
var chromiumDirs = []struct {
	name                   string
	linux, darwin, windows string
}{
	{"Chrome", "google-chrome", "Google/Chrome", "Google/Chrome/User Data"},
	{"Chromium", "chromium", "Chromium", "Chromium/User Data"},
	{"Edge", "microsoft-edge", "Microsoft Edge", "Microsoft/Edge/User Data"},
	{"Brave", "BraveSoftware/Brave-Browser", "BraveSoftware/Brave-Browser", "BraveSoftware/Brave-Browser/User Data"},
}

// knownStores returns the stores to probe, in priority order, for the given
// GOOS and home directory. On Windows appData and localAppData are the
// roaming and local application data roots.
func knownStores(goos, home, appData, localAppData string) []browserStore {
	var ffRoots []string
	var chromiumRoot string
	switch goos {
	case "darwin":
		support := filepath.Join(home, "Library", "Application Support")
		ffRoots = []string{filepath.Join(support, "Firefox"), filepath.Join(support, "librewolf")}
		chromiumRoot = support
	case "windows":
		ffRoots = []string{filepath.Join(appData, "Mozilla", "Firefox"), filepath.Join(appData, "LibreWolf")}
		chromiumRoot = localAppData
	default:
		ffRoots = []string{
			filepath.Join(home, ".mozilla", "firefox"),
			filepath.Join(home, ".librewolf"),
		}
		chromiumRoot = filepath.Join(home, ".config")
	}

	stores := []browserStore{
		{Name: "Firefox", ProfilesIni: []string{filepath.Join(ffRoots[0], "profiles.ini")}},
		{Name: "LibreWolf", ProfilesIni: []string{filepath.Join(ffRoots[1], "profiles.ini")}},
	}
	if goos == "linux" {
		snap := filepath.Join(home, "snap", "firefox", "common", ".mozilla", "firefox", "profiles.ini")
		stores[0].ProfilesIni = append(stores[0].ProfilesIni, snap)
	}

	for _, b := range chromiumDirs {
		rel := b.linux
		switch goos {
		case "darwin":
			rel = b.darwin
		case "windows":
			rel = b.windows
		}
		profile := filepath.Join(chromiumRoot, filepath.FromSlash(rel), "Default")
		stores = append(stores, browserStore{
			Name: b.name,
			Files: []string{
				filepath.Join(profile, "Network", "Cookies"),
				filepath.Join(profile, "Cookies"),
			},
		})
	}
	return stores
}

func localStores() []browserStore {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return knownStores(runtime.GOOS, home, os.Getenv("APPDATA"), os.Getenv("LOCALAPPDATA"))
}

// defaultProfile returns the default profile directory named by a
// profiles.ini file, or "" when there is none. An [Install*] Default= key
// wins over a [Profile*] section carrying Default=1.
func defaultProfile(fs afero.Fs, iniPath string) string {
	f, err := fs.Open(iniPath)
	if err != nil {
		return ""
	}
	defer f.Close()

	dir := filepath.Dir(iniPath)
	var (
		installDefault, profileDefault string
		section, path                  string
		isDefault                      bool
	)
	flush := func() {
		if strings.HasPrefix(section, "Profile") && isDefault && profileDefault == "" {
			profileDefault = path
		}
	}

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			flush()
			section = strings.Trim(line, "[]")
			path, isDefault = "", false
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		switch {
		case strings.HasPrefix(section, "Install") && k == "Default" && installDefault == "":
			installDefault = filepath.Join(dir, filepath.FromSlash(v))
		case strings.HasPrefix(section, "Profile") && k == "Path":
			path = filepath.Join(dir, filepath.FromSlash(v))
		case strings.HasPrefix(section, "Profile") && k == "Default" && v == "1":
			isDefault = true
		}
	}
	flush()

	if installDefault != "" {
		return installDefault
	}
	return profileDefault
}

// locate returns the cookie database of the named browser, or of the first
// browser with one when name is AutoBrowser.
func (im *Importer) locate(stores []browserStore, name string) (path, browser string, err error) {
	auto := strings.EqualFold(name, AutoBrowser)
	known := false
	for _, s := range stores {
		if !auto && !strings.EqualFold(s.Name, name) {
			continue
		}
		known = true
		candidates := s.Files
		for _, ini := range s.ProfilesIni {
			if profile := defaultProfile(im.fs, ini); profile != "" {
				candidates = append(candidates, filepath.Join(profile, "cookies.sqlite"))
			}
		}
		for _, c := range candidates {
			if _, err := im.fs.Stat(c); err == nil {
				return c, s.Name, nil
			}
		}
		im.log.Debug("no %s cookie store found", s.Name)
	}
	if !known {
		return "", "", fmt.Errorf("error: unknown browser %q", name)
	}
	if auto {
		return "", "", fmt.Errorf("error: no supported browser cookie store found")
	}
	return "", "", fmt.Errorf("error: no %s cookie store found", name)
}

// ImportBrowser imports cookies from the default profile of the named
// browser ("Firefox", "Chrome", ...) or, for AutoBrowser, from the first
// browser found in the order Firefox, LibreWolf, Chrome, Chromium, Edge,
// Brave.
func (im *Importer) ImportBrowser(name string, filter Filter) ([]netscape.Cookie, *CookieSource, error) {
	return im.importFrom(localStores(), name, filter)
}

func (im *Importer) importFrom(stores []browserStore, name string, filter Filter) ([]netscape.Cookie, *CookieSource, error) {
	path, browser, err := im.locate(stores, name)
	if err != nil {
		return nil, nil, err
	}
	cookies, source, err := im.Import(path, filter)
	if err != nil {
		return nil, nil, err
	}
	source.Browser = browser
	return cookies, source, nil
}
