package netscape

import (
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"testing/iotest"
	"time"

	"github.com/spf13/afero"
)

const validLine = "example.com\tFALSE\t/\tFALSE\t0\tfoo\tbar\n"

func TestParse_DemoFile(t *testing.T) {
	content, err := os.ReadFile("testdata/demo_cookies.txt")
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}

	cookies, err := Parse(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cookies) != 5 {
		t.Fatalf("expected 5 cookies, got %d", len(cookies))
	}

	names := []string{"lang", "prefs", "sid", "tz", "logged_in"}
	for i, name := range names {
		if cookies[i].Name != name {
			t.Errorf("cookie %d: expected name %q, got %q", i, name, cookies[i].Name)
		}
	}

	last := cookies[4]
	if !last.HttpOnly {
		t.Error("expected HttpOnly=true")
	}
	if last.Domain != ".github.com" {
		t.Errorf("expected domain '.github.com', got %q", last.Domain)
	}
	if !last.IncludeSubdomains {
		t.Error("expected IncludeSubdomains=true")
	}
	if last.Path != "/" {
		t.Errorf("expected path '/', got %q", last.Path)
	}
	if !last.Secure {
		t.Error("expected Secure=true")
	}
	ts, ok := last.Expires.Time()
	if !ok {
		t.Fatal("expected an absolute expiry, got Session")
	}
	if ts.Unix() != 1640586740 {
		t.Errorf("expected expiry 1640586740, got %d", ts.Unix())
	}
	if ts.Location() != time.UTC {
		t.Errorf("expected UTC expiry, got %v", ts.Location())
	}
	if last.Value != "no" {
		t.Errorf("expected value 'no', got %q", last.Value)
	}

	if cookies[2].Domain != "www.example.com" || !cookies[2].HttpOnly {
		t.Errorf("expected HttpOnly cookie for www.example.com, got %+v", cookies[2])
	}
	if cookies[1].HttpOnly {
		t.Error("expected HttpOnly=false for unmarked line")
	}
}

func TestParse_SessionExpiry(t *testing.T) {
	cookies, err := Parse([]byte(validLine))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if !c.Expires.IsSession() {
		t.Errorf("expected Session expiry, got %v", c.Expires)
	}
	if c.Domain != "example.com" || c.IncludeSubdomains || c.Path != "/" || c.Secure {
		t.Errorf("unexpected fields: %+v", c)
	}
	if c.Name != "foo" || c.Value != "bar" {
		t.Errorf("expected foo=bar, got %s=%s", c.Name, c.Value)
	}
}

func TestParse_HttpOnlyMarker(t *testing.T) {
	line := ".github.com\tTRUE\t/\tTRUE\t1640586740\tlogged_in\tno\n"

	plain, err := Parse([]byte(line))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	marked, err := Parse([]byte(HttpOnlyPrefix + line))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plain) != 1 || len(marked) != 1 {
		t.Fatalf("expected 1 cookie each, got %d and %d", len(plain), len(marked))
	}
	if plain[0].HttpOnly {
		t.Error("expected HttpOnly=false without marker")
	}
	if !marked[0].HttpOnly {
		t.Error("expected HttpOnly=true with marker")
	}
	marked[0].HttpOnly = false
	if marked[0] != plain[0] {
		t.Errorf("marker changed other fields: %+v vs %+v", marked[0], plain[0])
	}
}

func TestParse_SkipsCommentsAndBlankLines(t *testing.T) {
	content := "# Netscape HTTP Cookie File\n\n#HttpOnly\tnot\ta\tcookie\n# another\n" + validLine + "\n"

	cookies, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
}

func TestParse_CommentOnly(t *testing.T) {
	cookies, err := Parse([]byte("# Netscape HTTP Cookie File\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cookies) != 0 {
		t.Errorf("expected 0 cookies, got %d", len(cookies))
	}
}

func TestParse_EmptyInput(t *testing.T) {
	cookies, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cookies) != 0 {
		t.Errorf("expected 0 cookies, got %d", len(cookies))
	}
}

func TestParse_CRLFLineEndings(t *testing.T) {
	content := "# Netscape HTTP Cookie File\r\n\r\n" + strings.TrimSuffix(validLine, "\n") + "\r\n"

	cookies, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].Value != "bar" {
		t.Errorf("expected value 'bar', got %q", cookies[0].Value)
	}
}

func TestParse_UnterminatedLastLineIgnored(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"valid trailing record", validLine + "other.com\tFALSE\t/\tFALSE\t0\tk\tv", 1},
		{"malformed trailing data", validLine + "garbage", 1},
		{"only unterminated", strings.TrimSuffix(validLine, "\n"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cookies, err := Parse([]byte(tt.content))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(cookies) != tt.want {
				t.Errorf("expected %d cookies, got %d", tt.want, len(cookies))
			}
		})
	}
}

func TestParse_PreservesLineOrder(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 50; i++ {
		b.WriteString("example.com\tFALSE\t/\tFALSE\t0\tc" + strconv.Itoa(i) + "\tv\n")
	}
	cookies, err := Parse([]byte(b.String()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cookies) != 50 {
		t.Fatalf("expected 50 cookies, got %d", len(cookies))
	}
	for i, c := range cookies {
		if c.Name != "c"+strconv.Itoa(i) {
			t.Fatalf("cookie %d out of order: %s", i, c.Name)
		}
	}
}

func TestParse_EmptyFieldsKept(t *testing.T) {
	cookies, err := Parse([]byte("\tTRUE\t\tFALSE\t0\t\t\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := cookies[0]
	if c.Domain != "" || c.Path != "" || c.Name != "" || c.Value != "" {
		t.Errorf("expected empty string fields, got %+v", c)
	}
}

func TestParse_BooleanCaseInsensitive(t *testing.T) {
	cookies, err := Parse([]byte("example.com\tTrue\t/\tfAlSe\t0\tn\tv\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cookies[0].IncludeSubdomains || cookies[0].Secure {
		t.Errorf("unexpected booleans: %+v", cookies[0])
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *ParseError
	}{
		{"marker only", "#HttpOnly_\n", ErrIncludeSubdomainsMissing},
		{"domain only", "example.com\n", ErrIncludeSubdomainsMissing},
		{"path missing", "example.com\tTRUE\n", ErrPathMissing},
		{"secure missing", "example.com\tTRUE\t/\n", ErrSecureMissing},
		{"expires missing", "example.com\tTRUE\t/\tFALSE\n", ErrExpiresMissing},
		{"name missing", "example.com\tTRUE\t/\tFALSE\t0\n", ErrNameMissing},
		{"value missing", "example.com\tTRUE\t/\tFALSE\t0\tn\n", ErrValueMissing},
		{"too many", "example.com\tTRUE\t/\tFALSE\t0\tn\tv\textra\n", ErrTooManyElements},
		{"trailing tab", "example.com\tTRUE\t/\tFALSE\t0\tn\tv\t\n", ErrTooManyElements},
		{"too many after marker", "#HttpOnly_example.com\tTRUE\t/\tFALSE\t0\tn\tv\tx\n", ErrTooManyElements},
		{"include subdomains yes", "example.com\tyes\t/\tFALSE\t0\tn\tv\n", ErrIncludeSubdomainsInvalid},
		{"include subdomains empty", "example.com\t\t/\tFALSE\t0\tn\tv\n", ErrIncludeSubdomainsInvalid},
		{"secure numeric", "example.com\tTRUE\t/\t1\t0\tn\tv\n", ErrSecureInvalid},
		{"expires negative", "example.com\tTRUE\t/\tFALSE\t-1\tn\tv\n", ErrExpiresInvalid},
		{"expires text", "example.com\tTRUE\t/\tFALSE\tsoon\tn\tv\n", ErrExpiresInvalid},
		{"expires float", "example.com\tTRUE\t/\tFALSE\t1.5\tn\tv\n", ErrExpiresInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cookies, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.want)
			}
			if cookies != nil {
				t.Errorf("expected no cookies on error, got %d", len(cookies))
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want.Kind, err)
			}
		})
	}
}

func TestParse_InvalidWrapsConversionError(t *testing.T) {
	_, err := Parse([]byte("example.com\tmaybe\t/\tFALSE\t0\tn\tv\n"))
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("expected *strconv.NumError in chain, got %v", err)
	}
	if numErr.Num != "maybe" || !errors.Is(numErr, strconv.ErrSyntax) {
		t.Errorf("unexpected conversion error: %v", numErr)
	}

	_, err = Parse([]byte("example.com\tTRUE\t/\tFALSE\t99999999999999999999\tn\tv\n"))
	if !errors.Is(err, ErrExpiresInvalid) {
		t.Fatalf("expected ExpiresInvalid, got %v", err)
	}
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("expected range error in chain, got %v", err)
	}
}

func TestParse_FirstErrorAbortsWithLine(t *testing.T) {
	content := "# header\n" + validLine + "bad\tTRUE\n" + "worse\n"

	cookies, err := Parse([]byte(content))
	if cookies != nil {
		t.Errorf("expected nil cookies, got %d", len(cookies))
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Kind != KindPathMissing {
		t.Errorf("expected PathMissing, got %v", perr.Kind)
	}
	if perr.Line != 3 {
		t.Errorf("expected line 3, got %d", perr.Line)
	}
	if got := perr.Error(); got != "netscape: line 3: PathMissing" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestParseReader_IoError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader(validLine), iotest.ErrReader(boom))

	cookies, err := ParseReader(r)
	if cookies != nil {
		t.Errorf("expected nil cookies, got %d", len(cookies))
	}
	if !errors.Is(err, ErrIo) {
		t.Fatalf("expected IoError, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected underlying error in chain, got %v", err)
	}
	var perr *ParseError
	errors.As(err, &perr)
	if perr.IOKind != "Other" {
		t.Errorf("expected IOKind 'Other', got %q", perr.IOKind)
	}
}

func TestParseFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/jar/cookies.txt", []byte("# Netscape HTTP Cookie File\n"+validLine), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	cookies, err := ParseFile(fs, "/jar/cookies.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
}

func TestParseFile_NotFound(t *testing.T) {
	_, err := ParseFile(afero.NewMemMapFs(), "/missing.txt")
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Kind != KindIoError || perr.IOKind != "NotFound" {
		t.Errorf("expected IoError NotFound, got %v %q", perr.Kind, perr.IOKind)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain")
	}
}

func TestParse_ConcurrentCalls(t *testing.T) {
	content := []byte(strings.Repeat(validLine, 20))
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cookies, err := Parse(content)
			if err != nil {
				errs <- err
				return
			}
			if len(cookies) != 20 {
				errs <- errors.New("unexpected cookie count " + strconv.Itoa(len(cookies)))
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
