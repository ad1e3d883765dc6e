package netscape

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// HttpOnlyPrefix marks a line that holds an HttpOnly cookie rather than a
// comment.
const HttpOnlyPrefix = "#HttpOnly_"

// Parse parses a cookies.txt buffer into its records, in line order.
//
// Empty lines and comments are skipped. A final line without a terminating
// newline ends the input and is not parsed. The first malformed line aborts
// the parse with a *ParseError; no partial result is returned.
func Parse(b []byte) ([]Cookie, error) {
	return ParseReader(bytes.NewReader(b))
}

// ParseReader is Parse over a stream. A read failure aborts the parse with
// a KindIoError *ParseError.
func ParseReader(r io.Reader) ([]Cookie, error) {
	br := bufio.NewReader(r)
	var cookies []Cookie
	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		if err == io.EOF {
			// unterminated trailing data is not a record
			break
		}
		if err != nil {
			return nil, newIoError(err)
		}
		line = strings.TrimSuffix(line[:len(line)-1], "\r")
		if line == "" {
			continue
		}

		httpOnly := false
		if strings.HasPrefix(line, HttpOnlyPrefix) {
			httpOnly = true
			line = line[len(HttpOnlyPrefix):]
		} else if strings.HasPrefix(line, "#") {
			continue
		}

		c, perr := parseFields(line)
		if perr != nil {
			perr.Line = lineNo
			return nil, perr
		}
		c.HttpOnly = httpOnly
		cookies = append(cookies, c)
	}
	return cookies, nil
}

// ParseFile opens path on fsys and parses it. Failure to open is reported as
// a KindIoError *ParseError.
func ParseFile(fsys afero.Fs, path string) ([]Cookie, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, newIoError(err)
	}
	defer f.Close()
	return ParseReader(f)
}

// parseFields converts one marker-stripped line into a Cookie.
func parseFields(line string) (Cookie, *ParseError) {
	fields := fieldIter{rest: line}
	var c Cookie

	domain, ok := fields.next()
	if !ok {
		return c, &ParseError{Kind: KindDomainMissing}
	}
	c.Domain = domain

	s, ok := fields.next()
	if !ok {
		return c, &ParseError{Kind: KindIncludeSubdomainsMissing}
	}
	b, err := parseBool(s)
	if err != nil {
		return c, newInvalid(KindIncludeSubdomainsInvalid, err)
	}
	c.IncludeSubdomains = b

	if c.Path, ok = fields.next(); !ok {
		return c, &ParseError{Kind: KindPathMissing}
	}

	if s, ok = fields.next(); !ok {
		return c, &ParseError{Kind: KindSecureMissing}
	}
	if c.Secure, err = parseBool(s); err != nil {
		return c, newInvalid(KindSecureInvalid, err)
	}

	if s, ok = fields.next(); !ok {
		return c, &ParseError{Kind: KindExpiresMissing}
	}
	// bitSize 63 keeps the value representable as int64 Unix seconds
	sec, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return c, newInvalid(KindExpiresInvalid, err)
	}
	if sec != 0 {
		c.Expires = AtUnix(int64(sec))
	}

	if c.Name, ok = fields.next(); !ok {
		return c, &ParseError{Kind: KindNameMissing}
	}
	if c.Value, ok = fields.next(); !ok {
		return c, &ParseError{Kind: KindValueMissing}
	}
	if _, ok = fields.next(); ok {
		return c, &ParseError{Kind: KindTooManyElements}
	}
	return c, nil
}

// fieldIter yields tab-separated fields one at a time, keeping empty ones.
type fieldIter struct {
	rest string
	done bool
}

func (it *fieldIter) next() (string, bool) {
	if it.done {
		return "", false
	}
	i := strings.IndexByte(it.rest, '\t')
	if i < 0 {
		it.done = true
		return it.rest, true
	}
	field := it.rest[:i]
	it.rest = it.rest[i+1:]
	return field, true
}

// parseBool accepts only "true" and "false", ignoring ASCII case.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: s, Err: strconv.ErrSyntax}
}
