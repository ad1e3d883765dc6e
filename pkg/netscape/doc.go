// Package netscape parses the Netscape/Mozilla "cookies.txt" format written
// by curl, wget, browser extensions and most HTTP clients with a cookie jar.
//
// Each non-comment line holds one cookie as seven tab-separated fields:
//
//	domain  include_subdomains  path  secure  expires  name  value
//
// Lines starting with '#' are comments, except those starting with
// "#HttpOnly_", which carry an HttpOnly cookie. An expires value of 0
// denotes a session cookie.
//
// Parsing is strict and all-or-nothing: the first malformed line aborts the
// parse and is reported as a *ParseError. The package has no dependency on
// any HTTP library; see the nethttp subpackage for net/http conversion.
package netscape
