// Package cookies imports cookies from the stores a user is likely to hand
// to cookiestxt: Netscape cookies.txt files, Firefox cookies.sqlite and
// Chrome Cookies databases. Every store is read into netscape.Cookie
// records so callers handle one shape regardless of origin.
//
// Cookie values are never logged. Only names, domains and the source path
// appear in debug output.
package cookies
