// Package resolve maps logical identifiers to normalized storage locations.
//
// A location is the string shared by every backend: the cache uses it as the
// map key and the file backend joins it under its root directory. Resolution
// is pure and total - no I/O, no failure, identical inputs always yield the
// identical location.
package resolve

import "strings"

// Entry resolves an identifier plus extension to an entry location.
// Backslashes are normalized to forward slashes, a single leading slash is
// stripped, and ".<ext>" is appended unless id already ends with it - which
// makes Entry idempotent: Entry(Entry(id, e), e) == Entry(id, e).
//
// Parent-directory segments ("..") are deliberately not canonicalized here;
// callers sandboxing a root directory must reject them before resolution.
func Entry(id, ext string) string {
	loc := strings.ReplaceAll(id, `\`, "/")
	loc = strings.TrimPrefix(loc, "/")
	suffix := "." + strings.TrimPrefix(ext, ".")
	if !strings.HasSuffix(loc, suffix) {
		loc += suffix
	}
	return loc
}

// Directory resolves a directory identifier to a location prefix ending in
// exactly one slash. Entry locations under the directory are exactly those
// with this prefix, so "dir/" never matches entries in "dir2/".
func Directory(dir string) string {
	loc := strings.ReplaceAll(dir, `\`, "/")
	loc = strings.TrimPrefix(loc, "/")
	return strings.TrimRight(loc, "/") + "/"
}
