package utils

import (
	"net/url"
	"path"
	"strings"
)

// NormalizeFilename reduces a caller-supplied media reference to a bare
// filename. Clients sometimes send back the full delivery URL they received
// on a previous read; only the basename is ever persisted.
func NormalizeFilename(value string) string {
	str := strings.TrimSpace(value)
	if str == "" {
		return ""
	}
	if u, err := url.Parse(str); err == nil && u.Path != "" {
		str = u.Path
	}
	base := path.Base(strings.ReplaceAll(str, "\\", "/"))
	if base == "." || base == "/" {
		return ""
	}
	return base
}
