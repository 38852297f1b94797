package vfs

import (
	"path/filepath"
	"strings"
)

// Normalize collapses "." components and resolves ".." against a preceding
// normal component by popping it. A leading or otherwise unresolvable ".."
// is preserved verbatim, so normalization never escapes past the root and
// never turns a relative path into an absolute lookup.
//
// This is purely textual: it does not touch the filesystem and must not be
// confused with symlink resolution, which the handle-based identity step
// handles. Its only job is producing a stable second cache key for the
// canonical spelling of a path.
func Normalize(path string) string {
	vol := filepath.VolumeName(path)
	rest := path[len(vol):]
	rooted := len(rest) > 0 && (rest[0] == '/' || rest[0] == filepath.Separator)

	var out []string
	for _, part := range strings.FieldsFunc(rest, isPathSeparator) {
		switch part {
		case ".":
			// dropped
		case "..":
			if n := len(out); n > 0 && out[n-1] != ".." {
				out = out[:n-1]
			} else {
				out = append(out, "..")
			}
		default:
			out = append(out, part)
		}
	}

	joined := strings.Join(out, string(filepath.Separator))
	switch {
	case rooted:
		return vol + string(filepath.Separator) + joined
	case joined == "" && vol == "":
		return "."
	default:
		return vol + joined
	}
}

func isPathSeparator(r rune) bool {
	return r == '/' || r == filepath.Separator
}
