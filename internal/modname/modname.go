package modname

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"
)

// Derive builds a module name from a source path and its content: the
// sanitized base filename plus a short content hash, so modules with
// identical basenames stay distinct. The same path and content always
// derive the same name.
func Derive(path string, source []byte) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = sanitize(base)
	if base == "" {
		base = "module"
	}
	sum := sha256.Sum256(source)
	return base + "_" + hex.EncodeToString(sum[:4])
}

// sanitize keeps letters, digits and underscores, and makes sure the
// name does not start with a digit.
func sanitize(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			sb.WriteRune(r)
		case r >= '0' && r <= '9':
			if sb.Len() == 0 {
				sb.WriteRune('_')
			}
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
