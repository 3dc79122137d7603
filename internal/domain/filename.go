package domain

import (
	"regexp"
	"strings"
)

// fileNamePattern limits file identifiers to word characters, hyphens,
// underscores and forward slashes, with a mandatory .zip suffix. The grammar
// keeps the identifier from acting as an injection vector into the object
// store key.
var fileNamePattern = regexp.MustCompile(`^[\w/-]+\.zip$`)

// SafeFileName reports whether name satisfies the filename grammar. Traversal
// sequences are rejected outright.
func SafeFileName(name string) bool {
	if strings.Contains(name, "..") {
		return false
	}
	return fileNamePattern.MatchString(name)
}
