package storage

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// windows reserved device names
var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// SecureFilename reduces name to a safe, flat ASCII filename. Accents are
// folded, path separators and whitespace become underscores, anything
// outside [A-Za-z0-9_.-] is dropped and leading dots and underscores are
// stripped. The result may be empty.
func SecureFilename(name string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), runes.Map(asciiOnly)),
		name,
	)
	if err != nil {
		folded = name
	}

	folded = strings.NewReplacer("/", " ", "\\", " ").Replace(folded)
	folded = strings.Join(strings.Fields(folded), "_")
	folded = unsafeFilenameChars.ReplaceAllString(folded, "")
	folded = strings.Trim(folded, "._")

	stem := strings.TrimSuffix(folded, filepath.Ext(folded))
	if reservedNames[strings.ToUpper(stem)] {
		folded = "_" + folded
	}
	return folded
}

func asciiOnly(r rune) rune {
	if r > unicode.MaxASCII {
		return -1
	}
	return r
}
