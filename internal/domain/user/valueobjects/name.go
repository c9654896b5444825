package valueobjects

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.BrazilianPortuguese)

// DisplayName joins first and last name in title case, falling back to
// the username.
func DisplayName(firstName, lastName, username string) string {
	full := strings.Join(strings.Fields(firstName+" "+lastName), " ")
	if full == "" {
		return username
	}
	return titleCaser.String(strings.ToLower(full))
}
