package session

import "strings"

// umlautFolder maps German umlauts and ß to their ASCII equivalents.
// Applied after lowercasing, so only lowercase forms are needed.
var umlautFolder = strings.NewReplacer(
	"ü", "u",
	"ö", "o",
	"ä", "a",
	"ß", "ss",
)

// Normalize prepares a typed answer for lenient comparison: lowercase,
// umlauts and ß folded to ASCII, whitespace collapsed and trimmed.
// Normalize is idempotent.
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = umlautFolder.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
