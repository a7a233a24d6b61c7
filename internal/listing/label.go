package listing

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Label derives human-readable alt text from a filename: the extension is
// dropped, dashes and underscores become spaces, and each word is
// title-cased. "winter-hike_02.jpg" becomes "Winter Hike 02".
func Label(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	words := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
