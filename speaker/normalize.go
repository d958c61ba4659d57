package speaker

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// cyrillicToLatin is the fixed transliteration table applied to lowercased
// characters before diacritic stripping. Hard and soft signs drop out.
var cyrillicToLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "e", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "yu", 'я': "ya",
}

// diacriticStripper decomposes characters and discards combining marks,
// turning é into e.
var diacriticStripper = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// NormalizeName turns an arbitrary human-entered name into an
// ASCII-friendly uppercase identifier: Cyrillic is transliterated,
// diacritics stripped, symbols dropped, and word runs joined by single
// underscores. Deterministic and total; the result can be empty when the
// input is entirely symbols, in which case callers must re-prompt.
func NormalizeName(name string) string {
	var transliterated strings.Builder
	for _, r := range name {
		if latin, ok := cyrillicToLatin[unicode.ToLower(r)]; ok {
			transliterated.WriteString(latin)
		} else {
			transliterated.WriteRune(r)
		}
	}

	ascii, _, err := transform.String(diacriticStripper, transliterated.String())
	if err != nil {
		ascii = transliterated.String()
	}

	var sanitized strings.Builder
	for _, r := range ascii {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			sanitized.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			sanitized.WriteRune(r)
		default:
			sanitized.WriteRune(' ')
		}
	}

	words := strings.FieldsFunc(sanitized.String(), func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})
	joined := strings.Trim(strings.Join(words, "_"), "_")
	return strings.ToUpper(joined)
}
