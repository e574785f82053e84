package gsregress

import "github.com/n0h4rt/gsregress/utils"

// Extension is a literal file name suffix, dot included, that the regression runner accepts.
type Extension string

const (
	ExtPS  Extension = ".ps"  // PostScript.
	ExtPDF Extension = ".pdf" // Portable Document Format.
	ExtEPS Extension = ".eps" // Encapsulated PostScript.
	ExtAI  Extension = ".ai"  // Adobe Illustrator.
)

// Extensions lists the accepted suffixes in the order they are checked.
var Extensions = []Extension{ExtPS, ExtPDF, ExtEPS, ExtAI}

// Kind returns the human readable name of the format behind the extension.
//
// Returns:
//   - string: The format name, or an empty string for an unknown extension.
func (e Extension) Kind() string {
	switch e {
	case ExtPS:
		return "PostScript"
	case ExtPDF:
		return "PDF"
	case ExtEPS:
		return "Encapsulated PostScript"
	case ExtAI:
		return "Adobe Illustrator"
	}

	return ""
}

// MatchExtension returns the first accepted extension the name ends with.
//
// The last len(ext) bytes of the name are lowercased, ASCII letters only, and compared
// against each extension verbatim. Non-ASCII runes are never folded, so "drawing.aİ"
// is rejected. Nothing is parsed: "noteps" does not end with ".eps" and
// "ps" does not end with ".ps". Names shorter than an extension simply fail that check.
//
// Args:
//   - name: The file name to classify.
//
// Returns:
//   - Extension: The matched extension.
//   - bool: True if the name ends with one of the accepted extensions, otherwise false.
func MatchExtension(name string) (Extension, bool) {
	for _, ext := range Extensions {
		if utils.LowerASCII(utils.Tail(name, len(ext))) == string(ext) {
			return ext, true
		}
	}

	return "", false
}

// CheckExtension reports whether the name ends, case-insensitively, with
// ".ps", ".pdf", ".eps" or ".ai".
//
// Safe for concurrent use; it never fails, even on an empty name.
func CheckExtension(name string) bool {
	_, ok := MatchExtension(name)
	return ok
}

// CheckExtensionFlag is CheckExtension in its integer flag form: 1 on a match, 0 otherwise.
func CheckExtensionFlag(name string) int {
	if CheckExtension(name) {
		return 1
	}

	return 0
}
