package gsregress

import (
	"path/filepath"

	"github.com/n0h4rt/gsregress/utils"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// SuggestExtension proposes the accepted extension a rejected name was probably meant to have.
//
// Only the dot-suffix of the name is considered ("tiger.pfd" -> ".pfd"). A candidate must
// share the first letter after the dot, be within MAX_SUGGEST_DISTANCE edits and need fewer
// edits than it has letters. Ties go to the earlier entry of Extensions.
//
// Args:
//   - name: The file name to inspect.
//
// Returns:
//   - Extension: The suggested extension.
//   - bool: True if a suggestion was found. Always false for accepted names.
func SuggestExtension(name string) (Extension, bool) {
	if CheckExtension(name) {
		return "", false
	}

	ext := utils.LowerASCII(filepath.Ext(name))
	if len(ext) < 2 {
		return "", false
	}

	var best Extension
	bestDistance := MAX_SUGGEST_DISTANCE + 1

	for _, candidate := range Extensions {
		if ext[1] != candidate[1] {
			continue
		}

		distance := levenshtein.DistanceForStrings([]rune(ext), []rune(string(candidate)), levenshtein.DefaultOptions)
		if distance >= len(candidate)-1 {
			continue
		}

		if distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}

	return best, best != ""
}
