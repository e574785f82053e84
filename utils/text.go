package utils

// Tail returns the last n bytes of s.
//
// The length is clamped, so asking for more bytes than s holds returns s itself
// and a non-positive n returns an empty string. It never panics.
//
// Args:
//   - s: The source string.
//   - n: The number of trailing bytes wanted.
//
// Returns:
//   - string: The trailing part of s, at most n bytes long.
func Tail(s string, n int) string {
	if n <= 0 {
		return ""
	}

	return s[len(s)-Min(n, len(s)):]
}

// LowerASCII lowercases the ASCII letters 'A' to 'Z' of s and leaves every other byte alone.
//
// Unlike strings.ToLower it never maps a non-ASCII rune onto an ASCII letter,
// e.g. "İ" (U+0130) stays as it is.
//
// Args:
//   - s: The source string.
//
// Returns:
//   - string: s with its ASCII capitals lowered.
func LowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}

	return string(b)
}
