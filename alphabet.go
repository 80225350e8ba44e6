package glyphpng

import "fmt"

// DefaultAlphabet is the export alphabet of the ASCII letters and digits,
// in export order.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ParseAlphabet converts a string to an ordered export alphabet.
// Duplicates are an error, as they would overwrite each other's output.
// Characters which cannot be part of a file name are rejected as well.
func ParseAlphabet(s string) ([]rune, error) {
	if s == "" {
		return nil, fmt.Errorf("empty alphabet")
	}
	seen := make(map[rune]bool, len(s))
	alphabet := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '/', '\\', 0:
			return nil, fmt.Errorf("character %q not allowed in alphabet", r)
		}
		if seen[r] {
			return nil, fmt.Errorf("duplicate character %q in alphabet", r)
		}
		seen[r] = true
		alphabet = append(alphabet, r)
	}
	return alphabet, nil
}
