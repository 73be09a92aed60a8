package errors

import (
	"slices"
	"strings"
	"unicode"
)

const maxNameLength = 64

// TypeNames lists the eighteen elemental types in PokeAPI order.
var TypeNames = []string{
	"normal", "fighting", "flying", "poison", "ground", "rock",
	"bug", "ghost", "steel", "fire", "water", "grass",
	"electric", "psychic", "ice", "dragon", "dark", "fairy",
}

// ValidatePokemonName checks user input before it is used in a PokeAPI URL.
//
// Accepted names are non-empty, at most 64 characters, and made of letters,
// digits, spaces and the punctuation found in real names (- . ' _ ♀ ♂).
// National Dex numbers pass as well. Anything that could escape the URL
// path (slashes, "..", control characters) is rejected.
func ValidatePokemonName(name string) error {
	return validateName("Pokémon name", name)
}

// ValidateMoveName applies the same rules to a move name.
func ValidateMoveName(name string) error {
	return validateName("move name", name)
}

func validateName(label, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return New(ErrCodeInvalidName, "%s cannot be empty", label)
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidName, "%s too long (max %d characters)", label, maxNameLength)
	}
	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidName, "%s contains invalid characters: %q", label, "..")
	}
	for _, r := range name {
		if !validNameRune(r) {
			return New(ErrCodeInvalidName, "%s contains invalid character %q", label, r)
		}
	}
	return nil
}

func validNameRune(r rune) bool {
	switch {
	case unicode.IsLetter(r), unicode.IsDigit(r):
		return true
	case strings.ContainsRune(" -.'_♀♂", r):
		return true
	}
	return false
}

// ValidateTypeName checks that name (case-insensitive) is one of [TypeNames].
func ValidateTypeName(name string) error {
	if !slices.Contains(TypeNames, strings.ToLower(strings.TrimSpace(name))) {
		return New(ErrCodeInvalidType, "unknown type %q", name)
	}
	return nil
}

// ValidateFormat checks that format is one of allowed.
func ValidateFormat(format string, allowed ...string) error {
	if !slices.Contains(allowed, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}
	return nil
}
