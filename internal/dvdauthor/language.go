package dvdauthor

import (
	"fmt"
	"strings"
)

var languageNames = map[string]string{
	"en": "English",
	"fr": "French",
	"es": "Spanish",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"nl": "Dutch",
	"ja": "Japanese",
}

// normalizeLanguage lowercases a two letter ISO 639-1 code.
func normalizeLanguage(code string) (string, error) {
	if len(code) != 2 {
		return "", fmt.Errorf("%w: '%s'", ErrBadLanguage, code)
	}
	lower := strings.ToLower(code)
	for i := 0; i < 2; i++ {
		if lower[i] < 'a' || lower[i] > 'z' {
			return "", fmt.Errorf("%w: '%s'", ErrBadLanguage, code)
		}
	}
	return lower, nil
}

func formatLanguage(code string) string {
	if code == "" {
		return ""
	}
	if name := languageNames[code]; name != "" {
		return fmt.Sprintf("%s (%s)", name, code)
	}
	return code
}
