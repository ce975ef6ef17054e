package moniker

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

const (
	// DefaultDelimiter separates components when no delimiter is configured.
	DefaultDelimiter = '.'

	// EscapeCharacter masks the delimiter and itself. It cannot be changed.
	EscapeCharacter = '\\'
)

// IsValidDelimiter reports whether d can serve as a delimiter.
func IsValidDelimiter(d rune) bool {
	return d != EscapeCharacter && d != utf8.RuneError && utf8.ValidRune(d)
}

// ParseDelimiter converts a textual delimiter into a rune.
// The text must hold exactly one character.
func ParseDelimiter(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, violate(ErrIllegalArgument, "delimiter",
			fmt.Sprintf("delimiter %q must be exactly one character", s))
	}
	d, _ := utf8.DecodeRuneInString(s)
	if !IsValidDelimiter(d) {
		return 0, violate(ErrIllegalArgument, "delimiter",
			fmt.Sprintf("delimiter %q is not usable", s))
	}
	return d, nil
}

// Escape masks a component: every escape character is doubled first, then
// every delimiter is prefixed with the escape character. All other bytes,
// including invalid UTF-8, are copied unchanged.
//
//	Escape(`a.b`, '.')  -> `a\.b`
//	Escape(`c\d`, '.')  -> `c\\d`
func Escape(component string, d rune) string {
	if !strings.ContainsRune(component, EscapeCharacter) && !strings.ContainsRune(component, d) {
		return component
	}
	var b strings.Builder
	b.Grow(len(component) + 4)
	for i := 0; i < len(component); {
		r, size := utf8.DecodeRuneInString(component[i:])
		if r == EscapeCharacter || r == d {
			b.WriteRune(EscapeCharacter)
		}
		b.WriteString(component[i : i+size])
		i += size
	}
	return b.String()
}

// Unescape reverses Escape. The result is only meaningful for input accepted
// by IsProperlyMasked; malformed input must be rejected before unescaping.
func Unescape(masked string, d rune) string {
	if !strings.ContainsRune(masked, EscapeCharacter) {
		return masked
	}
	var b strings.Builder
	b.Grow(len(masked))
	escaped := false
	for i := 0; i < len(masked); {
		r, size := utf8.DecodeRuneInString(masked[i:])
		raw := masked[i : i+size]
		i += size
		if escaped {
			if r != d && r != EscapeCharacter {
				b.WriteRune(EscapeCharacter)
			}
			b.WriteString(raw)
			escaped = false
			continue
		}
		if r == EscapeCharacter {
			escaped = true
			continue
		}
		b.WriteString(raw)
	}
	if escaped {
		b.WriteRune(EscapeCharacter)
	}
	return b.String()
}

// IsProperlyMasked reports whether s is a properly masked component: it holds
// no bare delimiter and every escape character is followed by the delimiter or
// another escape character.
func IsProperlyMasked(s string, d rune) bool {
	return maskViolation(s, d, false) == ""
}

// IsProperlyMaskedData reports whether s is a well-formed data string, where
// bare delimiters separate components.
func IsProperlyMaskedData(s string, d rune) bool {
	return maskViolation(s, d, true) == ""
}

// UnmaskComponent validates an externally masked component and returns its
// literal value.
func UnmaskComponent(masked string, d rune) (string, error) {
	if cond := maskViolation(masked, d, false); cond != "" {
		return "", violate(ErrIllegalArgument, "unmask", cond)
	}
	return Unescape(masked, d), nil
}

// Split parses a masked data string into unmasked components, cutting at
// unescaped delimiters. An empty data string has no components.
func Split(data string, d rune) ([]string, error) {
	if data == "" {
		return []string{}, nil
	}
	if cond := maskViolation(data, d, true); cond != "" {
		return nil, violate(ErrIllegalArgument, "split", cond)
	}
	return splitMasked(data, d), nil
}

// Join masks each component and joins them with d. It is the inverse of Split
// for every sequence except a single empty component, which serializes to the
// same empty string as the empty sequence.
func Join(components []string, d rune) string {
	return strings.Join(lo.Map(components, func(c string, _ int) string {
		return Escape(c, d)
	}), string(d))
}

// splitMasked cuts well-formed data at unescaped delimiters and unescapes
// each piece in the same pass. Bytes are copied as found, so invalid UTF-8
// survives unchanged.
func splitMasked(data string, d rune) []string {
	var (
		components []string
		current    strings.Builder
		escaped    bool
	)
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRuneInString(data[i:])
		raw := data[i : i+size]
		i += size
		switch {
		case escaped:
			current.WriteString(raw)
			escaped = false
		case r == EscapeCharacter:
			escaped = true
		case r == d:
			components = append(components, current.String())
			current.Reset()
		default:
			current.WriteString(raw)
		}
	}
	return append(components, current.String())
}

// maskViolation walks s left to right, consuming escape pairs atomically, and
// describes the first grammar violation. It returns "" for valid input.
// When separators is false a bare delimiter is a violation.
func maskViolation(s string, d rune, separators bool) string {
	escaped := false
	for i, r := range s {
		if escaped {
			if r != d && r != EscapeCharacter {
				return fmt.Sprintf("escape character at offset %d must be followed by %q or %q", i-1, d, EscapeCharacter)
			}
			escaped = false
			continue
		}
		switch r {
		case EscapeCharacter:
			escaped = true
		case d:
			if !separators {
				return fmt.Sprintf("bare delimiter %q at offset %d", d, i)
			}
		}
	}
	if escaped {
		return "dangling escape character at end of input"
	}
	return ""
}
