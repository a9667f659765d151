// Package language holds the static table of locales the dictionary service serves.
package language

import "slices"

// Code is a locale identifier accepted by the dictionary service (e.g. "en", "pt-BR").
type Code string

// Default is the language used when nothing else is configured.
const Default Code = "en"

type entry struct {
	code Code
	name string
}

// supported is ordered as the upstream service documents it.
var supported = []entry{
	{"en", "English"},
	{"hi", "Hindi"},
	{"es", "Spanish"},
	{"fr", "French"},
	{"ja", "Japanese"},
	{"ru", "Russian"},
	{"de", "German"},
	{"it", "Italian"},
	{"ko", "Korean"},
	{"pt-BR", "Brazilian Portuguese"},
	{"ar", "Arabic"},
	{"tr", "Turkish"},
}

func (c Code) String() string { return string(c) }

// Name returns the English display name, or "" for unsupported codes.
func (c Code) Name() string {
	for _, e := range supported {
		if e.code == c {
			return e.name
		}
	}
	return ""
}

// IsSupported reports whether s is an exact member of the supported set.
// Matching is case-sensitive: "EN" is rejected.
func IsSupported(s string) bool {
	_, ok := Parse(s)
	return ok
}

// Parse returns the Code for s if it is supported.
func Parse(s string) (Code, bool) {
	i := slices.IndexFunc(supported, func(e entry) bool { return string(e.code) == s })
	if i < 0 {
		return "", false
	}
	return supported[i].code, true
}

// All returns a copy of the supported codes in table order.
func All() []Code {
	codes := make([]Code, len(supported))
	for i, e := range supported {
		codes[i] = e.code
	}
	return codes
}
