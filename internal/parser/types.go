package parser

import "transgen/internal/language"

// Translations maps a language to its text exactly as written in the source,
// escape sequences included.
type Translations map[language.Code]string

// Lookup returns the text for code, or fallback when the code is absent.
func (t Translations) Lookup(code language.Code, fallback string) string {
	if text, ok := t[code]; ok {
		return text
	}
	return fallback
}

// Codes returns the codes of order that are present, keeping their order.
func (t Translations) Codes(order []language.Code) []language.Code {
	var codes []language.Code
	for _, c := range order {
		if _, ok := t[c]; ok {
			codes = append(codes, c)
		}
	}
	return codes
}

// Entry is one key of the translation table with its per-language text.
type Entry struct {
	// Key is the identifier used by the lookup function.
	Key string
	// Translations holds at least one language.
	Translations Translations
}

// Result holds extraction output for a single source.
type Result struct {
	// Entries are the sealed entries in encounter order.
	Entries []Entry
	// Discarded lists keys dropped because no language line followed them.
	Discarded []string
}
