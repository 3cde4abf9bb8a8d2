package language

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

var (
	ErrUnknownCode   = errors.New("unknown language code")
	ErrDuplicateCode = errors.New("duplicate language code")
)

// Code identifies one of the supported target languages.
// The zero value is not a valid code.
type Code int

const (
	English Code = iota + 1
	Luganda
	Swahili
)

type info struct {
	short   string
	variant string
	tag     language.Tag
}

// known is indexed by Code; its order is the fixed emission order.
var known = [...]info{
	English: {short: "en", variant: "English", tag: language.English},
	Luganda: {short: "lg", variant: "Luganda", tag: language.MustParse("lg")},
	Swahili: {short: "sw", variant: "Swahili", tag: language.Swahili},
}

// All returns every supported code in emission order.
func All() []Code {
	return []Code{English, Luganda, Swahili}
}

func (c Code) Valid() bool {
	return c >= English && c <= Swahili
}

// String returns the short code used in the source table ("en", "lg", "sw").
func (c Code) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Code(%d)", int(c))
	}
	return known[c].short
}

// Variant returns the name of the matching Rust enum variant.
func (c Code) Variant() string {
	if !c.Valid() {
		return ""
	}
	return known[c].variant
}

// Tag returns the BCP 47 tag for the code.
func (c Code) Tag() language.Tag {
	if !c.Valid() {
		return language.Und
	}
	return known[c].tag
}

// Parse maps a short source code to a Code. Matching is exact.
func Parse(s string) (Code, bool) {
	for _, c := range All() {
		if known[c].short == s {
			return c, true
		}
	}
	return 0, false
}

// ParseList parses a comma-separated list such as "en,sw". Besides the short
// codes it accepts any BCP 47 tag whose base language is supported, so
// "sw-KE" selects Swahili. An empty list selects All().
func ParseList(s string) ([]Code, error) {
	if strings.TrimSpace(s) == "" {
		return All(), nil
	}

	var codes []Code
	seen := make(map[Code]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		c, ok := Parse(part)
		if !ok {
			c, ok = fromTag(part)
		}
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCode, part)
		}
		if seen[c] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCode, part)
		}
		seen[c] = true
		codes = append(codes, c)
	}
	return codes, nil
}

// fromTag resolves a BCP 47 tag by its base language. The base must be
// stated in the tag, not inferred from a region or script.
func fromTag(s string) (Code, bool) {
	tag, err := language.Parse(s)
	if err != nil {
		return 0, false
	}
	base, conf := tag.Base()
	if conf != language.Exact {
		return 0, false
	}
	for _, c := range All() {
		if b, _ := c.Tag().Base(); b == base {
			return c, true
		}
	}
	return 0, false
}
