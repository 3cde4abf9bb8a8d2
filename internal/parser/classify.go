package parser

import (
	"regexp"
	"strings"

	"transgen/internal/language"
)

// LineKind is the shape of a trimmed line inside the translation block.
type LineKind int

const (
	// LineOther is anything unrecognized. It is skipped.
	LineOther LineKind = iota
	// LineKeyOpen opens an entry: `key: {`.
	LineKeyOpen
	// LineLang holds one translation: `en: "text",`.
	LineLang
	// LineClose closes an entry: `},`.
	LineClose
)

func (k LineKind) String() string {
	switch k {
	case LineKeyOpen:
		return "key-open"
	case LineLang:
		return "lang"
	case LineClose:
		return "close"
	default:
		return "other"
	}
}

// Line is a classified line.
type Line struct {
	Kind LineKind

	// Key is set for LineKeyOpen.
	Key string
	// Inline holds language pairs written on the key line itself,
	// as in `greeting: { en: "Hello", sw: "Habari" },`.
	Inline Translations
	// Closed reports that the key line also closes its entry.
	Closed bool

	// Code and Text are set for LineLang.
	Code language.Code
	Text string
}

const closeToken = "},"

// keyOpenPattern matches `key: {` and captures whatever follows the brace.
var keyOpenPattern = regexp.MustCompile(`^(\w+):\s*\{(.*)$`)

// langPattern matches `en: "text",`. The text capture is greedy, so it ends
// at the last quote on the line.
var langPattern = regexp.MustCompile(`^(\w+):\s*"(.+)",?`)

// inlinePairPattern matches one `en: "text"` pair on a key line.
var inlinePairPattern = regexp.MustCompile(`(\w+):\s*"((?:[^"\\]|\\.)*)"`)

// Classify determines the shape of a single line. The line is trimmed first.
func Classify(line string) Line {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Line{Kind: LineOther}
	}

	if m := keyOpenPattern.FindStringSubmatch(trimmed); m != nil {
		return classifyKeyOpen(m[1], strings.TrimSpace(m[2]))
	}

	if m := langPattern.FindStringSubmatch(trimmed); m != nil {
		code, ok := language.Parse(m[1])
		if !ok {
			return Line{Kind: LineOther}
		}
		return Line{Kind: LineLang, Code: code, Text: m[2]}
	}

	if trimmed == closeToken {
		return Line{Kind: LineClose}
	}

	return Line{Kind: LineOther}
}

func classifyKeyOpen(key, rest string) Line {
	l := Line{Kind: LineKeyOpen, Key: key}
	if rest == "" {
		return l
	}

	for _, m := range inlinePairPattern.FindAllStringSubmatch(rest, -1) {
		code, ok := language.Parse(m[1])
		if !ok {
			continue
		}
		if l.Inline == nil {
			l.Inline = make(Translations)
		}
		l.Inline[code] = m[2]
	}
	l.Closed = strings.HasSuffix(rest, "}") || strings.HasSuffix(rest, closeToken)
	return l
}
