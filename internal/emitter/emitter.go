package emitter

import (
	"fmt"
	"strings"

	"transgen/internal/language"
	"transgen/internal/parser"
	"transgen/internal/textutil"
)

const armIndent = "            "

// Arm renders one match arm of TranslationService::translate.
func Arm(key string, code language.Code, text string) string {
	return fmt.Sprintf(`%s("%s", Language::%s) => "%s",`, armIndent, key, code.Variant(), textutil.EscapeQuotes(text))
}

// Emit renders one arm per entry and code, in entry order and then in the
// order of codes. A missing translation renders as the entry's key. Each
// entry's arms are followed by an empty separator line.
func Emit(entries []parser.Entry, codes []language.Code) []string {
	lines := make([]string, 0, len(entries)*(len(codes)+1))
	for _, e := range entries {
		for _, c := range codes {
			lines = append(lines, Arm(e.Key, c, e.Translations.Lookup(c, e.Key)))
		}
		lines = append(lines, "")
	}
	return lines
}

// Render joins emitted lines into file content.
func Render(lines []string) string {
	return strings.Join(lines, "\n")
}
