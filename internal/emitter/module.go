package emitter

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"transgen/internal/language"
	"transgen/internal/parser"
)

//go:embed translations.rs.tmpl
var moduleSource string

var moduleTemplate = template.Must(template.New("translations.rs").Parse(moduleSource))

type moduleLanguage struct {
	Code    string
	Variant string
}

type moduleData struct {
	Languages []moduleLanguage
	Default   string
	Arms      string
}

// RenderModule renders a complete Rust translations module: the Language
// enum and TranslationService::translate holding the emitted arms.
func RenderModule(entries []parser.Entry, codes []language.Code) (string, error) {
	if len(codes) == 0 {
		return "", errors.New("render module: no languages")
	}

	data := moduleData{
		Default: codes[0].Variant(),
		Arms:    strings.TrimRight(Render(Emit(entries, codes)), "\n"),
	}
	for _, c := range codes {
		data.Languages = append(data.Languages, moduleLanguage{Code: c.String(), Variant: c.Variant()})
	}

	var b strings.Builder
	if err := moduleTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render module: %w", err)
	}
	return b.String(), nil
}
