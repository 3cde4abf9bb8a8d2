package emitter

import (
	"strings"
	"testing"

	"transgen/internal/language"
	"transgen/internal/parser"

	"github.com/stretchr/testify/require"
)

var scenario = []parser.Entry{
	{Key: "greeting", Translations: parser.Translations{
		language.English: "Hello",
		language.Luganda: "Nnyo",
		language.Swahili: "Habari",
	}},
	{Key: "farewell", Translations: parser.Translations{
		language.English: "Bye",
	}},
}

func TestEmitScenario(t *testing.T) {
	got := Emit(scenario, language.All())

	require.Equal(t, []string{
		`            ("greeting", Language::English) => "Hello",`,
		`            ("greeting", Language::Luganda) => "Nnyo",`,
		`            ("greeting", Language::Swahili) => "Habari",`,
		``,
		`            ("farewell", Language::English) => "Bye",`,
		`            ("farewell", Language::Luganda) => "farewell",`,
		`            ("farewell", Language::Swahili) => "farewell",`,
		``,
	}, got)
}

func TestEmitOneArmPerKeyAndLanguage(t *testing.T) {
	lines := Emit(scenario, language.All())

	for _, e := range scenario {
		for _, c := range language.All() {
			prefix := `("` + e.Key + `", Language::` + c.Variant() + `)`
			count := 0
			for _, l := range lines {
				if strings.Contains(l, prefix) {
					count++
				}
			}
			require.Equal(t, 1, count, prefix)
		}
	}
}

func TestEmitOrderFollowsEntriesAndCodes(t *testing.T) {
	entries := []parser.Entry{
		{Key: "b", Translations: parser.Translations{language.Swahili: "B"}},
		{Key: "a", Translations: parser.Translations{language.Swahili: "A"}},
	}

	got := Emit(entries, []language.Code{language.Swahili, language.English})
	require.Equal(t, []string{
		`            ("b", Language::Swahili) => "B",`,
		`            ("b", Language::English) => "b",`,
		``,
		`            ("a", Language::Swahili) => "A",`,
		`            ("a", Language::English) => "a",`,
		``,
	}, got)
}

func TestEmitEscaping(t *testing.T) {
	entries := []parser.Entry{{Key: "help", Translations: parser.Translations{
		language.English: `Reply \"0\" to go back\nThanks`,
		language.Luganda: `Nyiga "0"`,
	}}}

	got := Emit(entries, []language.Code{language.English, language.Luganda})
	require.Equal(t, `            ("help", Language::English) => "Reply \"0\" to go back\nThanks",`, got[0])
	require.Equal(t, `            ("help", Language::Luganda) => "Nyiga \"0\"",`, got[1])
}

func TestEmitKeepsRawBytes(t *testing.T) {
	entries := []parser.Entry{{Key: "cafe", Translations: parser.Translations{
		language.English: "caf\xe9 \"x\"",
	}}}

	got := Emit(entries, []language.Code{language.English})
	require.Equal(t, "            (\"cafe\", Language::English) => \"caf\xe9 \\\"x\\\"\",", got[0])
}

func TestEmitEmpty(t *testing.T) {
	require.Empty(t, Emit(nil, language.All()))
	require.Equal(t, "", Render(Emit(nil, language.All())))
}

func TestRender(t *testing.T) {
	out := Render(Emit(scenario[1:], []language.Code{language.English}))
	require.Equal(t, "            (\"farewell\", Language::English) => \"Bye\",\n", out)
}

func TestEmitIsDeterministic(t *testing.T) {
	first := Render(Emit(scenario, language.All()))
	for i := 0; i < 20; i++ {
		require.Equal(t, first, Render(Emit(scenario, language.All())))
	}
}
