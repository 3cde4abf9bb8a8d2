package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"transgen/internal/textutil"

	"github.com/rs/zerolog/log"
)

// DefaultHeader is the declaration that opens the translation table.
const DefaultHeader = "private static translations: Translations ="

// ErrBlockNotFound means the source has no region running from the header to "};".
var ErrBlockNotFound = errors.New("translation block not found")

// Extractor pulls translation entries out of the block opened by a header.
type Extractor struct {
	header string
	block  *regexp.Regexp
}

// NewExtractor builds an Extractor for header. Whitespace inside the header
// matches any run of whitespace.
func NewExtractor(header string) (*Extractor, error) {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return nil, errors.New("block header is empty")
	}

	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = regexp.QuoteMeta(f)
	}

	pattern := `(?s)` + strings.Join(quoted, `\s+`) + `\s*\{(.*?)\};`
	block, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile block pattern: %w", err)
	}

	return &Extractor{header: header, block: block}, nil
}

// Extract locates the block in source and returns its entries in encounter
// order.
func (e *Extractor) Extract(source string) (*Result, error) {
	m := e.block.FindStringSubmatch(source)
	if m == nil {
		return nil, fmt.Errorf("%w: header %q", ErrBlockNotFound, e.header)
	}

	result := &Result{}
	state, acc := Idle, Accumulator{}

	for _, raw := range strings.Split(m[1], "\n") {
		var out Output
		state, acc, out = Step(state, acc, Classify(raw))
		result.add(out)
	}
	result.add(Finish(state, acc))

	for _, key := range result.Discarded {
		log.Warn().Str("key", textutil.Truncate(key, 40)).Msg("Dropped key with no translations")
	}
	log.Debug().
		Int("entries", len(result.Entries)).
		Int("discarded", len(result.Discarded)).
		Msg("Extracted translation block")

	return result, nil
}

func (r *Result) add(out Output) {
	r.Entries = append(r.Entries, out.Sealed...)
	r.Discarded = append(r.Discarded, out.Discarded...)
}

// Extract runs an Extractor built for DefaultHeader.
func Extract(source string) (*Result, error) {
	e, err := NewExtractor(DefaultHeader)
	if err != nil {
		return nil, err
	}
	return e.Extract(source)
}
