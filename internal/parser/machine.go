package parser

import "maps"

// State is the extractor's position relative to the entry being collected.
type State int

const (
	// Idle means no entry is open.
	Idle State = iota
	// InEntryNoLangs means a key is open but no language line has been seen.
	InEntryNoLangs
	// InEntryWithLangs means a key is open with at least one language.
	InEntryWithLangs
)

func (s State) String() string {
	switch s {
	case InEntryNoLangs:
		return "in-entry-no-langs"
	case InEntryWithLangs:
		return "in-entry-with-langs"
	default:
		return "idle"
	}
}

// Accumulator is the entry under construction.
type Accumulator struct {
	Key          string
	Translations Translations
}

// Output collects what a transition sealed or dropped.
type Output struct {
	Sealed    []Entry
	Discarded []string
}

func (o *Output) merge(other Output) {
	o.Sealed = append(o.Sealed, other.Sealed...)
	o.Discarded = append(o.Discarded, other.Discarded...)
}

// Step applies one classified line to the machine. It never mutates acc; the
// returned accumulator is a fresh value whenever its contents change.
func Step(state State, acc Accumulator, line Line) (State, Accumulator, Output) {
	switch line.Kind {
	case LineKeyOpen:
		out := Finish(state, acc)

		next := Accumulator{Key: line.Key, Translations: maps.Clone(line.Inline)}
		if next.Translations == nil {
			next.Translations = make(Translations)
		}
		nextState := InEntryNoLangs
		if len(next.Translations) > 0 {
			nextState = InEntryWithLangs
		}

		if line.Closed {
			out.merge(Finish(nextState, next))
			return Idle, Accumulator{}, out
		}
		return nextState, next, out

	case LineLang:
		if state == Idle {
			return state, acc, Output{}
		}
		next := Accumulator{Key: acc.Key, Translations: maps.Clone(acc.Translations)}
		if next.Translations == nil {
			next.Translations = make(Translations)
		}
		next.Translations[line.Code] = line.Text
		return InEntryWithLangs, next, Output{}

	case LineClose:
		// A close with nothing collected leaves the key open.
		if state != InEntryWithLangs {
			return state, acc, Output{}
		}
		return Idle, Accumulator{}, Finish(state, acc)
	}

	return state, acc, Output{}
}

// Finish seals or discards whatever is open.
func Finish(state State, acc Accumulator) Output {
	switch state {
	case InEntryWithLangs:
		return Output{Sealed: []Entry{{Key: acc.Key, Translations: acc.Translations}}}
	case InEntryNoLangs:
		return Output{Discarded: []string{acc.Key}}
	default:
		return Output{}
	}
}
