package render

import (
	"github.com/rs/zerolog/log"
)

// Absent is the sentinel meaning "no data available for this fact".
// A fact resolving to Absent (or to an empty string, or whose producer
// returns an error) is omitted from the rendered box.
const Absent = "N/A"

// Value is either a literal display string or a lazy producer evaluated at
// render time. Lazy values let expensive or order-sensitive probes (CPU
// sampling, disk stat) run exactly once, at display time.
type Value struct {
	literal string
	lazy    func() (string, error)
}

// Literal returns a Value that always yields s.
func Literal(s string) Value {
	return Value{literal: s}
}

// Lazy returns a Value backed by a producer. The producer is invoked at most
// once, during rendering; an error result means the fact is absent.
func Lazy(fn func() (string, error)) Value {
	return Value{lazy: fn}
}

// Fact is one labeled piece of displayed information. Label may carry
// styling and an icon glyph but no trailing reset; RenderSection inserts
// the reset between label and value.
type Fact struct {
	Label string
	Value Value
}

// resolve evaluates the value exactly once and reports whether the fact is
// present. Producer errors are downgraded to absent here; they never reach
// the renderer. The cause is logged at debug level so it stays inspectable.
func (f Fact) resolve() (string, bool) {
	s := f.Value.literal
	if f.Value.lazy != nil {
		var err error
		s, err = f.Value.lazy()
		if err != nil {
			log.Debug().Err(err).Str("fact", StripANSI(f.Label)).Msg("fact unavailable")
			return "", false
		}
	}
	if s == "" || s == Absent {
		return "", false
	}
	return s, true
}
