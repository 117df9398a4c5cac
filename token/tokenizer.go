package token

// State is the result of splitting a path: the leading step and, when
// the path continues past it, the remainder. A nil Rest marks the base
// case, the last step of the path.
type State struct {
	Step string
	Rest *string
}

// Tokenizer defines a path syntax. Split is invoked on every descent
// frame; ParseIndex only on steps extracted over array-like values.
// Strategies are stateless and safe for concurrent use.
type Tokenizer interface {
	// ParseIndex parses a position step extracted by Split into a
	// non-negative array index. Malformed or out-of-range input fails
	// with *IndexError; nothing is clamped or defaulted.
	ParseIndex(step string) (int, error)

	// Split extracts the leading step of path at the first occurrence
	// of the syntax's separator. Empty paths, empty or whitespace-only
	// steps, and broken separator usage fail with *KeyError.
	Split(path string) (State, error)
}
