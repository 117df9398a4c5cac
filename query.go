package querable

import "github.com/signadot/querable/token"

// Query resolves path against v using the tok syntax, descending one
// level per recursive call until the path is exhausted or an error
// occurs. Errors propagate unchanged from the frame that produced
// them; the remainder of a path is never attempted after a failed
// descent. Recursion depth equals the number of steps in path.
func Query(v Queryable, path string, tok token.Tokenizer) (Queryable, error) {
	kind, ok := v.QueryKind()
	if !ok {
		return nil, &UnknownTypeError{Path: path}
	}
	st, err := tok.Split(path)
	if err != nil {
		return nil, err
	}
	if st.Step == "" {
		return nil, &EmptyPathError{Kind: kind}
	}
	switch kind {
	case DictionaryKind:
		child, err := v.QueryDict(st.Step)
		if err != nil {
			return nil, err
		}
		if st.Rest == nil {
			// base case
			return child, nil
		}
		return Query(child, *st.Rest, tok)
	case ArrayKind:
		idx, err := tok.ParseIndex(st.Step)
		if err != nil {
			return nil, err
		}
		child, err := v.QueryArray(idx)
		if err != nil {
			return nil, err
		}
		if st.Rest == nil {
			// base case
			return child, nil
		}
		return Query(child, *st.Rest, tok)
	default:
		return nil, &UnknownTypeError{Path: path}
	}
}
