package querable

import "fmt"

// QueryKind classifies how a value can be descended into: by key
// (dictionary-like) or by position (array-like). Leaves have no kind;
// Queryable.QueryKind reports them with a false comma-ok.
type QueryKind int

const (
	DictionaryKind QueryKind = iota
	ArrayKind
)

func (k QueryKind) String() string {
	s, ok := map[QueryKind]string{
		DictionaryKind: "Dictionary",
		ArrayKind:      "Array",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k QueryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *QueryKind) UnmarshalText(d []byte) error {
	kk, ok := map[string]QueryKind{
		"Dictionary": DictionaryKind,
		"Array":      ArrayKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []QueryKind {
	return []QueryKind{DictionaryKind, ArrayKind}
}
