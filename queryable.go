package querable

// Queryable is the contract a tree value implements to be resolvable.
//
// QueryDict and QueryArray descend exactly one level and return a value
// of the same queryable type, detached from the receiver's tree.
// Implementations map absence to *KeyNotExistError/*IndexNotExistError,
// shape mismatch (indexing a dictionary, keying an array) to *TypeError,
// and descent into a leaf to *UnknownTypeError.
type Queryable interface {
	// QueryKind classifies the value. The comma-ok is false for
	// leaves, which can never be descended into. Classification is a
	// pure function of the value's shape, never of the path.
	QueryKind() (QueryKind, bool)

	// QueryDict returns the child under key.
	QueryDict(key string) (Queryable, error)

	// QueryArray returns the child at index idx.
	QueryArray(idx int) (Queryable, error)
}
