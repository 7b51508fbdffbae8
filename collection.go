package everytypes

// CollectionMatter unifies the ENUM and PERM codecs behind a single row_at
// contract, dispatched on the matter's form byte.
type CollectionMatter struct {
	enum *EnumMatter
	perm *PermMatter
}

// ParseCollectionMatter dispatches on matter.Form to the matching codec.
func ParseCollectionMatter(matter *Matter) (*CollectionMatter, error) {
	switch MatterForm(matter.Form) {
	case FormEnum:
		m, err := ParseEnumMatter(matter.Blob)
		if err != nil {
			return nil, err
		}
		return &CollectionMatter{enum: m}, nil
	case FormPerm:
		m, err := ParsePermMatter(matter.Blob)
		if err != nil {
			return nil, err
		}
		return &CollectionMatter{perm: m}, nil
	default:
		return nil, ErrNotCollection
	}
}

// Rows returns the collection's logical row count.
func (c *CollectionMatter) Rows() int {
	if c.enum != nil {
		return c.enum.Rows()
	}
	return c.perm.Rows()
}

// Cols returns the collection's column count.
func (c *CollectionMatter) Cols() int {
	if c.enum != nil {
		return c.enum.Cols()
	}
	return c.perm.Cols()
}

// RowAt returns the cells of the given logical row, converting the u64 row
// argument to a machine index; an index that doesn't fit reports RowOutOfBounds.
func (c *CollectionMatter) RowAt(row uint64) ([]Cell, error) {
	idx, ok := u64ToInt(row)
	if !ok {
		return nil, ErrRowOutOfBounds
	}
	if c.enum != nil {
		r, err := c.enum.RowAt(idx)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return c.perm.RowAt(idx)
}

func u64ToInt(v uint64) (int, bool) {
	i := int(v)
	if i < 0 || uint64(i) != v {
		return 0, false
	}
	return i, true
}
