package everytypes

// ElementPicker resolves an object's live element vector from a picker
// program and flag word, against whichever row a descriptor's data actually
// lives in: the object's own declaration, a collection matter it points at,
// its set's or kind's collection, or its own previous revision.
type ElementPicker struct {
	flags     PickerFlags
	hereElems []Cell
	hereColl  *Cell
	custom    *PickMany
}

// NewElementPicker decodes flags and splits elems into its trailing optional
// slots: [here_elems...] [here_coll?] [custom_picker?].
func NewElementPicker(flags uint32, elems []Cell) (*ElementPicker, error) {
	f, err := DecodePickerFlags(flags)
	if err != nil {
		return nil, err
	}

	rest := append([]Cell(nil), elems...)

	var custom *PickMany
	if f.Custom {
		if len(rest) == 0 {
			return nil, ErrNoCustomPicker
		}
		picker := rest[len(rest)-1]
		rest = rest[:len(rest)-1]
		pm, err := DecodePickMany(&picker)
		if err != nil {
			return nil, err
		}
		custom = &pm
	}

	var hereColl *Cell
	if f.HereColl {
		if len(rest) == 0 {
			return nil, ErrNoHereCollection
		}
		c := rest[len(rest)-1]
		rest = rest[:len(rest)-1]
		hereColl = &c
	}

	return &ElementPicker{flags: f, hereElems: rest, hereColl: hereColl, custom: custom}, nil
}

// Resolve computes the live element vector for oid at desc, dispatching
// through the custom picker program if one is present, else reading the
// flags' single row_from source directly.
func (p *ElementPicker) Resolve(state StateReader, oid OID, desc Descriptor) ([]Cell, error) {
	row := saturatingSub(oid.ID, 1)

	if p.custom == nil {
		return p.pickRow(state, oid, desc, p.flags.RowFrom, row)
	}

	cache := make(map[PickFrom][]Cell)
	out := make([]Cell, 0, len(p.custom.Picks))
	for _, pick := range p.custom.Picks {
		rowData, err := p.pickRowCached(state, oid, desc, pick.Src, row, cache)
		if err != nil {
			return nil, err
		}
		idx := int(pick.Idx)
		if idx >= len(rowData) {
			return nil, &ColOutOfBoundsError{Idx: idx, Width: len(rowData)}
		}
		out = append(out, rowData[idx])
	}
	return out, nil
}

func (p *ElementPicker) pickRowCached(state StateReader, oid OID, desc Descriptor, src PickFrom, row uint64, cache map[PickFrom][]Cell) ([]Cell, error) {
	if cached, ok := cache[src]; ok {
		return cached, nil
	}
	rowData, err := p.pickRow(state, oid, desc, src, row)
	if err != nil {
		return nil, err
	}
	cache[src] = rowData
	return rowData, nil
}

func (p *ElementPicker) pickRow(state StateReader, oid OID, desc Descriptor, src PickFrom, row uint64) ([]Cell, error) {
	switch src {
	case HereElements:
		return p.hereElems, nil
	case HereCollection:
		if p.hereColl == nil {
			return nil, ErrNoHereCollection
		}
		return pickCollRow(state, *p.hereColl, row)
	case SetData:
		_, elems, err := state.GetSnapshot(oid.SetOID(), desc.Srev)
		if err != nil {
			return nil, &StateReaderError{Op: "get_snapshot", Cause: err}
		}
		if len(elems) < 2 {
			return nil, ErrInvalidElementLength
		}
		return pickCollRow(state, elems[1], row)
	case KindData:
		_, elems, err := state.GetSnapshot(oid.KindOID(desc.Kind), desc.Krev)
		if err != nil {
			return nil, &StateReaderError{Op: "get_snapshot", Cause: err}
		}
		if len(elems) < 2 {
			return nil, ErrInvalidElementLength
		}
		return pickCollRow(state, elems[1], row)
	case ObjectData:
		if desc.Rev <= 1 {
			return nil, ErrNoPreviousRevision
		}
		_, prevElems, err := state.GetSnapshot(oid, desc.Rev-1)
		if err != nil {
			return nil, &StateReaderError{Op: "get_snapshot", Cause: err}
		}
		return prevElems, nil
	default:
		return nil, ErrInvalidElementSource
	}
}

func pickCollRow(state StateReader, hash H256, row uint64) ([]Cell, error) {
	matter, err := state.GetMatter(hash)
	if err != nil {
		return nil, &StateReaderError{Op: "get_matter", Cause: err}
	}
	coll, err := ParseCollectionMatter(&matter)
	if err != nil {
		return nil, err
	}
	return coll.RowAt(row)
}

func saturatingSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}
