package everytypes

const (
	permMagic         = "PERM"
	permCellSize      = 32
	permHeaderSizeMin = 32
	permHeaderSizeMax = 64
)

// PermColumn describes one column of a PERM collection: whether it
// participates in the Cartesian product (a perm column) or is addressed
// directly by the caller's row (an enum column), and where its cells live
// within the column-major cell region.
type PermColumn struct {
	ColIdx    uint8
	ColType   uint8
	PermCol   bool
	PermIdx   uint8 // index among perm columns only, in column order
	ColOffset int    // cells before this column
	ColHeight int    // cells in this column
}

// PermMatterHeader is the parsed, derived shape of a PERM blob: its raw
// header fields plus the per-column metadata computed from them.
type PermMatterHeader struct {
	Magic      [4]byte
	Ver        uint8
	Aux        uint8
	Cols       uint8
	EnumCols   uint16
	AuxTypes   [8]uint8
	ColTypes   [16]uint8
	Heights    [16]uint16 // valid only for indices < Cols
	Columns    []PermColumn
	PermCols   []PermColumn
	Rows       int // product of col_height over perm columns (empty product = 1)
	SumHeights int // sum of col_height over all columns
}

// HeaderEnd is 32 when Cols==0, else 64 (the column-heights block is only
// present when there's at least one column).
func (h *PermMatterHeader) HeaderEnd() int {
	if h.Cols == 0 {
		return permHeaderSizeMin
	}
	return permHeaderSizeMax
}

func (h *PermMatterHeader) AuxBegin() int { return h.HeaderEnd() }
func (h *PermMatterHeader) AuxEnd() int   { return h.AuxBegin() + int(h.Aux)*permCellSize }
func (h *PermMatterHeader) ColBegin() int { return h.AuxEnd() }
func (h *PermMatterHeader) ColEnd() int   { return h.ColBegin() + h.SumHeights*permCellSize }

// ColInfo returns the metadata for column col, or nil if out of range.
func (h *PermMatterHeader) ColInfo(col int) *PermColumn {
	if col < 0 || col >= len(h.Columns) {
		return nil
	}
	return &h.Columns[col]
}

// RowToIndexes decomposes a logical row into one per-column cell index,
// using mixed-radix decoding over the perm columns in reverse column order.
// Enum columns are addressed directly by the caller's row value, unchanged.
func (h *PermMatterHeader) RowToIndexes(row int) ([]int, error) {
	if row < 0 || row >= h.Rows {
		return nil, ErrOverflow
	}
	idxs := make([]int, len(h.Columns))
	r := row
	for c := len(h.Columns) - 1; c >= 0; c-- {
		ci := &h.Columns[c]
		if ci.PermCol {
			hgt := ci.ColHeight
			idxs[c] = r % hgt
			r /= hgt
		} else {
			idxs[c] = row
		}
	}
	return idxs, nil
}

// RowToIndex decomposes a logical row and returns only the index for col.
func (h *PermMatterHeader) RowToIndex(row, col int) (int, error) {
	if row < 0 || row >= h.Rows || col < 0 || col >= len(h.Columns) {
		return 0, ErrOverflow
	}
	idxs, err := h.RowToIndexes(row)
	if err != nil {
		return 0, err
	}
	return idxs[col], nil
}

// ParsePermMatterHeader validates and extracts a PERM header (32 or 64
// bytes) and derives its column metadata. It does not validate body length.
//
// A declared column height of 0 is accepted. A zero-height perm column makes
// Rows 0, so every row access then fails the row >= Rows bounds check with
// ErrOverflow.
func ParsePermMatterHeader(blob []byte) (PermMatterHeader, error) {
	var h PermMatterHeader
	if len(blob) < permHeaderSizeMin {
		return h, ErrBadHeader
	}

	c := cursor{buf: blob}
	magic, _ := c.eatBytes(4)
	copy(h.Magic[:], magic)
	if string(h.Magic[:]) != permMagic {
		return h, &BadMagicError{Want: [4]byte{'P', 'E', 'R', 'M'}, Got: h.Magic}
	}

	verAux, _ := c.eatU8()
	h.Ver = verAux >> 4
	h.Aux = verAux & 0x0F
	if h.Ver != 1 {
		return h, &BadVersionError{Got: h.Ver}
	}
	if h.Aux > 8 {
		return h, &BadAuxCountError{Got: h.Aux}
	}

	cols, _ := c.eatU8()
	h.Cols = cols
	if h.Cols > 16 {
		return h, &BadColCountError{Got: h.Cols}
	}

	enumCols, _ := c.eatU16LE()
	h.EnumCols = enumCols

	auxTypes, _ := c.eatBytes(8)
	copy(h.AuxTypes[:], auxTypes)
	if !leftPacked(h.AuxTypes[:], int(h.Aux)) {
		return h, ErrBadAuxTypes
	}

	colTypes, _ := c.eatBytes(16)
	copy(h.ColTypes[:], colTypes)
	if !leftPacked(h.ColTypes[:], int(h.Cols)) {
		return h, ErrBadColTypes
	}

	if h.Cols > 0 {
		if len(blob) < permHeaderSizeMax {
			return h, ErrBadHeader
		}
		for i := 0; i < 16; i++ {
			v, _ := c.eatU16LE()
			h.Heights[i] = v
			if i >= int(h.Cols) && v != 0 {
				return h, &BadColumnHeightError{Col: i}
			}
		}
	}

	cols32 := int(h.Cols)
	h.Columns = make([]PermColumn, 0, cols32)
	colOffset := 0
	var permIdx uint8
	rows := 1
	sumHeights := 0
	for i := 0; i < cols32; i++ {
		height := int(h.Heights[i])
		permCol := h.EnumCols&(1<<(15-i)) == 0
		col := PermColumn{
			ColIdx:    uint8(i),
			ColType:   h.ColTypes[i],
			PermCol:   permCol,
			PermIdx:   permIdx,
			ColOffset: colOffset,
			ColHeight: height,
		}
		if permCol {
			permIdx++
			var ok bool
			rows, ok = mulOverflow(rows, height)
			if !ok {
				return h, ErrOverflow
			}
		}
		var ok bool
		sumHeights, ok = addOverflow(sumHeights, height)
		if !ok {
			return h, ErrOverflow
		}
		colOffset += height
		h.Columns = append(h.Columns, col)
	}
	if cols32 == 0 {
		rows = 1
	}

	var permCols []PermColumn
	for _, col := range h.Columns {
		if col.PermCol {
			permCols = append(permCols, col)
		}
	}

	h.Rows = rows
	h.SumHeights = sumHeights
	h.PermCols = permCols
	return h, nil
}

func addOverflow(a, b int) (int, bool) {
	r := a + b
	if r < a {
		return 0, false
	}
	return r, true
}

// PermMatter is a parsed PERM blob: header, optional aux cells, and the
// column-major cell region.
type PermMatter struct {
	Header  PermMatterHeader
	auxData []byte
	colData []byte
}

// ParsePermMatter parses a complete PERM blob, validating that its length
// matches the header's computed shape exactly.
func ParsePermMatter(blob []byte) (*PermMatter, error) {
	if len(blob) > MatterBlobMax {
		return nil, ErrMatterTooLarge
	}

	header, err := ParsePermMatterHeader(blob)
	if err != nil {
		return nil, err
	}

	expectLen := header.ColEnd()
	if len(blob) != expectLen {
		return nil, &BadBodyError{Expect: expectLen, Got: len(blob)}
	}

	return &PermMatter{
		Header:  header,
		auxData: blob[header.AuxBegin():header.AuxEnd()],
		colData: blob[header.ColBegin():header.ColEnd()],
	}, nil
}

func (m *PermMatter) Aux() int  { return int(m.Header.Aux) }
func (m *PermMatter) Cols() int { return len(m.Header.Columns) }
func (m *PermMatter) Rows() int { return m.Header.Rows }

// AuxAt returns the 32-byte aux cell at index i.
func (m *PermMatter) AuxAt(i int) (*Cell, error) {
	if i < 0 || i >= m.Aux() {
		return nil, &OobAuxError{Index: i}
	}
	off := i * permCellSize
	var cell Cell
	copy(cell[:], m.auxData[off:off+permCellSize])
	return &cell, nil
}

// CellAt resolves the cell at logical (row, col) via mixed-radix decoding.
func (m *PermMatter) CellAt(row, col int) (*Cell, error) {
	index, err := m.Header.RowToIndex(row, col)
	if err != nil {
		return nil, err
	}
	ci := m.Header.ColInfo(col)
	if ci == nil {
		return nil, &OobCellError{Row: row, Col: col}
	}
	off := (ci.ColOffset + index) * permCellSize
	if off+permCellSize > len(m.colData) {
		return nil, &OobCellError{Row: row, Col: col}
	}
	var cell Cell
	copy(cell[:], m.colData[off:off+permCellSize])
	return &cell, nil
}

// RowAt synthesizes the logical row's cells across all columns.
func (m *PermMatter) RowAt(row int) ([]Cell, error) {
	idxs, err := m.Header.RowToIndexes(row)
	if err != nil {
		return nil, err
	}
	out := make([]Cell, len(idxs))
	for col, index := range idxs {
		ci := m.Header.ColInfo(col)
		off := (ci.ColOffset + index) * permCellSize
		if off+permCellSize > len(m.colData) {
			return nil, &OobCellError{Row: row, Col: col}
		}
		copy(out[col][:], m.colData[off:off+permCellSize])
	}
	return out, nil
}
