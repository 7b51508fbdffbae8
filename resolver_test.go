package everytypes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockStateReader is a testify/mock double for StateReader, used the same
// way the original engine's tests used mockall expectations against its
// trait.
type mockStateReader struct {
	mock.Mock
}

func (m *mockStateReader) GetMatter(hash H256) (Matter, error) {
	args := m.Called(hash)
	return args.Get(0).(Matter), args.Error(1)
}

func (m *mockStateReader) GetValue(oid OID, rev uint32) (Value, error) {
	args := m.Called(oid, rev)
	return args.Get(0).(Value), args.Error(1)
}

func (m *mockStateReader) GetUnique(oid OID, rev uint32) (Unique, error) {
	args := m.Called(oid, rev)
	return args.Get(0).(Unique), args.Error(1)
}

func (m *mockStateReader) GetDescriptor(oid OID, rev uint32) (Descriptor, error) {
	args := m.Called(oid, rev)
	return args.Get(0).(Descriptor), args.Error(1)
}

func (m *mockStateReader) GetSnapshot(oid OID, rev uint32) (Descriptor, []Cell, error) {
	args := m.Called(oid, rev)
	var elems []Cell
	if v := args.Get(1); v != nil {
		elems = v.([]Cell)
	}
	return args.Get(0).(Descriptor), elems, args.Error(2)
}

func (m *mockStateReader) GetTails(oid OID, rev uint32) ([]Arc, error) {
	args := m.Called(oid, rev)
	return args.Get(0).([]Arc), args.Error(1)
}

func (m *mockStateReader) GetFacets(oid OID, rev uint32) ([]Facet, error) {
	args := m.Called(oid, rev)
	return args.Get(0).([]Facet), args.Error(1)
}

func (m *mockStateReader) GetFacet(oid OID, rev uint32, sel uint32) (Matter, error) {
	args := m.Called(oid, rev, sel)
	return args.Get(0).(Matter), args.Error(1)
}

func (m *mockStateReader) GetKindContract(oid OID, rev uint32) (Matter, error) {
	args := m.Called(oid, rev)
	return args.Get(0).(Matter), args.Error(1)
}

func cellWithTag(b byte) Cell {
	var c Cell
	c[31] = b
	return c
}

func TestResolveFromHereCollection(t *testing.T) {
	flags := PickerFlags{RowFrom: HereCollection, HereColl: true}.Encode()
	coll := cellWithTag(0x01)
	coll[0] = 0xAB // stands in for the collection's content hash

	picker, err := NewElementPicker(flags, []Cell{coll})
	require.NoError(t, err)

	blob := buildEnumBlob([]byte{1}, []byte{1, 2}, 2)
	state := new(mockStateReader)
	state.On("GetMatter", H256(coll)).Return(Matter{Form: byte(FormEnum), Blob: blob}, nil)

	oid := OID{Universe: 31337, Set: 17, ID: 1}
	desc := Descriptor{Kind: 17, Rev: 1, Krev: 1, Srev: 1}

	out, err := picker.Resolve(state, oid, desc)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, byte(0), out[0][31])
	assert.Equal(t, byte(1), out[1][31])
	state.AssertExpectations(t)
}

func TestResolveFromHereElements(t *testing.T) {
	flags := PickerFlags{RowFrom: HereElements}.Encode()
	elems := []Cell{cellWithTag(1), cellWithTag(2)}
	picker, err := NewElementPicker(flags, elems)
	require.NoError(t, err)

	state := new(mockStateReader)
	oid := OID{Universe: 31337, Set: 17, ID: 1}
	desc := Descriptor{Kind: 17, Rev: 1}

	out, err := picker.Resolve(state, oid, desc)
	require.NoError(t, err)
	assert.Equal(t, elems, out)
}

func TestResolveObjectDataRejectsFirstRevision(t *testing.T) {
	flags := PickerFlags{RowFrom: ObjectData}.Encode()
	picker, err := NewElementPicker(flags, nil)
	require.NoError(t, err)

	state := new(mockStateReader)
	oid := OID{Universe: 31337, Set: 17, ID: 1}
	desc := Descriptor{Kind: 17, Rev: 1}

	_, err = picker.Resolve(state, oid, desc)
	assert.ErrorIs(t, err, ErrNoPreviousRevision)
}

func TestResolveObjectDataReadsPreviousRevision(t *testing.T) {
	flags := PickerFlags{RowFrom: ObjectData}.Encode()
	picker, err := NewElementPicker(flags, nil)
	require.NoError(t, err)

	state := new(mockStateReader)
	oid := OID{Universe: 31337, Set: 17, ID: 1}
	desc := Descriptor{Kind: 17, Rev: 3}
	prevElems := []Cell{cellWithTag(9)}
	state.On("GetSnapshot", oid, uint32(2)).Return(Descriptor{}, prevElems, nil)

	out, err := picker.Resolve(state, oid, desc)
	require.NoError(t, err)
	assert.Equal(t, prevElems, out)
}

func TestResolveCustomPickerCachesPerSource(t *testing.T) {
	flags := PickerFlags{RowFrom: HereCollection, HereColl: true, Custom: true}.Encode()
	many := PickMany{Picks: []PickOne{
		{Src: HereCollection, Idx: 0},
		{Src: HereCollection, Idx: 1},
	}}
	picker32 := many.Encode()
	coll := cellWithTag(0x01)
	coll[0] = 0xCD // stands in for the collection's content hash
	elems := []Cell{coll, picker32}

	picker, err := NewElementPicker(flags, elems)
	require.NoError(t, err)

	blob := buildEnumBlob([]byte{1}, []byte{1, 2}, 1)
	state := new(mockStateReader)
	state.On("GetMatter", H256(coll)).Return(Matter{Form: byte(FormEnum), Blob: blob}, nil).Once()

	oid := OID{Universe: 31337, Set: 17, ID: 1}
	desc := Descriptor{Kind: 17, Rev: 1}

	out, err := picker.Resolve(state, oid, desc)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, byte(0), out[0][31])
	assert.Equal(t, byte(1), out[1][31])

	// Both picks draw from the same source (HereCollection), so the
	// per-call cache must satisfy the second pick without a second read.
	state.AssertNumberOfCalls(t, "GetMatter", 1)
	state.AssertExpectations(t)
}

func TestResolveCustomPickerColOutOfBounds(t *testing.T) {
	flags := PickerFlags{RowFrom: HereElements, Custom: true}.Encode()
	many := PickMany{Picks: []PickOne{{Src: HereElements, Idx: 5}}}
	picker32 := many.Encode()
	elems := []Cell{cellWithTag(0x11), picker32}

	picker, err := NewElementPicker(flags, elems)
	require.NoError(t, err)

	state := new(mockStateReader)
	oid := OID{Universe: 31337, Set: 17, ID: 1}
	desc := Descriptor{Kind: 17, Rev: 1}

	_, err = picker.Resolve(state, oid, desc)
	var colErr *ColOutOfBoundsError
	assert.True(t, errors.As(err, &colErr))
}

func TestNewElementPickerMissingHereCollection(t *testing.T) {
	flags := PickerFlags{RowFrom: HereCollection, HereColl: true}.Encode()
	_, err := NewElementPicker(flags, nil)
	assert.ErrorIs(t, err, ErrNoHereCollection)
}

func TestNewElementPickerMissingCustomPicker(t *testing.T) {
	flags := PickerFlags{RowFrom: HereElements, Custom: true}.Encode()
	_, err := NewElementPicker(flags, nil)
	assert.ErrorIs(t, err, ErrNoCustomPicker)
}
