package everytypes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementTypeFromByteValid(t *testing.T) {
	for _, v := range []uint8{0x01, 0x02, 0xC0, 0xD0, 0xD1, 0xE1, 0xE2, 0xE3, 0xE4, 0xE5, 0xFE, 0xFF} {
		et, err := ElementTypeFromByte(v)
		assert.NoError(t, err)
		assert.Equal(t, ElementType(v), et)
	}
}

func TestElementTypeFromByteInvalid(t *testing.T) {
	_, err := ElementTypeFromByte(0x42)
	assert.Error(t, err)
	var udErr *UnknownDiscriminantError
	assert.True(t, errors.As(err, &udErr))
	assert.Equal(t, uint8(0x42), udErr.Value)
}

func TestElementTypePredicates(t *testing.T) {
	assert.True(t, ElemJson.IsMatter())
	assert.True(t, ElemJson.IsSimpleMatter())
	assert.False(t, ElemJson.IsComplexMatter())

	assert.True(t, ElemWasm.IsMatter())
	assert.True(t, ElemWasm.IsComplexMatter())
	assert.True(t, ElemEnum.IsComplexMatter())
	assert.True(t, ElemPerm.IsComplexMatter())

	assert.True(t, ElemSet.IsObject())
	assert.True(t, ElemSet.IsMetaObject())
	assert.False(t, ElemSet.IsPlainObject())

	assert.True(t, ElemPlain.IsObject())
	assert.True(t, ElemPlain.IsPlainObject())
	assert.False(t, ElemPlain.IsMetaObject())

	assert.True(t, ElemInfo.IsInfo())
	assert.False(t, ElemJson.IsInfo())
}

func TestAsMatterFormRoundTrip(t *testing.T) {
	for _, e := range []ElementType{ElemJson, ElemImage, ElemWasm, ElemEnum, ElemPerm} {
		mf, err := e.AsMatterForm()
		assert.NoError(t, err)
		assert.Equal(t, e, mf.ElementType())
	}
}

func TestAsMatterFormRejectsNonCodec(t *testing.T) {
	_, err := ElemSet.AsMatterForm()
	assert.Error(t, err)
	var nfErr *NotAMatterFormError
	assert.True(t, errors.As(err, &nfErr))
}

func TestMatterFormFromByte(t *testing.T) {
	mf, err := MatterFormFromByte(0xD0)
	assert.NoError(t, err)
	assert.Equal(t, FormEnum, mf)

	_, err = MatterFormFromByte(0xE1)
	assert.Error(t, err)
}

func TestElementTypeString(t *testing.T) {
	assert.Equal(t, "Enum", ElemEnum.String())
	assert.Contains(t, ElementType(0x42).String(), "0x42")
}
