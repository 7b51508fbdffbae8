package everytypes

import "fmt"

// ElementType is the discriminant byte for every kind of element this system
// stores: matter (simple or complex), meta-object, plain object, or info.
//
// Two divergent tag tables exist in the retrieved source for this system
// (one assigning collections to 0xD0/0xD1 and meta-objects to 0xE1..0xE5,
// another assigning them to 0xE0/0xE1 and 0xF1..0xF5). This implementation
// commits to the former — it is the table spec.md's own ENUM/PERM examples
// use (form=0xD0 for ENUM) — see DESIGN.md.
type ElementType uint8

const (
	// Simple matter.
	ElemJson  ElementType = 0x01
	ElemImage ElementType = 0x02

	// Code.
	ElemWasm ElementType = 0xC0

	// Data collection.
	ElemEnum ElementType = 0xD0
	ElemPerm ElementType = 0xD1

	// Meta objects.
	ElemSet      ElementType = 0xE1
	ElemKind     ElementType = 0xE2
	ElemRelation ElementType = 0xE3
	ElemValue    ElementType = 0xE4
	ElemUnique   ElementType = 0xE5

	// Plain object.
	ElemPlain ElementType = 0xFE

	// Information.
	ElemInfo ElementType = 0xFF
)

func (e ElementType) String() string {
	switch e {
	case ElemJson:
		return "Json"
	case ElemImage:
		return "Image"
	case ElemWasm:
		return "Wasm"
	case ElemEnum:
		return "Enum"
	case ElemPerm:
		return "Perm"
	case ElemSet:
		return "Set"
	case ElemKind:
		return "Kind"
	case ElemRelation:
		return "Relation"
	case ElemValue:
		return "Value"
	case ElemUnique:
		return "Unique"
	case ElemPlain:
		return "Plain"
	case ElemInfo:
		return "Info"
	default:
		return fmt.Sprintf("ElementType(0x%02X)", uint8(e))
	}
}

// IsMatter reports whether e names a matter discriminant, simple or complex.
func (e ElementType) IsMatter() bool {
	return e.IsSimpleMatter() || e.IsComplexMatter()
}

// IsSimpleMatter reports whether e is a simple, self-describing matter form.
func (e ElementType) IsSimpleMatter() bool {
	return e >= 0x01 && e <= 0xBF
}

// IsComplexMatter reports whether e is code or a data-collection matter form.
func (e ElementType) IsComplexMatter() bool {
	return e >= 0xC0 && e <= 0xDF
}

// IsObject reports whether e names a meta-object or the plain-object discriminant.
func (e ElementType) IsObject() bool {
	return e.IsMetaObject() || e.IsPlainObject()
}

// IsMetaObject reports whether e names one of the system meta-object kinds
// (Set, Kind, Relation, Value, Unique).
func (e ElementType) IsMetaObject() bool {
	return e >= 0xE1 && e <= 0xED
}

// IsPlainObject reports whether e is the plain-object discriminant.
func (e ElementType) IsPlainObject() bool {
	return e == ElemPlain
}

// IsInfo reports whether e is the information discriminant.
func (e ElementType) IsInfo() bool {
	return e == ElemInfo
}

// ElementTypeFromByte validates v against the closed discriminant set.
func ElementTypeFromByte(v uint8) (ElementType, error) {
	switch ElementType(v) {
	case ElemJson, ElemImage, ElemWasm, ElemEnum, ElemPerm,
		ElemSet, ElemKind, ElemRelation, ElemValue, ElemUnique,
		ElemPlain, ElemInfo:
		return ElementType(v), nil
	default:
		return 0, &UnknownDiscriminantError{Value: v}
	}
}

// MatterForm is the subset of ElementType usable as Matter.Form: the codecs
// and validators this core understands.
type MatterForm uint8

const (
	FormJson  MatterForm = MatterForm(ElemJson)
	FormImage MatterForm = MatterForm(ElemImage)
	FormWasm  MatterForm = MatterForm(ElemWasm)
	FormEnum  MatterForm = MatterForm(ElemEnum)
	FormPerm  MatterForm = MatterForm(ElemPerm)
)

func (f MatterForm) String() string {
	return ElementType(f).String()
}

// MatterFormFromByte validates v against the closed MatterForm set.
func MatterFormFromByte(v uint8) (MatterForm, error) {
	switch MatterForm(v) {
	case FormJson, FormImage, FormWasm, FormEnum, FormPerm:
		return MatterForm(v), nil
	default:
		return 0, &UnknownDiscriminantError{Value: v}
	}
}

// ElementType widens a MatterForm back to the full discriminant set.
func (f MatterForm) ElementType() ElementType {
	return ElementType(f)
}

// AsMatterForm narrows e to a MatterForm, failing if e doesn't name a codec
// or validator this core understands.
func (e ElementType) AsMatterForm() (MatterForm, error) {
	switch e {
	case ElemJson, ElemImage, ElemWasm, ElemEnum, ElemPerm:
		return MatterForm(e), nil
	default:
		return 0, &NotAMatterFormError{Type: e}
	}
}
