package everytypes

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions that carry no extra payload. Use errors.Is
// to test for these, including against the payload-bearing error types below
// that have a matching sentinel (those implement Is against it); the other
// error types are matched with errors.As.
var (
	ErrMatterTooLarge       = errors.New("matter blob exceeds maximum size")
	ErrBadHeader            = errors.New("invalid collection matter header")
	ErrBadAuxTypes          = errors.New("invalid aux types layout (first N must be >0, remaining must be 0)")
	ErrBadColTypes          = errors.New("invalid column types layout (first N must be >0, remaining must be 0)")
	ErrOverflow             = errors.New("arithmetic overflow")
	ErrNotCollection        = errors.New("not a collection matter")
	ErrInvalidElementSource = errors.New("invalid element source")
	ErrInvalidPickerPadding = errors.New("invalid picker byte sequence")
	ErrNoHereCollection     = errors.New("missing here collection")
	ErrNoCustomPicker       = errors.New("missing custom picker")
	ErrNoPreviousRevision   = errors.New("previous revision does not exist")
	ErrRowOutOfBounds       = errors.New("row index out of bounds")
	ErrOobCell              = errors.New("cell out of bounds")
	ErrOobAux               = errors.New("aux index out of bounds")
	ErrColOutOfBounds       = errors.New("column out of bounds for picked row")
	ErrInvalidMutBits       = errors.New("invalid mut bits")
	ErrInvalidElementLength = errors.New("invalid element count")
	ErrResultLengthMismatch = errors.New("result length mismatch")
)

// BadMagicError reports a header whose magic bytes don't match the expected
// form tag ("ENUM" or "PERM").
type BadMagicError struct {
	Want [4]byte
	Got  [4]byte
}

func (e *BadMagicError) Error() string {
	return fmt.Sprintf("bad magic: expected %q (%02X), got %02X", e.Want, e.Want, e.Got)
}

// BadVersionError reports an unsupported header version (only version 1 is accepted).
type BadVersionError struct {
	Got uint8
}

func (e *BadVersionError) Error() string {
	return fmt.Sprintf("unsupported version %d (expected 1)", e.Got)
}

// BadAuxCountError reports an aux count outside 0..=8.
type BadAuxCountError struct {
	Got uint8
}

func (e *BadAuxCountError) Error() string {
	return fmt.Sprintf("aux count %d exceeds maximum of 8", e.Got)
}

// BadColCountError reports a column count outside 0..=16.
type BadColCountError struct {
	Got uint8
}

func (e *BadColCountError) Error() string {
	return fmt.Sprintf("column count %d exceeds maximum of 16", e.Got)
}

// BadBodyError reports a blob whose length doesn't equal the computed
// expected size.
type BadBodyError struct {
	Expect int
	Got    int
}

func (e *BadBodyError) Error() string {
	return fmt.Sprintf("invalid body length: expected %d bytes, got %d bytes", e.Expect, e.Got)
}

// BadColumnHeightError reports a nonzero height declared for a column index
// at or beyond the declared column count.
type BadColumnHeightError struct {
	Col int
}

func (e *BadColumnHeightError) Error() string {
	return fmt.Sprintf("column %d has bad height", e.Col)
}

func (e *BadColumnHeightError) Is(target error) bool { return target == ErrBadHeader }

// OobCellError reports a random-access cell read past the collection's bounds.
type OobCellError struct {
	Row int
	Col int
}

func (e *OobCellError) Error() string {
	return fmt.Sprintf("cell out of bounds at (row=%d, col=%d)", e.Row, e.Col)
}

func (e *OobCellError) Is(target error) bool { return target == ErrOobCell }

// OobAuxError reports a random-access aux read past the declared aux count.
type OobAuxError struct {
	Index int
}

func (e *OobAuxError) Error() string {
	return fmt.Sprintf("aux index out of bounds: %d", e.Index)
}

func (e *OobAuxError) Is(target error) bool { return target == ErrOobAux }

// ColOutOfBoundsError reports a picker instruction whose idx exceeds the
// width of the row it picked from.
type ColOutOfBoundsError struct {
	Idx   int
	Width int
}

func (e *ColOutOfBoundsError) Error() string {
	return fmt.Sprintf("column index %d out of bounds for row of width %d", e.Idx, e.Width)
}

func (e *ColOutOfBoundsError) Is(target error) bool { return target == ErrColOutOfBounds }

// ResultLengthMismatchError reports a patch() call whose resolved vector
// length doesn't match what mut_bits calls for.
type ResultLengthMismatchError struct {
	Want int
	Got  int
}

func (e *ResultLengthMismatchError) Error() string {
	return fmt.Sprintf("result length mismatch: expected %d elements, got %d", e.Want, e.Got)
}

func (e *ResultLengthMismatchError) Is(target error) bool { return target == ErrResultLengthMismatch }

// UnknownDiscriminantError reports a byte that doesn't name any ElementType.
type UnknownDiscriminantError struct {
	Value uint8
}

func (e *UnknownDiscriminantError) Error() string {
	return fmt.Sprintf("unknown discriminant: 0x%02x", e.Value)
}

// NotAMatterFormError reports an ElementType that doesn't name a usable
// Matter.Form.
type NotAMatterFormError struct {
	Type ElementType
}

func (e *NotAMatterFormError) Error() string {
	return fmt.Sprintf("%s is not a MatterForm", e.Type)
}

// StateReaderError wraps an opaque failure from the StateReader boundary;
// the cause is preserved only for %w unwrapping, never inspected by the core.
type StateReaderError struct {
	Op    string // "get_matter" or "get_snapshot"
	Cause error
}

func (e *StateReaderError) Error() string {
	return fmt.Sprintf("state reader: %s: %v", e.Op, e.Cause)
}

func (e *StateReaderError) Unwrap() error { return e.Cause }
