package everytypes

import "fmt"

// Cell is the universal payload unit; both collection codecs address cells
// only. No interior structure is imposed by the codecs — callers assign
// meaning to the 32 bytes.
type Cell = [32]byte

// H256 is a content hash identifying a matter blob.
type H256 = [32]byte

// OID identifies an object within a universe: (universe, set, id).
type OID struct {
	Universe uint64
	Set      uint64
	ID       uint64
}

func (o OID) String() string {
	return fmt.Sprintf("%d.%d.%d", o.Universe, o.Set, o.ID)
}

// SetOID returns the identity of the set this object belongs to.
func (o OID) SetOID() OID {
	return OID{Universe: o.Universe, Set: IDSetOfSet, ID: o.Set}
}

// KindOID returns the identity of the given kind within this object's universe.
func (o OID) KindOID(kind uint64) OID {
	return OID{Universe: o.Universe, Set: IDSetOfKind, ID: kind}
}

// Descriptor is the per-revision metadata pinning kind/set revisions and traits.
type Descriptor struct {
	Traits uint32
	Rev    uint32
	Krev   uint32
	Srev   uint32
	Kind   uint64
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%% kind=%d, rev=%d, krev=%d, srev=%d, traits=0x%x",
		d.Kind, d.Rev, d.Krev, d.Srev, d.Traits)
}

// Matter is an opaque blob plus its form and MIME tag, stored content-addressed
// by H256. Form tags which codec (if any) applies to Blob.
type Matter struct {
	Form uint8
	Mime [31]byte
	Blob []byte
}

func (m Matter) String() string {
	return fmt.Sprintf("@ %s, form=%d, blob=%dB", strFromFixedUnchecked(m.Mime[:]), m.Form, len(m.Blob))
}

// Value describes a fungible value kind.
type Value struct {
	Std      uint8
	Decimals uint8
	Symbol   [30]byte
	Code     H256
	Data     H256
}

// Unique describes a non-fungible value kind.
type Unique struct {
	Std      uint8
	Decimals uint8
	Symbol   [30]byte
	Code     H256
	Data     H256
}

// Arc is a directed relation edge: self --[rel]--> (kind, set, id), keyed by data.
type Arc struct {
	Kind uint64
	Data uint64
	Rel  uint64
	Set  uint64
	ID   uint64
}

func (a Arc) String() string {
	return fmt.Sprintf("<- %d [%d] -- [%d] %d.%d", a.Rel, a.Data, a.Kind, a.Set, a.ID)
}

// Facet associates a selector with the hash of a facet asset blob.
type Facet struct {
	Sel  uint32
	Hash H256
}

func (f Facet) String() string {
	return fmt.Sprintf("<> %08x => 0x%s", f.Sel, shortHex(f.Hash))
}

// sliceFromFixed returns the prefix of buf up to the first zero byte.
func sliceFromFixed(buf []byte) []byte {
	for i, b := range buf {
		if b == 0 {
			return buf[:i]
		}
	}
	return buf
}

func strFromFixedUnchecked(buf []byte) string {
	return string(sliceFromFixed(buf))
}

// ToMime fits input into Matter's 31-byte ASCII MIME field, truncating or
// zero-padding as needed.
func ToMime(input []byte) [31]byte {
	var out [31]byte
	copy(out[:], input)
	return out
}

// ToSymbol fits input into a 30-byte ASCII symbol field.
func ToSymbol(input []byte) [30]byte {
	var out [30]byte
	copy(out[:], input)
	return out
}

func shortHex(h H256) string {
	return fmt.Sprintf("%02x%02x%02x...%02x%02x%02x", h[0], h[1], h[2], h[29], h[30], h[31])
}
