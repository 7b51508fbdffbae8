package everytypes

// StateReader is the sole external collaborator the resolution engine
// depends on: a read-only view onto content-addressed matter and
// per-revision object state. Implementations back it with whatever storage
// a caller runs (chain state, a local cache, a test double).
type StateReader interface {
	// GetMatter fetches the blob stored under hash.
	GetMatter(hash H256) (Matter, error)
	// GetValue fetches the fungible value kind of oid at rev.
	GetValue(oid OID, rev uint32) (Value, error)
	// GetUnique fetches the non-fungible value kind of oid at rev.
	GetUnique(oid OID, rev uint32) (Unique, error)
	// GetDescriptor fetches the descriptor of oid at rev.
	GetDescriptor(oid OID, rev uint32) (Descriptor, error)
	// GetSnapshot fetches the descriptor and resolved element vector of oid
	// at rev. This and GetMatter are the only methods the picker/resolver
	// engine calls; the rest of the interface exists for the wider boundary
	// this core is one piece of.
	GetSnapshot(oid OID, rev uint32) (Descriptor, []Cell, error)
	// GetTails fetches the outgoing relation edges of oid at rev.
	GetTails(oid OID, rev uint32) ([]Arc, error)
	// GetFacets fetches the facet index of oid at rev.
	GetFacets(oid OID, rev uint32) ([]Facet, error)
	// GetFacet fetches the facet asset blob selected by sel.
	GetFacet(oid OID, rev uint32, sel uint32) (Matter, error)
	// GetKindContract fetches the kind contract matter governing oid at rev.
	GetKindContract(oid OID, rev uint32) (Matter, error)
}
