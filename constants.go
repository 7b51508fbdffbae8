package everytypes

import "math"

// Reserved set IDs.
const (
	IDSetOfSet    uint64 = 1
	IDSetOfKind   uint64 = 2
	IDSetOfRel    uint64 = 3
	IDSetOfValue  uint64 = 4
	IDSetOfUnique uint64 = 5
)

// Reserved kind IDs.
const (
	IDKindOfSet    uint64 = 1
	IDKindOfKind   uint64 = 2
	IDKindOfRel    uint64 = 3
	IDKindOfValue  uint64 = 4
	IDKindOfUnique uint64 = 5
)

// System-reserved ID ceilings.
const (
	IDSetSystemMax  uint64 = 16
	IDKindSystemMax uint64 = 16
	IDRelSystemMax  uint64 = 16
)

// General ID constants.
const (
	IDUnspecified uint64 = 0
	IDMin         uint64 = 1
	IDMax         uint64 = math.MaxUint64 - 1
	IDWildcard    uint64 = math.MaxUint64
)

// Revision markers.
const (
	RevNew       uint32 = 1
	RevDestroyed uint32 = math.MaxUint32
)

// Capacities. Most of these bound subsystems outside this core's scope
// (relations, adjacency, tails, facets); they're named here because the
// wider system shares one constants table. Only ElemSpecCapacity
// (picker_flags.go, patch.go) and MatterBlobMax (enum_matter.go,
// perm_matter.go) are enforced by any type in this package.
const (
	ElemSpecCapacity = 16
	RelSpecCapacity  = 8
	AdjSpecCapacity  = 8
	TailCapacity     = 1024
	FacetCapacity    = 16
	MatterSpecSize   = 32
	MatterBlobMax    = 1024 * 1024 * 10
)
