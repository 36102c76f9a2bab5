package domain

import (
	"encoding/json"
	"fmt"
	"os"
)

// Fixed result limits shared by the list endpoints.
const (
	LowPricedLimit = 20
	RecommendLimit = 20
	NazotteLimit   = 50
)

// Unbounded marks a range side with no limit in the condition fixtures.
const Unbounded = -1

// RangeCondition is one selectable {min,max} bucket of a range facet.
type RangeCondition struct {
	ID  int64 `json:"id"`
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// RangeFacet is an ordered list of range buckets, addressed by index.
type RangeFacet struct {
	Prefix string           `json:"prefix"`
	Suffix string           `json:"suffix"`
	Ranges []RangeCondition `json:"ranges"`
}

// ResolveRange returns the bucket for a client-supplied range index, or
// ErrNotFound when the index is out of bounds.
func (f RangeFacet) ResolveRange(index int64) (*RangeCondition, error) {
	if index < 0 || index >= int64(len(f.Ranges)) {
		return nil, ErrNotFound
	}
	r := f.Ranges[index]
	return &r, nil
}

// ListFacet is an exact-match facet with a fixed vocabulary.
type ListFacet struct {
	List []string `json:"list"`
}

// ChairSearchCondition is the chair facet catalog, loaded once at startup.
type ChairSearchCondition struct {
	Width   RangeFacet `json:"width"`
	Height  RangeFacet `json:"height"`
	Depth   RangeFacet `json:"depth"`
	Price   RangeFacet `json:"price"`
	Color   ListFacet  `json:"color"`
	Feature ListFacet  `json:"feature"`
	Kind    ListFacet  `json:"kind"`
}

// EstateSearchCondition is the estate facet catalog, loaded once at startup.
type EstateSearchCondition struct {
	DoorWidth  RangeFacet `json:"doorWidth"`
	DoorHeight RangeFacet `json:"doorHeight"`
	Rent       RangeFacet `json:"rent"`
	Feature    ListFacet  `json:"feature"`
}

// LoadCondition reads a condition fixture into v and returns the raw bytes so
// the search-condition endpoints can serve the file verbatim.
func LoadCondition(path string, v any) (json.RawMessage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read condition fixture %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, fmt.Errorf("failed to parse condition fixture %s: %w", path, err)
	}
	return raw, nil
}
