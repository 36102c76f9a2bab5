package domain

// Chair is a catalog row on the chair shard. Stock is mutated by purchases;
// every other field is immutable after import.
type Chair struct {
	ID          int64
	Name        string
	Description string
	Thumbnail   string
	Price       int64
	Height      int64
	Width       int64
	Depth       int64
	Color       string
	Features    string
	Kind        string
	Popularity  int64
	Stock       int64
}

// ChairSearchFilters carries the recognized chair search facets. Nil range ids
// mean the facet was not supplied.
type ChairSearchFilters struct {
	PriceRangeID  *int64
	HeightRangeID *int64
	WidthRangeID  *int64
	DepthRangeID  *int64
	Kind          string
	Color         string
	Features      string
}

// ChairSearchResult pairs the unpaginated match count with one page of rows.
type ChairSearchResult struct {
	Count  int64
	Chairs []Chair
}
