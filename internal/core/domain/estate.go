package domain

// Estate is a catalog row on the estate shard. The spatial point and geohash
// columns are derived from latitude/longitude at write time and never leave
// the repository layer.
type Estate struct {
	ID          int64
	Name        string
	Description string
	Thumbnail   string
	Address     string
	Latitude    float64
	Longitude   float64
	Rent        int64
	DoorHeight  int64
	DoorWidth   int64
	Features    string
	Popularity  int64
}

// EstateSearchFilters carries the recognized estate search facets.
type EstateSearchFilters struct {
	DoorHeightRangeID *int64
	DoorWidthRangeID  *int64
	RentRangeID       *int64
	Features          string
}

// EstateSearchResult pairs the unpaginated match count with one page of rows.
type EstateSearchResult struct {
	Count   int64
	Estates []Estate
}

// Coordinate is a single vertex of a nazotte polygon.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
