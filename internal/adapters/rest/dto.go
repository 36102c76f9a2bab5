package rest

import "listing-service/internal/core/domain"

// ChairResponse is the API shape of a chair row.
type ChairResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Price       int64  `json:"price"`
	Height      int64  `json:"height"`
	Width       int64  `json:"width"`
	Depth       int64  `json:"depth"`
	Color       string `json:"color"`
	Features    string `json:"features"`
	Kind        string `json:"kind"`
	Popularity  int64  `json:"popularity"`
	Stock       int64  `json:"stock"`
}

// EstateResponse is the API shape of an estate row. Door dimensions are
// camelCased and the stored point/geohash columns are never exposed.
type EstateResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Thumbnail   string  `json:"thumbnail"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Rent        int64   `json:"rent"`
	DoorHeight  int64   `json:"doorHeight"`
	DoorWidth   int64   `json:"doorWidth"`
	Features    string  `json:"features"`
	Popularity  int64   `json:"popularity"`
}

type ChairSearchResponse struct {
	Count  int64           `json:"count"`
	Chairs []ChairResponse `json:"chairs"`
}

type ChairListResponse struct {
	Chairs []ChairResponse `json:"chairs"`
}

type EstateSearchResponse struct {
	Count   int64            `json:"count"`
	Estates []EstateResponse `json:"estates"`
}

type EstateListResponse struct {
	Estates []EstateResponse `json:"estates"`
}

type InitializeResponse struct {
	Language string `json:"language"`
}

func toChairResponse(c domain.Chair) ChairResponse {
	return ChairResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Thumbnail:   c.Thumbnail,
		Price:       c.Price,
		Height:      c.Height,
		Width:       c.Width,
		Depth:       c.Depth,
		Color:       c.Color,
		Features:    c.Features,
		Kind:        c.Kind,
		Popularity:  c.Popularity,
		Stock:       c.Stock,
	}
}

func toEstateResponse(e domain.Estate) EstateResponse {
	return EstateResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Thumbnail:   e.Thumbnail,
		Address:     e.Address,
		Latitude:    e.Latitude,
		Longitude:   e.Longitude,
		Rent:        e.Rent,
		DoorHeight:  e.DoorHeight,
		DoorWidth:   e.DoorWidth,
		Features:    e.Features,
		Popularity:  e.Popularity,
	}
}

// Empty result sets serialize as [] rather than null.
func toChairResponses(chairs []domain.Chair) []ChairResponse {
	out := make([]ChairResponse, 0, len(chairs))
	for _, c := range chairs {
		out = append(out, toChairResponse(c))
	}
	return out
}

func toEstateResponses(estates []domain.Estate) []EstateResponse {
	out := make([]EstateResponse, 0, len(estates))
	for _, e := range estates {
		out = append(out, toEstateResponse(e))
	}
	return out
}
