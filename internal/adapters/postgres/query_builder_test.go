package postgres

import (
	"testing"

	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chairTestCondition() *domain.ChairSearchCondition {
	return &domain.ChairSearchCondition{
		Price: domain.RangeFacet{Ranges: []domain.RangeCondition{
			{ID: 0, Min: domain.Unbounded, Max: 3000},
			{ID: 1, Min: 3000, Max: 6000},
			{ID: 2, Min: 6000, Max: domain.Unbounded},
		}},
		Height: domain.RangeFacet{Ranges: []domain.RangeCondition{
			{ID: 0, Min: domain.Unbounded, Max: 80},
			{ID: 1, Min: 80, Max: domain.Unbounded},
		}},
		Width: domain.RangeFacet{Ranges: []domain.RangeCondition{
			{ID: 0, Min: domain.Unbounded, Max: 80},
		}},
		Depth: domain.RangeFacet{Ranges: []domain.RangeCondition{
			{ID: 0, Min: domain.Unbounded, Max: 80},
		}},
	}
}

func estateTestCondition() *domain.EstateSearchCondition {
	return &domain.EstateSearchCondition{
		DoorWidth: domain.RangeFacet{Ranges: []domain.RangeCondition{
			{ID: 0, Min: domain.Unbounded, Max: 80},
			{ID: 1, Min: 80, Max: 110},
		}},
		DoorHeight: domain.RangeFacet{Ranges: []domain.RangeCondition{
			{ID: 0, Min: domain.Unbounded, Max: 80},
		}},
		Rent: domain.RangeFacet{Ranges: []domain.RangeCondition{
			{ID: 0, Min: domain.Unbounded, Max: 50000},
			{ID: 1, Min: 50000, Max: 100000},
		}},
	}
}

func int64Ptr(v int64) *int64 { return &v }

func TestBuildChairConditions(t *testing.T) {
	cond := chairTestCondition()

	t.Run("no filters is rejected", func(t *testing.T) {
		_, _, err := buildChairConditions(cond, domain.ChairSearchFilters{})
		assert.ErrorIs(t, err, domain.ErrNoSearchCondition)
	})

	t.Run("bounded range produces two predicates plus stock guard", func(t *testing.T) {
		where, args, err := buildChairConditions(cond, domain.ChairSearchFilters{
			PriceRangeID: int64Ptr(1),
		})
		require.NoError(t, err)
		assert.Equal(t, "price >= $1 AND price < $2 AND stock > 0", where)
		assert.Equal(t, []interface{}{int64(3000), int64(6000)}, args)
	})

	t.Run("unbounded min emits only the upper bound", func(t *testing.T) {
		where, args, err := buildChairConditions(cond, domain.ChairSearchFilters{
			PriceRangeID: int64Ptr(0),
		})
		require.NoError(t, err)
		assert.Equal(t, "price < $1 AND stock > 0", where)
		assert.Equal(t, []interface{}{int64(3000)}, args)
	})

	t.Run("unknown range id is a client error", func(t *testing.T) {
		_, _, err := buildChairConditions(cond, domain.ChairSearchFilters{
			PriceRangeID: int64Ptr(99),
		})
		require.Error(t, err)
		assert.True(t, domain.IsClientError(err))
		assert.Contains(t, err.Error(), "priceRangeId")
	})

	t.Run("exact and feature filters keep placeholder order", func(t *testing.T) {
		where, args, err := buildChairConditions(cond, domain.ChairSearchFilters{
			Kind:     "office chair",
			Color:    "black",
			Features: "headrest,casters",
		})
		require.NoError(t, err)
		assert.Equal(t, "kind = $1 AND color = $2 AND features LIKE $3 AND features LIKE $4 AND stock > 0", where)
		assert.Equal(t, []interface{}{"office chair", "black", "%headrest%", "%casters%"}, args)
	})

	t.Run("mixed filters count placeholders across facets", func(t *testing.T) {
		where, args, err := buildChairConditions(cond, domain.ChairSearchFilters{
			PriceRangeID:  int64Ptr(1),
			HeightRangeID: int64Ptr(1),
			Kind:          "gaming chair",
		})
		require.NoError(t, err)
		assert.Equal(t, "price >= $1 AND price < $2 AND height >= $3 AND kind = $4 AND stock > 0", where)
		assert.Len(t, args, 4)
	})
}

func TestBuildEstateConditions(t *testing.T) {
	cond := estateTestCondition()

	t.Run("no filters is rejected", func(t *testing.T) {
		_, _, err := buildEstateConditions(cond, domain.EstateSearchFilters{})
		assert.ErrorIs(t, err, domain.ErrNoSearchCondition)
	})

	t.Run("facets resolve in door-height, door-width, rent order", func(t *testing.T) {
		where, args, err := buildEstateConditions(cond, domain.EstateSearchFilters{
			DoorWidthRangeID: int64Ptr(1),
			RentRangeID:      int64Ptr(1),
		})
		require.NoError(t, err)
		assert.Equal(t, "door_width >= $1 AND door_width < $2 AND rent >= $3 AND rent < $4", where)
		assert.Equal(t, []interface{}{int64(80), int64(110), int64(50000), int64(100000)}, args)
	})

	t.Run("feature-only search is a valid condition", func(t *testing.T) {
		where, args, err := buildEstateConditions(cond, domain.EstateSearchFilters{
			Features: "balcony",
		})
		require.NoError(t, err)
		assert.Equal(t, "features LIKE $1", where)
		assert.Equal(t, []interface{}{"%balcony%"}, args)
	})

	t.Run("unknown range id names the parameter", func(t *testing.T) {
		_, _, err := buildEstateConditions(cond, domain.EstateSearchFilters{
			RentRangeID: int64Ptr(-1),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rentRangeId")
	})
}
