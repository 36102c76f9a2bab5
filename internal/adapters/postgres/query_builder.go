package postgres

import (
	"fmt"
	"strings"

	"listing-service/internal/core/domain"
)

// queryBuilder accumulates a conjunction of $n predicates and their bound
// args. Every client-supplied value goes through a bound parameter; only the
// server-side column names are formatted into the fragment.
type queryBuilder struct {
	conditions []string
	args       []interface{}
	argID      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argID:      1,
		conditions: make([]string, 0, 8),
		args:       make([]interface{}, 0, 8),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argID))
	qb.args = append(qb.args, arg)
	qb.argID++
}

// addRangeFilter emits up to two predicates for a resolved range bucket; a
// side marked unbounded contributes nothing.
func (qb *queryBuilder) addRangeFilter(fieldName string, r *domain.RangeCondition) {
	if r.Min != domain.Unbounded {
		qb.addCondition("%s >= $%d", fieldName, r.Min)
	}
	if r.Max != domain.Unbounded {
		qb.addCondition("%s < $%d", fieldName, r.Max)
	}
}

func (qb *queryBuilder) addExactFilter(fieldName string, value string) {
	if value != "" {
		qb.addCondition("%s = $%d", fieldName, value)
	}
}

// addFeatureFilters comma-splits the facet value; every token becomes its own
// substring predicate, so a row must carry all listed features to match.
func (qb *queryBuilder) addFeatureFilters(fieldName string, features string) {
	if features == "" {
		return
	}
	for _, feature := range strings.Split(features, ",") {
		qb.addCondition("%s LIKE $%d", fieldName, "%"+feature+"%")
	}
}

// addStatic appends a server-controlled predicate with no bound arg.
func (qb *queryBuilder) addStatic(condition string) {
	qb.conditions = append(qb.conditions, condition)
}

func (qb *queryBuilder) empty() bool {
	return len(qb.conditions) == 0
}

func (qb *queryBuilder) build() (string, []interface{}) {
	return strings.Join(qb.conditions, " AND "), qb.args
}

// resolveRangeFilter maps a client range index onto concrete bounds. An index
// outside the facet's range list is a client error carrying the parameter name.
func (qb *queryBuilder) resolveRangeFilter(facet domain.RangeFacet, param string, rangeID *int64, fieldName string) error {
	if rangeID == nil {
		return nil
	}
	r, err := facet.ResolveRange(*rangeID)
	if err != nil {
		return domain.NewValidationError(param, "unknown range id")
	}
	qb.addRangeFilter(fieldName, r)
	return nil
}

// buildChairConditions translates chair search filters into a WHERE fragment.
// A request that produced no predicate at all is rejected; the stock guard is
// forced afterwards so it never counts as a search condition by itself.
func buildChairConditions(cond *domain.ChairSearchCondition, f domain.ChairSearchFilters) (string, []interface{}, error) {
	qb := newQueryBuilder()

	if err := qb.resolveRangeFilter(cond.Price, "priceRangeId", f.PriceRangeID, "price"); err != nil {
		return "", nil, err
	}
	if err := qb.resolveRangeFilter(cond.Height, "heightRangeId", f.HeightRangeID, "height"); err != nil {
		return "", nil, err
	}
	if err := qb.resolveRangeFilter(cond.Width, "widthRangeId", f.WidthRangeID, "width"); err != nil {
		return "", nil, err
	}
	if err := qb.resolveRangeFilter(cond.Depth, "depthRangeId", f.DepthRangeID, "depth"); err != nil {
		return "", nil, err
	}

	qb.addExactFilter("kind", f.Kind)
	qb.addExactFilter("color", f.Color)
	qb.addFeatureFilters("features", f.Features)

	if qb.empty() {
		return "", nil, domain.ErrNoSearchCondition
	}

	qb.addStatic("stock > 0")

	where, args := qb.build()
	return where, args, nil
}

// buildEstateConditions translates estate search filters into a WHERE fragment.
func buildEstateConditions(cond *domain.EstateSearchCondition, f domain.EstateSearchFilters) (string, []interface{}, error) {
	qb := newQueryBuilder()

	if err := qb.resolveRangeFilter(cond.DoorHeight, "doorHeightRangeId", f.DoorHeightRangeID, "door_height"); err != nil {
		return "", nil, err
	}
	if err := qb.resolveRangeFilter(cond.DoorWidth, "doorWidthRangeId", f.DoorWidthRangeID, "door_width"); err != nil {
		return "", nil, err
	}
	if err := qb.resolveRangeFilter(cond.Rent, "rentRangeId", f.RentRangeID, "rent"); err != nil {
		return "", nil, err
	}

	qb.addFeatureFilters("features", f.Features)

	if qb.empty() {
		return "", nil, domain.ErrNoSearchCondition
	}

	where, args := qb.build()
	return where, args, nil
}
