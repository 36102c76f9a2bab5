package usecase

import (
	"context"

	"listing-service/internal/core/domain"
)

// fakeChairRepository lets each test override just the calls it cares about.
type fakeChairRepository struct {
	searchFn     func(ctx context.Context, filters domain.ChairSearchFilters, page domain.Pagination) (*domain.ChairSearchResult, error)
	getByIDFn    func(ctx context.Context, id int64) (*domain.Chair, error)
	lowPricedFn  func(ctx context.Context, limit int) ([]domain.Chair, error)
	bulkInsertFn func(ctx context.Context, chairs []domain.Chair) error
	purchaseFn   func(ctx context.Context, id int64) error
	loadSchemaFn func(ctx context.Context, dir string) error
}

func (f *fakeChairRepository) Search(ctx context.Context, filters domain.ChairSearchFilters, page domain.Pagination) (*domain.ChairSearchResult, error) {
	return f.searchFn(ctx, filters, page)
}

func (f *fakeChairRepository) GetByID(ctx context.Context, id int64) (*domain.Chair, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeChairRepository) LowPriced(ctx context.Context, limit int) ([]domain.Chair, error) {
	return f.lowPricedFn(ctx, limit)
}

func (f *fakeChairRepository) BulkInsert(ctx context.Context, chairs []domain.Chair) error {
	return f.bulkInsertFn(ctx, chairs)
}

func (f *fakeChairRepository) Purchase(ctx context.Context, id int64) error {
	return f.purchaseFn(ctx, id)
}

func (f *fakeChairRepository) LoadSchema(ctx context.Context, dir string) error {
	return f.loadSchemaFn(ctx, dir)
}

type fakeEstateRepository struct {
	searchFn          func(ctx context.Context, filters domain.EstateSearchFilters, page domain.Pagination) (*domain.EstateSearchResult, error)
	getByIDFn         func(ctx context.Context, id int64) (*domain.Estate, error)
	lowPricedFn       func(ctx context.Context, limit int) ([]domain.Estate, error)
	bulkInsertFn      func(ctx context.Context, estates []domain.Estate) error
	searchInPolygonFn func(ctx context.Context, coords []domain.Coordinate, limit int) ([]domain.Estate, error)
	recommendFn       func(ctx context.Context, chair *domain.Chair, limit int) ([]domain.Estate, error)
	loadSchemaFn      func(ctx context.Context, dir string) error
}

func (f *fakeEstateRepository) Search(ctx context.Context, filters domain.EstateSearchFilters, page domain.Pagination) (*domain.EstateSearchResult, error) {
	return f.searchFn(ctx, filters, page)
}

func (f *fakeEstateRepository) GetByID(ctx context.Context, id int64) (*domain.Estate, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeEstateRepository) LowPriced(ctx context.Context, limit int) ([]domain.Estate, error) {
	return f.lowPricedFn(ctx, limit)
}

func (f *fakeEstateRepository) BulkInsert(ctx context.Context, estates []domain.Estate) error {
	return f.bulkInsertFn(ctx, estates)
}

func (f *fakeEstateRepository) SearchInPolygon(ctx context.Context, coords []domain.Coordinate, limit int) ([]domain.Estate, error) {
	return f.searchInPolygonFn(ctx, coords, limit)
}

func (f *fakeEstateRepository) RecommendForChair(ctx context.Context, chair *domain.Chair, limit int) ([]domain.Estate, error) {
	return f.recommendFn(ctx, chair, limit)
}

func (f *fakeEstateRepository) LoadSchema(ctx context.Context, dir string) error {
	return f.loadSchemaFn(ctx, dir)
}

// fakePublisher records every published event.
type fakePublisher struct {
	chairEvents  []domain.ChairPurchasedEvent
	estateEvents []domain.EstateDocumentRequestedEvent
	publishErr   error
}

func (f *fakePublisher) PublishChairPurchased(ctx context.Context, event domain.ChairPurchasedEvent) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.chairEvents = append(f.chairEvents, event)
	return nil
}

func (f *fakePublisher) PublishEstateDocumentRequested(ctx context.Context, event domain.EstateDocumentRequestedEvent) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.estateEvents = append(f.estateEvents, event)
	return nil
}

func (f *fakePublisher) Close() error {
	return nil
}
