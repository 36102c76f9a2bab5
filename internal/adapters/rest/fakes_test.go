package rest

import (
	"context"
	"io"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// testLogger satisfies port.LoggerPort and discards everything.
type testLogger struct{}

func (l *testLogger) Info(msg string, fields port.Fields)             {}
func (l *testLogger) Warn(msg string, fields port.Fields)             {}
func (l *testLogger) Error(msg string, err error, fields port.Fields) {}
func (l *testLogger) Debug(msg string, fields port.Fields)            {}
func (l *testLogger) WithFields(fields port.Fields) port.LoggerPort   { return l }

type fakeSearchChairsUC struct {
	fn func(ctx context.Context, filters domain.ChairSearchFilters, page domain.Pagination) (*domain.ChairSearchResult, error)
}

func (f *fakeSearchChairsUC) Execute(ctx context.Context, filters domain.ChairSearchFilters, page domain.Pagination) (*domain.ChairSearchResult, error) {
	return f.fn(ctx, filters, page)
}

type fakeGetChairDetailsUC struct {
	fn func(ctx context.Context, id int64) (*domain.Chair, error)
}

func (f *fakeGetChairDetailsUC) Execute(ctx context.Context, id int64) (*domain.Chair, error) {
	return f.fn(ctx, id)
}

type fakeBuyChairUC struct {
	fn func(ctx context.Context, id int64, email string) error
}

func (f *fakeBuyChairUC) Execute(ctx context.Context, id int64, email string) error {
	return f.fn(ctx, id, email)
}

type fakeImportChairsUC struct {
	fn func(ctx context.Context, csvData io.Reader) (int, error)
}

func (f *fakeImportChairsUC) Execute(ctx context.Context, csvData io.Reader) (int, error) {
	return f.fn(ctx, csvData)
}

type fakeLowPricedChairsUC struct {
	fn func(ctx context.Context) ([]domain.Chair, error)
}

func (f *fakeLowPricedChairsUC) Execute(ctx context.Context) ([]domain.Chair, error) {
	return f.fn(ctx)
}

type fakeSearchEstatesUC struct {
	fn func(ctx context.Context, filters domain.EstateSearchFilters, page domain.Pagination) (*domain.EstateSearchResult, error)
}

func (f *fakeSearchEstatesUC) Execute(ctx context.Context, filters domain.EstateSearchFilters, page domain.Pagination) (*domain.EstateSearchResult, error) {
	return f.fn(ctx, filters, page)
}

type fakeGetEstateDetailsUC struct {
	fn func(ctx context.Context, id int64) (*domain.Estate, error)
}

func (f *fakeGetEstateDetailsUC) Execute(ctx context.Context, id int64) (*domain.Estate, error) {
	return f.fn(ctx, id)
}

type fakeNazotteUC struct {
	fn func(ctx context.Context, coordinates []domain.Coordinate) (*domain.EstateSearchResult, error)
}

func (f *fakeNazotteUC) Execute(ctx context.Context, coordinates []domain.Coordinate) (*domain.EstateSearchResult, error) {
	return f.fn(ctx, coordinates)
}

type fakeRequestDocumentUC struct {
	fn func(ctx context.Context, id int64, email string) error
}

func (f *fakeRequestDocumentUC) Execute(ctx context.Context, id int64, email string) error {
	return f.fn(ctx, id, email)
}

type fakeImportEstatesUC struct {
	fn func(ctx context.Context, csvData io.Reader) (int, error)
}

func (f *fakeImportEstatesUC) Execute(ctx context.Context, csvData io.Reader) (int, error) {
	return f.fn(ctx, csvData)
}

type fakeLowPricedEstatesUC struct {
	fn func(ctx context.Context) ([]domain.Estate, error)
}

func (f *fakeLowPricedEstatesUC) Execute(ctx context.Context) ([]domain.Estate, error) {
	return f.fn(ctx)
}

type fakeRecommendEstatesUC struct {
	fn func(ctx context.Context, chairID int64) ([]domain.Estate, error)
}

func (f *fakeRecommendEstatesUC) Execute(ctx context.Context, chairID int64) ([]domain.Estate, error) {
	return f.fn(ctx, chairID)
}

type fakeInitializeUC struct {
	fn func(ctx context.Context) error
}

func (f *fakeInitializeUC) Execute(ctx context.Context) error {
	return f.fn(ctx)
}
