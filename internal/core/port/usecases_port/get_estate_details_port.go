package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type GetEstateDetailsUseCase interface {
	Execute(ctx context.Context, id int64) (*domain.Estate, error)
}
