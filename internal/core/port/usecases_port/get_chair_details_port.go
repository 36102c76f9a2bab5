package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type GetChairDetailsUseCase interface {
	Execute(ctx context.Context, id int64) (*domain.Chair, error)
}
