package usecases_port

import (
	"context"
	"io"
)

type ImportChairsUseCase interface {
	Execute(ctx context.Context, csvData io.Reader) (int, error)
}
