package usecases_port

import (
	"context"
	"io"
)

type ImportEstatesUseCase interface {
	Execute(ctx context.Context, csvData io.Reader) (int, error)
}
