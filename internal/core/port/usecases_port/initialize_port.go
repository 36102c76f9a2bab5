package usecases_port

import "context"

type InitializeUseCase interface {
	Execute(ctx context.Context) error
}
