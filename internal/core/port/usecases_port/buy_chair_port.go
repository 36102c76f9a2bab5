package usecases_port

import "context"

type BuyChairUseCase interface {
	Execute(ctx context.Context, id int64, email string) error
}
