package usecases

import (
	"context"

	"github.com/smartlock-inc/smartlock/internal/application/badge/dto"
)

type ScanCardExecutor interface {
	Execute(ctx context.Context, cmd ScanCardCommand) (*dto.ScanResultDTO, error)
}

type ListPendingCardsExecutor interface {
	Execute(ctx context.Context) ([]*dto.PendingCardDTO, error)
}

type AssignCardExecutor interface {
	Execute(ctx context.Context, cmd AssignCardCommand) (*dto.PendingCardDTO, error)
}

var (
	_ ScanCardExecutor         = (*ScanCardUseCase)(nil)
	_ ListPendingCardsExecutor = (*ListPendingCardsUseCase)(nil)
	_ AssignCardExecutor       = (*AssignCardUseCase)(nil)
)
