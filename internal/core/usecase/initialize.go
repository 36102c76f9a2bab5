package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
)

// InitializeUseCase resets both shards by replaying the SQL files of sqlDir.
type InitializeUseCase struct {
	chairs  port.ChairRepositoryPort
	estates port.EstateRepositoryPort
	sqlDir  string
}

func NewInitializeUseCase(chairs port.ChairRepositoryPort, estates port.EstateRepositoryPort, sqlDir string) *InitializeUseCase {
	return &InitializeUseCase{chairs: chairs, estates: estates, sqlDir: sqlDir}
}

func (uc *InitializeUseCase) Execute(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "Initialize",
		"sql_dir":  uc.sqlDir,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.chairs.LoadSchema(ctx, uc.sqlDir); err != nil {
		ucLogger.Error("Failed to reset chair shard", err, nil)
		return err
	}
	if err := uc.estates.LoadSchema(ctx, uc.sqlDir); err != nil {
		ucLogger.Error("Failed to reset estate shard", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)

	return nil
}
