package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/metrics"
)

const chairCSVFields = 13

type ImportChairsUseCase struct {
	chairs port.ChairRepositoryPort
}

func NewImportChairsUseCase(chairs port.ChairRepositoryPort) *ImportChairsUseCase {
	return &ImportChairsUseCase{chairs: chairs}
}

// Execute parses the whole CSV stream before touching storage, so a malformed
// row rejects the entire batch.
func (uc *ImportChairsUseCase) Execute(ctx context.Context, csvData io.Reader) (int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ImportChairs",
	})

	ucLogger.Info("Use case started", nil)

	reader := csv.NewReader(csvData)
	reader.FieldsPerRecord = chairCSVFields

	var chairs []domain.Chair
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			ucLogger.Warn("Malformed CSV record", port.Fields{"error": err.Error()})
			return 0, domain.NewValidationError("chairs", "malformed CSV record")
		}

		chair, err := parseChairRecord(record)
		if err != nil {
			ucLogger.Warn("Malformed CSV record", port.Fields{"error": err.Error()})
			return 0, domain.NewValidationError("chairs", err.Error())
		}
		chairs = append(chairs, chair)
	}

	if len(chairs) == 0 {
		ucLogger.Info("Use case finished successfully", port.Fields{"imported": 0})
		return 0, nil
	}

	if err := uc.chairs.BulkInsert(ctx, chairs); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return 0, err
	}

	metrics.RowsImportedTotal.WithLabelValues("chair").Add(float64(len(chairs)))
	ucLogger.Info("Use case finished successfully", port.Fields{
		"imported": len(chairs),
	})

	return len(chairs), nil
}

func parseChairRecord(record []string) (domain.Chair, error) {
	numeric := make([]int64, 0, 7)
	for _, idx := range []int{0, 4, 5, 6, 7, 11, 12} {
		v, err := strconv.ParseInt(record[idx], 10, 64)
		if err != nil {
			return domain.Chair{}, fmt.Errorf("field %d is not an integer: %q", idx, record[idx])
		}
		numeric = append(numeric, v)
	}

	return domain.Chair{
		ID:          numeric[0],
		Name:        record[1],
		Description: record[2],
		Thumbnail:   record[3],
		Price:       numeric[1],
		Height:      numeric[2],
		Width:       numeric[3],
		Depth:       numeric[4],
		Color:       record[8],
		Features:    record[9],
		Kind:        record[10],
		Popularity:  numeric[5],
		Stock:       numeric[6],
	}, nil
}
