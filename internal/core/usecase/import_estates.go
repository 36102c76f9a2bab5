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

const estateCSVFields = 12

type ImportEstatesUseCase struct {
	estates port.EstateRepositoryPort
}

func NewImportEstatesUseCase(estates port.EstateRepositoryPort) *ImportEstatesUseCase {
	return &ImportEstatesUseCase{estates: estates}
}

func (uc *ImportEstatesUseCase) Execute(ctx context.Context, csvData io.Reader) (int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ImportEstates",
	})

	ucLogger.Info("Use case started", nil)

	reader := csv.NewReader(csvData)
	reader.FieldsPerRecord = estateCSVFields

	var estates []domain.Estate
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			ucLogger.Warn("Malformed CSV record", port.Fields{"error": err.Error()})
			return 0, domain.NewValidationError("estates", "malformed CSV record")
		}

		estate, err := parseEstateRecord(record)
		if err != nil {
			ucLogger.Warn("Malformed CSV record", port.Fields{"error": err.Error()})
			return 0, domain.NewValidationError("estates", err.Error())
		}
		estates = append(estates, estate)
	}

	if len(estates) == 0 {
		ucLogger.Info("Use case finished successfully", port.Fields{"imported": 0})
		return 0, nil
	}

	if err := uc.estates.BulkInsert(ctx, estates); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return 0, err
	}

	metrics.RowsImportedTotal.WithLabelValues("estate").Add(float64(len(estates)))
	ucLogger.Info("Use case finished successfully", port.Fields{
		"imported": len(estates),
	})

	return len(estates), nil
}

func parseEstateRecord(record []string) (domain.Estate, error) {
	intField := func(idx int) (int64, error) {
		v, err := strconv.ParseInt(record[idx], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("field %d is not an integer: %q", idx, record[idx])
		}
		return v, nil
	}
	floatField := func(idx int) (float64, error) {
		v, err := strconv.ParseFloat(record[idx], 64)
		if err != nil {
			return 0, fmt.Errorf("field %d is not a number: %q", idx, record[idx])
		}
		return v, nil
	}

	id, err := intField(0)
	if err != nil {
		return domain.Estate{}, err
	}
	latitude, err := floatField(5)
	if err != nil {
		return domain.Estate{}, err
	}
	longitude, err := floatField(6)
	if err != nil {
		return domain.Estate{}, err
	}
	rent, err := intField(7)
	if err != nil {
		return domain.Estate{}, err
	}
	doorHeight, err := intField(8)
	if err != nil {
		return domain.Estate{}, err
	}
	doorWidth, err := intField(9)
	if err != nil {
		return domain.Estate{}, err
	}
	popularity, err := intField(11)
	if err != nil {
		return domain.Estate{}, err
	}

	return domain.Estate{
		ID:          id,
		Name:        record[1],
		Description: record[2],
		Thumbnail:   record[3],
		Address:     record[4],
		Latitude:    latitude,
		Longitude:   longitude,
		Rent:        rent,
		DoorHeight:  doorHeight,
		DoorWidth:   doorWidth,
		Features:    record[10],
		Popularity:  popularity,
	}, nil
}
