package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"optionpricer/internal/db/models/postgres/public/model"
	"optionpricer/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type PricingHistoryRepository interface {
	Add(m model.PricingHistory) error
	List(limit int64) ([]model.PricingHistory, error)
}

type pricingHistoryRepositoryHandler struct {
	Db *sql.DB
}

func NewPricingHistoryRepository(db *sql.DB) PricingHistoryRepository {
	return pricingHistoryRepositoryHandler{db}
}

func (h pricingHistoryRepositoryHandler) Add(m model.PricingHistory) error {
	m.PricingHistoryID = uuid.New()
	m.CreatedAt = time.Now().UTC()

	query := table.PricingHistory.
		INSERT(table.PricingHistory.AllColumns).
		MODEL(m)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to insert pricing history: %w", err)
	}

	return nil
}

func (h pricingHistoryRepositoryHandler) List(limit int64) ([]model.PricingHistory, error) {
	query := table.PricingHistory.
		SELECT(table.PricingHistory.AllColumns).
		ORDER_BY(table.PricingHistory.CreatedAt.DESC()).
		LIMIT(limit)

	out := []model.PricingHistory{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return out, nil
}
