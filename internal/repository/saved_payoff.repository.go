package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"optionpricer/internal/db/models/postgres/public/model"
	"optionpricer/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type SavedPayoffRepository interface {
	Add(m model.SavedPayoff) error
	List(userID uuid.UUID) ([]model.SavedPayoff, error)
}

type savedPayoffRepositoryHandler struct {
	Db *sql.DB
}

func NewSavedPayoffRepository(db *sql.DB) SavedPayoffRepository {
	return savedPayoffRepositoryHandler{db}
}

func (h savedPayoffRepositoryHandler) Add(m model.SavedPayoff) error {
	m.SavedPayoffID = uuid.New()
	m.CreatedAt = time.Now().UTC()

	query := table.SavedPayoff.
		INSERT(table.SavedPayoff.AllColumns).
		MODEL(m)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to insert saved payoff: %w", err)
	}

	return nil
}

func (h savedPayoffRepositoryHandler) List(userID uuid.UUID) ([]model.SavedPayoff, error) {
	query := table.SavedPayoff.
		SELECT(table.SavedPayoff.AllColumns).
		WHERE(table.SavedPayoff.UserID.EQ(postgres.UUID(userID))).
		ORDER_BY(table.SavedPayoff.CreatedAt.DESC())

	out := []model.SavedPayoff{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return out, nil
}
