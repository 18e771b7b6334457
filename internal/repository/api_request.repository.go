package repository

import (
	"fmt"
	"time"

	"optionpricer/internal/db/models/postgres/public/model"
	"optionpricer/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type ApiRequestRepository interface {
	Add(db qrm.Executable, m model.APIRequest) (*model.APIRequest, error)
	Update(db qrm.Executable, m model.APIRequest) error
}

type ApiRequestRepositoryHandler struct{}

func (h ApiRequestRepositoryHandler) Add(db qrm.Executable, m model.APIRequest) (*model.APIRequest, error) {
	if m.APIRequestID == uuid.Nil {
		m.APIRequestID = uuid.New()
	}
	if m.StartTs.IsZero() {
		m.StartTs = time.Now().UTC()
	}

	query := table.APIRequest.
		INSERT(table.APIRequest.AllColumns).
		MODEL(m)

	_, err := query.Exec(db)
	if err != nil {
		return nil, fmt.Errorf("failed to insert api request: %w", err)
	}

	return &m, nil
}

func (h ApiRequestRepositoryHandler) Update(db qrm.Executable, m model.APIRequest) error {
	query := table.APIRequest.
		UPDATE(table.APIRequest.MutableColumns).
		MODEL(m).
		WHERE(table.APIRequest.APIRequestID.EQ(postgres.UUID(m.APIRequestID)))

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to update api request: %w", err)
	}

	return nil
}
