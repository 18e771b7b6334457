package service

import (
	"context"
	"fmt"

	"optionpricer/internal/calculator"
	"optionpricer/internal/db/models/postgres/public/model"
	"optionpricer/internal/domain"
	"optionpricer/internal/expression"
	"optionpricer/internal/logger"
	"optionpricer/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingService is the boundary the presentation layer calls into: raw
// request in, PricingResult or a structured error out. Never panics across
// this boundary.
type PricingService interface {
	Price(ctx context.Context, req domain.PricingRequest, requestID *uuid.UUID) (*domain.PricingResult, error)
}

type pricingServiceHandler struct {
	HistoryRepository repository.PricingHistoryRepository
	Normals           calculator.NormalSource
}

func NewPricingService(
	historyRepository repository.PricingHistoryRepository,
	normals calculator.NormalSource,
) PricingService {
	return pricingServiceHandler{
		HistoryRepository: historyRepository,
		Normals:           normals,
	}
}

func (h pricingServiceHandler) Price(
	ctx context.Context,
	req domain.PricingRequest,
	requestID *uuid.UUID,
) (*domain.PricingResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payoff, err := expression.Compile(req.PayoffExpression, expression.Env{
		K:  req.Strike,
		S0: req.Spot,
		R:  req.RiskFreeRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compile payoff expression: %w", err)
	}

	result, err := calculator.RunMonteCarlo(req, payoff, h.Normals)
	if err != nil {
		return nil, fmt.Errorf("failed to run simulation: %w", err)
	}

	h.recordHistory(ctx, requestID, result)

	return result, nil
}

// recordHistory persists the call for later inspection. A db outage must
// not fail a pricing call that already succeeded, so failures only warn.
func (h pricingServiceHandler) recordHistory(
	ctx context.Context,
	requestID *uuid.UUID,
	result *domain.PricingResult,
) {
	if h.HistoryRepository == nil {
		return
	}

	req := result.Request
	m := model.PricingHistory{
		RequestID:        requestID,
		Spot:             decimal.NewFromFloat(req.Spot),
		Strike:           decimal.NewFromFloat(req.Strike),
		RiskFreeRate:     req.RiskFreeRate,
		Volatility:       req.Volatility,
		Maturity:         req.Maturity,
		NumSimulations:   int32(req.NumSimulations),
		PayoffExpression: req.PayoffExpression,
		Price:            decimal.NewFromFloat(result.Price),
		StandardError:    decimal.NewFromFloat(result.StandardError),
		MeanPayoff:       decimal.NewFromFloat(result.MeanPayoff),
	}

	if err := h.HistoryRepository.Add(m); err != nil {
		logger.FromContext(ctx).Warnf("failed to record pricing history: %v", err)
	}
}
