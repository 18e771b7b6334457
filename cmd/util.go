package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"optionpricer/api"
	"optionpricer/internal/calculator"
	"optionpricer/internal/repository"
	"optionpricer/internal/service"
	"optionpricer/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(secrets.ChatGPTApiKey)
	if err != nil {
		return nil, err
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	pricingHistoryRepository := repository.NewPricingHistoryRepository(dbConn)
	savedPayoffRepository := repository.NewSavedPayoffRepository(dbConn)
	quoteRepository := repository.NewQuoteRepository()

	var alpacaRepository repository.AlpacaRepository
	if secrets.Alpaca.ApiKey != "" {
		alpacaRepository = repository.NewAlpacaRepository(
			secrets.Alpaca.ApiKey,
			secrets.Alpaca.ApiSecret,
			secrets.Alpaca.Endpoint,
		)
	}

	pricingService := service.NewPricingService(
		pricingHistoryRepository,
		calculator.NewNormalSource(),
	)

	apiHandler := &api.ApiHandler{
		Db:                       dbConn,
		PricingService:           pricingService,
		PricingHistoryRepository: pricingHistoryRepository,
		QuoteRepository:          quoteRepository,
		AlpacaRepository:         alpacaRepository,
		GptRepository:            gptRepository,
		SavedPayoffRepository:    savedPayoffRepository,
		ApiRequestRepository:     repository.ApiRequestRepositoryHandler{},
		JwtSecret:                secrets.JwtSecret,
	}

	return apiHandler, nil
}
