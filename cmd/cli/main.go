package main

import (
	"encoding/json"
	"fmt"
	"os"

	"optionpricer/internal/calculator"
	"optionpricer/internal/domain"
	"optionpricer/internal/service"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "optionpricer",
	Short: "Monte Carlo option pricing from the command line",
}

var priceFlags = struct {
	spot             float64
	strike           float64
	riskFreeRate     float64
	volatility       float64
	maturity         float64
	numSimulations   int
	payoffExpression string
	seed             uint64
}{}

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price a single payoff and print the result as json",
	RunE: func(c *cobra.Command, args []string) error {
		req := domain.PricingRequest{
			Spot:             priceFlags.spot,
			Strike:           priceFlags.strike,
			RiskFreeRate:     priceFlags.riskFreeRate,
			Volatility:       priceFlags.volatility,
			Maturity:         priceFlags.maturity,
			NumSimulations:   priceFlags.numSimulations,
			PayoffExpression: priceFlags.payoffExpression,
		}

		result, err := newPricingService().Price(c.Context(), req, nil)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

type batchRow struct {
	Spot             float64 `csv:"spot"`
	Strike           float64 `csv:"strike"`
	RiskFreeRate     float64 `csv:"riskFreeRate"`
	Volatility       float64 `csv:"volatility"`
	Maturity         float64 `csv:"maturity"`
	NumSimulations   int     `csv:"numSimulations"`
	PayoffExpression string  `csv:"payoffExpression"`
	Price            float64 `csv:"price"`
	StandardError    float64 `csv:"standardError"`
	Error            string  `csv:"error"`
}

var batchCmd = &cobra.Command{
	Use:   "batch [input.csv]",
	Short: "Price every row of a csv and write results csv to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		rows := []*batchRow{}
		if err := gocsv.UnmarshalFile(f, &rows); err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}

		pricingService := newPricingService()
		for _, row := range rows {
			req := domain.PricingRequest{
				Spot:             row.Spot,
				Strike:           row.Strike,
				RiskFreeRate:     row.RiskFreeRate,
				Volatility:       row.Volatility,
				Maturity:         row.Maturity,
				NumSimulations:   row.NumSimulations,
				PayoffExpression: row.PayoffExpression,
			}
			result, err := pricingService.Price(c.Context(), req, nil)
			if err != nil {
				row.Error = err.Error()
				continue
			}
			row.Price = result.Price
			row.StandardError = result.StandardError
		}

		return gocsv.Marshal(&rows, os.Stdout)
	},
}

func newPricingService() service.PricingService {
	if priceFlags.seed != 0 {
		return service.NewPricingService(nil, calculator.NewSeededNormalSource(priceFlags.seed))
	}
	return service.NewPricingService(nil, calculator.NewNormalSource())
}

func main() {
	priceCmd.Flags().Float64Var(&priceFlags.spot, "spot", 100, "current underlying price")
	priceCmd.Flags().Float64Var(&priceFlags.strike, "strike", 100, "strike price")
	priceCmd.Flags().Float64Var(&priceFlags.riskFreeRate, "rate", 0.03, "annualized risk-free rate")
	priceCmd.Flags().Float64Var(&priceFlags.volatility, "vol", 0.2, "annualized volatility")
	priceCmd.Flags().Float64Var(&priceFlags.maturity, "maturity", 1, "time to maturity in years")
	priceCmd.Flags().IntVar(&priceFlags.numSimulations, "simulations", 50000, "number of monte carlo paths")
	priceCmd.Flags().StringVar(&priceFlags.payoffExpression, "payoff", "maximum(S_T - K, 0)", "payoff expression over S_T")
	priceCmd.Flags().Uint64Var(&priceFlags.seed, "seed", 0, "rng seed, 0 for non-deterministic")
	batchCmd.Flags().Uint64Var(&priceFlags.seed, "seed", 0, "rng seed, 0 for non-deterministic")
	rootCmd.AddCommand(priceCmd, batchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
