package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/finscope/finscope/internal/provider"
	"github.com/finscope/finscope/internal/render"
	"github.com/finscope/finscope/pkg/models"
	"github.com/finscope/finscope/pkg/utils"
)

var fundamentalCmd = &cobra.Command{
	Use:   "fundamental [symbol]",
	Short: "Get fundamental data",
	Long: `Fetch company fundamentals: financial statements (default), valuation
ratios, key metrics, or revenue/profit trend.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol := utils.NormalizeSymbol(args[0])

		ratios, _ := cmd.Flags().GetBool("ratios")
		metrics, _ := cmd.Flags().GetBool("metrics")
		trend, _ := cmd.Flags().GetBool("trend")

		params := fetchParams(cmd)
		params[provider.ParamSymbol] = symbol
		if period, _ := cmd.Flags().GetString("period"); period != "" {
			params[provider.ParamPeriod] = period
		}

		switch {
		case ratios:
			res, err := fetchModel(cmd, provider.ModelFinancialRatios, params)
			if err != nil {
				return err
			}
			r, err := dataAs[*models.FinancialRatios](res)
			if err != nil {
				return err
			}
			return emit(cmd, render.RatiosTable(r))

		case metrics:
			res, err := fetchModel(cmd, provider.ModelKeyMetrics, params)
			if err != nil {
				return err
			}
			m, err := dataAs[*models.KeyMetrics](res)
			if err != nil {
				return err
			}
			return emit(cmd, render.MetricsTable(m))

		case trend:
			res, err := fetchModel(cmd, provider.ModelRevenueTrend, params)
			if err != nil {
				return err
			}
			points, err := dataAs[[]models.RevenueTrendPoint](res)
			if err != nil {
				return err
			}
			return emit(cmd, render.TrendTable(symbol, points))

		default:
			return printStatements(cmd, symbol, params)
		}
	},
}

// printStatements fetches and prints all three financial statements. The
// --output flag exports whichever table was printed last with data.
func printStatements(cmd *cobra.Command, symbol string, params provider.QueryParams) error {
	res, err := fetchModel(cmd, provider.ModelBalanceSheet, params)
	if err != nil {
		return err
	}
	sheets, err := dataAs[[]models.BalanceSheet](res)
	if err != nil {
		return err
	}
	render.BalanceSheetTable(symbol, sheets).Print(os.Stdout)

	res, err = fetchModel(cmd, provider.ModelIncomeStatement, params)
	if err != nil {
		return err
	}
	income, err := dataAs[[]models.IncomeStatement](res)
	if err != nil {
		return err
	}
	render.IncomeStatementTable(symbol, income).Print(os.Stdout)

	res, err = fetchModel(cmd, provider.ModelCashFlowStatement, params)
	if err != nil {
		return err
	}
	flows, err := dataAs[[]models.CashFlow](res)
	if err != nil {
		return err
	}
	return emit(cmd, render.CashFlowTable(symbol, flows))
}

func init() {
	fundamentalCmd.Flags().Bool("ratios", false, "get valuation ratios")
	fundamentalCmd.Flags().Bool("metrics", false, "get key metrics")
	fundamentalCmd.Flags().Bool("trend", false, "get revenue/profit trend")
	fundamentalCmd.Flags().String("period", "", "statement period: annual (default) or quarterly")
	addOutputFlags(fundamentalCmd)
}
