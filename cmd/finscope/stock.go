package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finscope/finscope/internal/provider"
	"github.com/finscope/finscope/internal/render"
	"github.com/finscope/finscope/pkg/models"
	"github.com/finscope/finscope/pkg/utils"
)

var stockCmd = &cobra.Command{
	Use:   "stock [symbol]",
	Short: "Get stock price data",
	Long:  "Fetch historical OHLCV bars, an intraday snapshot, or a real-time quote for a ticker.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol := utils.NormalizeSymbol(args[0])

		quote, _ := cmd.Flags().GetBool("quote")
		intraday, _ := cmd.Flags().GetBool("intraday")
		dividends, _ := cmd.Flags().GetBool("dividends")
		info, _ := cmd.Flags().GetBool("info")

		params := fetchParams(cmd)
		params[provider.ParamSymbol] = symbol

		switch {
		case quote:
			res, err := fetchModel(cmd, provider.ModelEquityQuote, params)
			if err != nil {
				return err
			}
			q, err := dataAs[*models.Quote](res)
			if err != nil {
				return err
			}
			return emit(cmd, render.QuoteTable(q))

		case info:
			res, err := fetchModel(cmd, provider.ModelEquityInfo, params)
			if err != nil {
				return err
			}
			profile, err := dataAs[*models.StockProfile](res)
			if err != nil {
				return err
			}
			return emit(cmd, render.ProfileTable(profile))

		case intraday:
			res, err := fetchModel(cmd, provider.ModelEquityIntraday, params)
			if err != nil {
				return err
			}
			bars, err := dataAs[[]models.OHLCV](res)
			if err != nil {
				return err
			}
			return emit(cmd, render.IntradayTable(fmt.Sprintf("Intraday Data: %s", symbol), bars))

		case dividends:
			if period, _ := cmd.Flags().GetString("period"); period != "" {
				params[provider.ParamPeriod] = period
			}
			res, err := fetchModel(cmd, provider.ModelHistoricalDividends, params)
			if err != nil {
				return err
			}
			divs, err := dataAs[[]models.DividendRecord](res)
			if err != nil {
				return err
			}
			return emit(cmd, render.DividendTable(symbol, divs))

		default:
			if period, _ := cmd.Flags().GetString("period"); period != "" {
				params[provider.ParamPeriod] = period
			}
			if sd, _ := cmd.Flags().GetString("start-date"); sd != "" {
				params[provider.ParamStartDate] = sd
			}
			if ed, _ := cmd.Flags().GetString("end-date"); ed != "" {
				params[provider.ParamEndDate] = ed
			}
			if iv, _ := cmd.Flags().GetString("interval"); iv != "" {
				params[provider.ParamInterval] = iv
			}
			res, err := fetchModel(cmd, provider.ModelEquityHistorical, params)
			if err != nil {
				return err
			}
			bars, err := dataAs[[]models.OHLCV](res)
			if err != nil {
				return err
			}
			return emit(cmd, render.OHLCVTable(fmt.Sprintf("Historical Data: %s", symbol), bars))
		}
	},
}

func init() {
	stockCmd.Flags().Bool("quote", false, "get a real-time quote")
	stockCmd.Flags().Bool("intraday", false, "get intraday data (5-minute bars)")
	stockCmd.Flags().Bool("dividends", false, "get historical dividends")
	stockCmd.Flags().Bool("info", false, "get company profile")
	stockCmd.Flags().String("period", "1y", "period for historical data (e.g., 5d, 3mo, 1y, ytd, max)")
	stockCmd.Flags().String("start-date", "", "start date (YYYY-MM-DD)")
	stockCmd.Flags().String("end-date", "", "end date (YYYY-MM-DD)")
	stockCmd.Flags().String("interval", "", "bar interval for historical data (e.g., 1d, 1wk)")
	addOutputFlags(stockCmd)
}
