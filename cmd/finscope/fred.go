package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/finscope/finscope/internal/provider"
	"github.com/finscope/finscope/internal/render"
	"github.com/finscope/finscope/pkg/models"
)

var fredCmd = &cobra.Command{
	Use:   "fred",
	Short: "Get FRED economic data",
	Long: `Fetch macroeconomic time series from FRED (Federal Reserve Economic Data).
Requires FRED_API_KEY. Use --series with an ID or alias (GDP, UNEMPLOYMENT,
INFLATION, TREASURY_10Y, ...), --search to find series, or --release-id to
page through every series of a release.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		series, _ := cmd.Flags().GetString("series")
		releaseID, _ := cmd.Flags().GetInt("release-id")
		search, _ := cmd.Flags().GetString("search")

		params := fetchParams(cmd)

		switch {
		case search != "":
			params[provider.ParamQuery] = search
			if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 {
				params[provider.ParamLimit] = strconv.Itoa(limit)
			}
			res, err := fetchModel(cmd, provider.ModelFredSearch, params)
			if err != nil {
				return err
			}
			results, err := dataAs[[]models.FREDSearchResult](res)
			if err != nil {
				return err
			}
			return emit(cmd, render.FredSearchTable(search, results))

		case releaseID > 0:
			params[provider.ParamReleaseID] = strconv.Itoa(releaseID)
			if cursor, _ := cmd.Flags().GetString("cursor"); cursor != "" {
				params[provider.ParamCursor] = cursor
			}
			if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 {
				params[provider.ParamLimit] = strconv.Itoa(limit)
			}
			res, err := fetchModel(cmd, provider.ModelFredReleaseObservations, params)
			if err != nil {
				return err
			}
			page, err := dataAs[*models.FREDReleasePage](res)
			if err != nil {
				return err
			}
			if err := emit(cmd, render.FredReleaseTable(page)); err != nil {
				return err
			}
			if page.NextCursor != "" {
				fmt.Printf("\nNext cursor: %s\n", page.NextCursor)
			}
			return nil

		case series != "":
			params[provider.ParamSeriesID] = series
			if sd, _ := cmd.Flags().GetString("start-date"); sd != "" {
				params[provider.ParamStartDate] = sd
			}
			if ed, _ := cmd.Flags().GetString("end-date"); ed != "" {
				params[provider.ParamEndDate] = ed
			}
			res, err := fetchModel(cmd, provider.ModelFredSeries, params)
			if err != nil {
				return err
			}
			data, err := dataAs[[]models.FREDSeriesData](res)
			if err != nil {
				return err
			}
			return emit(cmd, render.FredSeriesTable(series, data))

		default:
			return fmt.Errorf("specify --series, --release-id, or --search")
		}
	},
}

func init() {
	fredCmd.Flags().String("series", "", "FRED series ID or alias (e.g., GDP, UNRATE)")
	fredCmd.Flags().Int("release-id", 0, "FRED release ID")
	fredCmd.Flags().String("search", "", "search for series")
	fredCmd.Flags().String("cursor", "", "resume paging from a previously printed cursor")
	fredCmd.Flags().Int("limit", 0, "max results per page")
	fredCmd.Flags().String("start-date", "", "start date (YYYY-MM-DD)")
	fredCmd.Flags().String("end-date", "", "end date (YYYY-MM-DD)")
	addOutputFlags(fredCmd)
}
