package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/finscope/finscope/internal/provider"
	"github.com/finscope/finscope/internal/render"
	"github.com/finscope/finscope/pkg/models"
	"github.com/finscope/finscope/pkg/utils"
)

var secCmd = &cobra.Command{
	Use:   "sec [symbol]",
	Short: "Get SEC filings and regulatory data",
	Long: `Fetch recent SEC EDGAR filings for a ticker. With --litigation, list
SEC litigation releases instead (no symbol needed). With --cik-map, show
the ticker-to-CIK mapping.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		litigation, _ := cmd.Flags().GetBool("litigation")
		cikMap, _ := cmd.Flags().GetBool("cik-map")
		limit, _ := cmd.Flags().GetInt("limit")

		params := fetchParams(cmd)
		if limit > 0 {
			params[provider.ParamLimit] = strconv.Itoa(limit)
		}

		switch {
		case litigation:
			res, err := fetchModel(cmd, provider.ModelRssLitigation, params)
			if err != nil {
				return err
			}
			releases, err := dataAs[[]models.LitigationRelease](res)
			if err != nil {
				return err
			}
			return emit(cmd, render.LitigationTable(releases))

		case cikMap:
			if len(args) == 1 {
				params[provider.ParamSymbol] = utils.NormalizeSymbol(args[0])
			}
			res, err := fetchModel(cmd, provider.ModelCikMap, params)
			if err != nil {
				return err
			}
			mappings, err := dataAs[[]models.CIKMapping](res)
			if err != nil {
				return err
			}
			return emit(cmd, render.CikMapTable(mappings))

		default:
			if len(args) == 0 {
				return cmd.Usage()
			}
			symbol := utils.NormalizeSymbol(args[0])
			params[provider.ParamSymbol] = symbol
			if ft, _ := cmd.Flags().GetString("filing-type"); ft != "" {
				params[provider.ParamFormType] = ft
			}
			res, err := fetchModel(cmd, provider.ModelCompanyFilings, params)
			if err != nil {
				return err
			}
			filings, err := dataAs[[]models.CompanyFiling](res)
			if err != nil {
				return err
			}
			return emit(cmd, render.FilingsTable(symbol, filings))
		}
	},
}

func init() {
	secCmd.Flags().String("filing-type", "", "filing type filter (10-K, 10-Q, 8-K, ...)")
	secCmd.Flags().Bool("litigation", false, "list SEC litigation releases")
	secCmd.Flags().Bool("cik-map", false, "show ticker-to-CIK mapping")
	secCmd.Flags().Int("limit", 20, "number of filings")
	addOutputFlags(secCmd)
}
