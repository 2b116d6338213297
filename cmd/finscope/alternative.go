package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/finscope/finscope/internal/provider"
	"github.com/finscope/finscope/internal/render"
	"github.com/finscope/finscope/pkg/models"
	"github.com/finscope/finscope/pkg/utils"
)

var alternativeCmd = &cobra.Command{
	Use:   "alternative [symbol]",
	Short: "Get alternative data",
	Long:  "Fetch short interest or institutional holdings for a ticker.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol := utils.NormalizeSymbol(args[0])

		shortInterest, _ := cmd.Flags().GetBool("short-interest")
		institutional, _ := cmd.Flags().GetBool("institutional")

		params := fetchParams(cmd)
		params[provider.ParamSymbol] = symbol

		switch {
		case shortInterest:
			res, err := fetchModel(cmd, provider.ModelEquityShortInterest, params)
			if err != nil {
				return err
			}
			si, err := dataAs[*models.ShortInterest](res)
			if err != nil {
				return err
			}
			return emit(cmd, render.ShortInterestTable(si))

		case institutional:
			if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 {
				params[provider.ParamLimit] = strconv.Itoa(limit)
			}
			res, err := fetchModel(cmd, provider.ModelInstitutionalOwnership, params)
			if err != nil {
				return err
			}
			holders, err := dataAs[[]models.InstitutionalHolder](res)
			if err != nil {
				return err
			}
			return emit(cmd, render.HoldersTable(symbol, holders))

		default:
			return fmt.Errorf("specify --short-interest or --institutional")
		}
	},
}

func init() {
	alternativeCmd.Flags().Bool("short-interest", false, "get short interest")
	alternativeCmd.Flags().Bool("institutional", false, "get institutional holdings")
	alternativeCmd.Flags().Int("limit", 0, "number of holders")
	addOutputFlags(alternativeCmd)
}
