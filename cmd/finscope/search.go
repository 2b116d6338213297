package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/finscope/finscope/internal/provider"
	"github.com/finscope/finscope/internal/render"
	"github.com/finscope/finscope/pkg/models"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for ticker symbols",
	Long:  "Search equities by name or symbol fragment.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]

		params := fetchParams(cmd)
		params[provider.ParamQuery] = query
		if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 {
			params[provider.ParamLimit] = strconv.Itoa(limit)
		}

		res, err := fetchModel(cmd, provider.ModelEquitySearch, params)
		if err != nil {
			return err
		}
		results, err := dataAs[[]models.EquitySearchResult](res)
		if err != nil {
			return err
		}
		return emit(cmd, render.SearchTable(fmt.Sprintf("Search Results: %s", query), results))
	},
}

func init() {
	searchCmd.Flags().Int("limit", 0, "max results")
	addOutputFlags(searchCmd)
}
