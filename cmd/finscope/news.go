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

var newsCmd = &cobra.Command{
	Use:   "news [symbol]",
	Short: "Get company or world financial news",
	Long: `Fetch recent news for a ticker, or world market headlines with --world
(no symbol needed).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		world, _ := cmd.Flags().GetBool("world")
		limit, _ := cmd.Flags().GetInt("limit")

		params := fetchParams(cmd)
		if limit > 0 {
			params[provider.ParamLimit] = strconv.Itoa(limit)
		}

		if world {
			res, err := fetchModel(cmd, provider.ModelWorldNews, params)
			if err != nil {
				return err
			}
			articles, err := dataAs[[]models.NewsArticle](res)
			if err != nil {
				return err
			}
			return emit(cmd, render.NewsTable("World Market News", articles))
		}

		if len(args) == 0 {
			return fmt.Errorf("a symbol is required unless --world is set")
		}
		symbol := utils.NormalizeSymbol(args[0])
		params[provider.ParamSymbol] = symbol

		res, err := fetchModel(cmd, provider.ModelCompanyNews, params)
		if err != nil {
			return err
		}
		articles, err := dataAs[[]models.NewsArticle](res)
		if err != nil {
			return err
		}
		return emit(cmd, render.NewsTable(fmt.Sprintf("Company News: %s", symbol), articles))
	},
}

func init() {
	newsCmd.Flags().Bool("world", false, "fetch world market headlines instead of company news")
	newsCmd.Flags().Int("limit", 20, "number of articles")
	addOutputFlags(newsCmd)
}
