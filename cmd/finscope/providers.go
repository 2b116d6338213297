package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/finscope/finscope/internal/config"
	"github.com/finscope/finscope/internal/provider"
)

// --- Providers Command ---

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List registered data providers and their model coverage",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := provider.Global()

		infos := reg.List()
		sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })

		fmt.Println("Registered providers:")
		for _, info := range infos {
			fmt.Printf("\n  %s — %s\n", info.Name, info.Description)
			fmt.Printf("    website: %s\n", info.Website)
			if len(info.Credentials) > 0 {
				for _, c := range info.Credentials {
					req := "optional"
					if c.Required {
						req = "required"
					}
					fmt.Printf("    credential: %s (%s, env %s)\n", c.Name, req, c.EnvVar)
				}
			}
		}

		fmt.Println("\nModel coverage:")
		coverage := reg.ModelCoverage()

		// Group models by category for readable output.
		byCategory := map[string][]provider.ModelType{}
		for _, m := range provider.AllModels() {
			if _, ok := coverage[m]; !ok {
				continue
			}
			cat := provider.ModelCategory(m)
			byCategory[cat] = append(byCategory[cat], m)
		}
		categories := make([]string, 0, len(byCategory))
		for cat := range byCategory {
			categories = append(categories, cat)
		}
		sort.Strings(categories)

		for _, cat := range categories {
			fmt.Printf("\n  %s:\n", cat)
			for _, m := range byCategory[cat] {
				def, _ := reg.DefaultProvider(m)
				provs := coverage[m]
				fmt.Printf("    %-28s %s (default: %s)\n", m, strings.Join(provs, ", "), def)
			}
		}
		return nil
	},
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show system status and configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("═══════════════════════════════════════")
		fmt.Println("  finscope — System Status")
		fmt.Println("═══════════════════════════════════════")
		fmt.Printf("  Version: %s (%s)\n", version, commit)
		fmt.Println()

		fmt.Println("  Configuration:")
		fmt.Printf("    HTTP timeout:  %ds\n", cfg.HTTP.TimeoutSec)
		fmt.Printf("    Log level:     %s\n", cfg.Logging.Level)
		fmt.Printf("    Output dir:    %s\n", cfg.Output.Dir)
		fmt.Println()

		fmt.Println("  Credentials:")
		for _, k := range config.CheckAPIKeys(cfg) {
			status := "not set"
			if k.IsSet {
				status = fmt.Sprintf("set (%s: %s)", k.Source, k.Masked)
			}
			fmt.Printf("    %-18s %s\n", k.Name+":", status)
		}
		fmt.Println()

		fmt.Println("  Providers:")
		for _, info := range provider.Global().List() {
			fmt.Printf("    %-10s %d models\n", info.Name, len(info.Models))
		}

		fmt.Println("═══════════════════════════════════════")
		return nil
	},
}
