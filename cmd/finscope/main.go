// finscope — financial and economic data from the command line.
//
// Main CLI entrypoint using the cobra command framework.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/finscope/finscope/internal/config"
	"github.com/finscope/finscope/internal/infra"
	"github.com/finscope/finscope/internal/provider"
	"github.com/finscope/finscope/internal/providers"
	"github.com/finscope/finscope/internal/render"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config
var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "finscope",
	Short: "finscope — stock and market economics data from the command line",
	Long: `finscope fetches stock prices, company fundamentals, FRED macroeconomic
series, news, SEC filings, short interest, and institutional holdings,
prints them as tables, and optionally exports CSV.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; ignore a missing file.
		_ = godotenv.Load()

		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := setupLogging(cmd); err != nil {
			return err
		}
		if cfg.HTTP.TimeoutSec > 0 {
			infra.SetHTTPTimeout(time.Duration(cfg.HTTP.TimeoutSec) * time.Second)
		}

		return providers.RegisterAllTo(provider.Global(), providers.Credentials{
			FREDAPIKey:   cfg.FRED.APIKey,
			SECUserAgent: cfg.SEC.UserAgent,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging of HTTP traffic")
	rootCmd.PersistentFlags().Bool("fallback", false, "try other providers when the preferred one fails")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(stockCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(fredCmd)
	rootCmd.AddCommand(fundamentalCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(secCmd)
	rootCmd.AddCommand(alternativeCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(statusCmd)
}

// setupLogging builds a zap logger from config and flag overrides and wires
// it into the HTTP layer.
func setupLogging(cmd *cobra.Command) error {
	level := cfg.Logging.Level
	if override, _ := cmd.Flags().GetString("log-level"); override != "" {
		level = override
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}

	var zapLevel zapcore.Level
	if err := zapLevel.Set(level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Logging.Format != "json" {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(zapLevel)
	zcfg.OutputPaths = []string{"stderr"}

	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	infra.SetLogger(logger)
	return nil
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("finscope %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Shared output helpers ---

// addOutputFlags registers the flags every data command carries.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "write results to a CSV file")
	cmd.Flags().String("provider", "", "data provider override")
}

// emit prints a table to stdout and writes it to CSV when --output is set.
func emit(cmd *cobra.Command, t *render.Table) error {
	t.Print(os.Stdout)

	output, _ := cmd.Flags().GetString("output")
	if output == "" || t.Empty() {
		return nil
	}
	if err := t.SaveCSV(output); err != nil {
		return fmt.Errorf("save CSV: %w", err)
	}
	fmt.Printf("\nData saved to %s\n", output)
	return nil
}

// fetchModel routes a fetch through the global registry. With --fallback the
// registry walks every provider covering the model instead of failing on the
// first error.
func fetchModel(cmd *cobra.Command, model provider.ModelType, params provider.QueryParams) (*provider.FetchResult, error) {
	reg := provider.Global()
	if fallback, _ := cmd.Flags().GetBool("fallback"); fallback {
		return reg.FetchWithFallback(cmd.Context(), model, params)
	}
	return reg.Fetch(cmd.Context(), model, params)
}

// dataAs converts a fetch result's payload to the expected type.
func dataAs[T any](res *provider.FetchResult) (T, error) {
	v, ok := res.Data.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("unexpected data type %T for model %s", res.Data, res.Model)
	}
	return v, nil
}

// fetchParams builds the base query params shared by all data commands.
func fetchParams(cmd *cobra.Command) provider.QueryParams {
	params := provider.QueryParams{}
	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		params[provider.ParamProvider] = p
	}
	return params
}
