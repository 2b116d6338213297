// Package providers initializes and registers all concrete data providers
// with the provider registry.
package providers

import (
	"os"

	"github.com/finscope/finscope/internal/provider"
	"github.com/finscope/finscope/internal/providers/fred"
	"github.com/finscope/finscope/internal/providers/sec"
	"github.com/finscope/finscope/internal/providers/yfinance"
)

// Credentials carries provider credentials collected from config or the
// environment.
type Credentials struct {
	FREDAPIKey   string
	SECUserAgent string
}

// CredentialsFromEnv reads provider credentials from environment variables.
func CredentialsFromEnv() Credentials {
	return Credentials{
		FREDAPIKey:   os.Getenv("FRED_API_KEY"),
		SECUserAgent: os.Getenv("SEC_USER_AGENT"),
	}
}

// RegisterAll creates and registers all available providers with the global
// registry, using credentials from the environment. Providers that require
// an API key are skipped when the key is absent.
func RegisterAll() error {
	return RegisterAllTo(provider.Global(), CredentialsFromEnv())
}

// RegisterAllTo registers all available providers to the given registry.
func RegisterAllTo(reg *provider.Registry, creds Credentials) error {
	// --- Yahoo Finance (free, no API key) ---
	yf := yfinance.New()
	if err := yf.Init(nil); err != nil {
		return err
	}
	if err := reg.Register(yf); err != nil {
		return err
	}

	// --- SEC EDGAR (free, optional custom User-Agent) ---
	sp := sec.New()
	secCreds := map[string]string{}
	if creds.SECUserAgent != "" {
		secCreds["user_agent"] = creds.SECUserAgent
	}
	if err := sp.Init(secCreds); err != nil {
		return err
	}
	if err := reg.Register(sp); err != nil {
		return err
	}

	// --- FRED (requires API key) ---
	if creds.FREDAPIKey != "" {
		fp := fred.New()
		if err := fp.Init(map[string]string{"api_key": creds.FREDAPIKey}); err != nil {
			return err
		}
		if err := reg.Register(fp); err != nil {
			return err
		}
	}

	return nil
}
