package cli

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the defaults the encode/decode commands fall back to when a
// flag isn't given explicitly. It's deliberately small: this tool has no
// peer, ledger, or RPC configuration to carry, unlike a full node's config.
type Config struct {
	// SigningAccount is the classic address used by `encode --for multisign`
	// when --account isn't passed.
	SigningAccount string `mapstructure:"signing_account"`
	// Uppercase controls the hex casing `encode` prints; the wire codec
	// itself always emits uppercase, and when this is false the CLI
	// lowercases the encoded blob before printing it.
	Uppercase bool `mapstructure:"uppercase"`
}

var config Config

// loadConfig reads path (if non-empty) plus XRPLD_-prefixed environment
// variables into the package-level Config. An empty path is not an error:
// the CLI works with zero configuration, same as Encode/Decode do.
func loadConfig(path string) error {
	v := viper.New()
	v.SetEnvPrefix("XRPLD")
	v.AutomaticEnv()
	v.SetDefault("uppercase", true)
	v.SetDefault("signing_account", "")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("cli: reading config %s: %w", path, err)
		}
	}

	return v.Unmarshal(&config)
}
