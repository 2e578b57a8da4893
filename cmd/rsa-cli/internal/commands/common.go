package commands

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/mersenne-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/config"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// In commands/common.go
func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// setupRSAProcessor creates a textbook RSA processor with one worker per CPU
func setupRSAProcessor(loggerInstance logger.Logger) (cryptoalg.TextbookRSAProcessor, error) {
	settings := config.DefaultRSASettings()

	rsaProcessor, err := cryptography.NewTextbookRSAProcessor(settings.EffectiveWorkers(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create textbook RSA processor: %w", err)
	}

	return rsaProcessor, nil
}

// parseBigInt parses a base-10 integer, tolerating surrounding whitespace
func parseBigInt(name, raw string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok {
		return nil, fmt.Errorf("%s must be a decimal integer, got %q", name, raw)
	}
	return v, nil
}

// bigIntFlag reads a string flag and parses it as a decimal integer
func bigIntFlag(cmd *cobra.Command, name string) (*big.Int, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", name, err)
	}
	return parseBigInt(name, raw)
}

// primeFlags reads the --p and --q flags
func primeFlags(cmd *cobra.Command) (*big.Int, *big.Int, error) {
	p, err := bigIntFlag(cmd, "p")
	if err != nil {
		return nil, nil, err
	}
	q, err := bigIntFlag(cmd, "q")
	if err != nil {
		return nil, nil, err
	}
	return p, q, nil
}

// privateKeyFlags reads the --n and --d flags. With allowMissingN an empty --n yields a nil N.
func privateKeyFlags(cmd *cobra.Command, allowMissingN bool) (crypto.PrivateKey, error) {
	d, err := bigIntFlag(cmd, "d")
	if err != nil {
		return crypto.PrivateKey{}, err
	}

	rawN, err := cmd.Flags().GetString("n")
	if err != nil {
		return crypto.PrivateKey{}, fmt.Errorf("invalid n flag: %w", err)
	}
	if rawN == "" && allowMissingN {
		return crypto.PrivateKey{D: d}, nil
	}

	n, err := parseBigInt("n", rawN)
	if err != nil {
		return crypto.PrivateKey{}, err
	}
	return crypto.PrivateKey{N: n, D: d}, nil
}

// addPrimeFlags registers the --p and --q flags on cmd
func addPrimeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("p", "", "", "First prime (decimal integer >= 2)")
	cmd.Flags().StringP("q", "", "", "Second prime (decimal integer >= 2)")
}

// addPrivateKeyFlags registers the --n and --d flags on cmd
func addPrivateKeyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("n", "", "", "Modulus of the private key")
	cmd.Flags().StringP("d", "", "", "Private exponent")
}
