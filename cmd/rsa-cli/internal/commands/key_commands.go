package commands

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/mersenne-rsa/internal/app"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/payloads"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// KeyCommandHandler encapsulates logic for deriving keypairs via CLI.
type KeyCommandHandler struct {
	keyService payloads.KeyService
	logger     logger.Logger
}

// NewKeyCommandHandler initializes a new KeyCommandHandler with logging and a key service.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := setupRSAProcessor(loggerInstance)
	if err != nil {
		return nil, err
	}

	keyService, err := app.NewKeyService(rsaProcessor, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key service: %w", err)
	}

	return &KeyCommandHandler{
		keyService: keyService,
		logger:     loggerInstance,
	}, nil
}

// DeriveKeysCmd derives and prints the keypair for two primes
func (commandHandler *KeyCommandHandler) DeriveKeysCmd(cmd *cobra.Command, _ []string) {
	p, q, err := primeFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	keypair, err := commandHandler.keyService.Derive(context.Background(), p, q)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info(keypair.String())
	commandHandler.logger.Info(fmt.Sprintf("n = %s, phi = %s", keypair.N, keypair.Phi))
}

// InitKeyCommands registers key derivation commands
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create key command handler %w", err)
	}

	var deriveKeysCmd = &cobra.Command{
		Use:   "derive-keys",
		Short: "Derive a textbook RSA keypair from two primes",
		Run:   handler.DeriveKeysCmd,
	}
	addPrimeFlags(deriveKeysCmd)
	rootCmd.AddCommand(deriveKeysCmd)

	return nil
}
