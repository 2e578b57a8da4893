// Package main is the entry point for the rsa-cli application.
// It initializes the root command and registers the key, payload and image
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/mersenne-rsa/cmd/rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-cli",
		Short: "Textbook RSA CLI tool",
		Long: `rsa-cli derives textbook RSA keypairs from two primes and a fixed auxiliary
prime (31) and encrypts integers, text, files and images with them.

Image encryption stores the raw ciphertext as a session in a SQLite file
(--db-file). The private exponent is printed once and never stored; pass it
back to decrypt-image together with the session ID.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	if err := commands.InitPayloadCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize payload commands: %w", err)
	}

	if err := commands.InitImageCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize image commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
