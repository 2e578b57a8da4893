package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/mersenne-rsa/internal/app"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/mersenne-rsa/internal/domain/payloads"
	"github.com/MGTheTrain/mersenne-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// PayloadCommandHandler encapsulates logic for encrypting numbers, text and files via CLI.
type PayloadCommandHandler struct {
	numberService payloads.NumberService
	textService   payloads.TextService
	fileService   payloads.FileService
	logger        logger.Logger
}

// NewPayloadCommandHandler initializes a new PayloadCommandHandler with logging and payload services.
func NewPayloadCommandHandler() (*PayloadCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := setupRSAProcessor(loggerInstance)
	if err != nil {
		return nil, err
	}

	numberService, err := app.NewNumberService(rsaProcessor, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create number service: %w", err)
	}

	textService, err := app.NewTextService(rsaProcessor, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create text service: %w", err)
	}

	fileService, err := app.NewFileService(rsaProcessor, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create file service: %w", err)
	}

	return &PayloadCommandHandler{
		numberService: numberService,
		textService:   textService,
		fileService:   fileService,
		logger:        loggerInstance,
	}, nil
}

// EncryptNumberCmd encrypts a single integer under the keypair of two primes
func (commandHandler *PayloadCommandHandler) EncryptNumberCmd(cmd *cobra.Command, _ []string) {
	p, q, err := primeFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	value, err := bigIntFlag(cmd, "value")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := commandHandler.numberService.Encrypt(context.Background(), p, q, value)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info(result.Keypair.String())
	commandHandler.logger.Info("Ciphertext: ", result.Ciphertext.String())
}

// DecryptNumberCmd decrypts a single ciphertext integer
func (commandHandler *PayloadCommandHandler) DecryptNumberCmd(cmd *cobra.Command, _ []string) {
	key, err := privateKeyFlags(cmd, false)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	ciphertext, err := bigIntFlag(cmd, "ciphertext")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plaintext, err := commandHandler.numberService.Decrypt(context.Background(), ciphertext, key)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Plaintext: ", plaintext.String())
}

// EncryptTextCmd encrypts a string code point by code point
func (commandHandler *PayloadCommandHandler) EncryptTextCmd(cmd *cobra.Command, _ []string) {
	p, q, err := primeFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	text, err := cmd.Flags().GetString("text")
	if err != nil {
		commandHandler.logger.Error("invalid text flag: ", err)
		return
	}

	result, err := commandHandler.textService.Encrypt(context.Background(), p, q, text)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info(result.Keypair.String())
	commandHandler.logger.Info("Ciphertext: ", cryptography.FormatCiphertext(result.Ciphertext))
}

// DecryptTextCmd decrypts a comma-separated ciphertext into text
func (commandHandler *PayloadCommandHandler) DecryptTextCmd(cmd *cobra.Command, _ []string) {
	key, err := privateKeyFlags(cmd, false)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	ciphertext, err := cmd.Flags().GetString("ciphertext")
	if err != nil {
		commandHandler.logger.Error("invalid ciphertext flag: ", err)
		return
	}

	plaintext, err := commandHandler.textService.Decrypt(context.Background(), ciphertext, key)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Plaintext: ", plaintext)
}

// EncryptFileCmd encrypts a file into a comma-separated ciphertext file
func (commandHandler *PayloadCommandHandler) EncryptFileCmd(cmd *cobra.Command, _ []string) {
	p, q, err := primeFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	inputFilePath, outputFilePath, mode, err := fileFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	content, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := commandHandler.fileService.Encrypt(context.Background(), p, q, content, mode)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFilePath, []byte(cryptography.FormatCiphertext(result.Ciphertext)), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info(result.Keypair.String())
	commandHandler.logger.Info("Encrypted file saved at ", outputFilePath)
}

// DecryptFileCmd decrypts a comma-separated ciphertext file
func (commandHandler *PayloadCommandHandler) DecryptFileCmd(cmd *cobra.Command, _ []string) {
	key, err := privateKeyFlags(cmd, false)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	inputFilePath, outputFilePath, mode, err := fileFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	content, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plaintext, err := commandHandler.fileService.Decrypt(context.Background(), content, key, mode)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFilePath, plaintext, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted file saved at ", outputFilePath)
}

// fileFlags reads the --input-file, --output-file and --mode flags
func fileFlags(cmd *cobra.Command) (string, string, string, error) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		return "", "", "", fmt.Errorf("invalid input-file flag: %w", err)
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		return "", "", "", fmt.Errorf("invalid output-file flag: %w", err)
	}
	mode, err := cmd.Flags().GetString("mode")
	if err != nil {
		return "", "", "", fmt.Errorf("invalid mode flag: %w", err)
	}
	return inputFilePath, outputFilePath, mode, nil
}

// InitPayloadCommands registers number, text and file commands
func InitPayloadCommands(rootCmd *cobra.Command) error {
	handler, err := NewPayloadCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create payload command handler %w", err)
	}

	var encryptNumberCmd = &cobra.Command{
		Use:   "encrypt-number",
		Short: "Encrypt an integer",
		Run:   handler.EncryptNumberCmd,
	}
	addPrimeFlags(encryptNumberCmd)
	encryptNumberCmd.Flags().StringP("value", "", "", "Integer to encrypt")
	rootCmd.AddCommand(encryptNumberCmd)

	var decryptNumberCmd = &cobra.Command{
		Use:   "decrypt-number",
		Short: "Decrypt an integer",
		Run:   handler.DecryptNumberCmd,
	}
	addPrivateKeyFlags(decryptNumberCmd)
	decryptNumberCmd.Flags().StringP("ciphertext", "", "", "Ciphertext integer")
	rootCmd.AddCommand(decryptNumberCmd)

	var encryptTextCmd = &cobra.Command{
		Use:   "encrypt-text",
		Short: "Encrypt text code point by code point",
		Run:   handler.EncryptTextCmd,
	}
	addPrimeFlags(encryptTextCmd)
	encryptTextCmd.Flags().StringP("text", "", "", "Text to encrypt")
	rootCmd.AddCommand(encryptTextCmd)

	var decryptTextCmd = &cobra.Command{
		Use:   "decrypt-text",
		Short: "Decrypt a comma-separated ciphertext into text",
		Run:   handler.DecryptTextCmd,
	}
	addPrivateKeyFlags(decryptTextCmd)
	decryptTextCmd.Flags().StringP("ciphertext", "", "", "Comma-separated ciphertext integers")
	rootCmd.AddCommand(decryptTextCmd)

	var encryptFileCmd = &cobra.Command{
		Use:   "encrypt-file",
		Short: "Encrypt a file into comma-separated ciphertext",
		Run:   handler.EncryptFileCmd,
	}
	addPrimeFlags(encryptFileCmd)
	encryptFileCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted")
	encryptFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptFileCmd.Flags().StringP("mode", "", crypto.FileModeText, "File mode (text or binary)")
	rootCmd.AddCommand(encryptFileCmd)

	var decryptFileCmd = &cobra.Command{
		Use:   "decrypt-file",
		Short: "Decrypt a comma-separated ciphertext file",
		Run:   handler.DecryptFileCmd,
	}
	addPrivateKeyFlags(decryptFileCmd)
	decryptFileCmd.Flags().StringP("input-file", "", "", "Path to encrypted file")
	decryptFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptFileCmd.Flags().StringP("mode", "", crypto.FileModeText, "File mode (text or binary)")
	rootCmd.AddCommand(decryptFileCmd)

	return nil
}
