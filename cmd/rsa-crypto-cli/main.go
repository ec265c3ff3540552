// Package main is the entry point for the rsa-crypto-cli application.
// It initializes the root command, registers the RSA sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/rsa-crypto-core/cmd/rsa-crypto-cli/internal/commands"

	// Loads a .env file from the working directory into the environment before flags are bound.
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-crypto-cli",
		Short: "RSA operations on PEM keys and Base64 payloads",
		Long: `rsa-crypto-cli encrypts, decrypts, signs and verifies Base64 payloads with PEM encoded RSA keys.
Keys may be PKCS#1, PKCS#8 or X.509 SubjectPublicKeyInfo; damaged PEM text is repaired before parsing.

Signatures are raw RSA signatures (NONEwithRSA): the data is signed as given, so pass a digest.

Logging can be configured with --log-level/--log-type or the RSA_CRYPTO_LOG_LEVEL and
RSA_CRYPTO_LOG_TYPE environment variables.`,
		SilenceUsage: true,
	}

	// Initialize all command groups BEFORE executing
	if err := commands.InitRSACommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize RSA commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
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
