package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MGTheTrain/rsa-crypto-core/internal/app"
	"github.com/MGTheTrain/rsa-crypto-core/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-crypto-core/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-crypto-core/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	rsaService cryptoalg.RSAService
	logger     logger.Logger
}

// NewRSACommandHandler wires the key resolver, the RSA processor and the RSA service for the CLI.
func NewRSACommandHandler(loggerInstance logger.Logger) (*RSACommandHandler, error) {
	keyResolver, err := cryptography.NewKeyResolver(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key resolver: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	rsaService, err := app.NewRSAService(keyResolver, rsaProcessor, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA service: %w", err)
	}

	return &RSACommandHandler{
		rsaService: rsaService,
		logger:     loggerInstance,
	}, nil
}

// EncryptRSACmd encrypts Base64 data with a PEM key and prints the Base64 ciphertext
func (commandHandler *RSACommandHandler) EncryptRSACmd(cmd *cobra.Command, _ []string) error {
	pemKey, err := readKeyFile(cmd)
	if err != nil {
		return err
	}
	data, err := cmd.Flags().GetString("data")
	if err != nil {
		return fmt.Errorf("invalid data flag: %w", err)
	}

	encrypted, err := commandHandler.rsaService.Encrypt(pemKey, data)
	if err != nil {
		return err
	}

	commandHandler.logger.Debug("Encrypted data with key ", cmd.Flag("key-file").Value.String())
	_, err = fmt.Fprintln(cmd.OutOrStdout(), encrypted)
	return err
}

// DecryptRSACmd decrypts Base64 ciphertext with a PEM private key and prints the Base64 plaintext
func (commandHandler *RSACommandHandler) DecryptRSACmd(cmd *cobra.Command, _ []string) error {
	pemKey, err := readKeyFile(cmd)
	if err != nil {
		return err
	}
	data, err := cmd.Flags().GetString("data")
	if err != nil {
		return fmt.Errorf("invalid data flag: %w", err)
	}

	decrypted, err := commandHandler.rsaService.Decrypt(pemKey, data)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), decrypted)
	return err
}

// SignRSACmd signs Base64 data with a PEM private key and prints the Base64 signature
func (commandHandler *RSACommandHandler) SignRSACmd(cmd *cobra.Command, _ []string) error {
	pemKey, err := readKeyFile(cmd)
	if err != nil {
		return err
	}
	data, err := cmd.Flags().GetString("data")
	if err != nil {
		return fmt.Errorf("invalid data flag: %w", err)
	}

	signature, err := commandHandler.rsaService.Sign(pemKey, data)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), signature)
	return err
}

// VerifyRSACmd verifies a Base64 signature and prints true or false
func (commandHandler *RSACommandHandler) VerifyRSACmd(cmd *cobra.Command, _ []string) error {
	pemKey, err := readKeyFile(cmd)
	if err != nil {
		return err
	}
	data, err := cmd.Flags().GetString("data")
	if err != nil {
		return fmt.Errorf("invalid data flag: %w", err)
	}
	signature, err := cmd.Flags().GetString("signature")
	if err != nil {
		return fmt.Errorf("invalid signature flag: %w", err)
	}

	valid, err := commandHandler.rsaService.VerifySignature(pemKey, data, signature)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(valid))
	return err
}

// PublicKeyCmd prints the PKIX public key of a PEM key, deriving it from a private key if needed
func (commandHandler *RSACommandHandler) PublicKeyCmd(cmd *cobra.Command, _ []string) error {
	pemKey, err := readKeyFile(cmd)
	if err != nil {
		return err
	}

	publicKeyPEM, err := commandHandler.rsaService.PublicKeyPEM(pemKey)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), publicKeyPEM)
	return err
}

func readKeyFile(cmd *cobra.Command) (string, error) {
	keyFile, err := cmd.Flags().GetString("key-file")
	if err != nil {
		return "", fmt.Errorf("invalid key-file flag: %w", err)
	}

	pemKey, err := os.ReadFile(filepath.Clean(keyFile))
	if err != nil {
		return "", fmt.Errorf("failed to read key file: %w", err)
	}
	return string(pemKey), nil
}

// InitRSACommands initializes all the RSA commands.
// The logger and the handler are created when a command runs, after the logging flags were parsed.
func InitRSACommands(rootCmd *cobra.Command) error {
	v, err := bindLoggerFlags(rootCmd)
	if err != nil {
		return err
	}

	return addRSACommands(rootCmd, func() (*RSACommandHandler, error) {
		loggerInstance, err := setupLogger(v)
		if err != nil {
			return nil, fmt.Errorf("failed to setup logger: %w", err)
		}
		return NewRSACommandHandler(loggerInstance)
	})
}

type rsaCommandFunc func(handler *RSACommandHandler, cmd *cobra.Command, args []string) error

func addRSACommands(rootCmd *cobra.Command, newHandler func() (*RSACommandHandler, error)) error {
	run := func(fn rsaCommandFunc) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			handler, err := newHandler()
			if err != nil {
				return err
			}
			return fn(handler, cmd, args)
		}
	}

	encryptRSACmd := &cobra.Command{
		Use:   "encrypt-rsa",
		Short: "Encrypt Base64 data with RSA/ECB/PKCS1Padding",
		Long:  "Encrypt Base64 data with a public key, or with the public key derived from a private key. Data must fit into one block (key size - 11 bytes).",
		RunE:  run((*RSACommandHandler).EncryptRSACmd),
	}
	encryptRSACmd.Flags().StringP("key-file", "", "", "Path to PEM public or private key")
	encryptRSACmd.Flags().StringP("data", "", "", "Base64 data to encrypt")
	rootCmd.AddCommand(encryptRSACmd)

	decryptRSACmd := &cobra.Command{
		Use:   "decrypt-rsa",
		Short: "Decrypt Base64 ciphertext with RSA/ECB/PKCS1Padding",
		RunE:  run((*RSACommandHandler).DecryptRSACmd),
	}
	decryptRSACmd.Flags().StringP("key-file", "", "", "Path to PEM private key")
	decryptRSACmd.Flags().StringP("data", "", "", "Base64 ciphertext to decrypt")
	rootCmd.AddCommand(decryptRSACmd)

	signRSACmd := &cobra.Command{
		Use:   "sign-rsa",
		Short: "Create a raw RSA signature (NONEwithRSA)",
		Long:  "Sign Base64 data with a private key. The data is not hashed before signing: pass a digest that fits into key size - 11 bytes.",
		RunE:  run((*RSACommandHandler).SignRSACmd),
	}
	signRSACmd.Flags().StringP("key-file", "", "", "Path to PEM private key")
	signRSACmd.Flags().StringP("data", "", "", "Base64 data (digest) to sign")
	rootCmd.AddCommand(signRSACmd)

	verifyRSACmd := &cobra.Command{
		Use:   "verify-rsa",
		Short: "Verify a raw RSA signature (NONEwithRSA)",
		RunE:  run((*RSACommandHandler).VerifyRSACmd),
	}
	verifyRSACmd.Flags().StringP("key-file", "", "", "Path to PEM public or private key")
	verifyRSACmd.Flags().StringP("data", "", "", "Base64 data (digest) that was signed")
	verifyRSACmd.Flags().StringP("signature", "", "", "Base64 signature")
	rootCmd.AddCommand(verifyRSACmd)

	publicKeyCmd := &cobra.Command{
		Use:   "public-key",
		Short: "Print the X.509 public key of a PEM key",
		RunE:  run((*RSACommandHandler).PublicKeyCmd),
	}
	publicKeyCmd.Flags().StringP("key-file", "", "", "Path to PEM public or private key")
	rootCmd.AddCommand(publicKeyCmd)

	for _, cmd := range []*cobra.Command{encryptRSACmd, decryptRSACmd, signRSACmd, verifyRSACmd, publicKeyCmd} {
		if err := cmd.MarkFlagRequired("key-file"); err != nil {
			return fmt.Errorf("failed to mark key-file required on %s: %w", cmd.Name(), err)
		}
	}
	if err := verifyRSACmd.MarkFlagRequired("signature"); err != nil {
		return fmt.Errorf("failed to mark signature required: %w", err)
	}

	return nil
}
