package cmd

import (
	"fmt"
	"os"
	"path"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orb-forge/pkg/crypto"
	"github.com/spf13/cobra"
)

type generateKeypairCmdOptions struct {
	Path string
}

func NewGenerateKeypairCommand() *cobra.Command {
	opts := &generateKeypairCmdOptions{}

	cmd := &cobra.Command{
		Use:   "generate-keypair",
		Short: "Generate a new ed25519 keypair for signing forge requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateKeypairHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Path, "path", "/data/keys", `Path to save to key pair file`)

	return cmd
}

func generateKeypairHandler(opts *generateKeypairCmdOptions, cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generating key pair\n")
	privateKey, publicKey, err := crypto.GenerateKey()
	if err != nil {
		return errors.Wrap(err, "generate key pair")
	}
	fmt.Fprintf(out, "Public key: %s\n", publicKey)

	if err := os.MkdirAll(opts.Path, 0o755); err != nil {
		return errors.Wrap(err, "create directory")
	}

	privateKeyPath := path.Join(opts.Path, "priv.key")
	if _, err := os.Stat(privateKeyPath); err == nil {
		fmt.Fprintf(out, "Existing private key found at %s\n[WARNING] THE EXISTING PRIVATE KEY WILL BE LOST\nType [replace] to replace existing private key: ", privateKeyPath)
		var ans string
		_, _ = fmt.Fscanln(cmd.InOrStdin(), &ans)
		if ans != "replace" {
			fmt.Fprintf(out, "Keypair generation aborted\n")
			return nil
		}
	}

	if err := os.WriteFile(privateKeyPath, []byte(privateKey), 0o600); err != nil {
		return errors.Wrap(err, "write private key file")
	}
	fmt.Fprintf(out, "Private key saved at %s\n", privateKeyPath)

	publicKeyPath := path.Join(opts.Path, "pub.key")
	if err := os.WriteFile(publicKeyPath, []byte(publicKey), 0o644); err != nil {
		return errors.Wrap(err, "write public key file")
	}
	fmt.Fprintf(out, "Public key saved at %s\n", publicKeyPath)
	return nil
}
