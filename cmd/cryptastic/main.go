// Command cryptastic provisions verification keys for the cryptastic core
// and checks signed blobs against them.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"lol.mleku.dev/chk"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "cryptastic",
		Short: "RSA-2048 and secp256r1 key provisioning and signature checks",
		Long: `cryptastic computes the Montgomery constants a verifier needs for an
RSA modulus or a secp256r1 public key, and verifies signed uploads with the
same arithmetic core the verifier runs.`,
		SilenceErrors: true,
	}
	root.AddCommand(provisionCmd(), verifyCmd())
	return root
}

func main() {
	if err := newRootCommand().Execute(); chk.E(err) {
		os.Exit(1)
	}
}
