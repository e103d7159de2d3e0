package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"lol.mleku.dev/log"

	"cryptastic.mleku.dev"
)

var errRejected = errors.New("signature rejected")

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a signed blob",
	}
	cmd.AddCommand(verifyRSACmd(), verifyECDSACmd())
	return cmd
}

func readBlob(path string) ([]byte, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading blob %s", path)
	}
	log.D.F("read %d byte blob from %s", len(blob), path)
	return blob, nil
}

func verifyRSACmd() *cobra.Command {
	var modulus, blobPath string
	var exponent uint32
	cmd := &cobra.Command{
		Use:   "rsa",
		Short: "Verify a 256-byte RSA signature followed by its payload",
		Long: `The blob is a 256-byte big-endian signature followed by the payload.
The signature is accepted when its low 32 bytes, once opened, equal
SHA-256(payload). Padding bytes are not inspected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			k, err := rsaKeyFromHex(modulus, exponent)
			if err != nil {
				return err
			}
			blob, err := readBlob(blobPath)
			if err != nil {
				return err
			}
			if len(blob) < 256 {
				return errors.Errorf("blob is %d bytes, shorter than a signature", len(blob))
			}
			var s cryptastic.Scratch2048
			if !k.VerifyRSABlob(blob, &s) {
				return errRejected
			}
			log.I.F("RSA signature over %d payload bytes verified", len(blob)-256)
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
	cmd.Flags().StringVar(&modulus, "modulus", "", "big-endian hex modulus")
	cmd.Flags().Uint32Var(&exponent, "exponent", 65537, "public exponent")
	cmd.Flags().StringVar(&blobPath, "blob", "", "path to the signed blob")
	_ = cmd.MarkFlagRequired("modulus")
	_ = cmd.MarkFlagRequired("blob")
	return cmd
}

func verifyECDSACmd() *cobra.Command {
	var pubkey, blobPath string
	cmd := &cobra.Command{
		Use:   "ecdsa",
		Short: "Verify an r||s secp256r1 signature followed by its payload",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c := cryptastic.P256()
			pk, err := ecdsaKeyFromHex(c, pubkey)
			if err != nil {
				return err
			}
			blob, err := readBlob(blobPath)
			if err != nil {
				return err
			}
			if len(blob) < 64 {
				return errors.Errorf("blob is %d bytes, shorter than a signature", len(blob))
			}
			if !c.VerifyECDSABlob(pk, blob) {
				return errRejected
			}
			log.I.F("ECDSA signature over %d payload bytes verified", len(blob)-64)
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
	cmd.Flags().StringVar(&pubkey, "pubkey", "", "hex public key, x||y or 04||x||y")
	cmd.Flags().StringVar(&blobPath, "blob", "", "path to the signed blob")
	_ = cmd.MarkFlagRequired("pubkey")
	_ = cmd.MarkFlagRequired("blob")
	return cmd
}
