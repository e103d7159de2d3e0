package main

import (
	"github.com/spf13/cobra"
	"lol.mleku.dev/log"

	"cryptastic.mleku.dev"
)

func provisionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Derive verifier constants for a key",
	}
	cmd.AddCommand(provisionRSACmd(), provisionECDSACmd())
	return cmd
}

func provisionRSACmd() *cobra.Command {
	var modulus string
	var exponent uint32
	cmd := &cobra.Command{
		Use:   "rsa",
		Short: "Print R mod n and R² mod n for an RSA-2048 modulus",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			k, err := rsaKeyFromHex(modulus, exponent)
			if err != nil {
				return err
			}
			log.D.F("modulus accepted, e=%d", k.E)

			out := cmd.OutOrStdout()
			writeLimbs(out, "RSA_N", k.N[:])
			writeLimbs(out, "RSA_R", k.R[:])
			writeLimbs(out, "RSA_RR", k.RR[:])
			return nil
		},
	}
	cmd.Flags().StringVar(&modulus, "modulus", "", "big-endian hex modulus")
	cmd.Flags().Uint32Var(&exponent, "exponent", 65537, "public exponent")
	_ = cmd.MarkFlagRequired("modulus")
	return cmd
}

func provisionECDSACmd() *cobra.Command {
	var pubkey string
	cmd := &cobra.Command{
		Use:   "ecdsa",
		Short: "Print the Montgomery form of a secp256r1 key and of key+G",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			pk, err := ecdsaKeyFromHex(cryptastic.P256(), pubkey)
			if err != nil {
				return err
			}
			log.D.F("public key is on the curve")

			out := cmd.OutOrStdout()
			x, y := pk.Point.X.Limbs(), pk.Point.Y.Limbs()
			gx, gy := pk.PlusG.X.Limbs(), pk.PlusG.Y.Limbs()
			writeLimbs(out, "PUBKEY_X", x[:])
			writeLimbs(out, "PUBKEY_Y", y[:])
			writeLimbs(out, "PUBKEY_PLUS_G_X", gx[:])
			writeLimbs(out, "PUBKEY_PLUS_G_Y", gy[:])
			return nil
		},
	}
	cmd.Flags().StringVar(&pubkey, "pubkey", "", "hex public key, x||y or 04||x||y")
	_ = cmd.MarkFlagRequired("pubkey")
	return cmd
}
