/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hyperledger/fabric-rsa/common/flogging"
	"github.com/hyperledger/fabric-rsa/common/viperutil"
	"github.com/hyperledger/fabric-rsa/internal/rsatool"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const cmdRoot = "rsasign"

// The main command describes the service and
// defaults to printing the help message.
var mainCmd = &cobra.Command{
	Use:   cmdRoot,
	Short: "Sign files and verify signatures with textbook RSA.",
	Long:  "Signs the digest of a file with privkey.rsa, writing <file>.sig, or verifies <file>.sig with pubkey.rsa.",
}

func main() {
	// For environment variables.
	viper.SetEnvPrefix(cmdRoot)
	viper.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	addFlags(mainCmd.PersistentFlags())

	mainCmd.AddCommand(signCmd())
	mainCmd.AddCommand(verifyCmd())
	mainCmd.AddCommand(versionCmd())

	// On failure Cobra prints the usage message and error string, so we only
	// need to exit with a non-0 status
	if mainCmd.Execute() != nil {
		os.Exit(1)
	}
}

// addFlags defines the flags shared by every subcommand. Their defaults
// are the tool defaults; a configuration file or environment variable
// takes precedence over a flag that is not set explicitly.
func addFlags(flags *pflag.FlagSet) {
	defaults := rsatool.DefaultConfig()
	flags.String("config", "", "The configuration file to use instead of searching for rsasign.yaml")
	flags.String("keystore", defaults.Keystore, "The folder holding pubkey.rsa and privkey.rsa")
	flags.String("hash", defaults.Hash, "The digest applied to the file, SHA256 or SHA3_256")
	flags.String("suffix", defaults.SignatureSuffix, "The suffix naming the signature file")
	viper.BindPFlag("keystore", flags.Lookup("keystore"))
	viper.BindPFlag("hash", flags.Lookup("hash"))
	viper.BindPFlag("signaturesuffix", flags.Lookup("suffix"))
}

func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "sign <file>",
		Aliases: []string{"s"},
		Short:   "Sign a file.",
		Long:    "Signs the digest of <file> with privkey.rsa and writes the signature to <file>.sig.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Parsing of the command line is done so silence cmd usage
			cmd.SilenceUsage = true

			tool, flush, err := initTool(cmd)
			if err != nil {
				return err
			}
			path, err := tool.SignFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signature written to %s\n", path)
			return flush()
		},
	}
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "verify <file>",
		Aliases: []string{"v"},
		Short:   "Verify the signature of a file.",
		Long:    "Verifies <file>.sig against the digest of <file> with pubkey.rsa.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			tool, flush, err := initTool(cmd)
			if err != nil {
				return err
			}
			valid, err := tool.VerifyFile(args[0])
			if err != nil {
				return err
			}
			if valid {
				fmt.Fprintln(cmd.OutOrStdout(), "The signature is valid.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "The signature is not valid.")
			}
			return flush()
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print rsasign version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), rsatool.VersionInfo(cmdRoot))
		},
	}
}

func initTool(cmd *cobra.Command) (*rsatool.Tool, func() error, error) {
	if err := readConfigFile(cmd); err != nil {
		return nil, nil, err
	}
	conf, err := rsatool.LoadConfig(viper.GetViper())
	if err != nil {
		return nil, nil, err
	}

	flogging.Init(flogging.Config{
		Format:  conf.Logging.Format,
		LogSpec: conf.Logging.Spec,
		Writer:  cmd.ErrOrStderr(),
	})

	provider, flush := rsatool.NewMetricsProvider(conf.Metrics)
	tool, err := rsatool.New(conf, provider)
	if err != nil {
		return nil, nil, err
	}
	return tool, flush, nil
}

func readConfigFile(cmd *cobra.Command) error {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(cmdRoot)
		for _, p := range viperutil.ConfigPaths() {
			viper.AddConfigPath(p)
		}
	}

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed reading configuration file")
	}
	return nil
}
