/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"
	"os"

	"github.com/hyperledger/fabric-rsa/common/flogging"
	"github.com/hyperledger/fabric-rsa/common/viperutil"
	"github.com/hyperledger/fabric-rsa/internal/rsatool"
	"gopkg.in/alecthomas/kingpin.v2"
)

const programName = "rsakeygen"

var (
	app = kingpin.New(programName, "Textbook RSA key generator")

	configFile = app.Flag("config", "The configuration file to use. Searched for as rsakeygen.yaml in $RSATOOL_CFG_PATH, the current directory and /etc/rsatool when unset.").String()
	keystore   = app.Flag("keystore", "The folder pubkey.rsa and privkey.rsa are written to.").String()
	verbose    = app.Flag("verbose", "Print the generated key parameters (P, Q, N, PHI_N, E and D).").Short('v').Bool()

	gen          = app.Command("generate", "Generate a key pair and write pubkey.rsa and privkey.rsa.").Default()
	showtemplate = app.Command("showtemplate", "Show the default configuration template.")
	version      = app.Command("version", "Show version information.")
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	switch command {
	case gen.FullCommand():
		if err := generate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating keys: %s\n", err)
			os.Exit(1)
		}

	case showtemplate.FullCommand():
		tmpl, err := rsatool.DefaultConfig().Template()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering template: %s\n", err)
			os.Exit(1)
		}
		fmt.Print(tmpl)

	case version.FullCommand():
		fmt.Print(rsatool.VersionInfo(programName))
	}
}

func generate() error {
	cp := viperutil.New()
	cp.SetConfigName(programName)
	if *configFile != "" {
		cp.SetConfigFile(*configFile)
	}
	conf, err := rsatool.ParseConfig(cp)
	if err != nil {
		return err
	}
	if *keystore != "" {
		conf.Keystore = *keystore
	}

	flogging.Init(flogging.Config{
		Format:  conf.Logging.Format,
		LogSpec: conf.Logging.Spec,
		Writer:  os.Stderr,
	})

	provider, flush := rsatool.NewMetricsProvider(conf.Metrics)
	tool, err := rsatool.New(conf, provider)
	if err != nil {
		return err
	}
	k, err := tool.GenerateKeys()
	if err != nil {
		return err
	}
	if *verbose {
		info, err := rsatool.KeyInfo(k)
		if err != nil {
			return err
		}
		fmt.Print(info)
	}
	return flush()
}
