/*
Copyright IBM Corp. 2016 All Rights Reserved.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

		 http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package factory

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	flag.Parse()

	var jsonBCCSP, yamlBCCSP *FactoryOpts
	jsonCFG := []byte(
		`{ "default": "SW", "SW":{ "security": 384, "hash": "SHA3" } }`)

	err := json.Unmarshal(jsonCFG, &jsonBCCSP)
	if err != nil {
		fmt.Printf("Could not parse JSON config [%s]", err)
		os.Exit(-1)
	}

	yamlCFG := `
BCCSP:
    default: SW
    SW:
        Hash: SHA3
        Security: 256`

	viper.SetConfigType("yaml")
	err = viper.ReadConfig(bytes.NewBuffer([]byte(yamlCFG)))
	if err != nil {
		fmt.Printf("Could not read YAML config [%s]", err)
		os.Exit(-1)
	}

	err = viper.UnmarshalKey("bccsp", &yamlBCCSP)
	if err != nil {
		fmt.Printf("Could not parse YAML config [%s]", err)
		os.Exit(-1)
	}

	cfgVariations := []*FactoryOpts{
		{
			ProviderName: "SW",
			SwOpts: &SwOpts{
				HashFamily: "SHA2",
				SecLevel:   256,

				Ephemeral: true,
			},
		},
		{},
		{
			ProviderName: "SW",
		},
		jsonBCCSP,
		yamlBCCSP,
	}

	for index, config := range cfgVariations {
		fmt.Printf("Trying configuration [%d]\n", index)
		factoriesInitError = initFactories(config)
		if factoriesInitError != nil {
			fmt.Printf("Failed initializing configuration [%d]: [%s]\n", index, factoriesInitError)
			os.Exit(-1)
		}
		if rc := m.Run(); rc != 0 {
			os.Exit(rc)
		}
	}
	os.Exit(0)
}

func TestGetDefault(t *testing.T) {
	bccsp := GetDefault()
	if bccsp == nil {
		t.Fatal("Failed getting default BCCSP. Nil instance.")
	}
}

func TestGetBCCSP(t *testing.T) {
	bccsp, err := GetBCCSP("SW")
	assert.NoError(t, err)
	assert.NotNil(t, bccsp)

	bccsp, err = GetBCCSP("BadName")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Could not find BCCSP, no 'BadName' provider")
	assert.Nil(t, bccsp)
}

func TestGetBCCSPFromOpts(t *testing.T) {
	opts := GetDefaultOpts()
	opts.SwOpts.FileKeystore = &FileKeystoreOpts{KeyStorePath: t.TempDir()}
	csp, err := GetBCCSPFromOpts(opts)
	assert.NoError(t, err)
	assert.NotNil(t, csp)

	opts.SwOpts.HashFamily = "SHA8"
	_, err = GetBCCSPFromOpts(opts)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Could not initialize BCCSP SW")

	_, err = GetBCCSPFromOpts(&FactoryOpts{ProviderName: "PKCS11"})
	assert.EqualError(t, err, "Could not find BCCSP, no 'PKCS11' provider")
}

func TestSWFactoryGet(t *testing.T) {
	f := &SWFactory{}
	assert.Equal(t, "SW", f.Name())

	_, err := f.Get(nil)
	assert.EqualError(t, err, "Invalid config. It must not be nil.")

	_, err = f.Get(&FactoryOpts{})
	assert.EqualError(t, err, "Invalid config. It must not be nil.")

	csp, err := f.Get(&FactoryOpts{SwOpts: &SwOpts{SecLevel: 384, HashFamily: "SHA2"}})
	assert.NoError(t, err)
	assert.NotNil(t, csp)

	_, err = f.Get(&FactoryOpts{SwOpts: &SwOpts{SecLevel: 256, HashFamily: "SHA2", FileKeystore: &FileKeystoreOpts{}}})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to initialize software key store")
}

func TestFactoryOptsFromYAML(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	err := v.ReadConfig(bytes.NewBufferString(`
default: SW
SW:
    Hash: SHA2
    Security: 384
    FileKeyStore:
        KeyStore: /tmp/keys
        ReadOnly: true
`))
	assert.NoError(t, err)

	var opts FactoryOpts
	assert.NoError(t, v.Unmarshal(&opts))
	assert.Equal(t, "SW", opts.FactoryName())
	assert.Equal(t, 384, opts.SwOpts.SecLevel)
	assert.Equal(t, "SHA2", opts.SwOpts.HashFamily)
	assert.Equal(t, &FileKeystoreOpts{KeyStorePath: "/tmp/keys", ReadOnly: true}, opts.SwOpts.FileKeystore)
}
