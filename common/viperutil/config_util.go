/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package viperutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/hyperledger/fabric-rsa/bccsp/factory"
	"github.com/hyperledger/fabric-rsa/common/flogging"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

var logger = flogging.MustGetLogger("viperutil")

// ConfigPaths returns the paths from environment and
// defaults which are CWD and /etc/rsatool.
func ConfigPaths() []string {
	var paths []string
	if p := os.Getenv("RSATOOL_CFG_PATH"); p != "" {
		paths = append(paths, p)
	}
	return append(paths, ".", "/etc/rsatool")
}

// ConfigParser reads a YAML configuration file into a generic map and
// decodes it into a struct, letting environment variables prefixed with
// the upper cased config name override individual keys.
type ConfigParser struct {
	configPaths []string
	configName  string
	configFile  string

	config map[string]interface{}
}

// New creates a ConfigParser instance
func New() *ConfigParser {
	return &ConfigParser{config: map[string]interface{}{}}
}

// AddConfigPaths adds folders searched for the configuration file, in
// order. ConfigPaths is searched when none are added.
func (c *ConfigParser) AddConfigPaths(cfgPaths ...string) {
	c.configPaths = append(c.configPaths, cfgPaths...)
}

// SetConfigName provides the configuration file name stem. The upper-cased
// version of this value also serves as the environment variable override
// prefix.
func (c *ConfigParser) SetConfigName(in string) {
	c.configName = in
}

// SetConfigFile names the configuration file explicitly, bypassing the
// search through the config paths.
func (c *ConfigParser) SetConfigFile(path string) {
	c.configFile = path
}

// ConfigFileUsed returns the configuration file read, or to be read, by
// ReadInConfig. It is empty when the search found nothing.
func (c *ConfigParser) ConfigFileUsed() string {
	return c.configFile
}

var configExtensions = []string{"yaml", "yml"}

func (c *ConfigParser) findConfigFile() string {
	paths := c.configPaths
	if len(paths) == 0 {
		paths = ConfigPaths()
	}
	for _, dir := range paths {
		for _, ext := range configExtensions {
			candidate := filepath.Join(dir, c.configName+"."+ext)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
	}
	return ""
}

// ReadInConfig locates the configuration file and parses it.
func (c *ConfigParser) ReadInConfig() error {
	if c.configFile == "" {
		c.configFile = c.findConfigFile()
	}

	logger.Debugf("Attempting to open the config file: %s", c.configFile)
	file, err := os.Open(c.configFile)
	if err != nil {
		logger.Debugf("Unable to open the config file: %s", c.configFile)
		return err
	}
	defer file.Close()

	return c.ReadConfig(file)
}

// ReadConfig parses YAML from in. Empty input leaves the configuration
// empty.
func (c *ConfigParser) ReadConfig(in io.Reader) error {
	err := yaml.NewDecoder(in).Decode(c.config)
	if err == io.EOF {
		return nil
	}
	return err
}

// Get value for the key by searching environment variables.
func (c *ConfigParser) getFromEnv(key string) string {
	envKey := key
	if c.configName != "" {
		envKey = c.configName + "_" + envKey
	}
	envKey = strings.ToUpper(envKey)
	envKey = strings.ReplaceAll(envKey, ".", "_")
	return os.Getenv(envKey)
}

// EnhancedExactUnmarshal is intended to unmarshal a config file into a structure
// producing error when extraneous variables are introduced and supporting
// the time.Duration type
func (c *ConfigParser) EnhancedExactUnmarshal(output interface{}) error {
	return exactUnmarshal(c.config, c.getFromEnv, output)
}

// EnhancedExactUnmarshal decodes the settings of a viper instance, with
// its environment bindings applied, using the same rules as
// ConfigParser.EnhancedExactUnmarshal.
func EnhancedExactUnmarshal(v *viper.Viper, output interface{}) error {
	getter := func(key string) string {
		if s, ok := v.Get(key).(string); ok {
			return s
		}
		return ""
	}
	return exactUnmarshal(v.AllSettings(), getter, output)
}

func exactUnmarshal(baseKeys map[string]interface{}, getenv envGetter, output interface{}) error {
	oType := reflect.TypeOf(output)
	if oType.Kind() != reflect.Ptr {
		return errors.Errorf("supplied output argument must be a pointer to a struct but is not pointer")
	}
	eType := oType.Elem()
	if eType.Kind() != reflect.Struct {
		return errors.Errorf("supplied output argument must be a pointer to a struct, but it is pointer to something else")
	}

	leafKeys := getKeysRecursively("", getenv, baseKeys, eType)

	logger.Debugf("%+v", leafKeys)
	config := &mapstructure.DecoderConfig{
		ErrorUnused:      true,
		Metadata:         nil,
		Result:           output,
		WeaklyTypedInput: true,
		DecodeHook:       DecodeHook(),
	}

	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return err
	}
	return decoder.Decode(leafKeys)
}

// DecodeHook returns the hooks used when decoding configuration: BCCSP
// options start from the factory defaults, durations are parsed, and
// strings like "[a, b]" become slices.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		bccspHook,
		mapstructure.StringToTimeDurationHookFunc(),
		customDecodeHook,
	)
}

// Prototype declaration for getFromEnv function.
type envGetter func(key string) string

func getKeysRecursively(base string, getenv envGetter, nodeKeys map[string]interface{}, oType reflect.Type) map[string]interface{} {
	subTypes := map[string]reflect.Type{}

	if oType != nil && oType.Kind() == reflect.Ptr {
		oType = oType.Elem()
	}
	if oType != nil && oType.Kind() == reflect.Struct {
	outer:
		for i := 0; i < oType.NumField(); i++ {
			fieldName := oType.Field(i).Name
			fieldType := oType.Field(i).Type

			for key := range nodeKeys {
				if strings.EqualFold(fieldName, key) {
					subTypes[key] = fieldType
					continue outer
				}
			}

			subTypes[fieldName] = fieldType
			nodeKeys[fieldName] = nil
		}
	}

	result := make(map[string]interface{})
	for key, val := range nodeKeys {
		fqKey := base + key

		// overwrite val, if an environment is available
		if override := getenv(fqKey); override != "" {
			val = override
		}

		switch val := val.(type) {
		case map[string]interface{}:
			logger.Debugf("Found map[string]interface{} value for %s", fqKey)
			result[key] = getKeysRecursively(fqKey+".", getenv, val, subTypes[key])

		case map[interface{}]interface{}:
			logger.Debugf("Found map[interface{}]interface{} value for %s", fqKey)
			result[key] = getKeysRecursively(fqKey+".", getenv, toMapStringInterface(val), subTypes[key])

		case nil:
			// only plain structs are walked; optional sections stay unset
			if st := subTypes[key]; st != nil && st.Kind() == reflect.Struct {
				if nested := getKeysRecursively(fqKey+".", getenv, map[string]interface{}{}, st); len(nested) > 0 {
					result[key] = nested
				}
			}

		default:
			result[key] = val
		}
	}
	return result
}

func toMapStringInterface(m map[interface{}]interface{}) map[string]interface{} {
	result := map[string]interface{}{}
	for k, v := range m {
		k, ok := k.(string)
		if !ok {
			panic(fmt.Sprintf("Non string %v, %v: key-entry: %v", k, v, k))
		}
		result[k] = v
	}
	return result
}

// customDecodeHook parses strings of the format "[thing1, thing2, thing3]"
// into string slices. Note that whitespace around slice elements is removed.
func customDecodeHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}

	raw := data.(string)
	l := len(raw)
	if l > 1 && raw[0] == '[' && raw[l-1] == ']' {
		slice := strings.Split(raw[1:l-1], ",")
		for i, v := range slice {
			slice[i] = strings.TrimSpace(v)
		}
		return slice, nil
	}

	return data, nil
}

func bccspHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if t != reflect.TypeOf(&factory.FactoryOpts{}) {
		return data, nil
	}

	config := factory.GetDefaultOpts()

	err := mapstructure.WeakDecode(data, config)
	if err != nil {
		return nil, errors.Wrap(err, "could not decode bccsp type")
	}

	return config, nil
}
