// Package config handles input from etc/main.toml, the environment and PDNS_API_CONFIG_JSON.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. PDNS_API_API_KEY.
	EnvPrefix = "PDNS_API"

	// EnvConfigJSON holds a JSON document merged over everything else.
	EnvConfigJSON = EnvPrefix + "_CONFIG_JSON"

	// FileName is looked up inside the config directory.
	FileName = "main.toml"

	// Engine names accepted by Mock.DB.GormEngine.
	EngineSQLite   = "sqlite"
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
)

// ReadConfig reads <path>/main.toml if it exists, applies PDNS_API_* environment
// variables and finally PDNS_API_CONFIG_JSON. An empty path means ./etc/.
func ReadConfig(path string) (Config, error) {
	var c Config

	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file := filepath.Join(path, FileName)
	if _, err := os.Stat(file); err == nil {
		v.SetConfigFile(file)

		if err = v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(err, "failed to read main config file")
		}
	} else if !os.IsNotExist(err) {
		return Config{}, errors.Wrap(err, "failed to stat main config file")
	}

	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode configuration")
	}

	if JSONConfigEnv := os.Getenv(EnvConfigJSON); JSONConfigEnv != "" {
		if err := json.Unmarshal([]byte(JSONConfigEnv), &c); err != nil {
			return Config{}, errors.Wrap(err, "failed to decode "+EnvConfigJSON)
		}
	}

	return c, validate(&c)
}

func setDefaults(v *viper.Viper) {
	defaults := map[string]any{
		"devmode": false,

		"log.loglevel":                 "info",
		"log.appname":                  "pdns-api",
		"log.servicename":              "pdns-api",
		"log.reportcaller":             false,
		"log.enableaccesslogtoconsole": false,
		"log.console.enabled":          true,
		"log.console.useconsolewriter": true,
		"log.file.enabled":             false,
		"log.file.path":                "./log",
		"log.file.access.file":         "access.log",
		"log.file.error.file":          "error.log",
		"log.file.info.file":           "info.log",
		"log.file.trace.file":          "trace.log",
		"log.file.warn.file":           "warn.log",

		"api.host":     "127.0.0.1",
		"api.port":     8081,
		"api.protocol": "http",
		"api.key":      "",
		"api.timeout":  30 * time.Second,

		"mock.listen":       "127.0.0.1:8081",
		"mock.serverid":     "localhost",
		"mock.version":      "4.9.0",
		"mock.key":          "",
		"mock.seed":         true,
		"mock.shutdowntime": 5,

		"mock.db.gormengine": EngineSQLite,
		"mock.db.path":       "./pdns-mock.db",
		"mock.db.extras":     "",
		"mock.db.host":       "",
		"mock.db.port":       0,
		"mock.db.user":       "",
		"mock.db.password":   "",
		"mock.db.name":       "",
	}

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// DumpConfig config as TOML String.
func DumpConfig(c Config) (string, error) {
	var buffer bytes.Buffer

	if err := toml.NewEncoder(&buffer).Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks what the commands cannot recover from and fills late defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.API.Host == "" {
		return errors.Wrap(ErrAPIHostEmpty, invalidErrMessage)
	}

	if c.API.Port < 1 || c.API.Port > 65535 {
		return errors.Wrap(ErrAPIPortOutOfRange, invalidErrMessage)
	}

	if c.API.Protocol != "http" && c.API.Protocol != "https" {
		return errors.Wrap(ErrAPIProtocol, invalidErrMessage)
	}

	if c.Mock.Listen == "" {
		return errors.Wrap(ErrMockListenEmpty, invalidErrMessage)
	}

	switch c.Mock.DB.GormEngine {
	case EngineSQLite, EngineMySQL, EnginePostgres:
	default:
		return errors.Wrap(ErrUnsupportedEngine, invalidErrMessage)
	}

	if c.Mock.ShutDownTime <= 0 {
		c.Mock.ShutDownTime = 5
	}

	if c.API.Timeout <= 0 {
		c.API.Timeout = 30 * time.Second
	}

	return nil
}
