// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/imdario/mergo"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type Config struct {
	GatewayConfig GatewayConfig
}

type RawConfig struct {
	GatewayConfig RawGatewayConfig `mapstructure:"gateway" json:"gateway"`
}

type GatewayConfig struct {
	LogLevel   zerolog.Level
	LogFile    string
	HealthPort string
	Env        string
	ID         string
	Owner      common.Address
	Oracle     common.Address
	Custody    common.Address
}

type RawGatewayConfig struct {
	LogLevel   string `mapstructure:"logLevel" json:"logLevel" default:"info"`
	LogFile    string `mapstructure:"logFile" json:"logFile" default:"out.log"`
	HealthPort string `mapstructure:"healthPort" json:"healthPort" default:"9001"`
	Env        string `mapstructure:"env" json:"env"`
	ID         string `mapstructure:"id" json:"id"`
	Owner      string `mapstructure:"owner" json:"owner"`
	Oracle     string `mapstructure:"oracle" json:"oracle"`
	Custody    string `mapstructure:"custody" json:"custody"`
}

func (c *RawGatewayConfig) Validate() error {
	if !common.IsHexAddress(c.Owner) || common.HexToAddress(c.Owner) == (common.Address{}) {
		return fmt.Errorf("invalid owner address: %s", c.Owner)
	}
	if !common.IsHexAddress(c.Oracle) || common.HexToAddress(c.Oracle) == (common.Address{}) {
		return fmt.Errorf("invalid oracle address: %s", c.Oracle)
	}
	if !common.IsHexAddress(c.Custody) || common.HexToAddress(c.Custody) == (common.Address{}) {
		return fmt.Errorf("invalid custody address: %s", c.Custody)
	}
	return nil
}

// NewGatewayConfig parses RawGatewayConfig into GatewayConfig
func NewGatewayConfig(rawConfig RawGatewayConfig) (GatewayConfig, error) {
	config := GatewayConfig{}
	err := rawConfig.Validate()
	if err != nil {
		return config, err
	}

	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, fmt.Errorf("unknown log level: %s", rawConfig.LogLevel)
	}

	config.LogLevel = logLevel
	config.LogFile = rawConfig.LogFile
	config.HealthPort = rawConfig.HealthPort
	config.Env = rawConfig.Env
	config.ID = rawConfig.ID
	config.Owner = common.HexToAddress(rawConfig.Owner)
	config.Oracle = common.HexToAddress(rawConfig.Oracle)
	config.Custody = common.HexToAddress(rawConfig.Custody)
	return config, nil
}

// GetConfigFromENV reads config from Env variables, validates it and parses
// it into config suitable for application
//
// Properties of GatewayConfig are expected to be defined as separate Env
// variables where the Env variable name reflects the property position in
// the structure. Each Env variable needs to be prefixed with CGW.
//
// For example, Config.GatewayConfig.HealthPort translates to an Env
// variable named CGW_GATEWAY_HEALTHPORT.
func GetConfigFromENV(config *Config) (*Config, error) {
	rawConfig, err := loadFromEnv()
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetConfigFromFile reads config from file, validates it and parses
// it into config suitable for application. Env variables with the CGW
// prefix override values read from the file.
func GetConfigFromFile(path string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return config, err
	}

	err = viper.Unmarshal(&rawConfig)
	if err != nil {
		return config, err
	}

	envConfig, err := loadFromEnv()
	if err != nil {
		return config, err
	}
	if err := mergo.Merge(&rawConfig, envConfig, mergo.WithOverride); err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

func processRawConfig(rawConfig RawConfig, config *Config) (*Config, error) {
	if err := defaults.Set(&rawConfig); err != nil {
		return config, err
	}

	gatewayConfig, err := NewGatewayConfig(rawConfig.GatewayConfig)
	if err != nil {
		return config, err
	}

	config.GatewayConfig = gatewayConfig
	return config, nil
}
