/*
 * F1AP codec configuration factory
 */

package factory

import (
	"fmt"
	"os"

	"github.com/asaskevich/govalidator"
	"gopkg.in/yaml.v2"

	"github.com/free5gc/f1ap/internal/logger"
)

var F1apConfig *Config

func InitConfigFactory(f string, cfg *Config) error {
	if f == "" {
		// Use default config path
		f = F1apDefaultConfigPath
	}

	if content, err := os.ReadFile(f); err != nil {
		return fmt.Errorf("[Factory] %+v", err)
	} else {
		logger.CfgLog.Infof("Read config from [%s]", f)
		if yamlErr := yaml.Unmarshal(content, cfg); yamlErr != nil {
			return fmt.Errorf("[Factory] %+v", yamlErr)
		}
	}

	return nil
}

func ReadConfig(cfgPath string) (*Config, error) {
	cfg := &Config{}
	if err := InitConfigFactory(cfgPath, cfg); err != nil {
		return nil, fmt.Errorf("ReadConfig [%s] Error: %+v", cfgPath, err)
	}
	if _, err := cfg.Validate(); err != nil {
		validErrs := []error{err}
		if errs, ok := err.(govalidator.Errors); ok {
			validErrs = errs.Errors()
		}
		for _, validErr := range validErrs {
			logger.CfgLog.Errorf("%+v", validErr)
		}
		logger.CfgLog.Errorf("[-- PLEASE REFER TO SAMPLE CONFIG FILE COMMENTS --]")
		return nil, fmt.Errorf("Config validate Error: %w", err)
	}

	return cfg, nil
}

// DefaultConfig is used when no configuration file is given.
func DefaultConfig() *Config {
	return &Config{
		Info: &Info{
			Version:     F1apExpectedConfigVersion,
			Description: "F1AP codec default configuration",
		},
		Configuration: &Configuration{
			Policy: &Policy{},
			Inspector: &Inspector{
				BindingIPv4: InspectorDefaultBindingIPv4,
				Port:        InspectorDefaultPort,
			},
		},
		Logger: &Logger{
			Enable: true,
			Level:  "info",
		},
	}
}
