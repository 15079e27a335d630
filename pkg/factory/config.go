/*
 * F1AP codec configuration factory
 */

package factory

import (
	"fmt"
	"net"
	"strconv"
	"sync"

	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"

	"github.com/free5gc/f1ap/internal/logger"
	"github.com/free5gc/f1ap/pkg/codec"
)

const (
	F1apDefaultConfigPath       = "./config/f1apcfg.yaml"
	F1apExpectedConfigVersion   = "1.0.0"
	InspectorDefaultBindingIPv4 = "127.0.0.1"
	InspectorDefaultPort        = 38472
	InspectorDecodePath         = "/f1ap/decode"
	InspectorEncodePath         = "/f1ap/encode"
	InspectorMetricsPath        = "/metrics"
)

type Config struct {
	Info          *Info          `yaml:"info" valid:"required"`
	Configuration *Configuration `yaml:"configuration" valid:"required"`
	Logger        *Logger        `yaml:"logger" valid:"required"`
	sync.RWMutex
}

func (c *Config) Validate() (bool, error) {
	if configuration := c.Configuration; configuration != nil {
		if result, err := configuration.validate(); err != nil {
			return result, err
		}
	}

	result, err := govalidator.ValidateStruct(c)
	return result, appendInvalid(err)
}

type Info struct {
	Version     string `yaml:"version" valid:"required,in(1.0.0)"`
	Description string `yaml:"description,omitempty" valid:"type(string)"`
}

type Configuration struct {
	Policy    *Policy    `yaml:"policy,omitempty" valid:"optional"`
	Inspector *Inspector `yaml:"inspector,omitempty" valid:"optional"`
}

func (c *Configuration) validate() (bool, error) {
	if inspector := c.Inspector; inspector != nil {
		if result, err := inspector.validate(); err != nil {
			return result, err
		}
	}
	if policy := c.Policy; policy != nil {
		if _, err := policy.CodecPolicy(); err != nil {
			return false, err
		}
	}

	result, err := govalidator.ValidateStruct(c)
	return result, appendInvalid(err)
}

// Policy mirrors codec.Policy; every field is "warn" or "reject" and an
// empty field keeps the codec default.
type Policy struct {
	MultipleServedPLMNs    string `yaml:"multipleServedPlmns,omitempty" valid:"optional,in(warn|reject)"`
	MultipleFrequencyBands string `yaml:"multipleFrequencyBands,omitempty" valid:"optional,in(warn|reject)"`
	SULBands               string `yaml:"sulBands,omitempty" valid:"optional,in(warn|reject)"`
	UnknownExtensionIgnore string `yaml:"unknownExtensionIgnore,omitempty" valid:"optional,in(warn|reject)"`
	UnknownExtensionReject string `yaml:"unknownExtensionReject,omitempty" valid:"optional,in(warn|reject)"`
}

func (p *Policy) CodecPolicy() (codec.Policy, error) {
	policy := codec.DefaultPolicy()
	if p == nil {
		return policy, nil
	}
	fields := []struct {
		name   string
		value  string
		action *codec.Action
	}{
		{"multipleServedPlmns", p.MultipleServedPLMNs, &policy.MultipleServedPLMNs},
		{"multipleFrequencyBands", p.MultipleFrequencyBands, &policy.MultipleFrequencyBands},
		{"sulBands", p.SULBands, &policy.SULBands},
		{"unknownExtensionIgnore", p.UnknownExtensionIgnore, &policy.UnknownExtensionIgnore},
		{"unknownExtensionReject", p.UnknownExtensionReject, &policy.UnknownExtensionReject},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		action, err := codec.ParseAction(f.value)
		if err != nil {
			return policy, errors.WithMessagef(err, "policy.%s", f.name)
		}
		*f.action = action
	}
	return policy, nil
}

type Inspector struct {
	BindingIPv4 string `yaml:"bindingIPv4,omitempty" valid:"optional,host"`
	Port        int    `yaml:"port,omitempty" valid:"optional,port"`
	// MaxBodySize limits decode requests, in bytes.
	MaxBodySize int64 `yaml:"maxBodySize,omitempty" valid:"optional"`
}

func (i *Inspector) validate() (bool, error) {
	if i.MaxBodySize < 0 {
		return false, fmt.Errorf("inspector.maxBodySize %d is negative", i.MaxBodySize)
	}
	result, err := govalidator.ValidateStruct(i)
	return result, appendInvalid(err)
}

type Logger struct {
	Enable       bool   `yaml:"enable" valid:"type(bool)"`
	Level        string `yaml:"level" valid:"required,in(trace|debug|info|warn|error|fatal|panic)"`
	ReportCaller bool   `yaml:"reportCaller" valid:"type(bool)"`
}

func appendInvalid(err error) error {
	var errs govalidator.Errors

	if err == nil {
		return nil
	}

	es, ok := err.(govalidator.Errors)
	if !ok {
		return err
	}
	for _, e := range es.Errors() {
		errs = append(errs, fmt.Errorf("invalid %w", e))
	}

	return error(errs)
}

func (c *Config) GetVersion() string {
	c.RLock()
	defer c.RUnlock()

	if c.Info.Version != "" {
		return c.Info.Version
	}
	return ""
}

func (c *Config) SetLogEnable(enable bool) {
	c.Lock()
	defer c.Unlock()

	if c.Logger == nil {
		logger.CfgLog.Warnf("Logger should not be nil")
		c.Logger = &Logger{
			Enable: enable,
			Level:  "info",
		}
	} else {
		c.Logger.Enable = enable
	}
}

func (c *Config) SetLogLevel(level string) {
	c.Lock()
	defer c.Unlock()

	if c.Logger == nil {
		logger.CfgLog.Warnf("Logger should not be nil")
		c.Logger = &Logger{
			Level: level,
		}
	} else {
		c.Logger.Level = level
	}
}

func (c *Config) SetLogReportCaller(reportCaller bool) {
	c.Lock()
	defer c.Unlock()

	if c.Logger == nil {
		logger.CfgLog.Warnf("Logger should not be nil")
		c.Logger = &Logger{
			Level:        "info",
			ReportCaller: reportCaller,
		}
	} else {
		c.Logger.ReportCaller = reportCaller
	}
}

func (c *Config) GetLogEnable() bool {
	c.RLock()
	defer c.RUnlock()
	if c.Logger == nil {
		logger.CfgLog.Warnf("Logger should not be nil")
		return false
	}
	return c.Logger.Enable
}

func (c *Config) GetLogLevel() string {
	c.RLock()
	defer c.RUnlock()
	if c.Logger == nil {
		logger.CfgLog.Warnf("Logger should not be nil")
		return "info"
	}
	return c.Logger.Level
}

func (c *Config) GetLogReportCaller() bool {
	c.RLock()
	defer c.RUnlock()
	if c.Logger == nil {
		logger.CfgLog.Warnf("Logger should not be nil")
		return false
	}
	return c.Logger.ReportCaller
}

func (c *Config) GetCodecPolicy() (codec.Policy, error) {
	c.RLock()
	defer c.RUnlock()
	if c.Configuration == nil {
		return codec.DefaultPolicy(), nil
	}
	return c.Configuration.Policy.CodecPolicy()
}

// GetInspectorAddr returns host:port of the inspector, defaults filled in.
func (c *Config) GetInspectorAddr() string {
	c.RLock()
	defer c.RUnlock()

	host, port := InspectorDefaultBindingIPv4, InspectorDefaultPort
	if c.Configuration != nil && c.Configuration.Inspector != nil {
		if ip := c.Configuration.Inspector.BindingIPv4; ip != "" {
			host = ip
		}
		if p := c.Configuration.Inspector.Port; p != 0 {
			port = p
		}
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

func (c *Config) GetInspectorMaxBodySize() int64 {
	c.RLock()
	defer c.RUnlock()

	const defaultMaxBodySize = 64 << 10
	if c.Configuration == nil || c.Configuration.Inspector == nil || c.Configuration.Inspector.MaxBodySize == 0 {
		return defaultMaxBodySize
	}
	return c.Configuration.Inspector.MaxBodySize
}
