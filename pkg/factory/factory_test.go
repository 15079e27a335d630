package factory

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/free5gc/f1ap/pkg/codec"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "f1apcfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadConfig_SampleFile(t *testing.T) {
	t.Parallel()

	cfg, err := ReadConfig("../../config/f1apcfg.yaml")
	require.NoError(t, err)

	assert.Equal(t, F1apExpectedConfigVersion, cfg.GetVersion())
	assert.True(t, cfg.GetLogEnable())
	assert.Equal(t, "info", cfg.GetLogLevel())
	assert.False(t, cfg.GetLogReportCaller())
	assert.Equal(t, "127.0.0.1:38472", cfg.GetInspectorAddr())
	assert.Equal(t, int64(65536), cfg.GetInspectorMaxBodySize())

	policy, err := cfg.GetCodecPolicy()
	require.NoError(t, err)
	assert.Equal(t, codec.DefaultPolicy(), policy)
}

func TestReadConfig_Invalid(t *testing.T) {
	t.Parallel()

	const base = `
info:
  version: %s
configuration:
  policy:
    sulBands: %s
  inspector:
    bindingIPv4: 127.0.0.1
    port: %s
logger:
  enable: true
  level: %s
`
	testCases := []struct {
		name    string
		content string
	}{
		{"wrong version", fmtConfig(base, "0.9.0", "warn", "8000", "info")},
		{"unknown policy action", fmtConfig(base, "1.0.0", "drop", "8000", "info")},
		{"port out of range", fmtConfig(base, "1.0.0", "warn", "70000", "info")},
		{"unknown log level", fmtConfig(base, "1.0.0", "warn", "8000", "verbose")},
		{"missing logger", "info:\n  version: 1.0.0\nconfiguration: {}\n"},
		{"not yaml", "info: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := ReadConfig(writeConfig(t, tc.content))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}

	_, err := ReadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func fmtConfig(format, version, sul, port, level string) string {
	return fmt.Sprintf(format, version, sul, port, level)
}

func TestPolicy_CodecPolicy(t *testing.T) {
	t.Parallel()

	var nilPolicy *Policy
	p, err := nilPolicy.CodecPolicy()
	require.NoError(t, err)
	assert.Equal(t, codec.DefaultPolicy(), p)

	p, err = (&Policy{
		MultipleServedPLMNs:    "reject",
		UnknownExtensionReject: "warn",
	}).CodecPolicy()
	require.NoError(t, err)
	assert.Equal(t, codec.ActionReject, p.MultipleServedPLMNs)
	assert.Equal(t, codec.ActionWarn, p.MultipleFrequencyBands)
	assert.Equal(t, codec.ActionWarn, p.UnknownExtensionReject)

	_, err = (&Policy{SULBands: "maybe"}).CodecPolicy()
	assert.ErrorContains(t, err, "policy.sulBands")
}

func TestConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	ok, err := cfg.Validate()
	require.NoError(t, err)
	assert.True(t, ok)

	cfg.Configuration.Inspector = nil
	assert.Equal(t, "127.0.0.1:38472", cfg.GetInspectorAddr())
	assert.Equal(t, int64(64<<10), cfg.GetInspectorMaxBodySize())

	cfg.SetLogLevel("debug")
	cfg.SetLogEnable(false)
	cfg.SetLogReportCaller(true)
	assert.Equal(t, "debug", cfg.GetLogLevel())
	assert.False(t, cfg.GetLogEnable())
	assert.True(t, cfg.GetLogReportCaller())

	// Logger 為 nil 時以預設值補上
	cfg.Logger = nil
	assert.Equal(t, "info", cfg.GetLogLevel())
	cfg.SetLogReportCaller(true)
	require.NotNil(t, cfg.Logger)
	assert.Equal(t, "info", cfg.Logger.Level)
}
