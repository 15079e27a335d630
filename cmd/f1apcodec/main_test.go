package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/free5gc/f1ap/pkg/factory"
	"github.com/free5gc/f1ap/pkg/model"
)

const ackHex = "40030009000001004e00020005"

// runApp 執行 CLI 並回傳輸出;factory.F1apConfig 是全域變數,測試不可平行
func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	app.Reader = strings.NewReader(stdin)
	err := app.Run(append([]string{"f1apcodec"}, args...))
	return out.String(), err
}

func TestDecodeCommand(t *testing.T) {
	out, err := runApp(t, "", "decode", ackHex)
	require.NoError(t, err)
	assert.Contains(t, out, "GNBDUConfigurationUpdateAcknowledge (13 bytes)")
	assert.Contains(t, out, "TransactionID: (uint8) 5")

	out, err = runApp(t, "", "decode", "--json", "--type", "GNBDUConfigurationUpdateAcknowledge", ackHex)
	require.NoError(t, err)
	var resp struct {
		MessageType string                                    `json:"messageType"`
		Message     model.GNBDUConfigurationUpdateAcknowledge `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, uint8(5), resp.Message.TransactionID)

	_, err = runApp(t, "", "decode", "--type", "F1SetupRequest", ackHex)
	assert.Error(t, err)

	_, err = runApp(t, "", "decode")
	assert.Error(t, err)
}

func TestDecodeCommand_File(t *testing.T) {
	dir := t.TempDir()
	hexFile := filepath.Join(dir, "ack.hex")
	require.NoError(t, os.WriteFile(hexFile, []byte(ackHex+"\n"), 0o600))
	rawFile := filepath.Join(dir, "ack.bin")
	require.NoError(t, os.WriteFile(rawFile, []byte{0x40, 0x03, 0x00, 0x09, 0x00, 0x00, 0x01, 0x00, 0x4e, 0x00, 0x02, 0x00, 0x05}, 0o600))

	out, err := runApp(t, "", "decode", "--file", hexFile)
	require.NoError(t, err)
	assert.Contains(t, out, "GNBDUConfigurationUpdateAcknowledge")

	out, err = runApp(t, "", "decode", "--raw", "--file", rawFile)
	require.NoError(t, err)
	assert.Contains(t, out, "GNBDUConfigurationUpdateAcknowledge")

	out, err = runApp(t, ackHex, "decode", "--file", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "GNBDUConfigurationUpdateAcknowledge")
}

func TestEncodeCommand(t *testing.T) {
	out, err := runApp(t, `{"TransactionID": 5}`, "encode", "GNBDUConfigurationUpdateAcknowledge")
	require.NoError(t, err)
	assert.Equal(t, ackHex, strings.TrimSpace(out))

	_, err = runApp(t, `{"TransactionID": 5}`, "encode")
	assert.Error(t, err)
	_, err = runApp(t, `{}`, "encode", "F1SetupRequest")
	assert.Error(t, err, "a setup request without cells must not encode")
}

func TestTypesCommand(t *testing.T) {
	out, err := runApp(t, "", "types")
	require.NoError(t, err)
	lines := strings.Fields(out)
	assert.Len(t, lines, len(model.MessageTypes()))
	assert.Contains(t, lines, "F1SetupRequest")
}

func TestConfigFlag(t *testing.T) {
	_, err := runApp(t, "", "--config", "../../config/f1apcfg.yaml", "types")
	require.NoError(t, err)
	require.NotNil(t, factory.F1apConfig)
	assert.Equal(t, "127.0.0.1:38472", factory.F1apConfig.GetInspectorAddr())

	_, err = runApp(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "types")
	assert.Error(t, err)
}
