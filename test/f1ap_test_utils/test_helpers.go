package f1ap_test_utils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/free5gc/f1ap/pkg/model"
)

// AssertF1SetupSuccess 斷言 DU 收到 F1 Setup Response,且所有 cell 都被啟動
func AssertF1SetupSuccess(t *testing.T, du *FakeDU) *model.F1SetupResponse {
	t.Helper()

	resp, err := du.ExpectF1SetupResponse()
	require.NoError(t, err)
	require.Len(t, resp.CellsToActivate, len(du.Cells))
	for i, cell := range du.Cells {
		require.True(t, resp.CellsToActivate[i].NRCGI.Equal(NRCGIOf(cell)),
			"cell %d: %s", i, FormatNRCGI(resp.CellsToActivate[i].NRCGI))
	}
	return resp
}

// AssertF1SetupFailure 斷言 DU 收到 F1 Setup Failure
func AssertF1SetupFailure(t *testing.T, du *FakeDU, expectedGroup model.CauseGroup) *model.F1SetupFailure {
	t.Helper()

	fail, err := du.ExpectF1SetupFailure(expectedGroup)
	require.NoError(t, err)
	t.Logf("F1 Setup failed with cause: %s", fail.Cause)
	return fail
}

// PrintTestSeparator 打印測試分隔符
func PrintTestSeparator(t *testing.T, title string) {
	t.Helper()
	separator := "=========================================="
	t.Logf("\n%s\n%s\n%s\n", separator, title, separator)
}

// FormatSNSSAI 格式化 S-NSSAI 為字串
func FormatSNSSAI(s SNSSAI) string {
	if s.SD == "" {
		return fmt.Sprintf("SST=%d", s.SST)
	}
	return fmt.Sprintf("SST=%d, SD=%s", s.SST, s.SD)
}

// FormatPLMN 格式化 PLMN 為字串
func FormatPLMN(p PLMN) string {
	return fmt.Sprintf("%s-%s", p.MCC, p.MNC)
}

// FormatNRCGI 格式化 NR CGI 為字串 (例如 "208-93-000000001")
func FormatNRCGI(c model.NRCGI) string {
	return fmt.Sprintf("%s-%s-%09x", c.PLMN.Mcc, c.PLMN.Mnc, c.NRCellID)
}
