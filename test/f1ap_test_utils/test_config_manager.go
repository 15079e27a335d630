package f1ap_test_utils

import (
	"strings"

	"github.com/free5gc/f1ap/pkg/model"
)

// TestConfigManager 管理測試用的 CU 配置
type TestConfigManager struct {
	config *TestCUConfig
}

// NewTestConfigManager 建立一個新的配置管理器
func NewTestConfigManager() *TestConfigManager {
	return &TestConfigManager{}
}

func plmnKey(p PLMN) string {
	return p.MCC + "-" + p.MNC
}

// LoadStandardConfig 載入標準配置 (OAI 預設的 208-95 加上 free5GC 的 208-93)
func (m *TestConfigManager) LoadStandardConfig() *TestCUConfig {
	m.config = &TestCUConfig{
		CUName:     "TestCU-Standard",
		RRCVersion: model.RRCVersion{16, 6, 0},
		SupportedPLMNs: []PLMN{
			{MCC: "208", MNC: "93"},
			{MCC: "208", MNC: "95"},
		},
		SupportedTACs: map[string][]string{
			"208-93": {"000001", "000002"},
			"208-95": {"000001"},
		},
		SupportedSlices: map[string][]SNSSAI{
			"208-93": {
				{SST: 1, SD: "010203"},
				{SST: 1, SD: "112233"},
			},
			"208-95": {
				{SST: 1},
				{SST: 1, SD: "010203"},
			},
		},
		MaxCells: 16,
	}
	return m.config
}

// LoadRestrictiveConfig 載入限制性配置 (只支援一個 PLMN、一個 TAC、一個 cell)
func (m *TestConfigManager) LoadRestrictiveConfig() *TestCUConfig {
	m.config = &TestCUConfig{
		CUName:     "TestCU-Restrictive",
		RRCVersion: model.RRCVersion{15, 3, 0},
		SupportedPLMNs: []PLMN{
			{MCC: "208", MNC: "93"},
		},
		SupportedTACs: map[string][]string{
			"208-93": {"000001"},
		},
		SupportedSlices: map[string][]SNSSAI{
			"208-93": {
				{SST: 1, SD: "010203"}, // 只支援一個切片
			},
		},
		MaxCells: 1,
	}
	return m.config
}

// LoadMinimalConfig 載入最小配置
func (m *TestConfigManager) LoadMinimalConfig() *TestCUConfig {
	m.config = &TestCUConfig{
		CUName: "TestCU-Minimal",
		SupportedPLMNs: []PLMN{
			{MCC: "001", MNC: "01"},
		},
		SupportedTACs: map[string][]string{
			"001-01": {"000001"},
		},
		SupportedSlices: map[string][]SNSSAI{},
		MaxCells:        512,
	}
	return m.config
}

// SetSupportedSlices 設定支援的切片
func (m *TestConfigManager) SetSupportedSlices(plmn PLMN, slices []SNSSAI) {
	m.config.SupportedSlices[plmnKey(plmn)] = slices
}

// AddSupportedTAC 新增支援的 TAC
func (m *TestConfigManager) AddSupportedTAC(plmn PLMN, tac string) {
	key := plmnKey(plmn)
	m.config.SupportedTACs[key] = append(m.config.SupportedTACs[key], tac)
}

// AddSupportedPLMN 新增支援的 PLMN
func (m *TestConfigManager) AddSupportedPLMN(plmn PLMN) {
	m.config.SupportedPLMNs = append(m.config.SupportedPLMNs, plmn)
}

// GetConfig 取得當前配置
func (m *TestConfigManager) GetConfig() *TestCUConfig {
	return m.config
}

// IsPLMNSupported 檢查 PLMN 是否被支援
func (m *TestConfigManager) IsPLMNSupported(plmn PLMN) bool {
	for _, p := range m.config.SupportedPLMNs {
		if p.MCC == plmn.MCC && p.MNC == plmn.MNC {
			return true
		}
	}
	return false
}

// IsTACSupported 檢查 TAC 是否被支援
func (m *TestConfigManager) IsTACSupported(plmn PLMN, tac string) bool {
	for _, t := range m.config.SupportedTACs[plmnKey(plmn)] {
		if strings.EqualFold(t, tac) {
			return true
		}
	}
	return false
}

// IsSliceSupported 檢查切片是否被支援 (SD 不分大小寫)
func (m *TestConfigManager) IsSliceSupported(plmn PLMN, slice SNSSAI) bool {
	slices, exists := m.config.SupportedSlices[plmnKey(plmn)]
	if !exists {
		return false
	}

	for _, s := range slices {
		if s.SST == slice.SST && strings.EqualFold(s.SD, slice.SD) {
			return true
		}
	}
	return false
}
