package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/free5gc/openapi/models"
)

// newTDDCell 建立一個 TDD 測試 cell (band 78, 66 PRB)
func newTDDCell(cellID uint64) ServedCell {
	tac := uint32(1)
	return ServedCell{
		Info: ServedCellInfo{
			NRCGI: NRCGI{PLMN: models.PlmnId{Mcc: "208", Mnc: "95"}, NRCellID: cellID},
			NRPCI: 0,
			TAC:   &tac,
			Mode:  DuplexModeTDD,
			TDD: &TDDInfo{
				FreqInfo: FrequencyInfo{ARFCN: 640000, Band: 78},
				TxBW:     TxBandwidth{SCS: SCS30kHz, NRB: 66},
			},
			MeasurementTimingConfig: []byte{0x01, 0x02, 0x03},
			NSSAI:                   []models.Snssai{{Sst: 1, Sd: "010203"}},
		},
		SysInfo: &SystemInfo{MIB: []byte{0xaa}, SIB1: []byte{0xbb, 0xcc}},
	}
}

func newSetupRequest() *F1SetupRequest {
	return &F1SetupRequest{
		TransactionID: 2,
		GNBDUID:       1,
		GNBDUName:     "OAI DU",
		Cells:         []ServedCell{newTDDCell(12345678)},
		RRCVersion:    RRCVersion{12, 34, 56},
	}
}

func TestMessageType_StringAndParse(t *testing.T) {
	t.Parallel()

	for _, mt := range MessageTypes() {
		parsed, err := ParseMessageType(mt.String())
		require.NoError(t, err)
		assert.Equal(t, mt, parsed)

		m, err := NewMessage(mt)
		require.NoError(t, err)
		assert.Equal(t, mt, m.MessageType())
	}

	// 大小寫不敏感
	parsed, err := ParseMessageType("f1setuprequest")
	require.NoError(t, err)
	assert.Equal(t, MessageTypeF1SetupRequest, parsed)

	_, err = ParseMessageType("NGSetupRequest")
	assert.Error(t, err)
	_, err = NewMessage(MessageTypeUnknown)
	assert.Error(t, err)
	assert.Equal(t, "Unknown", MessageTypeUnknown.String())
}

func TestF1SetupRequest_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(m *F1SetupRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(m *F1SetupRequest) {}},
		{name: "no name", mutate: func(m *F1SetupRequest) { m.GNBDUName = "" }},
		{name: "zero cells", mutate: func(m *F1SetupRequest) { m.Cells = nil }, wantErr: true},
		{
			name: "too many cells",
			mutate: func(m *F1SetupRequest) {
				for len(m.Cells) <= MaxServedCells {
					m.Cells = append(m.Cells, newTDDCell(1))
				}
			},
			wantErr: true,
		},
		{name: "du id over 36 bits", mutate: func(m *F1SetupRequest) { m.GNBDUID = MaxGNBDUID + 1 }, wantErr: true},
		{name: "name not printable", mutate: func(m *F1SetupRequest) { m.GNBDUName = "DU_1" }, wantErr: true},
		{name: "nrb not in table", mutate: func(m *F1SetupRequest) { m.Cells[0].Info.TDD.TxBW.NRB = 67 }, wantErr: true},
		{name: "pci out of range", mutate: func(m *F1SetupRequest) { m.Cells[0].Info.NRPCI = 1008 }, wantErr: true},
		{name: "band zero", mutate: func(m *F1SetupRequest) { m.Cells[0].Info.TDD.FreqInfo.Band = 0 }, wantErr: true},
		{
			name:    "mode mismatch",
			mutate:  func(m *F1SetupRequest) { m.Cells[0].Info.Mode = DuplexModeFDD },
			wantErr: true,
		},
		{
			name:    "empty measurement timing",
			mutate:  func(m *F1SetupRequest) { m.Cells[0].Info.MeasurementTimingConfig = nil },
			wantErr: true,
		},
		{
			name:    "sys info without SIB1",
			mutate:  func(m *F1SetupRequest) { m.Cells[0].SysInfo.SIB1 = nil },
			wantErr: true,
		},
		{
			name:    "bad plmn",
			mutate:  func(m *F1SetupRequest) { m.Cells[0].Info.NRCGI.PLMN.Mcc = "20" },
			wantErr: true,
		},
		{
			name:    "bad sd",
			mutate:  func(m *F1SetupRequest) { m.Cells[0].Info.NSSAI[0].Sd = "xyz" },
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := newSetupRequest()
			tc.mutate(m)
			err := m.Validate()
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidMessage)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestFailure_Validate(t *testing.T) {
	t.Parallel()

	ttw := TimeToWait10s
	m := &F1SetupFailure{Failure{
		TransactionID: 1,
		Cause:         Cause{Group: CauseGroupMisc, Value: CauseMiscUnspecified},
		TimeToWait:    &ttw,
	}}
	require.NoError(t, m.Validate())

	m.Cause.Value = 5
	assert.ErrorIs(t, m.Validate(), ErrInvalidMessage)

	m.Cause = Cause{Group: CauseGroupNone}
	assert.ErrorIs(t, m.Validate(), ErrInvalidMessage)
}

func TestCellToActivate_Validate(t *testing.T) {
	t.Parallel()

	cell := CellToActivate{
		NRCGI:      NRCGI{PLMN: models.PlmnId{Mcc: "001", Mnc: "01"}, NRCellID: 1},
		SIMessages: []SIMessage{{Type: 2, Container: []byte{1}, ValueTag: 31}},
	}
	require.NoError(t, cell.Validate())

	cell.SIMessages[0].Type = 1
	assert.Error(t, cell.Validate())
	cell.SIMessages[0].Type = 33
	assert.Error(t, cell.Validate())
	cell.SIMessages[0].Type = 32
	cell.SIMessages[0].ValueTag = 32
	assert.Error(t, cell.Validate())
}

func TestEqual_Optionals(t *testing.T) {
	t.Parallel()

	a := newSetupRequest()
	b := newSetupRequest()
	assert.True(t, a.Equal(b))
	assert.True(t, Equal(a, b))

	// 兩邊都缺省視為相等,只有一邊缺省則不相等
	a.Cells[0].SysInfo = nil
	assert.False(t, a.Equal(b))
	b.Cells[0].SysInfo = nil
	assert.True(t, a.Equal(b))

	a.Cells[0].Info.TAC = nil
	assert.False(t, a.Equal(b))
	b.Cells[0].Info.TAC = nil
	assert.True(t, a.Equal(b))

	a.Cells[0].Info.NSSAI = nil
	b.Cells[0].Info.NSSAI = []models.Snssai{}
	assert.True(t, a.Equal(b), "nil and empty lists are equal")

	a.RRCVersion[2] = 57
	assert.False(t, a.Equal(b))
}

func TestEqual_NilAndMixedTypes(t *testing.T) {
	t.Parallel()

	var nilReq *F1SetupRequest
	assert.True(t, nilReq.Equal(nil))
	assert.False(t, nilReq.Equal(newSetupRequest()))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(newSetupRequest(), nil))
	assert.False(t, Equal(&GNBDUConfigurationUpdateAcknowledge{TransactionID: 1},
		&GNBCUConfigurationUpdateAcknowledge{TransactionID: 1}))
}

func TestEqual_SDIgnoresCase(t *testing.T) {
	t.Parallel()

	a := newSetupRequest()
	b := newSetupRequest()
	a.Cells[0].Info.NSSAI[0].Sd = "ABCDEF"
	b.Cells[0].Info.NSSAI[0].Sd = "abcdef"
	assert.True(t, a.Equal(b))
}

func TestCopy_Independent(t *testing.T) {
	t.Parallel()

	orig := newSetupRequest()
	cp := orig.Copy()
	require.True(t, orig.Equal(cp))

	// 修改副本不影響原本
	cp.Cells[0].Info.MeasurementTimingConfig[0] = 0xff
	cp.Cells[0].SysInfo.MIB[0] = 0x00
	cp.Cells[0].Info.NSSAI[0].Sst = 2
	*cp.Cells[0].Info.TAC = 99
	assert.Equal(t, byte(0x01), orig.Cells[0].Info.MeasurementTimingConfig[0])
	assert.Equal(t, byte(0xaa), orig.Cells[0].SysInfo.MIB[0])
	assert.Equal(t, int32(1), orig.Cells[0].Info.NSSAI[0].Sst)
	assert.Equal(t, uint32(1), *orig.Cells[0].Info.TAC)
	assert.False(t, orig.Equal(cp))
}

func TestCopy_Normalizes(t *testing.T) {
	t.Parallel()

	ttw := TimeToWait1s
	f := &F1SetupFailure{Failure{
		Cause:                  Cause{Group: CauseGroupProtocol, Value: 0},
		TimeToWait:             &ttw,
		CriticalityDiagnostics: &CriticalityDiagnostics{IEs: []CriticalityDiagnosticsIE{}},
	}}
	cp := f.Copy()
	require.NotNil(t, cp.CriticalityDiagnostics)
	assert.Nil(t, cp.CriticalityDiagnostics.IEs)
	assert.True(t, f.Equal(cp))
	assert.NotSame(t, f.TimeToWait, cp.TimeToWait)

	u := &GNBCUConfigurationUpdate{
		TransactionID:     3,
		CellsToActivate:   []CellToActivate{},
		CellsToDeactivate: []NRCGI{},
	}
	cu := Copy(u).(*GNBCUConfigurationUpdate)
	assert.Nil(t, cu.CellsToActivate)
	assert.Nil(t, cu.CellsToDeactivate)

	req := newSetupRequest()
	req.Cells[0].SysInfo = &SystemInfo{}
	assert.Nil(t, req.Copy().Cells[0].SysInfo)

	var nilUpdate *GNBDUConfigurationUpdate
	assert.Nil(t, nilUpdate.Copy())
	assert.Nil(t, Copy(nil))
}
