package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/free5gc/aper"
	"github.com/free5gc/f1ap"
	"github.com/free5gc/f1ap/f1apType"
	"github.com/free5gc/f1ap/internal/container"
	"github.com/free5gc/f1ap/pkg/model"
	"github.com/free5gc/ngap/ngapType"
)

func rejectAll() Policy {
	return Policy{
		MultipleServedPLMNs:    ActionReject,
		MultipleFrequencyBands: ActionReject,
		SULBands:               ActionReject,
		UnknownExtensionIgnore: ActionReject,
		UnknownExtensionReject: ActionReject,
	}
}

func warnAll() Policy {
	return Policy{}
}

// encodeSetupRequestWith 以 tddCell(1) 建立 F1 Setup Request,並在編碼前讓 mutate 修改 served cell item
func encodeSetupRequestWith(t *testing.T, mutate func(item *f1apType.GNBDUServedCellsItem)) []byte {
	t.Helper()

	cell := tddCell(1)
	item, err := buildServedCellsItem(&cell)
	require.NoError(t, err)
	mutate(&item)
	list, err := singleContainers(f1apType.ProtocolIEIDGNBDUServedCellsItem, f1apType.CriticalityPresentReject, 1,
		func(int) (interface{}, error) { return item, nil })
	require.NoError(t, err)
	rrc, err := buildRRCVersion(model.RRCVersion{16, 6, 0})
	require.NoError(t, err)

	var ies container.IEList
	ies.Add(f1apType.ProtocolIEIDTransactionID, f1apType.CriticalityPresentReject, f1apType.TransactionID{Value: 1}, "")
	ies.Add(f1apType.ProtocolIEIDGNBDUID, f1apType.CriticalityPresentReject, f1apType.GNBDUID{Value: 1}, "")
	ies.Add(f1apType.ProtocolIEIDGNBDUServedCellsList, f1apType.CriticalityPresentReject,
		f1apType.GNBDUServedCellsList{List: list}, "")
	ies.Add(f1apType.ProtocolIEIDGNBDURRCVersion, f1apType.CriticalityPresentReject, rrc, rrcVersionParams)
	require.NoError(t, ies.Err())

	pdu, err := wrapPDU(model.MessageTypeF1SetupRequest, f1apType.F1SetupRequest{ProtocolIEs: ies.Container()})
	require.NoError(t, err)
	b, err := f1ap.Encoder(pdu)
	require.NoError(t, err)
	return b
}

func extensionField(id int64, criticality aper.Enumerated) *f1apType.ProtocolExtensionContainer {
	var ext f1apType.ProtocolExtensionField
	ext.Id.Value = id
	ext.Criticality.Value = criticality
	ext.ExtensionValue = []byte{0x00}
	return &f1apType.ProtocolExtensionContainer{List: []f1apType.ProtocolExtensionField{ext}}
}

func TestPolicy_ServedCellFindings(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mutate   func(item *f1apType.GNBDUServedCellsItem)
		code     WarningCode
		sentinel error
	}{
		{
			name: "multiple served PLMNs",
			mutate: func(item *f1apType.GNBDUServedCellsItem) {
				plmns := &item.ServedCellInformation.ServedPLMNs
				plmns.List = append(plmns.List, f1apType.ServedPLMNsItem{
					PLMNIdentity: ngapType.PLMNIdentity{Value: []byte{0x00, 0xf1, 0x10}},
				})
			},
			code:     WarnMultipleServedPLMNs,
			sentinel: ErrUnsupportedValue,
		},
		{
			name: "multiple frequency bands",
			mutate: func(item *f1apType.GNBDUServedCellsItem) {
				bands := &item.ServedCellInformation.NRModeInfo.TDD.NRFreqInfo.FreqBandListNr
				bands.List = append(bands.List, f1apType.FreqBandNrItem{FreqBandIndicatorNr: 77})
			},
			code:     WarnMultipleFrequencyBands,
			sentinel: ErrUnsupportedValue,
		},
		{
			name: "supported SUL bands",
			mutate: func(item *f1apType.GNBDUServedCellsItem) {
				band := &item.ServedCellInformation.NRModeInfo.TDD.NRFreqInfo.FreqBandListNr.List[0]
				band.SupportedSULBandList.List = []f1apType.SupportedSULFreqBandItem{{FreqBandIndicatorNr: 80}}
			},
			code:     WarnSULBands,
			sentinel: ErrUnsupportedValue,
		},
		{
			name: "SUL information",
			mutate: func(item *f1apType.GNBDUServedCellsItem) {
				sul := &f1apType.SULInformation{SULNRARFCN: 342000}
				sul.SULTransmissionBandwidth.NRNRB.Value = 4
				item.ServedCellInformation.NRModeInfo.TDD.NRFreqInfo.SULInformation = sul
			},
			code:     WarnSULBands,
			sentinel: ErrUnsupportedValue,
		},
		{
			name: "unknown extension with criticality ignore",
			mutate: func(item *f1apType.GNBDUServedCellsItem) {
				item.ServedCellInformation.NRCGI.IEExtensions = extensionField(4242, f1apType.CriticalityPresentIgnore)
			},
			code:     WarnUnknownExtension,
			sentinel: ErrUnknownIE,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b := encodeSetupRequestWith(t, tc.mutate)

			// 預設策略: 解碼成功並帶有警告
			m, warnings, err := New().DecodeWithWarnings(b)
			require.NoError(t, err)
			require.Len(t, warnings, 1)
			assert.Equal(t, tc.code, warnings[0].Code)
			req := m.(*model.F1SetupRequest)
			assert.Equal(t, uint16(78), req.Cells[0].Info.TDD.FreqInfo.Band)
			assert.Equal(t, testPLMN, req.Cells[0].Info.NRCGI.PLMN)

			// 拒絕策略: 不回傳部分結果
			m, warnings, err = New(WithPolicy(rejectAll())).DecodeWithWarnings(b)
			assert.Nil(t, m)
			assert.Nil(t, warnings)
			assert.ErrorIs(t, err, tc.sentinel)
		})
	}
}

func TestPolicy_UnknownExtensionByCriticality(t *testing.T) {
	t.Parallel()

	b := encodeSetupRequestWith(t, func(item *f1apType.GNBDUServedCellsItem) {
		item.IEExtensions = extensionField(4242, f1apType.CriticalityPresentReject)
	})

	_, err := New().DecodeF1SetupRequest(b)
	assert.ErrorIs(t, err, ErrUnknownIE, "criticality reject must fail by default")

	m, warnings, err := New(WithPolicy(warnAll())).DecodeWithWarnings(b)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnUnknownExtension, warnings[0].Code)
	assert.True(t, setupRequest(tddCell(1)).Cells[0].Equal(&m.(*model.F1SetupRequest).Cells[0]))
}

func TestPolicy_ConfiguredEPSTACIgnored(t *testing.T) {
	t.Parallel()

	b := encodeSetupRequestWith(t, func(item *f1apType.GNBDUServedCellsItem) {
		item.ServedCellInformation.ConfiguredEPSTAC = &f1apType.ConfiguredEPSTAC{Value: []byte{0x00, 0x01}}
	})

	// ignored_field 不受策略影響
	for _, p := range []Policy{DefaultPolicy(), rejectAll()} {
		_, warnings, err := New(WithPolicy(p)).DecodeWithWarnings(b)
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Equal(t, WarnIgnoredField, warnings[0].Code)
	}
}

func TestParseTxBandwidth_Rejects(t *testing.T) {
	t.Parallel()

	d := &decodeState{policy: DefaultPolicy()}

	var tb f1apType.TransmissionBandwidth
	tb.NRSCS.Value = f1apType.NRSCSPresentScs30
	tb.NRNRB.Value = 29
	_, err := d.parseTxBandwidth("tdd", &tb)
	assert.ErrorIs(t, err, ErrUnsupportedValue)

	tb.NRNRB.Value = 4
	tb.NRSCS.Value = 4
	_, err = d.parseTxBandwidth("tdd", &tb)
	assert.ErrorIs(t, err, ErrUnsupportedValue)

	tb.NRSCS.Value = f1apType.NRSCSPresentScs120
	bw, err := d.parseTxBandwidth("tdd", &tb)
	require.NoError(t, err)
	assert.Equal(t, model.TxBandwidth{SCS: model.SCS120kHz, NRB: 31}, bw)
	assert.Empty(t, d.warnings)
}

func TestParseCellsToActivate_AvailablePLMNList(t *testing.T) {
	t.Parallel()

	nrcgi, err := buildNRCGI(model.NRCGI{PLMN: testPLMN, NRCellID: 1})
	require.NoError(t, err)
	item := f1apType.CellsToBeActivatedListItem{
		NRCGI:        nrcgi,
		IEExtensions: extensionField(f1apType.ProtocolIEIDAvailablePLMNList, f1apType.CriticalityPresentIgnore),
	}
	list, err := singleContainers(f1apType.ProtocolIEIDCellsToBeActivatedListItem, f1apType.CriticalityPresentReject, 1,
		func(int) (interface{}, error) { return item, nil })
	require.NoError(t, err)

	for _, p := range []Policy{DefaultPolicy(), rejectAll()} {
		d := &decodeState{policy: p}
		cells, err := d.parseCellsToActivate("cells to be activated", list)
		require.NoError(t, err)
		require.Len(t, cells, 1)
		assert.Nil(t, cells[0].SIMessages)
		require.Len(t, d.warnings, 1)
		assert.Equal(t, WarnAvailablePLMNList, d.warnings[0].Code)
	}
}

func TestParseCellsToActivate_WrongItemID(t *testing.T) {
	t.Parallel()

	list, err := buildNRCGIItems(f1apType.ProtocolIEIDCellsToBeDeactivatedListItem,
		[]model.NRCGI{{PLMN: testPLMN, NRCellID: 1}})
	require.NoError(t, err)

	d := &decodeState{policy: DefaultPolicy()}
	_, err = d.parseCellsToActivate("cells to be activated", list)
	assert.ErrorIs(t, err, ErrUnknownIE)

	_, err = d.parseCellsToActivate("cells to be activated", nil)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestParseAction(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Action{"warn": ActionWarn, "": ActionWarn, "REJECT": ActionReject} {
		got, err := ParseAction(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, want.String(), got.String())
	}
	_, err := ParseAction("drop")
	assert.Error(t, err)

	p := DefaultPolicy()
	assert.Equal(t, ActionReject, p.unknownExtension(f1apType.CriticalityPresentReject))
	assert.Equal(t, ActionWarn, p.unknownExtension(f1apType.CriticalityPresentIgnore))
	assert.Equal(t, ActionWarn, p.unknownExtension(f1apType.CriticalityPresentNotify))
}
