package f1ap_test_utils

import (
	"fmt"

	"github.com/free5gc/aper"
	"github.com/free5gc/f1ap"
	"github.com/free5gc/f1ap/f1apType"
	"github.com/free5gc/f1ap/internal/container"
	"github.com/free5gc/f1ap/pkg/codec"
	"github.com/free5gc/f1ap/pkg/model"
	"github.com/free5gc/openapi/models"
)

// F1APMessageBuilder 提供建構各種 F1AP 訊息的方法
type F1APMessageBuilder struct{}

// NewF1APMessageBuilder 建立一個新的 F1AP 訊息建構器
func NewF1APMessageBuilder() *F1APMessageBuilder {
	return &F1APMessageBuilder{}
}

// BuildServedCell 由 CellParams 建立 model.ServedCell
func (b *F1APMessageBuilder) BuildServedCell(p CellParams) (model.ServedCell, error) {
	info := model.ServedCellInfo{
		NRCGI:                   model.NRCGI{PLMN: PLMNToModels(p.PLMN), NRCellID: p.CellID},
		NRPCI:                   p.PCI,
		MeasurementTimingConfig: []byte{0x10, 0x20, 0x30},
	}

	if p.TAC != "" {
		tac, err := TACToModels(p.TAC)
		if err != nil {
			return model.ServedCell{}, fmt.Errorf("invalid TAC %q: %w", p.TAC, err)
		}
		info.TAC = &tac
	}

	freq := model.FrequencyInfo{ARFCN: p.ARFCN, Band: p.Band}
	bw := model.TxBandwidth{SCS: p.SCS, NRB: p.NRB}
	if p.FDD {
		info.Mode = model.DuplexModeFDD
		info.FDD = &model.FDDInfo{
			ULFreqInfo: freq,
			DLFreqInfo: freq,
			ULTxBW:     bw,
			DLTxBW:     bw,
		}
	} else {
		info.Mode = model.DuplexModeTDD
		info.TDD = &model.TDDInfo{FreqInfo: freq, TxBW: bw}
	}

	for _, s := range p.Slices {
		info.NSSAI = append(info.NSSAI, SNSSAIToModels(s))
	}

	cell := model.ServedCell{Info: info}
	if p.WithSysInfo {
		cell.SysInfo = &model.SystemInfo{
			MIB:  []byte{0x01, 0x02, 0x03},
			SIB1: []byte{0x0a, 0x0b, 0x0c, 0x0d},
		}
	}
	return cell, nil
}

// BuildF1SetupRequest 建立標準的 F1 Setup Request
func (b *F1APMessageBuilder) BuildF1SetupRequest(params F1SetupRequestParams) (*model.F1SetupRequest, error) {
	msg := &model.F1SetupRequest{
		TransactionID: params.TransactionID,
		GNBDUID:       params.GNBDUID,
		GNBDUName:     params.GNBDUName,
		RRCVersion:    params.RRCVersion,
	}
	for _, p := range params.Cells {
		cell, err := b.BuildServedCell(p)
		if err != nil {
			return nil, err
		}
		msg.Cells = append(msg.Cells, cell)
	}
	return msg, nil
}

// BuildF1SetupResponse 建立 F1 Setup Response,所有要啟動的 cell 都不帶 SI
func (b *F1APMessageBuilder) BuildF1SetupResponse(params F1SetupResponseParams) *model.F1SetupResponse {
	msg := &model.F1SetupResponse{
		TransactionID: params.TransactionID,
		GNBCUName:     params.GNBCUName,
		RRCVersion:    params.RRCVersion,
	}
	for _, cgi := range params.CellsToActivate {
		msg.CellsToActivate = append(msg.CellsToActivate, model.CellToActivate{NRCGI: cgi})
	}
	return msg
}

// BuildF1SetupFailure 建立 F1 Setup Failure
func (b *F1APMessageBuilder) BuildF1SetupFailure(params F1SetupFailureParams) *model.F1SetupFailure {
	return &model.F1SetupFailure{
		Failure: model.Failure{
			TransactionID: params.TransactionID,
			Cause:         params.Cause,
			TimeToWait:    params.TimeToWait,
		},
	}
}

// BuildGNBDUConfigurationUpdate 建立 gNB-DU Configuration Update
func (b *F1APMessageBuilder) BuildGNBDUConfigurationUpdate(tid uint8, toAdd []CellParams,
	toDelete []model.NRCGI,
) (*model.GNBDUConfigurationUpdate, error) {
	msg := &model.GNBDUConfigurationUpdate{
		TransactionID: tid,
		CellsToDelete: toDelete,
	}
	for _, p := range toAdd {
		cell, err := b.BuildServedCell(p)
		if err != nil {
			return nil, err
		}
		msg.CellsToAdd = append(msg.CellsToAdd, cell)
	}
	return msg, nil
}

// BuildInvalidF1SetupRequest 建立無效的 F1 Setup Request 編碼 (用於負面測試)
// 先編出一個合法的訊息,再直接改動 IE 列表
func (b *F1APMessageBuilder) BuildInvalidF1SetupRequest(invalidType string) ([]byte, error) {
	valid, err := b.BuildF1SetupRequest(DefaultF1SetupRequestParams())
	if err != nil {
		return nil, err
	}
	pdu, err := codec.Build(valid)
	if err != nil {
		return nil, err
	}

	var body f1apType.F1SetupRequest
	if err = container.Unmarshal(pdu.InitiatingMessage.Value, &body, container.BodyParams); err != nil {
		return nil, err
	}
	ies := body.ProtocolIEs.List

	switch invalidType {
	case "missing_mandatory_ie":
		// 拿掉 gNB-DU RRC Version
		ies = dropIE(ies, f1apType.ProtocolIEIDGNBDURRCVersion)
	case "missing_served_cells":
		// 拿掉 gNB-DU Served Cells List
		ies = dropIE(ies, f1apType.ProtocolIEIDGNBDUServedCellsList)
	case "duplicate_ie":
		// Transaction ID 出現兩次
		ies = append(ies, ies[0])
	case "unknown_ie":
		// 不屬於 F1 Setup Request 的 IE
		ies = append(ies, container.NewField(999, f1apType.CriticalityPresentIgnore, aper.OctetString{0x00}))
	case "wrong_procedure":
		// 內容不變,但 procedure code 改成 Reset
		pdu.InitiatingMessage.ProcedureCode.Value = f1apType.ProcedureCodeReset
	case "truncated":
		out, encErr := f1ap.Encoder(pdu)
		if encErr != nil {
			return nil, encErr
		}
		return out[:len(out)/2], nil
	default:
		return nil, fmt.Errorf("unknown invalid type %q", invalidType)
	}

	body.ProtocolIEs.List = ies
	if pdu.InitiatingMessage.Value, err = container.Marshal(body, container.BodyParams); err != nil {
		return nil, err
	}
	return f1ap.Encoder(pdu)
}

func dropIE(ies []f1apType.ProtocolIEField, id int64) []f1apType.ProtocolIEField {
	out := make([]f1apType.ProtocolIEField, 0, len(ies))
	for _, ie := range ies {
		if ie.Id.Value != id {
			out = append(out, ie)
		}
	}
	return out
}

// DefaultCellParams 回傳 OAI 預設的 TDD cell (band 78, 30 kHz, 106 PRB)
func DefaultCellParams() CellParams {
	return CellParams{
		PLMN:        PLMN{MCC: "208", MNC: "93"},
		CellID:      0x000000001,
		PCI:         0,
		TAC:         "000001",
		Band:        78,
		ARFCN:       641280,
		NRB:         106,
		SCS:         model.SCS30kHz,
		Slices:      []SNSSAI{{SST: 1, SD: "010203"}},
		WithSysInfo: true,
	}
}

// DefaultF1SetupRequestParams 回傳只有一個預設 cell 的 F1 Setup Request 參數
func DefaultF1SetupRequestParams() F1SetupRequestParams {
	return F1SetupRequestParams{
		TransactionID: 1,
		GNBDUID:       3584,
		GNBDUName:     "gNB-Eurecom-DU",
		Cells:         []CellParams{DefaultCellParams()},
		RRCVersion:    model.RRCVersion{16, 6, 0},
	}
}

// NRCGIOf 取出 cell 的 NR CGI
func NRCGIOf(p CellParams) model.NRCGI {
	return model.NRCGI{PLMN: models.PlmnId{Mcc: p.PLMN.MCC, Mnc: p.PLMN.MNC}, NRCellID: p.CellID}
}
