package codec

import (
	"github.com/free5gc/f1ap/pkg/model"
	"github.com/free5gc/openapi/models"
)

var testPLMN = models.PlmnId{Mcc: "208", Mnc: "95"}

// tddCell 建立 OAI 預設的 TDD cell: band 78, ARFCN 640000, 30 kHz, 66 PRB
func tddCell(cellID uint64) model.ServedCell {
	tac := uint32(1)
	return model.ServedCell{
		Info: model.ServedCellInfo{
			NRCGI: model.NRCGI{PLMN: testPLMN, NRCellID: cellID},
			NRPCI: 0,
			TAC:   &tac,
			Mode:  model.DuplexModeTDD,
			TDD: &model.TDDInfo{
				FreqInfo: model.FrequencyInfo{ARFCN: 640000, Band: 78},
				TxBW:     model.TxBandwidth{SCS: model.SCS30kHz, NRB: 66},
			},
			MeasurementTimingConfig: []byte{0x10, 0x20, 0x30},
			NSSAI: []models.Snssai{
				{Sst: 1},
				{Sst: 1, Sd: "010203"},
			},
		},
		SysInfo: &model.SystemInfo{
			MIB:  []byte{0x01, 0x02, 0x03},
			SIB1: []byte{0x0a, 0x0b, 0x0c, 0x0d},
		},
	}
}

// fddCell 建立 FDD cell (band 1),沒有 TAC 與系統資訊
func fddCell(cellID uint64) model.ServedCell {
	return model.ServedCell{
		Info: model.ServedCellInfo{
			NRCGI: model.NRCGI{PLMN: models.PlmnId{Mcc: "001", Mnc: "001"}, NRCellID: cellID},
			NRPCI: 1007,
			Mode:  model.DuplexModeFDD,
			FDD: &model.FDDInfo{
				ULFreqInfo: model.FrequencyInfo{ARFCN: 384000, Band: 1},
				DLFreqInfo: model.FrequencyInfo{ARFCN: 422000, Band: 1},
				ULTxBW:     model.TxBandwidth{SCS: model.SCS15kHz, NRB: 106},
				DLTxBW:     model.TxBandwidth{SCS: model.SCS15kHz, NRB: 106},
			},
			MeasurementTimingConfig: []byte{0x42},
		},
	}
}

func setupRequest(cells ...model.ServedCell) *model.F1SetupRequest {
	return &model.F1SetupRequest{
		TransactionID: 2,
		GNBDUID:       1,
		GNBDUName:     "OAI DU",
		Cells:         cells,
		RRCVersion:    model.RRCVersion{12, 34, 56},
	}
}

func setupResponse() *model.F1SetupResponse {
	pci := uint16(0)
	return &model.F1SetupResponse{
		TransactionID: 2,
		GNBCUName:     "OAI CU",
		CellsToActivate: []model.CellToActivate{
			{
				NRCGI: model.NRCGI{PLMN: testPLMN, NRCellID: 12345678},
				NRPCI: &pci,
				SIMessages: []model.SIMessage{
					{Type: 2, Container: []byte{0x02, 0x02}, ValueTag: 0},
					{Type: 3, Container: []byte{0x03}, ValueTag: 1},
					{Type: 19, Container: []byte{0x19, 0x19, 0x19}, ValueTag: 31},
				},
			},
			{
				NRCGI: model.NRCGI{PLMN: testPLMN, NRCellID: 1},
			},
		},
		RRCVersion: model.RRCVersion{16, 6, 0},
	}
}

func failureBody() model.Failure {
	ttw := model.TimeToWait10s
	pc := uint8(1)
	tm := model.TriggeringMessageInitiating
	crit := model.CriticalityReject
	tid := uint8(2)
	return model.Failure{
		TransactionID: 2,
		Cause:         model.Cause{Group: model.CauseGroupMisc, Value: model.CauseMiscUnspecified},
		TimeToWait:    &ttw,
		CriticalityDiagnostics: &model.CriticalityDiagnostics{
			ProcedureCode:        &pc,
			TriggeringMessage:    &tm,
			ProcedureCriticality: &crit,
			TransactionID:        &tid,
			IEs: []model.CriticalityDiagnosticsIE{
				{Criticality: model.CriticalityReject, ID: 44, TypeOfError: model.TypeOfErrorMissing},
			},
		},
	}
}

func duConfigurationUpdate() *model.GNBDUConfigurationUpdate {
	duID := uint64(1)
	modified := fddCell(2)
	return &model.GNBDUConfigurationUpdate{
		TransactionID: 7,
		CellsToAdd:    []model.ServedCell{tddCell(3)},
		CellsToModify: []model.CellToModify{
			{
				OldNRCGI: model.NRCGI{PLMN: testPLMN, NRCellID: 1},
				Info:     modified.Info,
				SysInfo:  &model.SystemInfo{MIB: []byte{0x11}, SIB1: []byte{0x22}},
			},
		},
		CellsToDelete: []model.NRCGI{{PLMN: testPLMN, NRCellID: 4}},
		GNBDUID:       &duID,
	}
}

func cuConfigurationUpdate() *model.GNBCUConfigurationUpdate {
	return &model.GNBCUConfigurationUpdate{
		TransactionID:   9,
		CellsToActivate: setupResponse().CellsToActivate,
		CellsToDeactivate: []model.NRCGI{
			{PLMN: testPLMN, NRCellID: 5},
			{PLMN: models.PlmnId{Mcc: "001", Mnc: "01"}, NRCellID: model.MaxNRCellIdentity},
		},
	}
}
