package f1ap_test_utils

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/free5gc/f1ap"
	"github.com/free5gc/f1ap/f1apType"
	"github.com/free5gc/f1ap/internal/container"
	"github.com/free5gc/f1ap/pkg/codec"
	"github.com/free5gc/f1ap/pkg/model"
)

var (
	// ErrNoServedCells 代表 Served Cells List 為空
	ErrNoServedCells = errors.New("served cells list is empty")
	// ErrTooManyCells 代表 cell 數量超過 CU 的上限
	ErrTooManyCells = errors.New("too many served cells")
	// ErrUnsupportedCell 代表 cell 的 PLMN、TAC 或切片不被 CU 支援
	ErrUnsupportedCell = errors.New("unsupported served cell")
)

// F1APValidator 提供 F1AP 訊息驗證方法
type F1APValidator struct {
	configManager *TestConfigManager
	codec         *codec.Codec
}

// NewF1APValidator 建立一個新的 F1AP 驗證器
func NewF1APValidator(configManager *TestConfigManager) *F1APValidator {
	return &F1APValidator{
		configManager: configManager,
		codec:         codec.New(),
	}
}

// checkPDU 解出外層 PDU 並檢查 choice、procedure code 與 criticality
func checkPDU(b []byte, present int, procedureCode int64) (*f1apType.F1APPDU, error) {
	pdu, err := f1ap.Decoder(b)
	if err != nil {
		return nil, fmt.Errorf("decode PDU: %v", err)
	}
	if pdu.Present != present {
		return nil, fmt.Errorf("expected PDU choice %d, got %d", present, pdu.Present)
	}

	var code, criticality int64
	switch present {
	case f1apType.F1APPDUPresentSuccessfulOutcome:
		if pdu.SuccessfulOutcome == nil {
			return nil, fmt.Errorf("SuccessfulOutcome is nil")
		}
		code = pdu.SuccessfulOutcome.ProcedureCode.Value
		criticality = int64(pdu.SuccessfulOutcome.Criticality.Value)
	case f1apType.F1APPDUPresentUnsuccessfulOutcome:
		if pdu.UnsuccessfulOutcome == nil {
			return nil, fmt.Errorf("UnsuccessfulOutcome is nil")
		}
		code = pdu.UnsuccessfulOutcome.ProcedureCode.Value
		criticality = int64(pdu.UnsuccessfulOutcome.Criticality.Value)
	default:
		return nil, fmt.Errorf("unexpected PDU choice %d", present)
	}

	if code != procedureCode {
		return nil, fmt.Errorf("expected procedure %d, got %d", procedureCode, code)
	}
	if criticality != int64(f1apType.CriticalityPresentReject) {
		return nil, fmt.Errorf("expected criticality reject, got %d", criticality)
	}
	return pdu, nil
}

// ValidateF1SetupResponse 驗證 F1 Setup Response 的編碼
func (v *F1APValidator) ValidateF1SetupResponse(b []byte) error {
	pdu, err := checkPDU(b, f1apType.F1APPDUPresentSuccessfulOutcome, f1apType.ProcedureCodeF1Setup)
	if err != nil {
		return err
	}

	var resp f1apType.F1SetupResponse
	if err = container.Unmarshal(pdu.SuccessfulOutcome.Value, &resp, container.BodyParams); err != nil {
		return fmt.Errorf("decode F1SetupResponse: %v", err)
	}

	// 驗證必要的 IE
	hasTransactionID := false
	hasRRCVersion := false
	for _, ie := range resp.ProtocolIEs.List {
		switch ie.Id.Value {
		case f1apType.ProtocolIEIDTransactionID:
			hasTransactionID = true
		case f1apType.ProtocolIEIDGNBCURRCVersion:
			hasRRCVersion = true
		}
	}
	if !hasTransactionID {
		return fmt.Errorf("missing mandatory IE: Transaction ID")
	}
	if !hasRRCVersion {
		return fmt.Errorf("missing mandatory IE: gNB-CU RRC Version")
	}

	_, err = v.codec.DecodeF1SetupResponse(b)
	return err
}

// ValidateF1SetupFailure 驗證 F1 Setup Failure 並檢查 Cause 的類別
func (v *F1APValidator) ValidateF1SetupFailure(b []byte, expectedGroup model.CauseGroup) error {
	if _, err := checkPDU(b, f1apType.F1APPDUPresentUnsuccessfulOutcome, f1apType.ProcedureCodeF1Setup); err != nil {
		return err
	}

	fail, err := v.codec.DecodeF1SetupFailure(b)
	if err != nil {
		return err
	}
	if expectedGroup != model.CauseGroupNone && fail.Cause.Group != expectedGroup {
		return fmt.Errorf("expected cause group %s, got %s", expectedGroup, fail.Cause)
	}
	return nil
}

// ValidateServedCells 驗證 DU 的 Served Cells 是否都被 CU 支援
func (v *F1APValidator) ValidateServedCells(cells []model.ServedCell) error {
	if len(cells) == 0 {
		return ErrNoServedCells
	}
	return v.ValidateCellsToAdd(len(cells), cells)
}

// ValidateCellsToAdd 驗證新增的 cell;total 是新增後 DU 的 cell 總數
func (v *F1APValidator) ValidateCellsToAdd(total int, cells []model.ServedCell) error {
	cfg := v.configManager.GetConfig()
	if cfg.MaxCells > 0 && total > cfg.MaxCells {
		return errors.Wrapf(ErrTooManyCells, "%d cells, CU accepts %d", total, cfg.MaxCells)
	}

	for i := range cells {
		info := &cells[i].Info
		plmn := PLMN{MCC: info.NRCGI.PLMN.Mcc, MNC: info.NRCGI.PLMN.Mnc}

		// 驗證 PLMN
		if !v.configManager.IsPLMNSupported(plmn) {
			return errors.Wrapf(ErrUnsupportedCell, "unsupported PLMN: %s", FormatPLMN(plmn))
		}

		// 驗證 TAC
		if info.TAC == nil {
			return errors.Wrapf(ErrUnsupportedCell, "cell %s has no TAC", FormatNRCGI(info.NRCGI))
		}
		if tac := TACFromModels(*info.TAC); !v.configManager.IsTACSupported(plmn, tac) {
			return errors.Wrapf(ErrUnsupportedCell, "unsupported TAC: %s for PLMN %s", tac, FormatPLMN(plmn))
		}

		// 驗證切片支援
		for _, s := range info.NSSAI {
			slice := SNSSAI{SST: s.Sst, SD: s.Sd}
			if !v.configManager.IsSliceSupported(plmn, slice) {
				return errors.Wrapf(ErrUnsupportedCell, "unsupported S-NSSAI: %s in PLMN %s",
					FormatSNSSAI(slice), FormatPLMN(plmn))
			}
		}
	}
	return nil
}

// CauseFor 將驗證錯誤對應到 F1 Setup Failure 的 Cause
func CauseFor(err error) model.Cause {
	switch {
	case errors.Is(err, ErrTooManyCells):
		return model.Cause{Group: model.CauseGroupRadioNetwork, Value: model.CauseRadioNetworkNoRadioResourcesAvailable}
	case errors.Is(err, ErrNoServedCells):
		return model.Cause{Group: model.CauseGroupProtocol, Value: model.CauseProtocolSemanticError}
	case errors.Is(err, codec.ErrMissingIE), errors.Is(err, codec.ErrUnknownIE),
		errors.Is(err, codec.ErrMalformed):
		return model.Cause{
			Group: model.CauseGroupProtocol,
			Value: model.CauseProtocolAbstractSyntaxErrorFalselyConstructedMessage,
		}
	default:
		return model.Cause{Group: model.CauseGroupMisc, Value: model.CauseMiscUnspecified}
	}
}

// ValidatePLMNSupport 驗證 PLMN 是否被支援
func (v *F1APValidator) ValidatePLMNSupport(plmn PLMN) bool {
	return v.configManager.IsPLMNSupported(plmn)
}

// ValidateSliceSupport 驗證切片是否被支援
func (v *F1APValidator) ValidateSliceSupport(plmn PLMN, slice SNSSAI) bool {
	return v.configManager.IsSliceSupported(plmn, slice)
}
