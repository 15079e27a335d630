package f1apConvert

import (
	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"

	"github.com/free5gc/ngap/ngapConvert"
	"github.com/free5gc/ngap/ngapType"
	"github.com/free5gc/openapi/models"
)

var ErrInvalidPlmnId = errors.New("invalid PLMN identity")

// F1AP carries PLMN-Identity in the same TBCD layout as NGAP.
func PlmnIdToF1ap(plmnId models.PlmnId) (ngapType.PLMNIdentity, error) {
	if err := CheckPlmnId(plmnId); err != nil {
		return ngapType.PLMNIdentity{}, err
	}
	return ngapConvert.PlmnIdToNgap(plmnId), nil
}

func PlmnIdToModels(f1apPlmnId ngapType.PLMNIdentity) (models.PlmnId, error) {
	if len(f1apPlmnId.Value) != 3 {
		return models.PlmnId{}, errors.Wrapf(ErrInvalidPlmnId, "length %d", len(f1apPlmnId.Value))
	}
	return ngapConvert.PlmnIdToModels(f1apPlmnId), nil
}

// CheckPlmnId verifies MCC has 3 digits and MNC 2 or 3 digits.
func CheckPlmnId(plmnId models.PlmnId) error {
	if len(plmnId.Mcc) != 3 || !govalidator.IsNumeric(plmnId.Mcc) {
		return errors.Wrapf(ErrInvalidPlmnId, "mcc %q", plmnId.Mcc)
	}
	if (len(plmnId.Mnc) != 2 && len(plmnId.Mnc) != 3) || !govalidator.IsNumeric(plmnId.Mnc) {
		return errors.Wrapf(ErrInvalidPlmnId, "mnc %q", plmnId.Mnc)
	}
	return nil
}
