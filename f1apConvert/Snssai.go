package f1apConvert

import (
	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"

	"github.com/free5gc/ngap/ngapConvert"
	"github.com/free5gc/ngap/ngapType"
	"github.com/free5gc/openapi/models"
)

var ErrInvalidSnssai = errors.New("invalid S-NSSAI")

func SNssaiToF1ap(snssai models.Snssai) (ngapType.SNSSAI, error) {
	if err := CheckSNssai(snssai); err != nil {
		return ngapType.SNSSAI{}, err
	}
	return ngapConvert.SNssaiToNgap(snssai), nil
}

func SNssaiToModels(f1apSnssai ngapType.SNSSAI) (models.Snssai, error) {
	if len(f1apSnssai.SST.Value) != 1 {
		return models.Snssai{}, errors.Wrapf(ErrInvalidSnssai, "sst length %d", len(f1apSnssai.SST.Value))
	}
	if f1apSnssai.SD != nil && len(f1apSnssai.SD.Value) != 3 {
		return models.Snssai{}, errors.Wrapf(ErrInvalidSnssai, "sd length %d", len(f1apSnssai.SD.Value))
	}
	return ngapConvert.SNssaiToModels(f1apSnssai), nil
}

// CheckSNssai accepts SST 0..255 and an empty or 6 hex digit SD.
func CheckSNssai(snssai models.Snssai) error {
	if snssai.Sst < 0 || snssai.Sst > 255 {
		return errors.Wrapf(ErrInvalidSnssai, "sst %d", snssai.Sst)
	}
	if snssai.Sd != "" && (len(snssai.Sd) != 6 || !govalidator.IsHexadecimal(snssai.Sd)) {
		return errors.Wrapf(ErrInvalidSnssai, "sd %q", snssai.Sd)
	}
	return nil
}
