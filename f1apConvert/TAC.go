package f1apConvert

import (
	"github.com/pkg/errors"

	"github.com/free5gc/aper"
	"github.com/free5gc/ngap/ngapType"
)

const MaxTAC uint32 = 1<<24 - 1

var ErrInvalidTAC = errors.New("invalid tracking area code")

func TACToF1ap(tac uint32) (*ngapType.TAC, error) {
	if tac > MaxTAC {
		return nil, errors.Wrapf(ErrInvalidTAC, "%#x exceeds 24 bits", tac)
	}
	return &ngapType.TAC{
		Value: aper.OctetString{byte(tac >> 16), byte(tac >> 8), byte(tac)},
	}, nil
}

func TACToModels(tac ngapType.TAC) (uint32, error) {
	if len(tac.Value) != 3 {
		return 0, errors.Wrapf(ErrInvalidTAC, "length %d", len(tac.Value))
	}
	return uint32(tac.Value[0])<<16 | uint32(tac.Value[1])<<8 | uint32(tac.Value[2]), nil
}
