package f1apConvert

import (
	"github.com/pkg/errors"

	"github.com/free5gc/aper"
)

var ErrNRBNotInTable = errors.New("resource block count not in NRNRB table")

// nrbTable lists nrb11 .. nrb273 in enumeration order.
var nrbTable = [...]uint16{
	11, 18, 24, 25, 31, 32, 38, 51, 52, 65, 66, 78, 79, 93, 106,
	107, 121, 132, 133, 135, 160, 162, 189, 216, 217, 245, 264, 270, 273,
}

// NRBValues returns the legal resource block counts in table order.
func NRBValues() []uint16 {
	values := make([]uint16, len(nrbTable))
	copy(values, nrbTable[:])
	return values
}

func NRBToF1ap(nrb uint16) (aper.Enumerated, error) {
	for i, v := range nrbTable {
		if v == nrb {
			return aper.Enumerated(i), nil
		}
	}
	return 0, errors.Wrapf(ErrNRBNotInTable, "nrb %d", nrb)
}

func NRBToModels(nrNRB aper.Enumerated) (uint16, error) {
	if uint64(nrNRB) >= uint64(len(nrbTable)) {
		return 0, errors.Wrapf(ErrNRBNotInTable, "index %d", nrNRB)
	}
	return nrbTable[nrNRB], nil
}
