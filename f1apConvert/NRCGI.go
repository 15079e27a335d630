package f1apConvert

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/free5gc/aper"
	"github.com/free5gc/ngap/ngapType"
)

const MaxNRCellIdentity uint64 = 1<<36 - 1

var ErrInvalidNRCellIdentity = errors.New("invalid NR cell identity")

// NRCellIdentityToF1ap packs the 36 bit identity MSB first into 5 octets;
// the last 4 bits are unused.
func NRCellIdentityToF1ap(nrCellId uint64) (ngapType.NRCellIdentity, error) {
	if nrCellId > MaxNRCellIdentity {
		return ngapType.NRCellIdentity{}, errors.Wrapf(ErrInvalidNRCellIdentity, "%#x exceeds 36 bits", nrCellId)
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, nrCellId<<28)
	return ngapType.NRCellIdentity{
		Value: aper.BitString{
			Bytes:     buf[:5],
			BitLength: 36,
		},
	}, nil
}

func NRCellIdentityToModels(nrCellIdentity ngapType.NRCellIdentity) (uint64, error) {
	bs := nrCellIdentity.Value
	if bs.BitLength != 36 || len(bs.Bytes) < 5 {
		return 0, errors.Wrapf(ErrInvalidNRCellIdentity, "bit length %d, %d octets", bs.BitLength, len(bs.Bytes))
	}
	var buf [8]byte
	copy(buf[:], bs.Bytes[:5])
	return binary.BigEndian.Uint64(buf[:]) >> 28, nil
}
