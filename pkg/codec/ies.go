package codec

import (
	"github.com/pkg/errors"

	"github.com/free5gc/aper"
	"github.com/free5gc/f1ap/f1apType"
	"github.com/free5gc/f1ap/pkg/model"
)

var errNilMessage = errors.Wrap(ErrInvalidMessage, "nil message")

func (d *decodeState) parseTransactionID(b aper.OctetString) (uint8, error) {
	var tid f1apType.TransactionID
	if err := d.unmarshal("transaction id", b, &tid, ""); err != nil {
		return 0, err
	}
	if tid.Value < 0 || tid.Value > 255 {
		return 0, errors.Wrapf(ErrUnsupportedValue, "transaction id %d", tid.Value)
	}
	return uint8(tid.Value), nil
}

func (d *decodeState) parseGNBDUID(b aper.OctetString) (uint64, error) {
	var id f1apType.GNBDUID
	if err := d.unmarshal("gNB-DU id", b, &id, ""); err != nil {
		return 0, err
	}
	if id.Value < 0 || id.Value > model.MaxGNBDUID {
		return 0, errors.Wrapf(ErrUnsupportedValue, "gNB-DU id %d", id.Value)
	}
	return uint64(id.Value), nil
}

// parseName decodes gNB-DU-Name or gNB-CU-Name; both are the same
// PrintableString.
func (d *decodeState) parseName(what string, b aper.OctetString) (string, error) {
	var name f1apType.GNBDUName
	if err := d.unmarshal(what, b, &name, ""); err != nil {
		return "", err
	}
	if name.Value == "" {
		return "", errors.Wrapf(ErrMalformed, "empty %s", what)
	}
	return name.Value, nil
}

func (s seenIEs) require(id int64, name string) error {
	if !s[id] {
		return missing(id, name)
	}
	return nil
}
