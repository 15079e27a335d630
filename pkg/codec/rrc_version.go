package codec

import (
	"github.com/pkg/errors"

	"github.com/free5gc/aper"
	"github.com/free5gc/f1ap/f1apType"
	"github.com/free5gc/f1ap/internal/container"
	"github.com/free5gc/f1ap/pkg/model"
)

// rrcVersionParams: RRC-Version is an extensible SEQUENCE.
const rrcVersionParams = "valueExt"

// buildRRCVersion sets bit i of the legacy bitmap (first bit first) when
// byte i is non-zero and carries the full version in
// latest-RRC-Version-Enhanced.
func buildRRCVersion(v model.RRCVersion) (f1apType.RRCVersion, error) {
	var rrc f1apType.RRCVersion
	var bitmap byte
	for i, b := range v {
		if b != 0 {
			bitmap |= 0x80 >> uint(i)
		}
	}
	rrc.LatestRRCVersion = aper.BitString{
		Bytes:     []byte{bitmap},
		BitLength: model.RRCVersionLength,
	}
	var ext container.ExtList
	ext.Add(f1apType.ProtocolIEIDLatestRRCVersionEnhanced, f1apType.CriticalityPresentIgnore,
		f1apType.LatestRRCVersionEnhanced{Value: aper.OctetString(cloneBytes(v[:]))}, "")
	if err := ext.Err(); err != nil {
		return rrc, invalidf("rrc version: %v", err)
	}
	rrc.IEExtensions = ext.Container()
	return rrc, nil
}

// parseRRCVersion prefers latest-RRC-Version-Enhanced. Without it only the
// bitmap is left and each byte comes back as 0 or 1.
func (d *decodeState) parseRRCVersion(where string, b aper.OctetString) (model.RRCVersion, error) {
	var v model.RRCVersion
	var rrc f1apType.RRCVersion
	if err := d.unmarshal(where, b, &rrc, rrcVersionParams); err != nil {
		return v, err
	}
	enhanced := false
	err := d.extensions(where, rrc.IEExtensions, func(ext *f1apType.ProtocolExtensionField) (bool, error) {
		if ext.Id.Value != f1apType.ProtocolIEIDLatestRRCVersionEnhanced {
			return false, nil
		}
		var latest f1apType.LatestRRCVersionEnhanced
		if err := d.unmarshal(where+" enhanced", ext.ExtensionValue, &latest, ""); err != nil {
			return true, err
		}
		if len(latest.Value) != model.RRCVersionLength {
			return true, errors.Wrapf(ErrMalformed, "%s: enhanced version of %d bytes", where, len(latest.Value))
		}
		copy(v[:], latest.Value)
		enhanced = true
		return true, nil
	})
	if err != nil {
		return v, err
	}
	if enhanced {
		return v, nil
	}
	if len(rrc.LatestRRCVersion.Bytes) == 0 {
		return v, errors.Wrapf(ErrMalformed, "%s: empty bitmap", where)
	}
	bitmap := rrc.LatestRRCVersion.Bytes[0]
	for i := range v {
		if bitmap&(0x80>>uint(i)) != 0 {
			v[i] = 1
		}
	}
	d.warn(WarnLegacyRRCVersion, "%s: no enhanced version, rebuilt %v from bitmap", where, v)
	return v, nil
}
