package codec

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/free5gc/aper"
	"github.com/free5gc/f1ap/f1apType"
	"github.com/free5gc/f1ap/internal/container"
)

// decodeState lives for one decode call and collects its warnings.
type decodeState struct {
	policy   Policy
	warnings []Warning
}

func (d *decodeState) warn(code WarningCode, format string, args ...interface{}) {
	d.warnings = append(d.warnings, Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}

// apply either records a warning or returns a sentinel-wrapped error,
// depending on action.
func (d *decodeState) apply(action Action, code WarningCode, sentinel error, format string, args ...interface{}) error {
	if action == ActionReject {
		return errors.Wrapf(sentinel, format, args...)
	}
	d.warn(code, format, args...)
	return nil
}

func (d *decodeState) unmarshal(what string, b aper.OctetString, ptr interface{}, params string) error {
	if err := container.Unmarshal(b, ptr, params); err != nil {
		return errors.Wrapf(ErrMalformed, "%s: %v", what, err)
	}
	return nil
}

// unknownExtension handles an extension id the caller does not know.
func (d *decodeState) unknownExtension(where string, ext *f1apType.ProtocolExtensionField) error {
	return d.apply(d.policy.unknownExtension(ext.Criticality.Value), WarnUnknownExtension, ErrUnknownIE,
		"%s: extension %d (criticality %d)", where, ext.Id.Value, ext.Criticality.Value)
}

// extensions runs known on every field of c; known returns false for ids
// it does not handle.
func (d *decodeState) extensions(where string, c *f1apType.ProtocolExtensionContainer,
	known func(ext *f1apType.ProtocolExtensionField) (bool, error),
) error {
	if c == nil {
		return nil
	}
	for i := range c.List {
		ext := &c.List[i]
		handled := false
		if known != nil {
			var err error
			if handled, err = known(ext); err != nil {
				return err
			}
		}
		if !handled {
			if err := d.unknownExtension(where, ext); err != nil {
				return err
			}
		}
	}
	return nil
}

// seenIEs rejects a second occurrence of the same IE id.
type seenIEs map[int64]bool

func (s seenIEs) mark(id int64) error {
	if s[id] {
		return duplicate(id)
	}
	s[id] = true
	return nil
}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return append([]byte(nil), b...)
}
