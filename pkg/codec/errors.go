package codec

import (
	"github.com/pkg/errors"

	"github.com/free5gc/f1ap/pkg/model"
)

// Every error returned by this package wraps one of these.
var (
	// ErrStructureMismatch: the PDU is valid F1AP but not the expected
	// message, or not an interface-management message at all.
	ErrStructureMismatch = errors.New("structure mismatch")
	ErrMissingIE         = errors.New("missing mandatory IE")
	ErrUnknownIE         = errors.New("unknown IE")
	ErrUnsupportedValue  = errors.New("unsupported value")
	ErrMalformed         = errors.New("malformed message")
	ErrInvalidMessage    = model.ErrInvalidMessage
)

// ErrorKind names the sentinel err wraps; it is the result label of the
// codec metrics.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrStructureMismatch):
		return "structure_mismatch"
	case errors.Is(err, ErrMissingIE):
		return "missing_ie"
	case errors.Is(err, ErrUnknownIE):
		return "unknown_ie"
	case errors.Is(err, ErrUnsupportedValue):
		return "unsupported_value"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, ErrInvalidMessage):
		return "invalid_message"
	default:
		return "error"
	}
}

func missing(id int64, name string) error {
	return errors.Wrapf(ErrMissingIE, "%s (id %d)", name, id)
}

func duplicate(id int64) error {
	return errors.Wrapf(ErrMalformed, "duplicate IE %d", id)
}

func unknownIE(id int64) error {
	return errors.Wrapf(ErrUnknownIE, "IE %d", id)
}
