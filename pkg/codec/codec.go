// Package codec converts F1 interface-management messages between their
// model values and the APER wire encoding.
package codec

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/free5gc/f1ap"
	"github.com/free5gc/f1ap/f1apType"
	"github.com/free5gc/f1ap/internal/logger"
	"github.com/free5gc/f1ap/internal/metrics"
	"github.com/free5gc/f1ap/pkg/model"
)

// Codec holds decode policy and observability hooks. It is immutable after
// New and safe for concurrent use.
type Codec struct {
	policy    Policy
	log       *logrus.Entry
	metrics   *metrics.Collector
	onWarning func(model.MessageType, Warning)
}

type Option func(*Codec)

func WithPolicy(p Policy) Option {
	return func(c *Codec) { c.policy = p }
}

func WithLogger(log *logrus.Entry) Option {
	return func(c *Codec) {
		if log != nil {
			c.log = log
		}
	}
}

func WithMetrics(m *metrics.Collector) Option {
	return func(c *Codec) { c.metrics = m }
}

// WithWarningHandler registers fn to receive every warning of a successful
// decode.
func WithWarningHandler(fn func(model.MessageType, Warning)) Option {
	return func(c *Codec) { c.onWarning = fn }
}

func New(opts ...Option) *Codec {
	c := &Codec{
		policy: DefaultPolicy(),
		log:    logger.CodecLog,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Codec) Policy() Policy {
	return c.policy
}

// Build validates m and converts it to an F1AP-PDU.
func Build(m model.Message) (f1apType.F1APPDU, error) {
	switch x := m.(type) {
	case *model.F1SetupRequest:
		return BuildF1SetupRequest(x)
	case *model.F1SetupResponse:
		return BuildF1SetupResponse(x)
	case *model.F1SetupFailure:
		return BuildF1SetupFailure(x)
	case *model.GNBDUConfigurationUpdate:
		return BuildGNBDUConfigurationUpdate(x)
	case *model.GNBDUConfigurationUpdateAcknowledge:
		return BuildGNBDUConfigurationUpdateAcknowledge(x)
	case *model.GNBDUConfigurationUpdateFailure:
		return BuildGNBDUConfigurationUpdateFailure(x)
	case *model.GNBCUConfigurationUpdate:
		return BuildGNBCUConfigurationUpdate(x)
	case *model.GNBCUConfigurationUpdateAcknowledge:
		return BuildGNBCUConfigurationUpdateAcknowledge(x)
	case *model.GNBCUConfigurationUpdateFailure:
		return BuildGNBCUConfigurationUpdateFailure(x)
	case nil:
		return f1apType.F1APPDU{}, errNilMessage
	}
	return f1apType.F1APPDU{}, errors.Wrapf(ErrInvalidMessage, "unsupported message %T", m)
}

// Encode validates m and returns its APER encoding.
func (c *Codec) Encode(m model.Message) ([]byte, error) {
	mt := model.MessageTypeUnknown
	if m != nil {
		mt = m.MessageType()
	}
	log := c.log.WithField(logger.FieldMessageType, mt.String())

	b, err := encode(m)
	c.metrics.ObserveEncode(mt.String(), ErrorKind(err))
	if err != nil {
		log.Debugf("encode failed: %+v", err)
		return nil, err
	}
	log.Tracef("encoded %d bytes", len(b))
	return b, nil
}

func encode(m model.Message) ([]byte, error) {
	pdu, err := Build(m)
	if err != nil {
		return nil, err
	}
	b, err := f1ap.Encoder(pdu)
	if err != nil {
		return nil, invalidf("encode PDU: %v", err)
	}
	return b, nil
}

// Decode parses an F1AP-PDU carrying any supported message.
func (c *Codec) Decode(b []byte) (model.Message, error) {
	m, _, err := c.DecodeWithWarnings(b)
	return m, err
}

// DecodeWithWarnings is Decode that also returns the non-fatal findings.
func (c *Codec) DecodeWithWarnings(b []byte) (model.Message, []Warning, error) {
	return c.decodeAs(b, model.MessageTypeUnknown)
}

// DecodeType is DecodeWithWarnings restricted to one message type; any other
// message fails with ErrStructureMismatch. MessageTypeUnknown accepts all.
func (c *Codec) DecodeType(b []byte, want model.MessageType) (model.Message, []Warning, error) {
	return c.decodeAs(b, want)
}

// Parse converts an already decoded PDU.
func (c *Codec) Parse(pdu *f1apType.F1APPDU) (model.Message, error) {
	m, _, err := c.parseAs(pdu, model.MessageTypeUnknown)
	return m, err
}

func (c *Codec) decodeAs(b []byte, want model.MessageType) (model.Message, []Warning, error) {
	pdu, err := f1ap.Decoder(b)
	if err != nil {
		err = errors.Wrapf(ErrMalformed, "F1AP-PDU: %v", err)
		c.metrics.ObserveDecode(want.String(), ErrorKind(err))
		c.log.WithField(logger.FieldMessageType, want.String()).Debugf("decode failed: %v", err)
		return nil, nil, err
	}
	return c.parseAs(pdu, want)
}

// parseAs converts pdu; want restricts the accepted message type unless it
// is MessageTypeUnknown.
func (c *Codec) parseAs(pdu *f1apType.F1APPDU, want model.MessageType) (model.Message, []Warning, error) {
	mt, body, err := MessageTypeOf(pdu)
	if err == nil && want != model.MessageTypeUnknown && mt != want {
		err = errors.Wrapf(ErrStructureMismatch, "got %s, want %s", mt, want)
	}
	if err != nil {
		label := want
		if label == model.MessageTypeUnknown {
			label = mt
		}
		c.metrics.ObserveDecode(label.String(), ErrorKind(err))
		c.log.WithField(logger.FieldMessageType, label.String()).Debugf("decode failed: %v", err)
		return nil, nil, err
	}

	log := c.log.WithField(logger.FieldMessageType, mt.String())
	d := &decodeState{policy: c.policy}
	var m model.Message
	switch mt {
	case model.MessageTypeF1SetupRequest:
		m, err = nonNil(d.parseF1SetupRequest(body))
	case model.MessageTypeF1SetupResponse:
		m, err = nonNil(d.parseF1SetupResponse(body))
	case model.MessageTypeF1SetupFailure:
		m, err = nonNil(d.parseF1SetupFailure(body))
	case model.MessageTypeGNBDUConfigurationUpdate:
		m, err = nonNil(d.parseGNBDUConfigurationUpdate(body))
	case model.MessageTypeGNBDUConfigurationUpdateAcknowledge:
		m, err = nonNil(d.parseGNBDUConfigurationUpdateAcknowledge(body))
	case model.MessageTypeGNBDUConfigurationUpdateFailure:
		m, err = nonNil(d.parseGNBDUConfigurationUpdateFailure(body))
	case model.MessageTypeGNBCUConfigurationUpdate:
		m, err = nonNil(d.parseGNBCUConfigurationUpdate(body))
	case model.MessageTypeGNBCUConfigurationUpdateAcknowledge:
		m, err = nonNil(d.parseGNBCUConfigurationUpdateAcknowledge(body))
	case model.MessageTypeGNBCUConfigurationUpdateFailure:
		m, err = nonNil(d.parseGNBCUConfigurationUpdateFailure(body))
	}
	c.metrics.ObserveDecode(mt.String(), ErrorKind(err))
	if err != nil {
		log.Debugf("decode failed: %v", err)
		return nil, nil, err
	}

	for _, w := range d.warnings {
		log.Warnf("%s", w)
		c.metrics.ObserveWarning(string(w.Code))
		if c.onWarning != nil {
			c.onWarning(mt, w)
		}
	}
	return m, d.warnings, nil
}

// nonNil keeps a typed nil pointer from turning into a non-nil Message.
func nonNil[T model.Message](m T, err error) (model.Message, error) {
	if err != nil {
		return nil, err
	}
	return m, nil
}

func decodeTyped[T model.Message](c *Codec, b []byte, want model.MessageType) (T, error) {
	var zero T
	m, _, err := c.decodeAs(b, want)
	if err != nil {
		return zero, err
	}
	return m.(T), nil
}

func parseTyped[T model.Message](c *Codec, pdu *f1apType.F1APPDU, want model.MessageType) (T, error) {
	var zero T
	m, _, err := c.parseAs(pdu, want)
	if err != nil {
		return zero, err
	}
	return m.(T), nil
}
