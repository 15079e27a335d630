package codec

import (
	"github.com/free5gc/f1ap/f1apType"
	"github.com/free5gc/f1ap/pkg/model"
)

// Typed entry points. A Decode or Parse of a PDU that carries a different
// message fails with ErrStructureMismatch.

func (c *Codec) EncodeF1SetupRequest(m *model.F1SetupRequest) ([]byte, error) {
	return c.Encode(m)
}

func (c *Codec) DecodeF1SetupRequest(b []byte) (*model.F1SetupRequest, error) {
	return decodeTyped[*model.F1SetupRequest](c, b, model.MessageTypeF1SetupRequest)
}

func (c *Codec) ParseF1SetupRequest(pdu *f1apType.F1APPDU) (*model.F1SetupRequest, error) {
	return parseTyped[*model.F1SetupRequest](c, pdu, model.MessageTypeF1SetupRequest)
}

func (c *Codec) EncodeF1SetupResponse(m *model.F1SetupResponse) ([]byte, error) {
	return c.Encode(m)
}

func (c *Codec) DecodeF1SetupResponse(b []byte) (*model.F1SetupResponse, error) {
	return decodeTyped[*model.F1SetupResponse](c, b, model.MessageTypeF1SetupResponse)
}

func (c *Codec) ParseF1SetupResponse(pdu *f1apType.F1APPDU) (*model.F1SetupResponse, error) {
	return parseTyped[*model.F1SetupResponse](c, pdu, model.MessageTypeF1SetupResponse)
}

func (c *Codec) EncodeF1SetupFailure(m *model.F1SetupFailure) ([]byte, error) {
	return c.Encode(m)
}

func (c *Codec) DecodeF1SetupFailure(b []byte) (*model.F1SetupFailure, error) {
	return decodeTyped[*model.F1SetupFailure](c, b, model.MessageTypeF1SetupFailure)
}

func (c *Codec) ParseF1SetupFailure(pdu *f1apType.F1APPDU) (*model.F1SetupFailure, error) {
	return parseTyped[*model.F1SetupFailure](c, pdu, model.MessageTypeF1SetupFailure)
}

func (c *Codec) EncodeGNBDUConfigurationUpdate(m *model.GNBDUConfigurationUpdate) ([]byte, error) {
	return c.Encode(m)
}

func (c *Codec) DecodeGNBDUConfigurationUpdate(b []byte) (*model.GNBDUConfigurationUpdate, error) {
	return decodeTyped[*model.GNBDUConfigurationUpdate](c, b, model.MessageTypeGNBDUConfigurationUpdate)
}

func (c *Codec) ParseGNBDUConfigurationUpdate(pdu *f1apType.F1APPDU) (*model.GNBDUConfigurationUpdate, error) {
	return parseTyped[*model.GNBDUConfigurationUpdate](c, pdu, model.MessageTypeGNBDUConfigurationUpdate)
}

func (c *Codec) EncodeGNBDUConfigurationUpdateAcknowledge(m *model.GNBDUConfigurationUpdateAcknowledge) ([]byte, error) {
	return c.Encode(m)
}

func (c *Codec) DecodeGNBDUConfigurationUpdateAcknowledge(b []byte) (*model.GNBDUConfigurationUpdateAcknowledge, error) {
	return decodeTyped[*model.GNBDUConfigurationUpdateAcknowledge](c, b, model.MessageTypeGNBDUConfigurationUpdateAcknowledge)
}

func (c *Codec) ParseGNBDUConfigurationUpdateAcknowledge(pdu *f1apType.F1APPDU) (*model.GNBDUConfigurationUpdateAcknowledge, error) {
	return parseTyped[*model.GNBDUConfigurationUpdateAcknowledge](c, pdu, model.MessageTypeGNBDUConfigurationUpdateAcknowledge)
}

func (c *Codec) EncodeGNBDUConfigurationUpdateFailure(m *model.GNBDUConfigurationUpdateFailure) ([]byte, error) {
	return c.Encode(m)
}

func (c *Codec) DecodeGNBDUConfigurationUpdateFailure(b []byte) (*model.GNBDUConfigurationUpdateFailure, error) {
	return decodeTyped[*model.GNBDUConfigurationUpdateFailure](c, b, model.MessageTypeGNBDUConfigurationUpdateFailure)
}

func (c *Codec) ParseGNBDUConfigurationUpdateFailure(pdu *f1apType.F1APPDU) (*model.GNBDUConfigurationUpdateFailure, error) {
	return parseTyped[*model.GNBDUConfigurationUpdateFailure](c, pdu, model.MessageTypeGNBDUConfigurationUpdateFailure)
}

func (c *Codec) EncodeGNBCUConfigurationUpdate(m *model.GNBCUConfigurationUpdate) ([]byte, error) {
	return c.Encode(m)
}

func (c *Codec) DecodeGNBCUConfigurationUpdate(b []byte) (*model.GNBCUConfigurationUpdate, error) {
	return decodeTyped[*model.GNBCUConfigurationUpdate](c, b, model.MessageTypeGNBCUConfigurationUpdate)
}

func (c *Codec) ParseGNBCUConfigurationUpdate(pdu *f1apType.F1APPDU) (*model.GNBCUConfigurationUpdate, error) {
	return parseTyped[*model.GNBCUConfigurationUpdate](c, pdu, model.MessageTypeGNBCUConfigurationUpdate)
}

func (c *Codec) EncodeGNBCUConfigurationUpdateAcknowledge(m *model.GNBCUConfigurationUpdateAcknowledge) ([]byte, error) {
	return c.Encode(m)
}

func (c *Codec) DecodeGNBCUConfigurationUpdateAcknowledge(b []byte) (*model.GNBCUConfigurationUpdateAcknowledge, error) {
	return decodeTyped[*model.GNBCUConfigurationUpdateAcknowledge](c, b, model.MessageTypeGNBCUConfigurationUpdateAcknowledge)
}

func (c *Codec) ParseGNBCUConfigurationUpdateAcknowledge(pdu *f1apType.F1APPDU) (*model.GNBCUConfigurationUpdateAcknowledge, error) {
	return parseTyped[*model.GNBCUConfigurationUpdateAcknowledge](c, pdu, model.MessageTypeGNBCUConfigurationUpdateAcknowledge)
}

func (c *Codec) EncodeGNBCUConfigurationUpdateFailure(m *model.GNBCUConfigurationUpdateFailure) ([]byte, error) {
	return c.Encode(m)
}

func (c *Codec) DecodeGNBCUConfigurationUpdateFailure(b []byte) (*model.GNBCUConfigurationUpdateFailure, error) {
	return decodeTyped[*model.GNBCUConfigurationUpdateFailure](c, b, model.MessageTypeGNBCUConfigurationUpdateFailure)
}

func (c *Codec) ParseGNBCUConfigurationUpdateFailure(pdu *f1apType.F1APPDU) (*model.GNBCUConfigurationUpdateFailure, error) {
	return parseTyped[*model.GNBCUConfigurationUpdateFailure](c, pdu, model.MessageTypeGNBCUConfigurationUpdateFailure)
}
