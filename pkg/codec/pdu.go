package codec

import (
	"github.com/pkg/errors"

	"github.com/free5gc/aper"
	"github.com/free5gc/f1ap/f1apType"
	"github.com/free5gc/f1ap/internal/container"
	"github.com/free5gc/f1ap/pkg/model"
)

type procedure struct {
	code    int64
	present int
}

var procedures = map[model.MessageType]procedure{
	model.MessageTypeF1SetupRequest: {
		f1apType.ProcedureCodeF1Setup, f1apType.F1APPDUPresentInitiatingMessage,
	},
	model.MessageTypeF1SetupResponse: {
		f1apType.ProcedureCodeF1Setup, f1apType.F1APPDUPresentSuccessfulOutcome,
	},
	model.MessageTypeF1SetupFailure: {
		f1apType.ProcedureCodeF1Setup, f1apType.F1APPDUPresentUnsuccessfulOutcome,
	},
	model.MessageTypeGNBDUConfigurationUpdate: {
		f1apType.ProcedureCodeGNBDUConfigurationUpdate, f1apType.F1APPDUPresentInitiatingMessage,
	},
	model.MessageTypeGNBDUConfigurationUpdateAcknowledge: {
		f1apType.ProcedureCodeGNBDUConfigurationUpdate, f1apType.F1APPDUPresentSuccessfulOutcome,
	},
	model.MessageTypeGNBDUConfigurationUpdateFailure: {
		f1apType.ProcedureCodeGNBDUConfigurationUpdate, f1apType.F1APPDUPresentUnsuccessfulOutcome,
	},
	model.MessageTypeGNBCUConfigurationUpdate: {
		f1apType.ProcedureCodeGNBCUConfigurationUpdate, f1apType.F1APPDUPresentInitiatingMessage,
	},
	model.MessageTypeGNBCUConfigurationUpdateAcknowledge: {
		f1apType.ProcedureCodeGNBCUConfigurationUpdate, f1apType.F1APPDUPresentSuccessfulOutcome,
	},
	model.MessageTypeGNBCUConfigurationUpdateFailure: {
		f1apType.ProcedureCodeGNBCUConfigurationUpdate, f1apType.F1APPDUPresentUnsuccessfulOutcome,
	},
}

func presentName(present int) string {
	switch present {
	case f1apType.F1APPDUPresentInitiatingMessage:
		return "initiatingMessage"
	case f1apType.F1APPDUPresentSuccessfulOutcome:
		return "successfulOutcome"
	case f1apType.F1APPDUPresentUnsuccessfulOutcome:
		return "unsuccessfulOutcome"
	case f1apType.F1APPDUPresentChoiceExtensions:
		return "choiceExtensions"
	}
	return "nothing"
}

// wrapPDU encodes body and places it in the PDU alternative of mt. Every
// procedure here is sent with criticality reject.
func wrapPDU(mt model.MessageType, body interface{}) (f1apType.F1APPDU, error) {
	var pdu f1apType.F1APPDU
	proc, ok := procedures[mt]
	if !ok {
		return pdu, invalidf("message type %s", mt)
	}
	b, err := container.Marshal(body, container.BodyParams)
	if err != nil {
		return pdu, invalidf("%s body: %v", mt, err)
	}
	pdu.Present = proc.present
	switch proc.present {
	case f1apType.F1APPDUPresentInitiatingMessage:
		msg := &f1apType.InitiatingMessage{Value: b}
		msg.ProcedureCode.Value = proc.code
		msg.Criticality.Value = f1apType.CriticalityPresentReject
		pdu.InitiatingMessage = msg
	case f1apType.F1APPDUPresentSuccessfulOutcome:
		msg := &f1apType.SuccessfulOutcome{Value: b}
		msg.ProcedureCode.Value = proc.code
		msg.Criticality.Value = f1apType.CriticalityPresentReject
		pdu.SuccessfulOutcome = msg
	case f1apType.F1APPDUPresentUnsuccessfulOutcome:
		msg := &f1apType.UnsuccessfulOutcome{Value: b}
		msg.ProcedureCode.Value = proc.code
		msg.Criticality.Value = f1apType.CriticalityPresentReject
		pdu.UnsuccessfulOutcome = msg
	}
	return pdu, nil
}

// MessageTypeOf identifies the message carried by pdu and returns its
// encoded body.
func MessageTypeOf(pdu *f1apType.F1APPDU) (model.MessageType, aper.OctetString, error) {
	if pdu == nil {
		return model.MessageTypeUnknown, nil, errors.Wrap(ErrMalformed, "nil PDU")
	}
	var code int64
	var body aper.OctetString
	switch pdu.Present {
	case f1apType.F1APPDUPresentInitiatingMessage:
		if pdu.InitiatingMessage == nil {
			return model.MessageTypeUnknown, nil, errors.Wrap(ErrMalformed, "initiatingMessage missing")
		}
		code, body = pdu.InitiatingMessage.ProcedureCode.Value, pdu.InitiatingMessage.Value
	case f1apType.F1APPDUPresentSuccessfulOutcome:
		if pdu.SuccessfulOutcome == nil {
			return model.MessageTypeUnknown, nil, errors.Wrap(ErrMalformed, "successfulOutcome missing")
		}
		code, body = pdu.SuccessfulOutcome.ProcedureCode.Value, pdu.SuccessfulOutcome.Value
	case f1apType.F1APPDUPresentUnsuccessfulOutcome:
		if pdu.UnsuccessfulOutcome == nil {
			return model.MessageTypeUnknown, nil, errors.Wrap(ErrMalformed, "unsuccessfulOutcome missing")
		}
		code, body = pdu.UnsuccessfulOutcome.ProcedureCode.Value, pdu.UnsuccessfulOutcome.Value
	case f1apType.F1APPDUPresentChoiceExtensions:
		return model.MessageTypeUnknown, nil, errors.Wrap(ErrStructureMismatch, "F1AP-PDU choice extension")
	default:
		return model.MessageTypeUnknown, nil, errors.Wrapf(ErrMalformed, "F1AP-PDU present %d", pdu.Present)
	}
	for mt, proc := range procedures {
		if proc.code == code && proc.present == pdu.Present {
			return mt, body, nil
		}
	}
	return model.MessageTypeUnknown, nil, errors.Wrapf(ErrStructureMismatch,
		"procedure %d in %s", code, presentName(pdu.Present))
}
