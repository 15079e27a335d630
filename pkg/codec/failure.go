package codec

import (
	"github.com/pkg/errors"

	"github.com/free5gc/aper"
	"github.com/free5gc/f1ap/f1apType"
	"github.com/free5gc/f1ap/internal/container"
	"github.com/free5gc/f1ap/pkg/model"
)

const (
	causeParams                  = "valueLB:0,valueUB:4"
	criticalityDiagnosticsParams = "valueExt"
)

func buildCause(c model.Cause) (f1apType.Cause, error) {
	var cause f1apType.Cause
	value := aper.Enumerated(c.Value)
	switch c.Group {
	case model.CauseGroupRadioNetwork:
		cause.Present = f1apType.CausePresentRadioNetwork
		cause.RadioNetwork = &f1apType.CauseRadioNetwork{Value: value}
	case model.CauseGroupTransport:
		cause.Present = f1apType.CausePresentTransport
		cause.Transport = &f1apType.CauseTransport{Value: value}
	case model.CauseGroupProtocol:
		cause.Present = f1apType.CausePresentProtocol
		cause.Protocol = &f1apType.CauseProtocol{Value: value}
	case model.CauseGroupMisc:
		cause.Present = f1apType.CausePresentMisc
		cause.Misc = &f1apType.CauseMisc{Value: value}
	default:
		return cause, invalidf("cause group %s", c.Group)
	}
	return cause, nil
}

func parseCause(where string, cause *f1apType.Cause) (model.Cause, error) {
	var c model.Cause
	var value aper.Enumerated
	switch {
	case cause.Present == f1apType.CausePresentRadioNetwork && cause.RadioNetwork != nil:
		c.Group, value = model.CauseGroupRadioNetwork, cause.RadioNetwork.Value
	case cause.Present == f1apType.CausePresentTransport && cause.Transport != nil:
		c.Group, value = model.CauseGroupTransport, cause.Transport.Value
	case cause.Present == f1apType.CausePresentProtocol && cause.Protocol != nil:
		c.Group, value = model.CauseGroupProtocol, cause.Protocol.Value
	case cause.Present == f1apType.CausePresentMisc && cause.Misc != nil:
		c.Group, value = model.CauseGroupMisc, cause.Misc.Value
	case cause.Present == f1apType.CausePresentChoiceExtensions:
		return c, errors.Wrapf(ErrUnsupportedValue, "%s: cause extension", where)
	default:
		return c, errors.Wrapf(ErrMalformed, "%s: cause present %d", where, cause.Present)
	}
	if uint64(value) > uint64(model.MaxCauseValue[c.Group]) {
		return c, errors.Wrapf(ErrUnsupportedValue, "%s: %s value %d", where, c.Group, value)
	}
	c.Value = uint8(value)
	return c, nil
}

func buildCriticalityDiagnostics(cd *model.CriticalityDiagnostics) f1apType.CriticalityDiagnostics {
	var diag f1apType.CriticalityDiagnostics
	if cd.ProcedureCode != nil {
		diag.ProcedureCode = &f1apType.ProcedureCode{Value: int64(*cd.ProcedureCode)}
	}
	if cd.TriggeringMessage != nil {
		diag.TriggeringMessage = &f1apType.TriggeringMessage{Value: aper.Enumerated(*cd.TriggeringMessage)}
	}
	if cd.ProcedureCriticality != nil {
		diag.ProcedureCriticality = &f1apType.Criticality{Value: aper.Enumerated(*cd.ProcedureCriticality)}
	}
	if cd.TransactionID != nil {
		diag.TransactionID = &f1apType.TransactionID{Value: int64(*cd.TransactionID)}
	}
	if len(cd.IEs) > 0 {
		diag.IEsCriticalityDiagnostics = new(f1apType.CriticalityDiagnosticsIEList)
		for _, ie := range cd.IEs {
			var item f1apType.CriticalityDiagnosticsIEItem
			item.IECriticality.Value = aper.Enumerated(ie.Criticality)
			item.IEID.Value = int64(ie.ID)
			item.TypeOfError.Value = aper.Enumerated(ie.TypeOfError)
			diag.IEsCriticalityDiagnostics.List = append(diag.IEsCriticalityDiagnostics.List, item)
		}
	}
	return diag
}

func (d *decodeState) parseCriticalityDiagnostics(where string, b aper.OctetString) (*model.CriticalityDiagnostics, error) {
	var diag f1apType.CriticalityDiagnostics
	if err := d.unmarshal(where, b, &diag, criticalityDiagnosticsParams); err != nil {
		return nil, err
	}
	cd := new(model.CriticalityDiagnostics)
	if diag.ProcedureCode != nil {
		pc := uint8(diag.ProcedureCode.Value)
		cd.ProcedureCode = &pc
	}
	if diag.TriggeringMessage != nil {
		tm := model.TriggeringMessage(diag.TriggeringMessage.Value)
		cd.TriggeringMessage = &tm
	}
	if diag.ProcedureCriticality != nil {
		crit := model.Criticality(diag.ProcedureCriticality.Value)
		cd.ProcedureCriticality = &crit
	}
	if diag.TransactionID != nil {
		if diag.TransactionID.Value > 255 {
			return nil, errors.Wrapf(ErrUnsupportedValue, "%s: transaction id %d", where, diag.TransactionID.Value)
		}
		tid := uint8(diag.TransactionID.Value)
		cd.TransactionID = &tid
	}
	if diag.IEsCriticalityDiagnostics != nil {
		for _, item := range diag.IEsCriticalityDiagnostics.List {
			if item.TypeOfError.Value > f1apType.TypeOfErrorPresentMissing {
				return nil, errors.Wrapf(ErrUnsupportedValue, "%s: type of error %d", where, item.TypeOfError.Value)
			}
			if err := d.extensions(where, item.IEExtensions, nil); err != nil {
				return nil, err
			}
			cd.IEs = append(cd.IEs, model.CriticalityDiagnosticsIE{
				Criticality: model.Criticality(item.IECriticality.Value),
				ID:          uint16(item.IEID.Value),
				TypeOfError: model.TypeOfError(item.TypeOfError.Value),
			})
		}
	}
	if err := d.extensions(where, diag.IEExtensions, nil); err != nil {
		return nil, err
	}
	return cd, nil
}

// buildFailure encodes the IEs shared by all unsuccessful outcomes.
func buildFailure(f *model.Failure) (f1apType.ProtocolIEContainer, error) {
	var ies container.IEList
	ies.Add(f1apType.ProtocolIEIDTransactionID, f1apType.CriticalityPresentReject,
		f1apType.TransactionID{Value: int64(f.TransactionID)}, "")
	cause, err := buildCause(f.Cause)
	if err != nil {
		return f1apType.ProtocolIEContainer{}, err
	}
	ies.Add(f1apType.ProtocolIEIDCause, f1apType.CriticalityPresentIgnore, cause, causeParams)
	if f.TimeToWait != nil {
		ies.Add(f1apType.ProtocolIEIDTimeToWait, f1apType.CriticalityPresentIgnore,
			f1apType.TimeToWait{Value: aper.Enumerated(*f.TimeToWait)}, "")
	}
	if f.CriticalityDiagnostics != nil {
		ies.Add(f1apType.ProtocolIEIDCriticalityDiagnostics, f1apType.CriticalityPresentIgnore,
			buildCriticalityDiagnostics(f.CriticalityDiagnostics), criticalityDiagnosticsParams)
	}
	if err := ies.Err(); err != nil {
		return f1apType.ProtocolIEContainer{}, invalidf("%v", err)
	}
	return ies.Container(), nil
}

func (d *decodeState) parseFailure(ies []f1apType.ProtocolIEField) (model.Failure, error) {
	var f model.Failure
	seen := seenIEs{}
	for i := range ies {
		ie := &ies[i]
		if err := seen.mark(ie.Id.Value); err != nil {
			return f, err
		}
		switch ie.Id.Value {
		case f1apType.ProtocolIEIDTransactionID:
			tid, err := d.parseTransactionID(ie.Value)
			if err != nil {
				return f, err
			}
			f.TransactionID = tid
		case f1apType.ProtocolIEIDCause:
			var cause f1apType.Cause
			if err := d.unmarshal("cause", ie.Value, &cause, causeParams); err != nil {
				return f, err
			}
			c, err := parseCause("cause", &cause)
			if err != nil {
				return f, err
			}
			f.Cause = c
		case f1apType.ProtocolIEIDTimeToWait:
			var ttw f1apType.TimeToWait
			if err := d.unmarshal("time to wait", ie.Value, &ttw, ""); err != nil {
				return f, err
			}
			if ttw.Value > f1apType.TimeToWaitPresentV60s {
				return f, errors.Wrapf(ErrUnsupportedValue, "time to wait %d", ttw.Value)
			}
			v := model.TimeToWait(ttw.Value)
			f.TimeToWait = &v
		case f1apType.ProtocolIEIDCriticalityDiagnostics:
			cd, err := d.parseCriticalityDiagnostics("criticality diagnostics", ie.Value)
			if err != nil {
				return f, err
			}
			f.CriticalityDiagnostics = cd
		default:
			return f, unknownIE(ie.Id.Value)
		}
	}
	if err := seen.require(f1apType.ProtocolIEIDTransactionID, "TransactionID"); err != nil {
		return f, err
	}
	if err := seen.require(f1apType.ProtocolIEIDCause, "Cause"); err != nil {
		return f, err
	}
	return f, nil
}
