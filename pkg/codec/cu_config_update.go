package codec

import (
	"github.com/free5gc/aper"
	"github.com/free5gc/f1ap/f1apType"
	"github.com/free5gc/f1ap/internal/container"
	"github.com/free5gc/f1ap/pkg/model"
)

func BuildGNBCUConfigurationUpdate(m *model.GNBCUConfigurationUpdate) (f1apType.F1APPDU, error) {
	if m == nil {
		return f1apType.F1APPDU{}, errNilMessage
	}
	if err := m.Validate(); err != nil {
		return f1apType.F1APPDU{}, err
	}

	var ies container.IEList
	ies.Add(f1apType.ProtocolIEIDTransactionID, f1apType.CriticalityPresentReject,
		f1apType.TransactionID{Value: int64(m.TransactionID)}, "")
	if len(m.CellsToActivate) > 0 {
		cells, err := buildCellsToActivate(m.CellsToActivate)
		if err != nil {
			return f1apType.F1APPDU{}, err
		}
		ies.Add(f1apType.ProtocolIEIDCellsToBeActivatedList, f1apType.CriticalityPresentReject,
			f1apType.CellsToBeActivatedList{List: cells}, "")
	}
	if len(m.CellsToDeactivate) > 0 {
		cells, err := buildNRCGIItems(f1apType.ProtocolIEIDCellsToBeDeactivatedListItem, m.CellsToDeactivate)
		if err != nil {
			return f1apType.F1APPDU{}, err
		}
		ies.Add(f1apType.ProtocolIEIDCellsToBeDeactivatedList, f1apType.CriticalityPresentReject,
			f1apType.CellsToBeDeactivatedList{List: cells}, "")
	}
	if err := ies.Err(); err != nil {
		return f1apType.F1APPDU{}, invalidf("%v", err)
	}

	return wrapPDU(model.MessageTypeGNBCUConfigurationUpdate,
		f1apType.GNBCUConfigurationUpdate{ProtocolIEs: ies.Container()})
}

func (d *decodeState) parseGNBCUConfigurationUpdate(b aper.OctetString) (*model.GNBCUConfigurationUpdate, error) {
	var body f1apType.GNBCUConfigurationUpdate
	if err := d.unmarshal("GNBCUConfigurationUpdate", b, &body, container.BodyParams); err != nil {
		return nil, err
	}

	m := new(model.GNBCUConfigurationUpdate)
	seen := seenIEs{}
	for i := range body.ProtocolIEs.List {
		ie := &body.ProtocolIEs.List[i]
		if err := seen.mark(ie.Id.Value); err != nil {
			return nil, err
		}
		var err error
		switch ie.Id.Value {
		case f1apType.ProtocolIEIDTransactionID:
			m.TransactionID, err = d.parseTransactionID(ie.Value)
		case f1apType.ProtocolIEIDCellsToBeActivatedList:
			var list f1apType.CellsToBeActivatedList
			if err = d.unmarshal("cells to be activated list", ie.Value, &list, ""); err == nil {
				m.CellsToActivate, err = d.parseCellsToActivate("cells to be activated", list.List)
			}
		case f1apType.ProtocolIEIDCellsToBeDeactivatedList:
			var list f1apType.CellsToBeDeactivatedList
			if err = d.unmarshal("cells to be deactivated list", ie.Value, &list, ""); err == nil {
				m.CellsToDeactivate, err = d.parseNRCGIItems("cells to be deactivated",
					f1apType.ProtocolIEIDCellsToBeDeactivatedListItem, list.List)
			}
		default:
			err = unknownIE(ie.Id.Value)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := seen.require(f1apType.ProtocolIEIDTransactionID, "TransactionID"); err != nil {
		return nil, err
	}
	return m, nil
}

func BuildGNBCUConfigurationUpdateAcknowledge(m *model.GNBCUConfigurationUpdateAcknowledge) (f1apType.F1APPDU, error) {
	if m == nil {
		return f1apType.F1APPDU{}, errNilMessage
	}
	ies, err := buildTransactionOnly(m.TransactionID)
	if err != nil {
		return f1apType.F1APPDU{}, err
	}
	return wrapPDU(model.MessageTypeGNBCUConfigurationUpdateAcknowledge,
		f1apType.GNBCUConfigurationUpdateAcknowledge{ProtocolIEs: ies})
}

func (d *decodeState) parseGNBCUConfigurationUpdateAcknowledge(b aper.OctetString) (
	*model.GNBCUConfigurationUpdateAcknowledge, error,
) {
	var body f1apType.GNBCUConfigurationUpdateAcknowledge
	if err := d.unmarshal("GNBCUConfigurationUpdateAcknowledge", b, &body, container.BodyParams); err != nil {
		return nil, err
	}
	tid, err := d.parseTransactionOnly(body.ProtocolIEs.List)
	if err != nil {
		return nil, err
	}
	return &model.GNBCUConfigurationUpdateAcknowledge{TransactionID: tid}, nil
}

func BuildGNBCUConfigurationUpdateFailure(m *model.GNBCUConfigurationUpdateFailure) (f1apType.F1APPDU, error) {
	if m == nil {
		return f1apType.F1APPDU{}, errNilMessage
	}
	if err := m.Validate(); err != nil {
		return f1apType.F1APPDU{}, err
	}
	ies, err := buildFailure(&m.Failure)
	if err != nil {
		return f1apType.F1APPDU{}, err
	}
	return wrapPDU(model.MessageTypeGNBCUConfigurationUpdateFailure,
		f1apType.GNBCUConfigurationUpdateFailure{ProtocolIEs: ies})
}

func (d *decodeState) parseGNBCUConfigurationUpdateFailure(b aper.OctetString) (*model.GNBCUConfigurationUpdateFailure, error) {
	var body f1apType.GNBCUConfigurationUpdateFailure
	if err := d.unmarshal("GNBCUConfigurationUpdateFailure", b, &body, container.BodyParams); err != nil {
		return nil, err
	}
	f, err := d.parseFailure(body.ProtocolIEs.List)
	if err != nil {
		return nil, err
	}
	return &model.GNBCUConfigurationUpdateFailure{Failure: f}, nil
}
