package codec

import (
	"github.com/free5gc/aper"
	"github.com/free5gc/f1ap/f1apType"
	"github.com/free5gc/f1ap/internal/container"
	"github.com/free5gc/f1ap/pkg/model"
)

// BuildGNBDUConfigurationUpdate encodes only the non-empty cell lists.
func BuildGNBDUConfigurationUpdate(m *model.GNBDUConfigurationUpdate) (f1apType.F1APPDU, error) {
	if m == nil {
		return f1apType.F1APPDU{}, errNilMessage
	}
	if err := m.Validate(); err != nil {
		return f1apType.F1APPDU{}, err
	}

	var ies container.IEList
	ies.Add(f1apType.ProtocolIEIDTransactionID, f1apType.CriticalityPresentReject,
		f1apType.TransactionID{Value: int64(m.TransactionID)}, "")
	if len(m.CellsToAdd) > 0 {
		cells, err := buildServedCells(f1apType.ProtocolIEIDServedCellsToAddItem, m.CellsToAdd, true)
		if err != nil {
			return f1apType.F1APPDU{}, err
		}
		ies.Add(f1apType.ProtocolIEIDServedCellsToAddList, f1apType.CriticalityPresentReject,
			f1apType.ServedCellsToAddList{List: cells}, "")
	}
	if len(m.CellsToModify) > 0 {
		cells, err := buildCellsToModify(m.CellsToModify)
		if err != nil {
			return f1apType.F1APPDU{}, err
		}
		ies.Add(f1apType.ProtocolIEIDServedCellsToModifyList, f1apType.CriticalityPresentReject,
			f1apType.ServedCellsToModifyList{List: cells}, "")
	}
	if len(m.CellsToDelete) > 0 {
		cells, err := buildNRCGIItems(f1apType.ProtocolIEIDServedCellsToDeleteItem, m.CellsToDelete)
		if err != nil {
			return f1apType.F1APPDU{}, err
		}
		ies.Add(f1apType.ProtocolIEIDServedCellsToDeleteList, f1apType.CriticalityPresentReject,
			f1apType.ServedCellsToDeleteList{List: cells}, "")
	}
	if m.GNBDUID != nil {
		ies.Add(f1apType.ProtocolIEIDGNBDUID, f1apType.CriticalityPresentReject,
			f1apType.GNBDUID{Value: int64(*m.GNBDUID)}, "")
	}
	if err := ies.Err(); err != nil {
		return f1apType.F1APPDU{}, invalidf("%v", err)
	}

	return wrapPDU(model.MessageTypeGNBDUConfigurationUpdate,
		f1apType.GNBDUConfigurationUpdate{ProtocolIEs: ies.Container()})
}

func (d *decodeState) parseGNBDUConfigurationUpdate(b aper.OctetString) (*model.GNBDUConfigurationUpdate, error) {
	var body f1apType.GNBDUConfigurationUpdate
	if err := d.unmarshal("GNBDUConfigurationUpdate", b, &body, container.BodyParams); err != nil {
		return nil, err
	}

	m := new(model.GNBDUConfigurationUpdate)
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
		case f1apType.ProtocolIEIDServedCellsToAddList:
			var list f1apType.ServedCellsToAddList
			if err = d.unmarshal("served cells to add list", ie.Value, &list, ""); err == nil {
				m.CellsToAdd, err = d.parseServedCells("served cells to add",
					f1apType.ProtocolIEIDServedCellsToAddItem, list.List)
			}
		case f1apType.ProtocolIEIDServedCellsToModifyList:
			var list f1apType.ServedCellsToModifyList
			if err = d.unmarshal("served cells to modify list", ie.Value, &list, ""); err == nil {
				m.CellsToModify, err = d.parseCellsToModify("served cells to modify", list.List)
			}
		case f1apType.ProtocolIEIDServedCellsToDeleteList:
			var list f1apType.ServedCellsToDeleteList
			if err = d.unmarshal("served cells to delete list", ie.Value, &list, ""); err == nil {
				m.CellsToDelete, err = d.parseNRCGIItems("served cells to delete",
					f1apType.ProtocolIEIDServedCellsToDeleteItem, list.List)
			}
		case f1apType.ProtocolIEIDGNBDUID:
			var id uint64
			if id, err = d.parseGNBDUID(ie.Value); err == nil {
				m.GNBDUID = &id
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

func BuildGNBDUConfigurationUpdateAcknowledge(m *model.GNBDUConfigurationUpdateAcknowledge) (f1apType.F1APPDU, error) {
	if m == nil {
		return f1apType.F1APPDU{}, errNilMessage
	}
	ies, err := buildTransactionOnly(m.TransactionID)
	if err != nil {
		return f1apType.F1APPDU{}, err
	}
	return wrapPDU(model.MessageTypeGNBDUConfigurationUpdateAcknowledge,
		f1apType.GNBDUConfigurationUpdateAcknowledge{ProtocolIEs: ies})
}

func (d *decodeState) parseGNBDUConfigurationUpdateAcknowledge(b aper.OctetString) (
	*model.GNBDUConfigurationUpdateAcknowledge, error,
) {
	var body f1apType.GNBDUConfigurationUpdateAcknowledge
	if err := d.unmarshal("GNBDUConfigurationUpdateAcknowledge", b, &body, container.BodyParams); err != nil {
		return nil, err
	}
	tid, err := d.parseTransactionOnly(body.ProtocolIEs.List)
	if err != nil {
		return nil, err
	}
	return &model.GNBDUConfigurationUpdateAcknowledge{TransactionID: tid}, nil
}

func BuildGNBDUConfigurationUpdateFailure(m *model.GNBDUConfigurationUpdateFailure) (f1apType.F1APPDU, error) {
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
	return wrapPDU(model.MessageTypeGNBDUConfigurationUpdateFailure,
		f1apType.GNBDUConfigurationUpdateFailure{ProtocolIEs: ies})
}

func (d *decodeState) parseGNBDUConfigurationUpdateFailure(b aper.OctetString) (*model.GNBDUConfigurationUpdateFailure, error) {
	var body f1apType.GNBDUConfigurationUpdateFailure
	if err := d.unmarshal("GNBDUConfigurationUpdateFailure", b, &body, container.BodyParams); err != nil {
		return nil, err
	}
	f, err := d.parseFailure(body.ProtocolIEs.List)
	if err != nil {
		return nil, err
	}
	return &model.GNBDUConfigurationUpdateFailure{Failure: f}, nil
}

func buildTransactionOnly(tid uint8) (f1apType.ProtocolIEContainer, error) {
	var ies container.IEList
	ies.Add(f1apType.ProtocolIEIDTransactionID, f1apType.CriticalityPresentReject,
		f1apType.TransactionID{Value: int64(tid)}, "")
	if err := ies.Err(); err != nil {
		return f1apType.ProtocolIEContainer{}, invalidf("%v", err)
	}
	return ies.Container(), nil
}

// parseTransactionOnly reads the IE list of an acknowledge.
func (d *decodeState) parseTransactionOnly(ies []f1apType.ProtocolIEField) (uint8, error) {
	var tid uint8
	seen := seenIEs{}
	for i := range ies {
		ie := &ies[i]
		if err := seen.mark(ie.Id.Value); err != nil {
			return 0, err
		}
		if ie.Id.Value != f1apType.ProtocolIEIDTransactionID {
			return 0, unknownIE(ie.Id.Value)
		}
		var err error
		if tid, err = d.parseTransactionID(ie.Value); err != nil {
			return 0, err
		}
	}
	if err := seen.require(f1apType.ProtocolIEIDTransactionID, "TransactionID"); err != nil {
		return 0, err
	}
	return tid, nil
}
