package codec

import (
	"github.com/free5gc/aper"
	"github.com/free5gc/f1ap/f1apType"
	"github.com/free5gc/f1ap/internal/container"
	"github.com/free5gc/f1ap/pkg/model"
)

func BuildF1SetupRequest(m *model.F1SetupRequest) (f1apType.F1APPDU, error) {
	if m == nil {
		return f1apType.F1APPDU{}, errNilMessage
	}
	if err := m.Validate(); err != nil {
		return f1apType.F1APPDU{}, err
	}

	var ies container.IEList
	ies.Add(f1apType.ProtocolIEIDTransactionID, f1apType.CriticalityPresentReject,
		f1apType.TransactionID{Value: int64(m.TransactionID)}, "")
	ies.Add(f1apType.ProtocolIEIDGNBDUID, f1apType.CriticalityPresentReject,
		f1apType.GNBDUID{Value: int64(m.GNBDUID)}, "")
	if m.GNBDUName != "" {
		ies.Add(f1apType.ProtocolIEIDGNBDUName, f1apType.CriticalityPresentIgnore,
			f1apType.GNBDUName{Value: m.GNBDUName}, "")
	}
	cells, err := buildServedCells(f1apType.ProtocolIEIDGNBDUServedCellsItem, m.Cells, false)
	if err != nil {
		return f1apType.F1APPDU{}, err
	}
	ies.Add(f1apType.ProtocolIEIDGNBDUServedCellsList, f1apType.CriticalityPresentReject,
		f1apType.GNBDUServedCellsList{List: cells}, "")
	rrc, err := buildRRCVersion(m.RRCVersion)
	if err != nil {
		return f1apType.F1APPDU{}, err
	}
	ies.Add(f1apType.ProtocolIEIDGNBDURRCVersion, f1apType.CriticalityPresentReject, rrc, rrcVersionParams)
	if err := ies.Err(); err != nil {
		return f1apType.F1APPDU{}, invalidf("%v", err)
	}

	return wrapPDU(model.MessageTypeF1SetupRequest, f1apType.F1SetupRequest{ProtocolIEs: ies.Container()})
}

func (d *decodeState) parseF1SetupRequest(b aper.OctetString) (*model.F1SetupRequest, error) {
	var body f1apType.F1SetupRequest
	if err := d.unmarshal("F1SetupRequest", b, &body, container.BodyParams); err != nil {
		return nil, err
	}

	m := new(model.F1SetupRequest)
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
		case f1apType.ProtocolIEIDGNBDUID:
			m.GNBDUID, err = d.parseGNBDUID(ie.Value)
		case f1apType.ProtocolIEIDGNBDUName:
			m.GNBDUName, err = d.parseName("gNB-DU name", ie.Value)
		case f1apType.ProtocolIEIDGNBDUServedCellsList:
			var list f1apType.GNBDUServedCellsList
			if err = d.unmarshal("served cells list", ie.Value, &list, ""); err == nil {
				m.Cells, err = d.parseServedCells("served cells", f1apType.ProtocolIEIDGNBDUServedCellsItem, list.List)
			}
		case f1apType.ProtocolIEIDGNBDURRCVersion:
			m.RRCVersion, err = d.parseRRCVersion("gNB-DU RRC version", ie.Value)
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
	if err := seen.require(f1apType.ProtocolIEIDGNBDUID, "gNB-DU ID"); err != nil {
		return nil, err
	}
	if err := seen.require(f1apType.ProtocolIEIDGNBDUServedCellsList, "gNB-DU Served Cells List"); err != nil {
		return nil, err
	}
	if err := seen.require(f1apType.ProtocolIEIDGNBDURRCVersion, "GNB-DU-RRC-Version"); err != nil {
		return nil, err
	}
	return m, nil
}

func BuildF1SetupResponse(m *model.F1SetupResponse) (f1apType.F1APPDU, error) {
	if m == nil {
		return f1apType.F1APPDU{}, errNilMessage
	}
	if err := m.Validate(); err != nil {
		return f1apType.F1APPDU{}, err
	}

	var ies container.IEList
	ies.Add(f1apType.ProtocolIEIDTransactionID, f1apType.CriticalityPresentReject,
		f1apType.TransactionID{Value: int64(m.TransactionID)}, "")
	if m.GNBCUName != "" {
		ies.Add(f1apType.ProtocolIEIDGNBCUName, f1apType.CriticalityPresentIgnore,
			f1apType.GNBCUName{Value: m.GNBCUName}, "")
	}
	if len(m.CellsToActivate) > 0 {
		cells, err := buildCellsToActivate(m.CellsToActivate)
		if err != nil {
			return f1apType.F1APPDU{}, err
		}
		ies.Add(f1apType.ProtocolIEIDCellsToBeActivatedList, f1apType.CriticalityPresentReject,
			f1apType.CellsToBeActivatedList{List: cells}, "")
	}
	rrc, err := buildRRCVersion(m.RRCVersion)
	if err != nil {
		return f1apType.F1APPDU{}, err
	}
	ies.Add(f1apType.ProtocolIEIDGNBCURRCVersion, f1apType.CriticalityPresentReject, rrc, rrcVersionParams)
	if err := ies.Err(); err != nil {
		return f1apType.F1APPDU{}, invalidf("%v", err)
	}

	return wrapPDU(model.MessageTypeF1SetupResponse, f1apType.F1SetupResponse{ProtocolIEs: ies.Container()})
}

func (d *decodeState) parseF1SetupResponse(b aper.OctetString) (*model.F1SetupResponse, error) {
	var body f1apType.F1SetupResponse
	if err := d.unmarshal("F1SetupResponse", b, &body, container.BodyParams); err != nil {
		return nil, err
	}

	m := new(model.F1SetupResponse)
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
		case f1apType.ProtocolIEIDGNBCUName:
			m.GNBCUName, err = d.parseName("gNB-CU name", ie.Value)
		case f1apType.ProtocolIEIDCellsToBeActivatedList:
			var list f1apType.CellsToBeActivatedList
			if err = d.unmarshal("cells to be activated list", ie.Value, &list, ""); err == nil {
				m.CellsToActivate, err = d.parseCellsToActivate("cells to be activated", list.List)
			}
		case f1apType.ProtocolIEIDGNBCURRCVersion:
			m.RRCVersion, err = d.parseRRCVersion("gNB-CU RRC version", ie.Value)
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
	if err := seen.require(f1apType.ProtocolIEIDGNBCURRCVersion, "GNB-CU-RRC-Version"); err != nil {
		return nil, err
	}
	return m, nil
}

func BuildF1SetupFailure(m *model.F1SetupFailure) (f1apType.F1APPDU, error) {
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
	return wrapPDU(model.MessageTypeF1SetupFailure, f1apType.F1SetupFailure{ProtocolIEs: ies})
}

func (d *decodeState) parseF1SetupFailure(b aper.OctetString) (*model.F1SetupFailure, error) {
	var body f1apType.F1SetupFailure
	if err := d.unmarshal("F1SetupFailure", b, &body, container.BodyParams); err != nil {
		return nil, err
	}
	f, err := d.parseFailure(body.ProtocolIEs.List)
	if err != nil {
		return nil, err
	}
	return &model.F1SetupFailure{Failure: f}, nil
}
