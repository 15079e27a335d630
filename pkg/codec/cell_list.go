package codec

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/free5gc/aper"
	"github.com/free5gc/f1ap/f1apType"
	"github.com/free5gc/f1ap/internal/container"
	"github.com/free5gc/f1ap/pkg/model"
)

// itemParams is used for every list item: they are all extensible
// SEQUENCEs.
const itemParams = "valueExt"

// singleContainers encodes n items, each in its own single container.
func singleContainers(itemID int64, criticality aper.Enumerated, n int,
	item func(i int) (interface{}, error),
) ([]f1apType.ProtocolIESingleContainer, error) {
	list := make([]f1apType.ProtocolIESingleContainer, 0, n)
	for i := 0; i < n; i++ {
		v, err := item(i)
		if err != nil {
			return nil, errors.WithMessagef(err, "item %d", i)
		}
		b, err := container.Marshal(v, itemParams)
		if err != nil {
			return nil, invalidf("item %d: %v", i, err)
		}
		list = append(list, container.NewField(itemID, criticality, b))
	}
	return list, nil
}

// singleItems checks the item ids of a decoded list and hands each value to
// decode. A list IE without items is malformed.
func (d *decodeState) singleItems(where string, itemID int64, list []f1apType.ProtocolIESingleContainer,
	decode func(i int, where string, b aper.OctetString) error,
) error {
	if len(list) == 0 {
		return errors.Wrapf(ErrMalformed, "%s: empty list", where)
	}
	if len(list) > model.MaxServedCells {
		return errors.Wrapf(ErrMalformed, "%s: %d items", where, len(list))
	}
	for i := range list {
		ie := &list[i]
		if ie.Id.Value != itemID {
			return errors.Wrapf(ErrUnknownIE, "%s item %d: IE %d, want %d", where, i, ie.Id.Value, itemID)
		}
		if err := decode(i, fmt.Sprintf("%s[%d]", where, i), ie.Value); err != nil {
			return err
		}
	}
	return nil
}

func buildServedCellsItem(c *model.ServedCell) (f1apType.GNBDUServedCellsItem, error) {
	var item f1apType.GNBDUServedCellsItem
	sci, err := buildServedCellInformation(&c.Info)
	if err != nil {
		return item, err
	}
	item.ServedCellInformation = sci
	item.GNBDUSystemInformation = buildDUSystemInformation(c.SysInfo)
	return item, nil
}

func (d *decodeState) parseServedCellsItem(where string, item *f1apType.GNBDUServedCellsItem) (model.ServedCell, error) {
	var c model.ServedCell
	var err error
	if c.Info, err = d.parseServedCellInformation(where, &item.ServedCellInformation); err != nil {
		return c, err
	}
	if c.SysInfo, err = d.parseDUSystemInformation(where, item.GNBDUSystemInformation); err != nil {
		return c, err
	}
	if err = d.extensions(where, item.IEExtensions, nil); err != nil {
		return c, err
	}
	return c, nil
}

// buildServedCells serves both the served cells list of F1 Setup Request and
// the cells to add of gNB-DU Configuration Update; their items share one
// layout.
func buildServedCells(itemID int64, cells []model.ServedCell, toAdd bool) ([]f1apType.ProtocolIESingleContainer, error) {
	return singleContainers(itemID, f1apType.CriticalityPresentReject, len(cells), func(i int) (interface{}, error) {
		item, err := buildServedCellsItem(&cells[i])
		if err != nil {
			return nil, err
		}
		if toAdd {
			return f1apType.ServedCellsToAddItem(item), nil
		}
		return item, nil
	})
}

func (d *decodeState) parseServedCells(where string, itemID int64, list []f1apType.ProtocolIESingleContainer) ([]model.ServedCell, error) {
	cells := make([]model.ServedCell, 0, len(list))
	err := d.singleItems(where, itemID, list, func(_ int, where string, b aper.OctetString) error {
		var item f1apType.GNBDUServedCellsItem
		if err := d.unmarshal(where, b, &item, itemParams); err != nil {
			return err
		}
		c, err := d.parseServedCellsItem(where, &item)
		if err != nil {
			return err
		}
		cells = append(cells, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cells, nil
}

func buildCellsToModify(cells []model.CellToModify) ([]f1apType.ProtocolIESingleContainer, error) {
	return singleContainers(f1apType.ProtocolIEIDServedCellsToModifyItem, f1apType.CriticalityPresentReject, len(cells),
		func(i int) (interface{}, error) {
			var item f1apType.ServedCellsToModifyItem
			oldNRCGI, err := buildNRCGI(cells[i].OldNRCGI)
			if err != nil {
				return nil, err
			}
			sci, err := buildServedCellInformation(&cells[i].Info)
			if err != nil {
				return nil, err
			}
			item.OldNRCGI = oldNRCGI
			item.ServedCellInformation = sci
			item.GNBDUSystemInformation = buildDUSystemInformation(cells[i].SysInfo)
			return item, nil
		})
}

func (d *decodeState) parseCellsToModify(where string, list []f1apType.ProtocolIESingleContainer) ([]model.CellToModify, error) {
	cells := make([]model.CellToModify, 0, len(list))
	err := d.singleItems(where, f1apType.ProtocolIEIDServedCellsToModifyItem, list,
		func(_ int, where string, b aper.OctetString) error {
			var item f1apType.ServedCellsToModifyItem
			if err := d.unmarshal(where, b, &item, itemParams); err != nil {
				return err
			}
			var c model.CellToModify
			var err error
			if c.OldNRCGI, err = d.parseNRCGI(where+" old", &item.OldNRCGI); err != nil {
				return err
			}
			if c.Info, err = d.parseServedCellInformation(where, &item.ServedCellInformation); err != nil {
				return err
			}
			if c.SysInfo, err = d.parseDUSystemInformation(where, item.GNBDUSystemInformation); err != nil {
				return err
			}
			if err = d.extensions(where, item.IEExtensions, nil); err != nil {
				return err
			}
			cells = append(cells, c)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return cells, nil
}

// buildNRCGIItems covers the two lists whose items carry a single NR CGI:
// cells to delete and cells to be deactivated.
func buildNRCGIItems(itemID int64, cells []model.NRCGI) ([]f1apType.ProtocolIESingleContainer, error) {
	return singleContainers(itemID, f1apType.CriticalityPresentReject, len(cells), func(i int) (interface{}, error) {
		nrcgi, err := buildNRCGI(cells[i])
		if err != nil {
			return nil, err
		}
		if itemID == f1apType.ProtocolIEIDServedCellsToDeleteItem {
			return f1apType.ServedCellsToDeleteItem{OldNRCGI: nrcgi}, nil
		}
		return f1apType.CellsToBeDeactivatedListItem{NRCGI: nrcgi}, nil
	})
}

func (d *decodeState) parseNRCGIItems(where string, itemID int64, list []f1apType.ProtocolIESingleContainer) ([]model.NRCGI, error) {
	cells := make([]model.NRCGI, 0, len(list))
	err := d.singleItems(where, itemID, list, func(_ int, where string, b aper.OctetString) error {
		// Both item types are { NRCGI, iE-Extensions, ... }.
		var item f1apType.CellsToBeDeactivatedListItem
		if err := d.unmarshal(where, b, &item, itemParams); err != nil {
			return err
		}
		c, err := d.parseNRCGI(where, &item.NRCGI)
		if err != nil {
			return err
		}
		if err := d.extensions(where, item.IEExtensions, nil); err != nil {
			return err
		}
		cells = append(cells, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cells, nil
}

func buildCUSystemInformation(msgs []model.SIMessage) f1apType.GNBCUSystemInformation {
	var si f1apType.GNBCUSystemInformation
	for _, m := range msgs {
		si.SibtypetobeupdatedList.List = append(si.SibtypetobeupdatedList.List, f1apType.SibtypetobeupdatedListItem{
			SIBtype:    int64(m.Type),
			SIBmessage: cloneBytes(m.Container),
			ValueTag:   int64(m.ValueTag),
		})
	}
	return si
}

func (d *decodeState) parseCUSystemInformation(where string, b aper.OctetString) ([]model.SIMessage, error) {
	var si f1apType.GNBCUSystemInformation
	if err := d.unmarshal(where, b, &si, "valueExt"); err != nil {
		return nil, err
	}
	msgs := make([]model.SIMessage, 0, len(si.SibtypetobeupdatedList.List))
	for _, item := range si.SibtypetobeupdatedList.List {
		if item.SIBtype < model.MinSIBType || item.SIBtype > model.MaxSIBType {
			return nil, errors.Wrapf(ErrUnsupportedValue, "%s: sib type %d", where, item.SIBtype)
		}
		if item.ValueTag < 0 || item.ValueTag > model.MaxValueTag {
			return nil, errors.Wrapf(ErrUnsupportedValue, "%s: value tag %d", where, item.ValueTag)
		}
		if len(item.SIBmessage) == 0 {
			return nil, errors.Wrapf(ErrMalformed, "%s: empty sib%d", where, item.SIBtype)
		}
		if err := d.extensions(where, item.IEExtensions, nil); err != nil {
			return nil, err
		}
		msgs = append(msgs, model.SIMessage{
			Type:      uint8(item.SIBtype),
			Container: cloneBytes(item.SIBmessage),
			ValueTag:  uint8(item.ValueTag),
		})
	}
	if err := d.extensions(where, si.IEExtensions, nil); err != nil {
		return nil, err
	}
	return msgs, nil
}

func buildCellsToActivate(cells []model.CellToActivate) ([]f1apType.ProtocolIESingleContainer, error) {
	return singleContainers(f1apType.ProtocolIEIDCellsToBeActivatedListItem, f1apType.CriticalityPresentReject, len(cells),
		func(i int) (interface{}, error) {
			c := &cells[i]
			var item f1apType.CellsToBeActivatedListItem
			nrcgi, err := buildNRCGI(c.NRCGI)
			if err != nil {
				return nil, err
			}
			item.NRCGI = nrcgi
			if c.NRPCI != nil {
				item.NRPCI = &f1apType.NRPCI{Value: int64(*c.NRPCI)}
			}
			if len(c.SIMessages) > 0 {
				// All SI messages of a cell go into one system information
				// extension.
				var ext container.ExtList
				ext.Add(f1apType.ProtocolIEIDGNBCUSystemInformation, f1apType.CriticalityPresentReject,
					buildCUSystemInformation(c.SIMessages), "valueExt")
				if err := ext.Err(); err != nil {
					return nil, invalidf("%v", err)
				}
				item.IEExtensions = ext.Container()
			}
			return item, nil
		})
}

func (d *decodeState) parseCellsToActivate(where string, list []f1apType.ProtocolIESingleContainer) ([]model.CellToActivate, error) {
	cells := make([]model.CellToActivate, 0, len(list))
	err := d.singleItems(where, f1apType.ProtocolIEIDCellsToBeActivatedListItem, list,
		func(_ int, where string, b aper.OctetString) error {
			var item f1apType.CellsToBeActivatedListItem
			if err := d.unmarshal(where, b, &item, itemParams); err != nil {
				return err
			}
			var c model.CellToActivate
			var err error
			if c.NRCGI, err = d.parseNRCGI(where, &item.NRCGI); err != nil {
				return err
			}
			if item.NRPCI != nil {
				if item.NRPCI.Value < 0 || item.NRPCI.Value > model.MaxNRPCI {
					return errors.Wrapf(ErrUnsupportedValue, "%s: nrPci %d", where, item.NRPCI.Value)
				}
				pci := uint16(item.NRPCI.Value)
				c.NRPCI = &pci
			}
			err = d.extensions(where, item.IEExtensions, func(ext *f1apType.ProtocolExtensionField) (bool, error) {
				switch ext.Id.Value {
				case f1apType.ProtocolIEIDGNBCUSystemInformation:
					msgs, err := d.parseCUSystemInformation(where+" system information", ext.ExtensionValue)
					if err != nil {
						return true, err
					}
					c.SIMessages = append(c.SIMessages, msgs...)
					return true, nil
				case f1apType.ProtocolIEIDAvailablePLMNList:
					d.warn(WarnAvailablePLMNList, "%s: available PLMN list dropped", where)
					return true, nil
				}
				return false, nil
			})
			if err != nil {
				return err
			}
			if len(c.SIMessages) > model.MaxSIMessages {
				return errors.Wrapf(ErrMalformed, "%s: %d SI messages", where, len(c.SIMessages))
			}
			cells = append(cells, c)
			return nil
		})
	if err != nil {
		return nil, err
	}
	return cells, nil
}
