package model

import (
	"github.com/mohae/deepcopy"
)

// Copy returns an independent deep copy of m. Empty optional lists and an
// empty system information block come back as nil.
func Copy(m Message) Message {
	if m == nil {
		return nil
	}
	c, ok := deepcopy.Copy(m).(Message)
	if !ok {
		return nil
	}
	normalize(c)
	return c
}

func (m *F1SetupRequest) Copy() *F1SetupRequest {
	if m == nil {
		return nil
	}
	return Copy(m).(*F1SetupRequest)
}

func (m *F1SetupResponse) Copy() *F1SetupResponse {
	if m == nil {
		return nil
	}
	return Copy(m).(*F1SetupResponse)
}

func (m *F1SetupFailure) Copy() *F1SetupFailure {
	if m == nil {
		return nil
	}
	return Copy(m).(*F1SetupFailure)
}

func (m *GNBDUConfigurationUpdate) Copy() *GNBDUConfigurationUpdate {
	if m == nil {
		return nil
	}
	return Copy(m).(*GNBDUConfigurationUpdate)
}

func (m *GNBDUConfigurationUpdateAcknowledge) Copy() *GNBDUConfigurationUpdateAcknowledge {
	if m == nil {
		return nil
	}
	return Copy(m).(*GNBDUConfigurationUpdateAcknowledge)
}

func (m *GNBDUConfigurationUpdateFailure) Copy() *GNBDUConfigurationUpdateFailure {
	if m == nil {
		return nil
	}
	return Copy(m).(*GNBDUConfigurationUpdateFailure)
}

func (m *GNBCUConfigurationUpdate) Copy() *GNBCUConfigurationUpdate {
	if m == nil {
		return nil
	}
	return Copy(m).(*GNBCUConfigurationUpdate)
}

func (m *GNBCUConfigurationUpdateAcknowledge) Copy() *GNBCUConfigurationUpdateAcknowledge {
	if m == nil {
		return nil
	}
	return Copy(m).(*GNBCUConfigurationUpdateAcknowledge)
}

func (m *GNBCUConfigurationUpdateFailure) Copy() *GNBCUConfigurationUpdateFailure {
	if m == nil {
		return nil
	}
	return Copy(m).(*GNBCUConfigurationUpdateFailure)
}

func normalize(m Message) {
	switch x := m.(type) {
	case *F1SetupRequest:
		x.Cells = normalizeServedCells(x.Cells)
	case *F1SetupResponse:
		x.CellsToActivate = normalizeCellsToActivate(x.CellsToActivate)
	case *F1SetupFailure:
		x.Failure.normalize()
	case *GNBDUConfigurationUpdate:
		x.CellsToAdd = normalizeServedCells(x.CellsToAdd)
		if len(x.CellsToModify) == 0 {
			x.CellsToModify = nil
		}
		for i := range x.CellsToModify {
			x.CellsToModify[i].Info.normalize()
			x.CellsToModify[i].SysInfo = x.CellsToModify[i].SysInfo.normalize()
		}
		if len(x.CellsToDelete) == 0 {
			x.CellsToDelete = nil
		}
	case *GNBDUConfigurationUpdateFailure:
		x.Failure.normalize()
	case *GNBCUConfigurationUpdate:
		x.CellsToActivate = normalizeCellsToActivate(x.CellsToActivate)
		if len(x.CellsToDeactivate) == 0 {
			x.CellsToDeactivate = nil
		}
	case *GNBCUConfigurationUpdateFailure:
		x.Failure.normalize()
	}
}

func (i *ServedCellInfo) normalize() {
	if len(i.NSSAI) == 0 {
		i.NSSAI = nil
	}
}

func (s *SystemInfo) normalize() *SystemInfo {
	if s == nil || (len(s.MIB) == 0 && len(s.SIB1) == 0) {
		return nil
	}
	return s
}

func normalizeServedCells(cells []ServedCell) []ServedCell {
	if len(cells) == 0 {
		return nil
	}
	for i := range cells {
		cells[i].Info.normalize()
		cells[i].SysInfo = cells[i].SysInfo.normalize()
	}
	return cells
}

func normalizeCellsToActivate(cells []CellToActivate) []CellToActivate {
	if len(cells) == 0 {
		return nil
	}
	for i := range cells {
		if len(cells[i].SIMessages) == 0 {
			cells[i].SIMessages = nil
		}
	}
	return cells
}

func (f *Failure) normalize() {
	if f.CriticalityDiagnostics != nil && len(f.CriticalityDiagnostics.IEs) == 0 {
		f.CriticalityDiagnostics.IEs = nil
	}
}
