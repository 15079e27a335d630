package model

import (
	"bytes"
	"strings"

	"github.com/free5gc/openapi/models"
)

// Equal reports whether a and b are the same message type with equal
// content. Two nil messages are equal.
func Equal(a, b Message) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.MessageType() != b.MessageType() {
		return false
	}
	switch x := a.(type) {
	case *F1SetupRequest:
		return x.Equal(b.(*F1SetupRequest))
	case *F1SetupResponse:
		return x.Equal(b.(*F1SetupResponse))
	case *F1SetupFailure:
		return x.Equal(b.(*F1SetupFailure))
	case *GNBDUConfigurationUpdate:
		return x.Equal(b.(*GNBDUConfigurationUpdate))
	case *GNBDUConfigurationUpdateAcknowledge:
		return x.Equal(b.(*GNBDUConfigurationUpdateAcknowledge))
	case *GNBDUConfigurationUpdateFailure:
		return x.Equal(b.(*GNBDUConfigurationUpdateFailure))
	case *GNBCUConfigurationUpdate:
		return x.Equal(b.(*GNBCUConfigurationUpdate))
	case *GNBCUConfigurationUpdateAcknowledge:
		return x.Equal(b.(*GNBCUConfigurationUpdateAcknowledge))
	case *GNBCUConfigurationUpdateFailure:
		return x.Equal(b.(*GNBCUConfigurationUpdateFailure))
	}
	return false
}

// bothNil reports (done, equal) for a pair where at least one side may be nil.
func bothNil(aNil, bNil bool) (bool, bool) {
	if aNil || bNil {
		return true, aNil && bNil
	}
	return false, false
}

func equalPtr[T comparable](a, b *T) bool {
	if done, eq := bothNil(a == nil, b == nil); done {
		return eq
	}
	return *a == *b
}

func equalPlmn(a, b models.PlmnId) bool {
	return a.Mcc == b.Mcc && a.Mnc == b.Mnc
}

// SD is hex, so the comparison ignores case.
func equalSnssai(a, b models.Snssai) bool {
	return a.Sst == b.Sst && strings.EqualFold(a.Sd, b.Sd)
}

func (c NRCGI) Equal(o NRCGI) bool {
	return equalPlmn(c.PLMN, o.PLMN) && c.NRCellID == o.NRCellID
}

func equalNRCGIList(a, b []NRCGI) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (i *ServedCellInfo) Equal(o *ServedCellInfo) bool {
	if done, eq := bothNil(i == nil, o == nil); done {
		return eq
	}
	if !i.NRCGI.Equal(o.NRCGI) || i.NRPCI != o.NRPCI || !equalPtr(i.TAC, o.TAC) || i.Mode != o.Mode {
		return false
	}
	switch i.Mode {
	case DuplexModeFDD:
		if !equalPtr(i.FDD, o.FDD) {
			return false
		}
	case DuplexModeTDD:
		if !equalPtr(i.TDD, o.TDD) {
			return false
		}
	}
	if !bytes.Equal(i.MeasurementTimingConfig, o.MeasurementTimingConfig) || len(i.NSSAI) != len(o.NSSAI) {
		return false
	}
	for k := range i.NSSAI {
		if !equalSnssai(i.NSSAI[k], o.NSSAI[k]) {
			return false
		}
	}
	return true
}

func (s *SystemInfo) Equal(o *SystemInfo) bool {
	if done, eq := bothNil(s == nil, o == nil); done {
		return eq
	}
	return bytes.Equal(s.MIB, o.MIB) && bytes.Equal(s.SIB1, o.SIB1)
}

func (c *ServedCell) Equal(o *ServedCell) bool {
	if done, eq := bothNil(c == nil, o == nil); done {
		return eq
	}
	return c.Info.Equal(&o.Info) && c.SysInfo.Equal(o.SysInfo)
}

func equalServedCells(a, b []ServedCell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(&b[i]) {
			return false
		}
	}
	return true
}

func (c *CellToModify) Equal(o *CellToModify) bool {
	if done, eq := bothNil(c == nil, o == nil); done {
		return eq
	}
	return c.OldNRCGI.Equal(o.OldNRCGI) && c.Info.Equal(&o.Info) && c.SysInfo.Equal(o.SysInfo)
}

func (s SIMessage) Equal(o SIMessage) bool {
	return s.Type == o.Type && s.ValueTag == o.ValueTag && bytes.Equal(s.Container, o.Container)
}

func (c *CellToActivate) Equal(o *CellToActivate) bool {
	if done, eq := bothNil(c == nil, o == nil); done {
		return eq
	}
	if !c.NRCGI.Equal(o.NRCGI) || !equalPtr(c.NRPCI, o.NRPCI) || len(c.SIMessages) != len(o.SIMessages) {
		return false
	}
	for i := range c.SIMessages {
		if !c.SIMessages[i].Equal(o.SIMessages[i]) {
			return false
		}
	}
	return true
}

func equalCellsToActivate(a, b []CellToActivate) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(&b[i]) {
			return false
		}
	}
	return true
}

func (d *CriticalityDiagnostics) Equal(o *CriticalityDiagnostics) bool {
	if done, eq := bothNil(d == nil, o == nil); done {
		return eq
	}
	if !equalPtr(d.ProcedureCode, o.ProcedureCode) || !equalPtr(d.TransactionID, o.TransactionID) {
		return false
	}
	if !equalPtr(d.TriggeringMessage, o.TriggeringMessage) {
		return false
	}
	if !equalPtr(d.ProcedureCriticality, o.ProcedureCriticality) {
		return false
	}
	if len(d.IEs) != len(o.IEs) {
		return false
	}
	for i := range d.IEs {
		if d.IEs[i] != o.IEs[i] {
			return false
		}
	}
	return true
}

func (f *Failure) equal(o *Failure) bool {
	if f.TransactionID != o.TransactionID || f.Cause != o.Cause {
		return false
	}
	if !equalPtr(f.TimeToWait, o.TimeToWait) {
		return false
	}
	return f.CriticalityDiagnostics.Equal(o.CriticalityDiagnostics)
}

func (m *F1SetupRequest) Equal(o *F1SetupRequest) bool {
	if done, eq := bothNil(m == nil, o == nil); done {
		return eq
	}
	return m.TransactionID == o.TransactionID &&
		m.GNBDUID == o.GNBDUID &&
		m.GNBDUName == o.GNBDUName &&
		m.RRCVersion == o.RRCVersion &&
		equalServedCells(m.Cells, o.Cells)
}

func (m *F1SetupResponse) Equal(o *F1SetupResponse) bool {
	if done, eq := bothNil(m == nil, o == nil); done {
		return eq
	}
	return m.TransactionID == o.TransactionID &&
		m.GNBCUName == o.GNBCUName &&
		m.RRCVersion == o.RRCVersion &&
		equalCellsToActivate(m.CellsToActivate, o.CellsToActivate)
}

func (m *F1SetupFailure) Equal(o *F1SetupFailure) bool {
	if done, eq := bothNil(m == nil, o == nil); done {
		return eq
	}
	return m.Failure.equal(&o.Failure)
}

func (m *GNBDUConfigurationUpdate) Equal(o *GNBDUConfigurationUpdate) bool {
	if done, eq := bothNil(m == nil, o == nil); done {
		return eq
	}
	if m.TransactionID != o.TransactionID || !equalPtr(m.GNBDUID, o.GNBDUID) {
		return false
	}
	if !equalServedCells(m.CellsToAdd, o.CellsToAdd) || !equalNRCGIList(m.CellsToDelete, o.CellsToDelete) {
		return false
	}
	if len(m.CellsToModify) != len(o.CellsToModify) {
		return false
	}
	for i := range m.CellsToModify {
		if !m.CellsToModify[i].Equal(&o.CellsToModify[i]) {
			return false
		}
	}
	return true
}

func (m *GNBDUConfigurationUpdateAcknowledge) Equal(o *GNBDUConfigurationUpdateAcknowledge) bool {
	if done, eq := bothNil(m == nil, o == nil); done {
		return eq
	}
	return m.TransactionID == o.TransactionID
}

func (m *GNBDUConfigurationUpdateFailure) Equal(o *GNBDUConfigurationUpdateFailure) bool {
	if done, eq := bothNil(m == nil, o == nil); done {
		return eq
	}
	return m.Failure.equal(&o.Failure)
}

func (m *GNBCUConfigurationUpdate) Equal(o *GNBCUConfigurationUpdate) bool {
	if done, eq := bothNil(m == nil, o == nil); done {
		return eq
	}
	return m.TransactionID == o.TransactionID &&
		equalCellsToActivate(m.CellsToActivate, o.CellsToActivate) &&
		equalNRCGIList(m.CellsToDeactivate, o.CellsToDeactivate)
}

func (m *GNBCUConfigurationUpdateAcknowledge) Equal(o *GNBCUConfigurationUpdateAcknowledge) bool {
	if done, eq := bothNil(m == nil, o == nil); done {
		return eq
	}
	return m.TransactionID == o.TransactionID
}

func (m *GNBCUConfigurationUpdateFailure) Equal(o *GNBCUConfigurationUpdateFailure) bool {
	if done, eq := bothNil(m == nil, o == nil); done {
		return eq
	}
	return m.Failure.equal(&o.Failure)
}
