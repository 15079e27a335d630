package model

import (
	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"

	"github.com/free5gc/f1ap/f1apConvert"
)

// ErrInvalidMessage is wrapped by every Validate failure.
var ErrInvalidMessage = errors.New("invalid message")

// printableString is the X.680 PrintableString alphabet.
const printableString = `^[A-Za-z0-9 '()+,\-./:=?]*$`

func invalid(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidMessage, format, args...)
}

func wrapInvalid(err error, field string) error {
	return errors.Wrapf(ErrInvalidMessage, "%s: %v", field, err)
}

func validateName(field, name string) error {
	if name == "" {
		return nil
	}
	if len(name) > MaxNameLength {
		return invalid("%s longer than %d", field, MaxNameLength)
	}
	if !govalidator.Matches(name, printableString) {
		return invalid("%s %q is not a PrintableString", field, name)
	}
	return nil
}

func (c *NRCGI) Validate() error {
	if err := f1apConvert.CheckPlmnId(c.PLMN); err != nil {
		return wrapInvalid(err, "nrCgi")
	}
	if c.NRCellID > MaxNRCellIdentity {
		return invalid("nrCellId %d exceeds 36 bits", c.NRCellID)
	}
	return nil
}

func (f *FrequencyInfo) Validate() error {
	if f.ARFCN > MaxNRARFCN {
		return invalid("arfcn %d out of range", f.ARFCN)
	}
	if f.Band < MinFrequencyBand || f.Band > MaxFrequencyBand {
		return invalid("band %d out of range", f.Band)
	}
	return nil
}

func (b *TxBandwidth) Validate() error {
	if b.SCS > SCS120kHz {
		return invalid("scs %d out of range", b.SCS)
	}
	if _, err := f1apConvert.NRBToF1ap(b.NRB); err != nil {
		return wrapInvalid(err, "transmission bandwidth")
	}
	return nil
}

func (i *ServedCellInfo) Validate() error {
	if err := i.NRCGI.Validate(); err != nil {
		return err
	}
	if i.NRPCI > MaxNRPCI {
		return invalid("nrPci %d out of range", i.NRPCI)
	}
	if i.TAC != nil && *i.TAC > MaxTrackingAreaCode {
		return invalid("tac %d exceeds 24 bits", *i.TAC)
	}
	switch i.Mode {
	case DuplexModeFDD:
		if i.FDD == nil || i.TDD != nil {
			return invalid("FDD mode requires exactly the FDD info")
		}
		for _, f := range []FrequencyInfo{i.FDD.ULFreqInfo, i.FDD.DLFreqInfo} {
			if err := f.Validate(); err != nil {
				return err
			}
		}
		for _, b := range []TxBandwidth{i.FDD.ULTxBW, i.FDD.DLTxBW} {
			if err := b.Validate(); err != nil {
				return err
			}
		}
	case DuplexModeTDD:
		if i.TDD == nil || i.FDD != nil {
			return invalid("TDD mode requires exactly the TDD info")
		}
		if err := i.TDD.FreqInfo.Validate(); err != nil {
			return err
		}
		if err := i.TDD.TxBW.Validate(); err != nil {
			return err
		}
	default:
		return invalid("duplex mode %s", i.Mode)
	}
	if len(i.MeasurementTimingConfig) == 0 {
		return invalid("empty measurementTimingConfiguration")
	}
	if len(i.NSSAI) > MaxSlicesPerPLMN {
		return invalid("%d slices, at most %d", len(i.NSSAI), MaxSlicesPerPLMN)
	}
	for _, s := range i.NSSAI {
		if err := f1apConvert.CheckSNssai(s); err != nil {
			return wrapInvalid(err, "nssai")
		}
	}
	return nil
}

func (s *SystemInfo) Validate() error {
	if s == nil {
		return nil
	}
	if len(s.MIB) == 0 || len(s.SIB1) == 0 {
		return invalid("system information needs both MIB and SIB1")
	}
	return nil
}

func (c *ServedCell) Validate() error {
	if err := c.Info.Validate(); err != nil {
		return err
	}
	return c.SysInfo.Validate()
}

func (c *CellToModify) Validate() error {
	if err := c.OldNRCGI.Validate(); err != nil {
		return err
	}
	if err := c.Info.Validate(); err != nil {
		return err
	}
	return c.SysInfo.Validate()
}

func (c *CellToActivate) Validate() error {
	if err := c.NRCGI.Validate(); err != nil {
		return err
	}
	if c.NRPCI != nil && *c.NRPCI > MaxNRPCI {
		return invalid("nrPci %d out of range", *c.NRPCI)
	}
	if len(c.SIMessages) > MaxSIMessages {
		return invalid("%d SI messages, at most %d", len(c.SIMessages), MaxSIMessages)
	}
	for _, si := range c.SIMessages {
		if si.Type < MinSIBType || si.Type > MaxSIBType {
			return invalid("sib type %d out of range", si.Type)
		}
		if si.ValueTag > MaxValueTag {
			return invalid("value tag %d out of range", si.ValueTag)
		}
		if len(si.Container) == 0 {
			return invalid("empty container for sib%d", si.Type)
		}
	}
	return nil
}

func validateCellsToActivate(cells []CellToActivate) error {
	if len(cells) > MaxServedCells {
		return invalid("%d cells to activate, at most %d", len(cells), MaxServedCells)
	}
	for i := range cells {
		if err := cells[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

func validateNRCGIList(field string, list []NRCGI) error {
	if len(list) > MaxServedCells {
		return invalid("%d %s, at most %d", len(list), field, MaxServedCells)
	}
	for i := range list {
		if err := list[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (m *F1SetupRequest) Validate() error {
	if m.GNBDUID > MaxGNBDUID {
		return invalid("gnbDuId %d out of range", m.GNBDUID)
	}
	if err := validateName("gnbDuName", m.GNBDUName); err != nil {
		return err
	}
	if len(m.Cells) == 0 || len(m.Cells) > MaxServedCells {
		return invalid("%d served cells, need 1..%d", len(m.Cells), MaxServedCells)
	}
	for i := range m.Cells {
		if err := m.Cells[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (m *F1SetupResponse) Validate() error {
	if err := validateName("gnbCuName", m.GNBCUName); err != nil {
		return err
	}
	return validateCellsToActivate(m.CellsToActivate)
}

func (f *Failure) Validate() error {
	maxValue, ok := MaxCauseValue[f.Cause.Group]
	if !ok {
		return invalid("cause group %s", f.Cause.Group)
	}
	if f.Cause.Value > maxValue {
		return invalid("cause %s out of range", f.Cause)
	}
	if f.TimeToWait != nil && *f.TimeToWait > TimeToWait60s {
		return invalid("time to wait %d out of range", *f.TimeToWait)
	}
	if d := f.CriticalityDiagnostics; d != nil {
		if d.TriggeringMessage != nil && *d.TriggeringMessage > TriggeringMessageUnsuccessfulOutcome {
			return invalid("triggering message %d out of range", *d.TriggeringMessage)
		}
		if d.ProcedureCriticality != nil && *d.ProcedureCriticality > CriticalityNotify {
			return invalid("procedure criticality %d out of range", *d.ProcedureCriticality)
		}
		if len(d.IEs) > MaxDiagnosticsIEs {
			return invalid("%d diagnostics IEs, at most %d", len(d.IEs), MaxDiagnosticsIEs)
		}
		for _, ie := range d.IEs {
			if ie.Criticality > CriticalityNotify || ie.TypeOfError > TypeOfErrorMissing {
				return invalid("diagnostics IE %d out of range", ie.ID)
			}
		}
	}
	return nil
}

func (m *GNBDUConfigurationUpdate) Validate() error {
	for _, n := range []int{len(m.CellsToAdd), len(m.CellsToModify), len(m.CellsToDelete)} {
		if n > MaxServedCells {
			return invalid("%d cells in one list, at most %d", n, MaxServedCells)
		}
	}
	for i := range m.CellsToAdd {
		if err := m.CellsToAdd[i].Validate(); err != nil {
			return err
		}
	}
	for i := range m.CellsToModify {
		if err := m.CellsToModify[i].Validate(); err != nil {
			return err
		}
	}
	if err := validateNRCGIList("cells to delete", m.CellsToDelete); err != nil {
		return err
	}
	if m.GNBDUID != nil && *m.GNBDUID > MaxGNBDUID {
		return invalid("gnbDuId %d out of range", *m.GNBDUID)
	}
	return nil
}

func (m *GNBCUConfigurationUpdate) Validate() error {
	if err := validateCellsToActivate(m.CellsToActivate); err != nil {
		return err
	}
	return validateNRCGIList("cells to deactivate", m.CellsToDeactivate)
}

func (*GNBDUConfigurationUpdateAcknowledge) Validate() error { return nil }

func (*GNBCUConfigurationUpdateAcknowledge) Validate() error { return nil }
