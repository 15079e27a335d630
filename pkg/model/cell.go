package model

import (
	"github.com/free5gc/openapi/models"
)

const (
	MaxServedCells      = 512
	MaxNRPCI            = 1007
	MaxNRARFCN          = 3279165
	MinFrequencyBand    = 1
	MaxFrequencyBand    = 1024
	MaxSIMessages       = 32
	MinSIBType          = 2
	MaxSIBType          = 32
	MaxValueTag         = 31
	MaxSlicesPerPLMN    = 1024
	MaxGNBDUID          = 1<<36 - 1
	MaxNameLength       = 150
	MaxDiagnosticsIEs   = 256
	MaxProcedureCode    = 255
	MaxProtocolIEID     = 65535
	RRCVersionLength    = 3
	MaxNRCellIdentity   = 1<<36 - 1
	MaxTrackingAreaCode = 1<<24 - 1
)

// NRCGI is the NR cell global identity.
type NRCGI struct {
	PLMN     models.PlmnId `json:"plmn" yaml:"plmn"`
	NRCellID uint64        `json:"nrCellId" yaml:"nrCellId"`
}

type FrequencyInfo struct {
	ARFCN uint32 `json:"arfcn" yaml:"arfcn"`
	Band  uint16 `json:"band" yaml:"band"`
}

type SubcarrierSpacing uint8

const (
	SCS15kHz SubcarrierSpacing = iota
	SCS30kHz
	SCS60kHz
	SCS120kHz
)

type TxBandwidth struct {
	SCS SubcarrierSpacing `json:"scs" yaml:"scs"`
	// NRB is a resource block count, not the wire table index.
	NRB uint16 `json:"nrb" yaml:"nrb"`
}

type FDDInfo struct {
	ULFreqInfo FrequencyInfo `json:"ulFreqInfo" yaml:"ulFreqInfo"`
	DLFreqInfo FrequencyInfo `json:"dlFreqInfo" yaml:"dlFreqInfo"`
	ULTxBW     TxBandwidth   `json:"ulTxBandwidth" yaml:"ulTxBandwidth"`
	DLTxBW     TxBandwidth   `json:"dlTxBandwidth" yaml:"dlTxBandwidth"`
}

type TDDInfo struct {
	FreqInfo FrequencyInfo `json:"freqInfo" yaml:"freqInfo"`
	TxBW     TxBandwidth   `json:"txBandwidth" yaml:"txBandwidth"`
}

type DuplexMode uint8

const (
	DuplexModeNone DuplexMode = iota
	DuplexModeFDD
	DuplexModeTDD
)

func (m DuplexMode) String() string {
	switch m {
	case DuplexModeFDD:
		return "FDD"
	case DuplexModeTDD:
		return "TDD"
	default:
		return "None"
	}
}

// ServedCellInfo describes one cell operated by the DU. Mode selects which
// of FDD and TDD is populated; the other one stays nil.
type ServedCellInfo struct {
	NRCGI                   NRCGI           `json:"nrCgi" yaml:"nrCgi"`
	NRPCI                   uint16          `json:"nrPci" yaml:"nrPci"`
	TAC                     *uint32         `json:"tac,omitempty" yaml:"tac,omitempty"`
	Mode                    DuplexMode      `json:"mode" yaml:"mode"`
	FDD                     *FDDInfo        `json:"fdd,omitempty" yaml:"fdd,omitempty"`
	TDD                     *TDDInfo        `json:"tdd,omitempty" yaml:"tdd,omitempty"`
	MeasurementTimingConfig []byte          `json:"measurementTimingConfig" yaml:"measurementTimingConfig"`
	NSSAI                   []models.Snssai `json:"nssai,omitempty" yaml:"nssai,omitempty"`
}

// SystemInfo is the DU system information of a cell. Both buffers are
// mandatory when present at all.
type SystemInfo struct {
	MIB  []byte `json:"mib" yaml:"mib"`
	SIB1 []byte `json:"sib1" yaml:"sib1"`
}

type ServedCell struct {
	Info    ServedCellInfo `json:"info" yaml:"info"`
	SysInfo *SystemInfo    `json:"sysInfo,omitempty" yaml:"sysInfo,omitempty"`
}

type CellToModify struct {
	OldNRCGI NRCGI          `json:"oldNrCgi" yaml:"oldNrCgi"`
	Info     ServedCellInfo `json:"info" yaml:"info"`
	SysInfo  *SystemInfo    `json:"sysInfo,omitempty" yaml:"sysInfo,omitempty"`
}

// SIMessage is one SIB the CU asks the DU to broadcast.
type SIMessage struct {
	Type      uint8  `json:"type" yaml:"type"`
	Container []byte `json:"container" yaml:"container"`
	ValueTag  uint8  `json:"valueTag" yaml:"valueTag"`
}

type CellToActivate struct {
	NRCGI      NRCGI       `json:"nrCgi" yaml:"nrCgi"`
	NRPCI      *uint16     `json:"nrPci,omitempty" yaml:"nrPci,omitempty"`
	SIMessages []SIMessage `json:"siMessages,omitempty" yaml:"siMessages,omitempty"`
}

// RRCVersion holds major, minor and revision of the latest supported RRC
// release.
type RRCVersion [RRCVersionLength]byte
