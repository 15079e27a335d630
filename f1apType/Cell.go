package f1apType

import (
	"github.com/free5gc/aper"
	"github.com/free5gc/ngap/ngapType"
)

// PLMN-Identity, NRCellIdentity, FiveGS-TAC and S-NSSAI share their
// definition with NGAP, so the ngapType structures are reused as is.

type NRCGI struct {
	PLMNIdentity   ngapType.PLMNIdentity
	NRCellIdentity ngapType.NRCellIdentity
	IEExtensions   *ProtocolExtensionContainer `aper:"optional"`
}

type NRPCI struct {
	Value int64 `aper:"valueLB:0,valueUB:1007"`
}

type ConfiguredEPSTAC struct {
	Value aper.OctetString `aper:"sizeLB:2,sizeUB:2"`
}

type ServedCellInformation struct {
	NRCGI                          NRCGI `aper:"valueExt"`
	NRPCI                          NRPCI
	FiveGSTAC                      *ngapType.TAC     `aper:"optional"`
	ConfiguredEPSTAC               *ConfiguredEPSTAC `aper:"optional"`
	ServedPLMNs                    ServedPLMNsList
	NRModeInfo                     NRModeInfo `aper:"valueLB:0,valueUB:2"`
	MeasurementTimingConfiguration aper.OctetString
	IEExtensions                   *ProtocolExtensionContainer `aper:"optional"`
}

type ServedPLMNsList struct {
	List []ServedPLMNsItem `aper:"valueExt,sizeLB:1,sizeUB:6"`
}

type ServedPLMNsItem struct {
	PLMNIdentity ngapType.PLMNIdentity
	IEExtensions *ProtocolExtensionContainer `aper:"optional"`
}

// SliceSupportList is the value of the TAISliceSupportList extension of
// ServedPLMNsItem.
type SliceSupportList struct {
	List []SliceSupportItem `aper:"valueExt,sizeLB:1,sizeUB:1024"`
}

type SliceSupportItem struct {
	SNSSAI       ngapType.SNSSAI             `aper:"valueExt"`
	IEExtensions *ProtocolExtensionContainer `aper:"optional"`
}

const (
	NRModeInfoPresentNothing int = iota /* No components present */
	NRModeInfoPresentFDD
	NRModeInfoPresentTDD
	NRModeInfoPresentChoiceExtensions
)

type NRModeInfo struct {
	Present          int
	FDD              *FDDInfo `aper:"valueExt"`
	TDD              *TDDInfo `aper:"valueExt"`
	ChoiceExtensions *ProtocolIESingleContainer
}

type FDDInfo struct {
	ULNRFreqInfo            NRFreqInfo                  `aper:"valueExt"`
	DLNRFreqInfo            NRFreqInfo                  `aper:"valueExt"`
	ULTransmissionBandwidth TransmissionBandwidth       `aper:"valueExt"`
	DLTransmissionBandwidth TransmissionBandwidth       `aper:"valueExt"`
	IEExtensions            *ProtocolExtensionContainer `aper:"optional"`
}

type TDDInfo struct {
	NRFreqInfo            NRFreqInfo                  `aper:"valueExt"`
	TransmissionBandwidth TransmissionBandwidth       `aper:"valueExt"`
	IEExtensions          *ProtocolExtensionContainer `aper:"optional"`
}

type NRFreqInfo struct {
	NRARFCN        int64           `aper:"valueLB:0,valueUB:3279165"`
	SULInformation *SULInformation `aper:"valueExt,optional"`
	FreqBandListNr FreqBandListNr
	IEExtensions   *ProtocolExtensionContainer `aper:"optional"`
}

type SULInformation struct {
	SULNRARFCN               int64                       `aper:"valueLB:0,valueUB:3279165"`
	SULTransmissionBandwidth TransmissionBandwidth       `aper:"valueExt"`
	IEExtensions             *ProtocolExtensionContainer `aper:"optional"`
}

type FreqBandListNr struct {
	List []FreqBandNrItem `aper:"valueExt,sizeLB:1,sizeUB:32"`
}

type FreqBandNrItem struct {
	FreqBandIndicatorNr  int64 `aper:"valueExt,valueLB:1,valueUB:1024"`
	SupportedSULBandList SupportedSULBandList
	IEExtensions         *ProtocolExtensionContainer `aper:"optional"`
}

type SupportedSULBandList struct {
	List []SupportedSULFreqBandItem `aper:"valueExt,sizeLB:0,sizeUB:32"`
}

type SupportedSULFreqBandItem struct {
	FreqBandIndicatorNr int64                       `aper:"valueExt,valueLB:1,valueUB:1024"`
	IEExtensions        *ProtocolExtensionContainer `aper:"optional"`
}

type TransmissionBandwidth struct {
	NRSCS        NRSCS
	NRNRB        NRNRB
	IEExtensions *ProtocolExtensionContainer `aper:"optional"`
}

const (
	NRSCSPresentScs15  aper.Enumerated = 0
	NRSCSPresentScs30  aper.Enumerated = 1
	NRSCSPresentScs60  aper.Enumerated = 2
	NRSCSPresentScs120 aper.Enumerated = 3
)

type NRSCS struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:3"`
}

// NRNRB carries the index into the ordered table of resource block counts
// (nrb11 .. nrb273), not the count itself.
type NRNRB struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:28"`
}

type GNBDUServedCellsItem struct {
	ServedCellInformation  ServedCellInformation       `aper:"valueExt"`
	GNBDUSystemInformation *GNBDUSystemInformation     `aper:"valueExt,optional"`
	IEExtensions           *ProtocolExtensionContainer `aper:"optional"`
}

type ServedCellsToAddItem struct {
	ServedCellInformation  ServedCellInformation       `aper:"valueExt"`
	GNBDUSystemInformation *GNBDUSystemInformation     `aper:"valueExt,optional"`
	IEExtensions           *ProtocolExtensionContainer `aper:"optional"`
}

type ServedCellsToModifyItem struct {
	OldNRCGI               NRCGI                       `aper:"valueExt"`
	ServedCellInformation  ServedCellInformation       `aper:"valueExt"`
	GNBDUSystemInformation *GNBDUSystemInformation     `aper:"valueExt,optional"`
	IEExtensions           *ProtocolExtensionContainer `aper:"optional"`
}

type ServedCellsToDeleteItem struct {
	OldNRCGI     NRCGI                       `aper:"valueExt"`
	IEExtensions *ProtocolExtensionContainer `aper:"optional"`
}

type CellsToBeActivatedListItem struct {
	NRCGI        NRCGI                       `aper:"valueExt"`
	NRPCI        *NRPCI                      `aper:"optional"`
	IEExtensions *ProtocolExtensionContainer `aper:"optional"`
}

type CellsToBeDeactivatedListItem struct {
	NRCGI        NRCGI                       `aper:"valueExt"`
	IEExtensions *ProtocolExtensionContainer `aper:"optional"`
}
