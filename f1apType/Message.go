package f1apType

// Procedure bodies. Every body is SEQUENCE { protocolIEs, ... } and is
// marshalled with the "valueExt" parameter.

type F1SetupRequest struct {
	ProtocolIEs ProtocolIEContainer
}

type F1SetupResponse struct {
	ProtocolIEs ProtocolIEContainer
}

type F1SetupFailure struct {
	ProtocolIEs ProtocolIEContainer
}

type GNBDUConfigurationUpdate struct {
	ProtocolIEs ProtocolIEContainer
}

type GNBDUConfigurationUpdateAcknowledge struct {
	ProtocolIEs ProtocolIEContainer
}

type GNBDUConfigurationUpdateFailure struct {
	ProtocolIEs ProtocolIEContainer
}

type GNBCUConfigurationUpdate struct {
	ProtocolIEs ProtocolIEContainer
}

type GNBCUConfigurationUpdateAcknowledge struct {
	ProtocolIEs ProtocolIEContainer
}

type GNBCUConfigurationUpdateFailure struct {
	ProtocolIEs ProtocolIEContainer
}

// Lists of single containers, SIZE(1..maxCellingNBDU).

type GNBDUServedCellsList struct {
	List []ProtocolIESingleContainer `aper:"sizeLB:1,sizeUB:512"`
}

type CellsToBeActivatedList struct {
	List []ProtocolIESingleContainer `aper:"sizeLB:1,sizeUB:512"`
}

type CellsToBeDeactivatedList struct {
	List []ProtocolIESingleContainer `aper:"sizeLB:1,sizeUB:512"`
}

type ServedCellsToAddList struct {
	List []ProtocolIESingleContainer `aper:"sizeLB:1,sizeUB:512"`
}

type ServedCellsToModifyList struct {
	List []ProtocolIESingleContainer `aper:"sizeLB:1,sizeUB:512"`
}

type ServedCellsToDeleteList struct {
	List []ProtocolIESingleContainer `aper:"sizeLB:1,sizeUB:512"`
}

type TransactionID struct {
	Value int64 `aper:"valueExt,valueLB:0,valueUB:255"`
}

type GNBDUID struct {
	Value int64 `aper:"valueLB:0,valueUB:68719476735"`
}

type GNBDUName struct {
	Value string `aper:"sizeExt,sizeLB:1,sizeUB:150"`
}

type GNBCUName struct {
	Value string `aper:"sizeExt,sizeLB:1,sizeUB:150"`
}
