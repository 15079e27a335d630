package f1apType

import "github.com/free5gc/aper"

type GNBDUSystemInformation struct {
	MIBMessage   aper.OctetString
	SIB1Message  aper.OctetString
	IEExtensions *ProtocolExtensionContainer `aper:"optional"`
}

// GNBCUSystemInformation is carried in the extension container of
// CellsToBeActivatedListItem.
type GNBCUSystemInformation struct {
	SibtypetobeupdatedList SibtypetobeupdatedList
	IEExtensions           *ProtocolExtensionContainer `aper:"optional"`
}

type SibtypetobeupdatedList struct {
	List []SibtypetobeupdatedListItem `aper:"valueExt,sizeLB:1,sizeUB:32"`
}

type SibtypetobeupdatedListItem struct {
	SIBtype      int64 `aper:"valueExt,valueLB:2,valueUB:32"`
	SIBmessage   aper.OctetString
	ValueTag     int64                       `aper:"valueExt,valueLB:0,valueUB:31"`
	IEExtensions *ProtocolExtensionContainer `aper:"optional"`
}

type RRCVersion struct {
	LatestRRCVersion aper.BitString              `aper:"sizeLB:3,sizeUB:3"`
	IEExtensions     *ProtocolExtensionContainer `aper:"optional"`
}

type LatestRRCVersionEnhanced struct {
	Value aper.OctetString `aper:"sizeLB:3,sizeUB:3"`
}
