package f1apType

import "github.com/free5gc/aper"

// Need to import "github.com/free5gc/aper" if it uses "aper"

const (
	CriticalityPresentReject aper.Enumerated = 0
	CriticalityPresentIgnore aper.Enumerated = 1
	CriticalityPresentNotify aper.Enumerated = 2
)

type Criticality struct {
	Value aper.Enumerated `aper:"valueLB:0,valueUB:2"`
}

type ProcedureCode struct {
	Value int64 `aper:"valueLB:0,valueUB:255"`
}

type ProtocolIEID struct {
	Value int64 `aper:"valueLB:0,valueUB:65535"`
}

type ProtocolExtensionID struct {
	Value int64 `aper:"valueLB:0,valueUB:65535"`
}

const (
	TriggeringMessagePresentInitiatingMessage   aper.Enumerated = 0
	TriggeringMessagePresentSuccessfulOutcome   aper.Enumerated = 1
	TriggeringMessagePresentUnsuccessfulOutcome aper.Enumerated = 2
)

type TriggeringMessage struct {
	Value aper.Enumerated `aper:"valueLB:0,valueUB:2"`
}

const (
	F1APPDUPresentNothing int = iota /* No components present */
	F1APPDUPresentInitiatingMessage
	F1APPDUPresentSuccessfulOutcome
	F1APPDUPresentUnsuccessfulOutcome
	F1APPDUPresentChoiceExtensions
)

type F1APPDU struct {
	Present             int
	InitiatingMessage   *InitiatingMessage
	SuccessfulOutcome   *SuccessfulOutcome
	UnsuccessfulOutcome *UnsuccessfulOutcome
	ChoiceExtensions    *ProtocolIESingleContainer
}

// Value holds the complete APER encoding of the procedure body. It is an
// open type on the wire, which encodes exactly like an unconstrained
// OCTET STRING, so the body is marshalled separately once ProcedureCode
// and the PDU choice are known.
type InitiatingMessage struct {
	ProcedureCode ProcedureCode
	Criticality   Criticality
	Value         aper.OctetString
}

type SuccessfulOutcome struct {
	ProcedureCode ProcedureCode
	Criticality   Criticality
	Value         aper.OctetString
}

type UnsuccessfulOutcome struct {
	ProcedureCode ProcedureCode
	Criticality   Criticality
	Value         aper.OctetString
}

/* Sequence of = 35, FULL Name = struct ProtocolIE_Container */
type ProtocolIEContainer struct {
	List []ProtocolIEField `aper:"sizeLB:0,sizeUB:65535"`
}

type ProtocolIEField struct {
	Id          ProtocolIEID
	Criticality Criticality
	Value       aper.OctetString
}

// ProtocolIESingleContainer carries exactly one IE; list items of the
// cell lists are wrapped in one each.
type ProtocolIESingleContainer = ProtocolIEField

/* Sequence of = 35, FULL Name = struct ProtocolExtensionContainer */
type ProtocolExtensionContainer struct {
	List []ProtocolExtensionField `aper:"sizeLB:1,sizeUB:65535"`
}

type ProtocolExtensionField struct {
	Id             ProtocolExtensionID
	Criticality    Criticality
	ExtensionValue aper.OctetString
}
