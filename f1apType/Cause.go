package f1apType

import "github.com/free5gc/aper"

const (
	CausePresentNothing int = iota /* No components present */
	CausePresentRadioNetwork
	CausePresentTransport
	CausePresentProtocol
	CausePresentMisc
	CausePresentChoiceExtensions
)

type Cause struct {
	Present          int
	RadioNetwork     *CauseRadioNetwork
	Transport        *CauseTransport
	Protocol         *CauseProtocol
	Misc             *CauseMisc
	ChoiceExtensions *ProtocolIESingleContainer
}

const (
	CauseRadioNetworkPresentUnspecified                            aper.Enumerated = 0
	CauseRadioNetworkPresentRlFailureRlc                           aper.Enumerated = 1
	CauseRadioNetworkPresentUnknownOrAlreadyAllocatedGnbCuUeF1apId aper.Enumerated = 2
	CauseRadioNetworkPresentUnknownOrAlreadyAllocatedGnbDuUeF1apId aper.Enumerated = 3
	CauseRadioNetworkPresentUnknownOrInconsistentPairOfUeF1apId    aper.Enumerated = 4
	CauseRadioNetworkPresentInteractionWithOtherProcedure          aper.Enumerated = 5
	CauseRadioNetworkPresentNotSupportedQciValue                   aper.Enumerated = 6
	CauseRadioNetworkPresentActionDesirableForRadioReasons         aper.Enumerated = 7
	CauseRadioNetworkPresentNoRadioResourcesAvailable              aper.Enumerated = 8
	CauseRadioNetworkPresentProcedureCancelled                     aper.Enumerated = 9
	CauseRadioNetworkPresentNormalRelease                          aper.Enumerated = 10
)

type CauseRadioNetwork struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:10"`
}

const (
	CauseTransportPresentUnspecified                  aper.Enumerated = 0
	CauseTransportPresentTransportResourceUnavailable aper.Enumerated = 1
)

type CauseTransport struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:1"`
}

const (
	CauseProtocolPresentTransferSyntaxError                          aper.Enumerated = 0
	CauseProtocolPresentAbstractSyntaxErrorReject                    aper.Enumerated = 1
	CauseProtocolPresentAbstractSyntaxErrorIgnoreAndNotify           aper.Enumerated = 2
	CauseProtocolPresentMessageNotCompatibleWithReceiverState        aper.Enumerated = 3
	CauseProtocolPresentSemanticError                                aper.Enumerated = 4
	CauseProtocolPresentAbstractSyntaxErrorFalselyConstructedMessage aper.Enumerated = 5
	CauseProtocolPresentUnspecified                                  aper.Enumerated = 6
)

type CauseProtocol struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:6"`
}

const (
	CauseMiscPresentControlProcessingOverload             aper.Enumerated = 0
	CauseMiscPresentNotEnoughUserPlaneProcessingResources aper.Enumerated = 1
	CauseMiscPresentHardwareFailure                       aper.Enumerated = 2
	CauseMiscPresentOmIntervention                        aper.Enumerated = 3
	CauseMiscPresentUnspecified                           aper.Enumerated = 4
)

type CauseMisc struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:4"`
}

const (
	TimeToWaitPresentV1s  aper.Enumerated = 0
	TimeToWaitPresentV2s  aper.Enumerated = 1
	TimeToWaitPresentV5s  aper.Enumerated = 2
	TimeToWaitPresentV10s aper.Enumerated = 3
	TimeToWaitPresentV20s aper.Enumerated = 4
	TimeToWaitPresentV60s aper.Enumerated = 5
)

type TimeToWait struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:5"`
}

type CriticalityDiagnostics struct {
	ProcedureCode             *ProcedureCode                `aper:"optional"`
	TriggeringMessage         *TriggeringMessage            `aper:"optional"`
	ProcedureCriticality      *Criticality                  `aper:"optional"`
	TransactionID             *TransactionID                `aper:"optional"`
	IEsCriticalityDiagnostics *CriticalityDiagnosticsIEList `aper:"optional"`
	IEExtensions              *ProtocolExtensionContainer   `aper:"optional"`
}

type CriticalityDiagnosticsIEList struct {
	List []CriticalityDiagnosticsIEItem `aper:"valueExt,sizeLB:1,sizeUB:256"`
}

type CriticalityDiagnosticsIEItem struct {
	IECriticality Criticality
	IEID          ProtocolIEID
	TypeOfError   TypeOfError
	IEExtensions  *ProtocolExtensionContainer `aper:"optional"`
}

const (
	TypeOfErrorPresentNotUnderstood aper.Enumerated = 0
	TypeOfErrorPresentMissing       aper.Enumerated = 1
)

type TypeOfError struct {
	Value aper.Enumerated `aper:"valueExt,valueLB:0,valueUB:1"`
}
