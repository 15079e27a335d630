package model

import "fmt"

type CauseGroup uint8

const (
	CauseGroupNone CauseGroup = iota
	CauseGroupRadioNetwork
	CauseGroupTransport
	CauseGroupProtocol
	CauseGroupMisc
)

func (g CauseGroup) String() string {
	switch g {
	case CauseGroupRadioNetwork:
		return "radioNetwork"
	case CauseGroupTransport:
		return "transport"
	case CauseGroupProtocol:
		return "protocol"
	case CauseGroupMisc:
		return "misc"
	default:
		return "none"
	}
}

// MaxCauseValue is the highest root enumeration value of each cause group.
var MaxCauseValue = map[CauseGroup]uint8{
	CauseGroupRadioNetwork: 10,
	CauseGroupTransport:    1,
	CauseGroupProtocol:     6,
	CauseGroupMisc:         4,
}

const (
	CauseRadioNetworkUnspecified uint8 = iota
	CauseRadioNetworkRlFailureRlc
	CauseRadioNetworkUnknownOrAlreadyAllocatedGnbCuUeF1apId
	CauseRadioNetworkUnknownOrAlreadyAllocatedGnbDuUeF1apId
	CauseRadioNetworkUnknownOrInconsistentPairOfUeF1apId
	CauseRadioNetworkInteractionWithOtherProcedure
	CauseRadioNetworkNotSupportedQciValue
	CauseRadioNetworkActionDesirableForRadioReasons
	CauseRadioNetworkNoRadioResourcesAvailable
	CauseRadioNetworkProcedureCancelled
	CauseRadioNetworkNormalRelease
)

const (
	CauseTransportUnspecified uint8 = iota
	CauseTransportTransportResourceUnavailable
)

const (
	CauseProtocolTransferSyntaxError uint8 = iota
	CauseProtocolAbstractSyntaxErrorReject
	CauseProtocolAbstractSyntaxErrorIgnoreAndNotify
	CauseProtocolMessageNotCompatibleWithReceiverState
	CauseProtocolSemanticError
	CauseProtocolAbstractSyntaxErrorFalselyConstructedMessage
	CauseProtocolUnspecified
)

const (
	CauseMiscControlProcessingOverload uint8 = iota
	CauseMiscNotEnoughUserPlaneProcessingResources
	CauseMiscHardwareFailure
	CauseMiscOmIntervention
	CauseMiscUnspecified
)

type Cause struct {
	Group CauseGroup `json:"group" yaml:"group"`
	Value uint8      `json:"value" yaml:"value"`
}

func (c Cause) String() string {
	return fmt.Sprintf("%s(%d)", c.Group, c.Value)
}

type TimeToWait uint8

const (
	TimeToWait1s TimeToWait = iota
	TimeToWait2s
	TimeToWait5s
	TimeToWait10s
	TimeToWait20s
	TimeToWait60s
)

type Criticality uint8

const (
	CriticalityReject Criticality = iota
	CriticalityIgnore
	CriticalityNotify
)

func (c Criticality) String() string {
	switch c {
	case CriticalityReject:
		return "reject"
	case CriticalityIgnore:
		return "ignore"
	case CriticalityNotify:
		return "notify"
	default:
		return fmt.Sprintf("criticality(%d)", uint8(c))
	}
}

type TriggeringMessage uint8

const (
	TriggeringMessageInitiating TriggeringMessage = iota
	TriggeringMessageSuccessfulOutcome
	TriggeringMessageUnsuccessfulOutcome
)

type TypeOfError uint8

const (
	TypeOfErrorNotUnderstood TypeOfError = iota
	TypeOfErrorMissing
)

type CriticalityDiagnosticsIE struct {
	Criticality Criticality `json:"criticality" yaml:"criticality"`
	ID          uint16      `json:"id" yaml:"id"`
	TypeOfError TypeOfError `json:"typeOfError" yaml:"typeOfError"`
}

type CriticalityDiagnostics struct {
	ProcedureCode        *uint8                     `json:"procedureCode,omitempty" yaml:"procedureCode,omitempty"`
	TriggeringMessage    *TriggeringMessage         `json:"triggeringMessage,omitempty" yaml:"triggeringMessage,omitempty"`
	ProcedureCriticality *Criticality               `json:"procedureCriticality,omitempty" yaml:"procedureCriticality,omitempty"`
	TransactionID        *uint8                     `json:"transactionId,omitempty" yaml:"transactionId,omitempty"`
	IEs                  []CriticalityDiagnosticsIE `json:"ies,omitempty" yaml:"ies,omitempty"`
}
