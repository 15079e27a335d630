package model

import (
	"strings"

	"github.com/pkg/errors"
)

type MessageType uint8

const (
	MessageTypeUnknown MessageType = iota
	MessageTypeF1SetupRequest
	MessageTypeF1SetupResponse
	MessageTypeF1SetupFailure
	MessageTypeGNBDUConfigurationUpdate
	MessageTypeGNBDUConfigurationUpdateAcknowledge
	MessageTypeGNBDUConfigurationUpdateFailure
	MessageTypeGNBCUConfigurationUpdate
	MessageTypeGNBCUConfigurationUpdateAcknowledge
	MessageTypeGNBCUConfigurationUpdateFailure
)

var messageTypeNames = map[MessageType]string{
	MessageTypeF1SetupRequest:                      "F1SetupRequest",
	MessageTypeF1SetupResponse:                     "F1SetupResponse",
	MessageTypeF1SetupFailure:                      "F1SetupFailure",
	MessageTypeGNBDUConfigurationUpdate:            "GNBDUConfigurationUpdate",
	MessageTypeGNBDUConfigurationUpdateAcknowledge: "GNBDUConfigurationUpdateAcknowledge",
	MessageTypeGNBDUConfigurationUpdateFailure:     "GNBDUConfigurationUpdateFailure",
	MessageTypeGNBCUConfigurationUpdate:            "GNBCUConfigurationUpdate",
	MessageTypeGNBCUConfigurationUpdateAcknowledge: "GNBCUConfigurationUpdateAcknowledge",
	MessageTypeGNBCUConfigurationUpdateFailure:     "GNBCUConfigurationUpdateFailure",
}

func (t MessageType) String() string {
	if name, ok := messageTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// MessageTypes lists every supported message type in procedure order.
func MessageTypes() []MessageType {
	return []MessageType{
		MessageTypeF1SetupRequest,
		MessageTypeF1SetupResponse,
		MessageTypeF1SetupFailure,
		MessageTypeGNBDUConfigurationUpdate,
		MessageTypeGNBDUConfigurationUpdateAcknowledge,
		MessageTypeGNBDUConfigurationUpdateFailure,
		MessageTypeGNBCUConfigurationUpdate,
		MessageTypeGNBCUConfigurationUpdateAcknowledge,
		MessageTypeGNBCUConfigurationUpdateFailure,
	}
}

// ParseMessageType accepts the String form, case-insensitively.
func ParseMessageType(s string) (MessageType, error) {
	for t, name := range messageTypeNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return MessageTypeUnknown, errors.Errorf("unknown message type %q", s)
}

// Message is implemented by every F1 interface-management message value.
type Message interface {
	MessageType() MessageType
	Validate() error
}

// NewMessage returns an empty message value of type t.
func NewMessage(t MessageType) (Message, error) {
	switch t {
	case MessageTypeF1SetupRequest:
		return &F1SetupRequest{}, nil
	case MessageTypeF1SetupResponse:
		return &F1SetupResponse{}, nil
	case MessageTypeF1SetupFailure:
		return &F1SetupFailure{}, nil
	case MessageTypeGNBDUConfigurationUpdate:
		return &GNBDUConfigurationUpdate{}, nil
	case MessageTypeGNBDUConfigurationUpdateAcknowledge:
		return &GNBDUConfigurationUpdateAcknowledge{}, nil
	case MessageTypeGNBDUConfigurationUpdateFailure:
		return &GNBDUConfigurationUpdateFailure{}, nil
	case MessageTypeGNBCUConfigurationUpdate:
		return &GNBCUConfigurationUpdate{}, nil
	case MessageTypeGNBCUConfigurationUpdateAcknowledge:
		return &GNBCUConfigurationUpdateAcknowledge{}, nil
	case MessageTypeGNBCUConfigurationUpdateFailure:
		return &GNBCUConfigurationUpdateFailure{}, nil
	default:
		return nil, errors.Errorf("unknown message type %d", t)
	}
}

// F1SetupRequest is sent by the DU to register itself and its cells.
type F1SetupRequest struct {
	TransactionID uint8  `json:"transactionId" yaml:"transactionId"`
	GNBDUID       uint64 `json:"gnbDuId" yaml:"gnbDuId"`
	// GNBDUName is optional, "" means absent.
	GNBDUName  string       `json:"gnbDuName,omitempty" yaml:"gnbDuName,omitempty"`
	Cells      []ServedCell `json:"cells" yaml:"cells"`
	RRCVersion RRCVersion   `json:"rrcVersion" yaml:"rrcVersion"`
}

func (*F1SetupRequest) MessageType() MessageType { return MessageTypeF1SetupRequest }

type F1SetupResponse struct {
	TransactionID   uint8            `json:"transactionId" yaml:"transactionId"`
	GNBCUName       string           `json:"gnbCuName,omitempty" yaml:"gnbCuName,omitempty"`
	CellsToActivate []CellToActivate `json:"cellsToActivate,omitempty" yaml:"cellsToActivate,omitempty"`
	RRCVersion      RRCVersion       `json:"rrcVersion" yaml:"rrcVersion"`
}

func (*F1SetupResponse) MessageType() MessageType { return MessageTypeF1SetupResponse }

// Failure is the body shared by every unsuccessful outcome.
type Failure struct {
	TransactionID          uint8                   `json:"transactionId" yaml:"transactionId"`
	Cause                  Cause                   `json:"cause" yaml:"cause"`
	TimeToWait             *TimeToWait             `json:"timeToWait,omitempty" yaml:"timeToWait,omitempty"`
	CriticalityDiagnostics *CriticalityDiagnostics `json:"criticalityDiagnostics,omitempty" yaml:"criticalityDiagnostics,omitempty"`
}

type F1SetupFailure struct {
	Failure `yaml:",inline"`
}

func (*F1SetupFailure) MessageType() MessageType { return MessageTypeF1SetupFailure }

// GNBDUConfigurationUpdate carries DU-side cell changes. GNBDUID is
// optional.
type GNBDUConfigurationUpdate struct {
	TransactionID uint8          `json:"transactionId" yaml:"transactionId"`
	CellsToAdd    []ServedCell   `json:"cellsToAdd,omitempty" yaml:"cellsToAdd,omitempty"`
	CellsToModify []CellToModify `json:"cellsToModify,omitempty" yaml:"cellsToModify,omitempty"`
	CellsToDelete []NRCGI        `json:"cellsToDelete,omitempty" yaml:"cellsToDelete,omitempty"`
	GNBDUID       *uint64        `json:"gnbDuId,omitempty" yaml:"gnbDuId,omitempty"`
}

func (*GNBDUConfigurationUpdate) MessageType() MessageType {
	return MessageTypeGNBDUConfigurationUpdate
}

type GNBDUConfigurationUpdateAcknowledge struct {
	TransactionID uint8 `json:"transactionId" yaml:"transactionId"`
}

func (*GNBDUConfigurationUpdateAcknowledge) MessageType() MessageType {
	return MessageTypeGNBDUConfigurationUpdateAcknowledge
}

type GNBDUConfigurationUpdateFailure struct {
	Failure `yaml:",inline"`
}

func (*GNBDUConfigurationUpdateFailure) MessageType() MessageType {
	return MessageTypeGNBDUConfigurationUpdateFailure
}

type GNBCUConfigurationUpdate struct {
	TransactionID     uint8            `json:"transactionId" yaml:"transactionId"`
	CellsToActivate   []CellToActivate `json:"cellsToActivate,omitempty" yaml:"cellsToActivate,omitempty"`
	CellsToDeactivate []NRCGI          `json:"cellsToDeactivate,omitempty" yaml:"cellsToDeactivate,omitempty"`
}

func (*GNBCUConfigurationUpdate) MessageType() MessageType {
	return MessageTypeGNBCUConfigurationUpdate
}

type GNBCUConfigurationUpdateAcknowledge struct {
	TransactionID uint8 `json:"transactionId" yaml:"transactionId"`
}

func (*GNBCUConfigurationUpdateAcknowledge) MessageType() MessageType {
	return MessageTypeGNBCUConfigurationUpdateAcknowledge
}

type GNBCUConfigurationUpdateFailure struct {
	Failure `yaml:",inline"`
}

func (*GNBCUConfigurationUpdateFailure) MessageType() MessageType {
	return MessageTypeGNBCUConfigurationUpdateFailure
}
