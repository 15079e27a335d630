package codec

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/free5gc/aper"
	"github.com/free5gc/f1ap/f1apType"
)

// Action decides what decode does with content it can read but not
// represent.
type Action uint8

const (
	ActionWarn Action = iota
	ActionReject
)

func (a Action) String() string {
	if a == ActionReject {
		return "reject"
	}
	return "warn"
}

func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "warn", "":
		return ActionWarn, nil
	case "reject":
		return ActionReject, nil
	}
	return ActionWarn, errors.Errorf("unknown action %q", s)
}

type Policy struct {
	// MultipleServedPLMNs: only the first served PLMN is kept.
	MultipleServedPLMNs Action
	// MultipleFrequencyBands: only the first band of a frequency info is kept.
	MultipleFrequencyBands Action
	// SULBands covers supported SUL band lists and SUL information.
	SULBands Action
	// Unknown extensions, split by their criticality.
	UnknownExtensionIgnore Action
	UnknownExtensionReject Action
}

func DefaultPolicy() Policy {
	return Policy{
		MultipleServedPLMNs:    ActionWarn,
		MultipleFrequencyBands: ActionWarn,
		SULBands:               ActionWarn,
		UnknownExtensionIgnore: ActionWarn,
		UnknownExtensionReject: ActionReject,
	}
}

func (p Policy) unknownExtension(criticality aper.Enumerated) Action {
	if criticality == f1apType.CriticalityPresentReject {
		return p.UnknownExtensionReject
	}
	return p.UnknownExtensionIgnore
}
