package codec

import "fmt"

type WarningCode string

const (
	WarnMultipleServedPLMNs    WarningCode = "multiple_served_plmns"
	WarnMultipleFrequencyBands WarningCode = "multiple_frequency_bands"
	WarnSULBands               WarningCode = "sul_bands"
	WarnUnknownExtension       WarningCode = "unknown_extension"
	WarnAvailablePLMNList      WarningCode = "available_plmn_list"
	WarnLegacyRRCVersion       WarningCode = "legacy_rrc_version"
	WarnIgnoredField           WarningCode = "ignored_field"
)

// Warning is a non-fatal decode finding: something on the wire was dropped
// or approximated.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}
