package f1apType

const (
	ProtocolIEIDCause                        int64 = 0
	ProtocolIEIDCellsToBeActivatedList       int64 = 3
	ProtocolIEIDCellsToBeActivatedListItem   int64 = 4
	ProtocolIEIDCellsToBeDeactivatedList     int64 = 5
	ProtocolIEIDCellsToBeDeactivatedListItem int64 = 6
	ProtocolIEIDCriticalityDiagnostics       int64 = 7
	ProtocolIEIDGNBDUID                      int64 = 42
	ProtocolIEIDGNBDUServedCellsItem         int64 = 43
	ProtocolIEIDGNBDUServedCellsList         int64 = 44
	ProtocolIEIDGNBDUName                    int64 = 45
	ProtocolIEIDServedCellsToAddItem         int64 = 57
	ProtocolIEIDServedCellsToAddList         int64 = 58
	ProtocolIEIDServedCellsToDeleteItem      int64 = 59
	ProtocolIEIDServedCellsToDeleteList      int64 = 60
	ProtocolIEIDServedCellsToModifyItem      int64 = 61
	ProtocolIEIDServedCellsToModifyList      int64 = 62
	ProtocolIEIDTimeToWait                   int64 = 77
	ProtocolIEIDTransactionID                int64 = 78
	ProtocolIEIDGNBCUName                    int64 = 82
	ProtocolIEIDGNBCUSystemInformation       int64 = 118
	ProtocolIEIDTAISliceSupportList          int64 = 131
	ProtocolIEIDGNBCURRCVersion              int64 = 170
	ProtocolIEIDGNBDURRCVersion              int64 = 171
	ProtocolIEIDAvailablePLMNList            int64 = 179
	ProtocolIEIDLatestRRCVersionEnhanced     int64 = 199
)
