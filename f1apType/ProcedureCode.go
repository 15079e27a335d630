package f1apType

const (
	ProcedureCodeReset                            int64 = 0
	ProcedureCodeF1Setup                          int64 = 1
	ProcedureCodeErrorIndication                  int64 = 2
	ProcedureCodeGNBDUConfigurationUpdate         int64 = 3
	ProcedureCodeGNBCUConfigurationUpdate         int64 = 4
	ProcedureCodeUEContextSetup                   int64 = 5
	ProcedureCodeUEContextRelease                 int64 = 6
	ProcedureCodeUEContextModification            int64 = 7
	ProcedureCodeUEContextModificationRequired    int64 = 8
	ProcedureCodeUEMobilityCommand                int64 = 9
	ProcedureCodeUEContextReleaseRequest          int64 = 10
	ProcedureCodeInitialULRRCMessageTransfer      int64 = 11
	ProcedureCodeDLRRCMessageTransfer             int64 = 12
	ProcedureCodeULRRCMessageTransfer             int64 = 13
	ProcedureCodePrivateMessage                   int64 = 14
	ProcedureCodeUEInactivityNotification         int64 = 15
	ProcedureCodeGNBDUResourceCoordination        int64 = 16
	ProcedureCodeSystemInformationDeliveryCommand int64 = 17
)
