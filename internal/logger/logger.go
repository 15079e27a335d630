package logger

import (
	"github.com/sirupsen/logrus"

	logger_util "github.com/free5gc/util/logger"
)

var (
	Log          *logrus.Logger
	NfLog        *logrus.Entry
	MainLog      *logrus.Entry
	InitLog      *logrus.Entry
	CfgLog       *logrus.Entry
	CodecLog     *logrus.Entry
	InspectorLog *logrus.Entry
)

const (
	FieldProcedureCode = "procedure_code"
	FieldMessageType   = "message_type"
	FieldRequestID     = "request_id"
)

func init() {
	fieldsOrder := []string{
		logger_util.FieldNF,
		logger_util.FieldCategory,
	}

	Log = logger_util.New(fieldsOrder)
	NfLog = Log.WithField(logger_util.FieldNF, "F1AP")
	MainLog = NfLog.WithField(logger_util.FieldCategory, "Main")
	InitLog = NfLog.WithField(logger_util.FieldCategory, "Init")
	CfgLog = NfLog.WithField(logger_util.FieldCategory, "CFG")
	CodecLog = NfLog.WithField(logger_util.FieldCategory, "Codec")
	InspectorLog = NfLog.WithField(logger_util.FieldCategory, "Inspector")
}

// SetLogLevel sets the level of every entry above; an empty level keeps the
// current one.
func SetLogLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Log.SetLevel(lvl)
	return nil
}

func SetReportCaller(enable bool) {
	Log.SetReportCaller(enable)
}
