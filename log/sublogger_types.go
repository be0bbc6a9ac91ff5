package log

// Global vars related to the logger package
var (
	Global      *SubLogger
	ConfigMgr   *SubLogger
	RequestSys  *SubLogger
	ExchangeSys *SubLogger
)

func registerNewSubLogger(name string) *SubLogger {
	sl := &SubLogger{name: name, logger: backend.Named(name)}
	subLoggers[name] = sl
	return sl
}

// register all loggers at package init()
func init() {
	Global = registerNewSubLogger("LOG")
	ConfigMgr = registerNewSubLogger("CONFIG")
	RequestSys = registerNewSubLogger("REQUESTER")
	ExchangeSys = registerNewSubLogger("EXCHANGE")
}

// Name returns the sub logger name as it appears in the output
func (sl *SubLogger) Name() string {
	if sl == nil {
		return ""
	}
	return sl.name
}
