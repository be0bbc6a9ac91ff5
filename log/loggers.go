package log

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Info takes a pointer subLogger struct and string sends to the backend
func Info(sl *SubLogger, data string) {
	sl.stage(zapcore.InfoLevel, func() string { return data })
}

// Infof takes a pointer subLogger struct, string and interface formats sends to the backend
func Infof(sl *SubLogger, data string, v ...interface{}) {
	sl.stage(zapcore.InfoLevel, func() string { return fmt.Sprintf(data, v...) })
}

// Debug takes a pointer subLogger struct and string sends to the backend
func Debug(sl *SubLogger, data string) {
	sl.stage(zapcore.DebugLevel, func() string { return data })
}

// Debugf takes a pointer subLogger struct, string and interface formats sends to the backend
func Debugf(sl *SubLogger, data string, v ...interface{}) {
	sl.stage(zapcore.DebugLevel, func() string { return fmt.Sprintf(data, v...) })
}

// Warn takes a pointer subLogger struct & string and sends to the backend
func Warn(sl *SubLogger, data string) {
	sl.stage(zapcore.WarnLevel, func() string { return data })
}

// Warnf takes a pointer subLogger struct, string and interface formats sends to the backend
func Warnf(sl *SubLogger, data string, v ...interface{}) {
	sl.stage(zapcore.WarnLevel, func() string { return fmt.Sprintf(data, v...) })
}

// Error takes a pointer subLogger struct & string and sends to the backend
func Error(sl *SubLogger, data string) {
	sl.stage(zapcore.ErrorLevel, func() string { return data })
}

// Errorf takes a pointer subLogger struct, string and interface formats sends to the backend
func Errorf(sl *SubLogger, data string, v ...interface{}) {
	sl.stage(zapcore.ErrorLevel, func() string { return fmt.Sprintf(data, v...) })
}

// stage formats the message only when someone is going to read it
func (sl *SubLogger) stage(lvl zapcore.Level, msg func() string) {
	if sl == nil {
		return
	}
	mu.RLock()
	hook := customLogHook
	z := sl.logger
	mu.RUnlock()

	if hook != nil {
		m := msg()
		if hook(lvl.CapitalString(), sl.name, m) {
			return
		}
		msg = func() string { return m }
	}
	if ce := z.Check(lvl, ""); ce != nil {
		ce.Message = msg()
		ce.Write()
	}
}
