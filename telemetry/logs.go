package telemetry

// Logger is the logging surface used by the schedule and the command line
// tool. Messages are plain strings; callers format them first.
type Logger interface {
	Info(msg string)
	Debug(msg string)
	Error(msg string, err error)
}

type NOPLogger struct {
}

func (n NOPLogger) Info(msg string) {
}
func (n NOPLogger) Debug(msg string) {
}
func (n NOPLogger) Error(msg string, err error) {
}

// OrNOP returns l, or a NOPLogger when l is nil.
func OrNOP(l Logger) Logger {
	if l == nil {
		return NOPLogger{}
	}
	return l
}
