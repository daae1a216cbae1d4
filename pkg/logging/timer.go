package logging

import "time"

// TimedOperation measures a build or scoring pass and logs it on completion.
type TimedOperation struct {
	logger Logger
	msg    string
	start  time.Time
	fields []Field
}

// StartTimer begins timing an operation. A nil logger discards the result.
func StartTimer(logger Logger, msg string, fields ...Field) *TimedOperation {
	return &TimedOperation{
		logger: OrNop(logger),
		msg:    msg,
		start:  time.Now(),
		fields: fields,
	}
}

// Elapsed returns the time since the timer started.
func (t *TimedOperation) Elapsed() time.Duration {
	return time.Since(t.start)
}

// End logs the operation at debug level with its latency.
func (t *TimedOperation) End(extra ...Field) {
	t.logger.Debug(t.msg, t.withLatency(extra...)...)
}

// EndError logs the operation as failed.
func (t *TimedOperation) EndError(err error) {
	t.logger.Error(t.msg, t.withLatency(Error(err))...)
}

func (t *TimedOperation) withLatency(extra ...Field) []Field {
	fields := make([]Field, 0, len(t.fields)+len(extra)+1)
	fields = append(fields, t.fields...)
	fields = append(fields, extra...)
	return append(fields, Latency(t.Elapsed()))
}
