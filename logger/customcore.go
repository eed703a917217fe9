// logger/customcore.go
package logger

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// RedactedValue replaces the value of any sensitive field.
const RedactedValue = "REDACTED"

// sensitiveFieldKeys are matched case-insensitively against field keys.
var sensitiveFieldKeys = map[string]bool{
	"pddtoken": true,
	"token":    true,
	"password": true,
	"passwd":   true,
}

// redactingCore masks string fields whose key names a credential.
type redactingCore struct {
	zapcore.Core
}

// With adds structured context to the Core, redacting it once up front.
func (c *redactingCore) With(fields []zapcore.Field) zapcore.Core {
	return &redactingCore{c.Core.With(redactFields(fields))}
}

// Write serializes the Entry and any Fields supplied at the log site and writes them to their destination.
func (c *redactingCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	return c.Core.Write(entry, redactFields(fields))
}

// Check determines whether the supplied Entry should be logged.
func (c *redactingCore) Check(entry zapcore.Entry, checkedEntry *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checkedEntry.AddCore(entry, c)
	}
	return checkedEntry
}

// Sync flushes buffered logs (if any).
func (c *redactingCore) Sync() error {
	return c.Core.Sync()
}

func redactFields(fields []zapcore.Field) []zapcore.Field {
	var out []zapcore.Field
	for i, f := range fields {
		if f.Type != zapcore.StringType || !IsSensitiveKey(f.Key) {
			continue
		}
		if out == nil {
			out = make([]zapcore.Field, len(fields))
			copy(out, fields)
		}
		out[i].String = RedactedValue
	}
	if out == nil {
		return fields
	}
	return out
}

// IsSensitiveKey reports whether a field or header name carries a credential.
func IsSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	if sensitiveFieldKeys[k] {
		return true
	}
	for _, suffix := range []string{"_token", "-token", "_passwd", "-passwd"} {
		if strings.HasSuffix(k, suffix) {
			return true
		}
	}
	return false
}
