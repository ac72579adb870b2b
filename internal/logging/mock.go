package logging

// MockLogger is a Logger implementation for tests that records messages
// instead of emitting them.
type MockLogger struct {
	Messages []MockMessage
}

// MockMessage is a single recorded log call.
type MockMessage struct {
	Level  string
	Msg    string
	Fields []Field
	Err    error
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.Messages = append(m.Messages, MockMessage{Level: level, Msg: msg, Fields: fields})
}

// Debug records a debug message
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields) }

// Info records an info message
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("info", msg, fields) }

// Warn records a warning message
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("warn", msg, fields) }

// Error records an error message
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields) }

// WithError records the error on the next message
func (m *MockLogger) WithError(err error) Logger { return m }

// WithField returns the same mock
func (m *MockLogger) WithField(key string, value interface{}) Logger { return m }

// HasMessage reports whether a message with the given level and text was recorded.
func (m *MockLogger) HasMessage(level, msg string) bool {
	for _, rec := range m.Messages {
		if rec.Level == level && rec.Msg == msg {
			return true
		}
	}
	return false
}
