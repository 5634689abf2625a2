package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testMockLogger is a mock logger for testing MultiLogger delegation.
type testMockLogger struct {
	mock.Mock
}

func (m *testMockLogger) Info(msg string, fields ...Field) {
	m.Called(msg, fields)
}

func (m *testMockLogger) Warn(msg string, fields ...Field) {
	m.Called(msg, fields)
}

func (m *testMockLogger) Error(msg string, fields ...Field) {
	m.Called(msg, fields)
}

func (m *testMockLogger) Debug(msg string, fields ...Field) {
	m.Called(msg, fields)
}

func (m *testMockLogger) WithFields(fields ...Field) Logger {
	args := m.Called(fields)
	return args.Get(0).(Logger)
}

func (m *testMockLogger) LogAssertion(record AssertionLog) {
	m.Called(record)
}

func (m *testMockLogger) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestNewMultiLogger(t *testing.T) {
	tests := []struct {
		name    string
		loggers []Logger
		wantLen int
	}{
		{"empty loggers", []Logger{}, 0},
		{"single logger", []Logger{NullLogger{}}, 1},
		{"multiple loggers", []Logger{NullLogger{}, NullLogger{}, NullLogger{}}, 3},
		{"nil slice", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ml := NewMultiLogger(tt.loggers...)
			require.NotNil(t, ml)
			assert.Len(t, ml.loggers, tt.wantLen)
		})
	}
}

func TestMultiLogger_Delegates(t *testing.T) {
	fields := []Field{StringField("subject", "string")}

	tests := []struct {
		method string
		call   func(l Logger)
	}{
		{"Info", func(l Logger) { l.Info("msg", fields...) }},
		{"Warn", func(l Logger) { l.Warn("msg", fields...) }},
		{"Error", func(l Logger) { l.Error("msg", fields...) }},
		{"Debug", func(l Logger) { l.Debug("msg", fields...) }},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			a, b := new(testMockLogger), new(testMockLogger)
			a.On(tt.method, "msg", fields).Return()
			b.On(tt.method, "msg", fields).Return()

			tt.call(NewMultiLogger(a, b))

			a.AssertExpectations(t)
			b.AssertExpectations(t)
		})
	}
}

func TestMultiLogger_LogAssertion(t *testing.T) {
	record := AssertionLog{Subject: "count", Passed: true}

	a, b := new(testMockLogger), new(testMockLogger)
	a.On("LogAssertion", record).Return()
	b.On("LogAssertion", record).Return()

	NewMultiLogger(a, b).LogAssertion(record)

	a.AssertExpectations(t)
	b.AssertExpectations(t)
}

func TestMultiLogger_WithFields(t *testing.T) {
	fields := []Field{LogField("k", "v")}

	a := new(testMockLogger)
	a.On("WithFields", fields).Return(NullLogger{})

	child := NewMultiLogger(a).WithFields(fields...)

	ml, ok := child.(*MultiLogger)
	require.True(t, ok)
	assert.Equal(t, []Logger{NullLogger{}}, ml.loggers)
	a.AssertExpectations(t)
}

func TestMultiLogger_Close(t *testing.T) {
	errA := errors.New("close a")
	errB := errors.New("close b")

	a, b, c := new(testMockLogger), new(testMockLogger), new(testMockLogger)
	a.On("Close").Return(errA)
	b.On("Close").Return(nil)
	c.On("Close").Return(errB)

	err := NewMultiLogger(a, b, c).Close()
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)

	assert.NoError(t, NewMultiLogger(NullLogger{}).Close())
}
