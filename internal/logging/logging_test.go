package logging

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogrusAdapter_Fields(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	log := NewLogrusAdapterFromLogger(logger)

	log.Info("statements grouped",
		Field{Key: FieldAccount, Value: "U1234567"},
		Field{Key: FieldStatements, Value: 3})

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "statements grouped", entry.Message)
	assert.Equal(t, "U1234567", entry.Data[FieldAccount])
	assert.Equal(t, 3, entry.Data[FieldStatements])
}

func TestLogrusAdapter_Levels(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	log := NewLogrusAdapterFromLogger(logger)

	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")

	require.Len(t, hook.Entries, 4)
	assert.Equal(t, logrus.DebugLevel, hook.Entries[0].Level)
	assert.Equal(t, logrus.InfoLevel, hook.Entries[1].Level)
	assert.Equal(t, logrus.WarnLevel, hook.Entries[2].Level)
	assert.Equal(t, logrus.ErrorLevel, hook.Entries[3].Level)
}

func TestLogrusAdapter_WithError(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()
	log := NewLogrusAdapterFromLogger(logger)

	parseErr := errors.New("malformed report")
	log.WithError(parseErr).Error("failed to parse file",
		Field{Key: FieldFile, Value: "report.xml"})

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, parseErr, entry.Data[logrus.ErrorKey])
	assert.Equal(t, "report.xml", entry.Data[FieldFile])

	// The parent adapter is unchanged.
	log.Info("next file")
	assert.NotContains(t, hook.LastEntry().Data, logrus.ErrorKey)
}

func TestNewLogrusAdapterFromLogger_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		NewLogrusAdapterFromLogger(nil).Info("works without a configured logger")
	})
}

func TestMockLogger_Records(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("grouped", Field{Key: FieldAccount, Value: "U1"})
	mock.Warn("no trades")
	mock.Fatalf("bad input: %s", "x.xml")

	require.Len(t, mock.Entries, 3)
	assert.Equal(t, "INFO", mock.Entries[0].Level)
	assert.Equal(t, []Field{{Key: FieldAccount, Value: "U1"}}, mock.Entries[0].Fields)
	assert.True(t, mock.HasEntry("WARN", "no trades"))
	assert.True(t, mock.HasEntry("FATAL", "bad input: x.xml"))
	assert.False(t, mock.HasEntry("ERROR", "no trades"))
}

func TestMockLogger_WithErrorSharesEntries(t *testing.T) {
	mock := &MockLogger{}
	writeErr := errors.New("disk full")

	mock.WithError(writeErr).Error("failed to write consolidated CSV")
	mock.Info("continuing")

	require.Len(t, mock.Entries, 2)
	assert.Equal(t, writeErr, mock.Entries[0].Err)
	assert.Nil(t, mock.Entries[1].Err)
}
