package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func parseLogOutput(buf *bytes.Buffer) map[string]interface{} {
	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	if err != nil {
		return nil
	}
	return logEntry
}

func TestNewLoggerLevelParsing(t *testing.T) {
	log := NewLogger("debug")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log = NewLogger("warn")
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log = NewLogger("not-a-level")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestRunLoggerCarriesRunID(t *testing.T) {
	log, buf := setupTestLogger()
	runLogger := NewRunLogger(log, "run_abc123")

	runLogger.Info("run started")

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "run_abc123", logEntry["run_id"])
}

func TestAnalysisLoggerSimulationStart(t *testing.T) {
	log, buf := setupTestLogger()
	analysisLogger := NewAnalysisLogger(log)

	analysisLogger.LogSimulationStart("Boston Celtics", "Miami Heat", -6.5, 10000, 42)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "analysis", logEntry["component"])
	assert.Equal(t, "Boston Celtics", logEntry["home_team"])
	assert.Equal(t, -6.5, logEntry["spread"])
}

func TestAnalysisLoggerBetDecision(t *testing.T) {
	log, buf := setupTestLogger()
	analysisLogger := NewAnalysisLogger(log)

	analysisLogger.LogBetDecision("HOME", "BET", 4.2, 0.08, 0.563, 0.521, 1.92)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "BET", logEntry["decision"])
	assert.Equal(t, "HOME", logEntry["side"])
}

func BenchmarkAnalysisLogger(b *testing.B) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	log.SetFormatter(&logrus.JSONFormatter{})
	analysisLogger := NewAnalysisLogger(log)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		analysisLogger.LogBetDecision("HOME", "LEAN", 1.5, 0.02, 0.54, 0.525, 1.9)
	}
}
