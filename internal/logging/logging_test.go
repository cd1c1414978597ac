package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging()
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestSetLevel(t *testing.T) {
	logger := SetupLogging()

	assert.NoError(t, SetLevel(logger, "debug"))
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.Error(t, SetLevel(logger, "chatty"))
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestLogData_Log(t *testing.T) {
	logger, buf := newBufferedLogger()
	logData := NewLogData(logger)

	logData.AddData("accountKey", "0001/100")
	logData.AddTiming("lookupMs")()
	logData.AddToExistingTiming("lookupMs")()
	logData.Log().Info("done")

	entry := lastLine(t, buf)
	assert.Equal(t, "info", entry["loglevel"])
	assert.Equal(t, "0001/100", entry["accountKey"])
	assert.Contains(t, entry, "lookupMs")
}

func TestLoggingWrapper(t *testing.T) {
	logger, buf := newBufferedLogger()
	handler := LoggingWrapper("Test", logger, func(w http.ResponseWriter, _ *http.Request, logData *LogData) error {
		logData.AddData("seen", true)
		w.WriteHeader(http.StatusNoContent)
		return nil
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	entry := lastLine(t, buf)
	assert.Equal(t, "Handler.Test.Complete", entry["msg"])
	assert.Equal(t, true, entry["seen"])
}

type pingOutput struct {
	Body struct {
		HasLogData bool `json:"hasLogData"`
	}
}

func TestMiddleware(t *testing.T) {
	logger, buf := newBufferedLogger()
	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(logger))

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		logData := GetLogData(ctx)
		out.Body.HasLogData = logData != nil
		if logData != nil {
			logData.AddData("pinged", true)
		}
		return out, nil
	})

	resp := api.Get("/ping")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		HasLogData bool `json:"hasLogData"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.HasLogData)
	entry := lastLine(t, buf)
	assert.Equal(t, "Handler.ping.Complete", entry["msg"])
	assert.Equal(t, true, entry["pinged"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
}

func TestGetLogData_OutsideRequest(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))
}
