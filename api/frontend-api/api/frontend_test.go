// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package frontend_api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internal_frontend "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/frontend"
	internal_normalizers "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/normalizers"
	"github.com/rapidaai/gujarati-frontend/pkg/commons"
)

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, err := commons.NewApplicationLogger(commons.WithLevel("error"))
	require.NoError(t, err)
	service, err := internal_frontend.NewService(logger)
	require.NoError(t, err)

	fApi := NewFrontendApi(logger, service)
	engine := gin.New()
	v1 := engine.Group("/v1")
	v1.POST("/normalize", fApi.Normalize)
	v1.POST("/phonemize", fApi.Phonemize)
	v1.POST("/analyze", fApi.Analyze)
	v1.POST("/batch/normalize", fApi.BatchNormalize)
	v1.GET("/numerals/:value", fApi.Numeral)
	v1.GET("/stream", fApi.Stream)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestNormalizeHandler(t *testing.T) {
	engine := newEngine(t)

	tests := []struct {
		name       string
		body       interface{}
		status     int
		normalized string
	}{
		{"cardinal", NormalizeRequest{Text: "મારી પાસે ૨૩ કિતાબો છે."}, http.StatusOK, "મારી પાસે ત્રેવીસ કિતાબો છે"},
		{"empty text", NormalizeRequest{Text: ""}, http.StatusOK, ""},
		{"invalid characters", NormalizeRequest{Text: "§©®™"}, http.StatusUnprocessableEntity, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, engine, http.MethodPost, "/v1/normalize", tt.body)
			require.Equal(t, tt.status, w.Code)

			var got map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.normalized, got["normalized"])
				assert.NotEmpty(t, got["id"])
			} else {
				assert.Contains(t, got["error"], "invalid characters")
			}
		})
	}
}

func TestNormalizeHandler_MalformedBody(t *testing.T) {
	engine := newEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/normalize", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPhonemizeHandler(t *testing.T) {
	engine := newEngine(t)

	w := doJSON(t, engine, http.MethodPost, "/v1/phonemize", PhonemizeRequest{Text: "કેમ"})
	require.Equal(t, http.StatusOK, w.Code)

	var got internal_frontend.PhonemizeResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"/k/", "/eː/", "/m/"}, got.Phonemes)

	w = doJSON(t, engine, http.MethodPost, "/v1/phonemize", PhonemizeRequest{Text: "123"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAnalyzeHandler(t *testing.T) {
	engine := newEngine(t)

	w := doJSON(t, engine, http.MethodPost, "/v1/analyze", AnalyzeRequest{Text: "તમે કેમ છો?"})
	require.Equal(t, http.StatusOK, w.Code)

	var got internal_frontend.Analysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Sentences, 1)
	assert.Equal(t, "question", string(got.Sentences[0].Type))

	w = doJSON(t, engine, http.MethodPost, "/v1/analyze", AnalyzeRequest{Text: "કેમ", SentenceType: "shout"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, engine, http.MethodPost, "/v1/analyze", AnalyzeRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBatchNormalizeHandler(t *testing.T) {
	engine := newEngine(t)

	w := doJSON(t, engine, http.MethodPost, "/v1/batch/normalize", BatchNormalizeRequest{Texts: []string{"૨૩", "§©®™", "૧૦૦મો"}})
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Results []internal_frontend.NormalizeResult `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Results, 3)
	assert.Equal(t, "ત્રેવીસ", got.Results[0].Normalized)
	assert.Equal(t, internal_normalizers.ErrorMarker, got.Results[1].Normalized)
	assert.Equal(t, "સોમો", got.Results[2].Normalized)

	w = doJSON(t, engine, http.MethodPost, "/v1/batch/normalize", BatchNormalizeRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNumeralHandler(t *testing.T) {
	engine := newEngine(t)

	w := doJSON(t, engine, http.MethodGet, "/v1/numerals/42", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got internal_frontend.NumeralReading
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "બેતાલીસ", got.Cardinal)
	assert.Equal(t, "forty-two", got.English)

	w = doJSON(t, engine, http.MethodGet, "/v1/numerals/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStreamHandler(t *testing.T) {
	server := httptest.NewServer(newEngine(t))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/v1/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("૫")))
	var frame StreamFrame
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "પાંચ", frame.Normalized)
	assert.Equal(t, []string{"/p/", "/aː/", "/ŋ/", "/tʃ/"}, frame.Phonemes)
	assert.Empty(t, frame.Error)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("§©®™")))
	frame = StreamFrame{}
	require.NoError(t, conn.ReadJSON(&frame))
	assert.NotEmpty(t, frame.Error)
}

func TestWriteFrame_ClosedConnection(t *testing.T) {
	conns := make(chan *websocket.Conn, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := streamUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conns <- conn
	}))
	defer server.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	defer client.Close()

	conn := <-conns
	require.NoError(t, writeFrame(conn, StreamFrame{Text: "કેમ"}))

	require.NoError(t, conn.Close())
	assert.Error(t, writeFrame(conn, StreamFrame{Text: "કેમ"}))
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, err := commons.NewApplicationLogger(commons.WithLevel("error"))
	require.NoError(t, err)

	client, mock := redismock.NewClientMock()
	hApi := NewHealthCheckApi(logger, client)
	engine := gin.New()
	engine.GET("/readiness/", hApi.Readiness)
	engine.GET("/healthz/", hApi.Healthz)

	mock.ExpectPing().SetVal("PONG")
	w := doJSON(t, engine, http.MethodGet, "/readiness/", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	mock.ExpectPing().SetErr(errors.New("connection refused"))
	w = doJSON(t, engine, http.MethodGet, "/readiness/", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/healthz/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
