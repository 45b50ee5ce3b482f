package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otabase/asnpath"
	"github.com/otabase/asnpath/pkg/dsl"
)

func testHandler(t *testing.T, opts ...asnpath.Option) http.Handler {
	t.Helper()
	b := dsl.New()
	b.Message("DL-Message", dsl.Sequence(
		dsl.F("transactionID", dsl.Integer()),
		dsl.F("criticalExtensions", dsl.Choice(
			dsl.F("c1", dsl.Sequence(
				dsl.F("nasList", dsl.SequenceOf(dsl.OctetString().Named("dedicatedInfoNAS")).Size(1, 11)),
			)),
			dsl.F("spare", dsl.Null()),
		)),
	))
	b.Message("UL-Message", dsl.Sequence(
		dsl.F("flag", dsl.BitString()),
	))
	provider, err := b.Build()
	require.NoError(t, err)

	ex, err := asnpath.New(provider, opts...)
	require.NoError(t, err)
	return NewHandler(ex)
}

func TestGetHealth(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest("GET", "/info", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "asnpath-http", resp["app"])
	assert.Equal(t, asnpath.Version, resp["version"])
	assert.Equal(t, "0.3.0", resp["api_version"])
}

func TestGetMessages(t *testing.T) {
	handler := testHandler(t)

	req := httptest.NewRequest("GET", "/messages", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var messages []string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	assert.Equal(t, []string{"DL-Message", "UL-Message"}, messages)
}

func TestExtract(t *testing.T) {
	handler := testHandler(t)

	body, _ := json.Marshal(ExtractRequest{Message: "DL-Message"})
	req := httptest.NewRequest("POST", "/extract", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp ExtractResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DL-Message", resp.Message)
	assert.Equal(t, 3, resp.Count)
	require.Len(t, resp.Paths, 3)
	assert.Equal(t, []string{"DL-Message", "transactionID"}, resp.Paths[0].Fields)
	assert.Equal(t, []string{"c1"}, resp.Paths[1].Decisions)
}

func TestExtract_TargetFilter(t *testing.T) {
	handler := testHandler(t)

	body, _ := json.Marshal(ExtractRequest{Message: "DL-Message", Targets: []string{"integer"}})
	req := httptest.NewRequest("POST", "/extract", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp ExtractResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, []string{"DL-Message", "transactionID"}, resp.Paths[0].Fields)
}

func TestExtract_UnknownMessage(t *testing.T) {
	handler := testHandler(t)

	body, _ := json.Marshal(ExtractRequest{Message: "Ghost"})
	req := httptest.NewRequest("POST", "/extract", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExtract_BadRequest(t *testing.T) {
	handler := testHandler(t)

	for name, body := range map[string]string{
		"malformed body":  `{`,
		"missing message": `{}`,
		"unknown target":  `{"message":"DL-Message","targets":["float"]}`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/extract", strings.NewReader(body))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestExtract_BudgetExhausted(t *testing.T) {
	handler := testHandler(t, asnpath.WithBudget(1))

	body, _ := json.Marshal(ExtractRequest{Message: "DL-Message"})
	req := httptest.NewRequest("POST", "/extract", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestMetrics(t *testing.T) {
	handler := testHandler(t)

	body, _ := json.Marshal(ExtractRequest{Message: "DL-Message"})
	req := httptest.NewRequest("POST", "/extract", bytes.NewReader(body))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	metricsBody := w.Body.String()
	assert.Contains(t, metricsBody, `asnpath_http_requests_total{code="200",handler="extract"} 1`)
	assert.Contains(t, metricsBody, "asnpath_http_paths_extracted_total 3")
}

func TestOpenAPIDocument(t *testing.T) {
	handler := testHandler(t)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/openapi.yaml", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi: 3.0.3")
}

func TestCORSPreflight(t *testing.T) {
	handler := testHandler(t)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/extract", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
