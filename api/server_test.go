package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfcost/clouds/aws"
	"tfcost/core/catalog"
	"tfcost/core/pricing"
	"tfcost/core/scanner"
	"tfcost/core/types"
)

const hourlyDoc = `{"terms":{"OnDemand":{"S.T":{"priceDimensions":{"S.T.D":{"unit":"Hrs","pricePerUnit":{"USD":"0.0416"}}}}}}}`

type recordingCatalog struct {
	calls   int32
	lastLoc atomic.Value
}

func (c *recordingCatalog) Query(_ context.Context, _ string, filters []types.PricingFilter) ([]string, error) {
	atomic.AddInt32(&c.calls, 1)
	c.lastLoc.Store(filters[0].Value)
	return []string{hourlyDoc}, nil
}

func newTestServer(t *testing.T) (*Server, *recordingCatalog) {
	t.Helper()
	tables := catalog.Default()
	classifier := catalog.NewClassifier(tables)
	parser := scanner.NewParser(classifier, aws.NewNormalizer(tables))
	cat := &recordingCatalog{}
	estimator := pricing.NewEstimator(cat, tables, pricing.DefaultEstimatorConfig(), nil)

	handler := NewHandler(parser, classifier, estimator, "us-east-1", nil)
	return NewServer(Config{Version: "test"}, handler, nil), cat
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestPricingStatus(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/api/pricing", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Pricing API is ready", body["message"])
}

func TestHealthAndVersion(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", decode(t, rec)["status"])

	rec = do(t, s, http.MethodGet, "/version", "")
	assert.Equal(t, "test", decode(t, rec)["version"])
}

func TestPriceRejectsBadResources(t *testing.T) {
	tests := map[string]string{
		"missing":   `{"region":"us-east-1"}`,
		"object":    `{"resources":{"type":"EC2"}}`,
		"string":    `{"resources":"EC2"}`,
		"null":      `{"resources":null}`,
		"not json":  `resources`,
		"bad specs": `{"resources":[{"type":"EC2","specs":{"count":"two"}}]}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			s, cat := newTestServer(t)
			rec := do(t, s, http.MethodPost, "/api/pricing", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decode(t, rec)
			assert.NotEmpty(t, resp["error"])
			assert.Equal(t, "INPUT_ERROR", resp["type"])
			assert.Zero(t, atomic.LoadInt32(&cat.calls))
		})
	}
}

func TestPriceResources(t *testing.T) {
	s, cat := newTestServer(t)
	body := `{
	  "region": "eu-west-1",
	  "resources": [
	    {"type":"EC2","name":"web","resourceType":"aws_instance",
	     "specs":{"instanceType":"t3.medium","count":1,"storage":{"size":8,"type":"gp2"},"operatingSystem":"Linux"}},
	    {"type":"Other","name":"nat","resourceType":"aws_nat_gateway","specs":{}}
	  ]
	}`

	rec := do(t, s, http.MethodPost, "/api/pricing", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report types.EstimateReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.Equal(t, "eu-west-1", report.Region)
	require.Len(t, report.Resources, 2)
	assert.False(t, report.Resources[0].Pricing.Failed)
	assert.True(t, report.Resources[1].Pricing.Failed)
	assert.Equal(t, "30.37", report.Total.Monthly.StringFixed(2))
	assert.Equal(t, int32(1), atomic.LoadInt32(&cat.calls))
	assert.Equal(t, "EU (Ireland)", cat.lastLoc.Load())
}

func TestPriceEmptyResources(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodPost, "/api/pricing", `{"resources":[]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "us-east-1", body["region"])
	assert.Empty(t, body["resources"])
}

func TestParseEndpoint(t *testing.T) {
	s, cat := newTestServer(t)
	body, err := json.Marshal(ParseRequest{Config: `
resource "aws_instance" "web" {
  instance_type = "t3.micro"
}
resource "aws_s3_bucket" "logs" {
  bucket = "logs"
}
`})
	require.NoError(t, err)

	rec := do(t, s, http.MethodPost, "/api/parse", string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ParseResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Resources, 2)
	assert.Equal(t, types.KindEC2, resp.Resources[0].Kind)
	assert.Equal(t, []string{"AmazonEC2", "AmazonS3"}, resp.ServiceCodes)
	assert.Zero(t, atomic.LoadInt32(&cat.calls))
}

func TestEstimateEndpoint(t *testing.T) {
	s, cat := newTestServer(t)
	body, err := json.Marshal(EstimateRequest{Config: `resource "aws_instance" "web" {
  instance_type = "t3.medium"
}`})
	require.NoError(t, err)

	rec := do(t, s, http.MethodPost, "/api/estimate", string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var report types.EstimateReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Len(t, report.Resources, 1)
	assert.Equal(t, "aws_instance.web", report.Resources[0].Address)
	assert.Equal(t, int32(1), atomic.LoadInt32(&cat.calls))
}

func TestRequestIDPropagation(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/pricing", strings.NewReader(`{}`))
	req.Header.Set(RequestIDHeader, "req-fixed")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, "req-fixed", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-fixed", decode(t, rec)["requestId"])

	rec = do(t, s, http.MethodGet, "/health", "")
	assert.True(t, strings.HasPrefix(rec.Header().Get(RequestIDHeader), "req-"))
}

func TestUnknownRoute(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Type)
	assert.Equal(t, "route not found: /api/nothing", body.Error)
	assert.NotEmpty(t, body.RequestID)

	rec = do(t, s, http.MethodDelete, "/api/pricing", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
