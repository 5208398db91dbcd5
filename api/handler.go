// Package api - Request handlers
// Handlers decode input, call the parser and estimator, and encode output.
// No cost logic belongs here.
package api

import (
	"bytes"
	stderrors "errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"tfcost/core/catalog"
	"tfcost/core/pricing"
	"tfcost/core/scanner"
	"tfcost/core/types"
	apperrors "tfcost/internal/errors"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 5 << 20

// Handler serves the pricing endpoints
type Handler struct {
	parser        *scanner.Parser
	classifier    *catalog.Classifier
	estimator     *pricing.Estimator
	defaultRegion string
	logger        *zap.Logger
}

// NewHandler creates a handler
func NewHandler(parser *scanner.Parser, classifier *catalog.Classifier, estimator *pricing.Estimator, defaultRegion string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultRegion == "" {
		defaultRegion = "us-east-1"
	}
	return &Handler{
		parser:        parser,
		classifier:    classifier,
		estimator:     estimator,
		defaultRegion: defaultRegion,
		logger:        logger,
	}
}

// PricingStatus handles GET /api/pricing
func (h *Handler) PricingStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, StatusResponse{Status: "ok", Message: "Pricing API is ready"}, http.StatusOK)
}

// Price handles POST /api/pricing
func (h *Handler) Price(w http.ResponseWriter, r *http.Request) {
	var req PricingRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	trimmed := bytes.TrimSpace(req.Resources)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		writeError(w, r, apperrors.Input("invalid request: resources array is required"))
		return
	}

	var resources []types.NormalizedResource
	if err := json.Unmarshal(trimmed, &resources); err != nil {
		writeError(w, r, apperrors.Wrap(apperrors.TypeInput, "invalid request: malformed resources", err))
		return
	}
	for i := range resources {
		if resources[i].ServiceCode == "" {
			resources[i].ServiceCode = h.classifier.Classify(resources[i].ResourceType)
		}
	}

	h.logger.Debug("pricing request",
		zap.String("request_id", RequestIDFrom(r.Context())),
		zap.Int("resources", len(resources)),
	)
	writeJSON(w, h.estimator.Estimate(r.Context(), resources, h.region(req.Region)), http.StatusOK)
}

// Parse handles POST /api/parse
func (h *Handler) Parse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result := h.parser.Parse(req.Config)
	writeJSON(w, ParseResponse{
		Resources:    result.Resources,
		ServiceCodes: result.ServiceCodes,
		Warnings:     result.Warnings,
	}, http.StatusOK)
}

// Estimate handles POST /api/estimate
func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result := h.parser.Parse(req.Config)
	report := h.estimator.Estimate(r.Context(), result.Resources, h.region(req.Region))
	writeJSON(w, report, http.StatusOK)
}

func (h *Handler) region(region string) string {
	if region == "" {
		return h.defaultRegion
	}
	return region
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.Wrap(apperrors.TypeInput, "invalid request body", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := ErrorResponse{
		Error:     err.Error(),
		Type:      string(apperrors.TypeOf(err)),
		RequestID: RequestIDFrom(r.Context()),
	}
	var e *apperrors.Error
	if stderrors.As(err, &e) {
		resp.Error = e.Message
	}
	writeJSON(w, resp, apperrors.HTTPStatus(err))
}
