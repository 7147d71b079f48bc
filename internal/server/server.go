package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/mortgage-schedule/internal/config"
	"github.com/iwvelando/mortgage-schedule/internal/metrics"
	"github.com/iwvelando/mortgage-schedule/internal/mortgage"
	"github.com/iwvelando/mortgage-schedule/pkg/constants"
	"github.com/iwvelando/mortgage-schedule/pkg/output"
	"github.com/iwvelando/mortgage-schedule/pkg/schedule"
	"github.com/iwvelando/mortgage-schedule/pkg/validation"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger          *zap.Logger
	maxBodySize     int64
	maxLoanTerm     int
	defaultSchedule schedule.Kind
	version         string
}

// Options tunes the request limits and defaults of the handler. Zero values
// select the package defaults.
type Options struct {
	MaxBodySize     int64
	MaxLoanTerm     int
	DefaultSchedule schedule.Kind
	Version         string
}

// NewHandler constructs the HTTP handler that serves the schedule API and
// Prometheus metrics.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &handler{
		logger:          logger,
		maxBodySize:     opts.MaxBodySize,
		maxLoanTerm:     opts.MaxLoanTerm,
		defaultSchedule: opts.DefaultSchedule,
		version:         strings.TrimSpace(opts.Version),
	}
	if h.maxBodySize <= 0 {
		h.maxBodySize = constants.DefaultMaxBodySizeBytes
	}
	if h.maxLoanTerm <= 0 || h.maxLoanTerm > constants.MaxRequestLoanTermMonths {
		h.maxLoanTerm = constants.MaxRequestLoanTermMonths
	}
	if h.defaultSchedule == "" {
		h.defaultSchedule = schedule.Kind(constants.DefaultSchedule)
	}
	if h.version == "" {
		h.version = "dev"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/schedule", h.handleSchedule)
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

// scheduleRequest is accepted as JSON or, with a YAML content type, as YAML.
type scheduleRequest struct {
	LoanTerm     int     `json:"loanTerm" yaml:"loanTerm"`
	LoanAmount   float64 `json:"loanAmount" yaml:"loanAmount"`
	InterestRate float64 `json:"interestRate" yaml:"interestRate"`
	Schedule     string  `json:"schedule" yaml:"schedule"`
}

type scheduleResponse struct {
	MortgageType       string        `json:"mortgageType"`
	Schedule           string        `json:"schedule"`
	LoanAmount         float64       `json:"loanAmount"`
	TotalInterest      float64       `json:"totalInterest"`
	TotalAmount        float64       `json:"totalAmount"`
	EffectiveRate      *int          `json:"effectiveRate,omitempty"`
	EffectiveRateError string        `json:"effectiveRateError,omitempty"`
	Rows               []scheduleRow `json:"rows"`
	CSV                string        `json:"csv"`
	Warnings           []string      `json:"warnings,omitempty"`
	Duration           string        `json:"duration"`
}

type scheduleRow struct {
	Month            int     `json:"month"`
	TotalPayment     float64 `json:"totalPayment"`
	InterestPayment  float64 `json:"interestPayment"`
	PrincipalPayment float64 `json:"principalPayment"`
	RemainingBalance float64 `json:"remainingBalance"`
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSchedule"

	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err), op)
		return
	}

	req, err := decodeRequest(r.Header.Get("Content-Type"), body)
	if err != nil {
		metrics.ObserveSchedule("", metrics.StatusInvalid, 0)
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	if strings.TrimSpace(req.Schedule) == "" {
		req.Schedule = string(h.defaultSchedule)
	}
	// Unrecognised kinds are reported as "unknown" to bound label cardinality.
	kind, _ := schedule.ParseKind(req.Schedule)
	kindLabel := string(kind)

	// The schedule is materialised month by month, so the term bounds memory.
	if req.LoanTerm > h.maxLoanTerm {
		metrics.ObserveSchedule(kindLabel, metrics.StatusInvalid, 0)
		h.respondError(w, http.StatusBadRequest,
			fmt.Sprintf("loan term of %d months exceeds the limit of %d months", req.LoanTerm, h.maxLoanTerm), op)
		return
	}

	conf := config.MortgageConfig{
		LoanTerm:     req.LoanTerm,
		LoanAmount:   req.LoanAmount,
		InterestRate: req.InterestRate,
		Schedule:     req.Schedule,
	}

	m, err := mortgage.NewFromConfig(h.logger, conf)
	if err != nil {
		status, metricStatus := http.StatusInternalServerError, metrics.StatusError
		if errors.Is(err, schedule.ErrInvalidParameter) || errors.Is(err, schedule.ErrUnknownKind) {
			status, metricStatus = http.StatusBadRequest, metrics.StatusInvalid
		}
		metrics.ObserveSchedule(kindLabel, metricStatus, 0)
		h.respondError(w, status, err.Error(), op)
		return
	}

	response := buildResponse(m)
	response.Warnings = validation.ValidateMortgage(validation.MortgageConfig{
		LoanTerm:     req.LoanTerm,
		LoanAmount:   req.LoanAmount,
		InterestRate: req.InterestRate,
		Schedule:     req.Schedule,
	})

	elapsed := time.Since(start)
	response.Duration = elapsed.String()
	metrics.ObserveSchedule(kindLabel, metrics.StatusOK, elapsed.Seconds())

	h.logger.Info("schedule computed",
		zap.String("op", op),
		zap.String("type", response.MortgageType),
		zap.Int("months", len(response.Rows)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func decodeRequest(contentType string, body []byte) (scheduleRequest, error) {
	var req scheduleRequest
	if strings.Contains(strings.ToLower(contentType), "yaml") {
		err := yaml.Unmarshal(body, &req)
		return req, err
	}
	err := json.Unmarshal(body, &req)
	return req, err
}

func buildResponse(m *mortgage.Mortgage) scheduleResponse {
	reports := m.RepaymentSchedule()
	rows := make([]scheduleRow, 0, len(reports))
	for _, report := range reports {
		rows = append(rows, scheduleRow{
			Month:            report.Month,
			TotalPayment:     report.TotalPayment.InexactFloat64(),
			InterestPayment:  report.InterestPayment.InexactFloat64(),
			PrincipalPayment: report.PrincipalPayment.InexactFloat64(),
			RemainingBalance: report.RemainingBalance.InexactFloat64(),
		})
	}

	response := scheduleResponse{
		MortgageType:  m.MortgageType(),
		Schedule:      string(m.Kind()),
		LoanAmount:    m.Parameters().LoanAmount().InexactFloat64(),
		TotalInterest: m.PercentAmount().InexactFloat64(),
		TotalAmount:   m.TotalAmount().InexactFloat64(),
		Rows:          rows,
		CSV:           output.CsvString(m),
	}

	if rate, err := m.EffectiveRate(); err == nil {
		response.EffectiveRate = &rate
	} else {
		response.EffectiveRateError = err.Error()
	}

	return response
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("schedule request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
