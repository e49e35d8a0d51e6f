package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Borislavv/go-ash-intersect/model"
	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 16

type handlers struct {
	svc          Intersector
	logger       *slog.Logger
	shuttingDown func() bool
}

type errorResponse struct {
	Error   string         `json:"error"`
	Outcome *model.Outcome `json:"outcome,omitempty"`
}

func (h *handlers) healthz(w http.ResponseWriter, _ *http.Request) {
	if h.shuttingDown() {
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *handlers) admit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(InvocationIDHeader, uuid.NewString())

	req, err := decode(r)
	if err != nil {
		h.write(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	outcome, err := h.svc.Admit(req)
	if err != nil {
		h.fail(w, err)
		return
	}
	h.write(w, http.StatusOK, outcome)
}

func (h *handlers) intersect(w http.ResponseWriter, r *http.Request) {
	req, err := decode(r)
	if err != nil {
		w.Header().Set(InvocationIDHeader, uuid.NewString())
		h.write(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	report, err := h.svc.Run(r.Context(), req)
	if report != nil && report.ID != "" {
		w.Header().Set(InvocationIDHeader, report.ID)
	} else {
		w.Header().Set(InvocationIDHeader, uuid.NewString())
	}
	if err != nil {
		h.fail(w, err)
		return
	}
	h.write(w, http.StatusOK, report)
}

func (h *handlers) fail(w http.ResponseWriter, err error) {
	var rejection *model.RejectionError
	switch {
	case errors.As(err, &rejection):
		h.write(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Outcome: &rejection.Outcome})
	case errors.Is(err, model.ErrInvalidRequest):
		h.write(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("request failed", "error", err.Error())
		h.write(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

func (h *handlers) write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response", "error", err.Error())
	}
}

func decode(r *http.Request) (model.Request, error) {
	var req model.Request
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("%w: decode body: %v", model.ErrInvalidRequest, err)
	}
	return req, nil
}
