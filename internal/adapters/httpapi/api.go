package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/oapi-codegen/nullable"

	"github.com/leopoldovcfonseca/ptashelf/internal/app/ptas"
	"github.com/leopoldovcfonseca/ptashelf/internal/domain"
)

type api struct {
	*Server
}

type listResponse struct {
	Items         []domain.Pta `json:"items"`
	NextPageToken string       `json:"nextPageToken,omitempty"`
}

// ptaPatchRequest is the PUT body. Omitted keys are left unchanged and
// explicit nulls clear the field.
type ptaPatchRequest struct {
	ProcedureNumber    nullable.Nullable[string] `json:"procedure_number,omitempty"`
	Taxpayer           nullable.Nullable[string] `json:"taxpayer,omitempty"`
	Attorney           nullable.Nullable[string] `json:"attorney,omitempty"`
	R3                 nullable.Nullable[string] `json:"r3,omitempty"`
	OldExecution       nullable.Nullable[string] `json:"old_execution,omitempty"`
	OldProcess         nullable.Nullable[string] `json:"old_process,omitempty"`
	NewExecution       nullable.Nullable[string] `json:"new_execution,omitempty"`
	AssessmentIssuedOn nullable.Nullable[string] `json:"assessment_issued_on,omitempty"`
	Phase              nullable.Nullable[string] `json:"phase,omitempty"`
	Location           nullable.Nullable[string] `json:"location,omitempty"`
	Status             nullable.Nullable[string] `json:"status,omitempty"`
}

func (b ptaPatchRequest) patch() domain.PtaPatch {
	p := domain.PtaPatch{}
	for key, n := range map[string]nullable.Nullable[string]{
		"procedure_number":     b.ProcedureNumber,
		"taxpayer":             b.Taxpayer,
		"attorney":             b.Attorney,
		"r3":                   b.R3,
		"old_execution":        b.OldExecution,
		"old_process":          b.OldProcess,
		"new_execution":        b.NewExecution,
		"assessment_issued_on": b.AssessmentIssuedOn,
		"phase":                b.Phase,
		"location":             b.Location,
		"status":               b.Status,
	} {
		if v, ok := optionalString(n); ok {
			p[key] = v
		}
	}
	return p
}

func optionalString(n nullable.Nullable[string]) (string, bool) {
	if !n.IsSpecified() {
		return "", false
	}
	if n.IsNull() {
		return "", true
	}
	v, err := n.Get()
	if err != nil {
		return "", false
	}
	return v, true
}

type errorResponse struct {
	Error struct {
		Code      string                    `json:"code"`
		Message   string                    `json:"message"`
		RequestID nullable.Nullable[string] `json:"requestId,omitempty"`
	} `json:"error"`
}

func (h *api) list(w http.ResponseWriter, r *http.Request) {
	page, err := h.Ptas.List(r.Context(), r.URL.Query().Get("pageToken"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: page.Ptas, NextPageToken: page.NextPageToken})
}

func (h *api) create(w http.ResponseWriter, r *http.Request) {
	var body domain.PtaFields
	if err := decodeJSON(w, r, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := h.Ptas.Create(r.Context(), body)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *api) get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Ptas.Get(r.Context(), ptaIDParam(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *api) update(w http.ResponseWriter, r *http.Request) {
	var body ptaPatchRequest
	if err := decodeJSON(w, r, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	p, err := h.Ptas.Update(r.Context(), ptaIDParam(r), body.patch())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *api) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Ptas.Delete(r.Context(), ptaIDParam(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

// fail is the central error handler for the JSON routes.
func (h *api) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, code, msg := describeError(err)
	logFailure(r, status, err)

	var resp errorResponse
	resp.Error.Code = code
	resp.Error.Message = msg
	if rid := requestID(r.Context()); rid != "" {
		resp.Error.RequestID = nullable.NewNullableWithValue(rid)
	}
	writeJSON(w, status, resp)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return &ptas.Error{Status: http.StatusBadRequest, Code: "BAD_REQUEST", Message: fmt.Sprintf("malformed JSON body: %v", err), Cause: err}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
