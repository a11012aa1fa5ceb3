package httpapi

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/leopoldovcfonseca/ptashelf/internal/app/ptas"
)

// describeError maps any handler failure to a status, code and message.
// Unclassified errors are backend failures.
func describeError(err error) (int, string, string) {
	if ae := (*ptas.Error)(nil); errors.As(err, &ae) {
		status := ae.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return status, ae.Code, ae.Message
	}
	return http.StatusInternalServerError, ptas.CodeBackendFailure, err.Error()
}

func logFailure(r *http.Request, status int, err error) {
	log.Printf("request failed method=%s path=%s request_id=%s status=%d err=%v",
		r.Method, r.URL.Path, requestID(r.Context()), status, err)
}

func requestID(ctx context.Context) string {
	return middleware.GetReqID(ctx)
}

// failPage is the central error handler for the HTML routes.
func (h *pages) failPage(w http.ResponseWriter, r *http.Request, err error) {
	status, _, msg := describeError(err)
	logFailure(r, status, err)
	render(w, status, "error", errorPage{
		Base:      h.base,
		Status:    status,
		Message:   msg,
		RequestID: requestID(r.Context()),
	})
}

func (h *pages) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	h.failPage(w, r, &ptas.Error{Status: http.StatusBadRequest, Code: "BAD_REQUEST", Message: "malformed form body", Cause: err})
}
