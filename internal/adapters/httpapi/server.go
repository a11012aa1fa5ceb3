package httpapi

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/leopoldovcfonseca/ptashelf/internal/app/ptas"
	"github.com/leopoldovcfonseca/ptashelf/internal/domain"
)

const maxBodyBytes = 1 << 20

// Server holds the dependencies shared by the HTML and JSON handlers.
type Server struct {
	Ptas *ptas.Service
}

func NewServer(ptasSvc *ptas.Service) *Server {
	return &Server{Ptas: ptasSvc}
}

func ptaIDParam(r *http.Request) domain.PtaID {
	return domain.PtaID(chi.URLParam(r, "id"))
}

func ptaPath(base string, id domain.PtaID) string {
	return base + "/" + url.PathEscape(string(id))
}

// formValues keeps the first value of every submitted key.
func formValues(v url.Values) map[string]string {
	out := make(map[string]string, len(v))
	for k, vs := range v {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}
