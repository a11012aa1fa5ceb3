package httpapi

import (
	"net/http"

	"github.com/leopoldovcfonseca/ptashelf/internal/domain"
)

// pages serves the HTML form UI. Every handler makes one service call and
// either renders, redirects, or hands the error to failPage.
type pages struct {
	*Server
	base string
}

func (h *pages) list(w http.ResponseWriter, r *http.Request) {
	page, err := h.Ptas.List(r.Context(), r.URL.Query().Get("pageToken"))
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	render(w, http.StatusOK, "list", listPage{
		Base:          h.base,
		Ptas:          page.Ptas,
		NextPageToken: page.NextPageToken,
	})
}

func (h *pages) addForm(w http.ResponseWriter, _ *http.Request) {
	render(w, http.StatusOK, "form", formPage{
		Base:   h.base,
		Action: "Add",
		Fields: fieldViews(domain.PtaFields{}),
	})
}

func (h *pages) add(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		h.badRequest(w, r, err)
		return
	}
	p, err := h.Ptas.Create(r.Context(), domain.FieldsFromMap(formValues(r.PostForm)))
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	http.Redirect(w, r, ptaPath(h.base, p.ID), http.StatusFound)
}

func (h *pages) editForm(w http.ResponseWriter, r *http.Request) {
	p, err := h.Ptas.Get(r.Context(), ptaIDParam(r))
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	render(w, http.StatusOK, "form", formPage{
		Base:   h.base,
		Action: "Edit",
		Pta:    p,
		Fields: fieldViews(p.PtaFields),
	})
}

func (h *pages) edit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		h.badRequest(w, r, err)
		return
	}
	p, err := h.Ptas.Update(r.Context(), ptaIDParam(r), domain.PatchFromMap(formValues(r.PostForm)))
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	http.Redirect(w, r, ptaPath(h.base, p.ID), http.StatusFound)
}

func (h *pages) view(w http.ResponseWriter, r *http.Request) {
	p, err := h.Ptas.Get(r.Context(), ptaIDParam(r))
	if err != nil {
		h.failPage(w, r, err)
		return
	}
	render(w, http.StatusOK, "view", viewPage{
		Base:   h.base,
		Pta:    p,
		Fields: fieldViews(p.PtaFields),
	})
}

func (h *pages) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Ptas.Delete(r.Context(), ptaIDParam(r)); err != nil {
		h.failPage(w, r, err)
		return
	}
	http.Redirect(w, r, h.base, http.StatusFound)
}
