package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/agegate"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/content"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/domain"
	"github.com/sayurihanki/jenhanki-luxuryretail-eds/internal/transport/http/middleware"
)

// DecisionRepository is the minimal interface the gate handler requires
// from the durable decision store.
type DecisionRepository interface {
	Get(ctx context.Context, visitorID, key string) (string, error)
	Put(ctx context.Context, visitorID, key, value string) error
}

// GateHandler serves authored pages and runs the age gate in front of
// pages that carry an age-gate block.
type GateHandler struct {
	content   content.Service
	decisions DecisionRepository
}

func NewGateHandler(svc content.Service, decisions DecisionRepository) *GateHandler {
	return &GateHandler{content: svc, decisions: decisions}
}

// GetPage serves the authored page. An unverified visitor on a gated page
// receives only the gate dialog; a verified one receives the page content.
func (h *GateHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page, err := h.content.GetPage(r.Context(), slug)
	if err != nil {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}

	block := page.AgeGateBlock()
	if block == nil {
		h.servePage(w, page, nil, nil)
		return
	}

	view := newHTMLView(gateAction(slug))
	chrome := &pageChrome{}
	ctrl, err := agegate.Mount(r.Context(), block, agegate.Deps{
		Store:  h.decisionStore(w, r),
		View:   view,
		Chrome: chrome,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not render page")
		return
	}
	if !ctrl.Open() {
		h.servePage(w, page, nil, nil)
		return
	}
	h.servePage(w, page, view, chrome)
}

// Submit runs the verification state machine on a posted date of birth.
// A verified submission persists the decision in both mechanisms and
// redirects back to the page; invalid and under-age submissions re-render
// the dialog with the inline error.
func (h *GateHandler) Submit(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page, err := h.content.GetPage(r.Context(), slug)
	if err != nil {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}
	block := page.AgeGateBlock()
	if block == nil {
		writeError(w, http.StatusBadRequest, "page is not age-gated")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	view := newHTMLView(gateAction(slug))
	view.month = r.PostFormValue("month")
	view.day = r.PostFormValue("day")
	view.year = r.PostFormValue("year")

	chrome := &pageChrome{}
	ctrl, err := agegate.Mount(r.Context(), block, agegate.Deps{
		Store:  h.decisionStore(w, r),
		View:   view,
		Chrome: chrome,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not render page")
		return
	}
	if !ctrl.Open() || ctrl.Submit(r.Context()) == agegate.StateVerified {
		http.Redirect(w, r, "/v1/pages/"+slug, http.StatusSeeOther)
		return
	}

	h.writePage(w, http.StatusUnprocessableEntity, page, view, chrome)
}

// decisionStore assembles the per-request decision store: the DynamoDB
// repo scoped to the current visitor as the durable mechanism, and the
// response cookie as the time-bounded one. Either half may be absent.
func (h *GateHandler) decisionStore(w http.ResponseWriter, r *http.Request) *agegate.DecisionStore {
	store := &agegate.DecisionStore{
		TimeBound: cookieStore{r: r, w: w},
	}
	if visitorID, ok := middleware.VisitorFromContext(r.Context()); ok && h.decisions != nil {
		store.Durable = visitorDurable{repo: h.decisions, visitorID: visitorID}
	}
	return store
}

func (h *GateHandler) servePage(w http.ResponseWriter, page *domain.Page, view *htmlView, chrome *pageChrome) {
	h.writePage(w, http.StatusOK, page, view, chrome)
}

func (h *GateHandler) writePage(w http.ResponseWriter, status int, page *domain.Page, view *htmlView, chrome *pageChrome) {
	body, err := renderPage(page, view, chrome)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not render page")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func gateAction(slug string) string {
	return "/v1/pages/" + slug + "/age-gate"
}

// visitorDurable binds the decision repository to one visitor so it
// satisfies the gate's durable key/value interface.
type visitorDurable struct {
	repo      DecisionRepository
	visitorID string
}

func (v visitorDurable) Get(ctx context.Context, key string) (string, error) {
	return v.repo.Get(ctx, v.visitorID, key)
}

func (v visitorDurable) Set(ctx context.Context, key, value string) error {
	return v.repo.Put(ctx, v.visitorID, key, value)
}
