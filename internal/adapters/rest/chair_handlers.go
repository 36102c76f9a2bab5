package rest

import (
	"encoding/json"
	"net/http"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type ChairHandler struct {
	searchUC      usecases_port.SearchChairsUseCase
	detailsUC     usecases_port.GetChairDetailsUseCase
	buyUC         usecases_port.BuyChairUseCase
	importUC      usecases_port.ImportChairsUseCase
	lowPricedUC   usecases_port.GetLowPricedChairsUseCase
	conditionJSON json.RawMessage
}

func NewChairHandler(
	searchUC usecases_port.SearchChairsUseCase,
	detailsUC usecases_port.GetChairDetailsUseCase,
	buyUC usecases_port.BuyChairUseCase,
	importUC usecases_port.ImportChairsUseCase,
	lowPricedUC usecases_port.GetLowPricedChairsUseCase,
	conditionJSON json.RawMessage) *ChairHandler {

	return &ChairHandler{
		searchUC:      searchUC,
		detailsUC:     detailsUC,
		buyUC:         buyUC,
		importUC:      importUC,
		lowPricedUC:   lowPricedUC,
		conditionJSON: conditionJSON,
	}
}

// Search handles GET /api/chair/search
func (h *ChairHandler) Search(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	query := r.URL.Query()

	page, err := ParsePagination(query)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	filters := domain.ChairSearchFilters{
		Kind:     query.Get("kind"),
		Color:    query.Get("color"),
		Features: query.Get("features"),
	}
	rangeParams := []struct {
		key  string
		dest **int64
	}{
		{"priceRangeId", &filters.PriceRangeID},
		{"heightRangeId", &filters.HeightRangeID},
		{"widthRangeId", &filters.WidthRangeID},
		{"depthRangeId", &filters.DepthRangeID},
	}
	for _, p := range rangeParams {
		id, err := ParseRangeID(query, p.key)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		*p.dest = id
	}

	result, err := h.searchUC.Execute(r.Context(), filters, page)
	if err != nil {
		status := StatusForError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Chair search failed", err, nil)
			WriteJSONError(w, status, "internal server error")
			return
		}
		WriteJSONError(w, status, err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, ChairSearchResponse{
		Count:  result.Count,
		Chairs: toChairResponses(result.Chairs),
	})
}

// GetDetails handles GET /api/chair/{id}
func (h *ChairHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	id, err := ParsePathID(chi.URLParam(r, "id"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	chair, err := h.detailsUC.Execute(r.Context(), id)
	if err != nil {
		status := StatusForError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Chair lookup failed", err, port.Fields{"chair_id": id})
			WriteJSONError(w, status, "internal server error")
			return
		}
		WriteJSONError(w, status, err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, toChairResponse(*chair))
}

// Buy handles POST /api/chair/buy/{id}
func (h *ChairHandler) Buy(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	id, err := ParsePathID(chi.URLParam(r, "id"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		WriteJSONError(w, http.StatusBadRequest, "email is required")
		return
	}

	if err := h.buyUC.Execute(r.Context(), id, body.Email); err != nil {
		status := StatusForError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Chair purchase failed", err, port.Fields{"chair_id": id})
			WriteJSONError(w, status, "internal server error")
			return
		}
		WriteJSONError(w, status, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Import handles POST /api/chair
func (h *ChairHandler) Import(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	file, _, err := r.FormFile("chairs")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "multipart file field 'chairs' is required")
		return
	}
	defer file.Close()

	imported, err := h.importUC.Execute(r.Context(), file)
	if err != nil {
		status := StatusForError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Chair import failed", err, nil)
			WriteJSONError(w, status, "internal server error")
			return
		}
		WriteJSONError(w, status, err.Error())
		return
	}

	logger.Info("Chairs imported", port.Fields{"imported": imported})
	w.WriteHeader(http.StatusCreated)
}

// LowPriced handles GET /api/chair/low_priced
func (h *ChairHandler) LowPriced(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	chairs, err := h.lowPricedUC.Execute(r.Context())
	if err != nil {
		logger.Error("Low priced chairs lookup failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, ChairListResponse{Chairs: toChairResponses(chairs)})
}

// SearchCondition handles GET /api/chair/search/condition
func (h *ChairHandler) SearchCondition(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(h.conditionJSON)
}
