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

type EstateHandler struct {
	searchUC      usecases_port.SearchEstatesUseCase
	detailsUC     usecases_port.GetEstateDetailsUseCase
	nazotteUC     usecases_port.NazotteSearchUseCase
	reqDocUC      usecases_port.RequestDocumentUseCase
	importUC      usecases_port.ImportEstatesUseCase
	lowPricedUC   usecases_port.GetLowPricedEstatesUseCase
	recommendUC   usecases_port.RecommendEstatesUseCase
	conditionJSON json.RawMessage
}

func NewEstateHandler(
	searchUC usecases_port.SearchEstatesUseCase,
	detailsUC usecases_port.GetEstateDetailsUseCase,
	nazotteUC usecases_port.NazotteSearchUseCase,
	reqDocUC usecases_port.RequestDocumentUseCase,
	importUC usecases_port.ImportEstatesUseCase,
	lowPricedUC usecases_port.GetLowPricedEstatesUseCase,
	recommendUC usecases_port.RecommendEstatesUseCase,
	conditionJSON json.RawMessage) *EstateHandler {

	return &EstateHandler{
		searchUC:      searchUC,
		detailsUC:     detailsUC,
		nazotteUC:     nazotteUC,
		reqDocUC:      reqDocUC,
		importUC:      importUC,
		lowPricedUC:   lowPricedUC,
		recommendUC:   recommendUC,
		conditionJSON: conditionJSON,
	}
}

// Search handles GET /api/estate/search
func (h *EstateHandler) Search(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())
	query := r.URL.Query()

	page, err := ParsePagination(query)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	filters := domain.EstateSearchFilters{
		Features: query.Get("features"),
	}
	rangeParams := []struct {
		key  string
		dest **int64
	}{
		{"doorHeightRangeId", &filters.DoorHeightRangeID},
		{"doorWidthRangeId", &filters.DoorWidthRangeID},
		{"rentRangeId", &filters.RentRangeID},
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
			logger.Error("Estate search failed", err, nil)
			WriteJSONError(w, status, "internal server error")
			return
		}
		WriteJSONError(w, status, err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, EstateSearchResponse{
		Count:   result.Count,
		Estates: toEstateResponses(result.Estates),
	})
}

// GetDetails handles GET /api/estate/{id}
func (h *EstateHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	id, err := ParsePathID(chi.URLParam(r, "id"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	estate, err := h.detailsUC.Execute(r.Context(), id)
	if err != nil {
		status := StatusForError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Estate lookup failed", err, port.Fields{"estate_id": id})
			WriteJSONError(w, status, "internal server error")
			return
		}
		WriteJSONError(w, status, err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, toEstateResponse(*estate))
}

// Nazotte handles POST /api/estate/nazotte
func (h *EstateHandler) Nazotte(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	var body struct {
		Coordinates []domain.Coordinate `json:"coordinates"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "request body must be JSON with a coordinates array")
		return
	}

	result, err := h.nazotteUC.Execute(r.Context(), body.Coordinates)
	if err != nil {
		status := StatusForError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Nazotte search failed", err, nil)
			WriteJSONError(w, status, "internal server error")
			return
		}
		WriteJSONError(w, status, err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, EstateSearchResponse{
		Count:   result.Count,
		Estates: toEstateResponses(result.Estates),
	})
}

// RequestDocument handles POST /api/estate/req_doc/{id}
func (h *EstateHandler) RequestDocument(w http.ResponseWriter, r *http.Request) {
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

	if err := h.reqDocUC.Execute(r.Context(), id, body.Email); err != nil {
		status := StatusForError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Document request failed", err, port.Fields{"estate_id": id})
			WriteJSONError(w, status, "internal server error")
			return
		}
		WriteJSONError(w, status, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Import handles POST /api/estate
func (h *EstateHandler) Import(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	file, _, err := r.FormFile("estates")
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "multipart file field 'estates' is required")
		return
	}
	defer file.Close()

	imported, err := h.importUC.Execute(r.Context(), file)
	if err != nil {
		status := StatusForError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Estate import failed", err, nil)
			WriteJSONError(w, status, "internal server error")
			return
		}
		WriteJSONError(w, status, err.Error())
		return
	}

	logger.Info("Estates imported", port.Fields{"imported": imported})
	w.WriteHeader(http.StatusCreated)
}

// LowPriced handles GET /api/estate/low_priced
func (h *EstateHandler) LowPriced(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	estates, err := h.lowPricedUC.Execute(r.Context())
	if err != nil {
		logger.Error("Low priced estates lookup failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, EstateListResponse{Estates: toEstateResponses(estates)})
}

// Recommended handles GET /api/recommended_estate/{id}
func (h *EstateHandler) Recommended(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	id, err := ParsePathID(chi.URLParam(r, "id"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	estates, err := h.recommendUC.Execute(r.Context(), id)
	if err != nil {
		status := StatusForError(err)
		if status == http.StatusInternalServerError {
			logger.Error("Estate recommendation failed", err, port.Fields{"chair_id": id})
			WriteJSONError(w, status, "internal server error")
			return
		}
		WriteJSONError(w, status, err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, EstateListResponse{Estates: toEstateResponses(estates)})
}

// SearchCondition handles GET /api/estate/search/condition
func (h *EstateHandler) SearchCondition(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(h.conditionJSON)
}
