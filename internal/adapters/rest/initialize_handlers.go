package rest

import (
	"net/http"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port/usecases_port"
)

type InitializeHandler struct {
	initializeUC usecases_port.InitializeUseCase
}

func NewInitializeHandler(initializeUC usecases_port.InitializeUseCase) *InitializeHandler {
	return &InitializeHandler{initializeUC: initializeUC}
}

// Initialize handles POST /initialize
func (h *InitializeHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	if err := h.initializeUC.Execute(r.Context()); err != nil {
		logger.Error("Initialization failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, InitializeResponse{Language: "go"})
}
