package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"kitematch-service/internal/domain/entity"
	"kitematch-service/internal/usecase"
	"kitematch-service/pkg/logger"
)

// RecommendHandler exposes the recommendation engine and the read-only
// catalog over HTTP.
type RecommendHandler struct {
	advisor *usecase.Advisor
	catalog *entity.Catalog
	logger  logger.Logger
}

// NewRecommendHandler creates a new recommend handler
func NewRecommendHandler(advisor *usecase.Advisor, catalog *entity.Catalog, logger logger.Logger) *RecommendHandler {
	return &RecommendHandler{
		advisor: advisor,
		catalog: catalog,
		logger:  logger,
	}
}

// RegisterRoutes wires all endpoints onto the router.
func (h *RecommendHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/recommend", h.Recommend).Methods(http.MethodPost)
	api.HandleFunc("/trips", h.ListTrips).Methods(http.MethodGet)
	api.HandleFunc("/spots", h.ListSpots).Methods(http.MethodGet)
}

// RecommendRequest is the POST /api/recommend body.
type RecommendRequest struct {
	Query     string              `json:"query"`
	SessionID string              `json:"session_id,omitempty"`
	Profile   *entity.UserProfile `json:"profile,omitempty"`
}

// RecommendResponse wraps the engine response with the session id so
// clients can continue the conversation.
type RecommendResponse struct {
	SessionID string                        `json:"session_id"`
	Response  entity.RecommendationResponse `json:"response"`
}

// Recommend handles one chat query.
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	response, err := h.advisor.Recommend(r.Context(), req.Query, req.Profile, req.SessionID)
	if err != nil {
		// Still answer with the structured fallback; the caller never
		// sees a raw error payload.
		h.logger.Error("Recommendation failed", "error", err)
		response = h.advisor.Fallback()
	}

	writeJSON(w, http.StatusOK, RecommendResponse{
		SessionID: req.SessionID,
		Response:  response,
	})
}

// TripsListResponse is the GET /api/trips payload.
type TripsListResponse struct {
	Limit  int                   `json:"limit"`
	Offset int                   `json:"offset"`
	Total  int                   `json:"total"`
	Items  []entity.TripOffering `json:"items"`
}

// ListTrips returns the trip catalog with limit/offset paging.
func (h *RecommendHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, 20, 0)
	total := len(h.catalog.Trips)
	lo, hi := pageBounds(total, limit, offset)

	writeJSON(w, http.StatusOK, TripsListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Items:  h.catalog.Trips[lo:hi],
	})
}

// SpotsListResponse is the GET /api/spots payload.
type SpotsListResponse struct {
	Limit  int                       `json:"limit"`
	Offset int                       `json:"offset"`
	Total  int                       `json:"total"`
	Items  []entity.KitespotLocation `json:"items"`
}

// ListSpots returns the kitespot catalog with limit/offset paging.
func (h *RecommendHandler) ListSpots(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, 20, 0)
	total := len(h.catalog.Spots)
	lo, hi := pageBounds(total, limit, offset)

	writeJSON(w, http.StatusOK, SpotsListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Items:  h.catalog.Spots[lo:hi],
	})
}

// Health reports liveness.
func (h *RecommendHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func parseLimitOffset(r *http.Request, defaultLimit, defaultOffset int) (int, int) {
	limit := defaultLimit
	offset := defaultOffset
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			offset = parsed
		}
	}
	return limit, offset
}

func pageBounds(total, limit, offset int) (int, int) {
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return offset, end
}
