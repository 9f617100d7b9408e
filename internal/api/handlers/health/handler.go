package health

import (
	"context"
	"net/http"
	"time"

	"github.com/mindsettler/booking-backend/internal/api/handlers"
)

// Pinger интерфейс проверки соединения с БД
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

// HealthResponse HTTP response model
type HealthResponse struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}

// Handle GET /api/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		handlers.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status: "degraded",
			DB:     "unreachable",
		})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		DB:     "ok",
	})
}
