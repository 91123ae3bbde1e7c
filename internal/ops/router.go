package ops

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/andreeabea/FoodDeliveryAppServer/internal/db"
	"github.com/andreeabea/FoodDeliveryAppServer/internal/session"
)

// NewRouter exposes the operational endpoints that live next to the TCP
// listener: a storage liveness probe and a connection count.
func NewRouter(database db.Database, registry *session.Registry, logger *zap.SugaredLogger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		if err := database.Ping(); err != nil {
			logger.Errorw("storage ping failed", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/sessions", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sessions":` + strconv.Itoa(registry.Len()) + `}`))
	})

	return r
}
