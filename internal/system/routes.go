package system

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"chatdj/internal/api"
	"chatdj/internal/config"
	"chatdj/internal/queue"
)

type healthResponse struct {
	Status   string         `json:"status"`
	Device   deviceHealth   `json:"device"`
	Catalog  catalogHealth  `json:"catalog"`
	Settings healthSettings `json:"settings"`
}

type catalogHealth struct {
	Configured bool `json:"configured"`
}

type deviceHealth struct {
	IP        string `json:"ip"`
	Reachable bool   `json:"reachable"`
	State     string `json:"state,omitempty"`
	Error     string `json:"error,omitempty"`
}

type healthSettings struct {
	DefaultTheme    string `json:"default_theme"`
	ThemePercentage int    `json:"theme_percentage"`
	SearchResultCap int    `json:"search_result_cap"`
}

// Routes exposes operational endpoints.
func Routes(cfg config.Config, player queue.Player, deviceIP string, logger *log.Logger) chi.Router {
	if logger == nil {
		logger = log.Default()
	}
	r := chi.NewRouter()

	r.Method(http.MethodGet, "/health", api.Handler(func(w http.ResponseWriter, r *http.Request) error {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		resp := healthResponse{
			Status:  "ok",
			Device:  deviceHealth{IP: deviceIP},
			Catalog: catalogHealth{Configured: cfg.SpotifyClientID != "" && cfg.SpotifyClientSecret != ""},
			Settings: healthSettings{
				DefaultTheme:    cfg.DefaultTheme,
				ThemePercentage: cfg.ThemePercentage,
				SearchResultCap: cfg.SearchResultCap,
			},
		}

		state, err := player.State(ctx)
		if err != nil {
			resp.Status = "degraded"
			resp.Device.Error = err.Error()
			logger.Printf("health: device unreachable: %v", err)
		} else {
			resp.Device.Reachable = true
			resp.Device.State = string(state)
		}

		return api.WriteJSON(w, http.StatusOK, resp)
	}))

	return r
}
