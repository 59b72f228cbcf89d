package server

import (
	"net/http"
	"strconv"

	"github.com/seancribb/holdview/internal/common"
	"github.com/seancribb/holdview/internal/models"
	"github.com/seancribb/holdview/internal/portfolio"
)

// handlePortfolio handles GET /api/portfolio: return the wire envelope
// for the authenticated user.
func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	username, ok := s.authorizedUser(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	resp, err := s.provider.FetchPortfolio(r.Context(), username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("Portfolio fetch failed")
		WriteError(w, http.StatusBadGateway, "failed to fetch portfolio")
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

// handlePortfolioChart handles GET /api/portfolio/chart.png: render the
// synthetic series server-side for clients without a local chart surface.
// Query: horizon (1D|1W|1M|YTD, default 1M), tab (value|performance,
// default value), width, height.
func (s *Server) handlePortfolioChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	username, ok := s.authorizedUser(r)
	if !ok {
		WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	horizon := models.Horizon(r.URL.Query().Get("horizon"))
	if horizon == "" {
		horizon = models.HorizonMonth
	}
	if !horizon.Valid() {
		WriteError(w, http.StatusBadRequest, "unknown horizon: "+string(horizon))
		return
	}

	tab := models.ChartTab(r.URL.Query().Get("tab"))
	if tab == "" {
		tab = models.TabValue
	}
	if !tab.Valid() {
		WriteError(w, http.StatusBadRequest, "unknown tab: "+string(tab))
		return
	}

	width, _ := strconv.Atoi(r.URL.Query().Get("width"))
	height, _ := strconv.Atoi(r.URL.Query().Get("height"))

	resp, err := s.provider.FetchPortfolio(r.Context(), username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("Portfolio fetch failed")
		WriteError(w, http.StatusBadGateway, "failed to fetch portfolio")
		return
	}

	positions := portfolio.Normalize(resp, portfolio.FallbackPositions())
	summary := portfolio.Summarize(positions)
	series := portfolio.BuildSeries(summary.TotalValue, summary.PnLToday, horizon)

	png, err := portfolio.RenderChartPNG(series, tab, width, height)
	if err != nil {
		s.logger.Error().Err(err).Msg("Chart render failed")
		WriteError(w, http.StatusInternalServerError, "failed to render chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// handleHealth responds to GET/HEAD /api/health with {"status":"ok"}.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVersion responds to GET/HEAD /api/version with version info.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}
