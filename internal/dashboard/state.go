// Package dashboard implements the client-side application core: an explicit
// state object and an action dispatcher that turns user actions into state
// transitions plus render effects. The rendering layer interprets the
// effects; the dispatcher never draws anything itself.
package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/seancribb/holdview/internal/client"
	"github.com/seancribb/holdview/internal/common"
	"github.com/seancribb/holdview/internal/interfaces"
	"github.com/seancribb/holdview/internal/models"
	"github.com/seancribb/holdview/internal/portfolio"
)

// Screen identifies which shell is visible.
type Screen int

const (
	ScreenLoggedOut Screen = iota
	ScreenLoggedIn
)

// Status messages surfaced in the status region.
const (
	MsgNeedsLogin     = "please log in"
	MsgUnreachable    = "backend not reachable"
	MsgSessionExpired = "session expired"
)

// State is the full application state. All mutable dashboard data lives
// here; handlers receive it and return the next value, nothing is global.
type State struct {
	Screen   Screen
	Token    string
	Username string
	Status   string

	// Positions is the normalized full list; Visible is the filtered view.
	Positions   []models.Position
	Visible     []models.Position
	Cash        float64
	FilterTerm  string
	FilterLabel string

	Summary       models.Summary
	ActiveTab     models.ChartTab
	ActiveHorizon models.Horizon
	Series        models.ChartSeries
}

// NewState returns the initial state: logged out, value tab, 1M horizon.
func NewState() State {
	return State{
		Screen:        ScreenLoggedOut,
		FilterLabel:   portfolio.AllPositionsLabel,
		ActiveTab:     models.TabValue,
		ActiveHorizon: models.HorizonMonth,
	}
}

// ActionKind tags a user action.
type ActionKind string

const (
	ActionLogin         ActionKind = "login"
	ActionLogout        ActionKind = "logout"
	ActionReload        ActionKind = "reload"
	ActionFilter        ActionKind = "filter"
	ActionSelectTab     ActionKind = "selectTab"
	ActionSelectHorizon ActionKind = "selectHorizon"
	ActionResize        ActionKind = "resize"
)

// Action is one user action with its payload.
type Action struct {
	Kind     ActionKind
	Username string
	Password string
	Term     string
	Tab      models.ChartTab
	Horizon  models.Horizon
	Width    int
	Height   int
}

// Effect names a region of the surface that must be redrawn.
type Effect string

const (
	EffectShowLogin   Effect = "showLogin"
	EffectShowApp     Effect = "showApp"
	EffectStatus      Effect = "status"
	EffectSummary     Effect = "summary"
	EffectPositions   Effect = "positions"
	EffectFilter      Effect = "filter"
	EffectChart       Effect = "chart"
	EffectResizeChart Effect = "resizeChart"
)

// Controller owns the API client and token store and drives transitions.
type Controller struct {
	api    interfaces.APIClient
	tokens interfaces.TokenStore
	logger *common.Logger
}

// NewController wires the dispatcher to its collaborators.
func NewController(api interfaces.APIClient, tokens interfaces.TokenStore, logger *common.Logger) *Controller {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Controller{api: api, tokens: tokens, logger: logger}
}

// Bootstrap performs the initial session restore. With no stored token the
// login shell shows immediately; with one, a fetch decides between the app
// shell and a logged-out shell carrying a message that distinguishes an
// unreachable backend from a dead session.
func (c *Controller) Bootstrap(ctx context.Context) (State, []Effect) {
	state := NewState()

	token := c.tokens.Load()
	if token == "" {
		state.Status = MsgNeedsLogin
		return state, []Effect{EffectShowLogin, EffectStatus}
	}

	state.Token = token
	resp, err := c.api.FetchPortfolio(ctx, token)
	if err != nil {
		state.Token = ""
		switch {
		case errors.Is(err, client.ErrUnreachable):
			state.Status = MsgUnreachable
		default:
			// Dead token: drop it so the next start goes straight to login.
			if errors.Is(err, client.ErrUnauthorized) {
				if clearErr := c.tokens.Clear(); clearErr != nil {
					c.logger.Warn().Err(clearErr).Msg("Failed to clear stored token")
				}
			}
			state.Status = MsgNeedsLogin
		}
		c.logger.Debug().Err(err).Msg("Session restore failed")
		return state, []Effect{EffectShowLogin, EffectStatus}
	}

	state = c.ingest(state, resp)
	state.Screen = ScreenLoggedIn
	return state, appEffects()
}

// Dispatch applies one action to the state and returns the next state plus
// the render effects the caller must apply.
func (c *Controller) Dispatch(ctx context.Context, state State, action Action) (State, []Effect) {
	switch action.Kind {
	case ActionLogin:
		return c.login(ctx, state, action.Username, action.Password)
	case ActionLogout:
		return c.logout(state)
	case ActionReload:
		return c.reload(ctx, state)
	case ActionFilter:
		return applyFilter(state, action.Term)
	case ActionSelectTab:
		return selectTab(state, action.Tab)
	case ActionSelectHorizon:
		return selectHorizon(state, action.Horizon)
	case ActionResize:
		return state, []Effect{EffectResizeChart}
	default:
		return state, nil
	}
}

func (c *Controller) login(ctx context.Context, state State, username, password string) (State, []Effect) {
	token, err := c.api.Login(ctx, username, password)
	if err != nil {
		state.Status = err.Error()
		return state, []Effect{EffectShowLogin, EffectStatus}
	}

	if token != "" {
		state.Token = token
		if err := c.tokens.Save(token); err != nil {
			c.logger.Warn().Err(err).Msg("Failed to persist session token")
		}
	}
	state.Username = username
	state.Status = ""

	resp, err := c.api.FetchPortfolio(ctx, state.Token)
	if err != nil {
		return c.fetchFailed(state, err)
	}

	state = c.ingest(state, resp)
	state.Screen = ScreenLoggedIn
	return state, appEffects()
}

func (c *Controller) logout(state State) (State, []Effect) {
	if err := c.tokens.Clear(); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to clear stored token")
	}
	c.api.ClearSession()

	next := NewState()
	next.Status = MsgNeedsLogin
	return next, []Effect{EffectShowLogin, EffectStatus}
}

func (c *Controller) reload(ctx context.Context, state State) (State, []Effect) {
	if state.Screen != ScreenLoggedIn {
		return state, nil
	}

	resp, err := c.api.FetchPortfolio(ctx, state.Token)
	if err != nil {
		return c.fetchFailed(state, err)
	}

	state = c.ingest(state, resp)
	state.Status = ""
	return state, appEffects()
}

// fetchFailed classifies a portfolio fetch failure. A 401 means the session
// is dead: the stored token is dropped and the login shell returns with a
// session-expired message. Anything else keeps the current shell and
// surfaces a status line.
func (c *Controller) fetchFailed(state State, err error) (State, []Effect) {
	if errors.Is(err, client.ErrUnauthorized) {
		if clearErr := c.tokens.Clear(); clearErr != nil {
			c.logger.Warn().Err(clearErr).Msg("Failed to clear stored token")
		}
		next := NewState()
		next.Status = MsgSessionExpired
		return next, []Effect{EffectShowLogin, EffectStatus}
	}

	if errors.Is(err, client.ErrUnreachable) {
		state.Status = MsgUnreachable
	} else {
		state.Status = fmt.Sprintf("reload failed: %v", err)
	}
	return state, []Effect{EffectStatus}
}

// ingest runs the fetched payload through the pipeline: normalize against
// the fallback list, summarize, resynthesize the chart for the active
// horizon, and reapply the current filter.
func (c *Controller) ingest(state State, resp *models.PortfolioResponse) State {
	state.Positions = portfolio.Normalize(resp, portfolio.FallbackPositions())
	state.Cash = resp.Cash
	state.Summary = portfolio.Summarize(state.Positions)
	state.Series = portfolio.BuildSeries(state.Summary.TotalValue, state.Summary.PnLToday, state.ActiveHorizon)
	state.Visible, state.FilterLabel = portfolio.Filter(state.FilterTerm, state.Positions)
	return state
}

func applyFilter(state State, term string) (State, []Effect) {
	state.FilterTerm = term
	state.Visible, state.FilterLabel = portfolio.Filter(term, state.Positions)
	return state, []Effect{EffectPositions, EffectFilter}
}

// selectTab switches between the value and performance views. The series is
// untouched: a tab change redraws what is already synthesized.
func selectTab(state State, tab models.ChartTab) (State, []Effect) {
	if !tab.Valid() || tab == state.ActiveTab {
		return state, nil
	}
	state.ActiveTab = tab
	return state, []Effect{EffectChart}
}

// selectHorizon changes the window and resynthesizes from current totals.
func selectHorizon(state State, horizon models.Horizon) (State, []Effect) {
	if !horizon.Valid() || horizon == state.ActiveHorizon {
		return state, nil
	}
	state.ActiveHorizon = horizon
	state.Series = portfolio.BuildSeries(state.Summary.TotalValue, state.Summary.PnLToday, horizon)
	return state, []Effect{EffectChart}
}

func appEffects() []Effect {
	return []Effect{EffectShowApp, EffectSummary, EffectPositions, EffectFilter, EffectChart}
}
