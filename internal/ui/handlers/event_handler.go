package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"userdeck/internal/domain"
	"userdeck/internal/eventbus"
	"userdeck/internal/ui/state"
	"userdeck/internal/ui/viewmodels"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state     *state.AppState
	onDataset func([]domain.UserRecord)
	logger    *zap.SugaredLogger
}

// NewEventHandler creates a new event handler. onDataset runs once, when
// the first dataset arrives.
func NewEventHandler(appState *state.AppState, onDataset func([]domain.UserRecord), logger *zap.SugaredLogger) *EventHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &EventHandler{
		state:     appState,
		onDataset: onDataset,
		logger:    logger,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.DatasetRequestedEvent:
		h.state.StatusMessage = fmt.Sprintf("Fetching users from %s", e.Endpoint)

	case eventbus.DatasetLoadedEvent:
		if h.state.Status != domain.StatusLoading {
			// The dataset is loaded once per session
			h.logger.Warnw("ignoring repeated dataset", "users", len(e.Users), "status", h.state.Status)
			return nil
		}
		options := viewmodels.DistinctNationalities(e.Users)
		h.state.SetDataset(e.Users, options)
		h.state.StatusMessage = ""
		h.logger.Infow("dataset ready", "users", len(e.Users), "nationalities", len(options))
		if h.onDataset != nil {
			h.onDataset(e.Users)
		}

	case eventbus.DatasetFailedEvent:
		if h.state.Status != domain.StatusLoading {
			return nil
		}
		h.state.SetLoadError(e.Err)
		h.state.StatusMessage = ""
		h.logger.Errorw("dataset load failed", "error", e.Err)

	case eventbus.ConfigSavedEvent:
		h.state.StatusMessage = fmt.Sprintf("Wrote default config to %s", e.Path)
	}

	return nil
}
