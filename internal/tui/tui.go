package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/models"
)

// TUI runs the terminal draft editor on top of an autosave session.
type TUI struct {
	session   *service.DraftSession
	initial   models.Payload
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// programOptions is replaced in tests to run without a terminal.
	programOptions []tea.ProgramOption
}

// New creates the editor for session. initial is shown when the editor opens,
// typically the payload of a draft restored from the local queue; it may be nil.
func New(session *service.DraftSession, initial models.Payload, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		session:        session,
		initial:        initial,
		buildInfo:      buildInfo,
		logger:         logger,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run blocks until the user quits or ctx is cancelled. A pending debounced
// edit is saved before Run returns.
func (t *TUI) Run(ctx context.Context) error {
	states, cancel := t.session.Subscribe()
	defer cancel()

	var doc document
	if len(t.initial) > 0 {
		if err := t.initial.Decode(&doc); err != nil {
			t.logger.Warn().Err(err).Msg("queued draft is not an editor document, starting empty")
		}
	}

	model := newEditorModel(ctx, t.session, states, doc.text(), t.buildInfo)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)

	_, err := tea.NewProgram(model, opts...).Run()

	if t.session.Flush() {
		t.logger.Info().Str("draft_id", t.session.DraftID()).Msg("pending edit saved on exit")
	}

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
