package tui

import (
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/connectivity"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/mock"
	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/models"
)

const serverSnapshotJSON = `{"draftId":"d1","version":4,"savedAtISO":"2026-05-01T12:00:00Z","payload":{"title":"theirs","body":"theirs\nline"}}`

type editorFixture struct {
	model   editorModel
	session *service.DraftSession
	store   *mock.MockLocalDraftStore
	adapter *mock.MockDraftAdapter
	saved   []models.LocalDraftRecord
}

// newTestEditor собирает редактор поверх настоящей сессии с моками хранилища
// и сервера. Таймеры выставлены на час, чтобы сами они не срабатывали.
func newTestEditor(t *testing.T, online bool) *editorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &editorFixture{
		store:   mock.NewMockLocalDraftStore(ctrl),
		adapter: mock.NewMockDraftAdapter(ctrl),
	}
	f.store.EXPECT().Set(gomock.Any(), "d1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, rec models.LocalDraftRecord) error {
			f.saved = append(f.saved, rec)
			return nil
		}).AnyTimes()
	f.store.EXPECT().Delete(gomock.Any(), "d1").Return(nil).AnyTimes()

	f.session = service.NewDraftSession("d1", f.store, f.adapter, connectivity.NewMonitor(online),
		service.SessionConfig{Debounce: time.Hour, RetryBase: time.Hour, RetryMax: time.Hour}, logger.Nop())
	t.Cleanup(f.session.Close)

	f.model = newEditorModel(context.Background(), f.session, nil, "", models.AppBuildInfo{})
	return f
}

func (f *editorFixture) send(msg tea.Msg) tea.Cmd {
	next, cmd := f.model.Update(msg)
	f.model = next.(editorModel)
	return cmd
}

func (f *editorFixture) enterConflict(t *testing.T) {
	t.Helper()
	f.adapter.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).
		Return(models.SaveDraftResult{}, &adapter.ConflictError{Server: []byte(serverSnapshotJSON)})

	require.NoError(t, service.Typed[document](f.session).Save(context.Background(), documentFromText("mine"), models.Int64Ptr(3)))
	f.send(stateMsg(f.session.State()))
	require.True(t, f.model.showConflict)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestEditor_TypingSchedulesSave(t *testing.T) {
	f := newTestEditor(t, false)

	f.send(runes("Hi"))
	assert.Equal(t, "Hi", f.model.textarea.Value())
	assert.Empty(t, f.saved, "edits are debounced")

	require.True(t, f.session.Flush())
	require.Len(t, f.saved, 1)
	assert.JSONEq(t, `{"title":"Hi","body":"Hi"}`, string(f.saved[0].Payload))
}

func TestEditor_CtrlSFlushes(t *testing.T) {
	f := newTestEditor(t, false)

	f.send(runes("x"))
	cmd := f.send(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	cmd()

	require.Len(t, f.saved, 1)
	assert.Equal(t, models.StatusOffline, f.session.State().Status)
}

func TestEditor_StateMessages(t *testing.T) {
	f := newTestEditor(t, false)

	savedAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	cmd := f.send(stateMsg(models.DraftState{DraftID: "d1", Status: models.StatusSaved, SavedAt: &savedAt, Version: models.Int64Ptr(2)}))
	assert.NotNil(t, cmd, "keeps listening for states")
	assert.False(t, f.model.showConflict)
	assert.Contains(t, f.model.View(), "v2")

	f.send(stateMsg(models.DraftState{DraftID: "d1", Status: models.StatusConflict, Server: []byte(serverSnapshotJSON)}))
	assert.True(t, f.model.showConflict)
	assert.Contains(t, f.model.View(), "Версия на сервере: v4")

	assert.Nil(t, f.send(statesClosedMsg{}))
}

func TestEditor_ConflictBlocksTyping(t *testing.T) {
	f := newTestEditor(t, true)
	f.enterConflict(t)

	f.send(runes("abc"))
	assert.Empty(t, f.model.textarea.Value())
	assert.True(t, f.model.showConflict)
}

func TestEditor_ConflictOverwrite(t *testing.T) {
	f := newTestEditor(t, true)
	f.model.textarea.SetValue("mine")
	f.enterConflict(t)

	f.adapter.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.SaveDraftRequest) (models.SaveDraftResult, error) {
			require.NotNil(t, req.Version)
			assert.Equal(t, int64(4), *req.Version)
			assert.JSONEq(t, `{"title":"mine","body":"mine"}`, string(req.Payload))
			return models.SaveDraftResult{Version: 5, SavedAt: time.Now()}, nil
		})

	cmd := f.send(runes("o"))
	assert.False(t, f.model.showConflict)
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())

	st := f.session.State()
	assert.Equal(t, models.StatusSaved, st.Status)
	assert.Equal(t, int64(5), *st.Version)
}

func TestEditor_ConflictTakeServer(t *testing.T) {
	f := newTestEditor(t, true)
	f.enterConflict(t)

	f.adapter.EXPECT().SaveDraft(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.SaveDraftRequest) (models.SaveDraftResult, error) {
			assert.Equal(t, int64(4), *req.Version)
			assert.JSONEq(t, `{"title":"theirs","body":"theirs\nline"}`, string(req.Payload))
			return models.SaveDraftResult{Version: 5, SavedAt: time.Now()}, nil
		})

	cmd := f.send(runes("t"))
	assert.Equal(t, "theirs\nline", f.model.textarea.Value())
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, models.StatusSaved, f.session.State().Status)
}

func TestEditor_ConflictWithOpaqueSnapshot(t *testing.T) {
	f := newTestEditor(t, false)
	f.send(stateMsg(models.DraftState{DraftID: "d1", Status: models.StatusConflict, Server: []byte(`{"etag":"x"}`)}))

	assert.Nil(t, f.send(runes("o")))
	assert.Nil(t, f.send(runes("t")))
	assert.True(t, f.model.showConflict)
	assert.NotEmpty(t, f.model.notice)
}

func TestEditor_CopyServerSnapshot(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	f := newTestEditor(t, true)
	f.enterConflict(t)

	cmd := f.send(runes("y"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, copiedMsg{}, msg)
	assert.Equal(t, serverSnapshotJSON, copied)

	assert.NotNil(t, f.send(msg), "notice is cleared later")
	assert.Contains(t, f.model.notice, "скопирована")

	f.send(clearStatusMsg{})
	assert.Empty(t, f.model.notice)
}

func TestEditor_BuildInfoAndQuit(t *testing.T) {
	f := newTestEditor(t, false)

	f.send(tea.KeyMsg{Type: tea.KeyF1})
	assert.Contains(t, f.model.View(), "ИНФОРМАЦИЯ О ПРОГРАММЕ")

	f.send(runes("z"))
	assert.Empty(t, f.model.textarea.Value(), "typing is ignored behind the info window")

	f.send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, f.model.showBuildInfo)

	cmd := f.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, f.model.View())
}

func TestEditor_WindowSize(t *testing.T) {
	f := newTestEditor(t, false)

	f.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 26, f.model.textarea.Height())

	f.send(tea.WindowSizeMsg{Width: 5, Height: 5})
	assert.Equal(t, minEditorHeight, f.model.textarea.Height())
}

func TestWaitForState(t *testing.T) {
	states := make(chan models.DraftState, 1)
	states <- models.DraftState{Status: models.StatusSaving}

	assert.Equal(t, stateMsg(models.DraftState{Status: models.StatusSaving}), waitForState(states)())

	close(states)
	assert.Equal(t, statesClosedMsg{}, waitForState(states)())
}

func TestKeyBindings(t *testing.T) {
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlS}, keys.flush))
	assert.True(t, key.Matches(runes("o"), keys.overwrite))
	assert.False(t, key.Matches(runes("O"), keys.overwrite))
}
