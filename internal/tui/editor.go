// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-draft-keeper/internal/service"
	"github.com/MKhiriev/go-draft-keeper/models"
)

const (
	editorHotKeys   = "ctrl+s: сохранить сейчас  f1: о программе  esc: выход"
	noticeLifetime  = 2 * time.Second
	minEditorWidth  = 20
	minEditorHeight = 3
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// editorModel is the single-screen draft editor. Every change of the text is
// handed to the autosave session; status updates come back through states.
type editorModel struct {
	ctx       context.Context
	session   *service.TypedSession[document]
	states    <-chan models.DraftState
	buildInfo models.AppBuildInfo

	textarea textarea.Model
	spinner  spinner.Model
	state    models.DraftState

	showConflict  bool
	showBuildInfo bool
	notice        string
	quitting      bool
}

func newEditorModel(
	ctx context.Context,
	session *service.DraftSession,
	states <-chan models.DraftState,
	initialText string,
	buildInfo models.AppBuildInfo,
) editorModel {
	ta := textarea.New()
	ta.Placeholder = "Начните печатать: первая строка станет заголовком"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(72)
	ta.SetHeight(12)
	ta.SetValue(initialText)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return editorModel{
		ctx:       ctx,
		session:   service.Typed[document](session),
		states:    states,
		buildInfo: buildInfo,
		textarea:  ta,
		spinner:   sp,
		state:     session.State(),
	}
}

func (m editorModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick, waitForState(m.states))
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.textarea.SetWidth(max(minEditorWidth, msg.Width-6))
		m.textarea.SetHeight(max(minEditorHeight, msg.Height-14))
		return m, nil

	case stateMsg:
		m.state = models.DraftState(msg)
		m.showConflict = m.state.Status == models.StatusConflict
		return m, waitForState(m.states)

	case statesClosedMsg:
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case copiedMsg:
		if msg.err != nil {
			m.notice = "Не удалось скопировать: " + msg.err.Error()
		} else {
			m.notice = "Серверная копия скопирована в буфер обмена"
		}
		return m, cmdClearNotice()

	case errMsg:
		m.notice = msg.err.Error()
		return m, nil

	case clearStatusMsg:
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m editorModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = !m.showBuildInfo
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.showConflict {
		return m.updateConflict(msg)
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.flush):
		return m, m.cmdFlush()
	}

	before := m.textarea.Value()
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	if after := m.textarea.Value(); after != before {
		if err := m.session.Edit(documentFromText(after)); err != nil {
			m.notice = err.Error()
		}
	}
	return m, cmd
}

// updateConflict handles keys while the conflict overlay is shown. Typing is
// blocked until the user picks a side.
func (m editorModel) updateConflict(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.overwrite):
		snap, ok := serverSnapshot(m.state.Server)
		if !ok {
			m.notice = "Версия на сервере неизвестна"
			return m, nil
		}
		m.showConflict = false
		return m, m.cmdSave(documentFromText(m.textarea.Value()), snap.Version)

	case key.Matches(msg, keys.takeServer):
		doc, version, ok := m.session.ServerDocument()
		if !ok {
			m.notice = "Серверную копию нельзя открыть в редакторе"
			return m, nil
		}
		m.textarea.SetValue(doc.text())
		m.showConflict = false
		return m, m.cmdSave(doc, version)

	case key.Matches(msg, keys.copy):
		return m, cmdCopy(string(m.state.Server))
	}

	return m, nil
}

func (m editorModel) View() string {
	if m.quitting {
		return ""
	}
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	body := m.textarea.View() + "\n\n" + renderStatus(m.state, m.spinner.View())
	if m.notice != "" {
		body += "\n" + mutedStyle.Render(m.notice)
	}
	if m.showConflict {
		body += "\n\n" + renderConflictOverlay(m.state)
	}

	return renderPage("ЧЕРНОВИК "+fitText(m.session.DraftID(), 40), body, editorHotKeys)
}

func (m editorModel) cmdSave(doc document, version int64) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		if err := session.Save(ctx, doc, &version); err != nil {
			return errMsg{err: err}
		}
		return nil
	}
}

func (m editorModel) cmdFlush() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		session.Flush()
		return nil
	}
}

func waitForState(states <-chan models.DraftState) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-states
		if !ok {
			return statesClosedMsg{}
		}
		return stateMsg(st)
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(text)}
	}
}

func cmdClearNotice() tea.Cmd {
	return tea.Tick(noticeLifetime, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
