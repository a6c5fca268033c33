package tui

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-draft-keeper/models"
)

const timeLayout = "15:04:05"

// renderStatus renders the status line of the editor. spin is the current
// spinner frame shown while a save is in flight.
func renderStatus(st models.DraftState, spin string) string {
	switch st.Status {
	case models.StatusSaving:
		return spin + " сохранение..."
	case models.StatusSaved:
		line := "сохранено"
		if st.SavedAt != nil {
			line += " " + st.SavedAt.Local().Format(timeLayout)
		}
		if st.Version != nil {
			line += fmt.Sprintf(" · v%d", *st.Version)
		}
		line = savedStyle.Render(line)
		if st.LastError != "" {
			line += "\n" + mutedStyle.Render(st.LastError)
		}
		return line
	case models.StatusOffline:
		return mutedStyle.Render("офлайн · изменения сохранены локально, отправим при подключении")
	case models.StatusError:
		line := "ошибка сохранения"
		if st.NextRetryIn > 0 {
			line += fmt.Sprintf(" · повтор через %s", st.NextRetryIn)
		}
		return errorStyle.Render(line) + "\n" + mutedStyle.Render(fitText(st.LastError, 80))
	case models.StatusConflict:
		return errorStyle.Render("конфликт версий")
	default:
		return mutedStyle.Render("изменений нет")
	}
}

// serverSnapshot decodes the snapshot attached to a conflict. Snapshots of
// other shapes are reported as not ok.
func serverSnapshot(raw json.RawMessage) (models.ServerDraftSnapshot, bool) {
	var snap models.ServerDraftSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil || snap.Version <= 0 {
		return models.ServerDraftSnapshot{}, false
	}
	return snap, true
}
