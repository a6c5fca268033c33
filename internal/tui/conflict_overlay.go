package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-draft-keeper/models"
)

func renderConflictOverlay(st models.DraftState) string {
	var b strings.Builder
	b.WriteString("Конфликт версий\n\n")
	b.WriteString("Черновик изменён на сервере. Ваши правки сохранены локально.\n\n")

	if snap, ok := serverSnapshot(st.Server); ok {
		b.WriteString(fmt.Sprintf("Версия на сервере: v%d\n", snap.Version))
		var doc document
		if err := snap.Payload.Decode(&doc); err == nil && doc.Title != "" {
			b.WriteString("Заголовок: " + fitText(doc.Title, 50) + "\n")
		}
		b.WriteString("\n")
	} else {
		b.WriteString("Копия на сервере: " + fitText(string(st.Server), 60) + "\n\n")
	}

	b.WriteString("o: перезаписать сервер  t: взять с сервера  y: скопировать серверную копию")
	return overlayBoxStyle.Render(b.String())
}
