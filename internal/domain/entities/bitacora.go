package entities

import "strings"

// BrigadaSinAsignar is the placeholder crew shown when a bitácora has no
// official crews. It is never a valid crew for saving materials.
const BrigadaSinAsignar = "Sin Asignar"

// Bitacora is the work-order logbook that owns material entries.
//
// Up to five official crews are assigned on the logbook itself
// (bri1_oficial .. bri5_oficial).
type Bitacora struct {
	ID      string    `json:"id"`
	Titulo  string    `json:"titulo"`
	Oficial [5]string `json:"-"`
}

// Brigadas lists the assigned crews in slot order, or the unassigned
// placeholder when every slot is blank.
func (b Bitacora) Brigadas() []string {
	out := make([]string, 0, len(b.Oficial))
	for _, v := range b.Oficial {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return []string{BrigadaSinAsignar}
	}
	return out
}

// IsCrewAssigned reports whether crew can be attributed to a save.
func IsCrewAssigned(crew string) bool {
	crew = strings.TrimSpace(crew)
	return crew != "" && crew != BrigadaSinAsignar
}
