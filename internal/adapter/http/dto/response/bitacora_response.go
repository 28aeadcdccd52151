package response

import "bitacora_materiales/internal/domain/entities"

type BitacoraResponse struct {
	ID       string   `json:"id"`
	Titulo   string   `json:"titulo"`
	Brigadas []string `json:"brigadas"`
}

type BitacoraItemResponse struct {
	OK   bool             `json:"ok"`
	Item BitacoraResponse `json:"item"`
}

func FromBitacora(b entities.Bitacora) BitacoraResponse {
	return BitacoraResponse{ID: b.ID, Titulo: b.Titulo, Brigadas: b.Brigadas()}
}
