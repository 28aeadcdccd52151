package response

import "bitacora_materiales/internal/usecase"

type ImportReportResponse struct {
	Read    int `json:"read"`
	Skipped int `json:"skipped"`
	Written int `json:"written"`
	Failed  int `json:"failed"`
}

type ImportResponse struct {
	OK     bool                 `json:"ok"`
	Report ImportReportResponse `json:"report"`
	Error  string               `json:"error,omitempty"`
}

func FromImportReport(r usecase.ImportReport) ImportReportResponse {
	return ImportReportResponse{Read: r.Read, Skipped: r.Skipped, Written: r.Written, Failed: r.Failed}
}
