package tui

import (
	response "bitacora_materiales/internal/adapter/http/dto/response"
	"bitacora_materiales/internal/client/search"
	"bitacora_materiales/internal/client/staging"
)

type focus int

const (
	focusSearch focus = iota
	focusStaging
	focusList
)

// PageState is the explicit page state View renders from.
type PageState struct {
	Staging     staging.SelectionState
	ResultsOpen bool
}

type bootMsg struct {
	bitacora response.BitacoraResponse
	err      error
}

type searchResultMsg struct{ result search.Result }

type saveDoneMsg struct{ err error }

type refreshDoneMsg struct{ err error }

type deleteDoneMsg struct {
	id      string
	removed bool
	err     error
}

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

type confirmState struct {
	id    string
	label string
	focus confirmModalFocus
}
