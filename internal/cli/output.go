package cli

import (
	"encoding/json"
	"errors"
	"io"
	"text/tabwriter"

	"bitacora_materiales/internal/client/apierr"
)

var errMissingBitacora = errors.New("--bitacora is required (or BITACORA_BITACORA)")

// operatorError carries the text cobra prints: the server message for
// business errors, the generic text for transport failures.
type operatorError struct {
	msg string
	err error
}

func (e *operatorError) Error() string { return e.msg }

func (e *operatorError) Unwrap() error { return e.err }

func userErr(err error) error {
	var b *apierr.BusinessError
	var v *apierr.ValidationError
	if errors.As(err, &b) || errors.As(err, &v) || apierr.IsTransport(err) {
		return &operatorError{msg: apierr.UserMessage(err), err: err}
	}
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}
