package app

import (
	"encoding/json"
	"io"

	"go.trai.ch/reform/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeJSON(w io.Writer, report *domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return zerr.Wrap(err, "failed to write report")
	}
	return nil
}
