package ports

import (
	"context"

	"go.trai.ch/reform/internal/core/domain"
)

// FileSelector resolves root directories and glob patterns into candidate files.
//
//go:generate go run go.uber.org/mock/mockgen -source=selector.go -destination=mocks/mock_selector.go -package=mocks
type FileSelector interface {
	// Select returns the deduplicated, sorted candidates described by sel.
	// Any error is fatal to the run.
	Select(ctx context.Context, sel domain.Selection) ([]domain.Candidate, error)
}
