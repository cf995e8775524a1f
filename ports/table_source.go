package ports

import (
	"context"

	"fairlens/domain/frame"
)

// TableSource yields a prediction table from some backing store. Adapters
// implement it for files and databases; the audit pipeline only reads.
type TableSource interface {
	// Load reads the full table. Implementations return core.ErrEmptyTable
	// when the source has a header but no data rows.
	Load(ctx context.Context) (*frame.Frame, error)
}
