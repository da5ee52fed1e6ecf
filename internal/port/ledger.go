package port

import (
	"context"

	"github.com/rl1809/warehouse-mesh/internal/core/domain"
)

type StockLedger interface {
	// Deposit adds each quantity to its article's record, creating the record
	// on first deposit. The whole batch commits as a single unit.
	Deposit(ctx context.Context, items []domain.Item) error

	// Reserve decrements each record by min(requested, available), clamped at
	// zero, in one atomic commit. The returned slice carries the fulfilled
	// quantity per article, including zero entries for shortages and for
	// articles with no record.
	Reserve(ctx context.Context, items []domain.Item) ([]domain.Item, error)

	// Stock reports the current quantity for an article, zero when absent.
	Stock(ctx context.Context, articleName string) (int, error)
}
