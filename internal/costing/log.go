package costing

import (
	"context"
	"log/slog"
)

// LogConflicts reports every SKU claimed by more than one product as a warning.
func LogConflicts(ctx context.Context, idx *Index) {
	for _, c := range idx.Conflicts() {
		slog.Default().WarnContext(ctx, "sku claimed by more than one product",
			slog.String("sku", c.SKU),
			slog.String("previous_product", c.Previous),
			slog.String("winner_product", c.Winner),
		)
	}
}
