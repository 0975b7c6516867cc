package assist

import (
	"context"

	"github.com/hansol-labs/compliboard/internal/domain/catalog"
)

// Client produces implementation guidance for one checklist item.
// The response is a JSON document following the prompt schema.
type Client interface {
	Guide(ctx context.Context, item catalog.Item) (string, error)
}
