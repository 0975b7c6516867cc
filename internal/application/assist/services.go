package assist

import (
	"context"
	"fmt"

	"github.com/hansol-labs/compliboard/internal/domain/assist"
	"github.com/hansol-labs/compliboard/internal/domain/catalog"
	"github.com/hansol-labs/compliboard/internal/domain/compliance"
)

// Service produces AI implementation guidance for catalog items. The
// client is optional; without one every call fails with
// ErrUnavailable so the endpoint degrades cleanly.
type Service struct {
	Client assist.Client
}

// Guide returns the JSON guidance document for one control.
func (s *Service) Guide(ctx context.Context, controlID string) (string, error) {
	if s == nil || s.Client == nil {
		return "", assist.ErrUnavailable
	}
	item, ok := catalog.Find(controlID)
	if !ok {
		return "", fmt.Errorf("%w: %s", compliance.ErrUnknownControl, controlID)
	}
	return s.Client.Guide(ctx, item)
}
