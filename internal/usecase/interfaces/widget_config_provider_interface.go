package interfaces

import (
	"context"

	"roofquote/internal/domain/entities"
)

// IWidgetConfigProvider abstracts the operator configuration store: catalog
// entries, role assignments, currency and the commerce-platform credential
// for one widget owner.
//
// A missing owner returns a zero-value WidgetConfig and no error; the use
// case decides which parts of the config are mandatory.

type IWidgetConfigProvider interface {
	GetByOwnerID(ctx context.Context, ownerID string) (entities.WidgetConfig, error)
}
