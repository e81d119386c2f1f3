package request

import (
	"strings"

	"storefront/internal/domain/entities"
)

// OrderTransitionRequest asks the engine to move an order one edge along
// the lifecycle graph.
type OrderTransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r OrderTransitionRequest) TargetStatus() entities.OrderStatus {
	return entities.OrderStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

// ParseStatusFilter turns the ?status= query value into a status set. Both
// comma-separated values and a single status are accepted; empty means no
// filter.
func ParseStatusFilter(raw string) []entities.OrderStatus {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	statuses := make([]entities.OrderStatus, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			statuses = append(statuses, entities.OrderStatus(p))
		}
	}
	return statuses
}
