package services

import (
	"encoding/json"

	"cylaba/pkg/logger"
)

// EventPublisher sends domain events. *rabbitmq.Client implements it.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// Routing keys of the published events.
const (
	EventOrderCreated   = "order.created"
	EventOrderDeleted   = "order.deleted"
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
	EventSchoolCreated  = "school.created"
	EventSchoolDeleted  = "school.deleted"
)

// publish sends payload after the change is stored. Failures are logged and
// never fail the request.
func publish(events EventPublisher, log *logger.Logger, routingKey string, payload any) {
	if events == nil {
		log.Debugw("Event publisher not configured, skipping event", "event", routingKey)
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Errorw("Failed to marshal event", "event", routingKey, "error", err)
		return
	}
	if err := events.Publish(routingKey, body); err != nil {
		log.Warnw("Failed to publish event", "event", routingKey, "error", err)
		return
	}
	log.Debugw("Published event", "event", routingKey)
}
