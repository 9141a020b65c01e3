package dto

// SendRequest is the body of POST /api/notifications/send.
type SendRequest struct {
	Type       string         `json:"type" validate:"required"`
	EntityType string         `json:"entityType" validate:"required,oneof=vehicle user external"`
	EntityID   string         `json:"entityId" validate:"required"`
	Message    string         `json:"message" validate:"required"`
	Data       map[string]any `json:"data"`
}
