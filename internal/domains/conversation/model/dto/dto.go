package dto

import (
	"foodiespot/internal/domains/conversation/model"
)

type ChatRequest struct {
	SessionID string `json:"session_id" validate:"required,max=100"`
	Message   string `json:"message"    validate:"required,max=2000"`
}

type ChatResponse struct {
	SessionID string                  `json:"session_id"`
	Intent    model.Intent            `json:"intent"`
	State     model.ConversationState `json:"state"`
}

type ReservationDetailsRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type ReservationDetailsResponse struct {
	Complete bool                   `json:"complete"`
	Details  model.ReservationSlots `json:"details"`
}
