package chat

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"foodiespot/infras/otel"
	"foodiespot/internal/domains/conversation/model"
	"foodiespot/internal/domains/conversation/model/dto"
	"foodiespot/internal/domains/conversation/service"
	"foodiespot/shared/constant"
	"foodiespot/shared/validator"
	"foodiespot/transport/http/response"
)

type Handler struct {
	service service.Conversation
	otel    otel.Otel
}

func New(service service.Conversation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/chat", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Chat)
		routerGroup.Post("/reservations", handler.ReservationDetails)
		routerGroup.Delete("/sessions/{id}", handler.EndSession)
	})
}

// Chat processes one conversational turn.
// @Summary Process a chat turn
// @Description Classify the message, extract slots, and return the accumulated conversation state for the session.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat Request"
// @Success 200 {object} response.Data[dto.ChatResponse] "Accumulated conversation state"
// @Failure 400 {object} response.Error
// @Router /v1/chat [post]
func (handler *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Chat")
	defer scope.End()

	req := dto.ChatRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	state := handler.service.HandleTurn(ctx, req.SessionID, req.Message)

	intent, _ := state[model.StateKeyIntent].(string)

	scope.AddEvent("Chat turn processed for session " + req.SessionID)

	response.WithJSON(w, http.StatusOK, dto.ChatResponse{
		SessionID: req.SessionID,
		Intent:    model.Intent(intent),
		State:     state,
	})
}

// ReservationDetails extracts a full set of booking details from a single message.
// @Summary Extract booking details from one message
// @Description Pull restaurant name, date, time, and party size out of a single message. A partial set of details is returned empty.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body dto.ReservationDetailsRequest true "Reservation Details Request"
// @Success 200 {object} response.Data[dto.ReservationDetailsResponse] "Extracted booking details"
// @Failure 400 {object} response.Error
// @Router /v1/chat/reservations [post]
func (handler *Handler) ReservationDetails(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReservationDetails")
	defer scope.End()

	req := dto.ReservationDetailsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	details := handler.service.ExtractReservationDetails(ctx, req.Message)

	scope.AddEvent("Reservation details extracted")

	response.WithJSON(w, http.StatusOK, dto.ReservationDetailsResponse{
		Complete: details.Complete(),
		Details:  details,
	})
}

// EndSession drops all accumulated state for a session.
// @Summary End a chat session
// @Description Delete the accumulated conversation state for a session.
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Message "Session ended successfully"
// @Failure 500 {object} response.Error
// @Router /v1/chat/sessions/{id} [delete]
func (handler *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EndSession")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.EndSession(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to end session")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Session ended successfully")

	response.WithMessage(w, http.StatusOK, "Session ended successfully")
}
