package main

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emergent-grounds/guardian/moderation/engine"
)

type messageBody struct {
	Sender  string `json:"sender"`
	Content string `json:"content"`
	Type    string `json:"type,omitempty"`
}

type evaluateResponse struct {
	Action *engine.ModerationAction `json:"action"`
}

func (s *Server) HandleEvaluateMessage(c echo.Context) error {
	ctx := c.Request().Context()
	roomID := c.Param("room")

	var body messageBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid message body")
	}
	if body.Sender == "" && body.Type != engine.MessageTypeSystem {
		return echo.NewHTTPError(http.StatusBadRequest, "sender is required")
	}

	ctx, span := tracer.Start(ctx, "evaluateMessage")
	defer span.End()

	messagesReceived.Inc()
	act, err := s.engine.EvaluateMessage(ctx, roomID, engine.Message{
		Sender:  body.Sender,
		Content: body.Content,
		Type:    body.Type,
	})
	if err != nil {
		return err
	}
	if act != nil {
		actionsReturned.WithLabelValues(string(act.Kind)).Inc()
	}
	return c.JSON(http.StatusOK, evaluateResponse{Action: act})
}

func (s *Server) HandleWelcome(c echo.Context) error {
	act := s.engine.Welcome(c.Param("room"))
	if act != nil {
		actionsReturned.WithLabelValues(string(act.Kind)).Inc()
	}
	return c.JSON(http.StatusOK, evaluateResponse{Action: act})
}

type startersBody struct {
	// omit or set negative when no health signal is available
	Health  *float64      `json:"health,omitempty"`
	Context []messageBody `json:"context,omitempty"`
}

type startersResponse struct {
	Result *engine.SuggestionResult `json:"result"`
}

func (s *Server) HandleRequestStarters(c echo.Context) error {
	ctx := c.Request().Context()
	roomID := c.Param("room")
	participantID := c.Param("participant")

	var body startersBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid starters body")
	}

	health := -1.0
	if body.Health != nil {
		health = *body.Health
	}
	var contextMsgs []engine.Message
	for _, m := range body.Context {
		contextMsgs = append(contextMsgs, engine.Message{
			Sender:  m.Sender,
			Content: m.Content,
			Type:    m.Type,
		})
	}

	res := s.engine.RequestStarters(ctx, roomID, participantID, health, contextMsgs)
	return c.JSON(http.StatusOK, startersResponse{Result: res})
}

type starterUsedBody struct {
	Starter string `json:"starter"`
}

func (s *Server) HandleStarterUsed(c echo.Context) error {
	var body starterUsedBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid starter-used body")
	}
	s.engine.MarkStarterUsed(c.Param("room"), c.Param("participant"), body.Starter)
	return c.JSON(http.StatusOK, GenericStatus{Daemon: "guardian", Status: "ok"})
}

func (s *Server) HandleEndConversation(c echo.Context) error {
	s.engine.EndConversation(c.Param("room"))
	return c.JSON(http.StatusOK, GenericStatus{Daemon: "guardian", Status: "ok"})
}
