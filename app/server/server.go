package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mosambot/app/client/speechkit"
	"mosambot/app/config"
	"mosambot/app/service/dialogue"
	"mosambot/app/service/session"
	"mosambot/app/service/transcribe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do"
)

// Server exposes the dialogue over HTTP: one endpoint per turn, one for
// audio transcription and a health probe. Each API client owns a session.
type Server struct {
	cfg           *config.Config
	app           *fiber.App
	sessionSvc    *session.Service
	dialogueSvc   *dialogue.Service
	transcribeSvc *transcribe.Service
	validate      *validator.Validate
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" validate:"required,max=500"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
	End       bool   `json:"end"`
}

type transcribeResponse struct {
	Utterances []string `json:"utterances"`
}

func New(di *do.Injector) (*Server, error) {
	s := &Server{
		cfg:           do.MustInvoke[*config.Config](di),
		sessionSvc:    do.MustInvoke[*session.Service](di),
		dialogueSvc:   do.MustInvoke[*dialogue.Service](di),
		transcribeSvc: do.MustInvoke[*transcribe.Service](di),
		validate:      validator.New(validator.WithRequiredStructEnabled()),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Get("/api/health", s.handleHealth)
	app.Post("/api/chat", s.handleChat)
	app.Post("/api/transcribe", s.handleTranscribe)

	s.app = app

	return s, nil
}

// Run serves the API until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.app.Shutdown()
	}()

	slog.Info("HTTP API listening", "addr", s.cfg.Server.Addr)

	if err := s.app.Listen(s.cfg.Server.Addr); err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	return nil
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleChat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := s.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	id, conv := s.sessionSvc.GetOrCreate(req.SessionID)

	reply := s.dialogueSvc.HandleTurn(c.UserContext(), conv, req.Message)

	resp := chatResponse{
		SessionID: id,
		Reply:     reply,
	}

	if reply == dialogue.SignalExit {
		s.sessionSvc.Remove(id)
		resp.Reply = dialogue.Farewell
		resp.End = true
	}

	return c.JSON(resp)
}

func (s *Server) handleTranscribe(c *fiber.Ctx) error {
	if !s.transcribeSvc.Enabled() {
		return fiber.NewError(fiber.StatusServiceUnavailable, "speech recognition is disabled")
	}

	body := c.Body()
	if len(body) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "empty audio body")
	}

	utterances, err := s.transcribeSvc.Utterances(c.UserContext(), bytes.NewReader(body))
	if err != nil {
		if errors.Is(err, speechkit.ErrDisabled) {
			return fiber.NewError(fiber.StatusServiceUnavailable, "speech recognition is disabled")
		}

		slog.Error("Transcription failed", "error", err)

		return fiber.NewError(fiber.StatusBadGateway, "transcription failed")
	}

	return c.JSON(transcribeResponse{Utterances: utterances})
}
