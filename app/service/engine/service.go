package engine

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"mosambot/app/config"
	"mosambot/app/service/dialogue"
	"mosambot/app/service/queue"
	"mosambot/app/service/session"

	"github.com/samber/do"
)

// Service runs the interactive console chat: stdin lines go through the
// utterance queue, each turn produces exactly one printed reply.
type Service struct {
	cfg         *config.Config
	sessionSvc  *session.Service
	dialogueSvc *dialogue.Service
	queueSvc    *queue.Service
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		cfg:         do.MustInvoke[*config.Config](di),
		sessionSvc:  do.MustInvoke[*session.Service](di),
		dialogueSvc: do.MustInvoke[*dialogue.Service](di),
		queueSvc:    do.MustInvoke[*queue.Service](di),
	}, nil
}

// Run blocks until the user exits the chat or the context is cancelled.
func (s *Service) Run(ctx context.Context) {
	id, conv := s.sessionSvc.Create()
	defer s.sessionSvc.Remove(id)

	fmt.Println("Bot: " + dialogue.Greeting)

	go s.readInput(ctx, id)

	for {
		select {
		case <-ctx.Done():
			return

		case turn, ok := <-s.queueSvc.Channel():
			if !ok {
				return
			}

			start := time.Now()
			reply := s.dialogueSvc.HandleTurn(ctx, conv, turn.Text)

			slog.Debug("Processed turn",
				"session_id", turn.SessionID,
				"duration", time.Since(start),
			)

			if reply == dialogue.SignalExit {
				fmt.Println("Bot: " + dialogue.Farewell)
				return
			}

			fmt.Println("Bot: " + reply)
		}
	}
}

func (s *Service) readInput(ctx context.Context, sessionID string) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("You: ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				slog.Error("Failed to read console input", "error", err)
			}
			return
		}

		select {
		case <-ctx.Done():
			return
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		s.queueSvc.Add(sessionID, line)
	}
}
