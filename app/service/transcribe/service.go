package transcribe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"mosambot/app/client/speechkit"

	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

const bufferSize = 4096

// Service turns an audio stream into the utterances spoken in it.
type Service struct {
	speechClient *speechkit.Client
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		speechClient: do.MustInvoke[*speechkit.Client](di),
	}, nil
}

func (s *Service) Enabled() bool {
	return s.speechClient.Enabled()
}

// Utterances streams raw PCM audio to the recognizer and collects the
// final utterances in order. It returns speechkit.ErrDisabled when speech
// recognition is not configured.
func (s *Service) Utterances(ctx context.Context, audio io.Reader) ([]string, error) {
	handle, err := s.speechClient.Start(ctx)
	if err != nil {
		return nil, fmt.Errorf("start recognizer: %w", err)
	}
	defer handle.Close()

	if err = handle.SendConfig(); err != nil {
		return nil, fmt.Errorf("send recognizer config: %w", err)
	}

	var (
		mu         sync.Mutex
		utterances []string
	)

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		buf := make([]byte, bufferSize)

		for {
			n, readErr := audio.Read(buf)
			if n > 0 {
				if sendErr := handle.Send(buf[:n]); sendErr != nil {
					return fmt.Errorf("send audio chunk: %w", sendErr)
				}
			}

			if errors.Is(readErr, io.EOF) {
				return handle.CloseSend()
			}
			if readErr != nil {
				return fmt.Errorf("read audio: %w", readErr)
			}
		}
	})

	g.Go(func() error {
		for {
			text, recvErr := handle.Recv()
			if errors.Is(recvErr, io.EOF) {
				return nil
			}
			if recvErr != nil {
				return recvErr
			}

			if text == "" {
				continue
			}

			mu.Lock()
			utterances = append(utterances, text)
			mu.Unlock()
		}
	})

	if err = g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("Transcription finished", "utterances", len(utterances))

	return utterances, nil
}
