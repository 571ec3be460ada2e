package speechkit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yandex-cloud/go-genproto/yandex/cloud/ai/stt/v3"
)

type Handle struct {
	client stt.Recognizer_RecognizeStreamingClient
	cancel context.CancelFunc
}

// SendConfig must be called once before any audio chunk. The recognizer
// expects raw 16 kHz mono PCM; the utterances are code-mixed English/Urdu
// spoken mostly with English phonetics, so the en-US model is used, same
// as the original assistant.
func (h *Handle) SendConfig() error {
	var audioFormatOpts stt.AudioFormatOptions
	audioFormatOpts.SetRawAudio(&stt.RawAudio{
		AudioEncoding:     stt.RawAudio_LINEAR16_PCM,
		SampleRateHertz:   16000,
		AudioChannelCount: 1,
	})

	var eouClassifier stt.EouClassifierOptions
	eouClassifier.SetDefaultClassifier(&stt.DefaultEouClassifier{
		Type:                       stt.DefaultEouClassifier_HIGH,
		MaxPauseBetweenWordsHintMs: 500,
	})

	var req stt.StreamingRequest
	req.SetSessionOptions(&stt.StreamingOptions{
		RecognitionModel: &stt.RecognitionModelOptions{
			Model:       "general",
			AudioFormat: &audioFormatOpts,
			LanguageRestriction: &stt.LanguageRestrictionOptions{
				RestrictionType: stt.LanguageRestrictionOptions_WHITELIST,
				LanguageCode:    []string{"en-US"},
			},
		},
		EouClassifier: &eouClassifier,
	})

	return h.client.Send(&req)
}

func (h *Handle) Send(content []byte) error {
	var req stt.StreamingRequest
	req.SetChunk(&stt.AudioChunk{
		Data: content,
	})

	return h.client.Send(&req)
}

// CloseSend signals end of audio so the recognizer can flush final results.
func (h *Handle) CloseSend() error {
	return h.client.CloseSend()
}

// Recv returns the next final utterance, taking the top alternative of a
// final event. Intermediate events yield an empty string; io.EOF marks the
// end of the stream.
func (h *Handle) Recv() (string, error) {
	res, err := h.client.Recv()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("failed to receive stt: %w", err)
	}

	finalEvent := res.GetFinal()
	if finalEvent == nil {
		return "", nil
	}

	for _, alt := range finalEvent.Alternatives {
		if text := strings.TrimSpace(alt.Text); text != "" {
			return text, nil
		}
	}

	return "", nil
}

func (h *Handle) Close() error {
	h.cancel()
	return nil
}
