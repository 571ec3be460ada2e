package speechkit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"mosambot/app/config"

	"github.com/samber/do"
	ycsdk "github.com/yandex-cloud/go-sdk"
	"github.com/yandex-cloud/go-sdk/iamkey"
)

// ErrDisabled is returned when speech recognition is turned off in config.
var ErrDisabled = errors.New("speech recognition is disabled")

type Client struct {
	cfg *config.Config
	sdk *ycsdk.SDK
}

// NewClient builds the Yandex SpeechKit client. With speech disabled the
// client still constructs so the rest of the app can run without a key.
func NewClient(di *do.Injector) (*Client, error) {
	ctx := do.MustInvoke[context.Context](di)
	cfg := do.MustInvoke[*config.Config](di)

	if !cfg.Speech.Enabled {
		return &Client{cfg: cfg}, nil
	}

	keyBytes, err := os.ReadFile(cfg.Speech.KeyFile)
	if err != nil {
		return nil, fmt.Errorf("could not read service account key: %w", err)
	}

	var key iamkey.Key
	if err = json.Unmarshal(keyBytes, &key); err != nil {
		return nil, fmt.Errorf("could not parse service account key: %w", err)
	}

	creds, err := ycsdk.ServiceAccountKey(&key)
	if err != nil {
		return nil, fmt.Errorf("could not create service account key: %w", err)
	}

	sdk, err := ycsdk.Build(ctx, ycsdk.Config{
		Credentials: creds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Yandex SDK: %w", err)
	}

	return &Client{
		cfg: cfg,
		sdk: sdk,
	}, nil
}

func (c *Client) Enabled() bool {
	return c.sdk != nil
}

// Start opens a streaming recognition session.
func (c *Client) Start(ctx context.Context) (*Handle, error) {
	if c.sdk == nil {
		return nil, ErrDisabled
	}

	ctx, cancel := context.WithCancel(ctx)

	client, err := c.sdk.AI().STTV3().Recognizer().RecognizeStreaming(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create recognizer: %w", err)
	}

	return &Handle{
		client: client,
		cancel: cancel,
	}, nil
}
