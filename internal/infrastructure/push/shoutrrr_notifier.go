package push

import (
	"context"
	"fmt"
	"io"
	"log"
	"slices"
	"time"

	"gestao_cortinas/internal/usecase/interfaces"

	shoutrrr "github.com/nicholas-fedor/shoutrrr"
	router "github.com/nicholas-fedor/shoutrrr/pkg/router"
	stypes "github.com/nicholas-fedor/shoutrrr/pkg/types"
)

// ShoutrrrNotifier sends ops summaries to every configured shoutrrr URL
// (telegram://, slack://, discord://, generic://...).
type ShoutrrrNotifier struct {
	urls   []string
	sender *router.ServiceRouter
}

var _ interfaces.IOpsNotifier = (*ShoutrrrNotifier)(nil)

func NewShoutrrrNotifier(urls []string, timeout time.Duration) (*ShoutrrrNotifier, error) {
	if len(urls) == 0 {
		return nil, fmt.Errorf("at least one URL is required")
	}
	sender, err := shoutrrr.CreateSender(urls...)
	if err != nil {
		return nil, fmt.Errorf("invalid push url: %w", err)
	}
	if timeout > 0 {
		sender.Timeout = timeout
	}
	sender.SetLogger(log.New(io.Discard, "", 0))
	return &ShoutrrrNotifier{urls: slices.Clone(urls), sender: sender}, nil
}

// Notify sends to every URL. It returns when the sends finish or ctx is done;
// an abandoned send still ends within the sender timeout.
func (s *ShoutrrrNotifier) Notify(ctx context.Context, title, message string) error {
	if s == nil || s.sender == nil {
		return fmt.Errorf("shoutrrr sender not initialized")
	}

	params := stypes.Params{}
	if title != "" {
		params.SetTitle(title)
	}

	done := make(chan error, 1)
	go func() {
		for _, err := range s.sender.Send(message, &params) {
			if err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("push notify: %w", ctx.Err())
	}
}
