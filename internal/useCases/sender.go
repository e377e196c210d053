package useCases

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/larriantoniy/ig_user_client/internal/ports"
)

var ErrEmptyText = errors.New("empty message text")

const (
	typingBase    = 700 * time.Millisecond
	typingPerChar = 70 * time.Millisecond // ~14 символов/сек
	typingMax     = 7 * time.Second
)

// Sender отправляет сообщение в тред так, как это делает человек:
// прочитал, "печатает...", отправил.
type Sender struct {
	log *slog.Logger
	dm  ports.DirectMessenger

	typingDelay func(text string) time.Duration
}

func NewSender(log *slog.Logger, dm ports.DirectMessenger) *Sender {
	return &Sender{
		log:         log,
		dm:          dm,
		typingDelay: typingDuration,
	}
}

// SendText returns the upstream response of the send call. Seen and typing
// calls are cosmetic: their failures are logged, not returned.
func (s *Sender) SendText(ctx context.Context, threadID, text string) (json.RawMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		s.log.Info("Skip SendText: empty text", "thread_id", threadID)
		return nil, ErrEmptyText
	}

	if _, err := s.dm.MarkSeen(ctx, threadID); err != nil {
		s.log.Warn("MarkSeen failed", "thread_id", threadID, "error", err)
	}

	if _, err := s.dm.Typing(ctx, threadID, true); err != nil {
		s.log.Warn("Typing on failed", "thread_id", threadID, "error", err)
	} else if err := wait(ctx, s.typingDelay(text)); err != nil {
		s.log.Warn("SendText canceled during typing (shutdown?)", "error", err)
		return nil, err
	}

	resp, err := s.dm.SendText(ctx, threadID, text)
	if err != nil {
		s.log.Error("SendText", "thread_id", threadID, "error", err)
		return nil, err
	}

	if _, err := s.dm.Typing(ctx, threadID, false); err != nil {
		s.log.Warn("Typing off failed", "thread_id", threadID, "error", err)
	}
	return resp, nil
}

func typingDuration(text string) time.Duration {
	d := typingBase + time.Duration(len([]rune(text)))*typingPerChar
	if d > typingMax {
		d = typingMax
	}
	return d
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
