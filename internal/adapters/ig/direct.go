package ig

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"

	"github.com/google/uuid"
	"github.com/larriantoniy/ig_user_client/internal/domain"
)

const defaultReaction = "❤️"

// Direct wraps the direct_v2 endpoints.
type Direct struct {
	tr *transport
}

// NewDirect builds a standalone module over an existing session.
func NewDirect(s *Session, h Headers, opts ...Option) *Direct {
	return &Direct{tr: newConfig(append(slices.Clip(opts), WithHeaders(h))).transport(s)}
}

// broadcastForm is the common body of every broadcast/* call.
// client_context is a fresh idempotency token per call.
func broadcastForm(threadID string) url.Values {
	form := url.Values{}
	form.Set("recipient_users", recipients(threadID))
	form.Set("client_context", uuid.NewString())
	form.Set("action", "send_item")
	return form
}

func (d *Direct) SendText(ctx context.Context, threadID, text string) (json.RawMessage, error) {
	if err := required("threadID", threadID, "text", text); err != nil {
		return nil, err
	}
	form := broadcastForm(threadID)
	form.Set("text", text)
	return d.tr.post(ctx, "direct_v2/threads/broadcast/text/", form)
}

func (d *Direct) SendPhoto(ctx context.Context, threadID, mediaID, caption string) (json.RawMessage, error) {
	if err := required("threadID", threadID, "photoID", mediaID); err != nil {
		return nil, err
	}
	return d.shareMedia(ctx, threadID, mediaID, caption)
}

func (d *Direct) SendVideo(ctx context.Context, threadID, mediaID, caption string) (json.RawMessage, error) {
	if err := required("threadID", threadID, "videoID", mediaID); err != nil {
		return nil, err
	}
	return d.shareMedia(ctx, threadID, mediaID, caption)
}

func (d *Direct) shareMedia(ctx context.Context, threadID, mediaID, caption string) (json.RawMessage, error) {
	form := broadcastForm(threadID)
	form.Set("media_id", mediaID)
	if caption != "" {
		form.Set("caption", caption)
	}
	return d.tr.post(ctx, "direct_v2/threads/broadcast/media_share/", form)
}

func (d *Direct) SendSticker(ctx context.Context, threadID, stickerID string) (json.RawMessage, error) {
	if err := required("threadID", threadID, "stickerID", stickerID); err != nil {
		return nil, err
	}
	form := broadcastForm(threadID)
	form.Set("sticker_id", stickerID)
	return d.tr.post(ctx, "direct_v2/threads/broadcast/sticker_share/", form)
}

// SendReaction reacts to a thread item; an empty reaction defaults to a heart.
func (d *Direct) SendReaction(ctx context.Context, threadID, itemID, reaction string) (json.RawMessage, error) {
	if err := required("threadID", threadID, "itemID", itemID); err != nil {
		return nil, err
	}
	if reaction == "" {
		reaction = defaultReaction
	}
	form := url.Values{}
	form.Set("reaction_type", reaction)
	form.Set("client_context", uuid.NewString())
	form.Set("thread_id", threadID)
	form.Set("item_id", itemID)
	return d.tr.post(ctx, "direct_v2/threads/item/react/", form)
}

func (d *Direct) Reply(ctx context.Context, threadID, itemID, text string) (json.RawMessage, error) {
	if err := required("threadID", threadID, "itemID", itemID, "text", text); err != nil {
		return nil, err
	}
	form := broadcastForm(threadID)
	form.Set("text", text)
	form.Set("replied_to_message_id", itemID)
	return d.tr.post(ctx, "direct_v2/threads/broadcast/text/", form)
}

// SendPoll needs a question and at least two options.
func (d *Direct) SendPoll(ctx context.Context, threadID, question string, options []string) (json.RawMessage, error) {
	if err := required("threadID", threadID, "question", question); err != nil {
		return nil, err
	}
	if len(options) < 2 {
		return nil, fmt.Errorf("%w: at least 2 poll options, got %d", ErrMissingArgument, len(options))
	}

	poll := domain.Poll{
		Question:      question,
		ViewerCanVote: true,
		PollOptions:   make([]domain.PollOption, 0, len(options)),
		PollVoters:    []string{},
		PollType:      "regular_poll",
	}
	for _, o := range options {
		poll.PollOptions = append(poll.PollOptions, domain.PollOption{Text: o, ID: uuid.NewString()})
	}
	pollJSON, err := marshalPayload(poll)
	if err != nil {
		return nil, fmt.Errorf("marshal poll: %w", err)
	}

	form := broadcastForm(threadID)
	form.Set("poll", pollJSON)
	return d.tr.post(ctx, "direct_v2/threads/broadcast/poll_share/", form)
}

func (d *Direct) Forward(ctx context.Context, threadID, itemID string) (json.RawMessage, error) {
	if err := required("threadID", threadID, "itemID", itemID); err != nil {
		return nil, err
	}
	form := broadcastForm(threadID)
	form.Set("forwarded_item_id", itemID)
	return d.tr.post(ctx, "direct_v2/threads/broadcast/forward_item/", form)
}

// Inbox fetches one inbox page; pass the previous page's cursor to continue.
func (d *Direct) Inbox(ctx context.Context, cursor string) (json.RawMessage, error) {
	return d.tr.get(ctx, "direct_v2/inbox/", cursorQuery(cursor))
}

// Thread returns the thread with its items, polls included.
func (d *Direct) Thread(ctx context.Context, threadID string) (json.RawMessage, error) {
	if err := required("threadID", threadID); err != nil {
		return nil, err
	}
	return d.tr.get(ctx, "direct_v2/threads/"+seg(threadID)+"/", nil)
}

func (d *Direct) DeleteMessage(ctx context.Context, threadID, itemID string) (json.RawMessage, error) {
	if err := required("threadID", threadID, "itemID", itemID); err != nil {
		return nil, err
	}
	form := url.Values{}
	form.Set("client_context", uuid.NewString())
	return d.tr.post(ctx, "direct_v2/threads/"+seg(threadID)+"/items/"+seg(itemID)+"/delete/", form)
}

func (d *Direct) MarkSeen(ctx context.Context, threadID string) (json.RawMessage, error) {
	if err := required("threadID", threadID); err != nil {
		return nil, err
	}
	form := url.Values{}
	form.Set("action", "mark_seen")
	form.Set("thread_id", threadID)
	return d.tr.post(ctx, "direct_v2/threads/mark_seen/", form)
}

func (d *Direct) Typing(ctx context.Context, threadID string, on bool) (json.RawMessage, error) {
	if err := required("threadID", threadID); err != nil {
		return nil, err
	}
	typing := "0"
	if on {
		typing = "1"
	}
	form := url.Values{}
	form.Set("thread_id", threadID)
	form.Set("typing", typing)
	return d.tr.post(ctx, "direct_v2/threads/typing_indicator/", form)
}

// BlockUser blocks a participant from messaging the account.
func (d *Direct) BlockUser(ctx context.Context, userID string) (json.RawMessage, error) {
	if err := required("userID", userID); err != nil {
		return nil, err
	}
	return d.tr.post(ctx, "direct_v2/threads/block/"+seg(userID)+"/", nil)
}

func (d *Direct) UnblockUser(ctx context.Context, userID string) (json.RawMessage, error) {
	if err := required("userID", userID); err != nil {
		return nil, err
	}
	return d.tr.post(ctx, "direct_v2/threads/unblock/"+seg(userID)+"/", nil)
}
