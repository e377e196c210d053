package ig

import (
	"context"
	"encoding/json"
	"net/url"
	"slices"

	"github.com/larriantoniy/ig_user_client/internal/domain"
)

const defaultReportReason = "spam"

// Posts wraps the media/* endpoints.
type Posts struct {
	tr *transport
}

func NewPosts(s *Session, h Headers, opts ...Option) *Posts {
	return &Posts{tr: newConfig(append(slices.Clip(opts), WithHeaders(h))).transport(s)}
}

func mediaPath(mediaID, action string) string {
	return "media/" + seg(mediaID) + "/" + action
}

func (p *Posts) Info(ctx context.Context, mediaID string) (json.RawMessage, error) {
	if err := required("mediaID", mediaID); err != nil {
		return nil, err
	}
	return p.tr.get(ctx, mediaPath(mediaID, "info/"), nil)
}

func (p *Posts) Like(ctx context.Context, mediaID string) (json.RawMessage, error) {
	return p.mediaAction(ctx, mediaID, "like/")
}

func (p *Posts) Unlike(ctx context.Context, mediaID string) (json.RawMessage, error) {
	return p.mediaAction(ctx, mediaID, "unlike/")
}

func (p *Posts) Delete(ctx context.Context, mediaID string) (json.RawMessage, error) {
	return p.mediaAction(ctx, mediaID, "delete/")
}

func (p *Posts) Save(ctx context.Context, mediaID string) (json.RawMessage, error) {
	return p.mediaAction(ctx, mediaID, "save/")
}

func (p *Posts) Unsave(ctx context.Context, mediaID string) (json.RawMessage, error) {
	return p.mediaAction(ctx, mediaID, "unsave/")
}

func (p *Posts) mediaAction(ctx context.Context, mediaID, action string) (json.RawMessage, error) {
	if err := required("mediaID", mediaID); err != nil {
		return nil, err
	}
	return p.tr.post(ctx, mediaPath(mediaID, action), nil)
}

func (p *Posts) Comment(ctx context.Context, mediaID, text string) (json.RawMessage, error) {
	if err := required("mediaID", mediaID, "text", text); err != nil {
		return nil, err
	}
	return p.tr.post(ctx, mediaPath(mediaID, "comment/"), url.Values{"comment_text": {text}})
}

func (p *Posts) DeleteComment(ctx context.Context, mediaID, commentID string) (json.RawMessage, error) {
	if err := required("mediaID", mediaID, "commentID", commentID); err != nil {
		return nil, err
	}
	return p.tr.post(ctx, mediaPath(mediaID, "comment/"+seg(commentID)+"/delete/"), nil)
}

func (p *Posts) EditCaption(ctx context.Context, mediaID, caption string) (json.RawMessage, error) {
	if err := required("mediaID", mediaID, "caption", caption); err != nil {
		return nil, err
	}
	return p.tr.post(ctx, mediaPath(mediaID, "edit_media/"), url.Values{"caption_text": {caption}})
}

// Report flags a post; an empty reason is sent as "spam".
func (p *Posts) Report(ctx context.Context, mediaID, reason string) (json.RawMessage, error) {
	if err := required("mediaID", mediaID); err != nil {
		return nil, err
	}
	if reason == "" {
		reason = defaultReportReason
	}
	return p.tr.post(ctx, mediaPath(mediaID, "report/"), url.Values{"reason": {reason}})
}

func (p *Posts) Likers(ctx context.Context, mediaID, cursor string) (json.RawMessage, error) {
	if err := required("mediaID", mediaID); err != nil {
		return nil, err
	}
	return p.tr.get(ctx, mediaPath(mediaID, "likers/"), cursorQuery(cursor))
}

func (p *Posts) Comments(ctx context.Context, mediaID, cursor string) (json.RawMessage, error) {
	if err := required("mediaID", mediaID); err != nil {
		return nil, err
	}
	return p.tr.get(ctx, mediaPath(mediaID, "comments/"), cursorQuery(cursor))
}

// Upload methods do not talk to the API: a real upload needs the multipart
// rupload flow. They require a session and acknowledge with the caption.

func (p *Posts) UploadPhoto(ctx context.Context, image []byte, caption string) (*domain.UploadAck, error) {
	return p.tr.uploadPlaceholder("Photo upload placeholder success", caption)
}

func (p *Posts) UploadVideo(ctx context.Context, video []byte, caption string) (*domain.UploadAck, error) {
	return p.tr.uploadPlaceholder("Video upload placeholder success", caption)
}

func (p *Posts) UploadStory(ctx context.Context, image []byte, caption string) (*domain.UploadAck, error) {
	return p.tr.uploadPlaceholder("Story upload placeholder success", caption)
}

func (t *transport) uploadPlaceholder(status, caption string) (*domain.UploadAck, error) {
	if !t.session.Active() {
		return nil, ErrNotLoggedIn
	}
	t.logger.Debug("upload placeholder", "status", status)
	return &domain.UploadAck{Status: status, Caption: caption}, nil
}
