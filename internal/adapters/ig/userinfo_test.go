package ig

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basicInfoBody = `{"user":{"pk":"42","username":"bob","follower_count":1200,"following_count":35,"is_private":true,"is_verified":false},"status":"ok"}`

func TestBasicInfoUnwrapsUser(t *testing.T) {
	rec := newRecorder(http.StatusOK, basicInfoBody)
	info := newLoggedInClient(rec).UserInfo()

	user, err := info.BasicInfo(context.Background(), "42")
	require.NoError(t, err)
	assert.JSONEq(t, `{"pk":"42","username":"bob","follower_count":1200,"following_count":35,"is_private":true,"is_verified":false}`, string(user))
	assert.Equal(t, "users/42/info/", rec.last(t).Path)
	assert.Equal(t, http.MethodGet, rec.last(t).Method)
}

func TestDerivedUserInfo(t *testing.T) {
	rec := newRecorder(http.StatusOK, basicInfoBody)
	info := newLoggedInClient(rec).UserInfo()
	ctx := context.Background()

	followers, err := info.FollowersCount(ctx, "42")
	require.NoError(t, err)
	assert.EqualValues(t, 1200, followers)

	following, err := info.FollowingCount(ctx, "42")
	require.NoError(t, err)
	assert.EqualValues(t, 35, following)

	private, err := info.IsPrivate(ctx, "42")
	require.NoError(t, err)
	assert.True(t, private)

	verified, err := info.IsVerified(ctx, "42")
	require.NoError(t, err)
	assert.False(t, verified)

	assert.Len(t, rec.requests(), 4)
}

func TestUserInfoFallbacks(t *testing.T) {
	rec := newRecorder(http.StatusOK, `{"status":"ok"}`)
	info := newLoggedInClient(rec).UserInfo()
	ctx := context.Background()

	stories, err := info.Stories(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "null", string(stories))
	assert.Equal(t, "feed/user/42/reel_media/", rec.last(t).Path)

	highlights, err := info.Highlights(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(highlights))
	assert.Equal(t, "highlights/user/42/highlights_tray/", rec.last(t).Path)

	followers, err := info.Followers(ctx, "42", "")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(followers))

	rec.body = `{"reel":{"id":"42","items":[]}}`
	stories, err = info.Stories(ctx, "42")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"42","items":[]}`, string(stories))
}

func TestDerivedUserInfoDefaults(t *testing.T) {
	for name, body := range map[string]string{
		"no user object": `{"status":"ok"}`,
		"null user":      `{"user":null}`,
		"no fields":      `{"user":{"username":"bob"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			info := newLoggedInClient(newRecorder(http.StatusOK, body)).UserInfo()
			ctx := context.Background()

			followers, err := info.FollowersCount(ctx, "42")
			require.NoError(t, err)
			assert.Zero(t, followers)

			following, err := info.FollowingCount(ctx, "42")
			require.NoError(t, err)
			assert.Zero(t, following)

			private, err := info.IsPrivate(ctx, "42")
			require.NoError(t, err)
			assert.False(t, private)

			verified, err := info.IsVerified(ctx, "42")
			require.NoError(t, err)
			assert.False(t, verified)
		})
	}
}

func TestUserInfoVerbatimEndpoints(t *testing.T) {
	const upstream = `{"items":[],"more_available":false}`
	rec := newRecorder(http.StatusOK, upstream)
	info := newLoggedInClient(rec).UserInfo()
	ctx := context.Background()

	feed, err := info.Feed(ctx, "42", "")
	require.NoError(t, err)
	assert.Equal(t, upstream, string(feed))
	assert.Equal(t, testBaseURL+"/feed/user/42/", rec.last(t).URL)

	_, err = info.TaggedMedia(ctx, "42", "c1")
	require.NoError(t, err)
	assert.Equal(t, "users/42/tagged_media/", rec.last(t).Path)
	assert.Equal(t, "c1", rec.last(t).Query.Get("max_id"))

	_, err = info.Following(ctx, "42", "c2")
	require.NoError(t, err)
	assert.Equal(t, "friendships/42/following/", rec.last(t).Path)
	assert.Equal(t, "c2", rec.last(t).Query.Get("max_id"))

	live, err := info.LiveInfo(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, upstream, string(live))
	assert.Equal(t, "live/42/info/", rec.last(t).Path)
}

func TestUserInfoErrorsNameTheLookup(t *testing.T) {
	rec := newRecorder(http.StatusNotFound, `{"message":"User not found"}`)
	info := newLoggedInClient(rec).UserInfo()
	ctx := context.Background()

	_, err := info.BasicInfo(ctx, "42")
	require.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "failed to get basic user info")

	_, err = info.FollowersCount(ctx, "42")
	require.ErrorIs(t, err, ErrRequestFailed)
	assert.Contains(t, err.Error(), "failed to get followers count")

	_, err = info.Highlights(ctx, "")
	require.ErrorIs(t, err, ErrMissingArgument)
	assert.Contains(t, err.Error(), "failed to get highlights")
	assert.Len(t, rec.requests(), 2)

	rec.status = http.StatusOK
	rec.body = `not json`
	_, err = info.Stories(ctx, "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get user stories")
}
