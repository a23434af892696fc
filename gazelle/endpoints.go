// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gazelle

import (
	"context"
	"strconv"

	"github.com/MKhiriev/go-gazelle/models"
)

// Defaults used by the tracker when an argument is omitted.
const (
	DefaultPage             = 1
	DefaultInboxType        = "inbox"
	DefaultTop10Type        = "torrents"
	DefaultTop10Limit       = 10
	DefaultBookmarkType     = "torrents"
	SubscriptionsUnreadOnly = 1
	SubscriptionsAll        = 0
)

// Every endpoint method passes extra as special parameters: a key in extra
// replaces the value the method would otherwise send.

func (c *Client) call(ctx context.Context, action string, params, extra models.Params) (models.Response, error) {
	return c.adapter.Call(ctx, action, params, extra)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

// Index returns basic data about the logged in user.
func (c *Client) Index(ctx context.Context, extra models.Params) (models.Response, error) {
	return c.call(ctx, "index", nil, extra)
}

// User returns the profile of user id.
func (c *Client) User(ctx context.Context, id int, extra models.Params) (models.Response, error) {
	return c.call(ctx, "user", models.Params{"id": itoa(id)}, extra)
}

// Inbox lists messages; inboxType is "inbox" or "sentbox". Useful extras are
// sort=unread, search and searchtype.
func (c *Client) Inbox(ctx context.Context, page int, inboxType string, extra models.Params) (models.Response, error) {
	return c.call(ctx, "inbox", models.Params{"page": itoa(page), "type": inboxType}, extra)
}

// Conversation returns one inbox conversation.
func (c *Client) Conversation(ctx context.Context, id int, extra models.Params) (models.Response, error) {
	return c.call(ctx, "inbox", models.Params{"type": "viewconv", "id": itoa(id)}, extra)
}

// Top10 returns the top list of topType ("torrents", "tags" or "users").
func (c *Client) Top10(ctx context.Context, topType string, limit int, extra models.Params) (models.Response, error) {
	return c.call(ctx, "top10", models.Params{"type": topType, "limit": itoa(limit)}, extra)
}

// UserSearch finds users matching search.
func (c *Client) UserSearch(ctx context.Context, search string, page int, extra models.Params) (models.Response, error) {
	return c.call(ctx, "usersearch", models.Params{"search": search, "page": itoa(page)}, extra)
}

// Requests searches requests. Useful extras are search, tag, tags_type and
// show_filled.
func (c *Client) Requests(ctx context.Context, page int, extra models.Params) (models.Response, error) {
	return c.call(ctx, "requests", models.Params{"page": itoa(page)}, extra)
}

// Torrents searches torrents, typically with a searchstr extra.
func (c *Client) Torrents(ctx context.Context, page int, extra models.Params) (models.Response, error) {
	return c.call(ctx, "browse", models.Params{"page": itoa(page)}, extra)
}

// Bookmarks lists bookmarks of bookmarkType ("torrents" or "artists").
func (c *Client) Bookmarks(ctx context.Context, bookmarkType string, extra models.Params) (models.Response, error) {
	return c.call(ctx, "bookmarks", models.Params{"type": bookmarkType}, extra)
}

// Subscriptions returns the subscription feed; showUnread is
// [SubscriptionsUnreadOnly] or [SubscriptionsAll].
func (c *Client) Subscriptions(ctx context.Context, showUnread int, extra models.Params) (models.Response, error) {
	return c.call(ctx, "subscriptions", models.Params{"showunread": itoa(showUnread)}, extra)
}

// Forums lists the forum index.
func (c *Client) Forums(ctx context.Context, extra models.Params) (models.Response, error) {
	return c.call(ctx, "forum", models.Params{"type": "main"}, extra)
}

// ForumView returns one page of threads of a forum.
func (c *Client) ForumView(ctx context.Context, forumID, page int, extra models.Params) (models.Response, error) {
	return c.call(ctx, "forum", models.Params{
		"type":    "viewforum",
		"forumid": itoa(forumID),
		"page":    itoa(page),
	}, extra)
}

// ThreadView returns one page of posts of a thread. Useful extras are postid
// and updatelastread.
func (c *Client) ThreadView(ctx context.Context, threadID, page int, extra models.Params) (models.Response, error) {
	return c.call(ctx, "forum", models.Params{
		"type":     "viewthread",
		"threadid": itoa(threadID),
		"page":     itoa(page),
	}, extra)
}

// Artist looks an artist up by the id or artistname extra.
func (c *Client) Artist(ctx context.Context, extra models.Params) (models.Response, error) {
	return c.call(ctx, "artist", nil, extra)
}

// Torrent looks a torrent up by the id or hash extra.
func (c *Client) Torrent(ctx context.Context, extra models.Params) (models.Response, error) {
	return c.call(ctx, "torrent", nil, extra)
}

// TorrentGroup looks a torrent group up by the id or hash extra.
func (c *Client) TorrentGroup(ctx context.Context, extra models.Params) (models.Response, error) {
	return c.call(ctx, "torrentgroup", nil, extra)
}

// Request returns a request and one page of its comments.
func (c *Client) Request(ctx context.Context, id, page int, extra models.Params) (models.Response, error) {
	return c.call(ctx, "request", models.Params{"id": itoa(id), "page": itoa(page)}, extra)
}

// Collages returns the collage id.
func (c *Client) Collages(ctx context.Context, id int, extra models.Params) (models.Response, error) {
	return c.call(ctx, "collage", models.Params{"id": itoa(id)}, extra)
}

// Notifications returns one page of torrent notifications.
func (c *Client) Notifications(ctx context.Context, page int, extra models.Params) (models.Response, error) {
	return c.call(ctx, "notifications", models.Params{"page": itoa(page)}, extra)
}

// SimilarArtists returns up to limit artists similar to artistID.
func (c *Client) SimilarArtists(ctx context.Context, artistID, limit int, extra models.Params) (models.Response, error) {
	return c.call(ctx, "similar_artists", models.Params{"id": itoa(artistID), "limit": itoa(limit)}, extra)
}

// Announcements returns site announcements and blog posts.
func (c *Client) Announcements(ctx context.Context, extra models.Params) (models.Response, error) {
	return c.call(ctx, "announcements", nil, extra)
}
