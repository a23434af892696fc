// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-gazelle/gazelle"
	"github.com/MKhiriev/go-gazelle/models"
	"github.com/spf13/cobra"
)

// buildFunc turns parsed arguments into the call to make.
type buildFunc func(cmd *cobra.Command, args []string) (endpointFunc, error)

func newEndpointCommand(use, short string, args cobra.PositionalArgs, build buildFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := build(cmd, args)
			if err != nil {
				return err
			}
			return runEndpoint(fn)(cmd, args)
		},
	}
}

func endpointCommands() []*cobra.Command {
	index := newEndpointCommand("index", "Basic data about the logged in account", cobra.NoArgs,
		func(_ *cobra.Command, _ []string) (endpointFunc, error) {
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.Index(ctx, extra)
			}, nil
		})

	user := newEndpointCommand("user <id>", "User profile", cobra.ExactArgs(1),
		func(_ *cobra.Command, args []string) (endpointFunc, error) {
			id, err := intArg(args[0], "id")
			if err != nil {
				return nil, err
			}
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.User(ctx, id, extra)
			}, nil
		})

	inbox := newEndpointCommand("inbox", "Inbox or sentbox messages", cobra.NoArgs,
		func(cmd *cobra.Command, _ []string) (endpointFunc, error) {
			page, err := cmd.Flags().GetInt(flagPage)
			if err != nil {
				return nil, err
			}
			inboxType, err := cmd.Flags().GetString(flagType)
			if err != nil {
				return nil, err
			}
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.Inbox(ctx, page, inboxType, extra)
			}, nil
		})
	pageFlag(inbox)
	inbox.Flags().String(flagType, gazelle.DefaultInboxType, "Box to list: inbox or sentbox")

	conversation := newEndpointCommand("conversation <id>", "One inbox conversation", cobra.ExactArgs(1),
		func(_ *cobra.Command, args []string) (endpointFunc, error) {
			id, err := intArg(args[0], "id")
			if err != nil {
				return nil, err
			}
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.Conversation(ctx, id, extra)
			}, nil
		})

	top10 := newEndpointCommand("top10", "Top torrents, tags or users", cobra.NoArgs,
		func(cmd *cobra.Command, _ []string) (endpointFunc, error) {
			topType, err := cmd.Flags().GetString(flagType)
			if err != nil {
				return nil, err
			}
			limit, err := cmd.Flags().GetInt(flagLimit)
			if err != nil {
				return nil, err
			}
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.Top10(ctx, topType, limit, extra)
			}, nil
		})
	top10.Flags().String(flagType, gazelle.DefaultTop10Type, "List to show: torrents, tags or users")
	top10.Flags().Int(flagLimit, gazelle.DefaultTop10Limit, "Entries per list")

	userSearch := newEndpointCommand("usersearch <search>", "Find users by name", cobra.ExactArgs(1),
		func(cmd *cobra.Command, args []string) (endpointFunc, error) {
			page, err := cmd.Flags().GetInt(flagPage)
			if err != nil {
				return nil, err
			}
			search := args[0]
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.UserSearch(ctx, search, page, extra)
			}, nil
		})
	pageFlag(userSearch)

	requests := newEndpointCommand("requests", "Search requests", cobra.NoArgs,
		func(cmd *cobra.Command, _ []string) (endpointFunc, error) {
			page, err := cmd.Flags().GetInt(flagPage)
			if err != nil {
				return nil, err
			}
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.Requests(ctx, page, extra)
			}, nil
		})
	pageFlag(requests)

	torrents := newEndpointCommand("torrents [searchstr]", "Search torrents", cobra.MaximumNArgs(1),
		func(cmd *cobra.Command, args []string) (endpointFunc, error) {
			page, err := cmd.Flags().GetInt(flagPage)
			if err != nil {
				return nil, err
			}
			var lookup models.Params
			if len(args) == 1 {
				lookup = models.Params{"searchstr": args[0]}
			}
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.Torrents(ctx, page, lookup.Merge(extra))
			}, nil
		})
	pageFlag(torrents)

	bookmarks := newEndpointCommand("bookmarks", "Bookmarked torrents or artists", cobra.NoArgs,
		func(cmd *cobra.Command, _ []string) (endpointFunc, error) {
			bookmarkType, err := cmd.Flags().GetString(flagType)
			if err != nil {
				return nil, err
			}
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.Bookmarks(ctx, bookmarkType, extra)
			}, nil
		})
	bookmarks.Flags().String(flagType, gazelle.DefaultBookmarkType, "Bookmarks to list: torrents or artists")

	subscriptions := newEndpointCommand("subscriptions", "Subscribed threads", cobra.NoArgs,
		func(cmd *cobra.Command, _ []string) (endpointFunc, error) {
			all, err := cmd.Flags().GetBool(flagAll)
			if err != nil {
				return nil, err
			}
			showUnread := gazelle.SubscriptionsUnreadOnly
			if all {
				showUnread = gazelle.SubscriptionsAll
			}
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.Subscriptions(ctx, showUnread, extra)
			}, nil
		})
	subscriptions.Flags().Bool(flagAll, false, "Include threads without unread posts")

	forums := newEndpointCommand("forums", "Forum index", cobra.NoArgs,
		func(_ *cobra.Command, _ []string) (endpointFunc, error) {
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.Forums(ctx, extra)
			}, nil
		})

	forum := newEndpointCommand("forum <forum-id>", "Threads of one forum", cobra.ExactArgs(1),
		func(cmd *cobra.Command, args []string) (endpointFunc, error) {
			forumID, err := intArg(args[0], "forum-id")
			if err != nil {
				return nil, err
			}
			page, err := cmd.Flags().GetInt(flagPage)
			if err != nil {
				return nil, err
			}
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.ForumView(ctx, forumID, page, extra)
			}, nil
		})
	pageFlag(forum)

	thread := newEndpointCommand("thread <thread-id>", "Posts of one thread", cobra.ExactArgs(1),
		func(cmd *cobra.Command, args []string) (endpointFunc, error) {
			threadID, err := intArg(args[0], "thread-id")
			if err != nil {
				return nil, err
			}
			page, err := cmd.Flags().GetInt(flagPage)
			if err != nil {
				return nil, err
			}
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.ThreadView(ctx, threadID, page, extra)
			}, nil
		})
	pageFlag(thread)

	artist := newEndpointCommand("artist <id|name>", "Artist by id or name", cobra.ExactArgs(1),
		func(_ *cobra.Command, args []string) (endpointFunc, error) {
			lookup := lookupParams(args[0], "artistname")
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.Artist(ctx, lookup.Merge(extra))
			}, nil
		})

	torrent := newEndpointCommand("torrent <id|hash>", "Torrent by id or info hash", cobra.ExactArgs(1),
		func(_ *cobra.Command, args []string) (endpointFunc, error) {
			lookup := lookupParams(args[0], "hash")
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.Torrent(ctx, lookup.Merge(extra))
			}, nil
		})

	torrentGroup := newEndpointCommand("torrentgroup <id|hash>", "Torrent group by id or info hash", cobra.ExactArgs(1),
		func(_ *cobra.Command, args []string) (endpointFunc, error) {
			lookup := lookupParams(args[0], "hash")
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.TorrentGroup(ctx, lookup.Merge(extra))
			}, nil
		})

	request := newEndpointCommand("request <id>", "Request and its comments", cobra.ExactArgs(1),
		func(cmd *cobra.Command, args []string) (endpointFunc, error) {
			id, err := intArg(args[0], "id")
			if err != nil {
				return nil, err
			}
			page, err := cmd.Flags().GetInt(flagPage)
			if err != nil {
				return nil, err
			}
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.Request(ctx, id, page, extra)
			}, nil
		})
	pageFlag(request)

	collage := newEndpointCommand("collage <id>", "Collage by id", cobra.ExactArgs(1),
		func(_ *cobra.Command, args []string) (endpointFunc, error) {
			id, err := intArg(args[0], "id")
			if err != nil {
				return nil, err
			}
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.Collages(ctx, id, extra)
			}, nil
		})

	notifications := newEndpointCommand("notifications", "Torrent notifications", cobra.NoArgs,
		func(cmd *cobra.Command, _ []string) (endpointFunc, error) {
			page, err := cmd.Flags().GetInt(flagPage)
			if err != nil {
				return nil, err
			}
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.Notifications(ctx, page, extra)
			}, nil
		})
	pageFlag(notifications)

	similar := newEndpointCommand("similar-artists <artist-id>", "Artists similar to one artist", cobra.ExactArgs(1),
		func(cmd *cobra.Command, args []string) (endpointFunc, error) {
			artistID, err := intArg(args[0], "artist-id")
			if err != nil {
				return nil, err
			}
			limit, err := cmd.Flags().GetInt(flagLimit)
			if err != nil {
				return nil, err
			}
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.SimilarArtists(ctx, artistID, limit, extra)
			}, nil
		})
	similar.Flags().Int(flagLimit, gazelle.DefaultTop10Limit, "Maximum number of artists")

	announcements := newEndpointCommand("announcements", "Site announcements and blog posts", cobra.NoArgs,
		func(_ *cobra.Command, _ []string) (endpointFunc, error) {
			return func(ctx context.Context, c *gazelle.Client, extra models.Params) (models.Response, error) {
				return c.Announcements(ctx, extra)
			}, nil
		})

	return []*cobra.Command{
		index, user, inbox, conversation, top10, userSearch, requests,
		torrents, bookmarks, subscriptions, forums, forum, thread, artist,
		torrent, torrentGroup, request, collage, notifications, similar,
		announcements,
	}
}

func pageFlag(cmd *cobra.Command) {
	cmd.Flags().Int(flagPage, gazelle.DefaultPage, "Result page")
}

func intArg(s, name string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number, got %q", ErrInvalidArgument, name, s)
	}
	return v, nil
}

// lookupParams sends a numeric argument as id and anything else under
// nameKey.
func lookupParams(arg, nameKey string) models.Params {
	if _, err := strconv.Atoi(arg); err == nil {
		return models.Params{"id": arg}
	}
	return models.Params{nameKey: arg}
}
