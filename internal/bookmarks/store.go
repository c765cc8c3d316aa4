package bookmarks

import (
	"context"
	"sort"

	"github.com/redis/go-redis/v9"
)

// Store keeps each user's bookmarked problem slugs in a Redis set.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store { return &Store{rdb: rdb} }

func key(username string) string { return "bookmarks:" + username }

// List returns the user's bookmarked slugs sorted for stable output.
func (s *Store) List(ctx context.Context, username string) ([]string, error) {
	slugs, err := s.rdb.SMembers(ctx, key(username)).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(slugs)
	return slugs, nil
}

// Toggle adds the slug when absent and removes it when present, then
// returns the updated list.
func (s *Store) Toggle(ctx context.Context, username, slug string) ([]string, error) {
	k := key(username)

	bookmarked, err := s.rdb.SIsMember(ctx, k, slug).Result()
	if err != nil {
		return nil, err
	}

	if bookmarked {
		err = s.rdb.SRem(ctx, k, slug).Err()
	} else {
		err = s.rdb.SAdd(ctx, k, slug).Err()
	}
	if err != nil {
		return nil, err
	}

	return s.List(ctx, username)
}
