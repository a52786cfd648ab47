package userstats

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/go-redis/redis/v8"

	"github.com/daya-2619/fitnesstracking/internal/apperr"
	"github.com/daya-2619/fitnesstracking/internal/telemetry/tracing"
)

// FriendGraph keeps the friend ids of each user in a redis set. An edge
// points one way only: befriending b as a does not add a to the friends of b.
type FriendGraph struct {
	redisClient *redis.Client
}

func NewFriendGraph(redisClient *redis.Client) *FriendGraph {
	return &FriendGraph{
		redisClient: redisClient,
	}
}

func friendsKey(ownerID string) string {
	return fmt.Sprintf("friends:%s", ownerID)
}

func validatePair(ownerID, friendID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return apperr.Invalid("ownerId", "required")
	}
	if strings.TrimSpace(friendID) == "" {
		return apperr.Invalid("friendId", "required")
	}
	if ownerID == friendID {
		return apperr.Invalid("friendId", "cannot befriend yourself")
	}
	return nil
}

// AddFriend is idempotent. RemoveFriend of a non-friend is a no-op.
func (g *FriendGraph) AddFriend(ctx context.Context, ownerID, friendID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.friends.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validatePair(ownerID, friendID); err != nil {
		return err
	}

	if err := g.redisClient.SAdd(ctx, friendsKey(ownerID), friendID).Err(); err != nil {
		return fmt.Errorf("add friend: %w", err)
	}
	return nil
}

func (g *FriendGraph) RemoveFriend(ctx context.Context, ownerID, friendID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.friends.remove")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := validatePair(ownerID, friendID); err != nil {
		return err
	}

	if err := g.redisClient.SRem(ctx, friendsKey(ownerID), friendID).Err(); err != nil {
		return fmt.Errorf("remove friend: %w", err)
	}
	return nil
}

// Friends returns the friend ids of the user, sorted.
func (g *FriendGraph) Friends(ctx context.Context, ownerID string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.friends.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	friends, err := g.redisClient.SMembers(ctx, friendsKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("get friends: %w", err)
	}
	slices.Sort(friends)
	return friends, nil
}

func (g *FriendGraph) AreFriends(ctx context.Context, ownerID, friendID string) (bool, error) {
	isMember, err := g.redisClient.SIsMember(ctx, friendsKey(ownerID), friendID).Result()
	if err != nil {
		return false, fmt.Errorf("check friends: %w", err)
	}
	return isMember, nil
}
