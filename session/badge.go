// Package session keeps per-user UI state that in the old server-rendered
// version lived on the HTTP session: the cart badge ("sum"). It is advisory
// only — Cart.Sum in the database stays authoritative.
package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const badgeTTL = 24 * time.Hour

type BadgeStore struct {
	client *redis.Client
}

func NewBadgeStore(addr string) *BadgeStore {
	return &BadgeStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func badgeKey(userID uint) string {
	return fmt.Sprintf("laptopshop:cart-sum:%d", userID)
}

// SetCartSum publishes the current distinct-line-item count for a user.
func (s *BadgeStore) SetCartSum(ctx context.Context, userID uint, sum int) error {
	if s == nil {
		return nil
	}
	return s.client.Set(ctx, badgeKey(userID), sum, badgeTTL).Err()
}

// CartSum returns the published badge value, 0 if none was published.
func (s *BadgeStore) CartSum(ctx context.Context, userID uint) (int, error) {
	if s == nil {
		return 0, nil
	}
	val, err := s.client.Get(ctx, badgeKey(userID)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(val)
}
