package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/cherry-12345/naksh-jewels/internal/domain"
)

const cartKeyPrefix = "cart:"

// addItemScript merges an add into an existing hash field, capping at the
// max quantity, as a single atomic step. Returns the stored quantity.
var addItemScript = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], ARGV[1])
local quantity = tonumber(ARGV[2])
local max = tonumber(ARGV[3])

if current then
	quantity = tonumber(current) + quantity
	if quantity > max then
		quantity = max
	end
end

redis.call('HSET', KEYS[1], ARGV[1], quantity)
return quantity
`)

// setQuantityScript overwrites an existing field only; returns 0 when the
// product has no line in the cart.
var setQuantityScript = redis.NewScript(`
if redis.call('HEXISTS', KEYS[1], ARGV[1]) == 0 then
	return 0
end
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
return 1
`)

// RedisCartStore keeps each cart as a hash keyed cart:<userID>. It satisfies
// the same contract as MemoryCartStore; carts carry no TTL and are removed
// only by Clear.
type RedisCartStore struct {
	client *redis.Client
	log    *logrus.Logger
}

func NewRedisCartStore(client *redis.Client, logger *logrus.Logger) *RedisCartStore {
	return &RedisCartStore{client: client, log: logger}
}

func cartKey(userID string) string { return cartKeyPrefix + userID }

func (s *RedisCartStore) Get(ctx context.Context, userID string) (map[int]int, error) {
	fields, err := s.client.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis cart get for user %s: %w", userID, err)
	}

	cart := make(map[int]int, len(fields))
	for field, value := range fields {
		productID, err := strconv.Atoi(field)
		if err != nil {
			s.log.Warnf("Cart store: skipping malformed hash field %q for user %s", field, userID)
			continue
		}
		quantity, err := strconv.Atoi(value)
		if err != nil {
			s.log.Warnf("Cart store: skipping malformed quantity %q for user %s", value, userID)
			continue
		}
		cart[productID] = quantity
	}
	return cart, nil
}

func (s *RedisCartStore) Add(ctx context.Context, userID string, productID, quantity int) (int, error) {
	stored, err := addItemScript.Run(ctx, s.client,
		[]string{cartKey(userID)}, productID, quantity, domain.MaxQuantity).Int()
	if err != nil {
		return 0, fmt.Errorf("redis cart add for user %s: %w", userID, err)
	}
	return stored, nil
}

func (s *RedisCartStore) SetQuantity(ctx context.Context, userID string, productID, quantity int) error {
	updated, err := setQuantityScript.Run(ctx, s.client,
		[]string{cartKey(userID)}, productID, quantity).Int()
	if err != nil {
		return fmt.Errorf("redis cart update for user %s: %w", userID, err)
	}
	if updated == 0 {
		return domain.ErrItemNotInCart
	}
	return nil
}

func (s *RedisCartStore) Remove(ctx context.Context, userID string, productID int) error {
	removed, err := s.client.HDel(ctx, cartKey(userID), strconv.Itoa(productID)).Result()
	if err != nil {
		return fmt.Errorf("redis cart remove for user %s: %w", userID, err)
	}
	if removed == 0 {
		return domain.ErrItemNotInCart
	}
	return nil
}

func (s *RedisCartStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis cart clear for user %s: %w", userID, err)
	}
	return nil
}

func (s *RedisCartStore) Count(ctx context.Context, userID string) (int, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, quantity := range cart {
		total += quantity
	}
	return total, nil
}
