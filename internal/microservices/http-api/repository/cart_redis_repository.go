package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"kushfilms/internal/microservices/http-api/models"

	"github.com/redis/go-redis/v9"
)

// CartRepository keeps one cart per user. Quantities merge per food.
type CartRepository interface {
	// AddItem stores the item snapshot and adds item.Quantity to the line, returning the new quantity.
	AddItem(ctx context.Context, userID string, item models.CartItem) (int, error)
	// SetQuantity overwrites a line's quantity; ErrNotFound when the line is absent.
	SetQuantity(ctx context.Context, userID, foodID string, quantity int) error
	RemoveItem(ctx context.Context, userID, foodID string) error
	Items(ctx context.Context, userID string) ([]models.CartItem, error)
	Clear(ctx context.Context, userID string) error
}

// cartRedisRepository stores a cart as two hashes keyed by food id: one for the
// item snapshot and one for quantities, so increments stay atomic (HINCRBY).
type cartRedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartRepository(client *redis.Client, ttl time.Duration) CartRepository {
	return &cartRedisRepository{client: client, ttl: ttl}
}

func itemsKey(userID string) string { return fmt.Sprintf("cart:user:%s:items", userID) }
func qtyKey(userID string) string { return fmt.Sprintf("cart:user:%s:qty", userID) }

type cartSnapshot struct {
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image,omitempty"`
}

func (r *cartRedisRepository) AddItem(ctx context.Context, userID string, item models.CartItem) (int, error) {
	snapshot, err := json.Marshal(cartSnapshot{Name: item.Name, Price: item.Price.String(), Image: item.Image})
	if err != nil {
		return 0, err
	}

	var incr *redis.IntCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, itemsKey(userID), item.FoodID, snapshot)
		incr = pipe.HIncrBy(ctx, qtyKey(userID), item.FoodID, int64(item.Quantity))
		pipe.Expire(ctx, itemsKey(userID), r.ttl)
		pipe.Expire(ctx, qtyKey(userID), r.ttl)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("add cart item: %w", err)
	}
	return int(incr.Val()), nil
}

// setQuantityRetries bounds how often SetQuantity retries after a concurrent cart write.
const setQuantityRetries = 3

// SetQuantity watches both hashes so a concurrent RemoveItem or Clear cannot
// leave a quantity behind without its snapshot.
func (r *cartRedisRepository) SetQuantity(ctx context.Context, userID, foodID string, quantity int) error {
	items, qty := itemsKey(userID), qtyKey(userID)
	update := func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, items, foodID).Result()
		if err != nil {
			return fmt.Errorf("check cart item: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, qty, foodID, quantity)
			pipe.Expire(ctx, items, r.ttl)
			pipe.Expire(ctx, qty, r.ttl)
			return nil
		})
		return err
	}

	for range setQuantityRetries {
		err := r.client.Watch(ctx, update, items, qty)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil && !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("set cart quantity: %w", err)
		}
		return err
	}
	return fmt.Errorf("set cart quantity: %w", redis.TxFailedErr)
}

func (r *cartRedisRepository) RemoveItem(ctx context.Context, userID, foodID string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HDel(ctx, itemsKey(userID), foodID)
		pipe.HDel(ctx, qtyKey(userID), foodID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}

func (r *cartRedisRepository) Items(ctx context.Context, userID string) ([]models.CartItem, error) {
	snapshots, err := r.client.HGetAll(ctx, itemsKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read cart items: %w", err)
	}
	quantities, err := r.client.HGetAll(ctx, qtyKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read cart quantities: %w", err)
	}

	items := make([]models.CartItem, 0, len(quantities))
	for foodID, rawQty := range quantities {
		qty, err := strconv.Atoi(rawQty)
		if err != nil || qty <= 0 {
			continue
		}
		raw, ok := snapshots[foodID]
		if !ok {
			continue
		}
		var snap cartSnapshot
		if err := json.Unmarshal([]byte(raw), &snap); err != nil {
			continue
		}
		item := models.CartItem{FoodID: foodID, Name: snap.Name, Quantity: qty, Image: snap.Image}
		if err := item.Price.UnmarshalText([]byte(snap.Price)); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *cartRedisRepository) Clear(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, itemsKey(userID), qtyKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
