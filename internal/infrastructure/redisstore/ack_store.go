// Package redisstore contiene adaptadores respaldados por Redis.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jortizdev/stockvista-api/internal/domain/repository"
)

var _ repository.AlertAckStore = (*AckStore)(nil)

const ackKeyPrefix = "stockvista:alert:ack:"

// AckStore guarda los reconocimientos de alertas en Redis con TTL. Pasado el
// TTL la alerta vuelve a aparecer si la condición de stock persiste, que es
// el comportamiento deseado: un reconocimiento no es permanente.
type AckStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAckStore(client *redis.Client, ttl time.Duration) *AckStore {
	return &AckStore{client: client, ttl: ttl}
}

// NewClient construye y verifica el cliente Redis compartido.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conectar a redis: %w", err)
	}
	return client, nil
}

func (s *AckStore) Acknowledge(ctx context.Context, alertID string) error {
	if err := s.client.Set(ctx, ackKeyPrefix+alertID, "1", s.ttl).Err(); err != nil {
		return fmt.Errorf("guardar ack: %w", err)
	}
	return nil
}

func (s *AckStore) IsAcknowledged(ctx context.Context, alertID string) (bool, error) {
	err := s.client.Get(ctx, ackKeyPrefix+alertID).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("leer ack: %w", err)
	}
	return true, nil
}

// Filter resuelve todos los IDs con un solo MGET; las claves ausentes vienen
// como nil y se reportan como no reconocidas.
func (s *AckStore) Filter(ctx context.Context, alertIDs []string) (map[string]bool, error) {
	acked := make(map[string]bool, len(alertIDs))
	if len(alertIDs) == 0 {
		return acked, nil
	}
	keys := make([]string, len(alertIDs))
	for i, id := range alertIDs {
		keys[i] = ackKeyPrefix + id
	}
	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("leer acks: %w", err)
	}
	for i, v := range vals {
		if v != nil {
			acked[alertIDs[i]] = true
		}
	}
	return acked, nil
}
