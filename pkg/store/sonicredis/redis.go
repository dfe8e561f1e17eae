package sonicredis

import (
	"context"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"github.com/netinspect/asicview/configs"
	"github.com/netinspect/asicview/pkg/terrors"
)

const scanCount = 512

// Store is a redis-backed state database handle.
type Store struct {
	cli *redis.Client
}

// New dials addr and verifies the connection with a single ping.
// An addr starting with "/" is taken as a unix socket path.
func New(ctx context.Context, addr string, db int) (*Store, error) {
	network := "tcp"
	if strings.HasPrefix(addr, "/") {
		network = "unix"
	}

	cli := redis.NewClient(&redis.Options{
		Network:     network,
		Addr:        addr,
		DB:          db,
		DialTimeout: configs.Conf.DialTimeout.Duration(),
		ReadTimeout: configs.Conf.ReadTimeout.Duration(),
		MaxRetries:  -1, // exactly one attempt per query
	})

	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, errors.Wrapf(terrors.ErrNamespaceUnreachable, "%s: %v", addr, err)
	}

	return &Store{cli: cli}, nil
}

// ListKeys .
func (s *Store) ListKeys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := s.cli.Scan(ctx, 0, pattern, scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "scan %s", pattern)
	}

	// SCAN order is unspecified; keep the pre-sort display order stable.
	sort.Strings(keys)

	return keys, nil
}

// GetAttributes .
func (s *Store) GetAttributes(ctx context.Context, key string) (map[string]string, error) {
	attrs, err := s.cli.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "hgetall %s", key)
	}
	return attrs, nil
}

// GetAttribute .
func (s *Store) GetAttribute(ctx context.Context, key, field string) (string, error) {
	val, err := s.cli.HGet(ctx, key, field).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", errors.Wrapf(terrors.ErrKeyNotExists, "%s/%s", key, field)
	case err != nil:
		return "", errors.Wrapf(err, "hget %s %s", key, field)
	}
	return val, nil
}

// Close .
func (s *Store) Close() error {
	return s.cli.Close()
}
