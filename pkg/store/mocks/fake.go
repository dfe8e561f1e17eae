package mocks

import (
	"context"
	"path"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/netinspect/asicview/pkg/terrors"
)

// FakeStore is an in-memory Store for tests: a key -> attribute-hash map
// with optional forced errors per key.
type FakeStore struct {
	Data map[string]map[string]string
	// Errs forces an error for GetAttributes/GetAttribute on a key.
	Errs map[string]error
}

// NewFakeStore .
func NewFakeStore() *FakeStore {
	return &FakeStore{
		Data: map[string]map[string]string{},
		Errs: map[string]error{},
	}
}

// Set .
func (f *FakeStore) Set(key string, attrs map[string]string) *FakeStore {
	f.Data[key] = attrs
	return f
}

// ListKeys .
func (f *FakeStore) ListKeys(_ context.Context, pattern string) ([]string, error) {
	var keys []string
	for key := range f.Data {
		ok, err := path.Match(pattern, key)
		if err != nil {
			return nil, errors.Wrapf(err, "bad pattern %s", pattern)
		}
		if ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// GetAttributes .
func (f *FakeStore) GetAttributes(_ context.Context, key string) (map[string]string, error) {
	if err := f.Errs[key]; err != nil {
		return nil, err
	}

	attrs := map[string]string{}
	for k, v := range f.Data[key] {
		attrs[k] = v
	}
	return attrs, nil
}

// GetAttribute .
func (f *FakeStore) GetAttribute(_ context.Context, key, field string) (string, error) {
	if err := f.Errs[key]; err != nil {
		return "", err
	}

	attrs, ok := f.Data[key]
	if !ok {
		return "", errors.Wrapf(terrors.ErrKeyNotExists, "%s", key)
	}
	val, ok := attrs[field]
	if !ok {
		return "", errors.Wrapf(terrors.ErrKeyNotExists, "%s/%s", key, field)
	}
	return val, nil
}

// Close .
func (f *FakeStore) Close() error {
	return nil
}
