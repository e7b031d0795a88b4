package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

type memoryObject struct {
	data        []byte
	contentType string
	createdAt   time.Time
}

// Memory is an in-process ObjectStore for tests and local development.
type Memory struct {
	mu      sync.RWMutex
	buckets map[string]map[string]memoryObject
	baseURL string

	clock func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		buckets: make(map[string]map[string]memoryObject),
		baseURL: "http://localhost/storage",
		clock:   time.Now,
	}
}

// SetClock overrides the timestamp source so tests can pin creation times.
func (m *Memory) SetClock(clock func() time.Time) { m.clock = clock }

func (m *Memory) List(ctx context.Context, bucket, prefix string) ([]Object, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p := strings.TrimRight(prefix, "/") + "/"

	var objects []Object
	for key, obj := range m.buckets[bucket] {
		if !strings.HasPrefix(key, p) {
			continue
		}
		name := strings.TrimPrefix(key, p)
		if name == "" || strings.Contains(name, "/") {
			continue
		}
		objects = append(objects, Object{
			Name:      name,
			Size:      int64(len(obj.data)),
			CreatedAt: obj.createdAt,
		})
	}

	// Map iteration order is random; a real listing is key-ordered.
	sort.Slice(objects, func(i, j int) bool { return objects[i].Name < objects[j].Name })

	return objects, nil
}

func (m *Memory) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.buckets[bucket][key]; ok {
		return ErrObjectExists
	}
	if m.buckets[bucket] == nil {
		m.buckets[bucket] = make(map[string]memoryObject)
	}

	cp := make([]byte, len(data))
	copy(cp, data)
	m.buckets[bucket][key] = memoryObject{data: cp, contentType: contentType, createdAt: m.clock()}
	return nil
}

func (m *Memory) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	obj, ok := m.buckets[bucket][key]
	if !ok {
		return nil, ErrObjectNotFound
	}

	cp := make([]byte, len(obj.data))
	copy(cp, obj.data)
	return cp, nil
}

func (m *Memory) Remove(ctx context.Context, bucket string, keys []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, k := range keys {
		delete(m.buckets[bucket], k)
	}
	return nil
}

func (m *Memory) PublicURL(bucket, key string) string {
	return m.baseURL + "/" + bucket + "/" + key
}
