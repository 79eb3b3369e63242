package store

import (
	"context"
	"strconv"
	"sync"
	"time"

	"weather-app/internal/domain/entity"
	"weather-app/internal/domain/model"
)

// MemoryScreenStore keeps screens in process memory.
// Like the Redis store, a screen expires ttl after it was mounted; a zero ttl keeps screens until deleted.
type MemoryScreenStore struct {
	homes    map[string]memoryEntry[*entity.HomeScreen]
	weathers map[string]memoryEntry[*entity.WeatherScreen]
	ttl      time.Duration
	now      func() time.Time
	mutex    sync.RWMutex
}

type memoryEntry[T any] struct {
	screen    T
	expiresAt time.Time
}

func (e memoryEntry[T]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

func NewMemoryScreenStore(ttl time.Duration) *MemoryScreenStore {
	return &MemoryScreenStore{
		homes:    make(map[string]memoryEntry[*entity.HomeScreen]),
		weathers: make(map[string]memoryEntry[*entity.WeatherScreen]),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryScreenStore) expiresAt() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return s.now().Add(s.ttl)
}

func (s *MemoryScreenStore) CreateHome(_ context.Context, screen *entity.HomeScreen) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.homes[screen.ID] = memoryEntry[*entity.HomeScreen]{screen: cloneHome(screen), expiresAt: s.expiresAt()}
	return nil
}

func (s *MemoryScreenStore) GetHome(_ context.Context, id string) (*entity.HomeScreen, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.homes[id]
	if !exists || entry.expired(s.now()) {
		return nil, ErrScreenNotFound
	}
	return cloneHome(entry.screen), nil
}

func (s *MemoryScreenStore) UpdateHome(_ context.Context, id string, mutate HomeMutation) (*entity.HomeScreen, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, exists := s.homes[id]
	if !exists {
		return nil, ErrScreenNotFound
	}
	if current.expired(s.now()) {
		delete(s.homes, id)
		return nil, ErrScreenNotFound
	}

	draft := cloneHome(current.screen)
	if err := mutate(draft); err != nil {
		return nil, err
	}
	s.homes[id] = memoryEntry[*entity.HomeScreen]{screen: draft, expiresAt: current.expiresAt}
	return cloneHome(draft), nil
}

func (s *MemoryScreenStore) DeleteHome(_ context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, exists := s.homes[id]
	if !exists {
		return ErrScreenNotFound
	}
	delete(s.homes, id)
	if current.expired(s.now()) {
		return ErrScreenNotFound
	}
	return nil
}

func (s *MemoryScreenStore) CreateWeather(_ context.Context, screen *entity.WeatherScreen) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.weathers[screen.ID] = memoryEntry[*entity.WeatherScreen]{screen: cloneWeather(screen), expiresAt: s.expiresAt()}
	return nil
}

func (s *MemoryScreenStore) GetWeather(_ context.Context, id string) (*entity.WeatherScreen, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.weathers[id]
	if !exists || entry.expired(s.now()) {
		return nil, ErrScreenNotFound
	}
	return cloneWeather(entry.screen), nil
}

func (s *MemoryScreenStore) UpdateWeather(_ context.Context, id string, mutate WeatherMutation) (*entity.WeatherScreen, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, exists := s.weathers[id]
	if !exists {
		return nil, ErrScreenNotFound
	}
	if current.expired(s.now()) {
		delete(s.weathers, id)
		return nil, ErrScreenNotFound
	}

	draft := cloneWeather(current.screen)
	if err := mutate(draft); err != nil {
		return nil, err
	}
	s.weathers[id] = memoryEntry[*entity.WeatherScreen]{screen: draft, expiresAt: current.expiresAt}
	return cloneWeather(draft), nil
}

func (s *MemoryScreenStore) DeleteWeather(_ context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, exists := s.weathers[id]
	if !exists {
		return ErrScreenNotFound
	}
	delete(s.weathers, id)
	if current.expired(s.now()) {
		return ErrScreenNotFound
	}
	return nil
}

// Sweep drops every screen expired at now and returns how many were dropped
func (s *MemoryScreenStore) Sweep(_ context.Context, now time.Time) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	removed := 0
	for id, entry := range s.homes {
		if entry.expired(now) {
			delete(s.homes, id)
			removed++
		}
	}
	for id, entry := range s.weathers {
		if entry.expired(now) {
			delete(s.weathers, id)
			removed++
		}
	}
	return removed, nil
}

// Health reports the number of mounted screens; memory is always up
func (s *MemoryScreenStore) Health(_ context.Context) model.ComponentHealthStatus {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"type":            "memory",
			"home_screens":    strconv.Itoa(len(s.homes)),
			"weather_screens": strconv.Itoa(len(s.weathers)),
		},
	}
}
