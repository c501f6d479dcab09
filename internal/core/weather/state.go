package weather

import (
	"context"
	"encoding/json"
	"sync"

	"myweather.app/internal/ports"
)

// Reducer produces the next state from the previous one without mutating it
type Reducer func(UiState) UiState

func chain(reducers ...Reducer) Reducer {
	return func(s UiState) UiState {
		for _, r := range reducers {
			s = r(s)
		}
		return s
	}
}

func identity(s UiState) UiState { return s }

func begin(s UiState) UiState {
	s.pending++
	s.IsLoading = true
	return s
}

func settle(s UiState) UiState {
	if s.pending > 0 {
		s.pending--
	}
	s.IsLoading = s.pending > 0
	return s
}

func beginCurrentWeather(s UiState) UiState {
	s = begin(s)
	s.DailyWeather = nil
	s.ErrorMessage = nil
	return s
}

func beginForecast(s UiState) UiState {
	s = begin(s)
	s.ErrorMessage = nil
	return s
}

func withDailyWeather(view CurrentWeatherView) Reducer {
	return func(s UiState) UiState {
		s.DailyWeather = &view
		return s
	}
}

func withForecast(view ForecastView) Reducer {
	return func(s UiState) UiState {
		s.Forecast = &view
		return s
	}
}

func withSearchResults(results []SearchResultView) Reducer {
	return func(s UiState) UiState {
		s.SearchResults = results
		return s
	}
}

func withError(message string) Reducer {
	return func(s UiState) UiState {
		s.ErrorMessage = &message
		return s
	}
}

func withLocationFallback(fellBack bool) Reducer {
	return func(s UiState) UiState {
		s.LocationFallback = fellBack
		return s
	}
}

// StateStore publishes UiState snapshots atomically to any number of subscribers.
// Slow subscribers only ever see the newest snapshot.
type StateStore struct {
	mu          sync.RWMutex
	state       UiState
	subscribers map[uint64]chan UiState
	nextID      uint64
}

// NewStateStore creates a store holding initial
func NewStateStore(initial UiState) *StateStore {
	return &StateStore{
		state:       initial,
		subscribers: make(map[uint64]chan UiState),
	}
}

// Current returns the latest snapshot
func (s *StateStore) Current() UiState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Update applies r and broadcasts the result
func (s *StateStore) Update(r Reducer) UiState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = r(s.state)
	for _, ch := range s.subscribers {
		offer(ch, s.state)
	}
	return s.state
}

// Subscribe returns a channel that immediately receives the current snapshot
// followed by every later one. The cancel func closes the channel.
func (s *StateStore) Subscribe(buffer int) (<-chan UiState, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan UiState, buffer)

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = ch
	ch <- s.state
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			close(ch)
			s.mu.Unlock()
		})
	}
	return ch, cancel
}

// Relay forwards every snapshot as JSON to publisher until ctx is done
func (s *StateStore) Relay(ctx context.Context, publisher ports.StatePublisher, logger ports.Logger) {
	updates, cancel := s.Subscribe(1)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-updates:
			if !ok {
				return
			}
			payload, err := json.Marshal(state)
			if err != nil {
				logger.Error("Failed to encode state snapshot", ports.F("error", err))
				continue
			}
			if err := publisher.Publish(ctx, payload); err != nil {
				logger.Warn("Failed to publish state snapshot", ports.F("error", err))
			}
		}
	}
}

// offer replaces a pending snapshot when the channel is full
func offer(ch chan UiState, state UiState) {
	for {
		select {
		case ch <- state:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
