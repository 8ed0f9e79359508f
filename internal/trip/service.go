package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid input")
)

// Broadcaster fans updated public-trip snapshots out to share-link viewers.
type Broadcaster interface {
	Broadcast(channel string, payload []byte)
}

// Service owns the in-memory trip collection. Every structural change goes
// through it so derived fields (feasibility, order numbers, updatedAt) stay
// consistent, and the whole collection is written back to the store after
// each mutation. Returned trips are deep clones; callers can't reach the
// canonical tree.
type Service struct {
	mu           sync.Mutex
	store        Store
	hub          Broadcaster
	shareBaseURL string
	trips        []Trip

	now   func() time.Time
	newID func() string
}

func NewService(store Store, shareBaseURL string, hub Broadcaster) *Service {
	s := &Service{
		store:        store,
		hub:          hub,
		shareBaseURL: strings.TrimRight(shareBaseURL, "/"),
		now:          time.Now,
		newID:        uuid.NewString,
	}
	trips, err := store.Load(context.Background())
	if err != nil {
		slog.Warn("trip store load failed, starting with empty collection", "error", err)
		return s
	}
	s.trips = trips
	return s
}

func (s *Service) Trips(_ context.Context) []Trip {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Trip, len(s.trips))
	for i := range s.trips {
		out[i] = cloneTrip(s.trips[i])
	}
	return out
}

func (s *Service) GetTrip(_ context.Context, id string) (Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.findTrip(id)
	if err != nil {
		return Trip{}, err
	}
	return cloneTrip(*t), nil
}

func (s *Service) CreateTrip(ctx context.Context, input Trip) (Trip, error) {
	if strings.TrimSpace(input.Name) == "" {
		return Trip{}, fmt.Errorf("trip name is required: %w", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	t := input
	t.ID = s.newID()
	t.Cities = []City{}
	t.Status = "draft"
	t.IsPublic = false
	t.ShareID = ""
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Currency == "" {
		t.Currency = "INR"
	}

	s.trips = append(s.trips, t)
	s.persist(ctx, &s.trips[len(s.trips)-1])
	return cloneTrip(t), nil
}

func (s *Service) UpdateTrip(ctx context.Context, id string, patch TripPatch) (Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.findTrip(id)
	if err != nil {
		return Trip{}, err
	}

	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.CoverImage != nil {
		t.CoverImage = *patch.CoverImage
	}
	if patch.StartDate != nil {
		t.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		t.EndDate = *patch.EndDate
	}
	if patch.TravelerCount != nil {
		t.TravelerCount = *patch.TravelerCount
	}
	if patch.TotalBudget != nil {
		t.TotalBudget = *patch.TotalBudget
	}
	if patch.Currency != nil {
		t.Currency = *patch.Currency
	}
	if patch.TripType != nil {
		t.TripType = *patch.TripType
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.IsPublic != nil {
		// ShareID is never revoked here; old links keep resolving only
		// while the trip stays public.
		t.IsPublic = *patch.IsPublic
	}
	if patch.Cities != nil {
		// Wholesale replacement: trust nothing, recompute every label.
		t.Cities = cloneCities(*patch.Cities)
		refreshFeasibility(t.Cities)
	}

	t.UpdatedAt = s.now().UTC()
	s.persist(ctx, t)
	return cloneTrip(*t), nil
}

func (s *Service) DeleteTrip(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.trips {
		if s.trips[i].ID == id {
			s.trips = append(s.trips[:i], s.trips[i+1:]...)
			s.persist(ctx, nil)
			return nil
		}
	}
	return fmt.Errorf("trip %s: %w", id, ErrNotFound)
}

func (s *Service) AddCity(ctx context.Context, tripID string, input City) (Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.findTrip(tripID)
	if err != nil {
		return Trip{}, err
	}

	c := input
	c.ID = s.newID()
	c.Order = len(t.Cities) + 1
	c.Days = []Day{}
	t.Cities = append(t.Cities, c)

	t.UpdatedAt = s.now().UTC()
	s.persist(ctx, t)
	return cloneTrip(*t), nil
}

func (s *Service) UpdateCity(ctx context.Context, tripID, cityID string, patch CityPatch) (Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.findTrip(tripID)
	if err != nil {
		return Trip{}, err
	}
	c, err := findCity(t, cityID)
	if err != nil {
		return Trip{}, err
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Country != nil {
		c.Country = *patch.Country
	}
	if patch.Image != nil {
		c.Image = *patch.Image
	}

	t.UpdatedAt = s.now().UTC()
	s.persist(ctx, t)
	return cloneTrip(*t), nil
}

// RemoveCity cascades deletion of the city's days and activities. Remaining
// order values are not renumbered; only an explicit reorder does that.
func (s *Service) RemoveCity(ctx context.Context, tripID, cityID string) (Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.findTrip(tripID)
	if err != nil {
		return Trip{}, err
	}

	for i := range t.Cities {
		if t.Cities[i].ID == cityID {
			t.Cities = append(t.Cities[:i], t.Cities[i+1:]...)
			t.UpdatedAt = s.now().UTC()
			s.persist(ctx, t)
			return cloneTrip(*t), nil
		}
	}
	return Trip{}, fmt.Errorf("city %s: %w", cityID, ErrNotFound)
}

// ReorderCities removes the city at sourceIndex, reinserts it at destIndex,
// and renumbers every order field 1..N by new position.
func (s *Service) ReorderCities(ctx context.Context, tripID string, sourceIndex, destIndex int) (Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.findTrip(tripID)
	if err != nil {
		return Trip{}, err
	}
	if sourceIndex < 0 || sourceIndex >= len(t.Cities) || destIndex < 0 || destIndex >= len(t.Cities) {
		return Trip{}, fmt.Errorf("reorder index out of range: %w", ErrValidation)
	}

	moved := t.Cities[sourceIndex]
	t.Cities = append(t.Cities[:sourceIndex], t.Cities[sourceIndex+1:]...)
	t.Cities = append(t.Cities[:destIndex], append([]City{moved}, t.Cities[destIndex:]...)...)
	for i := range t.Cities {
		t.Cities[i].Order = i + 1
	}

	t.UpdatedAt = s.now().UTC()
	s.persist(ctx, t)
	return cloneTrip(*t), nil
}

func (s *Service) AddDay(ctx context.Context, tripID, cityID string, input Day) (Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.findTrip(tripID)
	if err != nil {
		return Trip{}, err
	}
	c, err := findCity(t, cityID)
	if err != nil {
		return Trip{}, err
	}

	d := input
	d.ID = s.newID()
	if d.DayNumber <= 0 {
		d.DayNumber = len(c.Days) + 1
	}
	d.Feasibility = FeasibilitySmooth
	d.Activities = []Activity{}
	c.Days = append(c.Days, d)

	t.UpdatedAt = s.now().UTC()
	s.persist(ctx, t)
	return cloneTrip(*t), nil
}

func (s *Service) AddActivity(ctx context.Context, tripID, cityID, dayID string, input Activity) (Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, d, err := s.findDay(tripID, cityID, dayID)
	if err != nil {
		return Trip{}, err
	}

	a := input
	a.ID = s.newID()
	a.Type = NormalizeActivityType(a.Type)
	d.Activities = append(d.Activities, a)
	d.Feasibility = Classify(d.Activities)

	t.UpdatedAt = s.now().UTC()
	s.persist(ctx, t)
	return cloneTrip(*t), nil
}

func (s *Service) UpdateActivity(ctx context.Context, tripID, cityID, dayID, activityID string, patch ActivityPatch) (Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, d, err := s.findDay(tripID, cityID, dayID)
	if err != nil {
		return Trip{}, err
	}

	idx := activityIndex(d, activityID)
	if idx < 0 {
		return Trip{}, fmt.Errorf("activity %s: %w", activityID, ErrNotFound)
	}

	a := &d.Activities[idx]
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.Type != nil {
		a.Type = NormalizeActivityType(*patch.Type)
	}
	if patch.Time != nil {
		a.Time = *patch.Time
	}
	if patch.Duration != nil {
		duration := *patch.Duration
		a.Duration = &duration
	}
	if patch.Cost != nil {
		a.Cost = *patch.Cost
	}
	if patch.Notes != nil {
		a.Notes = *patch.Notes
	}
	d.Feasibility = Classify(d.Activities)

	t.UpdatedAt = s.now().UTC()
	s.persist(ctx, t)
	return cloneTrip(*t), nil
}

func (s *Service) RemoveActivity(ctx context.Context, tripID, cityID, dayID, activityID string) (Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, d, err := s.findDay(tripID, cityID, dayID)
	if err != nil {
		return Trip{}, err
	}

	idx := activityIndex(d, activityID)
	if idx < 0 {
		return Trip{}, fmt.Errorf("activity %s: %w", activityID, ErrNotFound)
	}

	d.Activities = append(d.Activities[:idx], d.Activities[idx+1:]...)
	d.Feasibility = Classify(d.Activities)

	t.UpdatedAt = s.now().UTC()
	s.persist(ctx, t)
	return cloneTrip(*t), nil
}

// MoveActivity relocates one activity between days. The move is
// all-or-nothing: everything is resolved and bounds-checked before either
// list is touched, so a missing activity or bad index leaves both days
// exactly as they were. Source and destination may be the same day.
func (s *Service) MoveActivity(ctx context.Context, tripID string, mv MoveRequest) (Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, src, err := s.findDay(tripID, mv.SourceCityID, mv.SourceDayID)
	if err != nil {
		return Trip{}, err
	}
	_, dest, err := s.findDay(tripID, mv.DestCityID, mv.DestDayID)
	if err != nil {
		return Trip{}, err
	}

	idx := activityIndex(src, mv.ActivityID)
	if idx < 0 {
		return Trip{}, fmt.Errorf("activity %s: %w", mv.ActivityID, ErrNotFound)
	}

	destLen := len(dest.Activities)
	if src == dest {
		destLen--
	}
	if mv.DestIndex < 0 || mv.DestIndex > destLen {
		return Trip{}, fmt.Errorf("destination index out of range: %w", ErrValidation)
	}

	moved := src.Activities[idx]
	src.Activities = append(src.Activities[:idx], src.Activities[idx+1:]...)
	dest.Activities = append(dest.Activities[:mv.DestIndex],
		append([]Activity{moved}, dest.Activities[mv.DestIndex:]...)...)

	src.Feasibility = Classify(src.Activities)
	if src != dest {
		dest.Feasibility = Classify(dest.Activities)
	}

	t.UpdatedAt = s.now().UTC()
	s.persist(ctx, t)
	return cloneTrip(*t), nil
}

// GenerateShareLink marks the trip public, persists a collision-resistant
// share identifier, and returns the fully qualified share URL.
func (s *Service) GenerateShareLink(ctx context.Context, tripID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.findTrip(tripID)
	if err != nil {
		return "", err
	}

	t.ShareID = "share-" + t.ID + "-" + strconv.FormatInt(s.now().UnixNano(), 36)
	t.IsPublic = true
	t.UpdatedAt = s.now().UTC()
	s.persist(ctx, t)
	return s.shareBaseURL + "/share/" + t.ShareID, nil
}

// SharedTrip resolves a share identifier back to its trip. Trips that have
// been made private again keep their shareId but stop resolving.
func (s *Service) SharedTrip(_ context.Context, shareID string) (Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.trips {
		if s.trips[i].ShareID == shareID && s.trips[i].IsPublic {
			return cloneTrip(s.trips[i]), nil
		}
	}
	return Trip{}, fmt.Errorf("shared trip %s: %w", shareID, ErrNotFound)
}

// CopyTrip deep-clones a trip's full tree under a new id. The copy starts
// private with fresh timestamps and no share identifier.
func (s *Service) CopyTrip(ctx context.Context, tripID string) (Trip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.findTrip(tripID)
	if err != nil {
		return Trip{}, err
	}

	now := s.now().UTC()
	copied := cloneTrip(*t)
	copied.ID = s.newID()
	copied.Name = t.Name + " (Copy)"
	copied.IsPublic = false
	copied.ShareID = ""
	copied.CreatedAt = now
	copied.UpdatedAt = now

	s.trips = append(s.trips, copied)
	s.persist(ctx, nil)
	return cloneTrip(copied), nil
}

func (s *Service) TripBudget(_ context.Context, tripID string) (BudgetSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.findTrip(tripID)
	if err != nil {
		return BudgetSummary{}, err
	}
	return AggregateBudget(t), nil
}

func (s *Service) findTrip(id string) (*Trip, error) {
	for i := range s.trips {
		if s.trips[i].ID == id {
			return &s.trips[i], nil
		}
	}
	return nil, fmt.Errorf("trip %s: %w", id, ErrNotFound)
}

func (s *Service) findDay(tripID, cityID, dayID string) (*Trip, *Day, error) {
	t, err := s.findTrip(tripID)
	if err != nil {
		return nil, nil, err
	}
	c, err := findCity(t, cityID)
	if err != nil {
		return nil, nil, err
	}
	for i := range c.Days {
		if c.Days[i].ID == dayID {
			return t, &c.Days[i], nil
		}
	}
	return nil, nil, fmt.Errorf("day %s: %w", dayID, ErrNotFound)
}

func findCity(t *Trip, cityID string) (*City, error) {
	for i := range t.Cities {
		if t.Cities[i].ID == cityID {
			return &t.Cities[i], nil
		}
	}
	return nil, fmt.Errorf("city %s: %w", cityID, ErrNotFound)
}

func activityIndex(d *Day, activityID string) int {
	for i := range d.Activities {
		if d.Activities[i].ID == activityID {
			return i
		}
	}
	return -1
}

// persist writes the whole collection back and, when the changed trip is
// shared, pushes its fresh snapshot to stream viewers. A store failure is
// non-fatal: the in-memory state stays authoritative.
func (s *Service) persist(ctx context.Context, changed *Trip) {
	if err := s.store.Save(ctx, s.trips); err != nil {
		slog.Warn("trip store save failed, keeping in-memory state", "error", err)
	}
	if s.hub == nil || changed == nil || !changed.IsPublic || changed.ShareID == "" {
		return
	}
	payload, err := json.Marshal(cloneTrip(*changed))
	if err != nil {
		return
	}
	s.hub.Broadcast(changed.ShareID, payload)
}

func refreshFeasibility(cities []City) {
	for ci := range cities {
		for di := range cities[ci].Days {
			cities[ci].Days[di].Feasibility = Classify(cities[ci].Days[di].Activities)
		}
	}
}

func cloneTrip(t Trip) Trip {
	out := t
	out.Cities = cloneCities(t.Cities)
	return out
}

func cloneCities(cities []City) []City {
	if cities == nil {
		return nil
	}
	out := make([]City, len(cities))
	for i, c := range cities {
		out[i] = c
		out[i].Days = cloneDays(c.Days)
	}
	return out
}

func cloneDays(days []Day) []Day {
	if days == nil {
		return nil
	}
	out := make([]Day, len(days))
	for i, d := range days {
		out[i] = d
		out[i].Activities = cloneActivities(d.Activities)
	}
	return out
}

func cloneActivities(activities []Activity) []Activity {
	if activities == nil {
		return nil
	}
	out := make([]Activity, len(activities))
	for i, a := range activities {
		out[i] = a
		if a.Duration != nil {
			duration := *a.Duration
			out[i].Duration = &duration
		}
	}
	return out
}
