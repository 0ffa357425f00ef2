package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vsinha/churrasco/pkg/application/dto"
	"github.com/vsinha/churrasco/pkg/domain/entities"
	domain "github.com/vsinha/churrasco/pkg/domain/services"
	"github.com/vsinha/churrasco/pkg/infrastructure/events"
)

// PlannerConfig holds configuration for a planner session
type PlannerConfig struct {
	// Bounds are the limits edits are held to before reconciliation
	Bounds domain.InputBounds
	// Strict rejects out-of-bounds edits instead of clamping them
	Strict bool
	// Initial is the configuration the session starts from
	Initial entities.Configuration
}

// DefaultPlannerConfig clamps edits to the default bounds and starts from the default configuration
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		Bounds:  domain.DefaultInputBounds(),
		Initial: entities.DefaultConfiguration(),
	}
}

// PlannerService owns the configuration of one planning session. Every
// accepted edit goes through the reconciler and is followed by a fresh
// estimate, so Plan never returns a stale result.
type PlannerService struct {
	config     PlannerConfig
	reconciler *domain.Reconciler
	estimator  *domain.Estimator
	summaries  *SummaryService
	store      events.EventStore
	sessionID  string

	current entities.Configuration
	result  entities.Result
	edits   int
}

// NewPlannerService starts a session with the default configuration
func NewPlannerService(store events.EventStore) *PlannerService {
	return NewPlannerServiceWithConfig(DefaultPlannerConfig(), store)
}

// NewPlannerServiceWithConfig starts a session with a custom configuration
func NewPlannerServiceWithConfig(config PlannerConfig, store events.EventStore) *PlannerService {
	if store == nil {
		store = events.NewInMemoryEventStore()
	}
	s := &PlannerService{
		config:     config,
		reconciler: domain.NewReconciler(),
		estimator:  domain.NewEstimator(),
		summaries:  NewSummaryService(),
		store:      store,
		sessionID:  uuid.NewString(),
		current:    config.Initial,
	}
	s.result = s.estimator.Estimate(s.current)
	return s
}

// SessionID identifies the session's event stream
func (s *PlannerService) SessionID() string {
	return s.sessionID
}

// Current returns the latest configuration
func (s *PlannerService) Current() entities.Configuration {
	return s.current
}

// Result returns the estimate of the latest configuration
func (s *PlannerService) Result() entities.Result {
	return s.result
}

// Apply reconciles patch into the session and re-estimates
func (s *PlannerService) Apply(patch entities.Patch) (*dto.Plan, error) {
	if s.config.Strict {
		if validation := s.config.Bounds.ValidatePatch(s.current, patch); !validation.Valid() {
			return nil, fmt.Errorf("edit rejected: %s", strings.Join(validation.Errors, "; "))
		}
	} else {
		patch = s.config.Bounds.ClampPatch(s.current, patch)
	}

	previous := s.current
	next := s.reconciler.Reconcile(previous, patch)
	// An explicit beer count always travels with the matching soft-drink count,
	// whichever path derived the rest of the configuration
	if patch.BeerDrinkers != nil && patch.SoftDrinkOnly == nil {
		next = s.reconciler.Reconcile(next, domain.BeerDrinkersPatch(next, next.BeerDrinkers))
	}
	s.current = next
	if err := s.store.AppendEvent(s.sessionID,
		events.NewConfigurationChangedEvent(s.sessionID, previous, s.current, patch)); err != nil {
		return nil, fmt.Errorf("failed to record configuration change: %w", err)
	}

	s.result = s.estimator.Estimate(s.current)
	s.edits++
	if err := s.store.AppendEvent(s.sessionID,
		events.NewResultRecomputedEvent(s.sessionID, s.current, s.result)); err != nil {
		return nil, fmt.Errorf("failed to record recomputed result: %w", err)
	}

	return s.Plan(), nil
}

// ApplyAll applies patches in order, stopping at the first rejected edit
func (s *PlannerService) ApplyAll(patches []entities.Patch) (*dto.Plan, error) {
	for i, patch := range patches {
		if _, err := s.Apply(patch); err != nil {
			return nil, fmt.Errorf("edit %d: %w", i+1, err)
		}
	}
	return s.Plan(), nil
}

// SetTotalPeople changes the guest total and re-derives the breakdown
func (s *PlannerService) SetTotalPeople(total int) (*dto.Plan, error) {
	return s.Apply(entities.Patch{TotalPeople: entities.Int(total)})
}

// SetBreakdown changes one of men, women or kids
func (s *PlannerService) SetBreakdown(field entities.Field, value int) (*dto.Plan, error) {
	var patch entities.Patch
	switch field {
	case entities.FieldMen:
		patch.Men = entities.Int(value)
	case entities.FieldWomen:
		patch.Women = entities.Int(value)
	case entities.FieldKids:
		patch.Kids = entities.Int(value)
	default:
		return nil, fmt.Errorf("%s is not a breakdown field", field)
	}
	return s.Apply(patch)
}

// SetBeerDrinkers changes the beer drinkers; everyone else drinks soft drinks only
func (s *PlannerService) SetBeerDrinkers(n int) (*dto.Plan, error) {
	return s.Apply(entities.Patch{BeerDrinkers: entities.Int(n)})
}

// SetDuration changes the event length in hours
func (s *PlannerService) SetDuration(hours decimal.Decimal) (*dto.Plan, error) {
	return s.Apply(entities.Patch{Duration: &hours})
}

// Plan returns the latest configuration with its estimate and summary
func (s *PlannerService) Plan() *dto.Plan {
	return &dto.Plan{
		SessionID:     s.sessionID,
		Configuration: s.current,
		Result:        s.result,
		Summary:       s.summaries.Summarize(s.current, s.result),
		Edits:         s.edits,
		ComputedAt:    time.Now(),
	}
}

// History returns the events recorded for this session
func (s *PlannerService) History() ([]events.Event, error) {
	return s.store.ReadEvents(s.sessionID, 1)
}
