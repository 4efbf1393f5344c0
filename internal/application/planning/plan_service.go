package planning

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/smartgrocer/backend/internal/domain/pantry"
	"github.com/smartgrocer/backend/internal/domain/planning"
	"github.com/smartgrocer/backend/internal/domain/shared"
)

// ExpiringItemsProvider supplies the items the reminder scan is currently
// alerting about, used to steer plan generation toward stock at risk.
type ExpiringItemsProvider interface {
	ExpiringItems(ctx context.Context) ([]string, error)
}

// PlanService generates meal plans and reconciles them against the inventory
type PlanService struct {
	planner     planning.Planner
	entries     pantry.EntryRepository
	expiring    ExpiringItemsProvider
	validate    *validator.Validate
	defaultDays int
}

// NewPlanService creates a new PlanService. defaultDays is the plan length
// used when a request does not name one.
func NewPlanService(
	planner planning.Planner,
	entries pantry.EntryRepository,
	expiring ExpiringItemsProvider,
	defaultDays int,
) *PlanService {
	if defaultDays < 1 {
		defaultDays = 3
	}
	return &PlanService{
		planner:     planner,
		entries:     entries,
		expiring:    expiring,
		validate:    validator.New(),
		defaultDays: defaultDays,
	}
}

// GeneratePlan produces a meal plan seeded with the items currently at risk
// of running out or expiring.
func (s *PlanService) GeneratePlan(ctx context.Context, req GeneratePlanRequest) (*PlanResponse, error) {
	days := req.Days
	if days < 1 {
		days = s.defaultDays
	}

	expiring, err := s.expiring.ExpiringItems(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := s.planner.Plan(ctx, expiring, days)
	if err != nil {
		return nil, err
	}

	return &PlanResponse{
		Days:          days,
		ExpiringItems: expiring,
		Plan:          toPlanDayResponses(plan),
	}, nil
}

// Shortfall reconciles a plan against the current inventory and returns the
// items to buy, largest gap first. The plan payload is validated strictly:
// a malformed plan is rejected with ErrInvalidInput rather than guessed at.
func (s *PlanService) Shortfall(ctx context.Context, req ShortfallRequest) (*ShortfallResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	snapshot, err := s.entries.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	reqs := planning.AggregateRequirements(toPlanDays(req.Plan))
	items := planning.ComputeShortfall(reqs, snapshot)
	return toShortfallResponse(items), nil
}
