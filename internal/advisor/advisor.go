// Package advisor exposes the turn solver through a plain request/response
// contract: raw dice, rerolls left and a category bitmask in; a recommendation
// with per-category values out.
package advisor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cory-johannsen/dicee/internal/game/category"
	"github.com/cory-johannsen/dicee/internal/game/dice"
	"github.com/cory-johannsen/dicee/internal/game/keep"
	"github.com/cory-johannsen/dicee/internal/game/solver"
)

const tracerName = "github.com/cory-johannsen/dicee/internal/advisor"

// Action values carried in Response.Action.
const (
	ActionScore  = "score"
	ActionReroll = "reroll"
	ActionNone   = "none"
)

// Request asks for advice on one position.
//
// Bit i of Available opens category i: bits 0-5 are the upper faces, then three of
// a kind, four of a kind, full house, small straight, large straight, five of a
// kind and chance in bits 6-12. Higher bits are ignored.
type Request struct {
	Dice           []int  `json:"dice"`
	RollsRemaining int    `json:"rolls_remaining"`
	Available      uint16 `json:"available"`
}

// CategoryResult is the evaluation of one open category.
type CategoryResult struct {
	Category       int     `json:"category"`
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ImmediateScore int     `json:"immediate_score"`
	Valid          bool    `json:"valid"`
	ExpectedValue  float64 `json:"expected_value"`
}

// Response is the recommendation for a Request.
//
// Category, CategoryName and CategoryScore are set only when Action is "score";
// Keep and KeepDescription only when Action is "reroll".
type Response struct {
	RequestID       string           `json:"request_id"`
	Action          string           `json:"action"`
	Category        *int             `json:"category,omitempty"`
	CategoryName    string           `json:"category_name,omitempty"`
	CategoryScore   *int             `json:"category_score,omitempty"`
	Keep            *[6]int          `json:"keep,omitempty"`
	KeepDescription string           `json:"keep_description,omitempty"`
	ExpectedValue   float64          `json:"expected_value"`
	Categories      []CategoryResult `json:"categories"`
}

// CategoryInfo describes a category for clients building a scorecard.
type CategoryInfo struct {
	Index      int    `json:"index"`
	ID         string `json:"id"`
	Name       string `json:"name"`
	Section    string `json:"section"`
	FixedScore int    `json:"fixed_score,omitempty"`
}

// InvalidRequestError reports which field of a Request was rejected.
type InvalidRequestError struct {
	Field string
	Err   error
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("advisor: invalid %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying validation error.
func (e *InvalidRequestError) Unwrap() error { return e.Err }

// Is reports dice.ErrInvalidInput.
func (e *InvalidRequestError) Is(target error) bool { return target == dice.ErrInvalidInput }

// Service answers advice requests against a shared Solver.
type Service struct {
	solver *solver.Solver
	logger *zap.Logger
	tracer trace.Tracer
	newID  func() string
}

// NewService creates a Service.
//
// Precondition: s and logger must be non-nil.
func NewService(s *solver.Solver, logger *zap.Logger) *Service {
	return &Service{
		solver: s,
		logger: logger,
		tracer: otel.Tracer(tracerName),
		newID:  uuid.NewString,
	}
}

// Decode validates req into a solver position.
//
// Postcondition: Returns an *InvalidRequestError naming the offending field.
func Decode(req Request) (solver.TurnState, category.Set, error) {
	cfg, err := dice.FromSlice(req.Dice)
	if err != nil {
		return solver.TurnState{}, category.Empty, &InvalidRequestError{Field: "dice", Err: err}
	}
	state, err := solver.NewTurnState(cfg, req.RollsRemaining)
	if err != nil {
		return solver.TurnState{}, category.Empty, &InvalidRequestError{Field: "rolls_remaining", Err: err}
	}
	return state, category.FromBits(req.Available), nil
}

// Analyze validates req and returns the solver's recommendation.
//
// Postcondition: Invalid input yields an error matching dice.ErrInvalidInput and no
// Response. An empty category mask yields Action "none" with ExpectedValue 0.
func (s *Service) Analyze(ctx context.Context, req Request) (*Response, error) {
	_, span := s.tracer.Start(ctx, "advisor.Analyze",
		trace.WithAttributes(
			attribute.IntSlice("dicee.dice", req.Dice),
			attribute.Int("dicee.rolls_remaining", req.RollsRemaining),
			attribute.Int("dicee.available", int(req.Available)),
		),
	)
	defer span.End()

	state, set, err := Decode(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "invalid request")
		s.logger.Debug("rejected advice request", zap.Error(err))
		return nil, err
	}

	analysis := s.solver.Analyze(state, set)
	resp := Encode(analysis)
	resp.RequestID = s.newID()

	span.SetAttributes(
		attribute.String("dicee.action", resp.Action),
		attribute.Float64("dicee.expected_value", resp.ExpectedValue),
	)
	s.logger.Info("advice computed",
		zap.String("request_id", resp.RequestID),
		zap.Stringer("dice", state.Config),
		zap.Int("rolls_remaining", state.RollsRemaining),
		zap.Stringer("available", set),
		zap.String("action", resp.Action),
		zap.Float64("expected_value", resp.ExpectedValue),
		zap.String("trace_id", span.SpanContext().TraceID().String()),
	)
	return resp, nil
}

// Encode converts a solver analysis into the wire response. RequestID is left empty.
func Encode(a solver.Analysis) *Response {
	resp := &Response{
		ExpectedValue: a.ExpectedValue,
		Categories:    make([]CategoryResult, 0, len(a.Categories)),
	}
	for _, cv := range a.Categories {
		resp.Categories = append(resp.Categories, CategoryResult{
			Category:       cv.Category.Index(),
			ID:             cv.Category.ID(),
			Name:           cv.Category.String(),
			ImmediateScore: cv.ImmediateScore,
			Valid:          cv.Valid,
			ExpectedValue:  cv.ExpectedValue,
		})
	}

	switch a.Action.Kind {
	case solver.ActionScore:
		idx := a.Action.Category.Index()
		score := a.BestCategoryScore
		resp.Action = ActionScore
		resp.Category = &idx
		resp.CategoryName = a.Action.Category.String()
		resp.CategoryScore = &score
	case solver.ActionReroll:
		var kept [6]int
		for i, n := range a.Action.Keep.Counts() {
			kept[i] = int(n)
		}
		resp.Action = ActionReroll
		resp.Keep = &kept
		resp.KeepDescription = keep.Describe(a.Action.Keep)
	default:
		resp.Action = ActionNone
	}
	return resp
}

// Categories lists every category in index order.
func (s *Service) Categories() []CategoryInfo {
	out := make([]CategoryInfo, 0, category.Count)
	for _, c := range category.All() {
		fixed, _ := c.FixedScore()
		out = append(out, CategoryInfo{
			Index:      c.Index(),
			ID:         c.ID(),
			Name:       c.String(),
			Section:    string(c.Section()),
			FixedScore: fixed,
		})
	}
	return out
}
