// Package positions loads a catalog of known turn positions with their expected
// optimal play, and checks an advisor against it.
package positions

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/dicee/internal/advisor"
	"github.com/cory-johannsen/dicee/internal/game/category"
	"github.com/cory-johannsen/dicee/internal/game/dice"
	"github.com/cory-johannsen/dicee/internal/game/solver"
)

// DefaultTolerance applies to expected_value when a position sets none.
const DefaultTolerance = 1e-6

// Expectation is what the advisor must answer for a Position. Unset fields are
// not checked.
type Expectation struct {
	Action           string   `yaml:"action"`
	Category         string   `yaml:"category"`
	Keep             []int    `yaml:"keep"`
	ExpectedValue    *float64 `yaml:"expected_value"`
	Tolerance        float64  `yaml:"tolerance"`
	MinExpectedValue *float64 `yaml:"min_expected_value"`
	MaxExpectedValue *float64 `yaml:"max_expected_value"`
	// Scores maps category identifiers to their required immediate score.
	Scores map[string]int `yaml:"scores"`
}

// Position is one catalog entry.
//
// Precondition: ID must be unique within a catalog; Dice must parse with dice.Parse.
type Position struct {
	ID             string      `yaml:"id"`
	Description    string      `yaml:"description"`
	Dice           string      `yaml:"dice"`
	RollsRemaining int         `yaml:"rolls_remaining"`
	Available      []string    `yaml:"available"`
	Expect         Expectation `yaml:"expect"`

	faces [dice.NumDice]int
	set   category.Set
}

type catalogFile struct {
	Positions []*Position `yaml:"positions"`
}

// Request builds the advisor request for p.
func (p *Position) Request() advisor.Request {
	return advisor.Request{
		Dice:           p.faces[:],
		RollsRemaining: p.RollsRemaining,
		Available:      p.set.Bits(),
	}
}

// validate parses the dice and category list and checks the expectation refers
// to known categories.
func (p *Position) validate() error {
	if p.ID == "" {
		return errors.New("position id must be non-empty")
	}
	faces, err := dice.Parse(p.Dice)
	if err != nil {
		return fmt.Errorf("position %s: %w", p.ID, err)
	}
	if p.RollsRemaining < 0 || p.RollsRemaining > solver.MaxRolls {
		return fmt.Errorf("position %s: %w", p.ID, &solver.InvalidRollsError{Rolls: p.RollsRemaining})
	}
	set, err := category.ParseSet(strings.Join(p.Available, ","))
	if err != nil {
		return fmt.Errorf("position %s: available: %w", p.ID, err)
	}
	switch p.Expect.Action {
	case "", advisor.ActionScore, advisor.ActionReroll, advisor.ActionNone:
	default:
		return fmt.Errorf("position %s: unknown expected action %q", p.ID, p.Expect.Action)
	}
	if p.Expect.Category != "" {
		if _, err := category.Parse(p.Expect.Category); err != nil {
			return fmt.Errorf("position %s: expect.category: %w", p.ID, err)
		}
	}
	if p.Expect.Keep != nil && len(p.Expect.Keep) != dice.NumFaces {
		return fmt.Errorf("position %s: expect.keep must list %d counts, got %d", p.ID, dice.NumFaces, len(p.Expect.Keep))
	}
	for id := range p.Expect.Scores {
		if _, err := category.Parse(id); err != nil {
			return fmt.Errorf("position %s: expect.scores: %w", p.ID, err)
		}
	}
	p.faces = faces
	p.set = set
	return nil
}

// LoadFile reads one catalog file.
//
// Postcondition: Returns every position in file order, each validated, or an error
// naming the file and position at fault.
func LoadFile(path string) ([]*Position, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing position file %s: %w", path, err)
	}
	for _, p := range f.Positions {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return f.Positions, nil
}

// LoadDir reads every .yaml or .yml file in dir in lexical order.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Position IDs are unique across the directory.
func LoadDir(dir string) ([]*Position, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	var all []*Position
	seen := make(map[string]string)
	for _, path := range files {
		ps, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		for _, p := range ps {
			if prev, dup := seen[p.ID]; dup {
				return nil, fmt.Errorf("duplicate position id %q in %s and %s", p.ID, prev, path)
			}
			seen[p.ID] = path
		}
		all = append(all, ps...)
	}
	return all, nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	slices.Sort(paths)
	return paths, nil
}

// Analyzer answers advice requests. Both *advisor.Service and a remote client
// adapted with AnalyzerFunc satisfy it.
type Analyzer interface {
	Analyze(ctx context.Context, req advisor.Request) (*advisor.Response, error)
}

// AnalyzerFunc adapts a function to Analyzer.
type AnalyzerFunc func(ctx context.Context, req advisor.Request) (*advisor.Response, error)

// Analyze calls f.
func (f AnalyzerFunc) Analyze(ctx context.Context, req advisor.Request) (*advisor.Response, error) {
	return f(ctx, req)
}

// Mismatch records one way a response departed from its expectation.
type Mismatch struct {
	PositionID string
	Field      string
	Want       string
	Got        string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: %s: want %s, got %s", m.PositionID, m.Field, m.Want, m.Got)
}

// Check compares resp with p's expectation.
func Check(p *Position, resp *advisor.Response) []Mismatch {
	var out []Mismatch
	add := func(field, want, got string) {
		out = append(out, Mismatch{PositionID: p.ID, Field: field, Want: want, Got: got})
	}
	e := p.Expect

	if e.Action != "" && e.Action != resp.Action {
		add("action", e.Action, resp.Action)
	}
	if e.Category != "" {
		want, _ := category.Parse(e.Category)
		switch {
		case resp.Category == nil:
			add("category", want.ID(), "none")
		case *resp.Category != want.Index():
			got, _ := category.FromIndex(*resp.Category)
			add("category", want.ID(), got.ID())
		}
	}
	if e.Keep != nil {
		got := "none"
		if resp.Keep != nil {
			got = fmt.Sprint(*resp.Keep)
		}
		if want := fmt.Sprint(e.Keep); want != got {
			add("keep", want, got)
		}
	}

	ev := resp.ExpectedValue
	if e.ExpectedValue != nil {
		tol := e.Tolerance
		if tol == 0 {
			tol = DefaultTolerance
		}
		if math.Abs(ev-*e.ExpectedValue) > tol {
			add("expected_value", fmt.Sprintf("%.6f±%g", *e.ExpectedValue, tol), fmt.Sprintf("%.6f", ev))
		}
	}
	if e.MinExpectedValue != nil && ev < *e.MinExpectedValue {
		add("expected_value", fmt.Sprintf(">= %.6f", *e.MinExpectedValue), fmt.Sprintf("%.6f", ev))
	}
	if e.MaxExpectedValue != nil && ev > *e.MaxExpectedValue {
		add("expected_value", fmt.Sprintf("<= %.6f", *e.MaxExpectedValue), fmt.Sprintf("%.6f", ev))
	}

	ids := make([]string, 0, len(e.Scores))
	for id := range e.Scores {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		c, _ := category.Parse(id)
		want := e.Scores[id]
		idx := slices.IndexFunc(resp.Categories, func(r advisor.CategoryResult) bool { return r.Category == c.Index() })
		if idx < 0 {
			add("scores."+c.ID(), fmt.Sprint(want), "not available")
			continue
		}
		if got := resp.Categories[idx].ImmediateScore; got != want {
			add("scores."+c.ID(), fmt.Sprint(want), fmt.Sprint(got))
		}
	}
	return out
}

// Verify runs every position through a and collects all mismatches.
//
// Postcondition: A non-nil error means a request failed outright; mismatches
// gathered before the failure are still returned.
func Verify(ctx context.Context, a Analyzer, ps []*Position) ([]Mismatch, error) {
	var out []Mismatch
	for _, p := range ps {
		resp, err := a.Analyze(ctx, p.Request())
		if err != nil {
			return out, fmt.Errorf("analyzing position %s: %w", p.ID, err)
		}
		out = append(out, Check(p, resp)...)
	}
	return out, nil
}
