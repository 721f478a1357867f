package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/elenavoss/advisor/internal/blueprint"
	"github.com/elenavoss/advisor/internal/domain"
	"github.com/elenavoss/advisor/internal/llm"
	"github.com/elenavoss/advisor/internal/prompt"
	"github.com/elenavoss/advisor/internal/questionnaire"
	"github.com/elenavoss/advisor/internal/recommend"
	"github.com/elenavoss/advisor/internal/repository"
)

// ErrGenerationFailed marks a partial result: the returned blueprint carries
// the rule-based recommendations but no generated content. Callers may offer
// a retry.
var ErrGenerationFailed = errors.New("creative generation failed")

// AdvisorService turns a completed questionnaire into a blueprint: it
// resolves rule-based recommendations, synthesizes the generation prompt,
// calls the generation client, assembles the document, and archives it.
type AdvisorService struct {
	tables *recommend.Tables
	client llm.Client
	repo   repository.BlueprintRepo

	now   func() time.Time
	newID func() string
}

// NewAdvisorService creates an AdvisorService.
func NewAdvisorService(tables *recommend.Tables, client llm.Client, repo repository.BlueprintRepo) *AdvisorService {
	return &AdvisorService{
		tables: tables,
		client: client,
		repo:   repo,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
	}
}

// GenerateBlueprint runs the full pipeline for a questionnaire that has
// reached its terminal stage. On generation failure it still returns the
// assembled blueprint (recommendations only) together with a wrapped
// ErrGenerationFailed; only a questionnaire that is not yet complete, or a
// prompt that cannot be filled, yields a nil blueprint.
func (s *AdvisorService) GenerateBlueprint(ctx context.Context, eng *questionnaire.Engine) (*domain.Blueprint, error) {
	if !eng.Complete() {
		missing := eng.MissingFields()
		labels := make([]string, 0, len(missing))
		for _, f := range missing {
			labels = append(labels, domain.FieldLabels[f])
		}
		return nil, fmt.Errorf("%w: still missing %s", domain.ErrIncompleteContext, strings.Join(labels, ", "))
	}

	goal := eng.Goal()
	answers := eng.Answers()

	var (
		rec domain.Recommendation
		req *prompt.Request
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		rec = recommend.Resolve(s.tables, answers)
		return nil
	})
	g.Go(func() error {
		var err error
		req, err = prompt.Synthesize(answers, goal)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	generated := ""
	var genErr error
	resp, err := s.client.Generate(ctx, llm.Request{System: req.System, User: req.User})
	if err != nil {
		genErr = fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	} else {
		generated = resp.Text
	}

	bp := blueprint.Assemble(answers, goal, rec, generated, req.User)
	bp.ID = s.newID()
	bp.CreatedAt = s.now().UTC()

	if genErr != nil {
		return bp, genErr
	}

	if err := s.repo.Create(ctx, bp); err != nil {
		return bp, fmt.Errorf("archiving blueprint: %w", err)
	}
	return bp, nil
}

// History returns the most recently archived blueprints, newest first.
func (s *AdvisorService) History(ctx context.Context, limit int) ([]*domain.Blueprint, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.ListRecent(ctx, limit)
}

// Show loads one archived blueprint by id.
func (s *AdvisorService) Show(ctx context.Context, id string) (*domain.Blueprint, error) {
	return s.repo.GetByID(ctx, id)
}

// Forget removes one archived blueprint by id.
func (s *AdvisorService) Forget(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
