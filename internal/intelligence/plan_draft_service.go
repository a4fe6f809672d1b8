// Package intelligence layers an LLM-backed plan drafting strategy on top
// of the deterministic generator. The model is asked first; its output is
// structurally checked and validated, violations are fed back once for
// correction, and on any persistent failure the deterministic generator
// takes over. Callers always get a valid plan.
package intelligence

import (
	"context"
	"errors"

	"github.com/jordanmetzner/pathwise/internal/domain"
	"github.com/jordanmetzner/pathwise/internal/generation"
	"github.com/jordanmetzner/pathwise/internal/llm"
	"github.com/jordanmetzner/pathwise/internal/plan"
)

// Source identifies which strategy produced a draft.
const (
	SourceLLM           = "llm"
	SourceDeterministic = "deterministic"
)

// PlanDraft is the result of a drafting run.
type PlanDraft struct {
	Plan     *domain.LearningPlan
	Source   string // "llm" or "deterministic"
	Attempts int    // model calls made, 0 for a purely deterministic draft
}

// PlanDraftService drafts learning plans, preferring the language model and
// falling back to the deterministic generator.
type PlanDraftService interface {
	// Draft produces a validated plan for the given inputs.
	Draft(ctx context.Context, inputs domain.PlanInputs) (*PlanDraft, error)

	// Fix regenerates a plan given the validation failures of a prior
	// attempt, threading them into the model as corrective feedback.
	Fix(ctx context.Context, inputs domain.PlanInputs, priorErrors []string, priorRaw string) (*PlanDraft, error)
}

type planDraftService struct {
	client   llm.Client
	observer llm.Observer
}

// NewPlanDraftService creates a PlanDraftService backed by an LLM client.
func NewPlanDraftService(client llm.Client, observer llm.Observer) PlanDraftService {
	return &planDraftService{client: client, observer: observer}
}

func (s *planDraftService) Draft(ctx context.Context, inputs domain.PlanInputs) (*PlanDraft, error) {
	candidate, raw, err := s.generate(ctx, llm.TaskPlanDraft, buildDraftPrompt(inputs))
	if err != nil {
		// Transport failures get no second chance; malformed output does,
		// with the parse failure described in the corrective prompt.
		if !errors.Is(err, llm.ErrInvalidOutput) {
			return deterministicDraft(inputs, 1), nil
		}
		fixed, ferr := s.fixOnce(ctx, inputs, []string{err.Error()}, raw)
		if ferr != nil {
			return deterministicDraft(inputs, 2), nil
		}
		return &PlanDraft{Plan: fixed, Source: SourceLLM, Attempts: 2}, nil
	}

	violations := plan.Validate(candidate)
	if len(violations) == 0 {
		return &PlanDraft{Plan: candidate, Source: SourceLLM, Attempts: 1}, nil
	}

	// One corrective round with the violations threaded into the prompt.
	fixed, err := s.fixOnce(ctx, inputs, violationMessages(violations), raw)
	if err != nil {
		return deterministicDraft(inputs, 2), nil
	}
	return &PlanDraft{Plan: fixed, Source: SourceLLM, Attempts: 2}, nil
}

func (s *planDraftService) Fix(ctx context.Context, inputs domain.PlanInputs, priorErrors []string, priorRaw string) (*PlanDraft, error) {
	fixed, err := s.fixOnce(ctx, inputs, priorErrors, priorRaw)
	if err != nil {
		return deterministicDraft(inputs, 1), nil
	}
	return &PlanDraft{Plan: fixed, Source: SourceLLM, Attempts: 1}, nil
}

// fixOnce runs a single corrective model call and returns the plan only if
// it passes both structural parsing and business validation.
func (s *planDraftService) fixOnce(ctx context.Context, inputs domain.PlanInputs, priorErrors []string, priorRaw string) (*domain.LearningPlan, error) {
	candidate, _, err := s.generate(ctx, llm.TaskPlanFix, buildFixPrompt(inputs, priorErrors, priorRaw))
	if err != nil {
		return nil, err
	}
	if violations := plan.Validate(candidate); len(violations) > 0 {
		return nil, violations[0]
	}
	return candidate, nil
}

// generate runs one model call and extracts a structurally sound plan from
// its output. The raw model text is returned for corrective prompts.
func (s *planDraftService) generate(ctx context.Context, task llm.TaskType, prompt string) (*domain.LearningPlan, string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         task,
		SystemPrompt: planDraftSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return nil, "", err
	}

	candidate, err := llm.ExtractJSON[domain.LearningPlan](resp.Text, checkPlanShape)
	if err != nil {
		return nil, resp.Text, err
	}

	return &candidate, resp.Text, nil
}

func checkPlanShape(p domain.LearningPlan) error {
	if errs := plan.CheckShape(&p); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func deterministicDraft(inputs domain.PlanInputs, attempts int) *PlanDraft {
	return &PlanDraft{
		Plan:     generation.Generate(inputs),
		Source:   SourceDeterministic,
		Attempts: attempts,
	}
}

func violationMessages(violations []domain.ValidationError) []string {
	msgs := make([]string, len(violations))
	for i, v := range violations {
		msgs[i] = v.Error()
	}
	return msgs
}
