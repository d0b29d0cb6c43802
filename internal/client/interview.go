package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jonathan/careercore/internal/schemas"
	"github.com/jonathan/careercore/internal/types"
)

// DefaultQuestionCount is how many questions are requested when none is given.
const DefaultQuestionCount = 5

func practiceFailure(status int) string {
	return fmt.Sprintf("Request failed (%d)", status)
}

// InterviewQuestions generates practice questions. No authentication is enforced
// by the endpoint, so the token is not sent.
func (c *Client) InterviewQuestions(ctx context.Context, req types.QuestionRequest) ([]types.Question, error) {
	if req.Count == 0 {
		req.Count = DefaultQuestionCount
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	questions := []types.Question{}
	if err := c.Do(ctx, http.MethodPost, "/interview/questions", req, &questions,
		SkipAuth(), withoutSessionExpiry(), WithSchema(schemas.Questions), withFallback(practiceFailure)); err != nil {
		return nil, err
	}
	return questions, nil
}

// CheckAnswer asks the server to evaluate an answer to a practice question.
func (c *Client) CheckAnswer(ctx context.Context, req types.AnswerRequest) (*types.AnswerResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var result types.AnswerResult
	if err := c.Do(ctx, http.MethodPost, "/interview/check-answer", req, &result,
		SkipAuth(), withoutSessionExpiry(), WithSchema(schemas.AnswerResult), withFallback(practiceFailure)); err != nil {
		return nil, err
	}
	return &result, nil
}

// SaveSkillSession records that a practice session took place.
func (c *Client) SaveSkillSession(ctx context.Context, language, difficulty string) error {
	sess := types.SkillSession{Language: language, Difficulty: difficulty}
	if err := sess.Validate(); err != nil {
		return err
	}
	return c.Do(ctx, http.MethodPost, "/practice/sessions", sess, nil)
}

// SaveSkillSessionAsync records the session in the background. Its outcome does
// not matter for correctness: failures are only logged. The returned channel is
// closed once the call finishes, for callers that must not exit before it does.
func (c *Client) SaveSkillSessionAsync(ctx context.Context, language, difficulty string) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := c.SaveSkillSession(ctx, language, difficulty); err != nil {
			c.logger.Debug("skill session not saved", slog.String("language", language), slog.Any("error", err))
		}
	}()
	return done
}
