package types

// Difficulty levels accepted by the interview practice endpoints.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyGod    = "god"
)

// Question is one generated interview question.
type Question struct {
	Question string `json:"question"`
	Hint     string `json:"hint"`
	Category string `json:"category"`
}

// AnswerResult is the evaluation of a submitted answer.
type AnswerResult struct {
	Correct     bool    `json:"correct"`
	Score       float64 `json:"score"`
	Feedback    string  `json:"feedback"`
	IdealAnswer string  `json:"ideal_answer"`
}

// QuestionRequest asks for a batch of practice questions.
type QuestionRequest struct {
	Language   string `json:"language" validate:"required"`
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard god"`
	Count      int    `json:"count" validate:"min=1,max=20"`
}

// AnswerRequest submits an answer for evaluation.
type AnswerRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Language string `json:"language" validate:"required"`
	Hint     string `json:"hint"`
}

// SkillSession is the practice telemetry record.
type SkillSession struct {
	Language   string `json:"language" validate:"required"`
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard god"`
}

// Validate validates the QuestionRequest using the validator.
func (r *QuestionRequest) Validate() error {
	return validateStruct(r)
}

// Validate validates the AnswerRequest using the validator.
func (r *AnswerRequest) Validate() error {
	return validateStruct(r)
}

// Validate validates the SkillSession using the validator.
func (s *SkillSession) Validate() error {
	return validateStruct(s)
}
