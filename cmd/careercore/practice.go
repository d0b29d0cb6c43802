package main

import (
	"time"

	"github.com/jonathan/careercore/internal/types"
	"github.com/spf13/cobra"
)

// skillSessionGrace bounds how long a command waits for the background
// skill-session record before exiting.
const skillSessionGrace = 2 * time.Second

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Interview practice",
}

var practiceQuestionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Generate interview questions for a language and difficulty",
	RunE:  runPracticeQuestions,
}

var practiceCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate an answer to an interview question",
	RunE:  runPracticeCheck,
}

var (
	practiceLanguage   string
	practiceDifficulty string
	practiceCount      int

	checkQuestion string
	checkAnswer   string
	checkLanguage string
	checkHint     string
)

func init() {
	practiceQuestionsCmd.Flags().StringVarP(&practiceLanguage, "language", "l", "", "Programming language or topic (required)")
	practiceQuestionsCmd.Flags().StringVarP(&practiceDifficulty, "difficulty", "d", types.DifficultyMedium, "Difficulty (easy, medium, hard, god)")
	practiceQuestionsCmd.Flags().IntVarP(&practiceCount, "count", "n", 0, "Number of questions (default 5)")
	practiceQuestionsCmd.MarkFlagRequired("language")

	practiceCheckCmd.Flags().StringVar(&checkQuestion, "question", "", "The question being answered (required)")
	practiceCheckCmd.Flags().StringVar(&checkAnswer, "answer", "", "Your answer (required)")
	practiceCheckCmd.Flags().StringVarP(&checkLanguage, "language", "l", "", "Programming language or topic (required)")
	practiceCheckCmd.Flags().StringVar(&checkHint, "hint", "", "Hint shown with the question")
	practiceCheckCmd.MarkFlagRequired("question")
	practiceCheckCmd.MarkFlagRequired("answer")
	practiceCheckCmd.MarkFlagRequired("language")

	practiceCmd.AddCommand(practiceQuestionsCmd)
	practiceCmd.AddCommand(practiceCheckCmd)
	rootCmd.AddCommand(practiceCmd)
}

func runPracticeQuestions(cmd *cobra.Command, args []string) error {
	questions, err := app.client.InterviewQuestions(cmd.Context(), types.QuestionRequest{
		Language:   practiceLanguage,
		Difficulty: practiceDifficulty,
		Count:      practiceCount,
	})
	if err != nil {
		return err
	}
	app.printer.PrintQuestions(questions)

	// Recording the session is best effort and must not fail the command.
	if app.store.Token() != "" {
		saved := app.client.SaveSkillSessionAsync(cmd.Context(), practiceLanguage, practiceDifficulty)
		select {
		case <-saved:
		case <-time.After(skillSessionGrace):
			app.logger.Debug("skill session still pending at exit")
		}
	}
	return nil
}

func runPracticeCheck(cmd *cobra.Command, args []string) error {
	result, err := app.client.CheckAnswer(cmd.Context(), types.AnswerRequest{
		Question: checkQuestion,
		Answer:   checkAnswer,
		Language: checkLanguage,
		Hint:     checkHint,
	})
	if err != nil {
		return err
	}
	app.printer.PrintAnswer(result)
	return nil
}
