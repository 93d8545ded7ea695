package enum

// QuestionType distinguishes quiz questions by how many options may be chosen
type QuestionType string

const (
	QuestionTypeSingleChoice   QuestionType = "single"
	QuestionTypeMultipleChoice QuestionType = "multiple"
)

// Valid reports whether the question type is a known value
func (q QuestionType) Valid() bool {
	return q == QuestionTypeSingleChoice || q == QuestionTypeMultipleChoice
}
