package request

// QuestionOptionRequest represents one answer option of a question
type QuestionOptionRequest struct {
	Text    string `json:"text" binding:"required,max=500"`
	Correct bool   `json:"correct"`
}

// QuestionRequest represents a question create/update request
type QuestionRequest struct {
	Prompt      string                  `json:"prompt" binding:"required,min=5"`
	Type        string                  `json:"type" binding:"required,oneof=single multiple"`
	Difficulty  string                  `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Explanation string                  `json:"explanation"`
	Published   bool                    `json:"published"`
	Options     []QuestionOptionRequest `json:"options" binding:"required,min=2,dive"`
}
