package model

// AnswerRecord is one line of a session transcript. Records live in memory for
// the lifetime of the session and are never persisted.
type AnswerRecord struct {
	QuestionText  string `json:"questionText"`
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

// QuizResult is the aggregate produced once a session completes.
type QuizResult struct {
	NumCorrect int            `json:"numCorrect"`
	NumWrong   int            `json:"numWrong"`
	Total      int            `json:"total"`
	Transcript []AnswerRecord `json:"transcript"`
}
