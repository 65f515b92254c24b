package model

import "github.com/google/uuid"

// Module is a named, ordered collection of quiz questions. Question order is
// insertion order and drives quiz sequencing.
type Module struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Question is a prompt/answer pair within a module.
type Question struct {
	ID           string `json:"id"`
	QuestionText string `json:"questionText"`
	Answer       string `json:"answer"`
}

// QuestionByID returns the question with the given id, or nil.
func (m *Module) QuestionByID(id string) *Question {
	for i := range m.Questions {
		if m.Questions[i].ID == id {
			return &m.Questions[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the module. The quiz engine borrows its module
// read-only; handing it a clone keeps later CRUD edits from leaking into a
// running session.
func (m *Module) Clone() *Module {
	c := &Module{
		ID:        m.ID,
		Name:      m.Name,
		Questions: make([]Question, len(m.Questions)),
	}
	copy(c.Questions, m.Questions)
	return c
}

func GenerateUUID() string {
	return uuid.New().String()
}
