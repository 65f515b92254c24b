package service

import (
	"math/rand"
	"time"

	"quizdeck_backend/internal/model"
)

// Session is the runtime state of one quiz attempt over one module. It is
// mutated only through QuizService operations and owned by a single caller;
// the module it references is borrowed read-only.
type Session struct {
	module     *model.Module
	state      SessionState
	current    int
	numCorrect int
	numWrong   int
	transcript []model.AnswerRecord

	// decoy is picked once per question-entry so the choice identities stay
	// stable across renders; only the display order is reshuffled.
	decoy    string
	hasDecoy bool
}

func (s *Session) State() SessionState { return s.state }
func (s *Session) NumCorrect() int     { return s.numCorrect }
func (s *Session) NumWrong() int       { return s.numWrong }

// CurrentIndex is the 0-based index of the question being asked. After
// completion it stays at the final index.
func (s *Session) CurrentIndex() int { return s.current }

// Module returns the module under quiz, or nil while selecting.
func (s *Session) Module() *model.Module { return s.module }

// Transcript returns a copy of the answer records so far, in answer order.
func (s *Session) Transcript() []model.AnswerRecord {
	out := make([]model.AnswerRecord, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// QuizService drives quiz sessions: choice generation, answer grading,
// transcript keeping and the reset lifecycle. It performs no I/O; modules
// arrive by parameter.
type QuizService struct {
	rng *rand.Rand
}

// NewQuizService builds an engine around the given random source. Tests pass a
// fixed seed; a nil source falls back to a time-seeded one.
func NewQuizService(rng *rand.Rand) *QuizService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &QuizService{rng: rng}
}

// Start opens a session over the given module. Modules without questions are
// rejected with a ConfigurationError.
func (s *QuizService) Start(m *model.Module) (*Session, error) {
	if m == nil || len(m.Questions) == 0 {
		return nil, &ConfigurationError{Message: "module has no questions"}
	}

	sess := &Session{
		module:     m,
		state:      StateActive,
		transcript: []model.AnswerRecord{},
	}
	s.enterQuestion(sess)
	return sess, nil
}

// CurrentQuestion returns the question being asked.
func (s *QuizService) CurrentQuestion(sess *Session) (*model.Question, error) {
	if sess.state != StateActive {
		return nil, &InvalidStateError{Op: "current question", Expected: StateActive, Actual: sess.state}
	}
	return &sess.module.Questions[sess.current], nil
}

// Choices returns the answer strings to present for the current question, in
// freshly shuffled display order. The set always contains the correct answer
// and at most one decoy; with no usable decoy it degenerates to a single
// choice.
func (s *QuizService) Choices(sess *Session) ([]string, error) {
	q, err := s.CurrentQuestion(sess)
	if err != nil {
		return nil, err
	}

	choices := []string{q.Answer}
	if sess.hasDecoy {
		choices = append(choices, sess.decoy)
	}
	s.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices, nil
}

// SubmitAnswer grades the given answer against the current question, appends a
// transcript record and advances the session. Answering the last question
// completes the session.
func (s *QuizService) SubmitAnswer(sess *Session, answer string) error {
	if sess.state != StateActive {
		return &InvalidStateError{Op: "submit answer", Expected: StateActive, Actual: sess.state}
	}

	q := sess.module.Questions[sess.current]
	correct := answer == q.Answer

	sess.transcript = append(sess.transcript, model.AnswerRecord{
		QuestionText:  q.QuestionText,
		UserAnswer:    answer,
		CorrectAnswer: q.Answer,
		IsCorrect:     correct,
	})
	if correct {
		sess.numCorrect++
	} else {
		sess.numWrong++
	}

	if sess.current == len(sess.module.Questions)-1 {
		sess.state = StateCompleted
		return nil
	}
	sess.current++
	s.enterQuestion(sess)
	return nil
}

// Result aggregates a completed session.
func (s *QuizService) Result(sess *Session) (*model.QuizResult, error) {
	if sess.state != StateCompleted {
		return nil, &InvalidStateError{Op: "result", Expected: StateCompleted, Actual: sess.state}
	}
	return &model.QuizResult{
		NumCorrect: sess.numCorrect,
		NumWrong:   sess.numWrong,
		Total:      len(sess.module.Questions),
		Transcript: sess.Transcript(),
	}, nil
}

// Reset clears the session back to its initial empty state and drops the
// module reference, so a new module can be chosen.
func (s *QuizService) Reset(sess *Session) {
	sess.module = nil
	sess.state = StateSelecting
	sess.current = 0
	sess.numCorrect = 0
	sess.numWrong = 0
	sess.transcript = []model.AnswerRecord{}
	sess.decoy = ""
	sess.hasDecoy = false
}

// enterQuestion picks the decoy for the question the session just moved onto.
// The pool holds the answers of all other questions whose answer string
// differs from the correct one; answers equal to the correct answer never
// become decoys, so a module full of duplicate answers still yields
// single-choice questions.
func (s *QuizService) enterQuestion(sess *Session) {
	correct := sess.module.Questions[sess.current].Answer

	pool := make([]string, 0, len(sess.module.Questions)-1)
	seen := make(map[string]bool)
	for i, q := range sess.module.Questions {
		if i == sess.current || q.Answer == correct || seen[q.Answer] {
			continue
		}
		seen[q.Answer] = true
		pool = append(pool, q.Answer)
	}

	if len(pool) == 0 {
		sess.decoy = ""
		sess.hasDecoy = false
		return
	}
	sess.decoy = pool[s.rng.Intn(len(pool))]
	sess.hasDecoy = true
}
