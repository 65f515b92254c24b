package controller

import (
	"errors"
	"sync"

	"quizdeck_backend/internal/service"
	"quizdeck_backend/internal/util"
	"quizdeck_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

// QuizController binds the quiz engine to HTTP. The application is
// single-user, so it holds at most one active session; the mutex serializes
// concurrent HTTP access onto the engine's single-actor contract.
type QuizController struct {
	Quiz    *service.QuizService
	Modules *service.ModuleService

	mu      sync.Mutex
	session *service.Session
}

func NewQuizController(quiz *service.QuizService, modules *service.ModuleService) *QuizController {
	return &QuizController{Quiz: quiz, Modules: modules}
}

type StartQuizRequest struct {
	ModuleID string `json:"moduleId" binding:"required"`
}

type AnswerRequest struct {
	Answer string `json:"answer"`
}

// writeQuizError maps engine errors onto the response envelope.
func writeQuizError(ctx *gin.Context, err error) {
	var stateErr *service.InvalidStateError
	var confErr *service.ConfigurationError
	switch {
	case errors.As(err, &stateErr):
		util.Conflict(ctx, stateErr.Error())
	case errors.As(err, &confErr):
		util.UnprocessableEntity(ctx, confErr.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary Start a quiz over a module
// @Tags quiz
// @Accept json
// @Produce json
// @Param body body StartQuizRequest true "module to quiz"
// @Success 200 {object} util.Response
// @Router /api/quiz/start [post]
func (c *QuizController) StartQuiz(ctx *gin.Context) {
	var req StartQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	m, err := c.Modules.GetModule(req.ModuleID)
	if err != nil {
		if errors.Is(err, util.ErrModuleNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	// The session borrows its module read-only; a clone shields it from
	// concurrent CRUD edits to the store.
	sess, err := c.Quiz.Start(m.Clone())
	if err != nil {
		writeQuizError(ctx, err)
		return
	}

	c.mu.Lock()
	c.session = sess
	c.mu.Unlock()

	monitoring.QuizSessionsStarted.Inc()

	util.Success(ctx, gin.H{
		"moduleId":   m.ID,
		"moduleName": m.Name,
		"total":      len(m.Questions),
		"state":      sess.State().String(),
	})
}

// @Summary Current question with shuffled choices
// @Tags quiz
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/quiz/question [get]
func (c *QuizController) GetQuestion(ctx *gin.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess := c.session
	if sess == nil {
		util.Conflict(ctx, "no quiz in progress")
		return
	}

	q, err := c.Quiz.CurrentQuestion(sess)
	if err != nil {
		writeQuizError(ctx, err)
		return
	}
	choices, err := c.Quiz.Choices(sess)
	if err != nil {
		writeQuizError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"index":        sess.CurrentIndex(),
		"total":        len(sess.Module().Questions),
		"questionText": q.QuestionText,
		"choices":      choices,
	})
}

// @Summary Submit an answer for the current question
// @Tags quiz
// @Accept json
// @Produce json
// @Param body body AnswerRequest true "chosen answer"
// @Success 200 {object} util.Response
// @Router /api/quiz/answer [post]
func (c *QuizController) SubmitAnswer(ctx *gin.Context) {
	var req AnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	sess := c.session
	if sess == nil {
		util.Conflict(ctx, "no quiz in progress")
		return
	}

	if err := c.Quiz.SubmitAnswer(sess, req.Answer); err != nil {
		writeQuizError(ctx, err)
		return
	}

	transcript := sess.Transcript()
	last := transcript[len(transcript)-1]
	if last.IsCorrect {
		monitoring.AnswersSubmitted.WithLabelValues("correct").Inc()
	} else {
		monitoring.AnswersSubmitted.WithLabelValues("wrong").Inc()
	}

	util.Success(ctx, gin.H{
		"isCorrect":     last.IsCorrect,
		"correctAnswer": last.CorrectAnswer,
		"numCorrect":    sess.NumCorrect(),
		"numWrong":      sess.NumWrong(),
		"completed":     sess.State() == service.StateCompleted,
	})
}

// @Summary Result of the completed quiz
// @Tags quiz
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/quiz/result [get]
func (c *QuizController) GetResult(ctx *gin.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sess := c.session
	if sess == nil {
		util.Conflict(ctx, "no quiz in progress")
		return
	}

	res, err := c.Quiz.Result(sess)
	if err != nil {
		writeQuizError(ctx, err)
		return
	}

	util.Success(ctx, res)
}

// @Summary Abandon the current quiz
// @Tags quiz
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/quiz/reset [post]
func (c *QuizController) ResetQuiz(ctx *gin.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session != nil {
		c.Quiz.Reset(c.session)
		c.session = nil
	}

	util.Success(ctx, gin.H{"state": service.StateSelecting.String()})
}
