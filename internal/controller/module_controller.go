package controller

import (
	"errors"

	"quizdeck_backend/internal/service"
	"quizdeck_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ModuleController struct {
	Service *service.ModuleService
}

func NewModuleController(svc *service.ModuleService) *ModuleController {
	return &ModuleController{Service: svc}
}

func writeStoreError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrModuleNotFound), errors.Is(err, util.ErrQuestionNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrModuleNameRequired), errors.Is(err, util.ErrQuestionIncomplete):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// @Summary List modules
// @Tags modules
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/modules [get]
func (c *ModuleController) ListModules(ctx *gin.Context) {
	modules, err := c.Service.ListModules()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, modules)
}

// @Summary Create a module
// @Tags modules
// @Accept json
// @Produce json
// @Param body body service.ModuleRequest true "module info"
// @Success 201 {object} util.Response
// @Router /api/modules [post]
func (c *ModuleController) CreateModule(ctx *gin.Context) {
	var req service.ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	m, err := c.Service.CreateModule(req)
	if err != nil {
		writeStoreError(ctx, err)
		return
	}
	util.Created(ctx, m)
}

// @Summary Get a module
// @Tags modules
// @Produce json
// @Param id path string true "module id"
// @Success 200 {object} util.Response
// @Router /api/modules/{id} [get]
func (c *ModuleController) GetModule(ctx *gin.Context) {
	m, err := c.Service.GetModule(ctx.Param("id"))
	if err != nil {
		writeStoreError(ctx, err)
		return
	}
	util.Success(ctx, m)
}

// @Summary Rename a module
// @Tags modules
// @Accept json
// @Produce json
// @Param id path string true "module id"
// @Param body body service.ModuleRequest true "module info"
// @Success 200 {object} util.Response
// @Router /api/modules/{id} [put]
func (c *ModuleController) RenameModule(ctx *gin.Context) {
	var req service.ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	m, err := c.Service.RenameModule(ctx.Param("id"), req)
	if err != nil {
		writeStoreError(ctx, err)
		return
	}
	util.Success(ctx, m)
}

// @Summary Delete a module
// @Tags modules
// @Produce json
// @Param id path string true "module id"
// @Success 200 {object} util.Response
// @Router /api/modules/{id} [delete]
func (c *ModuleController) DeleteModule(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.Service.DeleteModule(id); err != nil {
		writeStoreError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// @Summary Add a question to a module
// @Tags modules
// @Accept json
// @Produce json
// @Param id path string true "module id"
// @Param body body service.QuestionRequest true "question info"
// @Success 201 {object} util.Response
// @Router /api/modules/{id}/questions [post]
func (c *ModuleController) AddQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.AddQuestion(ctx.Param("id"), req)
	if err != nil {
		writeStoreError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// @Summary Edit a question
// @Tags modules
// @Accept json
// @Produce json
// @Param id path string true "module id"
// @Param questionId path string true "question id"
// @Param body body service.QuestionRequest true "question info"
// @Success 200 {object} util.Response
// @Router /api/modules/{id}/questions/{questionId} [put]
func (c *ModuleController) UpdateQuestion(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.Service.UpdateQuestion(ctx.Param("id"), ctx.Param("questionId"), req)
	if err != nil {
		writeStoreError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// @Summary Delete a question
// @Tags modules
// @Produce json
// @Param id path string true "module id"
// @Param questionId path string true "question id"
// @Success 200 {object} util.Response
// @Router /api/modules/{id}/questions/{questionId} [delete]
func (c *ModuleController) DeleteQuestion(ctx *gin.Context) {
	qid := ctx.Param("questionId")
	if err := c.Service.DeleteQuestion(ctx.Param("id"), qid); err != nil {
		writeStoreError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": qid})
}
