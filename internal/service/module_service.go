package service

import (
	"quizdeck_backend/internal/model"
	"quizdeck_backend/internal/repository"
	"quizdeck_backend/internal/util"
)

// ModuleService owns module and question management on top of the JSON store.
// The quiz engine never goes through it; sessions receive a module value once
// and keep it.
type ModuleService struct {
	Repo *repository.ModuleRepository
}

func NewModuleService(repo *repository.ModuleRepository) *ModuleService {
	return &ModuleService{Repo: repo}
}

type ModuleRequest struct {
	Name string `json:"name" binding:"required"`
}

type QuestionRequest struct {
	QuestionText string `json:"questionText" binding:"required"`
	Answer       string `json:"answer" binding:"required"`
}

func (s *ModuleService) ListModules() ([]model.Module, error) {
	return s.Repo.LoadModules()
}

func (s *ModuleService) GetModule(id string) (*model.Module, error) {
	modules, err := s.Repo.LoadModules()
	if err != nil {
		return nil, err
	}
	for i := range modules {
		if modules[i].ID == id {
			return &modules[i], nil
		}
	}
	return nil, util.ErrModuleNotFound
}

func (s *ModuleService) CreateModule(req ModuleRequest) (*model.Module, error) {
	if req.Name == "" {
		return nil, util.ErrModuleNameRequired
	}

	modules, err := s.Repo.LoadModules()
	if err != nil {
		return nil, err
	}

	m := model.Module{
		ID:        model.GenerateUUID(),
		Name:      req.Name,
		Questions: []model.Question{},
	}
	modules = append(modules, m)
	if err := s.Repo.SaveModules(modules); err != nil {
		return nil, err
	}
	return &m, nil
}

// RenameModule updates the module name. The id is immutable once created.
func (s *ModuleService) RenameModule(id string, req ModuleRequest) (*model.Module, error) {
	if req.Name == "" {
		return nil, util.ErrModuleNameRequired
	}

	var renamed *model.Module
	err := s.update(func(modules []model.Module) ([]model.Module, error) {
		for i := range modules {
			if modules[i].ID == id {
				modules[i].Name = req.Name
				renamed = modules[i].Clone()
				return modules, nil
			}
		}
		return nil, util.ErrModuleNotFound
	})
	return renamed, err
}

func (s *ModuleService) DeleteModule(id string) error {
	return s.update(func(modules []model.Module) ([]model.Module, error) {
		for i := range modules {
			if modules[i].ID == id {
				return append(modules[:i], modules[i+1:]...), nil
			}
		}
		return nil, util.ErrModuleNotFound
	})
}

// AddQuestion appends a question to the module. Questions keep insertion
// order; the quiz iterates them in the order stored.
func (s *ModuleService) AddQuestion(moduleID string, req QuestionRequest) (*model.Question, error) {
	if req.QuestionText == "" || req.Answer == "" {
		return nil, util.ErrQuestionIncomplete
	}

	q := model.Question{
		ID:           model.GenerateUUID(),
		QuestionText: req.QuestionText,
		Answer:       req.Answer,
	}
	err := s.update(func(modules []model.Module) ([]model.Module, error) {
		for i := range modules {
			if modules[i].ID == moduleID {
				modules[i].Questions = append(modules[i].Questions, q)
				return modules, nil
			}
		}
		return nil, util.ErrModuleNotFound
	})
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// UpdateQuestion edits a question in place, preserving its position.
func (s *ModuleService) UpdateQuestion(moduleID, questionID string, req QuestionRequest) (*model.Question, error) {
	if req.QuestionText == "" || req.Answer == "" {
		return nil, util.ErrQuestionIncomplete
	}

	var updated *model.Question
	err := s.update(func(modules []model.Module) ([]model.Module, error) {
		for i := range modules {
			if modules[i].ID != moduleID {
				continue
			}
			for j := range modules[i].Questions {
				if modules[i].Questions[j].ID == questionID {
					modules[i].Questions[j].QuestionText = req.QuestionText
					modules[i].Questions[j].Answer = req.Answer
					q := modules[i].Questions[j]
					updated = &q
					return modules, nil
				}
			}
			return nil, util.ErrQuestionNotFound
		}
		return nil, util.ErrModuleNotFound
	})
	return updated, err
}

func (s *ModuleService) DeleteQuestion(moduleID, questionID string) error {
	return s.update(func(modules []model.Module) ([]model.Module, error) {
		for i := range modules {
			if modules[i].ID != moduleID {
				continue
			}
			qs := modules[i].Questions
			for j := range qs {
				if qs[j].ID == questionID {
					modules[i].Questions = append(qs[:j], qs[j+1:]...)
					return modules, nil
				}
			}
			return nil, util.ErrQuestionNotFound
		}
		return nil, util.ErrModuleNotFound
	})
}

// update runs a load-mutate-save cycle against the store.
func (s *ModuleService) update(mutate func([]model.Module) ([]model.Module, error)) error {
	modules, err := s.Repo.LoadModules()
	if err != nil {
		return err
	}
	modules, err = mutate(modules)
	if err != nil {
		return err
	}
	return s.Repo.SaveModules(modules)
}
