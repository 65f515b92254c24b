package service

import (
	"errors"
	"path/filepath"
	"testing"

	"quizdeck_backend/internal/repository"
	"quizdeck_backend/internal/util"
)

func newModuleService(t *testing.T) *ModuleService {
	t.Helper()
	dir := t.TempDir()
	repo, err := repository.NewModuleRepository(
		filepath.Join(dir, "modules.json"),
		filepath.Join(dir, "missing-template.json"),
	)
	if err != nil {
		t.Fatal(err)
	}
	return NewModuleService(repo)
}

func TestCreateAndListModules(t *testing.T) {
	svc := newModuleService(t)

	m, err := svc.CreateModule(ModuleRequest{Name: "Geography"})
	if err != nil {
		t.Fatal(err)
	}
	if m.ID == "" {
		t.Fatal("created module has no id")
	}
	if m.Name != "Geography" {
		t.Fatalf("name = %q, want Geography", m.Name)
	}

	modules, err := svc.ListModules()
	if err != nil {
		t.Fatal(err)
	}
	if len(modules) != 1 || modules[0].ID != m.ID {
		t.Fatalf("modules = %+v, want the created one", modules)
	}
}

func TestRenameKeepsID(t *testing.T) {
	svc := newModuleService(t)
	m, err := svc.CreateModule(ModuleRequest{Name: "Old"})
	if err != nil {
		t.Fatal(err)
	}

	renamed, err := svc.RenameModule(m.ID, ModuleRequest{Name: "New"})
	if err != nil {
		t.Fatal(err)
	}
	if renamed.ID != m.ID {
		t.Fatalf("id changed on rename: %s -> %s", m.ID, renamed.ID)
	}
	if renamed.Name != "New" {
		t.Fatalf("name = %q, want New", renamed.Name)
	}
}

func TestDeleteModule(t *testing.T) {
	svc := newModuleService(t)
	m, err := svc.CreateModule(ModuleRequest{Name: "Doomed"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteModule(m.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetModule(m.ID); !errors.Is(err, util.ErrModuleNotFound) {
		t.Fatalf("expected ErrModuleNotFound, got %v", err)
	}
	if err := svc.DeleteModule(m.ID); !errors.Is(err, util.ErrModuleNotFound) {
		t.Fatalf("second delete: expected ErrModuleNotFound, got %v", err)
	}
}

func TestQuestionsKeepInsertionOrder(t *testing.T) {
	svc := newModuleService(t)
	m, err := svc.CreateModule(ModuleRequest{Name: "Ordered"})
	if err != nil {
		t.Fatal(err)
	}

	texts := []string{"first?", "second?", "third?"}
	for _, txt := range texts {
		if _, err := svc.AddQuestion(m.ID, QuestionRequest{QuestionText: txt, Answer: "x" + txt}); err != nil {
			t.Fatal(err)
		}
	}

	got, err := svc.GetModule(m.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Questions) != 3 {
		t.Fatalf("question count = %d, want 3", len(got.Questions))
	}
	for i, txt := range texts {
		if got.Questions[i].QuestionText != txt {
			t.Fatalf("question %d = %q, want %q", i, got.Questions[i].QuestionText, txt)
		}
	}
}

func TestUpdateQuestionPreservesPosition(t *testing.T) {
	svc := newModuleService(t)
	m, err := svc.CreateModule(ModuleRequest{Name: "Edit"})
	if err != nil {
		t.Fatal(err)
	}

	var middleID string
	for i, txt := range []string{"a?", "b?", "c?"} {
		q, err := svc.AddQuestion(m.ID, QuestionRequest{QuestionText: txt, Answer: "ans"})
		if err != nil {
			t.Fatal(err)
		}
		if i == 1 {
			middleID = q.ID
		}
	}

	updated, err := svc.UpdateQuestion(m.ID, middleID, QuestionRequest{QuestionText: "b2?", Answer: "ans2"})
	if err != nil {
		t.Fatal(err)
	}
	if updated.ID != middleID {
		t.Fatalf("question id changed on edit: %s -> %s", middleID, updated.ID)
	}

	got, err := svc.GetModule(m.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Questions[1].QuestionText != "b2?" || got.Questions[1].Answer != "ans2" {
		t.Fatalf("middle question = %+v, want edited content", got.Questions[1])
	}
	if got.Questions[0].QuestionText != "a?" || got.Questions[2].QuestionText != "c?" {
		t.Fatalf("neighbors disturbed by edit: %+v", got.Questions)
	}
}

func TestDeleteQuestion(t *testing.T) {
	svc := newModuleService(t)
	m, err := svc.CreateModule(ModuleRequest{Name: "Shrink"})
	if err != nil {
		t.Fatal(err)
	}

	q1, err := svc.AddQuestion(m.ID, QuestionRequest{QuestionText: "keep?", Answer: "k"})
	if err != nil {
		t.Fatal(err)
	}
	q2, err := svc.AddQuestion(m.ID, QuestionRequest{QuestionText: "drop?", Answer: "d"})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteQuestion(m.ID, q2.ID); err != nil {
		t.Fatal(err)
	}

	got, err := svc.GetModule(m.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Questions) != 1 || got.Questions[0].ID != q1.ID {
		t.Fatalf("questions = %+v, want only %s", got.Questions, q1.ID)
	}

	if err := svc.DeleteQuestion(m.ID, q2.ID); !errors.Is(err, util.ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestValidationErrors(t *testing.T) {
	svc := newModuleService(t)

	if _, err := svc.CreateModule(ModuleRequest{}); !errors.Is(err, util.ErrModuleNameRequired) {
		t.Fatalf("expected ErrModuleNameRequired, got %v", err)
	}

	m, err := svc.CreateModule(ModuleRequest{Name: "V"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddQuestion(m.ID, QuestionRequest{QuestionText: "q?"}); !errors.Is(err, util.ErrQuestionIncomplete) {
		t.Fatalf("expected ErrQuestionIncomplete, got %v", err)
	}
	if _, err := svc.AddQuestion("no-such-module", QuestionRequest{QuestionText: "q?", Answer: "a"}); !errors.Is(err, util.ErrModuleNotFound) {
		t.Fatalf("expected ErrModuleNotFound, got %v", err)
	}
}
