package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"quizdeck_backend/internal/model"
)

func writeTemplate(t *testing.T, dir string, modules []model.Module) string {
	t.Helper()
	raw, err := json.Marshal(modules)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "modules_template.json")
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFirstRunSeedsFromTemplate(t *testing.T) {
	dir := t.TempDir()
	template := writeTemplate(t, dir, []model.Module{
		{ID: "m1", Name: "Geo", Questions: []model.Question{
			{ID: "q1", QuestionText: "Capital of France?", Answer: "Paris"},
		}},
	})
	storePath := filepath.Join(dir, "data", "modules.json")

	repo, err := NewModuleRepository(storePath, template)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(storePath); err != nil {
		t.Fatalf("store file not created: %v", err)
	}

	modules, err := repo.LoadModules()
	if err != nil {
		t.Fatal(err)
	}
	if len(modules) != 1 || modules[0].ID != "m1" || len(modules[0].Questions) != 1 {
		t.Fatalf("seeded modules = %+v, want template contents", modules)
	}
}

func TestMissingTemplateSeedsEmptyStore(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "modules.json")

	repo, err := NewModuleRepository(storePath, filepath.Join(dir, "no-such-template.json"))
	if err != nil {
		t.Fatal(err)
	}

	modules, err := repo.LoadModules()
	if err != nil {
		t.Fatal(err)
	}
	if len(modules) != 0 {
		t.Fatalf("modules = %+v, want empty", modules)
	}
}

func TestExistingStoreNotOverwritten(t *testing.T) {
	dir := t.TempDir()
	template := writeTemplate(t, dir, []model.Module{{ID: "from-template", Name: "t"}})
	storePath := filepath.Join(dir, "modules.json")

	existing := []model.Module{{ID: "user-data", Name: "mine", Questions: []model.Question{}}}
	raw, _ := json.Marshal(existing)
	if err := os.WriteFile(storePath, raw, 0644); err != nil {
		t.Fatal(err)
	}

	repo, err := NewModuleRepository(storePath, template)
	if err != nil {
		t.Fatal(err)
	}

	modules, err := repo.LoadModules()
	if err != nil {
		t.Fatal(err)
	}
	if len(modules) != 1 || modules[0].ID != "user-data" {
		t.Fatalf("modules = %+v, seeding clobbered existing store", modules)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "modules.json")
	repo, err := NewModuleRepository(storePath, filepath.Join(dir, "missing.json"))
	if err != nil {
		t.Fatal(err)
	}

	want := []model.Module{
		{ID: "m1", Name: "First", Questions: []model.Question{
			{ID: "q1", QuestionText: "a?", Answer: "A"},
			{ID: "q2", QuestionText: "b?", Answer: "B"},
		}},
		{ID: "m2", Name: "Second", Questions: []model.Question{}},
	}
	if err := repo.SaveModules(want); err != nil {
		t.Fatal(err)
	}

	got, err := repo.LoadModules()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "m1" || got[1].ID != "m2" {
		t.Fatalf("loaded = %+v, want %+v", got, want)
	}
	if got[0].Questions[0].Answer != "A" || got[0].Questions[1].Answer != "B" {
		t.Fatalf("question order not preserved: %+v", got[0].Questions)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "modules.json")
	repo, err := NewModuleRepository(storePath, filepath.Join(dir, "missing.json"))
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.SaveModules([]model.Module{{ID: "m1", Name: "Geo", Questions: []model.Question{}}}); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("temp file left behind after save: %s", e.Name())
		}
	}

	raw, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatal(err)
	}
	var modules []model.Module
	if err := json.Unmarshal(raw, &modules); err != nil {
		t.Fatalf("store not valid JSON after save: %v", err)
	}
	if len(modules) != 1 || modules[0].ID != "m1" {
		t.Fatalf("store contents = %+v", modules)
	}
}

func TestCorruptStoreReportsError(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "modules.json")
	if err := os.WriteFile(storePath, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	repo, err := NewModuleRepository(storePath, filepath.Join(dir, "missing.json"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := repo.LoadModules(); err == nil {
		t.Fatal("expected error loading corrupt store")
	}
}
