package repository

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"quizdeck_backend/internal/model"
)

// ModuleRepository persists all modules as one JSON document on local disk.
// On first run the document is seeded by copying the bundled template.
type ModuleRepository struct {
	path         string
	templatePath string
	mu           sync.Mutex
}

func NewModuleRepository(path, templatePath string) (*ModuleRepository, error) {
	r := &ModuleRepository{
		path:         path,
		templatePath: templatePath,
	}
	if err := r.ensureSeeded(); err != nil {
		return nil, err
	}
	return r, nil
}

// ensureSeeded copies the template into place if the store file does not exist
// yet. A missing template falls back to an empty module list.
func (r *ModuleRepository) ensureSeeded() error {
	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return err
	}

	src, err := os.Open(r.templatePath)
	if os.IsNotExist(err) {
		return r.write([]model.Module{})
	}
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(r.path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// LoadModules reads the full module list from disk.
func (r *ModuleRepository) LoadModules() ([]model.Module, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

// SaveModules replaces the on-disk document with the given module list.
func (r *ModuleRepository) SaveModules(modules []model.Module) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.write(modules)
}

func (r *ModuleRepository) read() ([]model.Module, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, err
	}

	var modules []model.Module
	if err := json.Unmarshal(raw, &modules); err != nil {
		return nil, fmt.Errorf("modules store %s is corrupt: %w", r.path, err)
	}
	return modules, nil
}

// write serializes through a temp file and renames it into place so a crash
// mid-write never leaves a truncated store.
func (r *ModuleRepository) write(modules []model.Module) error {
	raw, err := json.MarshalIndent(modules, "", "  ")
	if err != nil {
		return err
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}
