package util

import "errors"

var (
	ErrModuleNotFound     = errors.New("module not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrModuleNameRequired = errors.New("module name is required")
	ErrQuestionIncomplete = errors.New("question text and answer are required")
)
