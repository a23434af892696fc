// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the terminal UI pieces of the gazelle command: the
// interactive login prompt and a few lipgloss renderers.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-gazelle/models"
)

// ErrUserQuit is returned by [PromptCredentials] when the prompt is cancelled.
var ErrUserQuit = errors.New("login cancelled")

// PromptCredentials asks for the missing parts of initial on the terminal.
func PromptCredentials(ctx context.Context, host string, initial models.Credentials, opts ...tea.ProgramOption) (models.Credentials, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)

	finalModel, err := tea.NewProgram(NewLoginModel(host, initial), opts...).Run()
	if err != nil {
		return models.Credentials{}, err
	}

	result, ok := finalModel.(*LoginModel)
	if !ok {
		return models.Credentials{}, tea.ErrProgramKilled
	}
	if result.cancelled || !result.submitted {
		return models.Credentials{}, ErrUserQuit
	}

	return result.Credentials(), nil
}
