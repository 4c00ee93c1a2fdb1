package internal

import (
	"github.com/rios0rios0/depcheck/internal/domain/entities"
	"github.com/rios0rios0/depcheck/internal/infrastructure/controllers"
)

// AppInternal groups the controllers the CLI is built from.
type AppInternal struct {
	rootController *controllers.AnalyzeController
	controllers    []entities.Controller
}

// NewAppInternal creates the AppInternal from the injected controllers.
func NewAppInternal(
	rootController *controllers.AnalyzeController,
	controllers *[]entities.Controller,
) *AppInternal {
	return &AppInternal{
		rootController: rootController,
		controllers:    *controllers,
	}
}

// GetRootController returns the controller bound to the root command.
func (it *AppInternal) GetRootController() *controllers.AnalyzeController {
	return it.rootController
}

// GetControllers returns the subcommand controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
