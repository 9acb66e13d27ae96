package cmd

import (
	"github.com/nibzard/tasktracker-go/internal/command"
	"github.com/nibzard/tasktracker-go/internal/executor"
	"github.com/nibzard/tasktracker-go/internal/presenter"
)

// taskCommand parses args as one tracker command, applies it and renders the
// result.
func (a *app) taskCommand(args []string) error {
	c, err := command.Parse(args)
	if err != nil {
		return err
	}
	a.logger.Debug("parsed command", "command", c.Name())

	store, err := a.openStorage()
	if err != nil {
		return err
	}
	strategy, err := executor.ParseIDStrategy(a.cfg.IDStrategy)
	if err != nil {
		return err
	}
	ex := executor.New(store,
		executor.WithIDStrategy(strategy),
		executor.WithLogger(a.logger),
	)

	res, err := ex.Execute(c)
	if err != nil {
		return err
	}
	return presenter.Render(a.out, res)
}
