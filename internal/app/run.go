// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"
)

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Run method started.", "command", a.config.Command)

	var err error
	switch a.config.Command {
	case CommandTools:
		err = a.runTools(ctx)
	case CommandFlags:
		err = a.runFlags(ctx)
	case CommandParse:
		err = a.runParse(ctx)
	case CommandBuild:
		err = a.runBuild(ctx)
	case CommandCheck:
		err = a.runCheck(ctx)
	default:
		err = fmt.Errorf("unknown command %q", a.config.Command)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
