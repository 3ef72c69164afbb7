package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show NAME",
		Short: "Shows the details of one chip",
		Long: `Shows every field of one chip. The name is matched ignoring case.

Example:
  xchip show sw01`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShow(cmd, args[0])
		},
	}
}

func (a *app) runShow(cmd *cobra.Command, name string) error {
	r, err := a.registry()
	if err != nil {
		return err
	}
	c, err := r.Find(name)
	if err != nil {
		a.logger.Debug("chip lookup failed", zap.String("name", name), zap.Error(err))
		return err
	}
	return a.render(cmd, c.Sheet())
}
