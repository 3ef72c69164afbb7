package cmd

import (
	"github.com/bjaus/sheet/internal/chip"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newListCommand(a *app) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lists the various chips",
		Long: `Lists every registered chip with its description.

--filter takes a glob pattern matched against chip names, ignoring case:
  xchip list --filter 'sw*'
  xchip list --filter '{cw01,od01}'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runList(cmd, filter)
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "glob pattern for chip names")
	return cmd
}

func (a *app) runList(cmd *cobra.Command, filter string) error {
	r, err := a.registry()
	if err != nil {
		return err
	}
	chips, err := r.Filter(filter)
	if err != nil {
		return err
	}
	if len(chips) == 0 {
		a.logger.Warn("no chips match filter", zap.String("filter", filter))
	}
	return a.render(cmd, chip.ListSheet(chips))
}
