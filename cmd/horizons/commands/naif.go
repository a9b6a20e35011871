package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"horizons/internal/models"
)

// naif <name|code>: translate in either direction, or --list the bundled table.
func naifCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "naif [name|code]",
		Short: "Look up a NAIF code or body name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if list {
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "CODE\tNAME")
				for _, e := range ephemerisSvc.Bodies() {
					fmt.Fprintf(tw, "%d\t%s\n", e.Code, e.Name)
				}
				return tw.Flush()
			}
			if len(args) == 0 {
				return fmt.Errorf("give a name or code, or use --list")
			}

			body := models.ParseBody(args[0])
			if body.IsCode() {
				name, err := ephemerisSvc.ResolveName(body.Code())
				if err != nil {
					return err
				}
				fmt.Fprintln(out, name)
				return nil
			}

			code, err := ephemerisSvc.ResolveCode(body.Name())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, code)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list every bundled body")
	return cmd
}
