package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"horizons/internal/export"
	"horizons/internal/models"
	"horizons/internal/query"
)

// ephemeris <body>: vector table for a body, CSV on stdout or a file by extension.
func ephemerisCmd() *cobra.Command {
	var (
		start, stop, step    string
		site, wrt            string
		units, timeFormat    string
		refPlane, outputPath string
		header               []string
	)

	cmd := &cobra.Command{
		Use:   "ephemeris <body>",
		Short: "Fetch position and velocity vectors for a body",
		Example: `  horizons ephemeris earth --start 2024-01-01 --stop 2024-01-04 --step 1d
  horizons ephemeris "voyager 1" --wrt sun --units au-d --start 2024-01-01 --stop 2025-01-01 --step 30d --out voyager.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startTime, err := query.ParseTime(start)
			if err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			stopTime, err := query.ParseTime(stop)
			if err != nil {
				return fmt.Errorf("--stop: %w", err)
			}
			stepSize, err := query.ParseStep(step)
			if err != nil {
				return fmt.Errorf("--step: %w", err)
			}

			opts := models.Options{
				Site:       site,
				Units:      models.Units(strings.ToUpper(units)),
				TimeFormat: models.TimeFormat(strings.ToUpper(timeFormat)),
				RefPlane:   models.RefPlane(strings.ToUpper(refPlane)),
				Header:     header,
			}
			if wrt != "" {
				opts.WRT = models.ParseBody(wrt)
			}

			result, err := ephemerisSvc.Ephemeris(cmd.Context(), models.ParseBody(args[0]), startTime, stopTime, stepSize, opts)
			if err != nil {
				return err
			}

			if outputPath == "" {
				return export.CSV{}.Encode(cmd.OutOrStdout(), result)
			}
			if err := export.WriteFile(outputPath, result); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", result.Rows(), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start time, e.g. 2024-01-01 or 2024-01-01T12:00:00Z")
	cmd.Flags().StringVar(&stop, "stop", "", "stop time")
	cmd.Flags().StringVar(&step, "step", "1d", "step size, e.g. 1d, 6h, 30m")
	cmd.Flags().StringVar(&site, "site", "", "observer site code (default 500, the body center)")
	cmd.Flags().StringVar(&wrt, "wrt", "", "reference body name or code (default ssb)")
	cmd.Flags().StringVar(&units, "units", "", "KM-S, AU-D or KM-D")
	cmd.Flags().StringVar(&timeFormat, "time-format", "", "TDB, TT or UT")
	cmd.Flags().StringVar(&refPlane, "ref-plane", "", "ECLIPTIC, FRAME or 'BODY EQUATOR'")
	cmd.Flags().StringSliceVar(&header, "header", nil, "eight comma-separated column labels")
	cmd.Flags().StringVarP(&outputPath, "out", "o", "", "write to a .csv or .xlsx file instead of stdout")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("stop")
	return cmd
}
