package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-VenueService/pkg/types"
)

func completePassedCmd() *cobra.Command {
	var (
		dryRun bool
		date   string
	)

	cmd := &cobra.Command{
		Use:   "complete-passed",
		Short: "Перевести прошедшие подтверждённые бронирования в completed",
		Long: `Находит подтверждённые бронирования, закончившиеся раньше указанной даты (по умолчанию сегодня),
и переводит их в статус completed. Повторный запуск безопасен.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := initApp(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			loc, err := app.Cfg.Scheduler.Location()
			if err != nil {
				return err
			}
			today := types.SystemClock{Location: loc}.Today()
			if date != "" {
				if today, err = types.ParseDate(date); err != nil {
					return err
				}
			}

			stopCh := make(chan struct{})
			defer close(stopCh)
			c := buildContainer(app.DB, nil, stopCh, app.Logger)

			report, err := c.bookings.CompletePassed(cmd.Context(), today, dryRun)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintf(out, "Dry run for %s: %d booking(s) would be completed\n", report.Date, report.Count())
			} else {
				fmt.Fprintf(out, "Completed %d booking(s) ended before %s\n", report.Count(), report.Date)
			}
			for _, id := range report.BookingIDs {
				fmt.Fprintf(out, "  - booking #%d\n", id)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Только показать, какие бронирования будут завершены")
	cmd.Flags().StringVar(&date, "date", "", "Дата отсечки в формате YYYY-MM-DD (по умолчанию сегодня)")
	return cmd
}
