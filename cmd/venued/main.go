package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "venued",
		Short: "SMC-VenueService - бронирование площадок, назначение сотрудников и отпуска",
		Long: `Сервис бронирования площадок: проверка пересечений по площадкам и сотрудникам,
назначение персонала на мероприятия и двухэтапное согласование отпусков (HR + руководитель).`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "Путь к файлу конфигурации")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(completePassedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
