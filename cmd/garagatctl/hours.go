package main

import (
	"context"
	"fmt"
	"time"

	"garagat/config"
	"garagat/database"
	providerRepo "garagat/database/repository/provider"
	"garagat/models"
	"garagat/services/scheduling"
	"garagat/utils"

	"github.com/spf13/cobra"
)

// hoursStore is the part of the provider repository the hours command writes to.
type hoursStore interface {
	UpdateOperatingHours(id string, hours models.OperatingHours) error
}

type openHoursStore func() (hoursStore, func(), error)

// openProviderRepo connects to the configured MongoDB.
func openProviderRepo() (hoursStore, func(), error) {
	config.LoadConfig()
	cfg := config.AppConfig
	if err := database.InitDB(cfg.DatabaseURL, cfg.DatabaseName, utils.GetLogger()); err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = database.Disconnect(ctx)
	}
	repo, err := providerRepo.NewMongoProviderRepo(database.MongoDB)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	return repo, closeDB, nil
}

func newHoursCmd(open openHoursStore) *cobra.Command {
	var (
		provider    string
		openHour    int
		closingHour int
	)
	cmd := &cobra.Command{
		Use:     "hours",
		Short:   "Set a garage's operating hours",
		Example: `  garagatctl hours --provider g1 --open 9 --close 18`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if provider == "" {
				return fmt.Errorf("--provider is required")
			}
			hours := models.OperatingHours{StartHour: openHour, EndHour: closingHour}
			if err := scheduling.ValidateHours(hours); err != nil {
				return err
			}
			store, closeStore, err := open()
			if err != nil {
				return err
			}
			defer closeStore()
			if err := store.UpdateOperatingHours(provider, hours); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Provider %s now open %02d:00-%02d:00\n", provider, openHour, closingHour)
			return nil
		},
	}
	cmd.Flags().StringVar(&provider, "provider", "", "Provider ID")
	cmd.Flags().IntVar(&openHour, "open", scheduling.DefaultHours.StartHour, "Opening hour (0-23)")
	cmd.Flags().IntVar(&closingHour, "close", scheduling.DefaultHours.EndHour, "Closing hour (0-23)")
	return cmd
}
