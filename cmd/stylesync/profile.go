package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stylesync-app/stylesync/internal/wardrobe"
)

var (
	profileGender   string
	profileLocation string
	profileStyles   []string
	profileBudget   string
	profileSchedule []string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your style profile",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or replace your style profile",
	Long: `Create or replace your style profile. The profile is saved wholesale, so
pass every field you want to keep.

Example:
  stylesync profile set --gender male --location Mumbai \
    --style minimal --style smart_casual --budget mid \
    --schedule monday=office --schedule saturday=brunch`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileLocation == "" {
			return fmt.Errorf("please pass --location, it drives weather-aware picks")
		}

		schedule := make(map[string]string, len(profileSchedule))
		for _, pair := range profileSchedule {
			day, occasion, ok := strings.Cut(pair, "=")
			if !ok {
				return fmt.Errorf("invalid --schedule %q, use day=occasion", pair)
			}
			schedule[strings.ToLower(day)] = occasion
		}

		s, err := newStore(cmd.Context())
		if err != nil {
			return err
		}

		s.SaveProfile(wardrobe.Profile{
			Gender:   profileGender,
			Location: profileLocation,
			Styles:   profileStyles,
			Budget:   profileBudget,
			Schedule: schedule,
		})

		fmt.Println("Profile saved.")
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your style profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore(cmd.Context())
		if err != nil {
			return err
		}

		profile := s.Profile()
		if profile == nil {
			fmt.Println("No profile yet. Create one with: stylesync profile set")
			return nil
		}

		fmt.Printf("Gender:   %s\n", profile.Gender)
		fmt.Printf("Location: %s\n", profile.Location)
		fmt.Printf("Styles:   %s\n", strings.Join(profile.Styles, ", "))
		fmt.Printf("Budget:   %s\n", profile.Budget)
		if len(profile.Schedule) > 0 {
			fmt.Println("Schedule:")
			for day, occasion := range profile.Schedule {
				fmt.Printf("  %-10s %s\n", day, occasion)
			}
		}
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "gender the stylist should dress for")
	profileSetCmd.Flags().StringVar(&profileLocation, "location", "", "home city, used for weather")
	profileSetCmd.Flags().StringArrayVar(&profileStyles, "style", nil, "preferred style, repeatable")
	profileSetCmd.Flags().StringVar(&profileBudget, "budget", "", "shopping budget band (budget, mid, premium)")
	profileSetCmd.Flags().StringArrayVar(&profileSchedule, "schedule", nil, "weekly schedule as day=occasion, repeatable")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
}
