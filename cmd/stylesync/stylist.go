package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stylesync-app/stylesync/internal/store"
	"github.com/stylesync-app/stylesync/internal/stylist"
	"github.com/stylesync-app/stylesync/internal/wardrobe"
)

var (
	outfitsOccasion string
	outfitsSeason   string
	outfitsMood     string

	todayRefresh bool

	wearName string

	occasionDetails []string
)

var outfitsCmd = &cobra.Command{
	Use:   "outfits",
	Short: "Generate outfit ideas from your wardrobe",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, items, profile, err := requireWardrobeAndProfile(cmd)
		if err != nil {
			return err
		}

		outfits, err := newClient().OutfitIdeas(cmd.Context(), items, profile, stylist.Filters{
			Occasion: outfitsOccasion,
			Season:   outfitsSeason,
			Mood:     outfitsMood,
		})
		if err != nil {
			return err
		}

		s.SaveOutfitPlan(outfits)
		return printJSON(outfits)
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Analyze wardrobe gaps and suggest what to buy",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, items, profile, err := requireWardrobeAndProfile(cmd)
		if err != nil {
			return err
		}

		result, err := newClient().Recommend(cmd.Context(), items, profile)
		if err != nil {
			return err
		}

		fmt.Println("Wardrobe analysis:")
		if err := printJSON(result.WardrobeAnalysis); err != nil {
			return err
		}
		fmt.Println("\nRecommendations:")
		return printJSON(result.Recommendations)
	},
}

var weatherCmd = &cobra.Command{
	Use:   "weather [city]",
	Short: "Show the 7-day forecast",
	Long:  "Show the 7-day forecast for a city, defaulting to your profile location.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		city := ""
		if len(args) == 1 {
			city = args[0]
		} else {
			s, err := newStore(cmd.Context())
			if err != nil {
				return err
			}
			if profile := s.Profile(); profile != nil {
				city = profile.Location
			}
		}
		if city == "" {
			return fmt.Errorf("no city given and no profile location set")
		}

		forecast, err := newClient().Weather(cmd.Context(), city)
		if err != nil {
			return err
		}

		fmt.Printf("%s, %s\n", forecast.Location.Name, forecast.Location.Country)
		for _, day := range forecast.Days {
			fmt.Printf("  %s  %s (%.0f%% rain)\n", day.Date, day.Summary, day.PrecipitationChance)
		}
		return nil
	},
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Get today's outfit pick",
	Long: `Get today's outfit pick. The pick is cached for the calendar day; pass
--refresh to reject it and ask for a different one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, items, profile, err := requireWardrobeAndProfile(cmd)
		if err != nil {
			return err
		}

		var rejected []json.RawMessage
		if cached := s.TodayPick(); cached != nil {
			if !todayRefresh {
				return printJSON(cached.Outfit)
			}
			rejected = append(rejected, cached.Outfit)
		}

		// Weather is best-effort: a failed lookup should not block the pick.
		var forecast json.RawMessage
		if profile.Location != "" {
			if f, err := newClient().Weather(cmd.Context(), profile.Location); err == nil {
				forecast, _ = json.Marshal(f)
			}
		}

		outfit, err := newClient().TodayPick(cmd.Context(), items, profile, forecast, s.WearHistory(), rejected)
		if err != nil {
			return err
		}

		s.SaveTodayPick(outfit)
		return printJSON(outfit)
	},
}

var wearCmd = &cobra.Command{
	Use:   "wear <item-id>...",
	Short: "Log that you wore these items today",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore(cmd.Context())
		if err != nil {
			return err
		}

		known := make(map[string]bool)
		for _, item := range s.Wardrobe() {
			known[item.ID] = true
		}
		for _, id := range args {
			if !known[id] {
				return fmt.Errorf("unknown item id %q, see: stylesync wardrobe list", id)
			}
		}

		s.AddWearEntry(args, wearName)
		fmt.Printf("Logged %d items for today.\n", len(args))
		return nil
	},
}

var occasionCmd = &cobra.Command{
	Use:   "occasion <type>",
	Short: "Get outfit options for a specific event",
	Long: `Get outfit options for a specific event.

Example:
  stylesync occasion wedding_guest --detail venue="banquet hall" --detail time=evening`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, items, profile, err := requireWardrobeAndProfile(cmd)
		if err != nil {
			return err
		}

		event := stylist.Event{Type: args[0]}
		if len(occasionDetails) > 0 {
			event.Details = make(map[string]any, len(occasionDetails))
			for _, pair := range occasionDetails {
				key, value, ok := strings.Cut(pair, "=")
				if !ok {
					return fmt.Errorf("invalid --detail %q, use key=value", pair)
				}
				event.Details[key] = value
			}
		}

		outfits, err := newClient().OccasionOutfits(cmd.Context(), items, profile, event)
		if err != nil {
			return err
		}
		return printJSON(outfits)
	},
}

func init() {
	outfitsCmd.Flags().StringVar(&outfitsOccasion, "occasion", "", "occasion filter (office, party, ...)")
	outfitsCmd.Flags().StringVar(&outfitsSeason, "season", "", "season filter (summer, winter, rainy, all_season)")
	outfitsCmd.Flags().StringVar(&outfitsMood, "mood", "", "mood or vibe filter")

	todayCmd.Flags().BoolVar(&todayRefresh, "refresh", false, "reject the cached pick and ask for another")

	wearCmd.Flags().StringVar(&wearName, "name", "", "name of the outfit being worn")

	occasionCmd.Flags().StringArrayVar(&occasionDetails, "detail", nil, "event detail as key=value, repeatable")
}

// requireWardrobeAndProfile loads the store and insists on a non-empty
// wardrobe and a saved profile, the preconditions of every stylist call.
func requireWardrobeAndProfile(cmd *cobra.Command) (*store.Store, []wardrobe.Item, *wardrobe.Profile, error) {
	s, err := newStore(cmd.Context())
	if err != nil {
		return nil, nil, nil, err
	}

	items := s.Wardrobe()
	if len(items) == 0 {
		return nil, nil, nil, errors.New("your wardrobe is empty, add items with: stylesync wardrobe add <photo>")
	}

	profile := s.Profile()
	if profile == nil {
		return nil, nil, nil, errors.New("no profile yet, create one with: stylesync profile set")
	}

	return s, items, profile, nil
}

func printJSON(raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		// Not valid JSON? Print it as-is rather than losing it.
		fmt.Println(string(raw))
		return nil
	}
	fmt.Println(buf.String())
	return nil
}
