package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stylesync-app/stylesync/internal/wardrobe"
)

var wardrobeCmd = &cobra.Command{
	Use:   "wardrobe",
	Short: "Manage your wardrobe items",
}

var wardrobeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all wardrobe items",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore(cmd.Context())
		if err != nil {
			return err
		}

		items := s.Wardrobe()
		if len(items) == 0 {
			fmt.Println("Your wardrobe is empty. Add an item with: stylesync wardrobe add <photo>")
			return nil
		}

		for _, item := range items {
			fmt.Printf("%s  %-12s %s\n", item.ID, item.Category, item.Description)
		}
		fmt.Printf("\n%d items\n", len(items))
		return nil
	},
}

var wardrobeAddCmd = &cobra.Command{
	Use:   "add <photo>",
	Short: "Classify a clothing photo and add it to your wardrobe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		image, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading image: %w", err)
		}

		mimeType := imageMIMEType(path)
		classification, err := newClient().Classify(cmd.Context(), image, mimeType, filepath.Base(path))
		if err != nil {
			return err
		}

		s, err := newStore(cmd.Context())
		if err != nil {
			return err
		}

		item := s.AddItem(wardrobe.Item{
			Classification: *classification,
			Image:          dataURI(mimeType, image),
		})
		if item == nil {
			return fmt.Errorf("could not save the item, check the data directory")
		}

		fmt.Printf("Added %s: %s (%s, %s)\n", item.ID, item.Description, item.Category, item.Color)
		return nil
	},
}

var wardrobeRemoveCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove an item from your wardrobe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newStore(cmd.Context())
		if err != nil {
			return err
		}

		remaining := s.RemoveItem(args[0])
		fmt.Printf("Done. %d items remain.\n", len(remaining))
		return nil
	},
}

func init() {
	wardrobeCmd.AddCommand(wardrobeListCmd)
	wardrobeCmd.AddCommand(wardrobeAddCmd)
	wardrobeCmd.AddCommand(wardrobeRemoveCmd)
}

func imageMIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".heic":
		return "image/heic"
	default:
		return "image/jpeg"
	}
}

func dataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
