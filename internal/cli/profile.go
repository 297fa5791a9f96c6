package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sagovc/reengage/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the investor profile used for outreach personalization",
}

// profileInput mirrors store.UserProfile with file-friendly JSON tags.
type profileInput struct {
	UserID          string   `json:"user_id"`
	Name            string   `json:"name"`
	ThesisKeywords  []string `json:"thesis_keywords"`
	Tone            string   `json:"tone"`
	Availability    []string `json:"availability"`
	Channels        []string `json:"preferred_channels"`
	AutoSendEnabled bool     `json:"auto_send_enabled"`
	Resources       []struct {
		Category string `json:"category"`
		Label    string `json:"label"`
		Link     string `json:"link"`
	} `json:"resources"`
}

var profileSetCmd = &cobra.Command{
	Use:   "set <profile.json>",
	Short: "Create or replace the investor profile from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read profile: %w", err)
		}
		var in profileInput
		if err := json.Unmarshal(data, &in); err != nil {
			return fmt.Errorf("parse profile: %w", err)
		}
		if in.UserID == "" {
			return fmt.Errorf("profile user_id is required")
		}

		p := store.UserProfile{
			UserID:            in.UserID,
			Name:              in.Name,
			ThesisKeywords:    in.ThesisKeywords,
			Tone:              in.Tone,
			Availability:      in.Availability,
			PreferredChannels: in.Channels,
			AutoSendEnabled:   in.AutoSendEnabled,
		}
		for _, r := range in.Resources {
			p.ResourceLibrary = append(p.ResourceLibrary, store.Resource{
				Category: r.Category, Label: r.Label, Link: r.Link,
			})
		}

		_, st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.SaveProfile(p); err != nil {
			return err
		}
		fmt.Printf("saved profile %s\n", p.UserID)
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the configured investor profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		p, err := st.GetProfile(cfg.UserID)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n", p.Name, p.UserID)
		fmt.Printf("  thesis:       %s\n", strings.Join(p.ThesisKeywords, ", "))
		fmt.Printf("  tone:         %s\n", p.Tone)
		fmt.Printf("  availability: %s\n", strings.Join(p.Availability, ", "))
		fmt.Printf("  auto-send:    %v\n", p.AutoSendEnabled)
		for _, r := range p.ResourceLibrary {
			fmt.Printf("  resource[%s]: %s (%s)\n", r.Category, r.Label, r.Link)
		}
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
