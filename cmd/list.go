package cmd

import (
	"context"
	"fmt"
	"os"
	"sync"
	"text/tabwriter"

	"aa-greeting/core/config"
	"aa-greeting/core/logger"
	"aa-greeting/core/selector"
	"aa-greeting/core/webex"

	"github.com/spf13/cobra"
)

var listToken string

// listCmd resolves selectors and prints the matched auto-attendants with
// their current greeting configuration, without changing anything.
var listCmd = &cobra.Command{
	Use:   "list <selector>...",
	Short: "List matching auto-attendants and their greeting modes",
	Long: `List every auto-attendant matched by the selectors together with the
current greeting mode of both menus.

Examples:
  # All auto-attendants of one location
  aa-greeting list "Berlin:.*"

  # Everything, org wide
  aa-greeting list ".*"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listToken, "token", "", "Access token; overrides the WEBEX_TOKEN environment variable")

	RootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if listToken != "" {
		cfg.Webex.Token = listToken
	}
	if cfg.Webex.Token == "" {
		return fmt.Errorf("an access token is required: pass --token or set WEBEX_TOKEN")
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := webex.NewClient(cfg.Webex)
	if err != nil {
		return err
	}

	org, err := orgID(ctx, client)
	if err != nil {
		return err
	}

	resolver := selector.NewResolver(client, l)
	aas, err := resolver.ResolveAll(ctx, args)
	if err != nil {
		return err
	}
	if len(aas) == 0 {
		return fmt.Errorf("no auto attendants matched")
	}

	// Fetch details concurrently; a failed fetch shows up as an error cell
	// instead of aborting the listing.
	details := make([]*webex.AutoAttendantDetails, len(aas))
	errs := make([]error, len(aas))
	var wg sync.WaitGroup
	for i, aa := range aas {
		wg.Add(1)
		go func(i int, aa webex.AutoAttendant) {
			defer wg.Done()
			details[i], errs[i] = client.GetAutoAttendant(ctx, aa.LocationID, aa.ID, org)
		}(i, aa)
	}
	wg.Wait()

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "LOCATION\tNAME\tBUSINESS\tAFTER HOURS")
	for i, aa := range aas {
		if errs[i] != nil {
			fmt.Fprintf(w, "%s\t%s\terror: %v\t\n", aa.LocationName, aa.Name, errs[i])
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			aa.LocationName, aa.Name,
			describeMenu(details[i].BusinessHoursMenu),
			describeMenu(details[i].AfterHoursMenu),
		)
	}
	return w.Flush()
}

// describeMenu renders a menu's greeting mode, including the asset name for
// custom greetings.
func describeMenu(menu *webex.Menu) string {
	if menu == nil {
		return "-"
	}
	if menu.Greeting == webex.GreetingCustom && menu.AudioFile != nil {
		return fmt.Sprintf("custom (%s)", menu.AudioFile.Name)
	}
	if menu.Greeting == webex.GreetingCustom {
		return "custom"
	}
	return "default"
}
