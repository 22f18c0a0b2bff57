package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"aa-greeting/core/config"
	"aa-greeting/core/logger"
	"aa-greeting/core/reconcile"
	"aa-greeting/core/selector"
	"aa-greeting/core/webex"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the set command
	setToken    string
	setDryRun   bool
	setReupload bool
	setConfirm  bool
)

// setCmd updates the greeting of every auto-attendant matched by the
// selectors.
var setCmd = &cobra.Command{
	Use:   "set <business|after_hours> <greeting> <selector>...",
	Short: "Set the greeting for matching auto-attendants",
	Long: `Set the business hours or after hours greeting of every auto-attendant
matched by the selectors.

The greeting is either the literal "default" or a path to a WAV file. A
selector is a name pattern, optionally scoped to a location with
"location:pattern"; the pattern is a regular expression matched against the
full auto-attendant name.

Examples:
  # Reset the after hours greeting of one auto-attendant
  aa-greeting set after_hours default Reception

  # Upload a custom business greeting to every AA of one location
  aa-greeting set business holiday.wav "Berlin:.*"

  # Several selectors; overlaps are updated once
  aa-greeting set business holiday.wav "Berlin:.*" "Munich:Front.*" Lobby

  # Plan only, without applying changes
  aa-greeting set business holiday.wav Lobby --dry-run`,
	Args: cobra.MinimumNArgs(3),
	RunE: runSet,
}

func init() {
	setCmd.Flags().StringVar(&setToken, "token", "", "Access token; overrides the WEBEX_TOKEN environment variable")
	setCmd.Flags().BoolVar(&setDryRun, "dry-run", false, "Plan and report without applying changes")
	setCmd.Flags().BoolVar(&setReupload, "reupload", false, "Re-upload the greeting even if one with the same name already exists")
	setCmd.Flags().BoolVar(&setConfirm, "yes", false, "Auto-confirm the bulk update (non-interactive)")

	RootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if setToken != "" {
		cfg.Webex.Token = setToken
	}
	if cfg.Webex.Token == "" {
		return fmt.Errorf("an access token is required: pass --token or set WEBEX_TOKEN")
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	menu, err := reconcile.ParseMenuKind(strings.ToLower(args[0]))
	if err != nil {
		return err
	}

	desired, err := parseGreeting(args[1])
	if err != nil {
		return err
	}

	client, err := webex.NewClient(cfg.Webex)
	if err != nil {
		return err
	}

	org, err := orgID(ctx, client)
	if err != nil {
		return err
	}

	// Resolve selectors to the target batch
	resolver := selector.NewResolver(client, l)
	aas, err := resolver.ResolveAll(ctx, args[2:])
	if err != nil {
		return err
	}
	if len(aas) == 0 {
		return fmt.Errorf("no auto attendants matched")
	}

	l.Info("updating", zap.Int("count", len(aas)))
	for _, aa := range aas {
		l.Info("target", zap.String("auto_attendant", aa.String()))
	}

	if !setDryRun && !confirmBulkUpdate(len(aas)) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	engine := reconcile.NewEngine(client, l, org, reconcile.Options{
		DryRun:   setDryRun,
		Reupload: setReupload,
	})
	outcomes := engine.ReconcileAll(ctx, aas, menu, desired)

	// Final report: one line per auto-attendant. Per-entity failures are
	// visible here but do not flip the exit code.
	failed := 0
	for _, outcome := range outcomes {
		if outcome.OK() {
			l.Info("result",
				zap.String("auto_attendant", outcome.AutoAttendant.String()),
				zap.String("status", "ok"),
			)
			continue
		}
		failed++
		l.Warn("result",
			zap.String("auto_attendant", outcome.AutoAttendant.String()),
			zap.String("status", outcome.Err.Error()),
		)
	}
	if failed > 0 {
		l.Warn("some auto attendants failed",
			zap.Int("failed", failed),
			zap.Int("total", len(outcomes)),
		)
	}
	return nil
}

// parseGreeting validates the greeting argument: the literal "default" or a
// path to an existing WAV file.
func parseGreeting(arg string) (reconcile.Desired, error) {
	if strings.EqualFold(arg, "default") {
		return reconcile.DesiredDefault(), nil
	}
	info, err := os.Stat(arg)
	if err != nil || info.IsDir() {
		return reconcile.Desired{}, fmt.Errorf("greeting file not found: %s", arg)
	}
	return reconcile.DesiredCustom(arg), nil
}

// orgID resolves the org of the authenticated user, translating a 401 into
// a friendly token error.
func orgID(ctx context.Context, client webex.Client) (string, error) {
	me, err := client.Me(ctx)
	if err != nil {
		if webex.IsUnauthorized(err) {
			return "", fmt.Errorf(`invalid token: got "Unauthorized" when trying to determine the org`)
		}
		return "", err
	}
	return me.OrgID, nil
}

// confirmBulkUpdate prompts the user for confirmation or uses --yes flag.
func confirmBulkUpdate(count int) bool {
	if setConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  Type 'yes' to update %d auto attendant(s): ", count)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
