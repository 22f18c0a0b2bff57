package reconcile

import (
	"context"
	"fmt"

	"aa-greeting/core/logger"
	"aa-greeting/core/webex"

	"go.uber.org/zap"
)

// Options controls engine behavior.
type Options struct {
	// DryRun plans and logs but skips the upload and update calls.
	DryRun bool
	// Reupload uploads the greeting even if an asset with the same name
	// already exists.
	Reupload bool
}

// Engine brings auto-attendant menus to a desired greeting state with
// minimal remote calls.
type Engine struct {
	client   webex.Client
	logger   *zap.Logger
	orgID    string
	dryRun   bool
	reupload bool
}

// NewEngine creates a reconciliation engine scoped to one org.
func NewEngine(client webex.Client, logger *zap.Logger, orgID string, opts Options) *Engine {
	return &Engine{
		client:   client,
		logger:   logger,
		orgID:    orgID,
		dryRun:   opts.DryRun,
		reupload: opts.Reupload,
	}
}

// Reconcile brings one auto-attendant's menu to the desired greeting state.
// The fetched snapshot is never mutated; the update call submits a modified
// deep copy. When the menu already matches the desired state no mutating
// call is issued at all.
func (e *Engine) Reconcile(ctx context.Context, aa webex.AutoAttendant, menu MenuKind, desired Desired) error {
	l := logger.WithAutoAttendant(e.logger, aa)

	details, err := e.client.GetAutoAttendant(ctx, aa.LocationID, aa.ID, e.orgID)
	if err != nil {
		return fmt.Errorf("fetch details: %w", err)
	}
	l.Info("got details")

	update := details.Clone()
	target := update.AfterHoursMenu
	if menu == MenuBusiness {
		target = update.BusinessHoursMenu
	}
	if target == nil {
		return fmt.Errorf("details carry no %s menu", menu)
	}

	plan := BuildPlan(target, desired, e.reupload)
	if plan.NoOp() {
		l.Info("nothing to do")
		return nil
	}

	switch plan.Action {
	case ActionSetDefault:
		target.Greeting = webex.GreetingDefault

	case ActionSetCustom:
		if !plan.Upload {
			l.Info("greeting already uploaded", zap.String("file", plan.Basename))
		} else if e.dryRun {
			l.Info("skipped: upload greeting", zap.String("file", plan.Basename))
		} else {
			// Upload before mutating local state so the menu is never
			// marked custom over a never-uploaded file.
			err := e.client.UploadGreeting(ctx, webex.UploadRequest{
				OrgID:           e.orgID,
				LocationID:      aa.LocationID,
				AutoAttendantID: aa.ID,
				Business:        menu == MenuBusiness,
				Path:            desired.Path,
			})
			if err != nil {
				return fmt.Errorf("upload greeting: %w", err)
			}
			l.Info("uploaded new greeting", zap.String("file", plan.Basename))
		}
		target.Greeting = webex.GreetingCustom
		target.AudioFile = &webex.AudioFile{
			Name:      plan.Basename,
			MediaType: webex.MediaTypeWAV,
		}
	}

	if e.dryRun {
		l.Info("skipped: update")
		return nil
	}
	if err := e.client.UpdateAutoAttendant(ctx, aa.LocationID, aa.ID, e.orgID, update); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	l.Info("updated settings")
	return nil
}
