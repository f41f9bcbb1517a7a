package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/s4cindia/ninja-cli/pkg/cli"
	"github.com/s4cindia/ninja-cli/pkg/history"
	"github.com/s4cindia/ninja-cli/pkg/interfaces"
	"github.com/s4cindia/ninja-cli/pkg/platform"
	"github.com/s4cindia/ninja-cli/pkg/report"
	"github.com/spf13/cobra"
)

var (
	auditStandard string
	auditNoWait   bool
)

var auditCmd = &cobra.Command{
	Use:   "audit <file-or-document-id>",
	Short: "Run an accessibility audit and report the compliance score",
	Long: `Audit uploads a document (or reuses an already uploaded one by id),
starts an accessibility audit on the platform, waits for it to finish,
and renders the compliance score report.

Audit a local file:
  ninja audit ./manuscripts/novel.epub

Audit an uploaded document against a specific standard:
  ninja audit 7c9e6679-7425-40de-944b-e07fc1f90ae7 --standard epub-a11y

Exit code is 1 when the document is rated NON_CONFORMANT.`,
	Args: cobra.ExactArgs(1),
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVar(&auditStandard, "standard", "", "audit standard (default from config)")
	auditCmd.Flags().BoolVar(&auditNoWait, "no-wait", false, "start the audit and print the job id without waiting")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	standard := auditStandard
	if standard == "" {
		standard = cfg.Audit.Standard
	}

	client, err := newPlatformClient(cfg)
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	// 1. Resolve the target: a local file is uploaded first, an id is reused.
	var doc *interfaces.Document
	target := args[0]
	if isLocalFile(target) {
		doc, err = uploadDocument(cmd, cfg, target)
		if err != nil {
			return fmt.Errorf("audit: %w", err)
		}
		slog.Info("document uploaded", "document_id", doc.ID)
	} else {
		if err := platform.ValidateDocumentID(target); err != nil {
			return fmt.Errorf("audit: %s is neither a local file nor a document id: %w", target, err)
		}
		doc = &interfaces.Document{ID: target}
	}

	// 2. Start the audit job.
	job, err := client.StartAudit(ctx, doc.ID, standard)
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}
	slog.Info("audit started", "job_id", job.JobID, "standard", standard)

	if auditNoWait {
		fmt.Fprintf(cmd.OutOrStdout(), "audit job started\njob id: %s\n", job.JobID)
		return nil
	}

	// 3. Wait for the job to finish.
	watcher := platform.NewWatcher(client,
		platform.WithWatchDeadline(time.Duration(cfg.Audit.TimeoutMinutes)*time.Minute),
	)
	if _, err := watcher.Wait(ctx, job.JobID); err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	// 4. Fetch the result and compute the compliance score locally.
	result, err := client.GetAuditResult(ctx, job.JobID)
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	calc := newCalculator(cfg)
	breakdown, err := calc.Breakdown(result.Counts)
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}
	rating := calc.Rate(breakdown.FinalScore)

	// 5. Render the report.
	rpt := report.NewGenerator().Generate(doc, result, breakdown, rating)

	w, closeOutput, err := outputWriter()
	if err != nil {
		return fmt.Errorf("audit: %w", err)
	}
	defer closeOutput()

	if err := selectFormatter(format, cfg).Format(w, rpt); err != nil {
		return fmt.Errorf("audit: writing report: %w", err)
	}

	// 6. Record the run locally.
	saveHistory(ctx, cfg, doc, result, breakdown, rating)

	// 7. Exit with code 1 for a non-conformant document.
	if rating == interfaces.RatingNonConformant {
		os.Exit(1)
	}

	return nil
}

// isLocalFile reports whether the audit target names an existing file.
func isLocalFile(target string) bool {
	info, err := os.Stat(target)
	return err == nil && !info.IsDir()
}

// saveHistory records a completed audit in the local cache, best-effort.
func saveHistory(ctx context.Context, cfg *cli.Config, doc *interfaces.Document, result *interfaces.AuditResult, breakdown *interfaces.ScoreBreakdown, rating interfaces.Rating) {
	store := openHistory(cfg)
	if store == nil {
		return
	}
	defer func() { _ = store.Close() }()

	entry := &history.Entry{
		JobID:      result.JobID,
		DocumentID: doc.ID,
		Filename:   doc.Filename,
		Format:     doc.Format,
		Standard:   result.Standard,
		Score:      breakdown.FinalScore,
		Rating:     rating,
		Counts:     result.Counts,
	}
	if err := store.Save(ctx, entry); err != nil {
		slog.Warn("could not record audit in history", "error", err)
	}
}
