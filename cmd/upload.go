package cmd

import (
	"fmt"
	"log/slog"

	"github.com/s4cindia/ninja-cli/pkg/cli"
	"github.com/s4cindia/ninja-cli/pkg/interfaces"
	"github.com/s4cindia/ninja-cli/pkg/preflight"
	"github.com/spf13/cobra"
)

var skipPreflight bool

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a document to the platform",
	Long: `Upload stages a local EPUB, PDF, or DOCX file, runs preflight checks
(format sniffing, size limits), and uploads it to platform storage.

The printed document id can be passed to "ninja audit" and "ninja citations".`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().BoolVar(&skipPreflight, "skip-preflight", false, "upload without local preflight checks")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	cfg, err := cli.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	doc, err := uploadDocument(cmd, cfg, args[0])
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s (%s, %d bytes)\ndocument id: %s\n",
		doc.Filename, doc.Format, doc.Size, doc.ID)
	return nil
}

// uploadDocument runs preflight checks and uploads a local file.
// Shared by the upload and audit commands.
func uploadDocument(cmd *cobra.Command, cfg *cli.Config, path string) (*interfaces.Document, error) {
	ctx := cmd.Context()

	if !skipPreflight {
		file, err := preflight.Open(path)
		if err != nil {
			return nil, err
		}

		engine := preflight.NewEngine(preflight.DefaultRegistry())
		results, err := engine.Run(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("running preflight checks: %w", err)
		}

		if blockers := preflight.Blockers(results); len(blockers) > 0 {
			for _, b := range blockers {
				fmt.Fprintf(cmd.ErrOrStderr(), "preflight [%s]: %s\n", b.Check, b.Message)
			}
			return nil, fmt.Errorf("%d preflight check(s) failed for %s", len(blockers), path)
		}
		slog.Debug("preflight passed", "file", path, "checks", len(results))
	}

	client, err := newPlatformClient(cfg)
	if err != nil {
		return nil, err
	}

	slog.Info("uploading document", "path", path)
	return client.UploadDocument(ctx, path)
}
