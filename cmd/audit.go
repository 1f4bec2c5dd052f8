package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/khanhnv2901/ats-cli/internal/ats"
	"github.com/khanhnv2901/ats-cli/internal/ipa"
	"github.com/khanhnv2901/ats-cli/internal/manifest"
	sharederrors "github.com/khanhnv2901/ats-cli/internal/shared/errors"
)

var auditCmd = &cobra.Command{
	Use:   "audit <path/to/app.ipa>",
	Short: "Audit the ATS exceptions declared by every bundle inside an .ipa",
	Long: `Audit App Transport Security declarations inside an .ipa package.

This command will:
- Locate every Info.plist under Payload/, including nested .appex extensions
- Decode each manifest and extract its NSAppTransportSecurity section
- Resolve, per exception domain, whether plaintext HTTP is effectively
  permitted once the bundle-wide arbitrary-loads override is applied

The archive is opened read-only; no network activity is performed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAudit(cmd, args[0])
	},
}

func runAudit(cmd *cobra.Command, ipaPath string) error {
	cfg := cliConfig.Audit

	if err := applyColorMode(cfg.ColorMode); err != nil {
		return err
	}

	results, err := collectReports(ipaPath, cfg.Domain)
	if err != nil {
		return err
	}

	report := RunReport{
		IPA:      filepath.Base(ipaPath),
		Insecure: anyReportInsecure(results),
		Results:  results,
	}

	if cfg.OutputFile != "" {
		if err := writeReportFile(cfg.OutputFile, report); err != nil {
			return err
		}
	}

	if cfg.JSONOutput {
		if err := writeJSONReport(cmd.OutOrStdout(), report); err != nil {
			return err
		}
	} else {
		renderConsole(cmd.OutOrStdout(), ipaPath, results)
	}

	if report.Insecure {
		return errInsecureFound
	}
	return nil
}

// collectReports opens the package, locates every manifest member, and
// evaluates each one. A member that fails to decode is logged and skipped so
// one corrupt extension manifest cannot block auditing the main bundle.
func collectReports(ipaPath, domainFilter string) ([]ManifestReport, error) {
	archive, err := ipa.Open(ipaPath)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	members := archive.Manifests()
	if len(members) == 0 {
		return nil, sharederrors.ErrNoManifests
	}

	reports := make([]ManifestReport, 0, len(members))
	for _, member := range members {
		data, err := archive.ReadMember(member)
		if err != nil {
			logger.Warnf("%v", &manifest.DecodeError{Path: member, Err: err})
			continue
		}
		tree, err := manifest.Decode(member, data)
		if err != nil {
			logger.Warnf("%v", err)
			continue
		}
		summary := ats.FilterDomain(ats.Evaluate(tree), domainFilter)
		reports = append(reports, ManifestReport{Path: member, Summary: summary})
	}
	return reports, nil
}

func anyReportInsecure(reports []ManifestReport) bool {
	summaries := make([]ats.Summary, 0, len(reports))
	for _, r := range reports {
		summaries = append(summaries, r.Summary)
	}
	return ats.AnyInsecure(summaries)
}

func init() {
	auditCmd.Flags().BoolVar(&cliConfig.Audit.JSONOutput, "json", cliConfig.Audit.JSONOutput, "Print the JSON report on stdout instead of the console view")
	auditCmd.Flags().StringVar(&cliConfig.Audit.Domain, "domain", cliConfig.Audit.Domain, "Only report the exactly-matching exception domain (e.g. api.example.com)")
	auditCmd.Flags().StringVar(&cliConfig.Audit.ColorMode, "color", cliConfig.Audit.ColorMode, "Color mode (always|auto|never)")
	auditCmd.Flags().StringVarP(&cliConfig.Audit.OutputFile, "output", "o", cliConfig.Audit.OutputFile, "Also write the JSON report to a file")
}
