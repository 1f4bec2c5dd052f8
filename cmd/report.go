package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/khanhnv2901/ats-cli/internal/ats"
	consts "github.com/khanhnv2901/ats-cli/internal/shared/constants"
)

// ManifestReport pairs one manifest's archive path with its evaluated summary.
type ManifestReport struct {
	Path string `json:"info_plist"`
	ats.Summary
}

// RunReport is the full result of one audit run.
type RunReport struct {
	IPA      string           `json:"ipa"`
	Insecure bool             `json:"insecure"`
	Results  []ManifestReport `json:"results"`
}

func writeJSONReport(w io.Writer, report RunReport) error {
	b, err := json.MarshalIndent(report, consts.JSONPrefix, consts.JSONIndent)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func writeReportFile(path string, report RunReport) error {
	b, err := json.MarshalIndent(report, consts.JSONPrefix, consts.JSONIndent)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, b, consts.DefaultFilePerm); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// renderConsole prints the human-readable view: per manifest the three
// top-level flags, then each domain record with its raw flags and derived
// verdict. Bundles appear in the archive's natural member order.
func renderConsole(w io.Writer, ipaPath string, reports []ManifestReport) {
	fmt.Fprintln(w, colorHeader("IPA: "+ipaPath))
	for _, r := range reports {
		fmt.Fprintln(w, colorHeader("Info.plist: "+r.Path))
		fmt.Fprintln(w, colorHeader("=== Top-level ATS ==="))
		fmt.Fprintf(w, "  - %s: %s\n", colorKey(ats.KeyAllowsArbitraryLoads), formatOptionalBool(r.TopLevel.AllowsArbitraryLoads))
		fmt.Fprintf(w, "  - %s: %s\n", colorKey(ats.KeyAllowsArbitraryLoadsInWebContent), formatOptionalBool(r.TopLevel.AllowsArbitraryLoadsInWebContent))
		fmt.Fprintf(w, "  - %s: %s\n", colorKey(ats.KeyAllowsArbitraryLoadsForMedia), formatOptionalBool(r.TopLevel.AllowsArbitraryLoadsForMedia))
		fmt.Fprintln(w)

		if len(r.Domains) == 0 {
			fmt.Fprintln(w, "  (No NSExceptionDomains or filtered by --domain)")
			fmt.Fprintln(w)
			continue
		}

		fmt.Fprintln(w, colorHeader("=== Domain exceptions ==="))
		for _, d := range r.Domains {
			fmt.Fprintf(w, "[%s]\n", colorDomain(d.Domain))
			fmt.Fprintf(w, "  - %s: %s\n", colorKey(ats.KeyExceptionAllowsInsecureHTTPLoads), formatOptionalBool(d.AllowsInsecureHTTPLoads))
			fmt.Fprintf(w, "  - %s: %s\n", colorKey(ats.KeyTemporaryExceptionAllowsInsecureHTTPLoads), formatOptionalBool(d.LegacyAllowsInsecureHTTPLoads))
			fmt.Fprintf(w, "  - %s: %s\n", colorKey(ats.KeyIncludesSubdomains), formatOptionalBool(d.IncludesSubdomains))
			fmt.Fprintf(w, "  - %s: %s\n", colorKey(ats.KeyRequiresCertificateTransparency), formatOptionalBool(d.RequiresCertificateTransparency))
			fmt.Fprintf(w, "  - %s: %s\n", colorKey("MinimumTLSVersion (Exception/Temporary)"), formatEffectiveTLS(d.MinimumTLSEffective))
			fmt.Fprintf(w, "  - %s: %s\n", colorKey("Effective HTTP permitted"), formatVerdict(d.EffectiveHTTPPermitted))
			fmt.Fprintln(w)
		}
	}
}

func formatEffectiveTLS(v *string) string {
	if v == nil {
		return colorDim("None")
	}
	return colorGood(*v)
}

func formatVerdict(permitted bool) string {
	if permitted {
		return colorGood("True")
	}
	return colorBad("False")
}
