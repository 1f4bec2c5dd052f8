// Package ats evaluates the App Transport Security posture declared by one
// decoded manifest and resolves the effective plaintext-HTTP verdict per
// exception domain.
package ats

import (
	"sort"

	"github.com/khanhnv2901/ats-cli/internal/manifest"
)

// TopLevel holds the three bundle-wide arbitrary-loads flags. A nil field
// means the flag was not declared, which is distinct from an explicit false.
type TopLevel struct {
	AllowsArbitraryLoads             *bool `json:"NSAllowsArbitraryLoads"`
	AllowsArbitraryLoadsInWebContent *bool `json:"NSAllowsArbitraryLoadsInWebContent"`
	AllowsArbitraryLoadsForMedia     *bool `json:"NSAllowsArbitraryLoadsForMedia"`
}

// DomainException is one exception-domain record: the eight raw flags copied
// verbatim from the manifest plus the two derived fields. A record's presence
// never implies HTTP is permitted; only EffectiveHTTPPermitted does.
type DomainException struct {
	Domain string `json:"domain"`

	AllowsInsecureHTTPLoads         *bool   `json:"NSExceptionAllowsInsecureHTTPLoads"`
	LegacyAllowsInsecureHTTPLoads   *bool   `json:"NSTemporaryExceptionAllowsInsecureHTTPLoads"`
	IncludesSubdomains              *bool   `json:"NSIncludesSubdomains"`
	RequiresCertificateTransparency *bool   `json:"NSRequiresCertificateTransparency"`
	MinimumTLSVersion               *string `json:"NSExceptionMinimumTLSVersion"`
	LegacyMinimumTLSVersion         *string `json:"NSTemporaryExceptionMinimumTLSVersion"`
	RequiresForwardSecrecy          *bool   `json:"NSExceptionRequiresForwardSecrecy"`
	LegacyRequiresForwardSecrecy    *bool   `json:"NSTemporaryExceptionRequiresForwardSecrecy"`

	// EffectiveHTTPPermitted is true when either insecure-HTTP flag is an
	// explicit true, or the bundle-wide arbitrary-loads override is active.
	EffectiveHTTPPermitted bool `json:"effective_http_permitted"`
	// MinimumTLSEffective is the canonical minimum-TLS value when declared,
	// otherwise the legacy one, otherwise nil.
	MinimumTLSEffective *string `json:"MinimumTLSVersionEffective"`
}

// Summary is the evaluated posture of one manifest. Domains are sorted by
// name so output is deterministic.
type Summary struct {
	TopLevel TopLevel          `json:"top_level"`
	Domains  []DomainException `json:"domains"`
}

// Evaluate derives the Summary for one decoded manifest. It is a pure
// transformation: the same tree always yields the same summary, and absent
// flags stay absent in the output.
func Evaluate(tree manifest.Tree) Summary {
	// A manifest without the ATS section declares no overrides; that is not
	// an error, it is simply an empty section.
	section, _ := tree.Dict(KeyAppTransportSecurity)

	top := TopLevel{
		AllowsArbitraryLoads:             section.Bool(KeyAllowsArbitraryLoads),
		AllowsArbitraryLoadsInWebContent: section.Bool(KeyAllowsArbitraryLoadsInWebContent),
		AllowsArbitraryLoadsForMedia:     section.Bool(KeyAllowsArbitraryLoadsForMedia),
	}

	// Only an explicit true activates the global override; undeclared and
	// explicit false behave identically here, and only here.
	globalPermitted := isTrue(top.AllowsArbitraryLoads)

	exceptions, _ := section.Dict(KeyExceptionDomains)
	names := make([]string, 0, len(exceptions))
	for name := range exceptions {
		names = append(names, name)
	}
	sort.Strings(names)

	domains := make([]DomainException, 0, len(names))
	for _, name := range names {
		// A malformed (non-dictionary) domain entry is treated as declaring
		// nothing; the nil Tree makes every accessor report absent.
		cfg, _ := exceptions.Dict(name)

		rec := DomainException{
			Domain:                          name,
			AllowsInsecureHTTPLoads:         cfg.Bool(KeyExceptionAllowsInsecureHTTPLoads),
			LegacyAllowsInsecureHTTPLoads:   cfg.Bool(KeyTemporaryExceptionAllowsInsecureHTTPLoads),
			IncludesSubdomains:              cfg.Bool(KeyIncludesSubdomains),
			RequiresCertificateTransparency: cfg.Bool(KeyRequiresCertificateTransparency),
			MinimumTLSVersion:               cfg.String(KeyExceptionMinimumTLSVersion),
			LegacyMinimumTLSVersion:         cfg.String(KeyTemporaryExceptionMinimumTLSVersion),
			RequiresForwardSecrecy:          cfg.Bool(KeyExceptionRequiresForwardSecrecy),
			LegacyRequiresForwardSecrecy:    cfg.Bool(KeyTemporaryExceptionRequiresForwardSecrecy),
		}

		domainPermitted := isTrue(rec.AllowsInsecureHTTPLoads) || isTrue(rec.LegacyAllowsInsecureHTTPLoads)
		rec.EffectiveHTTPPermitted = domainPermitted || globalPermitted

		// Canonical key wins when both spellings are declared.
		if rec.MinimumTLSVersion != nil {
			rec.MinimumTLSEffective = rec.MinimumTLSVersion
		} else {
			rec.MinimumTLSEffective = rec.LegacyMinimumTLSVersion
		}

		domains = append(domains, rec)
	}

	return Summary{TopLevel: top, Domains: domains}
}

// FilterDomain returns a copy of s retaining only the record whose name
// equals domain exactly (case-sensitive). No match yields an empty list,
// not an error. An empty domain leaves s unchanged.
func FilterDomain(s Summary, domain string) Summary {
	if domain == "" {
		return s
	}
	kept := make([]DomainException, 0, 1)
	for _, rec := range s.Domains {
		if rec.Domain == domain {
			kept = append(kept, rec)
		}
	}
	s.Domains = kept
	return s
}

// AnyInsecure reports whether any domain record across all summaries
// effectively permits plaintext HTTP. Every manifest weighs equally; an
// insecure extension is as much a shipping risk as an insecure main bundle.
func AnyInsecure(summaries []Summary) bool {
	for _, s := range summaries {
		for _, rec := range s.Domains {
			if rec.EffectiveHTTPPermitted {
				return true
			}
		}
	}
	return false
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
