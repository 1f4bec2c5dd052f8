package ats

// Manifest keys recognized by the evaluator. Exact strings, used as
// dictionary keys inside Info.plist.
const (
	// KeyAppTransportSecurity is the top-level section holding all ATS
	// declarations.
	KeyAppTransportSecurity = "NSAppTransportSecurity"
	// KeyExceptionDomains maps domain names to per-domain exception dicts.
	KeyExceptionDomains = "NSExceptionDomains"
)

// Bundle-wide arbitrary-loads flags.
const (
	KeyAllowsArbitraryLoads             = "NSAllowsArbitraryLoads"
	KeyAllowsArbitraryLoadsInWebContent = "NSAllowsArbitraryLoadsInWebContent"
	KeyAllowsArbitraryLoadsForMedia     = "NSAllowsArbitraryLoadsForMedia"
)

// Per-domain exception flags. The NSTemporary* names are the legacy aliases
// the platform kept for backward compatibility; both spellings are equally
// authoritative.
const (
	KeyExceptionAllowsInsecureHTTPLoads          = "NSExceptionAllowsInsecureHTTPLoads"
	KeyTemporaryExceptionAllowsInsecureHTTPLoads = "NSTemporaryExceptionAllowsInsecureHTTPLoads"
	KeyIncludesSubdomains                        = "NSIncludesSubdomains"
	KeyRequiresCertificateTransparency           = "NSRequiresCertificateTransparency"
	KeyExceptionMinimumTLSVersion                = "NSExceptionMinimumTLSVersion"
	KeyTemporaryExceptionMinimumTLSVersion       = "NSTemporaryExceptionMinimumTLSVersion"
	KeyExceptionRequiresForwardSecrecy           = "NSExceptionRequiresForwardSecrecy"
	KeyTemporaryExceptionRequiresForwardSecrecy  = "NSTemporaryExceptionRequiresForwardSecrecy"
)
