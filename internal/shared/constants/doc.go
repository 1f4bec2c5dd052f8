// Package constants centralizes exit codes and serialization defaults shared
// across the CLI.
//
// The exit codes mirror the contract consumed by CI pipelines (0 = secure,
// 2 = effective HTTP permitted, 3 = usage/archive error) and are referenced
// from both cmd/ and tests, so they live here rather than in cmd/ to avoid
// import cycles.
package constants
