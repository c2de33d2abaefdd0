package monitor

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ResolveEnvironment returns explicit when set. Otherwise it inspects the
// version part of release ("name@1.2.3" or "1.2.3"): a plain release version
// is production, anything else (prerelease, unparsable, empty) is development.
func ResolveEnvironment(explicit, release string) string {
	if explicit != "" {
		return explicit
	}
	if i := strings.LastIndex(release, "@"); i >= 0 {
		release = release[i+1:]
	}
	if release == "" {
		return EnvDevelopment
	}
	version, err := semver.NewVersion(release)
	if err != nil || version.Prerelease() != "" {
		return EnvDevelopment
	}
	return EnvProduction
}

// DefaultTracesSampleRate is the transaction sample rate used when none is
// configured.
func DefaultTracesSampleRate(environment string) float64 {
	switch environment {
	case EnvDevelopment:
		return 1.0
	case EnvStaging:
		return 0.1
	default:
		return 0.2
	}
}
