package database

import "strings"

// NormalizeDSN rewrites the legacy "postgres://" scheme, still handed out
// by some hosting providers, to "postgresql://" before connecting.
func NormalizeDSN(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(dsn, "postgres://")
	}
	return dsn
}
