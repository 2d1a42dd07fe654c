package service

import (
	"errors"

	"intelliject-be/pkg/database"
)

// Outcome tags why a result looks the way it does, so callers can tell
// "empty because no data" from "empty because the backend is down"
// without reading logs.
type Outcome string

const (
	OutcomeOK                Outcome = "ok"
	OutcomeConnectivityError Outcome = "connectivityError"
	OutcomeDataError         Outcome = "dataError"
)

func classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	if errors.Is(err, database.ErrBackendUnavailable) {
		return OutcomeConnectivityError
	}
	// Anything the driver raised is treated as a connectivity-class
	// fault; data faults are detected before the driver sees them.
	return OutcomeConnectivityError
}
