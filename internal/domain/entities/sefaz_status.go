package entities

// SefazStatus is the cStat code returned by the fiscal backend after a SEFAZ round trip.
//
// Only SefazStatusAuthorized means "authorized use". Batch-received and in-processing
// codes are provisional; every other code is a rejection or denial.
type SefazStatus string

const (
	SefazStatusAuthorized       SefazStatus = "100"
	SefazStatusBatchReceived    SefazStatus = "103"
	SefazStatusBatchProcessing  SefazStatus = "105"
	SefazStatusServiceRunning   SefazStatus = "107"
	SefazStatusEventRegistered  SefazStatus = "135"
	SefazStatusRangeInvalidated SefazStatus = "102"
)

func (s SefazStatus) IsAuthorized() bool {
	return s == SefazStatusAuthorized
}

// IsProcessing covers 103/105. They do not halt emission: the document is kept
// as pendente and its final status is reconciled later.
func (s SefazStatus) IsProcessing() bool {
	return s == SefazStatusBatchReceived || s == SefazStatusBatchProcessing
}

// DocumentStatus maps an emission return code to the local lifecycle status.
func (s SefazStatus) DocumentStatus() DocumentStatus {
	switch {
	case s.IsAuthorized():
		return DocumentStatusAutorizada
	case s.IsProcessing():
		return DocumentStatusPendente
	default:
		return DocumentStatusRejeitada
	}
}

// EventAccepted reports whether a cancellation/CCe/invalidation event was registered.
func (s SefazStatus) EventAccepted() bool {
	switch s {
	case SefazStatusEventRegistered, SefazStatusRangeInvalidated, "128", "155":
		return true
	default:
		return false
	}
}
