// Package governance classifies the lifecycle of pending change requests on
// the multisig that owns deployed module instances. The reconciliation
// engine itself never submits anything; the status deriver exists for the
// collaborators that queue mutation plans through a governance multisig and
// need to understand where a change request stands from raw vote tallies.
package governance

import (
	"strings"
)

// Status is the derived lifecycle state of a change request.
type Status int

const (
	StatusUnknown Status = iota
	StatusDraft
	StatusActive
	StatusApproved
	StatusRejected
	StatusCancelled
	StatusExecuting
	StatusExecuted
	StatusStale
)

func (s Status) String() string {
	switch s {
	case StatusDraft:
		return "draft"
	case StatusActive:
		return "active"
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	case StatusCancelled:
		return "cancelled"
	case StatusExecuting:
		return "executing"
	case StatusExecuted:
		return "executed"
	case StatusStale:
		return "stale"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status can never change again. Terminal
// change requests are never reclassified as stale.
func (s Status) Terminal() bool {
	switch s {
	case StatusExecuted, StatusRejected, StatusCancelled:
		return true
	default:
		return false
	}
}

// ParseStatus maps a raw upstream status string to a Status. Unrecognized
// input maps to StatusUnknown rather than failing: new upstream statuses
// must not break existing callers.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "draft":
		return StatusDraft
	case "active":
		return StatusActive
	case "approved":
		return StatusApproved
	case "rejected":
		return StatusRejected
	case "cancelled", "canceled":
		return StatusCancelled
	case "executing":
		return StatusExecuting
	case "executed":
		return StatusExecuted
	case "stale":
		return StatusStale
	default:
		return StatusUnknown
	}
}

// Tally is the raw vote count of a change request.
type Tally struct {
	Approvals  uint64
	Rejections uint64
}

// OneAway reports whether a single further approval would meet the
// threshold.
func (t Tally) OneAway(threshold uint64) bool {
	return threshold > 0 && t.Approvals == threshold-1
}

// DeriveStatus classifies a change request from its raw upstream status,
// vote tally and index position:
//   - any non-terminal request whose index predates the multisig's stale
//     index is Stale, regardless of votes
//   - an Active request becomes Approved once approvals meet the threshold
//   - terminal statuses pass through unchanged
//   - unknown raw statuses stay Unknown
func DeriveStatus(raw string, tally Tally, threshold uint64, currentIndex uint64, staleIndex uint64) Status {
	status := ParseStatus(raw)
	if status == StatusUnknown {
		return StatusUnknown
	}
	if !status.Terminal() && status != StatusStale && currentIndex < staleIndex {
		return StatusStale
	}
	if status == StatusActive && tally.Approvals >= threshold {
		return StatusApproved
	}
	return status
}
