package ticket

import (
	"fmt"
	"time"

	vo "github.com/synerjet/bendesk/internal/domain/ticket/valueobjects"
)

// SLATier classifies elapsed time against the thresholds.
type SLATier string

const (
	TierOnTarget SLATier = "on_target"
	TierAtRisk   SLATier = "at_risk"
	TierBreached SLATier = "breached"
	TierUnknown  SLATier = "unknown"
)

// Color is the display color of the tier.
func (t SLATier) Color() string {
	switch t {
	case TierOnTarget:
		return "green"
	case TierAtRisk:
		return "yellow"
	case TierBreached:
		return "red"
	default:
		return "gray"
	}
}

// ElapsedPlaceholder is shown when a ticket has no creation time.
const ElapsedPlaceholder = "—"

// NoResolutionData is shown when no ticket has been closed yet.
const NoResolutionData = "N/A"

// Thresholds are the upper bounds, in hours, of the first two tiers.
type Thresholds struct {
	OnTargetHours float64
	AtRiskHours   float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{OnTargetHours: 4, AtRiskHours: 8}
}

// SLAView is the derived elapsed-time display of a ticket.
type SLAView struct {
	Elapsed time.Duration
	Label   string
	Tier    SLATier
}

// ComputeSLA measures from createdAt to updatedAt for terminal statuses and
// to now otherwise. It has no side effects.
func ComputeSLA(createdAt, updatedAt time.Time, status vo.TicketStatus, now time.Time, th Thresholds) SLAView {
	if createdAt.IsZero() {
		return SLAView{Label: ElapsedPlaceholder, Tier: TierUnknown}
	}

	end := now
	if status.IsTerminal() {
		end = updatedAt
	}
	elapsed := end.Sub(createdAt)
	if elapsed < 0 {
		elapsed = 0
	}

	return SLAView{
		Elapsed: elapsed,
		Label:   FormatElapsed(elapsed),
		Tier:    classify(elapsed, th),
	}
}

func classify(elapsed time.Duration, th Thresholds) SLATier {
	hours := elapsed.Hours()
	switch {
	case hours <= th.OnTargetHours:
		return TierOnTarget
	case hours <= th.AtRiskHours:
		return TierAtRisk
	default:
		return TierBreached
	}
}

// FormatElapsed renders "{d}d {h}h {m}m", dropping days when zero and
// hours when both are zero.
func FormatElapsed(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	days := secs / 86400
	hours := (secs % 86400) / 3600
	minutes := (secs % 3600) / 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// AverageResolution averages updated_at - created_at over the closed
// tickets of the list and renders "{d}d {h}h", or NoResolutionData when
// none is closed.
func AverageResolution(tickets []*Ticket) string {
	var (
		total time.Duration
		n     int64
	)
	for _, t := range tickets {
		if t.status != vo.StatusClosed || t.createdAt.IsZero() {
			continue
		}
		total += t.updatedAt.Sub(t.createdAt)
		n++
	}
	if n == 0 {
		return NoResolutionData
	}

	secs := int64(total/time.Second) / n
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%dd %dh", secs/86400, (secs%86400)/3600)
}
