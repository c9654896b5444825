package permission

import (
	"fmt"

	"github.com/synerjet/bendesk/internal/shared/authorization"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

// PolicySync reconciles the stored casbin policies with the in-code grant
// table: missing grants are added and grants no longer in the table are
// removed.
type PolicySync struct {
	enforcer *Enforcer
	logger   logger.Interface
}

func NewPolicySync(enforcer *Enforcer, logger logger.Interface) *PolicySync {
	return &PolicySync{enforcer: enforcer, logger: logger}
}

// SyncResult counts the grants touched by one Sync run.
type SyncResult struct {
	Added   int
	Removed int
}

func (s *PolicySync) Sync() (*SyncResult, error) {
	stored, err := s.enforcer.StoredGrants()
	if err != nil {
		return nil, err
	}

	want := authorization.Grants()
	wanted := make(map[authorization.Grant]bool, len(want))
	for _, g := range want {
		wanted[g] = true
	}
	have := make(map[authorization.Grant]bool, len(stored))
	for _, g := range stored {
		have[g] = true
	}

	result := &SyncResult{}
	for _, g := range stored {
		if wanted[g] {
			continue
		}
		if err := s.enforcer.RemoveGrant(g); err != nil {
			return nil, fmt.Errorf("failed to sync policies: %w", err)
		}
		result.Removed++
	}
	for _, g := range want {
		if have[g] {
			continue
		}
		if err := s.enforcer.AddGrant(g); err != nil {
			return nil, fmt.Errorf("failed to sync policies: %w", err)
		}
		result.Added++
	}

	if result.Added > 0 || result.Removed > 0 {
		s.logger.Infow("permission policies synced", "added", result.Added, "removed", result.Removed)
	}
	return result, nil
}
