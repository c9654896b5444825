package permission

import (
	"fmt"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/synerjet/bendesk/internal/shared/authorization"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

// rbacModel grants a (role, resource, action) policy to every subject that
// matches the role exactly.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

var _ authorization.Checker = (*Enforcer)(nil)

// Enforcer answers permission checks from casbin policies.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer stores policies in the casbin_rule table through gorm.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{enforcer: enforcer, logger: log}, nil
}

// NewMemoryEnforcer keeps policies in memory only.
func NewMemoryEnforcer(log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}
	return &Enforcer{enforcer: enforcer, logger: log}, nil
}

// Allowed splits perm "resource:action" and asks casbin. Errors deny.
func (e *Enforcer) Allowed(role authorization.UserRole, perm authorization.Permission) bool {
	resource, action := splitPermission(perm)

	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(string(role), resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "permission", perm)
		return false
	}
	return allowed
}

func (e *Enforcer) AddGrant(g authorization.Grant) error {
	resource, action := splitPermission(g.Permission)

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(string(g.Role), resource, action); err != nil {
		e.logger.Errorw("failed to add policy", "error", err, "role", g.Role, "permission", g.Permission)
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return nil
}

func (e *Enforcer) RemoveGrant(g authorization.Grant) error {
	resource, action := splitPermission(g.Permission)

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.RemovePolicy(string(g.Role), resource, action); err != nil {
		e.logger.Errorw("failed to remove policy", "error", err, "role", g.Role, "permission", g.Permission)
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return nil
}

// StoredGrants lists the policies casbin currently holds.
func (e *Enforcer) StoredGrants() ([]authorization.Grant, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	rules, err := e.enforcer.GetPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to read policies: %w", err)
	}
	out := make([]authorization.Grant, 0, len(rules))
	for _, rule := range rules {
		if len(rule) < 3 {
			continue
		}
		out = append(out, authorization.Grant{
			Role:       authorization.UserRole(rule[0]),
			Permission: authorization.Permission(rule[1] + ":" + rule[2]),
		})
	}
	return out, nil
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}
	e.logger.Infow("policy reloaded successfully")
	return nil
}

func splitPermission(perm authorization.Permission) (string, string) {
	resource, action, found := strings.Cut(string(perm), ":")
	if !found {
		return resource, "*"
	}
	return resource, action
}
