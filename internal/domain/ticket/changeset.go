package ticket

import (
	"fmt"
	"strings"
)

// Field labels used in history descriptions and notification mails.
const (
	FieldStatus   = "Status"
	FieldPriority = "Prioridade"
	FieldAssignee = "Responsável"
)

// Unassigned renders an empty assignee.
const Unassigned = "Não atribuído"

func assigneeLabel(username string) string {
	if username == "" {
		return Unassigned
	}
	return username
}

// Change is one field transition.
type Change struct {
	Field string
	Old   string
	New   string
}

func (c Change) String() string {
	return fmt.Sprintf("%s: '%s' ➔ '%s'", c.Field, c.Old, c.New)
}

// ChangeSet is the ordered list of transitions applied by one update.
type ChangeSet []Change

func (cs ChangeSet) IsEmpty() bool {
	return len(cs) == 0
}

// Lines renders one clause per change.
func (cs ChangeSet) Lines() []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

// Description joins the clauses into the single history text.
func (cs ChangeSet) Description() string {
	return strings.Join(cs.Lines(), "; ")
}
