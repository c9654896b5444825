package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/synerjet/bendesk/internal/domain/ticket/valueobjects"
)

var baseTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func persistedTicket(t *testing.T, status vo.TicketStatus, priority vo.Priority, assignee string) *Ticket {
	t.Helper()
	tk, err := ReconstructTicket(
		42,
		"Impressora sem toner", "A impressora do 2o andar parou",
		status, priority,
		"Ana Souza", "ana@example.com",
		assignee,
		baseTime, baseTime,
	)
	require.NoError(t, err)
	return tk
}

func TestNewTicket(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		tk, err := NewTicket("  VPN caiu ", "Sem acesso remoto", "", "Bruno", "bruno@example.com", baseTime)
		require.NoError(t, err)

		assert.Equal(t, "VPN caiu", tk.Title())
		assert.Equal(t, vo.StatusOpen, tk.Status())
		assert.Equal(t, vo.PriorityMedium, tk.Priority())
		assert.Equal(t, baseTime, tk.CreatedAt())
		assert.Equal(t, tk.CreatedAt(), tk.UpdatedAt())
		assert.Empty(t, tk.AssignedTo())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := NewTicket("", "desc", vo.PriorityHigh, "", "", baseTime)
		assert.Error(t, err)

		_, err = NewTicket("title", "   ", vo.PriorityHigh, "", "", baseTime)
		assert.Error(t, err)

		_, err = NewTicket("title", "desc", vo.Priority("Urgente"), "", "", baseTime)
		assert.Error(t, err)
	})
}

func TestRequesterDisplayName(t *testing.T) {
	tk, err := NewTicket("t", "d", "", "", "solo@example.com", baseTime)
	require.NoError(t, err)
	assert.Equal(t, "solo@example.com", tk.RequesterDisplayName())

	tk, err = NewTicket("t", "d", "", "Carla", "carla@example.com", baseTime)
	require.NoError(t, err)
	assert.Equal(t, "Carla", tk.RequesterDisplayName())
}

func TestApplyUpdate(t *testing.T) {
	later := baseTime.Add(2 * time.Hour)

	tests := []struct {
		name       string
		fields     UpdateFields
		wantLines  []string
		wantUpdate time.Time
	}{
		{
			name:       "identical values change nothing",
			fields:     UpdateFields{Status: vo.StatusOpen, Priority: vo.PriorityMedium, AssignedTo: ""},
			wantLines:  []string{},
			wantUpdate: baseTime,
		},
		{
			name:       "status only",
			fields:     UpdateFields{Status: vo.StatusInProgress, Priority: vo.PriorityMedium},
			wantLines:  []string{"Status: 'Aberto' ➔ 'Em Andamento'"},
			wantUpdate: later,
		},
		{
			name:   "all three in fixed order",
			fields: UpdateFields{Status: vo.StatusClosed, Priority: vo.PriorityHigh, AssignedTo: "joao"},
			wantLines: []string{
				"Status: 'Aberto' ➔ 'Encerrado'",
				"Prioridade: 'Média' ➔ 'Alta'",
				"Responsável: 'Não atribuído' ➔ 'joao'",
			},
			wantUpdate: later,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := persistedTicket(t, vo.StatusOpen, vo.PriorityMedium, "")

			changes, err := tk.ApplyUpdate(tt.fields, later)
			require.NoError(t, err)

			assert.Equal(t, tt.wantLines, changes.Lines())
			assert.Equal(t, tt.wantUpdate, tk.UpdatedAt())
			assert.Equal(t, tt.fields.Status, tk.Status())
			assert.Equal(t, tt.fields.Priority, tk.Priority())
		})
	}
}

func TestApplyUpdate_UnassignRendersSentinel(t *testing.T) {
	tk := persistedTicket(t, vo.StatusInProgress, vo.PriorityLow, "maria")

	changes, err := tk.ApplyUpdate(UpdateFields{Status: vo.StatusInProgress, Priority: vo.PriorityLow, AssignedTo: "  "}, baseTime)
	require.NoError(t, err)

	assert.Equal(t, "Responsável: 'maria' ➔ 'Não atribuído'", changes.Description())
	assert.Empty(t, tk.AssignedTo())
}

func TestApplyUpdate_JoinsWithSemicolon(t *testing.T) {
	tk := persistedTicket(t, vo.StatusOpen, vo.PriorityMedium, "")

	changes, err := tk.ApplyUpdate(UpdateFields{Status: vo.StatusInProgress, Priority: vo.PriorityLow}, baseTime)
	require.NoError(t, err)

	assert.Equal(t, "Status: 'Aberto' ➔ 'Em Andamento'; Prioridade: 'Média' ➔ 'Baixa'", changes.Description())
}

func TestApplyUpdate_RejectsUnknownValues(t *testing.T) {
	tk := persistedTicket(t, vo.StatusOpen, vo.PriorityMedium, "")

	_, err := tk.ApplyUpdate(UpdateFields{Status: "Pendente", Priority: vo.PriorityMedium}, baseTime)
	assert.Error(t, err)
	_, err = tk.ApplyUpdate(UpdateFields{Status: vo.StatusOpen, Priority: "Urgente"}, baseTime)
	assert.Error(t, err)
	assert.Equal(t, vo.StatusOpen, tk.Status())
}

func TestTouch_NeverBeforeCreation(t *testing.T) {
	tk := persistedTicket(t, vo.StatusOpen, vo.PriorityMedium, "")

	tk.Touch(baseTime.Add(-time.Hour))
	assert.Equal(t, baseTime, tk.UpdatedAt())

	tk.Touch(baseTime.Add(time.Hour))
	assert.Equal(t, baseTime.Add(time.Hour), tk.UpdatedAt())
}

func TestNewComment(t *testing.T) {
	c, err := NewComment(1, "ana", "  reiniciado  ", baseTime)
	require.NoError(t, err)
	assert.Equal(t, "reiniciado", c.Text())

	_, err = NewComment(1, "ana", "   ", baseTime)
	assert.Error(t, err)
}

func TestNewHistory_RequiresChanges(t *testing.T) {
	_, err := NewHistory(1, "ana", nil, baseTime)
	assert.Error(t, err)

	h, err := NewHistory(1, "ana", ChangeSet{{Field: FieldStatus, Old: "Aberto", New: "Encerrado"}}, baseTime)
	require.NoError(t, err)
	assert.Equal(t, "Status: 'Aberto' ➔ 'Encerrado'", h.Description())
}
