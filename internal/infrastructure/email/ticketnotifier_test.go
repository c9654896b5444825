package email

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synerjet/bendesk/internal/domain/ticket"
	vo "github.com/synerjet/bendesk/internal/domain/ticket/valueobjects"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

type sentMail struct {
	to, subject, body string
}

type recordingSender struct {
	sent []sentMail
}

func (r *recordingSender) Send(_ context.Context, to, subject, body string) error {
	r.sent = append(r.sent, sentMail{to, subject, body})
	return nil
}

func sampleTicket(t *testing.T, name, email string) *ticket.Ticket {
	t.Helper()
	at := time.Date(2024, 5, 2, 14, 0, 0, 0, time.UTC)
	tk, err := ticket.ReconstructTicket(12, "Notebook lento", "Demora para ligar", vo.StatusOpen, vo.PriorityMedium, name, email, "", at, at)
	require.NoError(t, err)
	return tk
}

func TestReceivedMail(t *testing.T) {
	tk := sampleTicket(t, "Ana", "ana@example.com")

	assert.Equal(t, "Chamado Recebido - Ticket [#12]", ReceivedSubject(tk.ID()))
	assert.Equal(t,
		"Olá Ana,\n\n"+
			"**E-mail automático, por favor NÃO responder**\n\n"+
			"Recebemos sua solicitação com sucesso.\n\n"+
			"✅ Número do ticket: [#12]\n"+
			"📝 Título: Notebook lento\n\n"+
			"Em breve, nossa equipe entrará em contato.\n\n"+
			"--- Responda acima desta linha ---\n\n"+
			"Atenciosamente,\nEquipe de TI - Synerjet",
		ReceivedBody(tk),
	)
}

func TestUpdatedMail(t *testing.T) {
	tk := sampleTicket(t, "", "ana@example.com")
	changes := ticket.ChangeSet{
		{Field: ticket.FieldStatus, Old: "Aberto", New: "Em Andamento"},
		{Field: ticket.FieldAssignee, Old: ticket.Unassigned, New: "joao"},
	}

	assert.Equal(t, "[Atualização Ticket [#12]] Notebook lento - Ticket Atualizado", UpdatedSubject(tk))

	tests := []struct {
		name    string
		changes ticket.ChangeSet
		comment string
		summary string
	}{
		{
			name:    "changes only",
			changes: changes,
			summary: "🔄 Alterações:\nStatus: 'Aberto' ➔ 'Em Andamento'\nResponsável: 'Não atribuído' ➔ 'joao'",
		},
		{
			name:    "comment only",
			comment: "Trocamos o SSD",
			summary: "💬 Comentário:\n\"Trocamos o SSD\"",
		},
		{
			name:    "both",
			changes: changes[:1],
			comment: "Em análise",
			summary: "🔄 Alterações:\nStatus: 'Aberto' ➔ 'Em Andamento'\n\n💬 Comentário:\n\"Em análise\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := "Olá ana@example.com,\n\n" +
				"Seu ticket foi atualizado.\n\n" +
				"✅ Número do ticket: [#12]\n" +
				"📝 Título: Notebook lento\n\n" +
				tt.summary + "\n\n" +
				"--- Responda acima desta linha ---\n\n" +
				"Para mais detalhes, entre em contato conosco.\n\n" +
				"Atenciosamente,\nEquipe de TI - Synerjet"
			assert.Equal(t, want, UpdatedBody(tk, tt.changes, tt.comment))
		})
	}
}

func TestTicketNotifier(t *testing.T) {
	rec := &recordingSender{}
	n := NewTicketNotifier(rec, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, n.TicketReceived(ctx, sampleTicket(t, "Ana", "ana@example.com")))
	require.NoError(t, n.TicketUpdated(ctx, sampleTicket(t, "Ana", "ana@example.com"), nil, "ok"))
	require.Len(t, rec.sent, 2)
	assert.Equal(t, "ana@example.com", rec.sent[0].to)
	assert.Contains(t, rec.sent[1].subject, "Ticket Atualizado")

	require.NoError(t, n.TicketReceived(ctx, sampleTicket(t, "Ana", "")))
	assert.Len(t, rec.sent, 2, "tickets without requester email are not mailed")
}
