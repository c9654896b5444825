package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/synerjet/bendesk/internal/domain/ticket"
	"github.com/synerjet/bendesk/internal/shared/constants"
	"github.com/synerjet/bendesk/internal/shared/logger"
)

const signature = "Atenciosamente,\nEquipe de TI - Synerjet"

// TicketNotifier writes the requester mails of the ticket lifecycle.
type TicketNotifier struct {
	sender Sender
	logger logger.Interface
}

func NewTicketNotifier(sender Sender, log logger.Interface) *TicketNotifier {
	return &TicketNotifier{sender: sender, logger: log.With("component", "email.notifier")}
}

// TicketReceived confirms a new ticket.
func (n *TicketNotifier) TicketReceived(ctx context.Context, t *ticket.Ticket) error {
	if t.RequesterEmail() == "" {
		n.logger.Debugw("ticket has no requester email, confirmation skipped", "ticket_id", t.ID())
		return nil
	}
	return n.sender.Send(ctx, t.RequesterEmail(), ReceivedSubject(t.ID()), ReceivedBody(t))
}

// TicketUpdated reports field changes and a staff comment.
func (n *TicketNotifier) TicketUpdated(ctx context.Context, t *ticket.Ticket, changes ticket.ChangeSet, comment string) error {
	if t.RequesterEmail() == "" {
		n.logger.Debugw("ticket has no requester email, update mail skipped", "ticket_id", t.ID())
		return nil
	}
	return n.sender.Send(ctx, t.RequesterEmail(), UpdatedSubject(t), UpdatedBody(t, changes, comment))
}

func ticketRef(id uint) string {
	return fmt.Sprintf("[#%d]", id)
}

func ReceivedSubject(id uint) string {
	return "Chamado Recebido - Ticket " + ticketRef(id)
}

func ReceivedBody(t *ticket.Ticket) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Olá %s,\n\n", t.RequesterDisplayName())
	b.WriteString("**E-mail automático, por favor NÃO responder**\n\n")
	b.WriteString("Recebemos sua solicitação com sucesso.\n\n")
	fmt.Fprintf(&b, "✅ Número do ticket: %s\n", ticketRef(t.ID()))
	fmt.Fprintf(&b, "📝 Título: %s\n\n", t.Title())
	b.WriteString("Em breve, nossa equipe entrará em contato.\n\n")
	b.WriteString(constants.ReplyMarker + "\n\n")
	b.WriteString(signature)
	return b.String()
}

func UpdatedSubject(t *ticket.Ticket) string {
	return fmt.Sprintf("[Atualização Ticket %s] %s - Ticket Atualizado", ticketRef(t.ID()), t.Title())
}

func UpdatedBody(t *ticket.Ticket, changes ticket.ChangeSet, comment string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Olá %s,\n\n", t.RequesterDisplayName())
	b.WriteString("Seu ticket foi atualizado.\n\n")
	fmt.Fprintf(&b, "✅ Número do ticket: %s\n", ticketRef(t.ID()))
	fmt.Fprintf(&b, "📝 Título: %s\n\n", t.Title())
	b.WriteString(updateSummary(changes, comment))
	b.WriteString("\n\n" + constants.ReplyMarker + "\n\n")
	b.WriteString("Para mais detalhes, entre em contato conosco.\n\n")
	b.WriteString(signature)
	return b.String()
}

func updateSummary(changes ticket.ChangeSet, comment string) string {
	var parts []string
	if !changes.IsEmpty() {
		parts = append(parts, "🔄 Alterações:\n"+strings.Join(changes.Lines(), "\n"))
	}
	if comment = strings.TrimSpace(comment); comment != "" {
		parts = append(parts, "💬 Comentário:\n\""+comment+"\"")
	}
	return strings.Join(parts, "\n\n")
}
