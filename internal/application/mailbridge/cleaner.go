package mailbridge

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/synerjet/bendesk/internal/shared/constants"
)

var (
	ticketRefPattern = regexp.MustCompile(`\[#(\d+)\]`)

	signatureTails = []*regexp.Regexp{
		regexp.MustCompile(`(?is)Atenciosamente.*`),
		regexp.MustCompile(`(?is)Enviado do meu.*`),
		regexp.MustCompile(`(?s)--\s*$`),
	}
)

// TicketRef extracts the ticket number of a "[#123]" subject token. found
// reports whether a token is present at all; id is 0 when the token cannot
// name a ticket ("[#0]" or a number out of range).
func TicketRef(subject string) (id uint, found bool) {
	m := ticketRefPattern.FindStringSubmatch(subject)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseUint(m[1], 10, strconv.IntSize)
	if err != nil {
		return 0, true
	}
	return uint(n), true
}

// CleanReply keeps the text written above the reply marker and drops
// common signature tails.
func CleanReply(body string) string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	if i := strings.Index(body, constants.ReplyMarker); i >= 0 {
		body = body[:i]
	}
	for _, re := range signatureTails {
		body = re.ReplaceAllString(body, "")
	}
	return strings.TrimSpace(body)
}
