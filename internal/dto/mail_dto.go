package dto

// Mail message kinds dispatched over the in-process queue.
const (
	MailKindRefundProcessed = "refund_processed"
	MailKindCaseReply       = "case_reply"
)

// SendEmailMessage is the payload handed to the mail dispatch worker.
// Email sending is decoupled from the request path so a slow SMTP server
// never blocks a refund or a reply.
type SendEmailMessage struct {
	Kind       string  `json:"kind"`
	ToEmail    string  `json:"to_email"`
	CaseNumber string  `json:"case_number"`
	AuthorName string  `json:"author_name,omitempty"`
	Preview    string  `json:"preview,omitempty"`
	Amount     float64 `json:"amount,omitempty"`
}
