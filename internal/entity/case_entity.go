package entity

import (
	"time"

	"github.com/google/uuid"
)

// CaseStatus is the lifecycle state of a support case.
type CaseStatus string

const (
	CaseStatusOpen       CaseStatus = "open"
	CaseStatusInProgress CaseStatus = "in_progress"
	CaseStatusResolved   CaseStatus = "resolved"
	CaseStatusRefunded   CaseStatus = "refunded"
	CaseStatusClosed     CaseStatus = "closed"
)

// caseTransitions is the enforced transition table:
// open -> in_progress -> {resolved, refunded}, and any non-closed state -> closed.
var caseTransitions = map[CaseStatus][]CaseStatus{
	CaseStatusOpen:       {CaseStatusInProgress, CaseStatusClosed},
	CaseStatusInProgress: {CaseStatusResolved, CaseStatusRefunded, CaseStatusClosed},
	CaseStatusResolved:   {CaseStatusClosed},
	CaseStatusRefunded:   {CaseStatusClosed},
	CaseStatusClosed:     {},
}

// CanTransition reports whether a status write from -> to is legal.
func CanTransition(from, to CaseStatus) bool {
	for _, next := range caseTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidCaseStatus(s CaseStatus) bool {
	_, ok := caseTransitions[s]
	return ok
}

// Case is a support ticket a buyer raises about a purchase.
type Case struct {
	Id          uuid.UUID
	CaseNumber  string
	Title       string
	Description string
	Status      CaseStatus
	UserId      uuid.UUID
	TicketId    uuid.UUID
	PurchaseId  uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Purchase *Purchase
	Ticket   *Ticket
	Creator  *User
	Replies  []*CaseReply
}

// CaseReply is an append-only message on a case, ordered by created_at ascending.
type CaseReply struct {
	Id        uuid.UUID
	CaseId    uuid.UUID
	UserId    uuid.UUID
	Content   string
	CreatedAt time.Time

	Author *User
}
