package unitofwork

import (
	"context"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	TicketRepository() contract.TicketRepository
	PurchaseRepository() contract.PurchaseRepository
	CaseRepository() contract.CaseRepository
	WalletRepository() contract.WalletRepository
}
