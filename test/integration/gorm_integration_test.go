package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/entity"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/specification"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/repository/unitofwork"
	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.TicketRepository())
	assert.NotNil(t, uow.PurchaseRepository())
	assert.NotNil(t, uow.CaseRepository())
	assert.NotNil(t, uow.WalletRepository())
}

func TestTransactionRollback(t *testing.T) {
	_ = godotenv.Load("../../.env")

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	ctx := context.Background()
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(ctx)

	require.NoError(t, uow.Begin(ctx))

	email := "rollback-" + uuid.NewString() + "@example.com"
	user := &entity.User{
		Id:        uuid.New(),
		Email:     email,
		FullName:  "Rollback Probe",
		Role:      entity.UserRoleBuyer,
		Approved:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	require.NoError(t, uow.Rollback())

	// The row must not survive the rollback
	check := uowFactory.NewUnitOfWork(ctx)
	found, err := check.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	require.NoError(t, err)
	assert.Nil(t, found)
}
