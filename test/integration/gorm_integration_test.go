package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"tenderdesk-be/internal/entity"
	"tenderdesk-be/internal/repository/unitofwork"
	"tenderdesk-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
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

	assert.NotNil(t, uow.TenderRepository())
	assert.NotNil(t, uow.TrackingEntryRepository())
	assert.NotNil(t, uow.SnapshotRepository())
	assert.NotNil(t, uow.EmployeeRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check Tender Repository", func(t *testing.T) {
		count, err := uow.TenderRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Tender count: %d", count)
	})

	t.Run("Check Company Repositories", func(t *testing.T) {
		count, err := uow.CompanyRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Company count: %d", count)

		count, err = uow.CustomerRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Customer count: %d", count)
	})

	t.Run("Check Snapshot Repository", func(t *testing.T) {
		count, err := uow.SnapshotRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Snapshot count: %d", count)
	})

	t.Run("Check Transactional Tender Tracking", func(t *testing.T) {
		// TrackingEntry carries a FK to tenders, so the tender and its
		// board entry must land together or not at all.
		ctx := context.Background()
		err := uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		tenderId := uuid.New()
		tender := &entity.Tender{
			Id:              tenderId,
			Title:           "Integration Test Tender " + uuid.New().String(),
			Entity:          "Test Authority",
			ReferenceNumber: "IT-" + uuid.New().String(),
			EstimatedValue:  250000,
		}
		err = uow.TenderRepository().Create(ctx, tender)
		assert.NoError(t, err)

		entry := &entity.TrackingEntry{
			Id:       uuid.New(),
			TenderId: tenderId,
			Stage:    entity.StagePending,
		}
		err = uow.TrackingEntryRepository().Create(ctx, entry)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully created Tender with TrackingEntry in Transaction")

		// Leave the database as we found it.
		assert.NoError(t, uow.TrackingEntryRepository().Delete(context.Background(), entry.Id))
		assert.NoError(t, uow.TenderRepository().Delete(context.Background(), tenderId))
	})
}
