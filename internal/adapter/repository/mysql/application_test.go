package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "github.com/andyizyfleyr/banque-web-app-sub000/internal/domain/application"
	"github.com/andyizyfleyr/banque-web-app-sub000/pkg/id"
)

// --- SQLite-friendly schema only for tests (no DECIMAL/CHAR types) ---

type applicationSQLite struct {
	ID            uint64 `gorm:"primaryKey;column:id"`
	ApplicationID string `gorm:"size:32;column:application_id;uniqueIndex"`
	UserID        string `gorm:"size:32;column:user_id"`
	RequestID     string `gorm:"size:36;column:request_id;uniqueIndex"`

	Amount                    float64 `gorm:"column:amount"`
	Currency                  string  `gorm:"size:3;column:currency"`
	DurationMonths            int     `gorm:"column:duration_months"`
	Category                  string  `gorm:"size:16;column:category"`
	InterestRateAnnualPercent float64 `gorm:"column:interest_rate_annual_percent"`

	MonthlyPayment float64 `gorm:"column:monthly_payment"`
	TotalRepayment float64 `gorm:"column:total_repayment"`
	TotalCost      float64 `gorm:"column:total_cost"`

	MonthlyIncome    float64 `gorm:"column:monthly_income"`
	EmploymentStatus string  `gorm:"size:32;column:employment_status"`
	HousingStatus    string  `gorm:"size:32;column:housing_status"`

	Purpose       string `gorm:"size:64;column:purpose"`
	PurposeDetail string `gorm:"type:text;column:purpose_detail"`

	IdentityDocumentRef string `gorm:"type:text;column:identity_document_ref"`
	AddressDocumentRef  string `gorm:"type:text;column:address_document_ref"`

	Status          string         `gorm:"type:text;column:status"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (applicationSQLite) TableName() string { return "loan_applications" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&applicationSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeApplication(userID string) *domain.LoanApplication {
	return &domain.LoanApplication{
		ApplicationID:             id.NewID32(),
		UserID:                    userID,
		RequestID:                 id.NewID32() + "-rq",
		Amount:                    25_000.00,
		Currency:                  "EUR",
		DurationMonths:            24,
		Category:                  domain.CategoryPersonal,
		InterestRateAnnualPercent: 2.0,
		MonthlyPayment:            1063.506584,
		TotalRepayment:            25524.158021,
		TotalCost:                 524.158021,
		MonthlyIncome:             3600,
		EmploymentStatus:          "employed",
		HousingStatus:             "tenant",
		Purpose:                   "travaux",
		Status:                    domain.StatusPendingApproval,
		StatusUpdatedAt:           time.Now().UTC(),
	}
}

func TestCreateAndGetByApplicationID(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	a := makeApplication("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByApplicationID(ctx, a.ApplicationID)
	if err != nil {
		t.Fatalf("GetByApplicationID: %v", err)
	}
	if got.UserID != a.UserID || got.Category != domain.CategoryPersonal {
		t.Errorf("unexpected application: %+v", got)
	}
	if got.InterestRateAnnualPercent != 2.0 {
		t.Errorf("denormalized rate lost, got=%v", got.InterestRateAnnualPercent)
	}
}

func TestSaveUpdatesStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	a := makeApplication("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	a.Status = domain.StatusActive
	a.StatusUpdatedAt = time.Now().UTC()
	if err := repo.Save(ctx, a); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByApplicationID(ctx, a.ApplicationID)
	if err != nil {
		t.Fatalf("GetByApplicationID: %v", err)
	}
	if got.Status != domain.StatusActive {
		t.Errorf("status not updated, got=%s", got.Status)
	}
}

func TestGetByApplicationID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)

	_, err := repo.GetByApplicationID(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestListByUserID_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	u1 := "11111111111111111111111111111111"
	now := time.Now().UTC()

	seed := func(appID string, age time.Duration, user string) {
		if err := db.Create(&applicationSQLite{
			ApplicationID: appID,
			UserID:        user,
			RequestID:     appID + "-rq",
			Amount:        10_000, Currency: "EUR", DurationMonths: 12,
			Category: "personal", InterestRateAnnualPercent: 2.0,
			Status:    "pending_approval",
			CreatedAt: now.Add(-age),
		}).Error; err != nil {
			t.Fatal(err)
		}
	}
	seed("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 3*time.Hour, u1)
	seed("cccccccccccccccccccccccccccccccc", 1*time.Hour, u1)
	seed("dddddddddddddddddddddddddddddddd", 2*time.Hour, "22222222222222222222222222222222")

	got, err := repo.ListByUserID(ctx, u1)
	if err != nil {
		t.Fatalf("ListByUserID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ApplicationID != "cccccccccccccccccccccccccccccccc" {
		t.Errorf("not newest first: %+v", got)
	}

	n, err := repo.CountByUserID(ctx, u1)
	if err != nil || n != 2 {
		t.Fatalf("CountByUserID = %d, %v; want 2", n, err)
	}
	n, err = repo.CountByUserID(ctx, "33333333333333333333333333333333")
	if err != nil || n != 0 {
		t.Fatalf("CountByUserID for unknown user = %d, %v; want 0", n, err)
	}
}

func TestCreate_DuplicateRequestIDRejected(t *testing.T) {
	db := openTestDB(t)
	repo := NewApplicationRepository(db)
	ctx := context.Background()

	a := makeApplication("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Retry after an ambiguous failure carries the same request id; the
	// unique index must refuse a second row.
	dup := makeApplication(a.UserID)
	dup.RequestID = a.RequestID
	if err := repo.Create(ctx, dup); err == nil {
		t.Fatalf("expected unique violation for duplicate request id")
	}
}
