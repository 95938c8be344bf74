// internal/services/purchase_service_test.go
package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/codetrade/backend/internal/config"
)

type fakeGateway struct {
	created   *Intent
	retrieved *Intent
	err       error
}

func (f *fakeGateway) CreateIntent(amountMinorUnits int64, currency string, metadata map[string]string) (*Intent, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = &Intent{
		ID:           "pi_test_1",
		ClientSecret: "pi_test_1_secret",
		Status:       "requires_payment_method",
		Amount:       amountMinorUnits,
		Currency:     currency,
	}
	return f.created, nil
}

func (f *fakeGateway) Retrieve(id string) (*Intent, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.retrieved, nil
}

func testPaymentConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Payment.Currency = "usd"
	return cfg
}

func TestCreatePaymentIntentChargesMinorUnits(t *testing.T) {
	db, mock := newMockDB(t)
	gateway := &fakeGateway{}
	service := NewPurchaseService(db, testPaymentConfig(), gateway, nil)

	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE "projects"."id" = \$1`).
		WithArgs(11, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "price", "seller_id"}).
			AddRow(11, "Inventory API", 49.99, 3))
	mock.ExpectQuery(`SELECT (.+) FROM "purchases" WHERE buyer_id = \$1 AND project_id = \$2`).
		WithArgs(4, 11, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	response, err := service.CreatePaymentIntent(4, &CreatePaymentIntentRequest{ProjectID: 11})
	require.NoError(t, err)

	assert.Equal(t, "pi_test_1_secret", response.ClientSecret)
	require.NotNil(t, gateway.created)
	assert.Equal(t, int64(4999), gateway.created.Amount)
	assert.Equal(t, "usd", gateway.created.Currency)
}

func TestCreatePaymentIntentRejectsRepeatPurchase(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewPurchaseService(db, testPaymentConfig(), &fakeGateway{}, nil)

	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE "projects"."id" = \$1`).
		WithArgs(11, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "price"}).AddRow(11, 49.99))
	mock.ExpectQuery(`SELECT (.+) FROM "purchases" WHERE buyer_id = \$1 AND project_id = \$2`).
		WithArgs(4, 11, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "buyer_id", "project_id"}).AddRow(1, 4, 11))

	_, err := service.CreatePaymentIntent(4, &CreatePaymentIntentRequest{ProjectID: 11})
	assert.EqualError(t, err, "project already purchased")
}

func TestCreatePaymentIntentUnknownProject(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewPurchaseService(db, testPaymentConfig(), &fakeGateway{}, nil)

	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE "projects"."id" = \$1`).
		WithArgs(404, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := service.CreatePaymentIntent(4, &CreatePaymentIntentRequest{ProjectID: 404})
	assert.EqualError(t, err, "project not found")
}

func TestConfirmPurchaseRecordsRowAndIncrementsDownloads(t *testing.T) {
	db, mock := newMockDB(t)
	gateway := &fakeGateway{retrieved: &Intent{ID: "pi_test_1", Status: IntentStatusSucceeded}}
	service := NewPurchaseService(db, testPaymentConfig(), gateway, nil)

	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE "projects"."id" = \$1`).
		WithArgs(11, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "price", "code_file_url"}).
			AddRow(11, "Inventory API", 49.99, "/uploads/code/inventory.zip"))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "purchases"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(`UPDATE "projects" SET "downloads"=downloads \+ \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	response, err := service.ConfirmPurchase(4, &ConfirmPurchaseRequest{
		PaymentIntentID: "pi_test_1",
		ProjectID:       11,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(7), response.Purchase.ID)
	assert.Equal(t, 49.99, response.Purchase.Amount)
	assert.Equal(t, "/uploads/code/inventory.zip", response.DownloadURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmPurchaseRejectsIncompletePayment(t *testing.T) {
	db, _ := newMockDB(t)
	gateway := &fakeGateway{retrieved: &Intent{ID: "pi_test_1", Status: "requires_payment_method"}}
	service := NewPurchaseService(db, testPaymentConfig(), gateway, nil)

	_, err := service.ConfirmPurchase(4, &ConfirmPurchaseRequest{
		PaymentIntentID: "pi_test_1",
		ProjectID:       11,
	})
	assert.EqualError(t, err, "payment not completed")
}

func TestConfirmPurchaseDuplicateRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	gateway := &fakeGateway{retrieved: &Intent{ID: "pi_test_1", Status: IntentStatusSucceeded}}
	service := NewPurchaseService(db, testPaymentConfig(), gateway, nil)

	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE "projects"."id" = \$1`).
		WithArgs(11, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "price"}).AddRow(11, 49.99))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "purchases"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	_, err := service.ConfirmPurchase(4, &ConfirmPurchaseRequest{
		PaymentIntentID: "pi_test_1",
		ProjectID:       11,
	})
	assert.EqualError(t, err, "project already purchased")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPurchaseReturnsNilWhenAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewPurchaseService(db, testPaymentConfig(), &fakeGateway{}, nil)

	mock.ExpectQuery(`SELECT (.+) FROM "purchases" WHERE buyer_id = \$1 AND project_id = \$2`).
		WithArgs(4, 11, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	purchase, err := service.GetPurchase(4, 11)
	require.NoError(t, err)
	assert.Nil(t, purchase)
}

func TestGetUserPurchasesWithProjectProjection(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewPurchaseService(db, testPaymentConfig(), &fakeGateway{}, nil)

	mock.ExpectQuery(`SELECT (.+) FROM "purchases" WHERE buyer_id = \$1 ORDER BY created_at DESC`).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "buyer_id", "project_id", "amount"}).
			AddRow(7, 4, 11, 49.99))
	mock.ExpectQuery(`SELECT (.+) FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "code_file_url"}).
			AddRow(11, "Inventory API", "A REST API.", "/uploads/code/inventory.zip"))

	purchases, err := service.GetUserPurchases(4)
	require.NoError(t, err)

	require.Len(t, purchases, 1)
	require.NotNil(t, purchases[0].Project)
	assert.Equal(t, "Inventory API", purchases[0].Project.Title)
	assert.Equal(t, "/uploads/code/inventory.zip", purchases[0].Project.CodeFileURL)
}
