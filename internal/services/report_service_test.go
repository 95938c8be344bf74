// internal/services/report_service_test.go
package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codetrade/backend/internal/models"
)

func TestCreateReportDenormalizesSeller(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewReportService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE "projects"."id" = \$1`).
		WithArgs(11, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "seller_id"}).AddRow(11, 3))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reports"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	report, err := service.CreateReport(4, &CreateReportRequest{
		ProjectID: 11,
		Reason:    "stolen code",
	})
	require.NoError(t, err)

	// The seller comes from the project row, not from the client.
	assert.Equal(t, uint(3), report.SellerID)
	assert.Equal(t, uint(4), report.ReporterID)
	assert.Equal(t, models.ReportStatusPending, report.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateReportStatusRejectsNonOwner(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewReportService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "reports" WHERE "reports"."id" = \$1`).
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "reporter_id", "seller_id", "status"}).
			AddRow(1, 11, 4, 3, "pending"))

	_, err := service.UpdateReportStatus(1, 99, &UpdateReportStatusRequest{
		Status: models.ReportStatusResolved,
	})
	assert.ErrorIs(t, err, ErrNotReportOwner)
}

func TestUpdateReportStatusRejectsPending(t *testing.T) {
	db, _ := newMockDB(t)
	service := NewReportService(db)

	_, err := service.UpdateReportStatus(1, 3, &UpdateReportStatusRequest{
		Status: models.ReportStatusPending,
	})
	assert.EqualError(t, err, "status must be resolved or dismissed")

	_, err = service.UpdateReportStatus(1, 3, &UpdateReportStatusRequest{
		Status: models.ReportStatus("bogus"),
	})
	assert.EqualError(t, err, "status must be resolved or dismissed")
}

func TestUpdateReportStatusByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewReportService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "reports" WHERE "reports"."id" = \$1`).
		WithArgs(1, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "reporter_id", "seller_id", "status"}).
			AddRow(1, 11, 4, 3, "pending"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "reports" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	report, err := service.UpdateReportStatus(1, 3, &UpdateReportStatusRequest{
		Status: models.ReportStatusResolved,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusResolved, report.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSellerReports(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewReportService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "reports" WHERE seller_id = \$1 ORDER BY created_at DESC`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "reporter_id", "seller_id", "reason", "status"}).
			AddRow(1, 11, 4, 3, "stolen code", "pending"))
	mock.ExpectQuery(`SELECT (.+) FROM "projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(11, "Inventory API"))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "full_name"}).
			AddRow(4, "buyer", "A Buyer"))

	reports, err := service.GetSellerReports(3)
	require.NoError(t, err)

	require.Len(t, reports, 1)
	require.NotNil(t, reports[0].Project)
	assert.Equal(t, "Inventory API", reports[0].Project.Title)
	require.NotNil(t, reports[0].Reporter)
	assert.Equal(t, "buyer", reports[0].Reporter.Username)
}
