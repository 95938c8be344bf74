// internal/services/review_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewRequiresPurchase(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewReviewService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "purchases"`).
		WithArgs(4, 11).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := service.CreateReview(4, &CreateReviewRequest{
		ProjectID: 11,
		Rating:    5,
		Comment:   "great",
	})
	assert.ErrorIs(t, err, ErrNotPurchased)
}

func TestCreateReviewRecomputesProjectRating(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewReviewService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "purchases"`).
		WithArgs(4, 11).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	// Ratings 4 and 5 so far: the stored mean becomes 4.50.
	mock.ExpectQuery(`SELECT COALESCE\(AVG\(rating\), 0\) AS avg, COUNT\(\*\) AS count FROM "reviews"`).
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(4.5, 2))
	mock.ExpectExec(`UPDATE "projects" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	review, err := service.CreateReview(4, &CreateReviewRequest{
		ProjectID: 11,
		Rating:    5,
		Comment:   "solid codebase",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(2), review.ID)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, uint(4), review.BuyerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	db, _ := newMockDB(t)
	service := NewReviewService(db)

	_, err := service.CreateReview(4, &CreateReviewRequest{ProjectID: 11, Rating: 6})
	assert.Error(t, err)

	_, err = service.CreateReview(4, &CreateReviewRequest{ProjectID: 11, Rating: 0})
	assert.Error(t, err)
}

func TestGetProjectReviewsNewestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewReviewService(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "reviews" WHERE project_id = \$1 ORDER BY created_at DESC`).
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "project_id", "buyer_id", "rating", "comment"}).
			AddRow(2, now, 11, 5, 5, "newer").
			AddRow(1, now.Add(-time.Hour), 11, 4, 3, "older"))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "full_name"}).
			AddRow(4, "dana", "Dana Fox").
			AddRow(5, "eli", "Eli Park"))

	reviews, err := service.GetProjectReviews(11)
	require.NoError(t, err)

	require.Len(t, reviews, 2)
	assert.Equal(t, "newer", reviews[0].Comment)
	require.NotNil(t, reviews[0].Buyer)
	assert.Equal(t, "eli", reviews[0].Buyer.Username)
	assert.Equal(t, "dana", reviews[1].Buyer.Username)
}
