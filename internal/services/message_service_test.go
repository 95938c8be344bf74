// internal/services/message_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMessage(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewMessageService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE "projects"."id" = \$1`).
		WithArgs(11, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "seller_id"}).AddRow(11, 3))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "messages"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	message, err := service.CreateMessage(4, &CreateMessageRequest{
		ProjectID:  11,
		ReceiverID: 3,
		Content:    "Does this support Postgres 15?",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), message.ID)
	assert.Equal(t, uint(4), message.SenderID)
	assert.Equal(t, uint(3), message.ReceiverID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMessageUnknownProject(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewMessageService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "projects" WHERE "projects"."id" = \$1`).
		WithArgs(404, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := service.CreateMessage(4, &CreateMessageRequest{
		ProjectID:  404,
		ReceiverID: 3,
		Content:    "hello",
	})
	assert.EqualError(t, err, "project not found")
}

func TestGetProjectMessagesOldestFirst(t *testing.T) {
	db, mock := newMockDB(t)
	service := NewMessageService(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM "messages" WHERE project_id = \$1 ORDER BY created_at ASC`).
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "project_id", "sender_id", "receiver_id", "content"}).
			AddRow(1, now.Add(-time.Hour), 11, 4, 3, "first question").
			AddRow(2, now, 11, 3, 4, "the reply"))
	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "full_name"}).
			AddRow(3, "seller", "A Seller").
			AddRow(4, "buyer", "A Buyer"))

	messages, err := service.GetProjectMessages(11)
	require.NoError(t, err)

	require.Len(t, messages, 2)
	assert.Equal(t, "first question", messages[0].Content)
	require.NotNil(t, messages[0].Sender)
	assert.Equal(t, "buyer", messages[0].Sender.Username)
	assert.Equal(t, "seller", messages[1].Sender.Username)
}
