package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/storeops/backend/internal/domain/notification"
	"github.com/storeops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindByRecipient(ctx context.Context, recipientID uuid.UUID, filter shared.Filter) ([]notification.Notification, int64, error) {
	args := m.Called(ctx, recipientID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]notification.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	args := m.Called(ctx, recipientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockUnreadCounter struct {
	mock.Mock
}

func (m *MockUnreadCounter) Get(ctx context.Context, recipientID uuid.UUID) (int64, bool, error) {
	args := m.Called(ctx, recipientID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockUnreadCounter) Set(ctx context.Context, recipientID uuid.UUID, count int64) error {
	args := m.Called(ctx, recipientID, count)
	return args.Error(0)
}

func (m *MockUnreadCounter) Incr(ctx context.Context, recipientID uuid.UUID) error {
	args := m.Called(ctx, recipientID)
	return args.Error(0)
}

func (m *MockUnreadCounter) Decr(ctx context.Context, recipientID uuid.UUID) error {
	args := m.Called(ctx, recipientID)
	return args.Error(0)
}

func TestService_Notify(t *testing.T) {
	repo := new(MockNotificationRepository)
	counter := new(MockUnreadCounter)
	service := NewService(repo, counter, zap.NewNop())

	recipient := uuid.New()
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	counter.On("Incr", mock.Anything, recipient).Return(nil)

	resp, err := service.Notify(context.Background(), NotifyRequest{
		RecipientID: recipient.String(),
		Kind:        string(notification.KindLowStock),
		Title:       "Low stock",
		Body:        "SKU-1 is nearly out",
	})

	require.NoError(t, err)
	assert.Equal(t, "low_stock", resp.Kind)
	assert.False(t, resp.Read)
	repo.AssertExpectations(t)
	counter.AssertExpectations(t)
}

func TestService_Notify_CounterFailureIsNonFatal(t *testing.T) {
	repo := new(MockNotificationRepository)
	counter := new(MockUnreadCounter)
	service := NewService(repo, counter, zap.NewNop())

	recipient := uuid.New()
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)
	counter.On("Incr", mock.Anything, recipient).Return(errors.New("redis down"))

	_, err := service.Notify(context.Background(), NotifyRequest{
		RecipientID: recipient.String(),
		Kind:        string(notification.KindAnnouncement),
		Title:       "Hello",
	})

	require.NoError(t, err)
}

func TestService_MarkRead(t *testing.T) {
	repo := new(MockNotificationRepository)
	counter := new(MockUnreadCounter)
	service := NewService(repo, counter, zap.NewNop())

	recipient := uuid.New()
	n, err := notification.New(recipient, notification.KindSettlement, "Settled", "")
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, n.ID).Return(n, nil)
	repo.On("Update", mock.Anything, n).Return(nil)
	counter.On("Decr", mock.Anything, recipient).Return(nil)

	require.NoError(t, service.MarkRead(context.Background(), recipient, n.ID))
	assert.True(t, n.IsRead())
	counter.AssertExpectations(t)
}

func TestService_MarkRead_WrongRecipient(t *testing.T) {
	repo := new(MockNotificationRepository)
	counter := new(MockUnreadCounter)
	service := NewService(repo, counter, zap.NewNop())

	n, err := notification.New(uuid.New(), notification.KindOrderStatus, "Shipped", "")
	require.NoError(t, err)
	repo.On("FindByID", mock.Anything, n.ID).Return(n, nil)

	err = service.MarkRead(context.Background(), uuid.New(), n.ID)

	assert.ErrorIs(t, err, shared.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_MarkRead_AlreadyRead(t *testing.T) {
	repo := new(MockNotificationRepository)
	counter := new(MockUnreadCounter)
	service := NewService(repo, counter, zap.NewNop())

	recipient := uuid.New()
	n, err := notification.New(recipient, notification.KindOrderStatus, "Shipped", "")
	require.NoError(t, err)
	n.MarkRead()
	repo.On("FindByID", mock.Anything, n.ID).Return(n, nil)

	require.NoError(t, service.MarkRead(context.Background(), recipient, n.ID))
	counter.AssertNotCalled(t, "Decr", mock.Anything, mock.Anything)
}

func TestService_UnreadCount_CacheHit(t *testing.T) {
	repo := new(MockNotificationRepository)
	counter := new(MockUnreadCounter)
	service := NewService(repo, counter, zap.NewNop())

	recipient := uuid.New()
	counter.On("Get", mock.Anything, recipient).Return(int64(7), true, nil)

	resp, err := service.UnreadCount(context.Background(), recipient)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Unread)
	repo.AssertNotCalled(t, "CountUnread", mock.Anything, mock.Anything)
}

func TestService_UnreadCount_CacheMissRebuilds(t *testing.T) {
	repo := new(MockNotificationRepository)
	counter := new(MockUnreadCounter)
	service := NewService(repo, counter, zap.NewNop())

	recipient := uuid.New()
	counter.On("Get", mock.Anything, recipient).Return(int64(0), false, nil)
	repo.On("CountUnread", mock.Anything, recipient).Return(int64(3), nil)
	counter.On("Set", mock.Anything, recipient, int64(3)).Return(nil)

	resp, err := service.UnreadCount(context.Background(), recipient)

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Unread)
	counter.AssertExpectations(t)
}
