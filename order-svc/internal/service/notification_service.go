package service

import (
	"context"
	"fmt"

	"team-lunch/order-svc/internal/domain"
)

type NotificationService struct {
	activity ActivityReader
	limit    int
}

func NewNotificationService(activity ActivityReader, limit int) *NotificationService {
	return &NotificationService{activity: activity, limit: limit}
}

func (s *NotificationService) List(ctx context.Context, user *domain.User) ([]domain.Notification, error) {
	if s.activity == nil {
		return []domain.Notification{}, nil
	}
	notifications, err := s.activity.Notifications(ctx, user.ID, s.limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read notifications: %w", err)
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	return notifications, nil
}
