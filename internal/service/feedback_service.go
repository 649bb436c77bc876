package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shiprate/shiprate-server/internal/model"
	"github.com/shiprate/shiprate-server/internal/repository"
)

type FeedbackService interface {
	Submit(ctx context.Context, userID, subject, message, email string) (*model.Feedback, error)
}

type feedbackService struct {
	repo repository.FeedbackRepository
}

func NewFeedbackService(repo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo}
}

func (s *feedbackService) Submit(ctx context.Context, userID, subject, message, email string) (*model.Feedback, error) {
	fb := &model.Feedback{
		ID:        uuid.NewString(),
		UserID:    userID,
		Subject:   subject,
		Message:   message,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}
