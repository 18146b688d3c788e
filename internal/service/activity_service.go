package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"actipoint/internal/cache"
	apperrors "actipoint/internal/errors"
	"actipoint/internal/model"
	"actipoint/internal/repository"
)

const activityCacheTTL = 5 * time.Minute

const (
	activitiesByDateKey = "activities:bydate"
	activitiesAllKey    = "activities:all"
)

// Placeholder values substituted for absent optional fields, kept exactly
// as the stored data contract defines them.
const (
	defaultActivityName = "Unnamed Event"
	defaultDate         = "未設定"
	defaultTime         = "未設定"
	defaultLocation     = "未設定"
	defaultOrganizer    = "管理者"
)

// CreateActivityInput carries a creation request. Pointer fields
// distinguish "absent" from an explicit zero.
type CreateActivityInput struct {
	Name                 string
	Date                 string
	Time                 string
	Location             string
	Organizer            string
	Description          string
	Cost                 *int
	RequiredParticipants *int
	CurrentParticipants  *int
}

// ActivityService handles activity catalog operations.
type ActivityService interface {
	Create(ctx context.Context, in CreateActivityInput) (*model.Activity, error)
	List(ctx context.Context) ([]model.Activity, error)
	Details(ctx context.Context) ([]model.Activity, error)
}

type activityService struct {
	repo  repository.ActivityRepository
	cache *cache.Client
}

// NewActivityService creates a new activity service.
func NewActivityService(repo repository.ActivityRepository, cache *cache.Client) ActivityService {
	return &activityService{repo: repo, cache: cache}
}

// Create registers a new activity. An activity with the same name and date
// must not already exist; the composite unique index backs the check.
func (s *activityService) Create(ctx context.Context, in CreateActivityInput) (*model.Activity, error) {
	activity := &model.Activity{
		Name:                 withDefault(in.Name, defaultActivityName),
		Date:                 withDefault(in.Date, defaultDate),
		Time:                 withDefault(in.Time, defaultTime),
		Location:             withDefault(in.Location, defaultLocation),
		Organizer:            withDefault(in.Organizer, defaultOrganizer),
		Description:          in.Description,
		Cost:                 intOrDefault(in.Cost, 0),
		RequiredParticipants: intOrDefault(in.RequiredParticipants, 1),
		CurrentParticipants:  intOrDefault(in.CurrentParticipants, 0),
	}

	existing, err := s.repo.FindByNameAndDate(ctx, activity.Name, activity.Date)
	if err == nil && existing != nil {
		return nil, apperrors.ErrDuplicateActivity
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check activity existence: %w", err)
	}

	if err := s.repo.Create(ctx, activity); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateActivity
		}
		return nil, fmt.Errorf("create activity: %w", err)
	}

	// Invalidate cached listings
	_ = s.cache.Delete(ctx, activitiesByDateKey)
	_ = s.cache.Delete(ctx, activitiesAllKey)

	return activity, nil
}

// List returns all activities ordered ascending by date.
func (s *activityService) List(ctx context.Context) ([]model.Activity, error) {
	return s.cachedListing(ctx, activitiesByDateKey, s.repo.ListByDate)
}

// Details returns all activities in insertion order. The payload matches
// List minus the ordering; the separate read path is kept for client
// compatibility.
func (s *activityService) Details(ctx context.Context) ([]model.Activity, error) {
	return s.cachedListing(ctx, activitiesAllKey, s.repo.ListAll)
}

func (s *activityService) cachedListing(ctx context.Context, key string, load func(context.Context) ([]model.Activity, error)) ([]model.Activity, error) {
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.Activity
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	activities, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(activities); err == nil {
		_ = s.cache.Set(ctx, key, payload, activityCacheTTL)
	}
	return activities, nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func intOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
