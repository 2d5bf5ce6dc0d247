package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/cashflow_dashboard/internal/core/domain"
	"github.com/SscSPs/cashflow_dashboard/internal/events"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn func(ctx context.Context, userID string) (*domain.User, error)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByRefreshTokenHash(ctx context.Context, tokenHash string) (*domain.User, error) {
	args := m.Called(ctx, tokenHash)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock EntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	var e *domain.Entry
	if args.Get(0) != nil {
		e = args.Get(0).(*domain.Entry)
	}
	return e, args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, *string, error) {
	args := m.Called(ctx, filter)
	var entries []domain.Entry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.Entry)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return entries, next, args.Error(2)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock reference repositories ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	var list []domain.Category
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Category)
	}
	return list, args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	var c *domain.Category
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Category)
	}
	return c, args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	return m.Called(ctx, categoryID).Error(0)
}

type MockResponsibleRepository struct {
	mock.Mock
}

func (m *MockResponsibleRepository) ListResponsibles(ctx context.Context) ([]domain.Responsible, error) {
	args := m.Called(ctx)
	var list []domain.Responsible
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Responsible)
	}
	return list, args.Error(1)
}

func (m *MockResponsibleRepository) FindResponsibleByID(ctx context.Context, responsibleID string) (*domain.Responsible, error) {
	args := m.Called(ctx, responsibleID)
	var r *domain.Responsible
	if args.Get(0) != nil {
		r = args.Get(0).(*domain.Responsible)
	}
	return r, args.Error(1)
}

func (m *MockResponsibleRepository) SaveResponsible(ctx context.Context, responsible domain.Responsible) error {
	return m.Called(ctx, responsible).Error(0)
}

func (m *MockResponsibleRepository) UpdateResponsible(ctx context.Context, responsible domain.Responsible) error {
	return m.Called(ctx, responsible).Error(0)
}

func (m *MockResponsibleRepository) DeleteResponsible(ctx context.Context, responsibleID string) error {
	return m.Called(ctx, responsibleID).Error(0)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	var list []domain.Tag
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Tag)
	}
	return list, args.Error(1)
}

func (m *MockTagRepository) FindTagByID(ctx context.Context, tagID string) (*domain.Tag, error) {
	args := m.Called(ctx, tagID)
	var t *domain.Tag
	if args.Get(0) != nil {
		t = args.Get(0).(*domain.Tag)
	}
	return t, args.Error(1)
}

func (m *MockTagRepository) SaveTag(ctx context.Context, tag domain.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

func (m *MockTagRepository) UpdateTag(ctx context.Context, tag domain.Tag) error {
	return m.Called(ctx, tag).Error(0)
}

func (m *MockTagRepository) DeleteTag(ctx context.Context, tagID string) error {
	return m.Called(ctx, tagID).Error(0)
}

// --- Mock GoalRepository ---
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) ListGoals(ctx context.Context, filter domain.GoalFilter) ([]domain.Goal, error) {
	args := m.Called(ctx, filter)
	var list []domain.Goal
	if args.Get(0) != nil {
		list = args.Get(0).([]domain.Goal)
	}
	return list, args.Error(1)
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID)
	var g *domain.Goal
	if args.Get(0) != nil {
		g = args.Get(0).(*domain.Goal)
	}
	return g, args.Error(1)
}

func (m *MockGoalRepository) SaveGoal(ctx context.Context, goal domain.Goal) error {
	return m.Called(ctx, goal).Error(0)
}

func (m *MockGoalRepository) UpdateGoal(ctx context.Context, goal domain.Goal) error {
	return m.Called(ctx, goal).Error(0)
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context, goalID string) error {
	return m.Called(ctx, goalID).Error(0)
}

// --- Mock Authorizer ---
type MockAuthorizer struct {
	mock.Mock
}

func (m *MockAuthorizer) Authorize(ctx context.Context, userID string, action domain.Action) error {
	return m.Called(ctx, userID, action).Error(0)
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []events.Type {
	out := make([]events.Type, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }
