package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/mersenne-rsa/internal/domain/sessions"
	"github.com/MGTheTrain/mersenne-rsa/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/mersenne-rsa/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormImageSessionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormImageSessionRepository creates a new GORM-based ImageSessionRepository implementation
func NewGormImageSessionRepository(db *gorm.DB, logger logger.Logger) (sessions.ImageSessionRepository, error) {
	if db == nil {
		return nil, errors.New("database connection cannot be nil")
	}
	return &gormImageSessionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormImageSessionRepository) Create(ctx context.Context, session *sessions.ImageSession) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ImageSessionModel{}
	model.FromDomain(session)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create image session: %w", err)
	}

	r.logger.Info("Created image session with id ", session.ID)
	return nil
}

func (r *gormImageSessionRepository) List(ctx context.Context, query *sessions.ImageSessionQuery) ([]*sessions.ImageSession, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ImageSessionModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ImageSessionModel{})

	if query.Name != "" {
		dbQuery = dbQuery.Where("name = ?", query.Name)
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch image sessions: %w", err)
	}

	domainList := make([]*sessions.ImageSession, len(modelList))
	for i, model := range modelList {
		session, err := model.ToDomain()
		if err != nil {
			return nil, err
		}
		domainList[i] = session
	}

	return domainList, nil
}

func (r *gormImageSessionRepository) GetByID(ctx context.Context, sessionID string) (*sessions.ImageSession, error) {
	var model models.ImageSessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", sessions.ErrSessionNotFound, sessionID)
		}
		return nil, fmt.Errorf("failed to fetch image session: %w", err)
	}
	return model.ToDomain()
}

func (r *gormImageSessionRepository) DeleteByID(ctx context.Context, sessionID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", sessionID).Delete(&models.ImageSessionModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete image session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", sessions.ErrSessionNotFound, sessionID)
	}

	r.logger.Info("Deleted image session with id ", sessionID)
	return nil
}
