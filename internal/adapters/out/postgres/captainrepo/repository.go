package captainrepo

import (
	"context"
	"errors"

	"github.com/wael7705/movo-project/internal/core/domain/model/captain"
	"github.com/wael7705/movo-project/internal/core/domain/model/kernel"
	"github.com/wael7705/movo-project/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCaptainRepository implements CaptainRepository using GORM.
type GormCaptainRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCaptainRepository creates a new GORM captain repository.
func NewGormCaptainRepository(db *gorm.DB, tracker aggregateTracker) *GormCaptainRepository {
	return &GormCaptainRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new captain to the database.
func (r *GormCaptainRepository) Add(ctx context.Context, aggregate *captain.Captain) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing captain to the database.
func (r *GormCaptainRepository) Update(ctx context.Context, aggregate *captain.Captain) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CaptainDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a captain by ID.
func (r *GormCaptainRepository) Get(ctx context.Context, id kernel.UUID) (*captain.Captain, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CaptainDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("captain", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves available captains ordered by rating and delivery
// history, capped at limit.
func (r *GormCaptainRepository) GetAllAvailable(ctx context.Context, limit int) ([]*captain.Captain, error) {
	var dtos []CaptainDTO
	err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Order("performance DESC, orders_delivered DESC").
		Limit(limit).
		Find(&dtos).
		Error
	if err != nil {
		return nil, err
	}

	captains := make([]*captain.Captain, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		captains = append(captains, c)
	}

	return captains, nil
}
