package assignmentrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolation       = "23505"
	oneActiveIndex        = "driver_assignments_one_active_idx"
	activeAssignmentWhere = "order_id = ? AND kind = ? AND " +
		"(status IN ('ASSIGNED', 'IN_PROGRESS') OR (kind = 'pickup' AND status = 'COMPLETED'))"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{
		db: db,
	}
}

// Add saves a new assignment. The partial unique index on active assignments
// turns a second active pickup or delivery into assignment.ErrActiveAssignmentExists.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.DriverAssignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("Photos").Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == oneActiveIndex {
			return assignment.ErrActiveAssignmentExists
		}
		return errs.NewStorageError("insert assignment", err)
	}

	return nil
}

// Get retrieves an assignment by ID with its photos.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.DriverAssignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.withPhotos(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, errs.NewStorageError("select assignment", err)
	}

	return toDomain(dto)
}

// GetActive retrieves the non-terminal assignment of kind for an order.
func (r *GormAssignmentRepository) GetActive(
	ctx context.Context,
	orderID kernel.UUID,
	kind assignment.Kind,
) (*assignment.DriverAssignment, error) {
	if err := errors.Join(orderID.Validate(), kind.Validate()); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	err := r.withPhotos(ctx).
		Where(activeAssignmentWhere, orderID.Bytes(), kind.String()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active "+kind.String()+" assignment", orderID.String())
		}
		return nil, errs.NewStorageError("select active assignment", err)
	}

	return toDomain(dto)
}

// ListByOrder returns every assignment of an order, oldest first.
func (r *GormAssignmentRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*assignment.DriverAssignment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	if err := r.withPhotos(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageError("select assignments", err)
	}

	assignments := make([]*assignment.DriverAssignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// CompareAndSetStatus writes the assignment status only if the stored status
// still equals expected.
func (r *GormAssignmentRepository) CompareAndSetStatus(
	ctx context.Context,
	aggregate *assignment.DriverAssignment,
	expected assignment.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AssignmentDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Updates(map[string]any{
			"status":     dto.Status,
			"updated_at": dto.UpdatedAt,
		})
	if result.Error != nil {
		return errs.NewStorageError("update assignment status", result.Error)
	}

	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&AssignmentDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
		return errs.NewStorageError("count assignments", err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("assignment", aggregate.ID().String())
	}

	return errs.NewConcurrentModificationError("assignment", aggregate.ID().String(), expected)
}

// AddPhoto persists the evidence of a photo-gated transition.
func (r *GormAssignmentRepository) AddPhoto(ctx context.Context, photo *assignment.Photo) error {
	if err := photo.Validate(); err != nil {
		return err
	}

	dto := photoFromDomain(photo)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStorageError("insert photo", err)
	}

	return nil
}

func (r *GormAssignmentRepository) withPhotos(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Photos", func(db *gorm.DB) *gorm.DB {
		return db.Order("taken_at, id")
	})
}
