// Package assignmentrepo persists driver assignments together with the photos
// captured on their handoffs.
package assignmentrepo

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting driver assignments.
type AssignmentDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	Kind      string     `gorm:"type:varchar(16);not null"`
	Status    string     `gorm:"type:varchar(16);not null"`
	Notes     string     `gorm:"type:text;not null;default:''"`
	CreatedAt time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time  `gorm:"not null;autoUpdateTime:false"`
	Photos    []PhotoDTO `gorm:"foreignKey:AssignmentID"`
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "driver_assignments"
}

// PhotoDTO represents one stored handoff photo.
type PhotoDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssignmentID uuid.UUID `gorm:"type:uuid;not null;index"`
	PhotoType    string    `gorm:"type:varchar(64);not null"`
	URL          string    `gorm:"column:url;type:varchar(2048);not null"`
	Description  string    `gorm:"type:text;not null;default:''"`
	TakenAt      time.Time `gorm:"not null"`
}

// TableName specifies the database table name for photo entities.
func (PhotoDTO) TableName() string {
	return "assignment_photos"
}

// fromDomain maps the assignment row only. Photos are written one by one
// through AddPhoto, so they are never re-saved with the assignment.
func fromDomain(a *assignment.DriverAssignment) AssignmentDTO {
	return AssignmentDTO{
		ID:        a.ID().Bytes(),
		OrderID:   a.OrderID().Bytes(),
		DriverID:  a.DriverID().Bytes(),
		Kind:      a.Kind().String(),
		Status:    a.Status().String(),
		Notes:     a.Notes(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}

func photoFromDomain(p *assignment.Photo) PhotoDTO {
	return PhotoDTO{
		ID:           p.ID().Bytes(),
		AssignmentID: p.AssignmentID().Bytes(),
		PhotoType:    p.Type().String(),
		URL:          p.URL(),
		Description:  p.Description(),
		TakenAt:      p.TakenAt(),
	}
}

// toDomain rebuilds an assignment and its preloaded photos using RestoreAssignment.
func toDomain(dto AssignmentDTO) (*assignment.DriverAssignment, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	orderID, orderErr := kernel.UUIDFromBytes(dto.OrderID[:])
	driverID, driverErr := kernel.UUIDFromBytes(dto.DriverID[:])
	kind, kindErr := assignment.ParseKind(dto.Kind)
	status, statusErr := assignment.ParseStatus(dto.Status)

	if err := errors.Join(idErr, orderErr, driverErr, kindErr, statusErr); err != nil {
		return nil, err
	}

	photos := make([]*assignment.Photo, 0, len(dto.Photos))
	for _, photoDTO := range dto.Photos {
		p, err := photoToDomain(photoDTO)
		if err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}

	return assignment.RestoreAssignment(id, orderID, driverID, kind, status, dto.Notes, photos, dto.CreatedAt, dto.UpdatedAt)
}

func photoToDomain(dto PhotoDTO) (*assignment.Photo, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assignmentID, err := kernel.UUIDFromBytes(dto.AssignmentID[:])
	if err != nil {
		return nil, err
	}

	return assignment.NewPhoto(id, assignmentID, assignment.PhotoType(dto.PhotoType), dto.URL, dto.Description, dto.TakenAt)
}
