package assignment

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrPhotoIsNotConstructed = errors.New("Photo must be created via NewPhoto constructor")

// PhotoType names the evidence captured for a handoff, e.g. pickup_completed_photo.
type PhotoType string

func (t PhotoType) String() string {
	return string(t)
}

// PhotoTypeFor derives the photo type for entering to on an assignment of
// kind. The second result is false when the transition is not photo-gated.
func PhotoTypeFor(kind Kind, to Status) (PhotoType, bool) {
	if !to.IsPhotoGated() || kind.Validate() != nil {
		return "", false
	}
	return PhotoType(fmt.Sprintf("%s_%s_photo", kind, strings.ToLower(to.String()))), true
}

// Evidence is what a driver submits with a handoff: the URL returned by
// photo storage and an optional description.
type Evidence struct {
	URL         string
	Description string
}

// Provided reports whether a photo URL was attached at all.
func (e *Evidence) Provided() bool {
	return e != nil && strings.TrimSpace(e.URL) != ""
}

// Photo is proof of a photo-gated handoff.
type Photo struct {
	id           kernel.UUID
	assignmentID kernel.UUID
	photoType    PhotoType
	url          string
	description  string
	takenAt      time.Time
	guard        guard.ConstructorGuard
}

func NewPhoto(
	id kernel.UUID,
	assignmentID kernel.UUID,
	photoType PhotoType,
	rawURL string,
	description string,
	takenAt time.Time,
) (*Photo, error) {
	p := &Photo{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setAssignmentID(assignmentID),
		p.setPhotoType(photoType),
		p.setURL(rawURL),
		p.setTakenAt(takenAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Photo) Validate() error {
	if p == nil {
		return ErrPhotoIsNotConstructed
	}
	return p.guard.Validate(ErrPhotoIsNotConstructed)
}

func (p *Photo) ID() kernel.UUID {
	return p.id
}

func (p *Photo) AssignmentID() kernel.UUID {
	return p.assignmentID
}

func (p *Photo) Type() PhotoType {
	return p.photoType
}

func (p *Photo) URL() string {
	return p.url
}

func (p *Photo) Description() string {
	return p.description
}

func (p *Photo) TakenAt() time.Time {
	return p.takenAt
}

func (p *Photo) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Photo) setAssignmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("assignment id", err)
	}
	p.assignmentID = id
	return nil
}

func (p *Photo) setPhotoType(t PhotoType) error {
	if t == "" {
		return errs.NewValueIsRequiredError("photo type")
	}
	p.photoType = t
	return nil
}

func (p *Photo) setURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return errs.NewValueIsRequiredError("photo url")
	}

	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("photo url", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errs.NewValueIsInvalidErrorWithCause("photo url", fmt.Errorf("scheme %q is not http or https", u.Scheme))
	}
	if u.Host == "" {
		return errs.NewValueIsInvalidErrorWithCause("photo url", errors.New("host is empty"))
	}

	p.url = raw
	return nil
}

func (p *Photo) setTakenAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("taken at")
	}
	p.takenAt = at.UTC()
	return nil
}
