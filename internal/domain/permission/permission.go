package permission

import (
	"fmt"
	"time"

	vo "github.com/smartlock-inc/smartlock/internal/domain/permission/valueobjects"
	"github.com/smartlock-inc/smartlock/internal/shared/constants"
	"github.com/smartlock-inc/smartlock/internal/shared/errors"
	"github.com/smartlock-inc/smartlock/internal/shared/optional"
)

// Access is the set of rights a role holds on a locker.
type Access struct {
	CanView   bool
	CanOpen   bool
	CanEdit   bool
	CanTake   bool
	CanManage bool
}

// DefaultAccess grants view only.
func DefaultAccess() Access {
	return Access{CanView: true}
}

// LockerPermission grants one role access rights to one locker.
// (roleName, lockerID) is unique across the store.
type LockerPermission struct {
	id         uint
	roleName   vo.RoleName
	lockerID   uint
	access     Access
	validUntil vo.ValidUntil
	createdAt  time.Time
}

// Patch lists the fields of a partial update. Absent fields are untouched;
// only ValidUntil accepts an explicit null, which clears the expiry.
type Patch struct {
	RoleName   optional.Value[string]
	LockerID   optional.Value[uint]
	CanView    optional.Value[bool]
	CanOpen    optional.Value[bool]
	CanEdit    optional.Value[bool]
	CanTake    optional.Value[bool]
	CanManage  optional.Value[bool]
	ValidUntil optional.Value[string]
}

func NewLockerPermission(roleName string, lockerID uint, access Access, validUntil *string, now time.Time) (*LockerPermission, error) {
	var fields []errors.FieldError

	name, err := vo.NewRoleName(roleName)
	if err != nil {
		fields = append(fields, errors.FieldError{Field: "role_name", Message: err.Error()})
	}
	if lockerID == 0 {
		fields = append(fields, errors.FieldError{Field: "locker_id", Message: "must be greater than 0"})
	}

	expiry := vo.NoExpiry()
	if validUntil != nil {
		if expiry, err = vo.NewValidUntil(*validUntil); err != nil {
			fields = append(fields, errors.FieldError{Field: "valid_until", Message: err.Error()})
		}
	}

	if len(fields) > 0 {
		return nil, errors.NewFieldValidationError(constants.ErrMsgValidationFailed, fields...)
	}

	return &LockerPermission{
		roleName:   name,
		lockerID:   lockerID,
		access:     access,
		validUntil: expiry,
		createdAt:  now.UTC(),
	}, nil
}

func ReconstructLockerPermission(
	id uint,
	roleName string,
	lockerID uint,
	access Access,
	validUntil *string,
	createdAt time.Time,
) (*LockerPermission, error) {
	if id == 0 {
		return nil, fmt.Errorf("permission ID cannot be zero")
	}

	expiry := vo.NoExpiry()
	if validUntil != nil && *validUntil != "" {
		parsed, err := vo.NewValidUntil(*validUntil)
		if err != nil {
			return nil, fmt.Errorf("stored valid_until for permission %d: %w", id, err)
		}
		expiry = parsed
	}

	return &LockerPermission{
		id:         id,
		roleName:   vo.RoleName(roleName),
		lockerID:   lockerID,
		access:     access,
		validUntil: expiry,
		createdAt:  createdAt,
	}, nil
}

func (p *LockerPermission) ID() uint {
	return p.id
}

func (p *LockerPermission) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("permission ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("permission ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *LockerPermission) RoleName() string {
	return p.roleName.String()
}

func (p *LockerPermission) LockerID() uint {
	return p.lockerID
}

func (p *LockerPermission) Access() Access {
	return p.access
}

func (p *LockerPermission) ValidUntil() *string {
	return p.validUntil.Ptr()
}

func (p *LockerPermission) CreatedAt() time.Time {
	return p.createdAt
}

// IsExpiredAt reports whether the permission has lapsed at t.
func (p *LockerPermission) IsExpiredAt(t time.Time) bool {
	return p.validUntil.IsExpiredAt(t)
}

// ApplyPatch validates every supplied field first and only then mutates,
// so a rejected patch leaves the permission unchanged.
func (p *LockerPermission) ApplyPatch(patch Patch) error {
	var fields []errors.FieldError
	next := *p

	if patch.RoleName.IsSet() {
		v, ok := patch.RoleName.Get()
		name, err := vo.NewRoleName(v)
		switch {
		case !ok:
			fields = append(fields, errors.FieldError{Field: "role_name", Message: "cannot be null"})
		case err != nil:
			fields = append(fields, errors.FieldError{Field: "role_name", Message: err.Error()})
		default:
			next.roleName = name
		}
	}

	if patch.LockerID.IsSet() {
		v, ok := patch.LockerID.Get()
		switch {
		case !ok:
			fields = append(fields, errors.FieldError{Field: "locker_id", Message: "cannot be null"})
		case v == 0:
			fields = append(fields, errors.FieldError{Field: "locker_id", Message: "must be greater than 0"})
		default:
			next.lockerID = v
		}
	}

	flags := []struct {
		name   string
		value  optional.Value[bool]
		target *bool
	}{
		{"can_view", patch.CanView, &next.access.CanView},
		{"can_open", patch.CanOpen, &next.access.CanOpen},
		{"can_edit", patch.CanEdit, &next.access.CanEdit},
		{"can_take", patch.CanTake, &next.access.CanTake},
		{"can_manage", patch.CanManage, &next.access.CanManage},
	}
	for _, f := range flags {
		if !f.value.IsSet() {
			continue
		}
		v, ok := f.value.Get()
		if !ok {
			fields = append(fields, errors.FieldError{Field: f.name, Message: "cannot be null"})
			continue
		}
		*f.target = v
	}

	if patch.ValidUntil.IsSet() {
		if v, ok := patch.ValidUntil.Get(); ok {
			expiry, err := vo.NewValidUntil(v)
			if err != nil {
				fields = append(fields, errors.FieldError{Field: "valid_until", Message: err.Error()})
			} else {
				next.validUntil = expiry
			}
		} else {
			next.validUntil = vo.NoExpiry()
		}
	}

	if len(fields) > 0 {
		return errors.NewFieldValidationError(constants.ErrMsgValidationFailed, fields...)
	}

	*p = next
	return nil
}
