package dto

import (
	"time"

	"github.com/smartlock-inc/smartlock/internal/domain/permission"
)

type PermissionDTO struct {
	ID         uint      `json:"id"`
	RoleName   string    `json:"role_name"`
	LockerID   uint      `json:"locker_id"`
	CanView    bool      `json:"can_view"`
	CanOpen    bool      `json:"can_open"`
	CanEdit    bool      `json:"can_edit"`
	CanTake    bool      `json:"can_take"`
	CanManage  bool      `json:"can_manage"`
	ValidUntil *string   `json:"valid_until"`
	Expired    bool      `json:"expired"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToPermissionDTO renders p with its expiry evaluated at the current time.
func ToPermissionDTO(p *permission.LockerPermission) *PermissionDTO {
	return toPermissionDTO(p, time.Now())
}

func toPermissionDTO(p *permission.LockerPermission, now time.Time) *PermissionDTO {
	if p == nil {
		return nil
	}

	access := p.Access()
	return &PermissionDTO{
		ID:         p.ID(),
		RoleName:   p.RoleName(),
		LockerID:   p.LockerID(),
		CanView:    access.CanView,
		CanOpen:    access.CanOpen,
		CanEdit:    access.CanEdit,
		CanTake:    access.CanTake,
		CanManage:  access.CanManage,
		ValidUntil: p.ValidUntil(),
		Expired:    p.IsExpiredAt(now),
		CreatedAt:  p.CreatedAt(),
	}
}

// ToPermissionDTOs never returns nil so empty lists encode as [].
func ToPermissionDTOs(perms []*permission.LockerPermission) []*PermissionDTO {
	now := time.Now()
	out := make([]*PermissionDTO, 0, len(perms))
	for _, p := range perms {
		out = append(out, toPermissionDTO(p, now))
	}
	return out
}
