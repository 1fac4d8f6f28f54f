// Package userrepo persists accounts. Availability blocks live in a text[]
// column of the users row, one "D HH:MM-HH:MM" element per block.
package userrepo

import (
	"time"

	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/user"

	"github.com/lib/pq"
)

// UserDTO is a row of the users table.
type UserDTO struct {
	ID           string         `gorm:"type:varchar(255);primaryKey"`
	Username     string         `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string         `gorm:"type:varchar(255);not null"`
	Role         string         `gorm:"type:varchar(16);not null"`
	Availability pq.StringArray `gorm:"type:text[]"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	blocks := aggregate.Availability()
	availability := make(pq.StringArray, 0, len(blocks))
	for _, b := range blocks {
		availability = append(availability, b.String())
	}

	return UserDTO{
		ID:           aggregate.ID().String(),
		Username:     aggregate.Username(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
		Availability: availability,
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	blocks := make([]kernel.TimeWindow, 0, len(dto.Availability))
	for _, raw := range dto.Availability {
		w, parseErr := kernel.ParseTimeWindow(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		blocks = append(blocks, w)
	}

	return user.RestoreUser(kernel.UserID(dto.ID), dto.Username, dto.PasswordHash, role, blocks)
}
