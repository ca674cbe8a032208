package dto

import "time"

type VaultStateResponseDTO struct {
	LockedAt   *time.Time `json:"locked_at" example:"2024-11-02T10:41:12+03:00"`
	LockReason *string    `json:"lock_reason" example:"idle"`
}

type LockVaultRequestDTO struct {
	Reason string `json:"reason" example:"logout"`
}
