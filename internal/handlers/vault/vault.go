package vault

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vaultmart/vaultmart/internal/domain"
	"github.com/vaultmart/vaultmart/internal/dto"
	vaultservice "github.com/vaultmart/vaultmart/internal/service/vaultservice"
	"github.com/vaultmart/vaultmart/pkg/auth"
	"github.com/vaultmart/vaultmart/pkg/utils"
)

type Service interface {
	GetState(ctx context.Context, userID int) (*domain.VaultState, error)
	Lock(ctx context.Context, userID int, reason string) error
	Unlock(ctx context.Context, userID int) (*domain.VaultState, error)
}

type VaultHandler struct {
	vaultService Service
}

func New(vaultService Service) *VaultHandler {
	return &VaultHandler{
		vaultService: vaultService,
	}
}

// GetState godoc
//
//	@Summary		Get vault lock state
//	@Description	Return the current lock timestamp and reason for the authenticated user's vault. The vault is provisioned on first access.
//	@Tags			Vault
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.VaultStateResponseDTO	"Current lock state"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/vault/state [get]
func (h *VaultHandler) GetState(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	state, err := h.vaultService.GetState(r.Context(), userID)
	if err != nil {
		if errors.Is(err, vaultservice.ErrVaultNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Vault not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toStateDTO(state))
}

// Lock godoc
//
//	@Summary		Lock the vault
//	@Description	Move the vault to the locked state with the given reason. Locking an already locked vault overwrites the reason and timestamp.
//	@Tags			Vault
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LockVaultRequestDTO	true	"Lock request payload"
//	@Success		200		{object}	utils.Response			"Vault locked"
//	@Failure		400		{object}	utils.Response			"Invalid lock reason"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/vault/lock [post]
func (h *VaultHandler) Lock(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.LockVaultRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Reason == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Lock reason cannot be empty")
		return
	}

	err := h.vaultService.Lock(r.Context(), userID, req.Reason)
	if err != nil {
		if errors.Is(err, vaultservice.ErrInvalidLockReason) {
			utils.RespondWithError(w, http.StatusBadRequest,
				"Invalid lock reason. Valid reasons: idle, backgrounded, logout, force, rotation, admin")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Vault locked"})
}

// Unlock godoc
//
//	@Summary		Unlock the vault
//	@Description	Clear the vault lock for the authenticated user and return the resulting state. Unlocking an unlocked vault is a no-op.
//	@Tags			Vault
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.VaultStateResponseDTO	"State after unlock"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/vault/unlock [post]
func (h *VaultHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	state, err := h.vaultService.Unlock(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toStateDTO(state))
}

func toStateDTO(state *domain.VaultState) dto.VaultStateResponseDTO {
	resp := dto.VaultStateResponseDTO{
		LockedAt: state.LockedAt,
	}
	if state.LockReason != nil {
		reason := state.LockReason.String()
		resp.LockReason = &reason
	}
	return resp
}
