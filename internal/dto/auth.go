package dto

import (
	"github.com/reanestrella/cell-growth-hub-sub000/internal/models"
)

type SignupRequest struct {
	ChurchName string `json:"church_name" binding:"required,max=255"`
	FullName   string `json:"full_name" binding:"required,max=255"`
	Email      string `json:"email" binding:"required,email,max=255"`
	Password   string `json:"password" binding:"required,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session context and a bearer token for
// clients that do not keep cookies.
type LoginResponse struct {
	*models.SessionContext
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type CreateInvitationRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
	Role  string `json:"role" binding:"required,oneof=admin pastor secretario tesoureiro lider membro"`
}

type RedeemInvitationRequest struct {
	FullName string `json:"full_name" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=72"`
}

// RedeemResponse tells the client where to go after signing in.
type RedeemResponse struct {
	*models.SessionContext
	Redirect string `json:"redirect"`
}

// PublicInvitationDTO is what an unauthenticated visitor may see of an invitation.
type PublicInvitationDTO struct {
	Email      string                 `json:"email"`
	Role       models.Role            `json:"role"`
	ChurchName string                 `json:"church_name"`
	State      models.InvitationState `json:"state"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin pastor secretario tesoureiro lider membro"`
}

type LinkMemberRequest struct {
	MemberID *uint64 `json:"member_id"`
}
