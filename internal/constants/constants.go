package constants

import "time"

// Session and context keys
const (
	SessionCookieName       = "cellhub_session"
	ContextKeyUserID        = "user_id"
	ContextKeyTokenChurchID = "token_church_id"
	ContextKeySession       = "session_context"
	ContextKeyRequestID     = "request_id"
)

// Validation limits
const (
	MinPasswordLength = 6
	// MaxPasswordLength is the most bcrypt will hash, in bytes.
	MaxPasswordLength = 72
	MaxNameLength     = 255
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// Invitations
const (
	DefaultInvitationTTL = 7 * 24 * time.Hour
)

// Dashboard windows
const (
	UpcomingEventsWindow = 30 * 24 * time.Hour
	MaxUpcomingEvents    = 5
)

// LeaderlessCellLabel is shown for cells without a leader.
const LeaderlessCellLabel = "Sem líder"

// AppLandingPath is where a freshly signed-in user is sent.
const AppLandingPath = "/app"
