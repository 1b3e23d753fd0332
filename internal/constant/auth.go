package constant

const (
	// AccessTokenCookieKey holds the identity provider access token (a JWT).
	AccessTokenCookieKey = "sh_access_token"

	// RefreshTokenCookieKey holds the opaque refresh token.
	RefreshTokenCookieKey = "sh_refresh_token"

	// AuthMaxCookieAgeSec is the lifetime of session cookies.
	AuthMaxCookieAgeSec = 60 * 60 * 24 * 30

	ContextKeyUserID      = "userId"
	ContextKeyAccessToken = "accessToken"
	ContextKeyRequestID   = "requestId"
)
