package respond

// RefreshTokenRespond carries the re-issued access token.
type RefreshTokenRespond struct {
	AccessToken string `json:"access_token"`
}
