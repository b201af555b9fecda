package auth

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleUserInfo holds the fields we keep from a verified Google ID token.
type GoogleUserInfo struct {
	GoogleId string
	Email    string
	Name     string
	Picture  string
}

type googleTokenInfo struct {
	Aud     string `json:"aud"`
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// VerifyGoogleIDToken validates a Google ID token against the tokeninfo
// endpoint and checks the audience matches our client id.
func VerifyGoogleIDToken(idToken, clientId string) (GoogleUserInfo, error) {
	requestURL := fmt.Sprintf("%s?id_token=%s", googleTokenInfoURL, url.QueryEscape(idToken))

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return GoogleUserInfo{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return GoogleUserInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return GoogleUserInfo{}, ErrInvalidGoogleToken
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return GoogleUserInfo{}, err
	}

	var info googleTokenInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return GoogleUserInfo{}, err
	}

	if clientId != "" && info.Aud != clientId {
		return GoogleUserInfo{}, ErrInvalidGoogleToken
	}

	if info.Sub == "" || info.Email == "" || info.Name == "" {
		return GoogleUserInfo{}, ErrInvalidGoogleToken
	}

	return GoogleUserInfo{
		GoogleId: info.Sub,
		Email:    info.Email,
		Name:     info.Name,
		Picture:  info.Picture,
	}, nil
}
