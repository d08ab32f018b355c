package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"thriftstore/internal/config"
	"time"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

type GoogleClient interface {
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
	FetchUserInfo(ctx context.Context, accessToken string) (*GoogleUserInfo, error)
}

type googleClientImpl struct {
	httpClient   *http.Client
	clientID     string
	clientSecret string
	redirectURL  string
}

type GoogleUserInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewGoogleClient(googleCfg *config.Google, baseURL string) GoogleClient {
	return &googleClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		clientID:     googleCfg.ClientID,
		clientSecret: googleCfg.ClientSecret,
		redirectURL:  baseURL + "/auth/google/callback",
	}
}

func (c *googleClientImpl) AuthCodeURL(state string) string {
	params := url.Values{}
	params.Set("client_id", c.clientID)
	params.Set("redirect_uri", c.redirectURL)
	params.Set("response_type", "code")
	params.Set("scope", "profile")
	params.Set("state", state)

	return googleAuthURL + "?" + params.Encode()
}

func (c *googleClientImpl) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("code", code)
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("redirect_uri", c.redirectURL)
	form.Set("grant_type", "authorization_code")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleTokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("exchange auth code: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("google token error %d: %s", resp.StatusCode, string(b))
	}

	var res struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	return res.AccessToken, nil
}

func (c *googleClientImpl) FetchUserInfo(ctx context.Context, accessToken string) (*GoogleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("google userinfo error %d: %s", resp.StatusCode, string(b))
	}

	var info GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo response: %w", err)
	}

	return &info, nil
}
