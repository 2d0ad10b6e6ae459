package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// AuthAPI proxies credentials to the external auth endpoint. The response
// body is treated opaquely: callers store it verbatim as the session
// record.
type AuthAPI struct {
	baseURL string
	client  *http.Client
}

func NewAuthAPI(baseURL string, timeout time.Duration) *AuthAPI {
	return &AuthAPI{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login posts credentials and returns the raw user/session record.
// Upstream rejections come back as *UpstreamError with the server-supplied
// detail message when one exists.
func (a *AuthAPI) Login(input LoginInput) ([]byte, error) {
	b, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal login payload: %w", err)
	}

	resp, err := a.client.Post(a.baseURL+"/auth/login", "application/json", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to call auth API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read auth response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode, Message: upstreamDetail(body)}
	}
	return body, nil
}

// upstreamDetail pulls the human-readable message out of an error body.
// The API answers either {"detail": "..."} or {"detail": [{"msg": ...}]}.
func upstreamDetail(body []byte) string {
	var single struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &single) == nil && single.Detail != "" {
		return single.Detail
	}
	var multi struct {
		Detail []struct {
			Msg     string `json:"msg"`
			Message string `json:"message"`
		} `json:"detail"`
	}
	if json.Unmarshal(body, &multi) == nil && len(multi.Detail) > 0 {
		out := ""
		for i, d := range multi.Detail {
			if i > 0 {
				out += ", "
			}
			if d.Msg != "" {
				out += d.Msg
			} else {
				out += d.Message
			}
		}
		return out
	}
	return ""
}
