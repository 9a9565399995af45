package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const addStoryPath = "/storyManage/add"

// Client publishes submissions to the remote story service. The service
// wraps every response in an {errCode, errMsg, data} envelope; errCode
// "0" with data true is the only success shape.
type Client struct {
	baseURL string
	hc      *http.Client
}

func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), hc: hc}
}

func (c *Client) Publish(ctx context.Context, sub Submission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+addStoryPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("publish: unexpected status %s", resp.Status)
	}

	var env struct {
		ErrCode string `json:"errCode"`
		ErrMsg  string `json:"errMsg"`
		Data    bool   `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if env.ErrCode != "0" || !env.Data {
		msg := strings.TrimSpace(env.ErrMsg)
		if msg == "" {
			msg = "publish rejected"
		}
		return fmt.Errorf("%s", msg)
	}
	return nil
}
