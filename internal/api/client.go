// Package api provides the client for the remote app service.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/trly/deployctl/internal/config"
	"github.com/trly/deployctl/internal/log"
)

// maxErrorBody bounds how much of an error response is kept in StatusError.
const maxErrorBody = 512

// AppService fetches and stores named file artifacts of an application.
type AppService interface {
	DownloadFile(ctx context.Context, appID, fileType, destPath string) error
	UploadFile(ctx context.Context, appID, fileType, content string) error
}

// Client talks to the app service over HTTP.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *http.Client
	logger     log.Logger
}

// NewClient creates a Client from the configured API URL, token and timeout.
func NewClient(configProvider config.Provider, logger log.Logger, version string) *Client {
	cfg := configProvider.GetConfig()
	return &Client{
		baseURL:    strings.TrimRight(cfg.APIURL, "/"),
		token:      cfg.APIToken,
		userAgent:  "deployctl/" + version,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		logger:     logger,
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

func (c *Client) fileURL(appID, fileType string) string {
	return fmt.Sprintf("%s/apps/%s/files/%s", c.baseURL, url.PathEscape(appID), url.PathEscape(fileType))
}

func (c *Client) newRequest(ctx context.Context, method, target string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// DownloadFile fetches fileType for appID and writes it to destPath.
func (c *Client) DownloadFile(ctx context.Context, appID, fileType, destPath string) error {
	target := c.fileURL(appID, fileType)
	req, err := c.newRequest(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}

	c.logger.Debug("Downloading file", "url", target, "dest", destPath)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download %s for app %s: %w", fileType, appID, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if err := checkResponse(resp, "download", appID, fileType); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", destPath, err)
	}

	f, err := os.OpenFile(destPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600) //nolint:gosec // destPath is a staging path we own
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}

	n, copyErr := io.Copy(f, resp.Body)
	closeErr := f.Close()
	if copyErr != nil {
		return fmt.Errorf("failed to write %s: %w", destPath, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to write %s: %w", destPath, closeErr)
	}

	c.logger.Debug("Downloaded file", "dest", destPath, "bytes", n)
	return nil
}

// UploadFile stores content as fileType for appID.
func (c *Client) UploadFile(ctx context.Context, appID, fileType, content string) error {
	target := c.fileURL(appID, fileType)
	req, err := c.newRequest(ctx, http.MethodPut, target, strings.NewReader(content))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	c.logger.Debug("Uploading file", "url", target, "bytes", len(content))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload %s for app %s: %w", fileType, appID, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return checkResponse(resp, "upload", appID, fileType)
}

func checkResponse(resp *http.Response, operation, appID, fileType string) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{
		Operation:  operation,
		AppID:      appID,
		FileType:   fileType,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}

var _ AppService = (*Client)(nil)
