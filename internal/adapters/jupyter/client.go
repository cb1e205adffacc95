package jupyter

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/studio-autostop/internal/domain"
	"github.com/bnema/studio-autostop/internal/ports"
	"github.com/bnema/studio-autostop/internal/version"
)

const (
	DefaultScheme   = "http"
	DefaultHost     = "default"
	DefaultPort     = "8888"
	DefaultBasePath = "/jupyterlab/default"

	maxResponseBytes = 8 << 20
)

type Config struct {
	// BaseURL overrides Scheme, Host, Port and BasePath when set.
	BaseURL  string
	Scheme   string
	Host     string
	Port     string
	BasePath string
	Token    string
	// Timeout bounds each request. Zero means no timeout.
	Timeout            time.Duration
	InsecureSkipVerify bool
}

func (c Config) baseURL() (string, error) {
	if strings.TrimSpace(c.BaseURL) != "" {
		parsed, err := url.Parse(strings.TrimSpace(c.BaseURL))
		if err != nil {
			return "", fmt.Errorf("parse jupyter base url: %w", err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return "", fmt.Errorf("jupyter base url %q needs a scheme and host", c.BaseURL)
		}
		return strings.TrimRight(parsed.String(), "/"), nil
	}

	scheme := orDefault(c.Scheme, DefaultScheme)
	host := orDefault(c.Host, DefaultHost)
	port := orDefault(c.Port, DefaultPort)
	// An explicit "/" selects no prefix.
	basePath := "/" + strings.Trim(orDefault(c.BasePath, DefaultBasePath), "/")
	if basePath == "/" {
		basePath = ""
	}

	u := url.URL{Scheme: scheme, Host: net.JoinHostPort(host, port), Path: basePath}
	return u.String(), nil
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

var _ ports.SessionInspector = (*Client)(nil)

func NewClient(cfg Config, httpClient *http.Client) (*Client, error) {
	baseURL, err := cfg.baseURL()
	if err != nil {
		return nil, err
	}

	if httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if cfg.InsecureSkipVerify {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // the studio server presents a self-signed cert
		}
		httpClient = &http.Client{Transport: transport, Timeout: cfg.Timeout}
	}

	return &Client{baseURL: baseURL, token: strings.TrimSpace(cfg.Token), http: httpClient}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) ListSessions(ctx context.Context) ([]domain.Session, error) {
	var payload []sessionPayload
	if err := c.getJSON(ctx, "/api/sessions", &payload); err != nil {
		return nil, fmt.Errorf("fetch sessions: %w", err)
	}

	sessions := make([]domain.Session, 0, len(payload))
	for _, entry := range payload {
		sessions = append(sessions, entry.toDomain())
	}

	return sessions, nil
}

func (c *Client) ListTerminals(ctx context.Context) ([]domain.Terminal, error) {
	var payload []terminalPayload
	if err := c.getJSON(ctx, "/api/terminals", &payload); err != nil {
		return nil, fmt.Errorf("fetch terminals: %w", err)
	}

	terminals := make([]domain.Terminal, 0, len(payload))
	for _, entry := range payload {
		terminals = append(terminals, domain.Terminal{
			Name:         entry.Name,
			LastActivity: domain.ActivityStamp(entry.LastActivity),
		})
	}

	return terminals, nil
}

// ListContents returns the entries of the server root directory.
func (c *Client) ListContents(ctx context.Context) ([]domain.FileRecord, error) {
	var payload contentsPayload
	if err := c.getJSON(ctx, "/api/contents", &payload); err != nil {
		return nil, fmt.Errorf("fetch contents: %w", err)
	}

	if payload.Type != "directory" {
		return []domain.FileRecord{payload.toDomain()}, nil
	}

	var entries []contentsPayload
	if len(payload.Content) > 0 && string(payload.Content) != "null" {
		if err := json.Unmarshal(payload.Content, &entries); err != nil {
			return nil, fmt.Errorf("decode contents listing: %w", err)
		}
	}

	records := make([]domain.FileRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, entry.toDomain())
	}

	return records, nil
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", "autostop/"+version.Version)
	if c.token != "" {
		request.Header.Set("Authorization", "token "+c.token)
	}

	response, err := c.http.Do(request)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}

	return nil
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
