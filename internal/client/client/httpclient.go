package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/skillswap/internal/client/models"
	"github.com/dmitrijs2005/skillswap/internal/logging"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

const maxErrorBody = 4 << 10

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	log     logging.Logger
	newID   func() string
}

// NewHTTPClient builds a client for the backend rooted at baseURL,
// e.g. "http://localhost:8080/api". A zero timeout disables it.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("base url %q: missing host", baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")

	return &HTTPClient{
		baseURL: u,
		http:    &http.Client{Timeout: timeout},
		log:     log,
		newID:   func() string { return uuid.NewString() },
	}, nil
}

func (c *HTTPClient) endpoint(parts ...string) string {
	u := *c.baseURL
	for _, p := range parts {
		u.Path += "/" + url.PathEscape(p)
	}
	return u.String()
}

func (c *HTTPClient) do(ctx context.Context, method, target string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := c.newID()
	req.Header.Set(RequestIDHeader, reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "url", target, "request_id", reqID, "error", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", ErrUnavailable, ctxErr)
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request done",
		"method", method,
		"url", target,
		"status", resp.StatusCode,
		"request_id", reqID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return mapStatus(resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// Creation endpoints may answer 201/204 without a body.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *HTTPClient) getSkills(ctx context.Context, kind models.SkillKind, parts ...string) ([]models.Skill, error) {
	var skills []models.Skill
	if err := c.do(ctx, http.MethodGet, c.endpoint(parts...), nil, &skills); err != nil {
		return nil, err
	}
	if skills == nil {
		skills = []models.Skill{}
	}
	return models.WithKind(skills, kind), nil
}

func (c *HTTPClient) GetOfferedSkills(ctx context.Context) ([]models.Skill, error) {
	return c.getSkills(ctx, models.SkillOffered, "skills", "offered")
}

func (c *HTTPClient) GetRequestedSkills(ctx context.Context) ([]models.Skill, error) {
	return c.getSkills(ctx, models.SkillRequested, "skills", "requested")
}

func (c *HTTPClient) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.do(ctx, http.MethodGet, c.endpoint("users"), nil, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (c *HTTPClient) GetUser(ctx context.Context, id int64) (models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, c.endpoint("users", strconv.FormatInt(id, 10)), nil, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodPost, c.endpoint("users"), req, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (c *HTTPClient) GetUserOfferedSkills(ctx context.Context, userID int64) ([]models.Skill, error) {
	return c.getSkills(ctx, models.SkillOffered, "users", strconv.FormatInt(userID, 10), "skills", "offered")
}

func (c *HTTPClient) GetUserRequestedSkills(ctx context.Context, userID int64) ([]models.Skill, error) {
	return c.getSkills(ctx, models.SkillRequested, "users", strconv.FormatInt(userID, 10), "skills", "requested")
}

func (c *HTTPClient) createSkill(ctx context.Context, kind models.SkillKind, req models.CreateSkillRequest) (models.Skill, error) {
	var s models.Skill
	if err := c.do(ctx, http.MethodPost, c.endpoint("skills", string(kind)), req, &s); err != nil {
		return models.Skill{}, err
	}
	s.Kind = kind
	return s, nil
}

func (c *HTTPClient) CreateOfferedSkill(ctx context.Context, req models.CreateSkillRequest) (models.Skill, error) {
	return c.createSkill(ctx, models.SkillOffered, req)
}

func (c *HTTPClient) CreateRequestedSkill(ctx context.Context, req models.CreateSkillRequest) (models.Skill, error) {
	return c.createSkill(ctx, models.SkillRequested, req)
}
