package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/resumeportal/internal/client/models"
	"github.com/dmitrijs2005/resumeportal/internal/client/session"
	"github.com/dmitrijs2005/resumeportal/internal/common"
	"github.com/dmitrijs2005/resumeportal/internal/logging"
)

// Resource names under {endpoint}/api/.
const (
	resourceLogin          = "login"
	resourceRegister       = "register"
	resourceProfile        = "profile"
	resourceAddProfile     = "addProfile"
	resourceAllProfiles    = "get-all-profiles"
	resourceResubmitResume = "resubmit-resume"
	resourceUpdateResume   = "update-resume"
)

// Session is the part of session.Manager the facade depends on.
type Session interface {
	Token(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error
	Subscribe(fn func(session.Event)) (cancel func())
}

type HTTPClient struct {
	endpoint string
	http     *http.Client
	session  Session
	validate *validator.Validate
	log      logging.Logger

	unsubscribe func()

	mu      sync.RWMutex
	student *models.Student
	resume  *models.Resume
}

type Option func(*HTTPClient)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient builds a facade for the backend at endpoint (scheme://host[:port]).
func NewHTTPClient(endpoint string, s Session, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     http.DefaultClient,
		session:  s,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      logging.Nop(),
		resume:   models.NewResume(),
	}
	for _, o := range opts {
		o(c)
	}

	c.unsubscribe = s.Subscribe(func(e session.Event) {
		if e == session.EventLoggedOut {
			c.reset()
		}
	})
	return c
}

// Close detaches the facade from the session.
func (c *HTTPClient) Close() error {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
	return nil
}

func (c *HTTPClient) reset() {
	c.mu.Lock()
	c.student = nil
	c.resume = models.NewResume()
	c.mu.Unlock()
}

func (c *HTTPClient) url(resource string) string {
	return fmt.Sprintf("%s/api/%s", c.endpoint, resource)
}

// do sends one request and decodes a 2xx body into out (which may be nil).
// With auth set, the current bearer token is attached; without a token the
// call fails with common.ErrNoToken and nothing is sent. A non-empty "token"
// field in a 2xx body is saved to the session before out is filled.
func (c *HTTPClient) do(ctx context.Context, method, resource string, body any, auth bool, out any) error {
	var token string
	if auth {
		t, err := c.session.Token(ctx)
		if err != nil {
			return err
		}
		if t == "" {
			return fmt.Errorf("%s: %w", resource, common.ErrNoToken)
		}
		token = t
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", resource, err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(resource), rdr)
	if err != nil {
		return fmt.Errorf("build %s request: %w", resource, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	reqID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, reqID)
	log := c.log.With("request_id", reqID, "method", method, "resource", resource)

	if auth {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	log.Debug(ctx, "sending request")
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, data)
		log.Warn(ctx, "request rejected", "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}
	log.Debug(ctx, "request done", "status", resp.StatusCode)

	if err := c.captureToken(ctx, data); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidResponse, resource, err)
	}
	if err := c.check(out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidResponse, resource, err)
	}
	return nil
}

func (c *HTTPClient) captureToken(ctx context.Context, data []byte) error {
	var tr struct {
		Token string `json:"token"`
	}
	// Array bodies do not unmarshal into tr and carry no token.
	if err := json.Unmarshal(data, &tr); err != nil || tr.Token == "" {
		return nil
	}
	if err := c.session.SaveToken(ctx, tr.Token); err != nil {
		return err
	}
	return nil
}

// check validates a decoded response; slices are validated element-wise.
func (c *HTTPClient) check(out any) error {
	v := reflect.ValueOf(out)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Slice:
		return c.validate.Var(v.Interface(), "dive")
	case reflect.Struct:
		return c.validate.Struct(v.Interface())
	}
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.TokenResponse, error) {
	var tr models.TokenResponse
	if err := c.do(ctx, http.MethodPost, resourceLogin, creds, false, &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}

func (c *HTTPClient) Register(ctx context.Context, creds models.Credentials) (*models.TokenResponse, error) {
	var tr models.TokenResponse
	if err := c.do(ctx, http.MethodPost, resourceRegister, creds, false, &tr); err != nil {
		return nil, err
	}
	return &tr, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.Student, error) {
	var s models.Student
	if err := c.do(ctx, http.MethodGet, resourceProfile, nil, true, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) AddProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, http.MethodPost, resourceAddProfile, profile, true, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetProfile fetches the caller's record and caches it; a resume embedded in
// the record also replaces the cached resume.
func (c *HTTPClient) GetProfile(ctx context.Context) (*models.Student, error) {
	s, err := c.Profile(ctx)
	if err != nil {
		return nil, err
	}

	cached := *s
	c.mu.Lock()
	c.student = &cached
	if s.Resume != nil {
		r := *s.Resume
		c.resume = &r
	}
	c.mu.Unlock()

	return s, nil
}

func (c *HTTPClient) GetProfiles(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := c.do(ctx, http.MethodGet, resourceAllProfiles, nil, true, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// ResubmitResume asks staff to review the student's resume again.
func (c *HTTPClient) ResubmitResume(ctx context.Context, student *models.Student) (*models.Student, error) {
	var s models.Student
	if err := c.do(ctx, http.MethodPost, resourceResubmitResume, student, true, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateResume saves the caller's own resume and caches the result.
func (c *HTTPClient) UpdateResume(ctx context.Context, resume *models.Resume) (*models.Resume, error) {
	r, err := c.postResume(ctx, resume)
	if err != nil {
		return nil, err
	}

	cached := *r
	c.mu.Lock()
	c.resume = &cached
	c.mu.Unlock()

	return r, nil
}

// ReviewResume saves staff changes to someone else's resume. The cached
// resume belongs to the caller and is left alone.
func (c *HTTPClient) ReviewResume(ctx context.Context, resume *models.Resume) (*models.Resume, error) {
	return c.postResume(ctx, resume)
}

func (c *HTTPClient) postResume(ctx context.Context, resume *models.Resume) (*models.Resume, error) {
	var r models.Resume
	if err := c.do(ctx, http.MethodPost, resourceUpdateResume, resume, true, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) Student() *models.Student {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.student == nil {
		return nil
	}
	s := *c.student
	return &s
}

func (c *HTTPClient) Resume() *models.Resume {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r := *c.resume
	return &r
}
