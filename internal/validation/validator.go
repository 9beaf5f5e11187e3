package validation

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var venueLink = regexp.MustCompile(`href="/venues/(\d+)"`)

// SiteValidator smoke-checks a running Fyyur server from the outside.
type SiteValidator struct {
	baseURL string
	client  *http.Client
}

func NewSiteValidator(baseURL string) *SiteValidator {
	return &SiteValidator{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 15 * time.Second,
			// redirects are asserted, not followed
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

type pageCheck struct {
	path   string
	status int
	text   string
}

var readOnlyChecks = []pageCheck{
	{path: "/", status: http.StatusOK, text: "Fyyur"},
	{path: "/venues", status: http.StatusOK},
	{path: "/artists", status: http.StatusOK},
	{path: "/shows", status: http.StatusOK},
	{path: "/venues/create", status: http.StatusOK, text: `name="seeking_talent"`},
	{path: "/artists/create", status: http.StatusOK, text: `name="seeking_venue"`},
	{path: "/shows/create", status: http.StatusOK, text: `name="start_time"`},
	{path: "/health", status: http.StatusOK, text: `"status":"ok"`},
	{path: "/venues/not-a-number", status: http.StatusNotFound},
	{path: "/no-such-page", status: http.StatusNotFound},
}

// ValidatePages requests every read-only page and checks its status.
func (v *SiteValidator) ValidatePages() error {
	slog.Info("Checking pages...", "base_url", v.baseURL)

	for _, check := range readOnlyChecks {
		body, status, err := v.get(check.path)
		if err != nil {
			return err
		}
		if status != check.status {
			return fmt.Errorf("GET %s: expected %d, got %d", check.path, check.status, status)
		}
		if check.text != "" && !strings.Contains(body, check.text) {
			return fmt.Errorf("GET %s: response does not contain %q", check.path, check.text)
		}
	}

	slog.Info("Pages are valid", "checked", len(readOnlyChecks))
	return nil
}

// ValidateVenueLifecycle lists, finds, and deletes a throwaway venue.
func (v *SiteValidator) ValidateVenueLifecycle() error {
	name := "Smoke Check " + uuid.New().String()[:8]
	slog.Info("Checking venue lifecycle...", "name", name)

	form := url.Values{
		"name":    {name},
		"city":    {"San Francisco"},
		"state":   {"CA"},
		"address": {"1 Market Street"},
		"genres":  {"Jazz"},
	}
	_, status, err := v.post("/venues/create", form)
	if err != nil {
		return err
	}
	if status != http.StatusSeeOther {
		return fmt.Errorf("POST /venues/create: expected 303, got %d", status)
	}

	body, status, err := v.post("/venues/search", url.Values{"search_term": {name}})
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("POST /venues/search: expected 200, got %d", status)
	}
	match := venueLink.FindStringSubmatch(body)
	if match == nil {
		return fmt.Errorf("POST /venues/search: created venue %q not found", name)
	}

	path := "/venues/" + match[1]
	if _, status, err = v.get(path); err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("GET %s: expected 200, got %d", path, status)
	}

	if _, status, err = v.do(http.MethodDelete, path, nil); err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("DELETE %s: expected 200, got %d", path, status)
	}

	if _, status, err = v.get(path); err != nil {
		return err
	}
	if status != http.StatusNotFound {
		return fmt.Errorf("GET %s after delete: expected 404, got %d", path, status)
	}

	slog.Info("Venue lifecycle is valid")
	return nil
}

func (v *SiteValidator) get(path string) (string, int, error) {
	return v.do(http.MethodGet, path, nil)
}

func (v *SiteValidator) post(path string, form url.Values) (string, int, error) {
	return v.do(http.MethodPost, path, form)
}

func (v *SiteValidator) do(method, path string, form url.Values) (string, int, error) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequest(method, v.baseURL+path, body)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create request: %w", err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("%s %s: failed to read body: %w", method, path, err)
	}
	return string(data), resp.StatusCode, nil
}
