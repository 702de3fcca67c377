package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"weatherworks/internal/app/backend"
	"weatherworks/internal/app/session"
	"weatherworks/internal/configs"
	"weatherworks/internal/handler"
)

// fixture wires a stub authentication backend and the full front-end router
// into in-memory test servers.
type fixture struct {
	frontend *httptest.Server
	backend  *httptest.Server

	// backendStatus is the HTTP status the stub backend answers with.
	backendStatus atomic.Int64

	// backendCalls counts login requests that reached the stub backend.
	backendCalls atomic.Int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{}
	f.backendStatus.Store(http.StatusCreated)

	f.backend = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.backendCalls.Add(1)
		w.WriteHeader(int(f.backendStatus.Load()))
	}))
	t.Cleanup(f.backend.Close)

	cfg := &configs.AppConfig{
		Environment:    "development",
		Port:           8080,
		AllowedOrigins: []string{},
		BackendBaseURL: f.backend.URL,
		LoginRate:      1000,
		LoginBurst:     1000,
	}

	deps := &handler.AppDeps{
		Config:   cfg,
		Sessions: session.NewManager(),
		Backend:  backend.NewClient(f.backend.URL),
	}

	f.frontend = httptest.NewServer(handler.Router(deps))
	t.Cleanup(f.frontend.Close)

	return f
}

// browser returns an HTTP client with a cookie jar, following redirects like a browser.
func browser(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar.New: %v", err)
	}
	return &http.Client{Jar: jar}
}

// noRedirect returns a cookie-carrying client that stops at the first response.
func noRedirect(t *testing.T) *http.Client {
	t.Helper()

	c := browser(t)
	c.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return c
}

func readBody(t *testing.T, res *http.Response) string {
	t.Helper()

	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func TestLoginPageRendersEmptyNameField(t *testing.T) {
	f := newFixture(t)

	res, err := browser(t).Get(f.frontend.URL + "/login")
	if err != nil {
		t.Fatalf("GET /login: %v", err)
	}
	body := readBody(t, res)

	if res.StatusCode != http.StatusOK {
		t.Fatalf("GET /login status = %d, want 200", res.StatusCode)
	}
	if !strings.Contains(body, `name="userName" value=""`) {
		t.Fatal("login page does not render an empty name field")
	}
}

func TestBlankNameSubmissionIsNoOp(t *testing.T) {
	f := newFixture(t)

	form := url.Values{"userName": {"   "}}
	res, err := browser(t).PostForm(f.frontend.URL+"/login", form)
	if err != nil {
		t.Fatalf("POST /login: %v", err)
	}
	body := readBody(t, res)

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (re-rendered start screen)", res.StatusCode)
	}
	if !strings.Contains(body, `name="userName"`) {
		t.Fatal("blank submission did not land back on the start screen")
	}
	if got := f.backendCalls.Load(); got != 0 {
		t.Fatalf("backend was called %d times for a blank name, want 0", got)
	}
}

func TestFormLoginNavigatesToWeather(t *testing.T) {
	f := newFixture(t)
	client := browser(t)

	form := url.Values{"userName": {"Jane Doe"}}
	res, err := client.PostForm(f.frontend.URL+"/login", form)
	if err != nil {
		t.Fatalf("POST /login: %v", err)
	}
	body := readBody(t, res)

	if res.StatusCode != http.StatusOK {
		t.Fatalf("final status = %d, want 200 on the weather view", res.StatusCode)
	}
	if res.Request.URL.Path != "/weather" {
		t.Fatalf("landed on %s, want /weather", res.Request.URL.Path)
	}
	if !strings.Contains(body, "Jane Doe") {
		t.Fatal("weather view does not greet the logged-in user")
	}
	if got := f.backendCalls.Load(); got != 1 {
		t.Fatalf("backend was called %d times, want exactly 1", got)
	}
}

func TestFormLoginNonCreatedStatusStaysOnStartScreen(t *testing.T) {
	f := newFixture(t)
	f.backendStatus.Store(http.StatusOK)

	form := url.Values{"userName": {"Jane Doe"}}
	res, err := noRedirect(t).PostForm(f.frontend.URL+"/login", form)
	if err != nil {
		t.Fatalf("POST /login: %v", err)
	}
	body := readBody(t, res)

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (re-rendered start screen, no redirect)", res.StatusCode)
	}
	if !strings.Contains(body, `name="userName"`) {
		t.Fatal("non-created login did not land back on the start screen")
	}
}

func TestFormLoginUnauthorizedStaysOnStartScreen(t *testing.T) {
	f := newFixture(t)
	f.backendStatus.Store(http.StatusUnauthorized)

	form := url.Values{"userName": {"Jane Doe"}}
	res, err := noRedirect(t).PostForm(f.frontend.URL+"/login", form)
	if err != nil {
		t.Fatalf("POST /login: %v", err)
	}
	readBody(t, res)

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200: auth failures are silent to the user", res.StatusCode)
	}
}

func TestJSONLoginReportsRedirect(t *testing.T) {
	f := newFixture(t)

	res, err := browser(t).Post(
		f.frontend.URL+"/login",
		"application/json",
		strings.NewReader(`{"userName":"Jane Doe"}`),
	)
	if err != nil {
		t.Fatalf("POST /login (JSON): %v", err)
	}
	body := readBody(t, res)

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}

	var out struct {
		Code int `json:"code"`
		Data struct {
			LoggedIn bool   `json:"loggedIn"`
			Redirect string `json:"redirect"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		t.Fatalf("response %q is not valid JSON: %v", body, err)
	}
	if out.Code != 0 || !out.Data.LoggedIn || out.Data.Redirect != "/weather" {
		t.Fatalf("response = %+v, want code 0, loggedIn true, redirect /weather", out)
	}
}

func TestJSONLoginNonCreatedStatus(t *testing.T) {
	f := newFixture(t)
	f.backendStatus.Store(http.StatusOK)

	res, err := browser(t).Post(
		f.frontend.URL+"/login",
		"application/json",
		strings.NewReader(`{"userName":"Jane Doe"}`),
	)
	if err != nil {
		t.Fatalf("POST /login (JSON): %v", err)
	}
	body := readBody(t, res)

	var out struct {
		Data struct {
			LoggedIn bool   `json:"loggedIn"`
			Redirect string `json:"redirect"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		t.Fatalf("response %q is not valid JSON: %v", body, err)
	}
	if out.Data.LoggedIn || out.Data.Redirect != "" {
		t.Fatalf("response = %+v, want loggedIn false and no redirect", out)
	}
}

func TestJSONLoginMalformedBodyIsRejected(t *testing.T) {
	f := newFixture(t)

	res, err := browser(t).Post(
		f.frontend.URL+"/login",
		"application/json",
		strings.NewReader(`{"userName":`),
	)
	if err != nil {
		t.Fatalf("POST /login (JSON): %v", err)
	}
	readBody(t, res)

	if got := f.backendCalls.Load(); got != 0 {
		t.Fatalf("backend was called %d times for a malformed body, want 0", got)
	}
}

func TestWeatherViewRequiresLogin(t *testing.T) {
	f := newFixture(t)

	res, err := noRedirect(t).Get(f.frontend.URL + "/weather")
	if err != nil {
		t.Fatalf("GET /weather: %v", err)
	}
	readBody(t, res)

	if res.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303 back to the start screen", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != "/login" {
		t.Fatalf("Location = %q, want /login", loc)
	}
}

func TestLogoutDropsSession(t *testing.T) {
	f := newFixture(t)
	client := browser(t)

	form := url.Values{"userName": {"Jane Doe"}}
	res, err := client.PostForm(f.frontend.URL+"/login", form)
	if err != nil {
		t.Fatalf("POST /login: %v", err)
	}
	readBody(t, res)

	res, err = client.PostForm(f.frontend.URL+"/logout", url.Values{})
	if err != nil {
		t.Fatalf("POST /logout: %v", err)
	}
	readBody(t, res)

	stopper := noRedirect(t)
	stopper.Jar = client.Jar
	res, err = stopper.Get(f.frontend.URL + "/weather")
	if err != nil {
		t.Fatalf("GET /weather after logout: %v", err)
	}
	readBody(t, res)

	if res.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303 after logout", res.StatusCode)
	}
}
