package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"rustour/internal/domain"
	"rustour/internal/domain/models"
	"rustour/internal/utils"
)

// Client is the typed HTTP client for the RusTour backend. TokenSource, when
// set, supplies the bearer token attached to authorized requests; requests go
// out unauthenticated when it returns "".
type Client struct {
	Base        string
	HTTP        *http.Client
	TokenSource func() string
}

func New(base string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		Base: strings.TrimRight(base, "/"),
		HTTP: &http.Client{Timeout: timeout},
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) token() string {
	if c.TokenSource == nil {
		return ""
	}
	return c.TokenSource()
}

// newRequest builds a request with the bearer token attached when present.
func (c *Client) newRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t := c.token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}
	return req, nil
}

// do runs the request and reads the full body. Transport timeouts come back
// as domain.TimeoutError.
func (c *Client) do(req *http.Request) (int, []byte, error) {
	resp, err := c.httpClient().Do(req)
	if err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return 0, nil, domain.TimeoutError{Err: err}
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, nil, domain.TimeoutError{Err: err}
		}
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

func is2xx(status int) bool {
	return status/100 == 2
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates and returns the bearer token. The backend answers with
// either {"token":"..."} or the token as a bare (possibly quoted) string
// body; both shapes are accepted, in that order.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/Auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	status, body, err := c.do(req)
	if err != nil {
		return "", err
	}
	if !is2xx(status) {
		return "", domain.AuthError{Status: status, Message: domain.ServerMessage(status, body)}
	}

	var shape struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &shape); err == nil && shape.Token != "" {
		return shape.Token, nil
	}

	raw := strings.TrimSpace(string(body))
	raw = strings.Trim(raw, `"`)
	if raw != "" {
		return raw, nil
	}

	return "", domain.InvalidResponseError{Endpoint: "/Auth/login"}
}

// RegisterRequest is the registration payload. Role is always "User"; the
// session layer fixes it before sending.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

func (c *Client) Register(ctx context.Context, payload RegisterRequest) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/Auth/register", payload)
	if err != nil {
		return err
	}
	status, body, err := c.do(req)
	if err != nil {
		return err
	}
	if !is2xx(status) {
		return domain.RegistrationError{Status: status, Message: domain.ServerMessage(status, body)}
	}
	return nil
}

// Me fetches the current user's profile.
func (c *Client) Me(ctx context.Context) (models.User, error) {
	var user models.User
	req, err := c.newRequest(ctx, http.MethodGet, "/Users/me", nil)
	if err != nil {
		return user, err
	}
	status, body, err := c.do(req)
	if err != nil {
		return user, err
	}
	if !is2xx(status) {
		return user, domain.ProfileError{Status: status, Message: domain.ServerMessage(status, body)}
	}
	if err := json.Unmarshal(body, &user); err != nil {
		return user, domain.DecodeError{Err: err}
	}
	return user, nil
}

// UpdateUserRequest carries the only mutable profile fields. ID and role stay
// whatever the server holds.
type UpdateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (c *Client) UpdateMe(ctx context.Context, payload UpdateUserRequest) error {
	req, err := c.newRequest(ctx, http.MethodPut, "/Users/me", payload)
	if err != nil {
		return err
	}
	status, body, err := c.do(req)
	if err != nil {
		return err
	}
	if !is2xx(status) {
		return domain.ProfileError{Status: status, Message: domain.ServerMessage(status, body)}
	}
	return nil
}

// Tours fetches the full catalog. The listing endpoint historically emitted
// snake_case keys, so decoding tolerates both key styles.
func (c *Client) Tours(ctx context.Context) ([]models.Tour, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/tours", nil)
	if err != nil {
		return nil, err
	}
	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		return nil, errors.New(domain.ServerMessage(status, body))
	}
	return decodeTours(body)
}

// SearchTours posts the criteria and returns a fresh result list, never
// merged with a previously loaded catalog.
func (c *Client) SearchTours(ctx context.Context, criteria models.SearchCriteria) ([]models.Tour, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/tours/search", criteria)
	if err != nil {
		return nil, err
	}
	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		return nil, domain.SearchError{Status: status, Message: domain.ServerMessage(status, body)}
	}
	return decodeTours(body)
}

// MyBookings fetches the signed-in user's bookings.
func (c *Client) MyBookings(ctx context.Context) ([]models.Booking, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/bookings/my", nil)
	if err != nil {
		return nil, err
	}
	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		return nil, errors.New(domain.ServerMessage(status, body))
	}
	var bookings []models.Booking
	if err := json.Unmarshal(body, &bookings); err != nil {
		var de domain.DecodeError
		if errors.As(err, &de) {
			return nil, de
		}
		return nil, domain.DecodeError{Err: err}
	}
	for i := range bookings {
		bookings[i].Tour.Normalize()
	}
	return bookings, nil
}

type bookingRequest struct {
	TourID      int    `json:"tourId"`
	BookingDate string `json:"bookingDate"`
}

// CreateBooking posts only the tour id and the chosen date. Party size and
// room choice drive client-side display; pricing stays server-side.
func (c *Client) CreateBooking(ctx context.Context, tourID int, date time.Time) error {
	payload := bookingRequest{
		TourID:      tourID,
		BookingDate: utils.FormatAPIDate(date),
	}
	req, err := c.newRequest(ctx, http.MethodPost, "/bookings", payload)
	if err != nil {
		return err
	}
	status, body, err := c.do(req)
	if err != nil {
		return err
	}
	if !is2xx(status) {
		return domain.BookingError{Status: status, Message: domain.ServerMessage(status, body)}
	}
	return nil
}
