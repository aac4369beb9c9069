// Package apitest runs an in-process stand-in for the RusTour backend so the
// client packages can be tested against real HTTP.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret = []byte("apitest-secret")

// TokenShape selects how /Auth/login returns the token; the real backend has
// shipped all three shapes over time.
type TokenShape int

const (
	TokenJSON TokenShape = iota
	TokenRaw
	TokenQuoted
)

type userRecord struct {
	ID           int
	FirstName    string
	LastName     string
	Email        string
	Role         string
	PasswordHash string
}

// Server is the fake backend. Payload fields are raw JSON bodies returned
// verbatim so tests control the exact wire shape.
type Server struct {
	*httptest.Server

	TokenShape TokenShape
	TokenTTL   time.Duration

	mu     sync.Mutex
	users  map[string]*userRecord
	nextID int

	ToursStatus int
	ToursBody   string

	SearchStatus int
	SearchBody   string

	BookingsStatus int
	BookingsBody   string

	BookingStatus   int
	LastBookingBody string
}

func New() *Server {
	s := &Server{
		TokenTTL:       24 * time.Hour,
		users:          map[string]*userRecord{},
		nextID:         1,
		ToursStatus:    http.StatusOK,
		ToursBody:      "[]",
		SearchStatus:   http.StatusOK,
		SearchBody:     "[]",
		BookingsStatus: http.StatusOK,
		BookingsBody:   "[]",
		BookingStatus:  http.StatusCreated,
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(cors.Default())

	apiGroup := r.Group("/api")
	{
		auth := apiGroup.Group("/Auth")
		auth.POST("/login", s.login)
		auth.POST("/register", s.register)

		apiGroup.GET("/Users/me", s.me)
		apiGroup.PUT("/Users/me", s.updateMe)

		apiGroup.GET("/tours", s.tours)
		apiGroup.POST("/tours/search", s.search)

		apiGroup.GET("/bookings/my", s.myBookings)
		apiGroup.POST("/bookings", s.createBooking)
	}

	s.Server = httptest.NewServer(r)
	return s
}

// Base is the API origin the client should point at.
func (s *Server) Base() string {
	return s.URL + "/api"
}

// AddUser seeds an account and returns its id.
func (s *Server) AddUser(firstName, lastName, email, password, role string) int {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.users[email] = &userRecord{
		ID:           id,
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
	}
	return id
}

// IssueToken mints a token directly, bypassing login. A negative ttl yields
// an already-expired token.
func IssueToken(email, role string, ttl time.Duration) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  email,
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	})
	signed, _ := token.SignedString(jwtSecret)
	return signed
}

func (s *Server) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid payload")
		return
	}

	s.mu.Lock()
	user, ok := s.users[req.Email]
	s.mu.Unlock()
	if !ok {
		c.String(http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.String(http.StatusUnauthorized, "Invalid credentials")
		return
	}

	signed := IssueToken(user.Email, user.Role, s.TokenTTL)

	switch s.TokenShape {
	case TokenRaw:
		c.String(http.StatusOK, signed)
	case TokenQuoted:
		c.String(http.StatusOK, `"`+signed+`"`)
	default:
		c.JSON(http.StatusOK, gin.H{"token": signed})
	}
}

func (s *Server) register(c *gin.Context) {
	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Role      string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid payload")
		return
	}

	s.mu.Lock()
	_, exists := s.users[req.Email]
	s.mu.Unlock()
	if exists {
		c.String(http.StatusBadRequest, "email already registered")
		return
	}

	s.AddUser(req.FirstName, req.LastName, req.Email, req.Password, req.Role)
	c.Status(http.StatusCreated)
}

// authedUser resolves the bearer token to a seeded account.
func (s *Server) authedUser(c *gin.Context) (*userRecord, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.String(http.StatusUnauthorized, "missing bearer token")
		return nil, false
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return jwtSecret, nil
	})
	if err != nil {
		c.String(http.StatusUnauthorized, "invalid token")
		return nil, false
	}

	email, _ := claims["sub"].(string)
	s.mu.Lock()
	user, ok := s.users[email]
	s.mu.Unlock()
	if !ok {
		c.String(http.StatusUnauthorized, "unknown user")
		return nil, false
	}
	return user, true
}

func (s *Server) me(c *gin.Context) {
	user, ok := s.authedUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"email":     user.Email,
		"role":      user.Role,
	})
}

func (s *Server) updateMe(c *gin.Context) {
	user, ok := s.authedUser(c)
	if !ok {
		return
	}
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid payload")
		return
	}

	s.mu.Lock()
	delete(s.users, user.Email)
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	s.users[user.Email] = user
	s.mu.Unlock()

	c.Status(http.StatusNoContent)
}

func (s *Server) tours(c *gin.Context) {
	if _, ok := s.authedUser(c); !ok {
		return
	}
	s.respondRaw(c, s.ToursStatus, s.ToursBody)
}

func (s *Server) search(c *gin.Context) {
	s.respondRaw(c, s.SearchStatus, s.SearchBody)
}

func (s *Server) myBookings(c *gin.Context) {
	if _, ok := s.authedUser(c); !ok {
		return
	}
	s.respondRaw(c, s.BookingsStatus, s.BookingsBody)
}

func (s *Server) createBooking(c *gin.Context) {
	if _, ok := s.authedUser(c); !ok {
		return
	}
	raw, err := c.GetRawData()
	if err != nil {
		c.String(http.StatusBadRequest, "unreadable body")
		return
	}

	s.mu.Lock()
	s.LastBookingBody = string(raw)
	status := s.BookingStatus
	s.mu.Unlock()

	if status/100 != 2 {
		c.String(status, "booking rejected")
		return
	}
	c.Status(status)
}

func (s *Server) respondRaw(c *gin.Context, status int, body string) {
	contentType := "application/json"
	if status/100 != 2 {
		contentType = "text/plain"
	}
	c.Data(status, contentType, []byte(body))
}
