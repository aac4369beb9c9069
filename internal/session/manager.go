// Package session owns the token and current-user lifecycle.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"rustour/internal/api"
	"rustour/internal/domain/models"
	"rustour/internal/notify"
	"rustour/internal/tokenstore"
	"rustour/internal/utils"
)

type State int

const (
	SignedOut State = iota
	SignedIn
	Expired
)

func (s State) String() string {
	switch s {
	case SignedIn:
		return "signed-in"
	case Expired:
		return "expired"
	default:
		return "signed-out"
	}
}

// Snapshot is a consistent view of the session. User is nil unless a token is
// present.
type Snapshot struct {
	State State
	Token string
	User  *models.User
}

// Manager serializes all writes to the single session state behind one mutex.
// Network calls run outside the lock; concurrent entry points are
// last-writer-wins.
type Manager struct {
	mu    sync.Mutex
	state State
	token string
	user  *models.User

	client *api.Client
	store  tokenstore.Store
	relay  *notify.Relay
}

// NewManager restores the persisted token. A live token resumes the signed-in
// session and refreshes the profile in the background; an expired one parks
// the session in Expired until sign-out or a fresh sign-in.
func NewManager(client *api.Client, store tokenstore.Store, relay *notify.Relay) *Manager {
	m := &Manager{
		state:  SignedOut,
		client: client,
		store:  store,
		relay:  relay,
	}
	client.TokenSource = m.Token

	token, err := store.Load()
	if err != nil {
		utils.LogEvent("", "session", "restore", "token load failed: "+err.Error())
		return m
	}
	if token == "" {
		return m
	}

	m.token = token
	if tokenExpired(token) {
		m.state = Expired
		return m
	}

	m.state = SignedIn
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		m.LoadCurrentUser(ctx)
	}()
	return m
}

// Token returns the current bearer token, empty when signed out.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Snapshot returns an atomic view of state, token and user. A signed-in
// session whose token has since expired reports Expired.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == SignedIn && tokenExpired(m.token) {
		m.state = Expired
	}

	snap := Snapshot{State: m.state, Token: m.token}
	if m.user != nil {
		u := *m.user
		snap.User = &u
	}
	return snap
}

// SignIn exchanges credentials for a token, persists it and moves the session
// to SignedIn. The follow-up profile fetch is best-effort; its failure never
// fails the sign-in.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	token, err := m.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := m.store.Save(token); err != nil {
		utils.LogEvent("", "session", "sign_in", "token persist failed: "+err.Error())
	}

	m.mu.Lock()
	m.token = token
	m.state = SignedIn
	m.mu.Unlock()

	utils.LogEvent("", "session", "sign_in", "email="+email)
	m.LoadCurrentUser(ctx)
	return nil
}

// Register creates the account, then signs in with the same credentials since
// registration itself returns no usable session. The full name splits on the
// first space; a single word leaves the last name empty.
func (m *Manager) Register(ctx context.Context, fullName, email, password string) error {
	firstName, lastName := utils.SplitFullName(fullName)

	err := m.client.Register(ctx, api.RegisterRequest{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
		Role:      "User",
	})
	if err != nil {
		return err
	}

	if err := m.SignIn(ctx, email, password); err != nil {
		return err
	}

	if m.relay != nil {
		m.relay.Post("Добро пожаловать 👋", "Аккаунт успешно создан!")
	}
	return nil
}

// SignOut clears the persisted token and resets the session. Safe from any
// state; token and user are never cleared separately.
func (m *Manager) SignOut() {
	if err := m.store.Clear(); err != nil {
		utils.LogEvent("", "session", "sign_out", "token clear failed: "+err.Error())
	}

	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.state = SignedOut
	m.mu.Unlock()

	utils.LogEvent("", "session", "sign_out", "session cleared")
}

// LoadCurrentUser refreshes the profile. Failures are logged and leave the
// current user untouched; a session torn down mid-flight drops the result.
func (m *Manager) LoadCurrentUser(ctx context.Context) {
	user, err := m.client.Me(ctx)
	if err != nil {
		utils.LogEvent("", "session", "load_user", "profile fetch failed: "+err.Error())
		return
	}

	m.mu.Lock()
	if m.token != "" {
		m.user = &user
	}
	m.mu.Unlock()
}

// UpdateProfile puts the mutable fields and on success adopts the draft
// optimistically, without a re-fetch. ID and role stay whatever the prior
// user held.
func (m *Manager) UpdateProfile(ctx context.Context, updated models.User) error {
	err := m.client.UpdateMe(ctx, api.UpdateUserRequest{
		FirstName: updated.FirstName,
		LastName:  updated.LastName,
		Email:     updated.Email,
	})
	if err != nil {
		return err
	}

	m.mu.Lock()
	if m.user != nil {
		updated.ID = m.user.ID
		updated.Role = m.user.Role
	}
	m.user = &updated
	m.mu.Unlock()

	utils.LogEvent("", "session", "update_profile", "email="+updated.Email)
	return nil
}

// tokenExpired inspects the JWT exp claim without verifying the signature.
// Opaque tokens or tokens without exp count as live; the server is the
// authority either way.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
