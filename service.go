package chatauth

import (
	"context"
	"errors"
	"log/slog"
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) LoginResult
	Register(ctx context.Context, req RegisterRequest) Result
	VerifyToken(ctx context.Context, token string) VerifyResult
	UpdatePassword(ctx context.Context, req UpdatePasswordRequest) PasswordResult
}

type LoginRequest struct {
	NameOrEmail string `json:"nameOrEmail"`
	Password    string `json:"password"`
}

type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

type UpdatePasswordRequest struct {
	Token       string
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Result is the uniform shape every mutating flow returns.
type Result struct {
	Success bool
	Errors  Fields
	ID      string
}

// LoginResult adds the issued token, which the transport turns into
// a cookie and never returns in the response body.
type LoginResult struct {
	Result
	Token string
}

type VerifyResult struct {
	Valid    bool
	UserID   string
	UserName string
}

type PasswordResult struct {
	Success bool
	Error   string
}

type service struct {
	users  Repository
	hasher *Hasher
	tokens *TokenService
	logger *slog.Logger
}

func NewService(users Repository, hasher *Hasher, tokens *TokenService, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Login validates credentials and issues a token. A missing account and
// a wrong password return the same payload.
func (svc *service) Login(ctx context.Context, req LoginRequest) LoginResult {
	v := ValidateLogin(req.NameOrEmail, req.Password)
	if !v.IsValid {
		return LoginResult{Result: Result{Errors: v.Errors}}
	}

	field, value := ByEmail, NormalizeEmail(req.NameOrEmail)
	if v.IsUsername {
		field, value = ByName, NormalizeIdentifier(req.NameOrEmail)
	}

	user, err := svc.users.FindBy(ctx, field, value)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return loginIncorrect()
		}
		svc.logger.ErrorContext(ctx, "login lookup failed", "field", field.String(), "error", err)
		return loginService()
	}

	if !svc.hasher.Verify(req.Password, user.Password) {
		return loginIncorrect()
	}

	token, err := svc.tokens.Issue(user.ID)
	if err != nil {
		svc.logger.ErrorContext(ctx, "token issue failed", "error", err)
		return loginService()
	}

	return LoginResult{
		Result: Result{Success: true, Errors: Fields{}, ID: string(user.ID)},
		Token:  token,
	}
}

func loginIncorrect() LoginResult {
	return LoginResult{Result: Result{Errors: Fields{
		"nameOrEmail": "login.incorrect",
		"password":    "login.incorrect",
	}}}
}

func loginService() LoginResult {
	return LoginResult{Result: Result{Errors: Fields{
		"nameOrEmail": "login.service",
		"password":    "login.service",
	}}}
}

// Register validates input, checks name and email availability and
// stores a new user with a hashed password.
func (svc *service) Register(ctx context.Context, req RegisterRequest) Result {
	v := ValidateRegister(req.Name, req.Email, req.Password, req.Password2)
	if !v.IsValid {
		return Result{Errors: v.Errors}
	}

	name := NormalizeIdentifier(req.Name)
	email := NormalizeEmail(req.Email)
	if email == "" {
		return Result{Errors: Fields{"email": "email.isEmail"}}
	}

	if ok, err := svc.isAvailable(ctx, ByName, name); err != nil {
		return svc.registerService(ctx, err)
	} else if !ok {
		return Result{Errors: Fields{"name": "name.usedName"}}
	}

	if ok, err := svc.isAvailable(ctx, ByEmail, email); err != nil {
		return svc.registerService(ctx, err)
	} else if !ok {
		return Result{Errors: Fields{"email": "email.usedEmail"}}
	}

	user := NewUser(name, email)
	hash, err := svc.hasher.Hash(req.Password)
	if err != nil {
		return svc.registerService(ctx, err)
	}
	user.Password = hash

	if err := svc.users.Store(ctx, user); err != nil {
		// the unique indexes win the race the availability checks can lose
		switch {
		case errors.Is(err, ErrDuplicateName):
			return Result{Errors: Fields{"name": "name.usedName"}}
		case errors.Is(err, ErrDuplicateEmail):
			return Result{Errors: Fields{"email": "email.usedEmail"}}
		}
		return svc.registerService(ctx, err)
	}

	return Result{Success: true, Errors: Fields{}, ID: string(user.ID)}
}

func (svc *service) isAvailable(ctx context.Context, field Field, value string) (bool, error) {
	if _, err := svc.users.FindBy(ctx, field, value); err != nil {
		if errors.Is(err, ErrNotFound) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

func (svc *service) registerService(ctx context.Context, err error) Result {
	svc.logger.ErrorContext(ctx, "register failed", "error", err)
	return Result{Errors: Fields{"name": "register.service"}}
}

// VerifyToken checks a bearer token and resolves it to the user it was
// issued for. Every failure collapses to Valid=false.
func (svc *service) VerifyToken(ctx context.Context, token string) VerifyResult {
	id, err := svc.tokens.Verify(token)
	if err != nil {
		return VerifyResult{}
	}

	user, err := svc.users.FindBy(ctx, ByID, string(id))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			svc.logger.ErrorContext(ctx, "verify lookup failed", "error", err)
		}
		return VerifyResult{}
	}

	return VerifyResult{Valid: true, UserID: string(user.ID), UserName: user.Name}
}

// UpdatePassword replaces the password of the user an authenticated
// token resolves to. Authorization failures and validation failures
// share the response shape but keep distinct codes.
func (svc *service) UpdatePassword(ctx context.Context, req UpdatePasswordRequest) PasswordResult {
	id, err := svc.tokens.Verify(req.Token)
	if err != nil {
		return PasswordResult{Error: "NOT_AUTHORIZED"}
	}

	user, err := svc.users.FindBy(ctx, ByID, string(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return PasswordResult{Error: "NOT_AUTHORIZED"}
		}
		svc.logger.ErrorContext(ctx, "password change lookup failed", "error", err)
		return PasswordResult{Error: "password.service"}
	}

	switch {
	case req.OldPassword == "" || req.NewPassword == "":
		return PasswordResult{Error: "password.required"}
	case len(req.NewPassword) < passwordMinLen || len(req.NewPassword) > passwordMaxLen:
		return PasswordResult{Error: "password.length"}
	case req.OldPassword == req.NewPassword:
		return PasswordResult{Error: "password.unchanged"}
	}

	if !svc.hasher.Verify(req.OldPassword, user.Password) {
		return PasswordResult{Error: "password.incorrect"}
	}

	hash, err := svc.hasher.Hash(req.NewPassword)
	if err != nil {
		svc.logger.ErrorContext(ctx, "password hash failed", "error", err)
		return PasswordResult{Error: "password.service"}
	}

	user.Password = hash
	if err := svc.users.Update(ctx, user); err != nil {
		svc.logger.ErrorContext(ctx, "password update failed", "error", err)
		return PasswordResult{Error: "password.service"}
	}

	return PasswordResult{Success: true}
}
