package graphql

import (
	"context"
	"sort"

	chatauth "github.com/aegomez/chat-app-auth"
)

// Resolver is the root resolver. It owns no state beyond the service
// it delegates to.
type Resolver struct {
	svc chatauth.Service
}

func NewResolver(svc chatauth.Service) *Resolver {
	return &Resolver{svc: svc}
}

type fieldError struct {
	Field string
	Code  string
}

type operationResult struct {
	Success bool
	ID      *string
	Errors  []fieldError
}

type verifyTokenResult struct {
	Valid    bool
	UserID   *string
	UserName *string
}

type updatePasswordResult struct {
	Success bool
	Error   *string
}

func (r *Resolver) Login(ctx context.Context, args struct{ NameOrEmail, Password string }) *operationResult {
	res := r.svc.Login(ctx, chatauth.LoginRequest{
		NameOrEmail: args.NameOrEmail,
		Password:    args.Password,
	})

	if res.Success {
		if w, ok := responseWriterFrom(ctx); ok {
			setTokenCookie(w, res.Token)
		}
	}

	return newOperationResult(res.Result)
}

func (r *Resolver) Register(ctx context.Context, args struct{ Name, Email, Password, Password2 string }) *operationResult {
	res := r.svc.Register(ctx, chatauth.RegisterRequest{
		Name:      args.Name,
		Email:     args.Email,
		Password:  args.Password,
		Password2: args.Password2,
	})
	return newOperationResult(res)
}

func (r *Resolver) UpdatePassword(ctx context.Context, args struct{ OldPassword, NewPassword string }) *updatePasswordResult {
	res := r.svc.UpdatePassword(ctx, chatauth.UpdatePasswordRequest{
		Token:       authTokenFrom(ctx),
		OldPassword: args.OldPassword,
		NewPassword: args.NewPassword,
	})

	out := &updatePasswordResult{Success: res.Success}
	if res.Error != "" {
		out.Error = &res.Error
	}
	return out
}

func (r *Resolver) Verify(ctx context.Context, args struct{ Token string }) *verifyTokenResult {
	res := r.svc.VerifyToken(ctx, args.Token)
	if !res.Valid {
		return &verifyTokenResult{}
	}
	return &verifyTokenResult{Valid: true, UserID: &res.UserID, UserName: &res.UserName}
}

func newOperationResult(res chatauth.Result) *operationResult {
	out := &operationResult{
		Success: res.Success,
		Errors:  []fieldError{},
	}
	if res.ID != "" {
		out.ID = &res.ID
	}
	for field, code := range res.Errors {
		out.Errors = append(out.Errors, fieldError{Field: field, Code: code})
	}
	// map order is random; keep the response stable
	sort.Slice(out.Errors, func(i, j int) bool {
		return out.Errors[i].Field < out.Errors[j].Field
	})
	return out
}
