package graphql

import (
	"context"
	"net/http"
	"strings"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	chatauth "github.com/aegomez/chat-app-auth"
)

const (
	tokenCookie    = "token"
	bearerPrefix   = "Bearer "
	tokenCookieAge = 24 * time.Hour
)

type contextKey int

const (
	responseWriterKey contextKey = iota
	authTokenKey
)

// NewHandler wires the schema to a resolver and exposes it over HTTP.
// The response writer and the cookie-carried token travel through the
// request context, so the login resolver can set the token cookie and
// updatePassword can read it.
func NewHandler(svc chatauth.Service) http.Handler {
	schema := graphql.MustParseSchema(Schema, NewResolver(svc), graphql.UseFieldResolvers())
	h := &relay.Handler{Schema: schema}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), responseWriterKey, w)
		ctx = context.WithValue(ctx, authTokenKey, tokenFromCookie(r))
		h.ServeHTTP(w, r.WithContext(ctx))
	})
}

func responseWriterFrom(ctx context.Context) (http.ResponseWriter, bool) {
	w, ok := ctx.Value(responseWriterKey).(http.ResponseWriter)
	return w, ok
}

func authTokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(authTokenKey).(string)
	return token
}

func tokenFromCookie(r *http.Request) string {
	c, err := r.Cookie(tokenCookie)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(c.Value, bearerPrefix)
}

func setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookie,
		Value:    bearerPrefix + token,
		Path:     "/",
		MaxAge:   int(tokenCookieAge.Seconds()),
		HttpOnly: true,
	})
}
