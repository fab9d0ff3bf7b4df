package auth

import (
	"context"
	"os"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

var JWTKey = jwtKey()

func jwtKey() []byte {
	if key := os.Getenv("JWT_KEY"); key != "" {
		return []byte(key)
	}
	return []byte("bookburst-dev-key")
}

type Profile struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Claims struct {
	jwt.RegisteredClaims
	Profile Profile `json:"profile"`
}

type ctxKey struct{}

type authInfo struct {
	username string
	role     string
}

func SetAuthContext(ctx context.Context, username, role string) context.Context {
	return context.WithValue(ctx, ctxKey{}, authInfo{username: username, role: role})
}

func GetUserName(ctx context.Context) (string, error) {
	info, ok := ctx.Value(ctxKey{}).(authInfo)
	if !ok || info.username == "" {
		return "", errors.New("no authenticated user")
	}
	return info.username, nil
}

// GetUserNameOptional is used on public routes where an identity may or may not
// be attached.
func GetUserNameOptional(ctx context.Context) string {
	info, _ := ctx.Value(ctxKey{}).(authInfo)
	return info.username
}
