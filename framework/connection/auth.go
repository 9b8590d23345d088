package connection

import (
	"context"
	"errors"
	"os"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"google.golang.org/api/option"

	"github.com/gigfolio/console-api/common"
	"github.com/gigfolio/console-api/logger"
)

const serviceAccountEnv = "FIREBASE_SERVICE_ACCOUNT"

var (
	ErrFirebaseInitialization = errors.New("firebase initialization error")

	errNoAuthToken       = errors.New("no authorization token found")
	errInvalidAuthHeader = errors.New("invalid authorization header found")
)

type AuthClient struct {
	fbAuth *auth.Client
}

// NewAuth initializes the firebase app used for ID token verification.
// Credentials come from the service account JSON in env when present,
// otherwise application default credentials are used.
func NewAuth(ctx context.Context, log *logger.Logging) (*AuthClient, error) {
	logger := log.Logger(ctx)

	var opts []option.ClientOption
	if sa := os.Getenv(serviceAccountEnv); sa != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(sa)))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: common.ProjectID}, opts...)
	if err != nil {
		logger.Errorf("%s: %s", ErrFirebaseInitialization, err)
		return nil, ErrFirebaseInitialization
	}

	fbAuth, err := app.Auth(ctx)
	if err != nil {
		logger.Errorf("%s: %s", ErrFirebaseInitialization, err)
		return nil, ErrFirebaseInitialization
	}

	return &AuthClient{
		fbAuth,
	}, nil
}

// VerifyIDToken verifies the request's firebase ID token. The token is read
// from the Authorization header, with a fallback to the "token" query
// parameter so that direct download links can authenticate.
func (c *AuthClient) VerifyIDToken(ctx *gin.Context) (*auth.Token, error) {
	idToken, err := extractIDToken(ctx)
	if err != nil {
		return nil, err
	}

	token, err := c.fbAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, err
	}

	return token, nil
}

func extractIDToken(ctx *gin.Context) (string, error) {
	authHeader := ctx.Request.Header.Get("Authorization")
	if authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return "", errInvalidAuthHeader
		}

		return strings.Split(authHeader, " ")[1], nil
	}

	if token := ctx.Query("token"); token != "" {
		return token, nil
	}

	return "", errNoAuthToken
}
