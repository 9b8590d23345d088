package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"

	"github.com/gigfolio/console-api/common"
	"github.com/gigfolio/console-api/firma/domain"
	"github.com/gigfolio/console-api/logger"
)

const (
	baseURLEnv = "FIRMA_BASE_URL"
	apiKeyEnv  = "FIRMA_API_KEY"
)

// Config holds the Firma provider credentials. Resolved lazily so that a
// deployment without e-signature support only fails when the feature is used.
type Config struct {
	BaseURL string `validate:"required,url"`
	APIKey  string `validate:"required"`
}

type FirmaService struct {
	loggerProvider logger.Provider
	client         *resty.Client

	configOnce sync.Once
	config     *Config
	configErr  error
}

func NewFirmaService(log logger.Provider) *FirmaService {
	return &FirmaService{
		loggerProvider: log,
		client:         resty.New(),
	}
}

func (s *FirmaService) getConfig() (*Config, error) {
	s.configOnce.Do(func() {
		config := &Config{
			BaseURL: common.GetEnv(baseURLEnv, ""),
			APIKey:  common.GetEnv(apiKeyEnv, ""),
		}

		if err := validator.New().Struct(config); err != nil {
			s.configErr = domain.ErrNotConfigured
			return
		}

		s.config = config
	})

	return s.config, s.configErr
}

// GetSigningRequest fetches the provider's view of a signing request.
func (s *FirmaService) GetSigningRequest(ctx context.Context, firmaID string) (domain.SigningRequest, error) {
	config, err := s.getConfig()
	if err != nil {
		return nil, err
	}

	var signingRequest domain.SigningRequest

	res, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(config.APIKey).
		SetResult(&signingRequest).
		Get(fmt.Sprintf("%s/v1/signing-requests/%s", config.BaseURL, firmaID))
	if err != nil {
		return nil, err
	}

	if res.IsError() {
		return nil, fmt.Errorf("firma signing request fetch failed with status %d", res.StatusCode())
	}

	return signingRequest, nil
}

// SendSigningRequest asks the provider to dispatch the signing request to
// its recipients.
func (s *FirmaService) SendSigningRequest(ctx context.Context, firmaID string) error {
	config, err := s.getConfig()
	if err != nil {
		return err
	}

	res, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(config.APIKey).
		Post(fmt.Sprintf("%s/v1/signing-requests/%s/send", config.BaseURL, firmaID))
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrSigningRequestSend, err)
	}

	if res.IsError() {
		return fmt.Errorf("%w: status %d: %s", domain.ErrSigningRequestSend, res.StatusCode(), res.String())
	}

	return nil
}

// ListTemplates returns the provider's template list untouched.
func (s *FirmaService) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	config, err := s.getConfig()
	if err != nil {
		return nil, err
	}

	var templates []domain.Template

	res, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(config.APIKey).
		SetResult(&templates).
		Get(fmt.Sprintf("%s/v1/templates", config.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrTemplatesFetch, err)
	}

	if res.IsError() {
		return nil, fmt.Errorf("%w: status %d", domain.ErrTemplatesFetch, res.StatusCode())
	}

	return templates, nil
}
