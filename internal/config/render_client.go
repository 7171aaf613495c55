package config

import (
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	renderBaseURL         = "https://api.render.com/v1"
	metaAccessTokenSecret = "meta_access_token"
)

type SecretStorage interface {
	ListSecrets(serviceID string) (map[string]string, error)
}

type RenderClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewRenderClient(config *Config) *RenderClient {
	return &RenderClient{
		APIKey:     config.Render.APIKey,
		BaseURL:    renderBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ListSecrets lê os secret files do serviço no Render (nome -> conteúdo)
func (c *RenderClient) ListSecrets(serviceID string) (map[string]string, error) {
	url := fmt.Sprintf("%s/services/%s/secret-files?limit=100", c.BaseURL, serviceID)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("config: error listing secrets: %s", body)
	}

	var response []struct {
		SecretFile struct {
			Content string `json:"content"`
			Name    string `json:"name"`
		} `json:"secretFile"`
	}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	secretsMap := make(map[string]string, len(response))
	for _, sf := range response {
		secretsMap[sf.SecretFile.Name] = sf.SecretFile.Content
	}

	return secretsMap, nil
}
