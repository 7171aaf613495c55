package bedrock

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/alikitto/ad-dash/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const anthropicVersion = "bedrock-2023-05-31"

var ErrEmptyCompletion = errors.New("bedrock: model returned no text")

type Integrator interface {
	Complete(ctx context.Context, systemPrompt, userContent string) (string, error)
}

// ModelInvoker é a parte do bedrockruntime.Client usada aqui
type ModelInvoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

type BedrockIntegrator struct {
	cfg    config.Bedrock
	client ModelInvoker
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type invokeRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	System           string    `json:"system,omitempty"`
	Messages         []message `json:"messages"`
	Temperature      float64   `json:"temperature,omitempty"`
}

type invokeResponse struct {
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// New carrega as credenciais AWS pela cadeia padrão na região configurada
func New(ctx context.Context, cfg config.Bedrock) (*BedrockIntegrator, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("bedrock: failed to load aws config: %w", err)
	}

	return NewWithClient(cfg, bedrockruntime.NewFromConfig(awsCfg)), nil
}

func NewWithClient(cfg config.Bedrock, client ModelInvoker) *BedrockIntegrator {
	return &BedrockIntegrator{
		cfg:    cfg,
		client: client,
	}
}

func (b *BedrockIntegrator) Complete(ctx context.Context, systemPrompt, userContent string) (string, error) {
	maxTokens := b.cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 2000
	}

	body, err := json.Marshal(invokeRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        maxTokens,
		System:           systemPrompt,
		Messages: []message{
			{Role: "user", Content: []contentBlock{{Type: "text", Text: userContent}}},
		},
		Temperature: 0.5,
	})
	if err != nil {
		return "", fmt.Errorf("bedrock: failed to encode request: %w", err)
	}

	output, err := b.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(b.cfg.ModelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("bedrock: invoke model: %w", err)
	}

	var response invokeResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return "", fmt.Errorf("bedrock: failed to decode response: %w", err)
	}

	var text strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	logrus.WithFields(logrus.Fields{
		"model":         b.cfg.ModelID,
		"input_tokens":  response.Usage.InputTokens,
		"output_tokens": response.Usage.OutputTokens,
		"stop_reason":   response.StopReason,
	}).Debug("bedrock: completion finished")

	if text.Len() == 0 {
		return "", ErrEmptyCompletion
	}

	return text.String(), nil
}
