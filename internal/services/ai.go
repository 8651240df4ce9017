package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

var (
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
	ErrAIEmptyDraft           = errors.New("AI did not return a draft")
)

type AIService struct {
	client *openai.Client
	model  string
}

type AnnouncementDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewAIService returns a service without a client when apiKey is empty.
func NewAIService(apiKey string) *AIService {
	if apiKey == "" {
		return &AIService{}
	}
	return NewAIServiceWithConfig(openai.DefaultConfig(apiKey))
}

func NewAIServiceWithConfig(cfg openai.ClientConfig) *AIService {
	return &AIService{
		client: openai.NewClientWithConfig(cfg),
		model:  openai.GPT4o,
	}
}

func (s *AIService) Enabled() bool {
	return s != nil && s.client != nil
}

// DraftAnnouncement asks the model for a short church announcement about topic
func (s *AIService) DraftAnnouncement(ctx context.Context, churchName, topic string) (*AnnouncementDraft, error) {
	if !s.Enabled() {
		return nil, ErrAIServiceNotConfigured
	}

	today := time.Now().Format("2006-01-02")
	prompt := fmt.Sprintf(`Você escreve avisos curtos para o mural da igreja %q.

Data de hoje: %s

Assunto do aviso:
%s

Responda somente com um objeto JSON no formato:
{
  "title": "título curto do aviso",
  "content": "texto do aviso em até três parágrafos"
}

Regras:
- Escreva em português do Brasil, em tom acolhedor
- Não invente datas, horários ou locais que não estejam no assunto
- Não inclua nada além do JSON`, churchName, today, topic)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.5,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, ErrAIEmptyDraft
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimSuffix(strings.TrimPrefix(content, "```"), "```")

	var draft AnnouncementDraft
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}
	if strings.TrimSpace(draft.Title) == "" && strings.TrimSpace(draft.Content) == "" {
		return nil, ErrAIEmptyDraft
	}

	return &draft, nil
}
