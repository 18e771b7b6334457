package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayush6624/go-chatgpt"
)

type ConstructPayoffExpressionResponse struct {
	Expression string `json:"expression"`
}

type GptRepository interface {
	ConstructPayoffExpression(ctx context.Context, description string) (*ConstructPayoffExpressionResponse, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const prompt = `
You are helping a user write a payoff formula for a European option priced by Monte Carlo simulation. The user will describe the payoff in English. You must output a single formula that computes the cash payoff from the simulated terminal price.

Available names:
- S_T = the simulated asset price at maturity (the only variable)
- K = the strike price
- S0 = the spot price today
- r = the annualized risk-free rate
- pi, e = the usual constants

Available operators: + - * / % ** and comparisons (< <= > >= == !=). A comparison evaluates to 1 or 0, so it can be used arithmetically, e.g. (S_T > K) * 10 pays 10 if the option finishes above the strike.

Available functions (no others exist):
- maximum(a, b), minimum(a, b) - also spelled max/min
- abs(x), exp(x), log(x), sqrt(x)
- clip(x, low, high) - bounds x into [low, high]

Examples:
- vanilla call: maximum(S_T - K, 0)
- vanilla put: maximum(K - S_T, 0)
- capped call, cap 20 above strike: clip(S_T - K, 0, 20)
- cash-or-nothing digital paying 5: (S_T > K) * 5

Output ONLY the formula, with no explanation, no quotes, and no markdown.
`

func (h gptRepositoryHandler) ConstructPayoffExpression(ctx context.Context, description string) (*ConstructPayoffExpressionResponse, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: prompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: description,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to construct payoff expression: %w", err)
	}
	if len(res.Choices) == 0 {
		return nil, fmt.Errorf("gpt returned no choices")
	}

	return &ConstructPayoffExpressionResponse{
		Expression: strings.TrimSpace(res.Choices[0].Message.Content),
	}, nil
}
