// Package agent implements the AI business advisor on top of the Gemini
// API. The advisor answers one-shot questions grounded on the reports
// the CLI already renders, it never mutates any file.
package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Advisor is a chat with a small-business bookkeeping advisor. The
// rendered reports are handed to the model as context, so answers stay
// grounded on the actual records.
type Advisor struct {
	ModelName string
	reports   []string
	chat      *genai.Chat
}

// NewAdvisor creates an advisor whose system instruction embeds the
// given markdown reports.
func NewAdvisor(reports ...string) *Advisor {
	return &Advisor{ModelName: DefaultModel, reports: reports}
}

// Start opens the chat session.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
You are a pragmatic advisor for a very small business owner keeping
records of income, expenses, stock, sales and customer debts.

Answer questions using ONLY the reports below. Be concise and concrete;
amounts are already in the owner's currency. When a question cannot be
answered from the reports, say so instead of guessing.

` + strings.Join(a.reports, "\n\n")}}},
	}
	chat, err := client.Chats.Create(ctx, a.ModelName, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the model's text answer.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the advisor")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), nil
}
