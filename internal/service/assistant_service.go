package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"fieldmate/internal/ai"
	"fieldmate/internal/analytics"
	"fieldmate/internal/apperr"
	"fieldmate/internal/state"
)

// --- DTOs ---

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type ScanBillResponse struct {
	// ProductName is a pre-fill guess; blank when nothing was readable.
	ProductName string `json:"productName"`
}

// --- Interface ---

// AssistantService is the boundary to the text-completion collaborator.
// Failures never corrupt persisted state; they surface as
// assistant-unavailable errors or, for bill scans, a blank guess.
type AssistantService interface {
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
	ScanBill(ctx context.Context, image []byte, mimeType string) ScanBillResponse
}

type assistantService struct {
	cache *state.Cache
	now   func() time.Time
}

func NewAssistantService(cache *state.Cache) AssistantService {
	return &assistantService{cache: cache, now: time.Now}
}

// --- Implementation ---

func (s *assistantService) Chat(ctx context.Context, req ChatRequest) (ChatResponse, error) {
	apiKey, err := s.apiKey()
	if err != nil {
		return ChatResponse{}, err
	}

	today := s.now().Format(dateLayout)
	sales := s.cache.Sales()
	instruction := fmt.Sprintf(
		"You are a helpful sales assistant for a store employee. Provide concise, practical advice. "+
			"Today is %s. Today's sale value is %s across %d units; month-to-date value is %s.",
		today,
		analytics.DayValue(sales, today),
		analytics.DayQuantity(sales, today),
		analytics.MonthToDateValue(sales, s.now()),
	)

	reply, err := ai.Complete(ctx, apiKey, instruction, req.Message)
	if err != nil {
		return ChatResponse{}, apperr.Wrap(apperr.CodeAssistant, "assistant unavailable", err)
	}
	return ChatResponse{Reply: reply}, nil
}

func (s *assistantService) ScanBill(ctx context.Context, image []byte, mimeType string) ScanBillResponse {
	apiKey, err := s.apiKey()
	if err != nil {
		// Match failure is non-fatal: the entry form field stays blank.
		return ScanBillResponse{}
	}
	guess, err := ai.GuessProductName(ctx, apiKey, image, mimeType)
	if err != nil {
		return ScanBillResponse{}
	}
	return ScanBillResponse{ProductName: guess}
}

func (s *assistantService) apiKey() (string, error) {
	if key := s.cache.Settings().AIAPIKey; key != "" {
		return key, nil
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key, nil
	}
	return "", apperr.New(apperr.CodeAssistant, "configure your AI API key in settings first")
}
