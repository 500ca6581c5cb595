package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jortizdev/stockvista-api/internal/application/dto"
	"github.com/jortizdev/stockvista-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GroqService implementa LLMService.
var _ ports.LLMService = (*GroqService)(nil)

const (
	groqChatCompletionsURL = "https://api.groq.com/openai/v1/chat/completions"

	groqSystemPrompt = `Eres un analista de inventario senior. Recibes un snapshot JSON del
inventario (productos con stock, precio, nivel de reorden, estado y días sin venta; más
estadísticas agregadas). Devuelve un análisis breve en texto plano con:
- Riesgos de quiebre de stock (productos críticos o agotados) y qué reponer primero.
- Capital inmovilizado en stock muerto y qué hacer con él.
- Dos o tres acciones concretas ordenadas por impacto.
No inventes productos ni cifras que no estén en el snapshot. Máximo 300 palabras.`
)

// GroqService adaptador que implementa LLMService usando la API de Groq
// (compatible con el protocolo chat/completions de OpenAI).
// Usa net/http de la librería estándar de Go; no requiere SDK.
type GroqService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGroqService construye el adaptador.
// model suele ser "llama-3.3-70b-versatile".
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewGroqService(apiKey, model string) *GroqService {
	return &GroqService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además su propio context.WithTimeout.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo chat/completions ──────────────────────

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// GenerateInventoryInsights serializa el snapshot de inventario, lo envía al
// modelo y devuelve la narrativa resultante tal cual.
func (s *GroqService) GenerateInventoryInsights(ctx context.Context, req dto.InsightRequest) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GROQ_API_KEY no configurado")
	}

	snapshot, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("AI: serializar snapshot: %w", err)
	}

	payload := groqRequest{
		Model: s.model,
		Messages: []groqMessage{
			{Role: "system", Content: groqSystemPrompt},
			{Role: "user", Content: string(snapshot)},
		},
		MaxTokens:   1024,
		Temperature: 0.3,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, groqChatCompletionsURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	// Manejar errores HTTP de la API de Groq
	if resp.StatusCode != http.StatusOK {
		var errResp groqResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Groq error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Groq HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var groqResp groqResponse
	if err := json.Unmarshal(rawBody, &groqResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Groq: %w", err)
	}

	if len(groqResp.Choices) == 0 {
		return "", fmt.Errorf("AI: el modelo devolvió respuesta sin choices")
	}

	return groqResp.Choices[0].Message.Content, nil
}
