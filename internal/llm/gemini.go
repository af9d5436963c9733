package llm

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	genai "google.golang.org/genai"

	"datachat/internal/charttool"
)

var ErrEmptyResponse = errors.New("llm: empty response from model")

// Reply is one model turn: plain text, or a request to invoke one of the
// declared chart functions. Exactly one side is set.
type Reply struct {
	Text string
	Call *charttool.FunctionCall
}

// ChatModel is what the gateway needs from a chat backend: a single turn
// with the chart tools declared.
type ChatModel interface {
	Name() string
	Chat(ctx context.Context, system, user string, tools []charttool.ToolSpec) (Reply, error)
	Close() error
}

// GeminiClient is a thin wrapper around the official genai client that
// declares the chart tools for function calling.
type GeminiClient struct {
	cli   *genai.Client
	model string
	rl    *rpsLimiter
}

func NewGeminiClient(ctx context.Context, model string) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	// Optional RPS limiter via env: LLM_RPS and LLM_BURST.
	var rps float64
	var burst int
	if v := os.Getenv("LLM_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			rps = f
		}
	}
	if v := os.Getenv("LLM_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			burst = n
		}
	}
	return &GeminiClient{cli: cli, model: model, rl: newRPSLimiter(rps, burst)}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }

func (g *GeminiClient) Close() error {
	if g.rl != nil {
		g.rl.Stop()
	}
	return nil
}

// Chat sends the system instruction plus one user message and surfaces either
// the model's text or its first function call.
func (g *GeminiClient) Chat(ctx context.Context, system, user string, tools []charttool.ToolSpec) (Reply, error) {
	config := &genai.GenerateContentConfig{}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	if decls := toFunctionDeclarations(tools); len(decls) > 0 {
		config.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}

	log.Printf("LLM request (%s): %d prompt bytes", g.model, len(system)+len(user))

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		// Respect the RPS limiter per attempt (each API call consumes a token).
		if err := g.rl.Acquire(ctx); err != nil {
			lastErr = err
			break
		}
		resp, err := g.cli.Models.GenerateContent(ctx, g.model,
			[]*genai.Content{genai.NewContentFromText(user, genai.RoleUser)},
			config,
		)
		if err != nil {
			lastErr = err
		} else {
			reply, err := replyFrom(resp)
			if err != nil {
				lastErr = err
			} else {
				return reply, nil
			}
		}
		time.Sleep(time.Duration(300*(1<<attempt)) * time.Millisecond)
	}
	return Reply{}, lastErr
}

// toFunctionDeclarations maps tool specs to genai function declarations,
// passing the JSON Schema through untouched.
func toFunctionDeclarations(tools []charttool.ToolSpec) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))
	for _, t := range tools {
		if t.Name == "" {
			continue
		}
		decl := &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
		}
		if len(t.InputSchema) > 0 {
			decl.ParametersJsonSchema = json.RawMessage(t.InputSchema)
		}
		decls = append(decls, decl)
	}
	return decls
}

func replyFrom(resp *genai.GenerateContentResponse) (Reply, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return Reply{}, ErrEmptyResponse
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		if fc := part.FunctionCall; fc != nil {
			return Reply{Call: &charttool.FunctionCall{Name: fc.Name, Arguments: fc.Args}}, nil
		}
		if part.Text != "" {
			return Reply{Text: part.Text}, nil
		}
	}
	return Reply{}, ErrEmptyResponse
}
