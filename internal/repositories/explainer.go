package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"text/template"

	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"

	"mausam-api/config"
	"mausam-api/internal/models"
	"mausam-api/pkg/logger"
)

var (
	ErrInvalidExplainInput  = errors.New("invalid explain input")
	ErrInvalidExplainOutput = errors.New("invalid explain output")
)

const explainPrompt = `You are an AI-powered weather assistant designed to explain weather insights in a simple, understandable way.

Provide a concise explanation of the current weather conditions in {{.Location}}, including the temperature, humidity, wind speed, and overall weather condition.
Explain the potential impact of these conditions on daily life, such as what to wear or any precautions to take.

Current Weather in {{.Location}}:
- Temperature: {{.Temperature}}°C
- Humidity: {{.Humidity}}%
- Wind Speed: {{.WindSpeed}} km/h
- Condition: {{.WeatherCondition}}

Respond with a JSON object of the form {"explanation": "<text>"}.`

var explainTemplate = template.Must(template.New("explain").Parse(explainPrompt))

// Unknown keys are allowed on both sides and dropped when decoding.
var (
	explainInputSchema = map[string]any{
		"type": "object",
		"properties": map[string]any{
			"location":         map[string]any{"type": "string"},
			"temperature":      map[string]any{"type": "number"},
			"humidity":         map[string]any{"type": "number"},
			"windSpeed":        map[string]any{"type": "number"},
			"weatherCondition": map[string]any{"type": "string"},
		},
		"required": []any{"location", "temperature", "humidity", "windSpeed", "weatherCondition"},
	}

	explainOutputSchema = map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{"type": "string"},
		},
		"required": []any{"explanation"},
	}
)

var (
	explainInputValidator  = mustSchema(explainInputSchema)
	explainOutputValidator = mustSchema(explainOutputSchema)
)

func mustSchema(doc map[string]any) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("invalid JSON schema: %v", err))
	}
	return s
}

// GenerativeExplainer turns weather numbers into a short blurb through the
// Gemini generateContent API.
// It makes exactly one request per call: no retry, no cache.
type GenerativeExplainer struct {
	model  string
	client *genai.Client
	// set when the client could not be built, e.g. no API key
	clientErr error
	l         *logger.Logger
}

// NewGenerativeExplainer never fails. A client that cannot be built is
// reported by every Explain call instead, so the rest of the service still
// starts without AI credentials.
func NewGenerativeExplainer(ctx context.Context, cfg config.AIConfig, l *logger.Logger, httpClient *http.Client) *GenerativeExplainer {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	g := &GenerativeExplainer{
		model: cfg.Model,
		l:     l,
	}

	g.client, g.clientErr = genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL: strings.TrimRight(cfg.BaseURL, "/"),
		},
	})
	if g.clientErr != nil {
		l.Warning("generative client unavailable, explanations will fail", map[string]any{
			"model": cfg.Model,
			"err":   g.clientErr,
		})
	}

	return g
}

func (g *GenerativeExplainer) Name() string {
	return "generative-" + g.model
}

func (g *GenerativeExplainer) Explain(ctx context.Context, in models.ExplainInput) (models.ExplainOutput, error) {
	var out models.ExplainOutput

	if err := ValidateExplainInput(in); err != nil {
		return out, err
	}
	if g.clientErr != nil {
		return out, fmt.Errorf("failed to create generative client: %w", g.clientErr)
	}

	var prompt bytes.Buffer
	if err := explainTemplate.Execute(&prompt, in); err != nil {
		return out, fmt.Errorf("failed to render prompt: %w", err)
	}

	g.l.Info("making explain API request", map[string]any{
		"model":    g.model,
		"location": in.Location,
	})

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt.String()), &genai.GenerateContentConfig{
		ResponseMIMEType:   "application/json",
		ResponseJsonSchema: explainOutputSchema,
	})
	if err != nil {
		return out, fmt.Errorf("failed to generate content: %w", err)
	}

	g.l.Info("received explain API response", map[string]any{
		"model":      g.model,
		"candidates": len(resp.Candidates),
	})

	return DecodeExplainOutput(resp.Text())
}

// ValidateExplainInput checks the request against the input JSON schema.
// Values that cannot be encoded as JSON, such as NaN, fail too.
func ValidateExplainInput(in models.ExplainInput) error {
	result, err := explainInputValidator.Validate(gojsonschema.NewGoLoader(in))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidExplainInput, err)
	}
	if !result.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidExplainInput, schemaErrors(result))
	}
	return nil
}

// DecodeExplainOutput parses the candidate text and checks it against the
// output JSON schema. The text must be exactly one JSON document.
func DecodeExplainOutput(text string) (models.ExplainOutput, error) {
	var out models.ExplainOutput

	// the schema loader reads only the first value, so trailing bytes are
	// rejected here
	if !json.Valid([]byte(text)) {
		return out, fmt.Errorf("%w: candidate text is not a JSON document", ErrInvalidExplainOutput)
	}

	result, err := explainOutputValidator.Validate(gojsonschema.NewStringLoader(text))
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidExplainOutput, err)
	}
	if !result.Valid() {
		return out, fmt.Errorf("%w: %s", ErrInvalidExplainOutput, schemaErrors(result))
	}

	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidExplainOutput, err)
	}
	out.Explanation = strings.TrimSpace(out.Explanation)

	return out, nil
}

func schemaErrors(result *gojsonschema.Result) string {
	errs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errs = append(errs, fmt.Sprintf("%s: %s", desc.Context().String(), desc.Description()))
	}
	return strings.Join(errs, "; ")
}
