package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"mausam-api/config"
	"mausam-api/internal/models"
	"mausam-api/pkg/logger"
)

var delhiInput = models.ExplainInput{
	Location:         "Delhi",
	Temperature:      32,
	Humidity:         45,
	WindSpeed:        10,
	WeatherCondition: "Sunny",
}

func candidateBody(text string) string {
	resp := map[string]any{
		"candidates": []any{
			map[string]any{"content": map[string]any{"role": "model", "parts": []any{map[string]any{"text": text}}}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func newTestExplainer(t *testing.T, handler http.HandlerFunc) (*GenerativeExplainer, *atomic.Int32) {
	t.Helper()
	calls := &atomic.Int32{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	cfg := config.AIConfig{BaseURL: server.URL + "/", Model: "gemini-test", APIKey: "k"}
	return NewGenerativeExplainer(context.Background(), cfg, logger.NewNop(), server.Client()), calls
}

func TestGenerativeExplainer_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody struct {
		Contents []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
		GenerationConfig struct {
			ResponseMimeType   string         `json:"responseMimeType"`
			ResponseJsonSchema map[string]any `json:"responseJsonSchema"`
		} `json:"generationConfig"`
	}

	explainer, calls := newTestExplainer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, candidateBody(`{"explanation":"  Hot and hazy. Stay hydrated.  "}`))
	})

	out, err := explainer.Explain(context.Background(), delhiInput)
	require.NoError(t, err)

	assert.Equal(t, "Hot and hazy. Stay hydrated.", out.Explanation)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "/v1beta/models/gemini-test:generateContent", gotPath)
	assert.Equal(t, "k", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.NotEmpty(t, gotBody.Contents[0].Parts)
	prompt := gotBody.Contents[0].Parts[0].Text
	assert.Contains(t, prompt, "Current Weather in Delhi:")
	assert.Contains(t, prompt, "- Temperature: 32°C")
	assert.Contains(t, prompt, "- Humidity: 45%")
	assert.Contains(t, prompt, "- Wind Speed: 10 km/h")
	assert.Contains(t, prompt, "- Condition: Sunny")
	assert.Equal(t, "application/json", gotBody.GenerationConfig.ResponseMimeType)
	assert.Equal(t, []any{"explanation"}, gotBody.GenerationConfig.ResponseJsonSchema["required"])
}

func TestGenerativeExplainer_HTTPErrorIsNotRetried(t *testing.T) {
	explainer, calls := newTestExplainer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := explainer.Explain(context.Background(), delhiInput)
	require.Error(t, err)

	var apiErr genai.APIError
	require.True(t, errors.As(err, &apiErr), err.Error())
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Code)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGenerativeExplainer_SchemaInvalidOutput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no candidates", `{"candidates":[]}`},
		{"text is not json", candidateBody("It is sunny.")},
		{"missing explanation", candidateBody(`{"summary":"x"}`)},
		{"wrong type", candidateBody(`{"explanation":42}`)},
		{"null explanation", candidateBody(`{"explanation":null}`)},
		{"not an object", candidateBody(`["Hot day."]`)},
		{"trailing garbage", candidateBody(`{"explanation":"Hot day."} trailing garbage {`)},
		{"two documents", candidateBody(`{"explanation":"a"}{"explanation":"b"}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			explainer, _ := newTestExplainer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := explainer.Explain(context.Background(), delhiInput)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidExplainOutput), err.Error())
		})
	}
}

func TestDecodeExplainOutput_Accepts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain", `{"explanation":"Hot day."}`, "Hot day."},
		{"extra keys are dropped", `{"explanation":"Hot day.","confidence":0.9}`, "Hot day."},
		{"empty explanation", `{"explanation":""}`, ""},
		{"surrounding whitespace", "\n {\"explanation\":\" Hot day. \"} \n", "Hot day."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := DecodeExplainOutput(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Explanation)
		})
	}
}

func TestGenerativeExplainer_MalformedEnvelope(t *testing.T) {
	explainer, _ := newTestExplainer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>")
	})

	_, err := explainer.Explain(context.Background(), delhiInput)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate content")
}

func TestGenerativeExplainer_InvalidInputSkipsCall(t *testing.T) {
	explainer, calls := newTestExplainer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	in := delhiInput
	in.Temperature = math.NaN()
	_, err := explainer.Explain(context.Background(), in)
	require.ErrorIs(t, err, ErrInvalidExplainInput)
	assert.Zero(t, calls.Load())
}

func TestGenerativeExplainer_NoAPIKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	calls := &atomic.Int32{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	t.Cleanup(server.Close)

	cfg := config.AIConfig{BaseURL: server.URL, Model: "gemini-test"}
	explainer := NewGenerativeExplainer(context.Background(), cfg, logger.NewNop(), server.Client())

	_, err := explainer.Explain(context.Background(), delhiInput)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create generative client")
	assert.Zero(t, calls.Load())
}

func TestValidateExplainInput(t *testing.T) {
	assert.NoError(t, ValidateExplainInput(delhiInput))

	// strings may be empty, numbers may be any finite value
	in := delhiInput
	in.WeatherCondition = ""
	in.Temperature = -40
	assert.NoError(t, ValidateExplainInput(in))

	in = delhiInput
	in.Humidity = math.NaN()
	assert.ErrorIs(t, ValidateExplainInput(in), ErrInvalidExplainInput)

	in = delhiInput
	in.WindSpeed = math.Inf(1)
	assert.ErrorIs(t, ValidateExplainInput(in), ErrInvalidExplainInput)
}
