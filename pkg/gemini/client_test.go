package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"scheduling-assistant/pkg/gemini"
)

func TestBuildExtractionSystemInstruction(t *testing.T) {
	prompt := gemini.BuildExtractionSystemInstruction("2024-03-10")

	if !strings.Contains(prompt, "appointment scheduling assistant") {
		t.Errorf("prompt missing system context")
	}
	if !strings.Contains(prompt, "2024-03-10") {
		t.Errorf("prompt missing today's date")
	}
}

func TestAppointmentDetailsSchema(t *testing.T) {
	schema := gemini.AppointmentDetailsSchema()

	if schema.Type != gemini.TypeObject {
		t.Fatalf("expected OBJECT schema, got %s", schema.Type)
	}

	for _, field := range []string{"title", "date", "time", "attendees", "isReadyToSchedule", "clarificationQuestion"} {
		if _, ok := schema.Properties[field]; !ok {
			t.Errorf("schema missing field %q", field)
		}
	}

	if schema.Properties["attendees"].Items == nil || schema.Properties["attendees"].Items.Type != gemini.TypeString {
		t.Errorf("attendees must be an array of strings")
	}

	// The schema must serialize with the wire field names Gemini expects.
	raw, err := json.Marshal(schema)
	if err != nil {
		t.Fatalf("marshal schema: %v", err)
	}
	if !strings.Contains(string(raw), `"properties"`) || !strings.Contains(string(raw), `"isReadyToSchedule"`) {
		t.Errorf("unexpected schema serialization: %s", raw)
	}
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		text := req.Contents[0].Parts[0].Text
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "{\"title\":\"Lunch with Sam\",\"isReadyToSchedule\":true}" }
						],
						"role": "model"
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)

	t.Run("Success Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			SystemInstruction: &gemini.Content{
				Parts: []gemini.Part{{Text: gemini.BuildExtractionSystemInstruction("2024-03-10")}},
			},
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "Lunch with Sam tomorrow at noon"}}},
			},
			GenerationConfig: &gemini.GenerationConfig{
				ResponseMIMEType: "application/json",
				ResponseSchema:   gemini.AppointmentDetailsSchema(),
			},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Candidates) != 1 {
			t.Fatalf("expected 1 candidate")
		}

		var details gemini.AppointmentDetails
		if err := json.Unmarshal([]byte(resp.Candidates[0].Content.Parts[0].Text), &details); err != nil {
			t.Fatalf("candidate text is not valid details JSON: %v", err)
		}
		if details.Title != "Lunch with Sam" || !details.IsReadyToSchedule {
			t.Errorf("unexpected details: %+v", details)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		}

		_, err := client.GenerateContent(context.Background(), req)
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Bad API Key", func(t *testing.T) {
		c2 := gemini.NewClient("wrong-key")
		c2.SetAPIURL(ts.URL)

		req := gemini.GenerateRequest{
			Contents: []gemini.Content{
				{Parts: []gemini.Part{{Text: "hello"}}},
			},
		}

		if _, err := c2.GenerateContent(context.Background(), req); err == nil {
			t.Fatalf("expected error from 401 response")
		}
	})
}
