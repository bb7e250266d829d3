package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stylesync-app/stylesync/internal/stylist"
	"github.com/stylesync-app/stylesync/internal/wardrobe"
)

func TestOutfitIdeas(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/outfits" || r.Method != http.MethodPost {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var body map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if _, ok := body["wardrobe"]; !ok {
			t.Error("request missing wardrobe")
		}
		fmt.Fprint(w, `{"success":true,"outfits":[{"outfit_name":"The Monday Minimalist"}]}`)
	}))
	defer server.Close()

	client := New(server.URL)
	outfits, err := client.OutfitIdeas(context.Background(),
		[]wardrobe.Item{{ID: "item-1"}}, &wardrobe.Profile{}, stylist.Filters{})
	if err != nil {
		t.Fatalf("OutfitIdeas: %v", err)
	}
	if !strings.Contains(string(outfits), "Monday Minimalist") {
		t.Errorf("outfits = %s", outfits)
	}
}

func TestClassifySendsMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Errorf("FormFile: %v", err)
			http.Error(w, "bad upload", http.StatusBadRequest)
			return
		}
		defer file.Close()
		if got := header.Header.Get("Content-Type"); got != "image/png" {
			t.Errorf("part content type = %q", got)
		}
		if header.Filename != "kurta.png" {
			t.Errorf("filename = %q", header.Filename)
		}
		fmt.Fprint(w, `{"success":true,"classification":{"category":"ethnic_top","subcategory":"kurta","color":"ivory","pattern":"chikankari","fabric_guess":"cotton","formality":"ethnic_casual","season":"summer","weather_suitability":"hot days","description":"ivory kurta"}}`)
	}))
	defer server.Close()

	client := New(server.URL)
	got, err := client.Classify(context.Background(), []byte("png-bytes"), "image/png", "kurta.png")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got.Category != "ethnic_top" || got.Subcategory != "kurta" {
		t.Errorf("classification = %+v", got)
	}
}

func TestServerErrorSurfacesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"success":false,"error":"Profile is required to generate personalized outfits."}`)
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.OutfitIdeas(context.Background(), []wardrobe.Item{{ID: "x"}}, nil, stylist.Filters{})
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type = %T", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Message, "Profile is required") {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestServerErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.Weather(context.Background(), "Mumbai")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v", err)
	}
	if !strings.Contains(apiErr.Error(), "502") {
		t.Errorf("Error() = %q, want the status mentioned", apiErr.Error())
	}
}

func TestUnreachableServer(t *testing.T) {
	// Grab a port that is guaranteed closed.
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	client := New(addr)
	_, err := client.Weather(context.Background(), "Mumbai")
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("error = %v, want ErrUnreachable", err)
	}
}

func TestRecommendDecodesBothSections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"success":true,"wardrobe_analysis":{"strengths":"basics","gaps":"ethnic"},"recommendations":[{"item_type":"kurta"}]}`)
	}))
	defer server.Close()

	client := New(server.URL)
	got, err := client.Recommend(context.Background(), []wardrobe.Item{{ID: "x"}}, &wardrobe.Profile{})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if !strings.Contains(string(got.WardrobeAnalysis), "basics") {
		t.Errorf("analysis = %s", got.WardrobeAnalysis)
	}
	if !strings.Contains(string(got.Recommendations), "kurta") {
		t.Errorf("recommendations = %s", got.Recommendations)
	}
}
