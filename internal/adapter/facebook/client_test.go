package facebook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(configs.Facebook{
		AccessToken: "token-1",
		AdAccountID: "act_42",
		APIVersion:  "v19.0",
		BaseURL:     srv.URL,
	})
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(configs.Facebook{AdAccountID: "act_42"})
	require.ErrorIs(t, err, domain.ErrMissingCredentials)

	_, err = NewClient(configs.Facebook{AccessToken: "token-1"})
	require.ErrorIs(t, err, domain.ErrMissingCredentials)
}

func TestCreateCampaign(t *testing.T) {
	var gotPath string
	var gotBody port.CampaignCreateReq
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, "token-1", r.URL.Query().Get("access_token"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "camp-123"})
	}))

	id, err := client.CreateCampaign(context.Background(), port.CampaignCreateReq{
		Name:                "Summer Sale",
		Objective:           "OUTCOME_SALES",
		Status:              "PAUSED",
		SpecialAdCategories: []string{},
	})
	require.NoError(t, err)
	require.Equal(t, "camp-123", id)
	require.Equal(t, "/v19.0/act_42/campaigns", gotPath)
	require.Equal(t, "Summer Sale", gotBody.Name)
	require.Equal(t, "PAUSED", gotBody.Status)
}

func TestCreateEntityBodyLevelErrorWithHTTPSuccess(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// HTTP 200 with a body-level error structure
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "(#100) Invalid objective", "code": 100},
		})
	}))

	_, err := client.CreateAdSet(context.Background(), port.AdSetCreateReq{})
	var creationErr *domain.CreationError
	require.ErrorAs(t, err, &creationErr)
	require.Equal(t, "ad set", creationErr.Entity)
	require.Equal(t, "(#100) Invalid objective", creationErr.Remote)
}

func TestCreateEntityMissingID(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	_, err := client.CreateAd(context.Background(), port.AdCreateReq{})
	var creationErr *domain.CreationError
	require.ErrorAs(t, err, &creationErr)
	require.Contains(t, creationErr.Remote, "success")
}

func TestUploadImageNamedKey(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v19.0/act_42/adimages", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("source")
		require.NoError(t, err)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"images": map[string]any{header.Filename: map[string]string{"hash": "abc123"}},
		})
	}))

	hash, err := client.UploadImage(context.Background(), "img.jpg", []byte{0xFF, 0xD8})
	require.NoError(t, err)
	require.Equal(t, "abc123", hash)
}

func TestUploadImagePositionalFallback(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the platform keyed the image under a different name
		_ = json.NewEncoder(w).Encode(map[string]any{
			"images": map[string]any{"renamed.jpg": map[string]string{"hash": "fallback-hash"}},
		})
	}))

	hash, err := client.UploadImage(context.Background(), "img.jpg", []byte{0xFF})
	require.NoError(t, err)
	require.Equal(t, "fallback-hash", hash)
}

func TestUploadImageHashMissing(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"images":{}}`))
	}))

	_, err := client.UploadImage(context.Background(), "img.jpg", []byte{0xFF})
	require.ErrorIs(t, err, domain.ErrImageHashMissing)
}

func TestUploadVideo(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v19.0/act_42/advideos", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"vid-7"}`))
	}))

	id, err := client.UploadVideo(context.Background(), "clip.mp4", []byte{0x00})
	require.NoError(t, err)
	require.Equal(t, "vid-7", id)
}

func TestVideoStatus(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v19.0/vid-7", r.URL.Path)
		require.Equal(t, "status,thumbnails", r.URL.Query().Get("fields"))
		_, _ = w.Write([]byte(`{"status":{"video_status":"ready"},"thumbnails":{"data":[{"uri":"https://cdn/t.jpg"}]}}`))
	}))

	status, err := client.VideoStatus(context.Background(), "vid-7")
	require.NoError(t, err)
	require.True(t, status.Ready())
	require.Equal(t, "https://cdn/t.jpg", status.ThumbnailURI)
}

func TestVideoStatusNotReadyWithoutThumbnail(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":{"video_status":"ready"},"thumbnails":{"data":[]}}`))
	}))

	status, err := client.VideoStatus(context.Background(), "vid-7")
	require.NoError(t, err)
	require.False(t, status.Ready())
}

func TestCampaignInsights(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v19.0/camp-1/insights", r.URL.Path)
		require.Equal(t, "last_30d", r.URL.Query().Get("date_preset"))
		_, _ = w.Write([]byte(`{"data":[{"impressions":"1200","clicks":"34","spend":"56.78"}]}`))
	}))

	insights, err := client.CampaignInsights(context.Background(), "camp-1")
	require.NoError(t, err)
	require.NotNil(t, insights)
	require.Equal(t, "1200", insights.Impressions)
	require.Equal(t, "34", insights.Clicks)
}

func TestCampaignInsightsEmpty(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))

	insights, err := client.CampaignInsights(context.Background(), "camp-1")
	require.NoError(t, err)
	require.Nil(t, insights)
}

func TestListPages(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v19.0/me/accounts", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[{"id":"p1","name":"My Salon"}]}`))
	}))

	pages, err := client.ListPages(context.Background())
	require.NoError(t, err)
	require.Equal(t, []port.Page{{ID: "p1", Name: "My Salon"}}, pages)
}

func TestGetSurfacesGraphError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid OAuth access token"}}`))
	}))

	_, err := client.ListPages(context.Background())
	require.ErrorContains(t, err, "Invalid OAuth access token")
}
