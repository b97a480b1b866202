package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"banner-buddy/internal/core/config"
	"banner-buddy/internal/features/banners/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGraphQLProvider(url, token string) *GraphQLProvider {
	return NewGraphQLProvider(config.BannerSourceConfig{
		URL:     url,
		Token:   token,
		Timeout: 5 * time.Second,
	}, config.ProxyConfig{})
}

// TestGraphQLProvider_FetchActiveBanners_Success verifies the query and the record mapping.
func TestGraphQLProvider_FetchActiveBanners_Success(t *testing.T) {
	mockResponse := `{
		"data": {
			"uiapi": {
				"query": {
					"Banner_Buddy__c": {
						"edges": [
							{
								"node": {
									"Id": "a0X000000000001",
									"Name": {"value": "BB-0001"},
									"Start_Date__c": {"value": "2026-10-17"},
									"End_Date__c": {"value": "2026-10-31"},
									"Status__c": {"value": "Active"},
									"Variant__c": {"value": "Warning"},
									"Banner_Title__c": {"value": "Maintenance tonight"},
									"Banner_Description__c": {"value": "Starts at 11:00 PM"},
									"Banner_Message__c": {"value": "Save your work"},
									"Links_To__c": {"value": "https://status.example.com"}
								}
							},
							{
								"node": {
									"Id": "a0X000000000002",
									"Name": {"value": "BB-0002"},
									"Start_Date__c": {"value": "2026-10-01"},
									"End_Date__c": {"value": null},
									"Status__c": {"value": "Active"},
									"Variant__c": {"value": "Info"},
									"Banner_Title__c": {"value": "Release notes"},
									"Banner_Description__c": {"value": null},
									"Banner_Message__c": null,
									"Links_To__c": {"value": null}
								}
							}
						]
					}
				}
			}
		}
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req graphqlRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Contains(t, req.Query, `Status__c: { eq: "Active" }`)
		assert.Contains(t, req.Query, `Start_Date__c: { order: DESC }`)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockResponse))
	}))
	defer server.Close()

	provider := newTestGraphQLProvider(server.URL, "secret-token")
	banners, err := provider.FetchActiveBanners(context.Background())

	require.NoError(t, err)
	require.Len(t, banners, 2)

	assert.Equal(t, domain.Banner{
		ID:          "a0X000000000001",
		Name:        "BB-0001",
		StartDate:   "2026-10-17",
		EndDate:     "2026-10-31",
		Status:      domain.StatusActive,
		Variant:     domain.VariantWarning,
		Title:       "Maintenance tonight",
		Description: "Starts at 11:00 PM",
		Message:     "Save your work",
		LinkURL:     "https://status.example.com",
	}, banners[0])

	assert.Equal(t, "a0X000000000002", banners[1].ID)
	assert.Empty(t, banners[1].EndDate)
	assert.Empty(t, banners[1].Message)
	assert.Empty(t, banners[1].LinkURL)
}

// TestGraphQLProvider_FetchActiveBanners_NoToken verifies no Authorization header is sent without a token.
func TestGraphQLProvider_FetchActiveBanners_NoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"data":{"uiapi":{"query":{"Banner_Buddy__c":{"edges":[]}}}}}`))
	}))
	defer server.Close()

	banners, err := newTestGraphQLProvider(server.URL, "").FetchActiveBanners(context.Background())

	require.NoError(t, err)
	assert.Empty(t, banners)
}

// TestGraphQLProvider_FetchActiveBanners_Errors verifies every failure surfaces as a FetchError.
func TestGraphQLProvider_FetchActiveBanners_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		messages []string
	}{
		{
			name:     "GraphQLErrors",
			status:   http.StatusOK,
			body:     `{"errors":[{"message":"Field Links_To__c is not accessible"},{"message":"Second"}]}`,
			messages: []string{"Field Links_To__c is not accessible", "Second"},
		},
		{
			name:     "Non200",
			status:   http.StatusUnauthorized,
			body:     `{}`,
			messages: []string{"graphql API returned status: 401"},
		},
		{
			name:   "MalformedJSON",
			status: http.StatusOK,
			body:   `{"data":`,
		},
		{
			name:     "NoData",
			status:   http.StatusOK,
			body:     `{}`,
			messages: []string{"graphql response has no data"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			banners, err := newTestGraphQLProvider(server.URL, "t").FetchActiveBanners(context.Background())

			assert.Nil(t, banners)
			var fe *domain.FetchError
			require.ErrorAs(t, err, &fe)
			require.NotEmpty(t, fe.Errors)
			if tt.messages != nil {
				got := make([]string, 0, len(fe.Errors))
				for _, e := range fe.Errors {
					got = append(got, e.Message)
				}
				assert.Equal(t, tt.messages, got)
			}
		})
	}
}

// TestGraphQLProvider_FetchActiveBanners_Unreachable verifies transport failures.
func TestGraphQLProvider_FetchActiveBanners_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := newTestGraphQLProvider(url, "").FetchActiveBanners(context.Background())

	var fe *domain.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Error(), "failed to execute request")
}
