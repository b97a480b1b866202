package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"banner-buddy/internal/core/config"
	"banner-buddy/internal/core/httpclient"
	"banner-buddy/internal/features/banners/domain"
)

// activeBannersQuery selects the published banners, newest first.
const activeBannersQuery = `query GetActiveBanners {
  uiapi {
    query {
      Banner_Buddy__c(
        where: { Status__c: { eq: "Active" } }
        orderBy: { Start_Date__c: { order: DESC } }
      ) {
        edges {
          node {
            Id
            Name { value }
            Start_Date__c { value }
            End_Date__c { value }
            Status__c { value }
            Variant__c { value }
            Banner_Title__c { value }
            Banner_Description__c { value }
            Banner_Message__c { value }
            Links_To__c { value }
          }
        }
      }
    }
  }
}`

// GraphQLProvider implements ports.BannerProvider against a GraphQL UI API endpoint.
type GraphQLProvider struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// url is the GraphQL endpoint.
	url string
}

// NewGraphQLProvider creates a new instance of GraphQLProvider.
// The bearer token and outbound proxy are applied to every request.
func NewGraphQLProvider(src config.BannerSourceConfig, px config.ProxyConfig) *GraphQLProvider {
	opts := []httpclient.Option{
		httpclient.WithProxy(px.Settings()),
		httpclient.WithHeader("Accept", "application/json"),
	}
	if src.Token != "" {
		opts = append(opts, httpclient.WithHeader("Authorization", "Bearer "+src.Token))
	}

	return &GraphQLProvider{
		client: httpclient.NewClient(src.Timeout, opts...),
		url:    src.URL,
	}
}

// FetchActiveBanners runs the active-banner query and maps the result to domain banners.
func (p *GraphQLProvider) FetchActiveBanners(ctx context.Context) ([]domain.Banner, error) {
	body, err := json.Marshal(graphqlRequest{Query: activeBannersQuery, Variables: map[string]any{}})
	if err != nil {
		return nil, domain.NewFetchError(fmt.Errorf("failed to encode query: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewFetchError(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, domain.NewFetchError(fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewFetchError(fmt.Errorf("graphql API returned status: %d", resp.StatusCode))
	}

	var gqlResp graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, domain.NewFetchError(fmt.Errorf("failed to decode response: %w", err))
	}

	if len(gqlResp.Errors) > 0 {
		messages := make([]string, 0, len(gqlResp.Errors))
		for _, e := range gqlResp.Errors {
			messages = append(messages, e.Message)
		}
		return nil, domain.NewFetchError(errors.New("graphql query returned errors"), messages...)
	}

	if gqlResp.Data == nil {
		return nil, domain.NewFetchError(errors.New("graphql response has no data"))
	}

	return mapToDomain(gqlResp.Data.UIAPI.Query.Banners.Edges), nil
}

// mapToDomain converts query edges into domain banners, keeping their order.
func mapToDomain(edges []bannerEdge) []domain.Banner {
	banners := make([]domain.Banner, 0, len(edges))
	for _, edge := range edges {
		n := edge.Node
		banners = append(banners, domain.Banner{
			ID:          n.ID,
			Name:        n.Name.String(),
			StartDate:   n.StartDate.String(),
			EndDate:     n.EndDate.String(),
			Status:      domain.Status(n.Status.String()),
			Variant:     domain.Variant(n.Variant.String()),
			Title:       n.Title.String(),
			Description: n.Description.String(),
			Message:     n.Message.String(),
			LinkURL:     n.LinksTo.String(),
		})
	}
	return banners
}

// internal structs for mapping

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data   *graphqlData   `json:"data"`
	Errors []graphqlError `json:"errors"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlData struct {
	UIAPI struct {
		Query struct {
			Banners struct {
				Edges []bannerEdge `json:"edges"`
			} `json:"Banner_Buddy__c"`
		} `json:"query"`
	} `json:"uiapi"`
}

type bannerEdge struct {
	Node bannerNode `json:"node"`
}

// bannerNode mirrors a record node; every field except Id is wrapped in {value}.
type bannerNode struct {
	ID          string     `json:"Id"`
	Name        fieldValue `json:"Name"`
	StartDate   fieldValue `json:"Start_Date__c"`
	EndDate     fieldValue `json:"End_Date__c"`
	Status      fieldValue `json:"Status__c"`
	Variant     fieldValue `json:"Variant__c"`
	Title       fieldValue `json:"Banner_Title__c"`
	Description fieldValue `json:"Banner_Description__c"`
	Message     fieldValue `json:"Banner_Message__c"`
	LinksTo     fieldValue `json:"Links_To__c"`
}

// fieldValue is a nullable {value} wrapper.
type fieldValue struct {
	Value *string `json:"value"`
}

func (f fieldValue) String() string {
	if f.Value == nil {
		return ""
	}
	return *f.Value
}
