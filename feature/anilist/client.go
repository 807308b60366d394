package anilist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"strings"

	"media-scraper/core/provider"
	"media-scraper/core/record"
	"media-scraper/core/utils"
	"media-scraper/feature/anilist/models"

	"github.com/gofiber/fiber/v2"
)

// Client fetches media from the AniList GraphQL API.
type Client struct {
	url       string
	perPage   int
	newPages  int
	transport *provider.Transport
}

// New creates an AniList client.
func New(cfg provider.Config) provider.Provider {
	perPage := cfg.PerPage
	if perPage <= 0 || perPage > maxPerPage {
		perPage = maxPerPage
	}

	return &Client{
		url:       cfg.AniListURL,
		perPage:   perPage,
		newPages:  cfg.NewPages,
		transport: provider.NewTransport(cfg),
	}
}

func (c *Client) Name() string {
	return provider.DatasourceAniList
}

// Fetch walks the catalog by id. With fetchAll it goes from the oldest entry
// to the end, otherwise it reads the newest pages only.
func (c *Client) Fetch(ctx context.Context, startPage int, mediaType provider.MediaType, fetchAll bool) iter.Seq2[record.Record, error] {
	sort, maxPages := sortDescending, c.newPages
	if fetchAll {
		sort, maxPages = sortAscending, 0
	}

	return provider.Paginate(ctx, startPage, maxPages, func(ctx context.Context, page int) ([]record.Record, bool, error) {
		return c.page(ctx, page, mediaType, sort)
	})
}

func (c *Client) page(ctx context.Context, page int, mediaType provider.MediaType, sort string) ([]record.Record, bool, error) {
	req := models.PageRequest{
		Query: pageQuery,
		Variables: models.PageVariables{
			Page:    page,
			PerPage: c.perPage,
			Type:    strings.ToUpper(string(mediaType)),
			Sort:    []string{sort},
		},
	}

	body, err := c.transport.Do(ctx, func() *fiber.Agent {
		return fiber.Post(c.url).JSON(req)
	})
	if err != nil {
		return nil, false, err
	}

	var resp models.PageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, false, fmt.Errorf("failed to decode anilist page: %w", err)
	}
	if len(resp.Errors) > 0 {
		return nil, false, graphQLError(resp.Errors)
	}

	records := make([]record.Record, 0, len(resp.Data.Page.Media))
	for _, raw := range resp.Data.Page.Media {
		rec, err := toRecord(raw)
		if err != nil {
			return nil, false, err
		}
		records = append(records, rec)
	}

	return records, resp.Data.Page.PageInfo.HasNextPage, nil
}

// toRecord keeps the whole media object as metadata.
func toRecord(raw json.RawMessage) (record.Record, error) {
	meta, err := record.Decode(raw)
	if err != nil {
		return record.Record{}, fmt.Errorf("invalid anilist media: %w", err)
	}

	id := utils.ToString(meta["id"])
	if id == "" {
		return record.Record{}, errors.New("anilist media without id")
	}

	var title string
	if t, ok := meta["title"].(map[string]any); ok {
		title = utils.FirstString(t, "romaji", "english", "native")
	}

	return record.Record{ID: id, Title: title, Metadata: meta}, nil
}

func graphQLError(errs []models.GraphQLError) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return fmt.Errorf("anilist: %s", strings.Join(msgs, "; "))
}
