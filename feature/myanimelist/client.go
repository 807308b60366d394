package myanimelist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"net/url"
	"strconv"
	"strings"

	"media-scraper/core/provider"
	"media-scraper/core/record"
	"media-scraper/core/utils"
	"media-scraper/feature/myanimelist/models"

	"github.com/gofiber/fiber/v2"
)

const (
	// maxLimit is the largest page size Jikan accepts.
	maxLimit = 25

	sortAscending  = "asc"
	sortDescending = "desc"
)

// Client fetches MyAnimeList entries through the Jikan v4 REST API.
type Client struct {
	baseURL   string
	limit     int
	newPages  int
	transport *provider.Transport
}

// New creates a MyAnimeList client.
func New(cfg provider.Config) provider.Provider {
	limit := cfg.PerPage
	if limit <= 0 || limit > maxLimit {
		limit = maxLimit
	}

	return &Client{
		baseURL:   strings.TrimRight(cfg.JikanURL, "/"),
		limit:     limit,
		newPages:  cfg.NewPages,
		transport: provider.NewTransport(cfg),
	}
}

func (c *Client) Name() string {
	return provider.DatasourceMyAnimeList
}

// Fetch lists entries ordered by mal_id, ascending with fetchAll and
// descending (newest pages only) otherwise.
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
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(c.limit))
	query.Set("order_by", "mal_id")
	query.Set("sort", sort)

	endpoint := c.baseURL + "/" + string(mediaType) + "?" + query.Encode()
	body, err := c.transport.Do(ctx, func() *fiber.Agent {
		return fiber.Get(endpoint)
	})
	if err != nil {
		return nil, false, describe(err)
	}

	var resp models.PageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, false, fmt.Errorf("failed to decode jikan page: %w", err)
	}

	records := make([]record.Record, 0, len(resp.Data))
	for _, raw := range resp.Data {
		rec, err := toRecord(raw)
		if err != nil {
			return nil, false, err
		}
		records = append(records, rec)
	}

	return records, resp.Pagination.HasNextPage, nil
}

func toRecord(raw json.RawMessage) (record.Record, error) {
	meta, err := record.Decode(raw)
	if err != nil {
		return record.Record{}, fmt.Errorf("invalid jikan entry: %w", err)
	}

	id := utils.ToString(meta["mal_id"])
	if id == "" {
		return record.Record{}, errors.New("jikan entry without mal_id")
	}

	title := utils.FirstString(meta, "title", "title_english", "title_japanese")
	return record.Record{ID: id, Title: title, Metadata: meta}, nil
}

// describe replaces the raw body of a status error with Jikan's message.
func describe(err error) error {
	var statusErr *provider.StatusError
	if !errors.As(err, &statusErr) {
		return err
	}

	var body models.ErrorResponse
	if json.Unmarshal([]byte(statusErr.Body), &body) != nil || body.Message == "" {
		return err
	}
	return fmt.Errorf("jikan: %s: %w", body.Message, err)
}
