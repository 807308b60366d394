package provider

import (
	"context"
	"fmt"
	"iter"

	"media-scraper/core/record"
)

// PageFunc fetches one page. hasNext reports whether a following page exists.
type PageFunc func(ctx context.Context, page int) (records []record.Record, hasNext bool, err error)

// Paginate yields the records of consecutive pages starting at startPage.
// maxPages limits the number of pages requested; zero means no limit.
// A page is only requested once the consumer has drained the previous one.
func Paginate(ctx context.Context, startPage, maxPages int, fetch PageFunc) iter.Seq2[record.Record, error] {
	return func(yield func(record.Record, error) bool) {
		page := max(startPage, 1)
		for fetched := 0; maxPages <= 0 || fetched < maxPages; fetched++ {
			if err := ctx.Err(); err != nil {
				yield(record.Record{}, err)
				return
			}

			records, hasNext, err := fetch(ctx, page)
			if err != nil {
				yield(record.Record{}, fmt.Errorf("page %d: %w", page, err))
				return
			}

			for _, rec := range records {
				if !yield(rec, nil) {
					return
				}
			}

			if !hasNext || len(records) == 0 {
				return
			}
			page++
		}
	}
}
