package myanimelist_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"media-scraper/core/provider"
	"media-scraper/core/record"
	"media-scraper/feature/myanimelist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queryLog struct {
	mu      sync.Mutex
	paths   []string
	queries []url.Values
}

func (l *queryLog) add(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.paths = append(l.paths, r.URL.Path)
	l.queries = append(l.queries, r.URL.Query())
}

func (l *queryLog) snapshot() ([]string, []url.Values) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.paths...), append([]url.Values(nil), l.queries...)
}

func jikanServer(lastPage int, log *queryLog) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add(r)

		var page int
		fmt.Sscan(r.URL.Query().Get("page"), &page)
		fmt.Fprintf(w, `{"pagination":{"last_visible_page":%d,"has_next_page":%t,"current_page":%d},"data":[
			{"mal_id":%d,"title":"Title %d","score":8.75},
			{"mal_id":%d,"title":"","title_english":"English %d"}
		]}`, lastPage, page < lastPage, page, page*10+1, page*10+1, page*10+2, page*10+2)
	}))
}

func testConfig(url string) provider.Config {
	return provider.Config{
		JikanURL:       url + "/",
		PerPage:        50,
		TimeoutSeconds: 5,
		NewPages:       1,
	}
}

func collect(p provider.Provider, mediaType provider.MediaType, fetchAll bool) ([]record.Record, error) {
	var out []record.Record
	for rec, err := range p.Fetch(context.Background(), 1, mediaType, fetchAll) {
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func TestClient_FetchAll(t *testing.T) {
	var log queryLog
	srv := jikanServer(2, &log)
	defer srv.Close()

	recs, err := collect(myanimelist.New(testConfig(srv.URL)), provider.MediaManga, true)
	require.NoError(t, err)

	require.Len(t, recs, 4)
	assert.Equal(t, "11", recs[0].ID)
	assert.Equal(t, "Title 11", recs[0].Title)
	assert.Equal(t, "English 12", recs[1].Title)
	assert.Equal(t, "22", recs[3].ID)

	paths, queries := log.snapshot()
	require.Len(t, queries, 2)
	assert.Equal(t, "/manga", paths[0])
	assert.Equal(t, "1", queries[0].Get("page"))
	assert.Equal(t, "2", queries[1].Get("page"))
	assert.Equal(t, "25", queries[0].Get("limit"))
	assert.Equal(t, "mal_id", queries[0].Get("order_by"))
	assert.Equal(t, "asc", queries[0].Get("sort"))
}

func TestClient_NewEntries(t *testing.T) {
	var log queryLog
	srv := jikanServer(100, &log)
	defer srv.Close()

	recs, err := collect(myanimelist.New(testConfig(srv.URL)), provider.MediaAnime, false)
	require.NoError(t, err)

	assert.Len(t, recs, 2)
	paths, queries := log.snapshot()
	require.Len(t, queries, 1)
	assert.Equal(t, "/anime", paths[0])
	assert.Equal(t, "desc", queries[0].Get("sort"))
}

func TestClient_ErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":400,"type":"ValidationException","message":"Invalid or incomplete request.","error":null}`))
	}))
	defer srv.Close()

	_, err := collect(myanimelist.New(testConfig(srv.URL)), provider.MediaAnime, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid or incomplete request.")

	var statusErr *provider.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.Code)
}

func TestClient_LongErrorMessage(t *testing.T) {
	message := "Jikan is being rate limited by MyAnimeList. " + strings.Repeat("Please try again later. ", 12)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, `{"status":400,"type":"BadResponseException","message":%q,"error":null}`, message)
	}))
	defer srv.Close()

	_, err := collect(myanimelist.New(testConfig(srv.URL)), provider.MediaAnime, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jikan: "+message)
}

func TestClient_EntryWithoutID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"pagination":{"has_next_page":false},"data":[{"title":"No id"}]}`))
	}))
	defer srv.Close()

	_, err := collect(myanimelist.New(testConfig(srv.URL)), provider.MediaAnime, true)
	assert.ErrorContains(t, err, "without mal_id")
}

func TestClient_Name(t *testing.T) {
	assert.Equal(t, provider.DatasourceMyAnimeList, myanimelist.New(provider.Config{}).Name())
}
