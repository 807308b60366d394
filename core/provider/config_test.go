package provider_test

import (
	"testing"

	"media-scraper/core/provider"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDatasource(t *testing.T) {
	tests := []struct {
		name       string
		datasource string
		want       bool
	}{
		{"AniList", provider.DatasourceAniList, true},
		{"MyAnimeList", provider.DatasourceMyAnimeList, true},
		{"Invalid", "kitsu", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, provider.IsValidDatasource(tt.datasource))
		})
	}
}

func TestParseMediaType(t *testing.T) {
	mt, err := provider.ParseMediaType("ANIME")
	assert.NoError(t, err)
	assert.Equal(t, provider.MediaAnime, mt)

	mt, err = provider.ParseMediaType(" manga ")
	assert.NoError(t, err)
	assert.Equal(t, provider.MediaManga, mt)

	_, err = provider.ParseMediaType("novel")
	assert.Error(t, err)
}
