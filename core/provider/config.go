package provider

// Config holds settings shared by the catalog adapters.
type Config struct {
	// AniListURL is the AniList GraphQL endpoint.
	AniListURL string `mapstructure:"anilist_url" default:"https://graphql.anilist.co"`
	// JikanURL is the base URL of the Jikan (MyAnimeList) REST API.
	JikanURL string `mapstructure:"jikan_url" default:"https://api.jikan.moe/v4"`
	// PerPage is the requested page size. Adapters clamp it to their API limit.
	PerPage int `mapstructure:"per_page" default:"50"`
	// RequestsPerMinute caps the request rate. Zero disables pacing.
	RequestsPerMinute int `mapstructure:"requests_per_minute" default:"30"`
	// TimeoutSeconds bounds a single HTTP request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// MaxRetries is the number of retries for rate limited or failed requests.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
	// RetryBackoffMillis is the base delay between retries, grown linearly.
	RetryBackoffMillis int `mapstructure:"retry_backoff_ms" default:"2000"`
	// NewPages limits how many pages are walked when not fetching everything.
	// Zero walks the whole catalog in both modes.
	NewPages int `mapstructure:"new_pages" default:"5"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"media-scraper/1.0"`
}

const (
	DatasourceAniList     = "anilist"
	DatasourceMyAnimeList = "myanimelist"
)

// IsValidDatasource checks if name is a supported datasource.
func IsValidDatasource(name string) bool {
	switch name {
	case DatasourceAniList, DatasourceMyAnimeList:
		return true
	default:
		return false
	}
}
