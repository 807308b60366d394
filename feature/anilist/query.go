package anilist

const (
	sortAscending  = "ID"
	sortDescending = "ID_DESC"

	// maxPerPage is the largest page size the API accepts.
	maxPerPage = 50
)

const pageQuery = `query ($page: Int, $perPage: Int, $type: MediaType, $sort: [MediaSort]) {
  Page(page: $page, perPage: $perPage) {
    pageInfo {
      currentPage
      hasNextPage
    }
    media(type: $type, sort: $sort) {
      id
      idMal
      type
      format
      status
      title {
        romaji
        english
        native
      }
      synonyms
      description(asHtml: false)
      startDate { year month day }
      endDate { year month day }
      season
      seasonYear
      episodes
      duration
      chapters
      volumes
      countryOfOrigin
      source
      isAdult
      genres
      tags { name rank isMediaSpoiler }
      averageScore
      meanScore
      popularity
      favourites
      coverImage { extraLarge large medium color }
      bannerImage
      studios { nodes { id name isAnimationStudio } }
      externalLinks { site url }
      siteUrl
      updatedAt
    }
  }
}`
