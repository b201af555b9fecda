package tmdb

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const tmdbBaseURL = "https://api.themoviedb.org/3"

// FetchGenres returns the raw TMDB movie-genre list response.
func FetchGenres(apiKey string) ([]byte, error) {
	requestURL := fmt.Sprintf("%s/genre/movie/list?api_key=%s&language=en-US", tmdbBaseURL, url.QueryEscape(apiKey))

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("non-2xx status: %s - %s", resp.Status, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return body, nil
}

// FetchDiscoverMovies queries TMDB discover for movies matching the given
// genre ids (TMDB numeric ids, comma-joined means AND per their API).
func FetchDiscoverMovies(apiKey string, genreIds []string, page int) ([]byte, error) {
	requestURL := fmt.Sprintf("%s/discover/movie", tmdbBaseURL)

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("api_key", apiKey)
	q.Set("language", "en-US")
	q.Set("sort_by", "popularity.desc")
	if len(genreIds) > 0 {
		q.Set("with_genres", strings.Join(genreIds, ","))
	}
	if page > 0 {
		q.Set("page", fmt.Sprintf("%d", page))
	}
	req.URL.RawQuery = q.Encode()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("non-2xx status: %s - %s", resp.Status, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return body, nil
}
