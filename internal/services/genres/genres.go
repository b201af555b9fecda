package genres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/fatteme/MovieSwipe/internal/logx"
	"github.com/fatteme/MovieSwipe/internal/mongodb"
	"github.com/fatteme/MovieSwipe/internal/tmdb"
)

// GetAllGenres returns the catalog sorted by name. When the catalog is still
// empty and a TMDB key is configured, it is filled lazily from TMDB first.
func GetAllGenres(db *mongodb.DB, ctx context.Context, tmdbApiKey string) ([]Genre, error) {
	dbGenres, err := db.GetAllGenres(ctx)
	if err != nil {
		return nil, err
	}

	if len(dbGenres) == 0 && tmdbApiKey != "" {
		if err := SyncGenres(db, ctx, tmdbApiKey); err != nil {
			return nil, err
		}
		dbGenres, err = db.GetAllGenres(ctx)
		if err != nil {
			return nil, err
		}
	}

	return MapDbGenresToApiGenres(dbGenres), nil
}

func GetGenreById(db *mongodb.DB, ctx context.Context, id string) (Genre, error) {
	genre, err := db.GetGenreById(ctx, id)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return Genre{}, ErrGenreNotFound
		}
		return Genre{}, err
	}
	return MapDbGenreToApiGenre(genre), nil
}

// SyncGenres fetches the movie-genre list from TMDB and upserts every entry
// into the catalog, keyed by TMDB id.
func SyncGenres(db *mongodb.DB, ctx context.Context, tmdbApiKey string) error {
	logger := logx.FromContext(ctx)

	body, err := tmdb.FetchGenres(tmdbApiKey)
	if err != nil {
		return err
	}

	var resp tmdb.GenresResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return err
	}

	for _, genre := range resp.Genres {
		if err := db.UpsertGenreByTmdbId(ctx, genre.Id, genre.Name); err != nil {
			return err
		}
	}

	logger.Printf("Synced %d genres from TMDB", len(resp.Genres))
	return nil
}
