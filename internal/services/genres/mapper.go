package genres

import "github.com/fatteme/MovieSwipe/internal/mongodb"

func MapDbGenreToApiGenre(genre mongodb.GenreDb) Genre {
	return Genre{
		Id:     genre.Id,
		TmdbId: genre.TmdbId,
		Name:   genre.Name,
	}
}

func MapDbGenresToApiGenres(dbGenres []mongodb.GenreDb) []Genre {
	genres := make([]Genre, 0, len(dbGenres))
	for _, g := range dbGenres {
		genres = append(genres, MapDbGenreToApiGenre(g))
	}
	return genres
}
