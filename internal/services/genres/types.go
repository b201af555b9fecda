package genres

type Genre struct {
	Id     string `json:"id"`
	TmdbId int    `json:"tmdbId"`
	Name   string `json:"name"`
}

type AllGenresResponse struct {
	Genres []Genre `json:"genres"`
}
