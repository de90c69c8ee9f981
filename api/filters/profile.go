package filters

// ProfileURIParams are the URI params of the profile endpoints.
type ProfileURIParams struct {
	Region string `uri:"region" binding:"required"`
	RiotId string `uri:"riotId" binding:"required"`
}

// FavoriteBody is the JSON body of the favorite toggle endpoint.
type FavoriteBody struct {
	RiotId string `json:"riotId" binding:"required"`
	Region string `json:"region" binding:"required"`
}
