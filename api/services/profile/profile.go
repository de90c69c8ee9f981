package profile

import (
	"context"
	"fmt"
	"time"

	"riftbook/api/cache"
	"riftbook/api/dto"
	"riftbook/api/repositories/history"
	"riftbook/pkg/regions"
	queuevalues "riftbook/pkg/riotvalues/queue"
	"riftbook/riot"
	"riftbook/riot/requests"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Default aggregation window sizes.
const (
	defaultMatchCount   = 20
	defaultMasteryCount = 5

	// In-flight ceiling of the match fan-out. All fetches are still awaited
	// jointly, but issuing them in bounded batches keeps a full history load
	// from bursting twenty concurrent requests at a rate limited host.
	matchConcurrency = 5

	defaultLivePollInterval = 30 * time.Second
)

// Service aggregates a full player profile out of the Riot endpoints.
type Service struct {
	riot             riot.API
	matchCache       *cache.TTLCache
	history          history.Repository
	matchCount       int
	masteryCount     int
	livePollInterval time.Duration
	logger           zerolog.Logger
}

// ServiceDeps holds the dependencies for the profile service.
type ServiceDeps struct {
	Riot riot.API

	// MatchCache deduplicates match detail fetches across profile loads.
	MatchCache *cache.TTLCache

	// History is optional, searches are not recorded when nil.
	History history.Repository

	MatchCount   int
	MasteryCount int

	// LivePollInterval is the refresh period of pollers started through
	// StartLivePoller. Defaults to thirty seconds.
	LivePollInterval time.Duration

	Logger zerolog.Logger
}

// NewService creates a profile service.
func NewService(deps ServiceDeps) *Service {
	matchCount := deps.MatchCount
	if matchCount <= 0 {
		matchCount = defaultMatchCount
	}

	masteryCount := deps.MasteryCount
	if masteryCount <= 0 {
		masteryCount = defaultMasteryCount
	}

	matchCache := deps.MatchCache
	if matchCache == nil {
		matchCache = cache.NewTTLCache(5*time.Minute, nil)
	}

	livePollInterval := deps.LivePollInterval
	if livePollInterval <= 0 {
		livePollInterval = defaultLivePollInterval
	}

	return &Service{
		riot:             deps.Riot,
		matchCache:       matchCache,
		history:          deps.History,
		matchCount:       matchCount,
		masteryCount:     masteryCount,
		livePollInterval: livePollInterval,
		logger:           deps.Logger,
	}
}

// LoadProfile resolves a player and aggregates the full profile.
//
// Account, summoner and match history are essential, their failure fails the
// load. Ranked standings, the live game snapshot and the mastery list are
// optional enrichments, their failure degrades the profile to empty values.
func (s *Service) LoadProfile(ctx context.Context, regionCode, rawRiotId string) (*dto.PlayerProfile, error) {
	riotId, err := riot.ParseRiotID(rawRiotId)
	if err != nil {
		return nil, err
	}

	region, found := regions.Get(regionCode)
	if !found {
		return nil, fmt.Errorf("unknown region %s", regionCode)
	}

	account, err := s.riot.GetAccountByRiotID(ctx, riotId.GameName, riotId.TagLine, region.Routing)
	if err != nil {
		if requests.IsNotFound(err) {
			return nil, fmt.Errorf("player %s not found on %s", riotId, region.Name)
		}
		return nil, fmt.Errorf("couldn't resolve account: %w", err)
	}

	summoner, err := s.riot.GetSummonerByPuuid(ctx, account.Puuid, region.Platform)
	if err != nil {
		return nil, fmt.Errorf("couldn't load summoner: %w", err)
	}

	profile := &dto.PlayerProfile{
		Account:  *account,
		Summoner: *summoner,
		Region:   region.Name,
		Ranked:   []riot.LeagueEntry{},
		Mastery:  []riot.MasteryEntry{},
	}

	ranked, err := s.riot.GetLeagueEntriesByPuuid(ctx, account.Puuid, region.Platform)
	if err != nil {
		s.logger.Warn().Err(err).Str("puuid", account.Puuid).
			Msg("ranked standings unavailable, continuing without them")
	} else {
		profile.Ranked = filterRankedEntries(ranked)
	}

	matches, err := s.loadRecentMatches(ctx, account.Puuid, region.Routing)
	if err != nil {
		return nil, fmt.Errorf("couldn't load match history: %w", err)
	}
	profile.Matches = BuildMatchPreviews(matches, account.Puuid)
	profile.Stats = ComputeRecentStats(profile.Matches)

	liveGame, err := s.riot.GetActiveGame(ctx, account.Puuid, region.Platform)
	switch {
	case err == nil:
		profile.LiveGame = liveGame
	case requests.IsNotFound(err):
		// Not in game.
	default:
		s.logger.Warn().Err(err).Str("puuid", account.Puuid).
			Msg("live game lookup failed, continuing without it")
	}

	mastery, err := s.riot.GetChampionMastery(ctx, account.Puuid, region.Platform, s.masteryCount)
	if err != nil {
		s.logger.Warn().Err(err).Str("puuid", account.Puuid).
			Msg("mastery list unavailable, continuing without it")
	} else if mastery != nil {
		profile.Mastery = mastery
	}

	s.recordSearch(riotId.String(), regionCode)

	return profile, nil
}

// filterRankedEntries keeps the standings for the ranked queues of interest.
// The league endpoint also reports event standings (arena and the like) that
// the profile does not present. Entries without a queue type are provisional
// ranked placements and are kept.
func filterRankedEntries(entries []riot.LeagueEntry) []riot.LeagueEntry {
	kept := make([]riot.LeagueEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.QueueType == nil || queuevalues.IsRankedQueueType(*entry.QueueType) {
			kept = append(kept, entry)
		}
	}
	return kept
}

// loadRecentMatches lists the recent match ids and fans out the detail
// fetches, going through the match cache so repeated loads of overlapping
// histories reuse fetched matches.
func (s *Service) loadRecentMatches(ctx context.Context, puuid, routing string) ([]*riot.Match, error) {
	matchIds, err := s.riot.GetMatchIds(ctx, puuid, routing, s.matchCount, 0)
	if err != nil {
		return nil, err
	}

	matches := make([]*riot.Match, len(matchIds))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(matchConcurrency)

	for i, matchId := range matchIds {
		group.Go(func() error {
			if cached, found := s.matchCache.Get(matchId); found {
				matches[i] = cached.(*riot.Match)
				return nil
			}

			match, err := s.riot.GetMatch(groupCtx, matchId, routing)
			if err != nil {
				return fmt.Errorf("match %s: %w", matchId, err)
			}

			s.matchCache.Set(matchId, match)
			matches[i] = match
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return matches, nil
}

// LiveGame returns the current live game snapshot of an already resolved
// player, nil when the player is not in game.
func (s *Service) LiveGame(ctx context.Context, regionCode, puuid string) (*riot.LiveGame, error) {
	region, found := regions.Get(regionCode)
	if !found {
		return nil, fmt.Errorf("unknown region %s", regionCode)
	}

	liveGame, err := s.riot.GetActiveGame(ctx, puuid, region.Platform)
	if err != nil {
		if requests.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return liveGame, nil
}

// RecentSearches returns the search history, most recent first.
func (s *Service) RecentSearches() ([]dto.SearchRecord, error) {
	if s.history == nil {
		return []dto.SearchRecord{}, nil
	}

	entries, err := s.history.RecentSearches()
	if err != nil {
		return nil, err
	}

	records := make([]dto.SearchRecord, 0, len(entries))
	for _, entry := range entries {
		records = append(records, dto.SearchRecord{
			RiotId:    entry.RiotId,
			Region:    entry.Region,
			Timestamp: entry.Timestamp,
		})
	}
	return records, nil
}

// ToggleFavorite bookmarks a player, or removes the bookmark when present.
func (s *Service) ToggleFavorite(riotId, region string) (bool, error) {
	if s.history == nil {
		return false, fmt.Errorf("favorites storage unavailable")
	}
	return s.history.ToggleFavorite(riotId, region)
}

// Favorites returns the bookmarked players, most recent first.
func (s *Service) Favorites() ([]dto.SearchRecord, error) {
	if s.history == nil {
		return []dto.SearchRecord{}, nil
	}

	favorites, err := s.history.Favorites()
	if err != nil {
		return nil, err
	}

	records := make([]dto.SearchRecord, 0, len(favorites))
	for _, favorite := range favorites {
		records = append(records, dto.SearchRecord{
			RiotId:    favorite.RiotId,
			Region:    favorite.Region,
			Timestamp: favorite.Timestamp,
		})
	}
	return records, nil
}

// recordSearch appends the search to the history. Failures only log, a
// broken history must not fail a successful profile load.
func (s *Service) recordSearch(riotId, region string) {
	if s.history == nil {
		return
	}
	if err := s.history.RecordSearch(riotId, region); err != nil {
		s.logger.Warn().Err(err).Msg("couldn't record search history")
	}
}
