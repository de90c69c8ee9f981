package champion

import (
	"fmt"
	"sort"

	"riftbook/api/dto"
	"riftbook/api/filters"
	"riftbook/ddragon"
	"riftbook/pkg/models/champion"

	"github.com/rs/zerolog"
)

// Service serves the bundled champion roster.
type Service struct {
	roster []champion.Champion
	byId   map[string]*champion.Champion
	logger zerolog.Logger
}

// ServiceDeps holds the dependencies for the champion service.
type ServiceDeps struct {
	// ChampionsFile is the path of the consolidated champion document.
	ChampionsFile string
	Logger        zerolog.Logger
}

// NewService loads the roster from disk and builds the id lookup.
func NewService(deps ServiceDeps) (*Service, error) {
	roster, err := ddragon.LoadChampions(deps.ChampionsFile)
	if err != nil {
		return nil, fmt.Errorf("couldn't load champion roster: %w", err)
	}

	byId := make(map[string]*champion.Champion, len(roster))
	for i := range roster {
		byId[roster[i].ID] = &roster[i]
	}

	deps.Logger.Info().Int("champions", len(roster)).Msg("champion roster loaded")

	return &Service{
		roster: roster,
		byId:   byId,
		logger: deps.Logger,
	}, nil
}

// List returns the roster entries matching every selected facet.
func (s *Service) List(criteria *filters.ChampionCriteria) []champion.Champion {
	return ApplyFilters(s.roster, criteria)
}

// ByID returns the full champion entry for a numeric key.
func (s *Service) ByID(id string) (*champion.Champion, error) {
	entry, found := s.byId[id]
	if !found {
		return nil, fmt.Errorf("champion %s not found", id)
	}
	return entry, nil
}

// Stats computes the aggregate facts of the full roster.
func (s *Service) Stats() *dto.RosterStats {
	return RosterStats(s.roster)
}

// Facets enumerates the distinct roles and resources of the full roster.
func (s *Service) Facets() *dto.ChampionFacets {
	roleSet := make(map[string]bool)
	resourceSet := make(map[string]bool)

	for i := range s.roster {
		for _, tag := range s.roster[i].Tags {
			roleSet[tag] = true
		}
		if s.roster[i].Partype != "" {
			resourceSet[s.roster[i].Partype] = true
		}
	}

	return &dto.ChampionFacets{
		Roles:     sortedKeys(roleSet),
		Resources: sortedKeys(resourceSet),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
