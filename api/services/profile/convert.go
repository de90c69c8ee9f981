package profile

import (
	"riftbook/api/dto"
	queuevalues "riftbook/pkg/riotvalues/queue"
	"riftbook/riot"
)

// BuildMatchPreviews extracts the searched player's view from each match.
// Matches where the player is absent from the participant list are skipped.
func BuildMatchPreviews(matches []*riot.Match, puuid string) []dto.MatchPreview {
	previews := make([]dto.MatchPreview, 0, len(matches))

	for _, match := range matches {
		if match == nil {
			continue
		}

		player := findParticipant(match, puuid)
		if player == nil {
			continue
		}

		previews = append(previews, dto.MatchPreview{
			MatchId:      match.Metadata.MatchId,
			QueueId:      match.Info.QueueId,
			QueueName:    queuevalues.QueueName(match.Info.QueueId),
			ChampionId:   player.ChampionId,
			ChampionName: player.ChampionName,
			Lane:         lane(player),
			Kills:        player.Kills,
			Deaths:       player.Deaths,
			Assists:      player.Assists,
			KDA:          KDA(player.Kills, player.Deaths, player.Assists),
			Items:        player.Items(),
			Win:          player.Win,
			Duration:     match.Info.GameDuration,
			EndedAt:      match.Info.GameEndedAt.Time(),
		})
	}

	return previews
}

func findParticipant(match *riot.Match, puuid string) *riot.MatchPlayer {
	for i := range match.Info.Participants {
		if match.Info.Participants[i].Puuid == puuid {
			return &match.Info.Participants[i]
		}
	}
	return nil
}

// lane prefers the team position and falls back to the individual position,
// which still carries a value on queues without assigned roles.
func lane(player *riot.MatchPlayer) string {
	if player.TeamPosition != "" {
		return player.TeamPosition
	}
	return player.IndividualPosition
}
