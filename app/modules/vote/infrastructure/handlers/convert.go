package votehandlers

import (
	"fmt"

	scoringdomain "github.com/fantakl/votes-admin/app/modules/scoring/domain"
	voteservice "github.com/fantakl/votes-admin/app/modules/vote/application"
	votedomain "github.com/fantakl/votes-admin/app/modules/vote/domain"
)

func toSessionResponse(s *votedomain.MatchSession) SessionResponse {
	out := SessionResponse{
		MatchdayID:     s.Selection.MatchdayID,
		MatchdayNumber: s.MatchdayNumber,
		Title:          fmt.Sprintf("Matchday %d: %s vs %s", s.MatchdayNumber, s.TeamA.Name, s.TeamB.Name),
		TeamA:          TeamDTO(s.TeamA),
		TeamB:          TeamDTO(s.TeamB),
		State:          s.State.String(),
		Editable:       s.Editable,
		Coefficients:   make(map[string]float64, s.Config.Len()),
		Players:        make([]PlayerRowDTO, 0, len(s.Players)),
		Presidents:     make([]PresidentRowDTO, 0, len(s.Presidents)),
	}
	for k, v := range s.Config.Values() {
		out.Coefficients[string(k)] = v
	}
	for _, row := range s.Players {
		out.Players = append(out.Players, PlayerRowDTO{
			PlayerID:       row.PlayerID,
			TeamID:         row.TeamID,
			Name:           row.Name,
			Role:           string(row.Role),
			Played:         row.Played(),
			Goalkeeper:     row.Role.IsGoalkeeper(),
			PlayerStatsDTO: statsToDTO(row.Stats, row.MinutesPlayed),
			FinalScore:     row.FinalScore,
			Stored:         row.Stored,
		})
	}
	for _, row := range s.Presidents {
		out.Presidents = append(out.Presidents, PresidentRowDTO{
			PresidentID: row.PresidentID,
			TeamID:      row.TeamID,
			Name:        row.Name,
			Penalty:     row.Outcome.String(),
			FinalScore:  row.FinalScore,
			Stored:      row.Stored,
		})
	}
	return out
}

func statsToDTO(s scoringdomain.PlayerStats, minutes int) PlayerStatsDTO {
	return PlayerStatsDTO{
		BaseVote:         s.BaseVote,
		Goals:            s.Goals,
		GoalsDouble:      s.GoalsDouble,
		PenaltiesScored:  s.PenaltiesScored,
		PenaltiesMissed:  s.PenaltiesMissed,
		Assists:          s.Assists,
		YellowCards:      s.YellowCards,
		RedCards:         s.RedCards,
		ShootoutScored:   s.ShootoutScored,
		ShootoutMissed:   s.ShootoutMissed,
		OwnGoals:         s.OwnGoals,
		CleanSheet:       s.CleanSheet,
		GoalsConceded:    s.GoalsConceded,
		ShootoutConceded: s.ShootoutConceded,
		MinutesPlayed:    minutes,
	}
}

func (d PlayerStatsDTO) toDomain() scoringdomain.PlayerStats {
	return scoringdomain.PlayerStats{
		BaseVote:         d.BaseVote,
		Goals:            d.Goals,
		GoalsDouble:      d.GoalsDouble,
		PenaltiesScored:  d.PenaltiesScored,
		PenaltiesMissed:  d.PenaltiesMissed,
		Assists:          d.Assists,
		YellowCards:      d.YellowCards,
		RedCards:         d.RedCards,
		ShootoutScored:   d.ShootoutScored,
		ShootoutMissed:   d.ShootoutMissed,
		OwnGoals:         d.OwnGoals,
		CleanSheet:       d.CleanSheet,
		GoalsConceded:    d.GoalsConceded,
		ShootoutConceded: d.ShootoutConceded,
	}
}

func (r saveRequest) toInput() voteservice.SaveRequest {
	out := voteservice.SaveRequest{
		Selection:  r.selectionRequest.toDomain(),
		Players:    make([]voteservice.PlayerVoteInput, 0, len(r.Players)),
		Presidents: make([]voteservice.PresidentVoteInput, 0, len(r.Presidents)),
	}
	for _, p := range r.Players {
		out.Players = append(out.Players, voteservice.PlayerVoteInput{
			PlayerID:      p.PlayerID,
			Played:        p.Played,
			Stats:         p.PlayerStatsDTO.toDomain(),
			MinutesPlayed: p.MinutesPlayed,
		})
	}
	for _, p := range r.Presidents {
		out.Presidents = append(out.Presidents, voteservice.PresidentVoteInput{
			PresidentID:   p.PresidentID,
			PenaltyScored: p.PenaltyScored,
			PenaltyMissed: p.PenaltyMissed,
		})
	}
	return out
}

func toSaveResponse(s *voteservice.SaveSummary) SaveResponse {
	out := SaveResponse{
		Status:     "Saved!",
		MatchdayID: s.MatchdayID,
		Implicit:   s.Implicit,
		Players:    make([]ScoredVoteDTO, 0, len(s.Players)),
		Presidents: make([]ScoredVoteDTO, 0, len(s.Presidents)),
		SavedAt:    s.SavedAt,
	}
	for _, v := range s.Players {
		out.Players = append(out.Players, ScoredVoteDTO(v))
	}
	for _, v := range s.Presidents {
		out.Presidents = append(out.Presidents, ScoredVoteDTO(v))
	}
	return out
}
