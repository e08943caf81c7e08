package rosterhandlers

import (
	"time"

	rosterservice "github.com/fantakl/votes-admin/app/modules/roster/application"
	rosterdb "github.com/fantakl/votes-admin/app/modules/roster/infrastructure/repositories"
	"github.com/google/uuid"
)

type MatchdayDTO struct {
	ID             uuid.UUID `json:"id"`
	MatchdayNumber int       `json:"matchday_number"`
	Date           time.Time `json:"date"`
	IsPlayoff      bool      `json:"is_playoff"`
}

type TeamDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	IsEliminated bool      `json:"is_eliminated"`
}

type PlayerDTO struct {
	ID            uuid.UUID `json:"id"`
	TeamID        uuid.UUID `json:"team_id"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	IsWildcard    bool      `json:"is_wildcard"`
	OverallRating *int      `json:"overall_rating,omitempty"`
	AvatarURL     *string   `json:"avatar_url,omitempty"`
}

type PresidentDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// RosterResponse is a team with its ordered players.
type RosterResponse struct {
	Team      TeamDTO       `json:"team"`
	Players   []PlayerDTO   `json:"players"`
	President *PresidentDTO `json:"president,omitempty"`
}

type scheduleMatchdayRequest struct {
	MatchdayNumber int    `json:"matchday_number"`
	Date           string `json:"date"`
	IsPlayoff      bool   `json:"is_playoff"`
}

type addPlayerRequest struct {
	TeamID        uuid.UUID `json:"team_id"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	IsWildcard    bool      `json:"is_wildcard"`
	OverallRating *int      `json:"overall_rating"`
	AvatarURL     *string   `json:"avatar_url"`
}

func toMatchdayDTO(m rosterdb.Matchday) MatchdayDTO {
	return MatchdayDTO{ID: m.ID, MatchdayNumber: m.MatchdayNumber, Date: m.Date, IsPlayoff: m.IsPlayoff}
}

func toTeamDTO(t rosterdb.Team) TeamDTO {
	return TeamDTO{ID: t.ID, Name: t.Name, IsEliminated: t.IsEliminated}
}

func toPlayerDTO(p rosterdb.Player) PlayerDTO {
	return PlayerDTO{
		ID:            p.ID,
		TeamID:        p.TeamID,
		Name:          p.Name,
		Role:          string(p.Role),
		IsWildcard:    p.IsWildcard,
		OverallRating: p.OverallRating,
		AvatarURL:     p.AvatarURL,
	}
}

func toRosterResponse(r *rosterservice.TeamRoster) RosterResponse {
	out := RosterResponse{Team: toTeamDTO(r.Team), Players: make([]PlayerDTO, 0, len(r.Players))}
	for _, p := range r.Players {
		out.Players = append(out.Players, toPlayerDTO(p))
	}
	if r.President != nil {
		out.President = &PresidentDTO{ID: r.President.ID, Name: r.President.Name}
	}
	return out
}
