package http

import (
	"time"

	"github.com/fury1991/my-sport-challenge/challenge"
	"github.com/fury1991/my-sport-challenge/standings"
)

type challengeInfoResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type challengeResponse struct {
	Key        string     `json:"key"`
	Label      string     `json:"label"`
	StartDate  *time.Time `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
	IsComplete bool       `json:"isComplete"`
	LastUpdate *time.Time `json:"lastUpdate"`
}

type leaderboardRowResponse struct {
	Name        string  `json:"name"`
	TotalPoints float64 `json:"totalPoints"`
	Points      string  `json:"points"`
}

type feedEntryResponse struct {
	Date        time.Time `json:"date"`
	Day         string    `json:"day"`
	Kind        string    `json:"kind"`
	DisplayName string    `json:"displayName"`
	Icon        string    `json:"icon"`
	DistanceKm  float64   `json:"distanceKm"`
	Points      float64   `json:"points"`
}

type chartResponse struct {
	Checkpoints []string             `json:"checkpoints"`
	Ticks       []string             `json:"ticks"`
	Series      map[string][]float64 `json:"series"`
}

func mapChallengeInfosResponse(infos []challenge.Info) []challengeInfoResponse {
	resp := make([]challengeInfoResponse, len(infos))
	for i, info := range infos {
		resp[i] = challengeInfoResponse{
			Key:   info.Key,
			Label: info.Label,
		}
	}
	return resp
}

func mapChallengeResponse(info challenge.Info, meta *challenge.Metadata) challengeResponse {
	resp := challengeResponse{
		Key:   info.Key,
		Label: info.Label,
	}
	if meta != nil {
		start := meta.StartDate
		end := meta.EndDate
		resp.StartDate = &start
		resp.EndDate = &end
		resp.IsComplete = meta.IsComplete
		resp.LastUpdate = meta.LastUpdate
	}
	return resp
}

func mapLeaderboardResponse(rows []standings.LeaderboardRow) []leaderboardRowResponse {
	resp := make([]leaderboardRowResponse, len(rows))
	for i, row := range rows {
		resp[i] = leaderboardRowResponse{
			Name:        row.Name,
			TotalPoints: row.TotalPoints,
			Points:      row.FormattedPoints,
		}
	}
	return resp
}

func mapFeedResponse(feed []standings.FeedEntry) []feedEntryResponse {
	resp := make([]feedEntryResponse, len(feed))
	for i, e := range feed {
		resp[i] = feedEntryResponse{
			Date:        e.Date,
			Day:         e.Day.String(),
			Kind:        e.Kind.Label(),
			DisplayName: e.DisplayName,
			Icon:        e.Icon,
			DistanceKm:  e.Distance,
			Points:      e.Points,
		}
	}
	return resp
}

func mapChartResponse(data standings.ChartData) chartResponse {
	resp := chartResponse{
		Checkpoints: make([]string, len(data.Checkpoints)),
		Ticks:       make([]string, len(data.Checkpoints)),
		Series:      data.Series,
	}
	for i, day := range data.Checkpoints {
		resp.Checkpoints[i] = day.String()
		resp.Ticks[i] = day.Short()
	}
	return resp
}
