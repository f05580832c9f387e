package dto

type LogEntryResponse struct {
	Time            int      `json:"time"`
	Vehicle         string   `json:"vehicle"`
	Station         string   `json:"station"`
	LoadedPackages  []string `json:"loaded_packages"`
	DroppedPackages []string `json:"dropped_packages"`
	NextStation     string   `json:"next_station,omitempty"`
	NextRoute       string   `json:"next_route,omitempty"`
	NextDuration    int      `json:"next_duration,omitempty"`
}

type ScheduleResponse struct {
	Key     string             `json:"key"`
	Cached  bool               `json:"cached"`
	Entries []LogEntryResponse `json:"entries"`
}
