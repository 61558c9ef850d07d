package dto

type CategoryStat struct {
	Name      string  `json:"name"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Rate      float64 `json:"rate"`
}

type StatsSummary struct {
	EfficiencyRate    float64        `json:"efficiencyRate"`
	OverallEfficiency float64        `json:"overallEfficiency"`
	CategoryStats     []CategoryStat `json:"categoryStats"`
	ConsistencyScore  int            `json:"consistencyScore"`
	ActiveRoutines    int            `json:"activeRoutines"`
}

type ActivityDay struct {
	Date      string `json:"date"`
	Count     int    `json:"count"`
	Intensity int    `json:"intensity"`
}
