package dto

type TaskItem struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	ScheduledTime     string   `json:"scheduledTime"`
	Completed         bool     `json:"completed"`
	TaskType          string   `json:"taskType"`
	Priority          string   `json:"priority"`
	Category          string   `json:"category"`
	CompletionHistory []string `json:"completionHistory,omitempty"`
}

type CreateTaskRequest struct {
	Title         string  `json:"title" binding:"required,max=255"`
	ScheduledTime string  `json:"scheduledTime" binding:"required"`
	TaskType      *string `json:"taskType" binding:"omitempty,oneof=normal daily"`
	Priority      *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Category      *string `json:"category" binding:"omitempty,max=64"`
}

type Snapshot struct {
	Tasks      []TaskItem `json:"tasks"`
	ExportedAt string     `json:"exportedAt"`
}

type ImportResult struct {
	Imported int `json:"imported"`
}

type AdviceRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type AdviceResponse struct {
	Advice string `json:"advice"`
}
