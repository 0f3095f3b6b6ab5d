package domain

import (
	"time"
)

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusPublishing JobStatus = "publishing"
	JobStatusSuccess    JobStatus = "success"
	JobStatusFailed     JobStatus = "failed"
)

// JobErrorCode classifica a última falha de um job
type JobErrorCode string

const (
	JobErrorCredential  JobErrorCode = "CREDENTIAL_INVALID"
	JobErrorNarrative   JobErrorCode = "NARRATIVE_FAILED"
	JobErrorPlatform    JobErrorCode = "PLATFORM_FAILED"
	JobErrorPersistence JobErrorCode = "PERSISTENCE_FAILED"
	JobErrorCancelled   JobErrorCode = "CANCELLED"
)

// JobContent é o conteúdo do comercial; imutável após a criação do job
type JobContent struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url,omitempty" validate:"omitempty,url"`
	VideoURL     string   `json:"video_url,omitempty" validate:"omitempty,url"`
	TargetGroups []string `json:"target_groups,omitempty"`
}

func (c JobContent) clone() JobContent {
	if c.TargetGroups != nil {
		c.TargetGroups = append([]string(nil), c.TargetGroups...)
	}
	return c
}

type PublishingJob struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	CommercialID string       `json:"commercial_id"`
	Platforms    []Platform   `json:"platforms"`
	Content      JobContent   `json:"content"`
	Status       JobStatus    `json:"status"`
	Retries      int          `json:"retries"`
	MaxRetries   int          `json:"max_retries"`
	Error        string       `json:"error,omitempty"`
	ErrorCode    JobErrorCode `json:"error_code,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Clone devolve uma cópia independente, segura para expor fora da fila
func (j *PublishingJob) Clone() *PublishingJob {
	if j == nil {
		return nil
	}
	c := *j
	c.Platforms = append([]Platform(nil), j.Platforms...)
	c.Content = j.Content.clone()
	return &c
}

func (j *PublishingJob) IsTerminal() bool {
	return j.Status == JobStatusSuccess || j.Status == JobStatusFailed
}

type CreateJobRequest struct {
	UserID       string     `json:"user_id" validate:"required"`
	CommercialID string     `json:"commercial_id" validate:"required"`
	Platforms    []string   `json:"platforms" validate:"required,min=1,dive,platform"`
	Content      JobContent `json:"content" validate:"required"`
	MaxRetries   int        `json:"max_retries,omitempty" validate:"omitempty,min=1"`
}
