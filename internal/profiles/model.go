package profiles

import "time"

type Profile struct {
	UserID         string    `json:"userId"`
	Skills         []string  `json:"skills"`
	Location       string    `json:"location"`
	ResumeFileName string    `json:"resumeFileName,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
