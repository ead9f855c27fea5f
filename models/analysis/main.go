package analysis

import (
	"github.com/google/uuid"

	"iris/api/models/dtos"
)

type State string

const (
	Queued  State = "Queued"
	Running       = "Running"
	Done          = "Done"
	Error         = "Error"
)

// Request tracks one asynchronous prediction run over a server-side
// genotype file. Requests live in process memory only.
type Request struct {
	Id        uuid.UUID        `json:"id"`
	Filename  string           `json:"filename"`
	State     State            `json:"state"`
	Message   string           `json:"message"`
	CreatedAt string           `json:"createdAt"`
	UpdatedAt string           `json:"updatedAt"`
	Result    *dtos.Prediction `json:"result,omitempty"`
}

type RequestResponseDTO struct {
	Id       uuid.UUID `json:"id"`
	Filename string    `json:"filename"`
	State    State     `json:"state"`
	Message  string    `json:"message"`
}
