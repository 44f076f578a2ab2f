package response

import "nfe_backoffice/internal/domain/entities"

type EmissionJobResponse struct {
	entities.EmissionJob
	Finished bool `json:"finished"`
}

func FromEmissionJob(j entities.EmissionJob) EmissionJobResponse {
	return EmissionJobResponse{EmissionJob: j, Finished: j.Finished()}
}
