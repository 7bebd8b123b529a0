package status

// StatusResponse reports that the service is up and which deployment
// environment it runs in.
type StatusResponse struct {
	Message     string `json:"message"`
	Environment string `json:"environment"`
}

// RunningMessage is returned while the service is serving requests.
const RunningMessage = "Microservice is running successfully"
