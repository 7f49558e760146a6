package admin

type ProbabilityResponse struct {
	WinProbability int `json:"winProbability"`
}

type SetProbabilityRequest struct {
	WinProbability int `json:"winProbability"`
}

type ProbabilityTestRequest struct {
	Trials int `json:"trials"` // Defaults to 100
}

type ProbabilityTestResponse struct {
	Trials         int `json:"trials"`
	Wins           int `json:"wins"`
	WinProbability int `json:"winProbability"`
}
