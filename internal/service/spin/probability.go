package spin

const maxProbabilityTestTrials = 10_000

// ProbabilityTest draws the win/lose decision trials times under the
// current probability and reports how many came up as wins. It mirrors the
// self-test in the original admin panel; no balances are touched.
func (s *serv) ProbabilityTest(trials int) (wins, ran, probability int) {
	if trials <= 0 {
		trials = 100
	}
	if trials > maxProbabilityTestTrials {
		trials = maxProbabilityTestTrials
	}

	probability = s.settings.WinProbability()
	for i := 0; i < trials; i++ {
		if s.src.Percent() < float64(probability) {
			wins++
		}
	}
	return wins, trials, probability
}
