package circuitbreaker

import "github.com/sony/gobreaker/v2"

// CreateCircuitBreaker trips after at least 3 requests with a failure ratio of
// 60% or more. isSuccessful decides which errors count as failures; nil means
// every error does.
func CreateCircuitBreaker(name string, isSuccessful func(err error) bool) *gobreaker.CircuitBreaker[[]byte] {
	var st gobreaker.Settings
	st.Name = name
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	st.IsSuccessful = isSuccessful

	cb := gobreaker.NewCircuitBreaker[[]byte](st)

	return cb
}
