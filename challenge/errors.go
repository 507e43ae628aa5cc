package challenge

import (
	"net/http"

	"github.com/fury1991/my-sport-challenge/srvcerror"
)

const ErrCodeChallengeNotFound = "challenge_not_found"

func ErrChallengeNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeChallengeNotFound,
		"Challenge wurde nicht gefunden",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeAthleteNotFound = "athlete_not_found"

func ErrAthleteNotFound() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeAthleteNotFound,
		"Athlet wurde nicht gefunden",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeFetchFailed = "fetch_failed"

// ErrFetchFailed signals that the store could not be read. It is
// surfaced to the client as "data unavailable" rather than an empty
// dashboard, so a failed fetch is never mistaken for no data.
func ErrFetchFailed() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeFetchFailed,
		"Daten sind momentan nicht verfügbar",
	).SetHttpStatusCode(http.StatusBadGateway)
}

const ErrCodeInvalidDistance = "invalid_distance"

// ErrInvalidDistance rejects negative or non-finite distances at the
// store boundary instead of letting them propagate into the scores.
func ErrInvalidDistance() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidDistance,
		"Aktivität mit ungültiger Distanz",
	).SetHttpStatusCode(http.StatusUnprocessableEntity)
}
