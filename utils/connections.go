package utils

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff"
)

// FetchWithRetry downloads a remote document (i.e. a knowledgebase
// payload from a reference-data service) with exponential backoff.
func FetchWithRetry(url string) ([]byte, error) {
	var (
		payload      []byte
		retryBackoff = backoff.NewExponentialBackOff()
	)
	retryBackoff.MaxElapsedTime = 30 * time.Second

	operation := func() error {
		response, responseErr := http.Get(url)
		if responseErr != nil {
			return responseErr
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			return fmt.Errorf("fetching %s : received status %d", url, response.StatusCode)
		}

		body, readErr := io.ReadAll(response.Body)
		if readErr != nil {
			return readErr
		}

		payload = body
		return nil
	}

	if retryErr := backoff.Retry(operation, retryBackoff); retryErr != nil {
		return nil, retryErr
	}

	return payload, nil
}
