package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mandelsoft/meshmodel/pkg/meshbase/service"
)

func ResponseData(r *http.Response) ([]byte, error) {
	defer r.Body.Close()
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if r.StatusCode == http.StatusCreated || r.StatusCode == http.StatusOK {
		return data, nil
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("request failed with status %s", r.Status)
	}

	var msg service.Error
	err = json.Unmarshal(data, &msg)
	if err != nil || msg.Error == "" {
		return nil, fmt.Errorf("request failed with status %s", r.Status)
	}
	return nil, fmt.Errorf("%s", msg.Error)
}

// Request executes an HTTP request with an optional JSON body and
// decodes the JSON response into result, if given.
func Request(method, url string, body interface{}, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	log.Trace("{{method}} {{url}}", "method", method, "url", url)
	r, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	data, err := ResponseData(r)
	if err != nil {
		return err
	}
	if result == nil || len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, result)
}
