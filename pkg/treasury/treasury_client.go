package treasury_client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
)

type YieldCurve struct {
	Rates map[int]float64
}

// RateForMaturity returns the annualized treasury yield for a maturity in
// years, interpolating between the surrounding tenors when there's no
// exact match.
func (yc YieldCurve) RateForMaturity(years float64) (float64, error) {
	if len(yc.Rates) == 0 {
		return 0, fmt.Errorf("yield curve has no tenors")
	}

	months := int(years * 12)
	if v, ok := yc.Rates[months]; ok {
		return v, nil
	}

	keys := []int{}
	for k := range yc.Rates {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})

	if months <= keys[0] {
		return yc.Rates[keys[0]], nil
	}
	if months >= keys[len(keys)-1] {
		return yc.Rates[keys[len(keys)-1]], nil
	}

	for i := 0; i < len(keys)-1; i++ {
		key1 := keys[i]
		key2 := keys[i+1]
		if months > key1 && months < key2 {
			weight := float64(months-key1) / float64(key2-key1)
			return yc.Rates[key1] + weight*(yc.Rates[key2]-yc.Rates[key1]), nil
		}
	}

	return 0, fmt.Errorf("unable to compute rate for %f years", years)
}

func tenorMonthsFromApi(in string) (int, error) {
	cleanedStr := strings.Replace(in, "yield_", "", 1)
	unit := string(cleanedStr[len(cleanedStr)-1])
	cleanedStr = cleanedStr[:len(cleanedStr)-1]
	months, err := strconv.Atoi(cleanedStr)
	if err != nil {
		return 0, err
	}

	if unit == "y" {
		months *= 12
	}

	return months, nil
}

// lazy, in-memory cache for API requests
var cache map[string][]byte = map[string][]byte{}

func getBytes(date time.Time) ([]byte, error) {
	tStr := date.Format(time.DateOnly)

	if out, ok := cache[tStr]; ok {
		return out, nil
	}

	client := http.DefaultClient
	url := fmt.Sprintf("https://www.ustreasuryyieldcurve.com/api/v1/yield_curve_snapshot?date=%s&offset=0", tStr)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}

	if response.StatusCode != 200 {
		return nil, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	cache[tStr] = responseBytes

	return responseBytes, nil
}

func GetYieldCurve(date time.Time) (*YieldCurve, error) {
	keys := []string{
		"yield_1m",
		"yield_2m",
		"yield_3m",
		"yield_4m",
		"yield_6m",
		"yield_1y",
		"yield_2y",
		"yield_3y",
		"yield_5y",
		"yield_7y",
		"yield_10y",
		"yield_20y",
		"yield_30y",
	}

	responseBytes, err := getBytes(date)
	if err != nil {
		return nil, err
	}

	responseBody := []map[string]interface{}{}

	err = json.Unmarshal(responseBytes, &responseBody)
	if err != nil {
		return nil, err
	}

	out := map[int]float64{}
	oneNonNil := false

	for _, response := range responseBody {
		for k, v := range response {
			for _, field := range keys {
				if k == field {
					months, err := tenorMonthsFromApi(k)
					if err != nil {
						return nil, err
					}
					if v != nil {
						oneNonNil = true
						out[months] = v.(float64) / 100
					}
				}
			}
		}
	}
	if !oneNonNil {
		// holidays and weekends have all-null rows; walk backwards until
		// we find a published curve
		return GetYieldCurve(date.AddDate(0, -1, 0))
	}

	return &YieldCurve{
		Rates: out,
	}, nil
}
