package narou

import (
	"encoding/json"
	"fmt"
)

// FetchGeneralAllNo asks the novel API for the official episode count of a
// work. Any network failure, parse failure or shape mismatch yields
// (0, false) rather than an error; the count is informational only.
func FetchGeneralAllNo(client *Client, apiURL, ncode string) (int, bool) {
	url := fmt.Sprintf("%s?out=json&ncode=%s&of=ga", apiURL, ncode)
	resp, err := client.Get(url)
	if err != nil {
		return 0, false
	}

	var records []map[string]json.RawMessage
	if err := json.Unmarshal(resp.Body(), &records); err != nil {
		return 0, false
	}
	if len(records) < 2 {
		return 0, false
	}
	raw, ok := records[1]["general_all_no"]
	if !ok {
		return 0, false
	}
	var count int
	if err := json.Unmarshal(raw, &count); err != nil {
		return 0, false
	}
	return count, true
}
