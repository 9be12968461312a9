package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

type Assessment struct {
	ID                string            `json:"id"`
	ClientID          int               `json:"client_id"`
	Date              time.Time         `json:"date"`
	Type              string            `json:"type"`
	Status            string            `json:"status"`
	Category          string            `json:"category,omitempty"`
	Score             int               `json:"score"`
	Answers           map[string]string `json:"answers,omitempty"`
	GeneratedFindings FindingCollection `json:"generated_findings"`
}

// FindingCollection decodes an assessment's embedded findings. Upstream
// payloads carry them either as a JSON array or as an object keyed by
// finding id; both shapes normalize to the same ordered slice. Object keys
// are sorted so both representations flatten identically.
type FindingCollection []Finding

func (fc *FindingCollection) UnmarshalJSON(data []byte) error {
	switch firstToken(data) {
	case '[':
		var findings []Finding
		if err := json.Unmarshal(data, &findings); err != nil {
			return err
		}
		*fc = findings
		return nil
	case '{':
		var byID map[string]Finding
		if err := json.Unmarshal(data, &byID); err != nil {
			return err
		}
		keys := make([]string, 0, len(byID))
		for k := range byID {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		findings := make([]Finding, 0, len(byID))
		for _, k := range keys {
			f := byID[k]
			if f.ID == "" {
				f.ID = k
			}
			findings = append(findings, f)
		}
		*fc = findings
		return nil
	case 'n': // null
		*fc = nil
		return nil
	default:
		return fmt.Errorf("generated_findings: expected array or object, got %s", string(data))
	}
}

func (fc FindingCollection) MarshalJSON() ([]byte, error) {
	if fc == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Finding(fc))
}

func firstToken(data []byte) byte {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
