package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FeatureList decodes the features field whether the backend sends it as a
// comma-separated string or as an array of strings. Writes always go out as
// the comma-separated form the backend stores.
type FeatureList []string

func (f *FeatureList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
		*f = values
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("cannot decode %s into FeatureList", trimmed)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		*f = FeatureList{}
		return nil
	}

	parts := strings.Split(value, ",")
	features := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			features = append(features, part)
		}
	}
	*f = features
	return nil
}

func (f FeatureList) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.Join(f, ", "))
}

func (f FeatureList) String() string {
	return strings.Join(f, ", ")
}
