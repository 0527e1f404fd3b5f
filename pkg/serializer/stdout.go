package serializer

import (
	"encoding/json"
	"fmt"
)

// StdoutSerializer outputs data to stdout in indented JSON format.
type StdoutSerializer struct {
}

// Serialize outputs the given data to stdout in JSON format.
func (s *StdoutSerializer) Serialize(data any) error {
	j, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize to json: %w", err)
	}

	fmt.Println(string(j))
	return nil
}
