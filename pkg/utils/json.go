package utils

import (
	"encoding/json"
	"fmt"
)

// PrettyJson renders a value as indented JSON for terminal output.
func PrettyJson(in any) string {
	buffer, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", in)
	}

	return string(buffer)
}
