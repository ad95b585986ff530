package iprange

import "strings"

// Convert expands every token in order and concatenates the results.
// Duplicates across tokens are kept. The first invalid token aborts the
// whole conversion.
func Convert(tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return nil, ErrInput
	}

	var addrs []string
	for _, token := range tokens {
		expanded, err := Expand(token)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, expanded...)
	}
	return addrs, nil
}

// ConvertString is Convert for a single token.
func ConvertString(token string) ([]string, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrInput
	}
	return Convert([]string{token})
}
