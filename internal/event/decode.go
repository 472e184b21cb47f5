package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns evt's payload as T. Payloads published in process are
// already T or *T; anything else (a map from a JSON source) is converted via JSON.
func DecodePayload[T any](evt Event) (T, error) {
	var result T
	switch v := evt.Payload.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, fmt.Errorf("%s: %s", ErrMsgNilPayload, evt.Type)
		}
		return *v, nil
	case nil:
		return result, fmt.Errorf("%s: %s", ErrMsgNilPayload, evt.Type)
	}

	data, err := json.Marshal(evt.Payload)
	if err != nil {
		return result, fmt.Errorf("%s %s: %w", ErrMsgDecodePayload, evt.Type, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("%s %s: %w", ErrMsgDecodePayload, evt.Type, err)
	}
	return result, nil
}
