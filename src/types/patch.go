package types

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var patchValidator = validator.New()

// Patch bodies are decoded into a raw field map first so that an omitted
// member and a member explicitly set to null can be told apart: omitted keys
// never enter the update set, while null is rejected for non-nullable
// columns and clears user_id.

// ParseUserPatch returns the column/value set a PATCH /users/:id applies.
func ParseUserPatch(data []byte) (map[string]any, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if v, ok := raw["username"]; ok {
		username, err := patchString(v, "username", "min=3")
		if err != nil {
			return nil, err
		}
		fields["username"] = username
	}
	if v, ok := raw["email"]; ok {
		email, err := patchString(v, "email", "email")
		if err != nil {
			return nil, err
		}
		fields["email"] = email
	}
	return fields, nil
}

// ParseTicketPatch returns the column/value set a PATCH /tickets/:id
// applies. A null user_id is a valid value and clears the owning user.
func ParseTicketPatch(data []byte) (map[string]any, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	fields := map[string]any{}
	if v, ok := raw["name"]; ok {
		name, err := patchString(v, "name", "required")
		if err != nil {
			return nil, err
		}
		fields["name"] = name
	}
	if v, ok := raw["price"]; ok {
		var price *float64
		if err := json.Unmarshal(v, &price); err != nil {
			return nil, fmt.Errorf("price: %w", err)
		}
		if price == nil {
			return nil, errors.New("price must not be null")
		}
		if err := patchValidator.Var(*price, "gte=0"); err != nil {
			return nil, fmt.Errorf("price: %w", err)
		}
		fields["price"] = *price
	}
	if v, ok := raw["is_valid"]; ok {
		var isValid *bool
		if err := json.Unmarshal(v, &isValid); err != nil {
			return nil, fmt.Errorf("is_valid: %w", err)
		}
		if isValid == nil {
			return nil, errors.New("is_valid must not be null")
		}
		fields["is_valid"] = *isValid
	}
	if v, ok := raw["user_id"]; ok {
		var userId *uint
		if err := json.Unmarshal(v, &userId); err != nil {
			return nil, fmt.Errorf("user_id: %w", err)
		}
		if userId != nil {
			if err := patchValidator.Var(*userId, "gte=1"); err != nil {
				return nil, fmt.Errorf("user_id: %w", err)
			}
		}
		fields["user_id"] = userId
	}
	return fields, nil
}

func patchString(v json.RawMessage, name string, rule string) (string, error) {
	var s *string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	if s == nil {
		return "", fmt.Errorf("%s must not be null", name)
	}
	if err := patchValidator.Var(*s, rule); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return *s, nil
}
