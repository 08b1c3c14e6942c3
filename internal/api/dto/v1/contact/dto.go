package contact

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string    `json:"name" validate:"required,singleline,max=200"`
	Email   string    `json:"email" validate:"required,max=255,mailaddress"`
	Company LooseText `json:"company" validate:"omitempty,singleline,max=200"`
	Phone   LooseText `json:"phone" validate:"omitempty,singleline,max=50"`
	Inquiry LooseText `json:"inquiry" validate:"omitempty,singleline,max=100"`
	Message string    `json:"message" validate:"required,max=10000"`
}

// LooseText is an optional text field that also accepts JSON numbers and
// booleans, keeping their literal form. null and false decode to "".
// Objects and arrays are rejected.
type LooseText string

func (t *LooseText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = LooseText(s)
	case 'n', 'f':
		*t = ""
	case 't':
		*t = "true"
	case '{', '[':
		return fmt.Errorf("expected text, got %s", data[:1])
	default:
		*t = LooseText(data)
	}
	return nil
}
