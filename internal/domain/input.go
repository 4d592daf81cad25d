package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/kapu/pachinko-persona-lab/pkg/errors"
)

// InputMode selects how a persona is derived.
type InputMode string

const (
	// InputModeUser builds the persona from the six profile dimensions.
	InputModeUser InputMode = "user"
	// InputModeProduct reverse-engineers the audience from a product concept.
	InputModeProduct InputMode = "product"
)

// MinConceptLength is the shortest product concept accepted for submission.
const MinConceptLength = 6

// NormalizeInputMode maps raw text onto a known mode. Unknown values are
// returned unchanged so that callers can reject them explicitly.
func NormalizeInputMode(raw string) InputMode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(InputModeUser):
		return InputModeUser
	case string(InputModeProduct):
		return InputModeProduct
	default:
		return InputMode(raw)
	}
}

// Valid reports whether m is one of the two defined modes.
func (m InputMode) Valid() bool {
	return m == InputModeUser || m == InputModeProduct
}

// InputField identifies one editable field of PersonaInput.
type InputField string

const (
	FieldBasicAttributes InputField = "basicAttributes"
	FieldTime            InputField = "time"
	FieldBudget          InputField = "budget"
	FieldHall            InputField = "hall"
	FieldLiteracy        InputField = "literacy"
	FieldReward          InputField = "reward"
	FieldProductConcept  InputField = "productConcept"
	FieldCustomNote      InputField = "customNote"
)

// ProfileFields lists the fields required in user mode, in display order.
var ProfileFields = []InputField{
	FieldBasicAttributes,
	FieldTime,
	FieldBudget,
	FieldHall,
	FieldLiteracy,
	FieldReward,
}

// PersonaInput is the form state read once per submission.
type PersonaInput struct {
	InputMode InputMode `json:"inputMode"`

	BasicAttributes string `json:"basicAttributes"`
	Time            string `json:"time"`
	Budget          string `json:"budget"`
	Hall            string `json:"hall"`
	Literacy        string `json:"literacy"`
	Reward          string `json:"reward"`

	ProductConcept string `json:"productConcept"`

	CustomNote string `json:"customNote"`
}

// NewPersonaInput returns the empty session-start input in user mode.
func NewPersonaInput() PersonaInput {
	return PersonaInput{InputMode: InputModeUser}
}

// Get returns the value of field.
func (in *PersonaInput) Get(field InputField) string {
	switch field {
	case FieldBasicAttributes:
		return in.BasicAttributes
	case FieldTime:
		return in.Time
	case FieldBudget:
		return in.Budget
	case FieldHall:
		return in.Hall
	case FieldLiteracy:
		return in.Literacy
	case FieldReward:
		return in.Reward
	case FieldProductConcept:
		return in.ProductConcept
	case FieldCustomNote:
		return in.CustomNote
	default:
		return ""
	}
}

// Set assigns value to field. Unknown fields are ignored.
func (in *PersonaInput) Set(field InputField, value string) {
	switch field {
	case FieldBasicAttributes:
		in.BasicAttributes = value
	case FieldTime:
		in.Time = value
	case FieldBudget:
		in.Budget = value
	case FieldHall:
		in.Hall = value
	case FieldLiteracy:
		in.Literacy = value
	case FieldReward:
		in.Reward = value
	case FieldProductConcept:
		in.ProductConcept = value
	case FieldCustomNote:
		in.CustomNote = value
	}
}

// SetMode switches the active mode. Values of the inactive mode are kept.
func (in *PersonaInput) SetMode(mode InputMode) {
	in.InputMode = mode
}

// CanSubmit reports whether the active mode has everything it needs.
func (in *PersonaInput) CanSubmit() bool {
	return in.Validate() == nil
}

// Validate explains why the input cannot be submitted, or returns nil.
func (in *PersonaInput) Validate() error {
	switch in.InputMode {
	case InputModeUser:
		for _, field := range ProfileFields {
			if in.Get(field) == "" {
				return errors.NewValidationError("全ての項目を選択または入力してください", string(field), "")
			}
		}
		return nil
	case InputModeProduct:
		if utf8.RuneCountInString(in.ProductConcept) < MinConceptLength {
			return errors.NewValidationError("プロダクトの概要を入力してください", string(FieldProductConcept), in.ProductConcept)
		}
		return nil
	default:
		return errors.NewConfigError("unsupported input mode: "+string(in.InputMode), map[string]any{
			"inputMode": string(in.InputMode),
		})
	}
}
