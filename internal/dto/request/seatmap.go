package request

type OpenSessionRequest struct {
	Layout string `json:"layout" validate:"omitempty,max=64"`
}

type AdjustSelectionRequest struct {
	Direction string `json:"direction" validate:"required,oneof=increment decrement"`
}
