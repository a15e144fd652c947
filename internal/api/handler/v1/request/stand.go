package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// CreateStandRequest keeps supportsAS loosely typed: form-style clients send
// "on", "true" or "1" as well as JSON booleans.
type CreateStandRequest struct {
	Label      string `json:"label"`
	Zone       string `json:"zone"`
	SupportsAS any    `json:"supportsAS" swaggertype:"boolean"`
}

type UpdateAfternoonRequest struct {
	SupportsAS any `json:"supportsAS" swaggertype:"boolean"`
}

func (req *UpdateAfternoonRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.SupportsAS, validation.NotNil),
	)
}

type UpdateDoubleStaffedRequest struct {
	DoubleStaffed any `json:"doubleStaffed" swaggertype:"boolean"`
}

func (req *UpdateDoubleStaffedRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.DoubleStaffed, validation.NotNil),
	)
}
